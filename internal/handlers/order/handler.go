package order

import (
	"carre/infras/otel"
	"carre/internal/domains/order/model/dto"
	"carre/internal/domains/order/service"
	"carre/shared/constant"
	"carre/shared/validator"
	"carre/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the staff route for issuing links and the public
// client routes under /vip. The /vip routes authenticate with the
// order's access token only, never with a JWT.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/link", handler.GenerateLink)
	})

	router.Route("/vip", func(routerGroup chi.Router) {
		routerGroup.Get("/order", handler.GetOrder)
		routerGroup.Post("/order", handler.SaveOrder)
	})
}

// GenerateLink issues (or reuses) a pre-order link for a table.
// @Summary Generate a pre-order link
// @Description Create a client-facing pre-order link for a table, or return the existing one.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.GenerateLinkRequest true "Generate Link Request"
// @Success 201 {object} response.Data[dto.GenerateLinkResponse] "Pre-order link"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/orders/link [post]
// @Security BearerAuth
func (handler *Handler) GenerateLink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateLink")
	defer scope.End()

	req := dto.GenerateLinkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GenerateLink(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate order link")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order link generated successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOrder returns everything the client page needs for one order.
// @Summary Get an order snapshot
// @Description Retrieve the order, its table, event and available menu by access token.
// @Tags Order
// @Accept json
// @Produce json
// @Param token query string true "Order access token"
// @Success 200 {object} response.Data[dto.OrderSnapshotResponse] "Order snapshot"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/vip/order [get]
func (handler *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrder")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)

	res, err := handler.service.Get(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order by token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order snapshot retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SaveOrder confirms the client's selection for an order.
// @Summary Save an order
// @Description Replace the order's item selection and confirm it. Prices are resolved server-side.
// @Tags Order
// @Accept json
// @Produce json
// @Param token query string true "Order access token"
// @Param request body dto.SaveOrderRequest true "Save Order Request"
// @Success 200 {object} response.Data[dto.SaveOrderResponse] "Order saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/vip/order [post]
func (handler *Handler) SaveOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveOrder")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)

	req := dto.SaveOrderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Save(ctx, token, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order saved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
