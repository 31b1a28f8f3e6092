package payment

import (
	"carre/infras/otel"
	"carre/internal/domains/payment/model/dto"
	"carre/internal/domains/payment/service"
	"carre/shared/constant"
	"carre/shared/validator"
	"carre/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/tables/{id}", handler.CreatePayment)
		routerGroup.Get("/tables/{id}", handler.GetPaymentsByTable)
	})
}

// CreatePayment records a payment against a table.
// @Summary Record a table payment
// @Description Append a payment entry to a table's payment history.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param request body dto.CreatePaymentRequest true "Create Payment Request"
// @Success 201 {object} response.Message "Payment recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/tables/{id} [post]
// @Security BearerAuth
func (handler *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayment")
	defer scope.End()

	tableID := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreatePaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req, tableID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment recorded successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Payment recorded successfully")
}

// GetPaymentsByTable returns a table's payment history and balance.
// @Summary Get table payments
// @Description Retrieve a table's payments in chronological order, with totals and remaining balance.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "Payment history"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/tables/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentsByTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByTable")
	defer scope.End()

	tableID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetByTable(ctx, tableID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
