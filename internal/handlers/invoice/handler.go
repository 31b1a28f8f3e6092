package invoice

import (
	"carre/infras/otel"
	"carre/internal/domains/invoice/model/dto"
	"carre/internal/domains/invoice/service"
	"carre/shared/constant"
	"carre/shared/validator"
	"carre/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Post("/pdf", handler.GeneratePDF)
		routerGroup.Post("/email", handler.SendEmail)
	})
}

// GeneratePDF renders an invoice PDF for one or more tables.
// @Summary Generate an invoice PDF
// @Description Render a single or consolidated invoice for the given tables and return it base64-encoded.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.GeneratePDFRequest true "Generate PDF Request"
// @Success 200 {object} response.Data[dto.GeneratePDFResponse] "Invoice PDF"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/invoices/pdf [post]
// @Security BearerAuth
func (handler *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GeneratePDF")
	defer scope.End()

	req := dto.GeneratePDFRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GeneratePDF(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoice PDF")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice PDF generated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// SendEmail renders an invoice PDF and emails it as an attachment.
// @Summary Send an invoice by email
// @Description Render a single or consolidated invoice and send it to the given address with the PDF attached.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.SendEmailRequest true "Send Email Request"
// @Success 200 {object} response.Data[dto.SendEmailResponse] "Invoice sent successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/invoices/email [post]
// @Security BearerAuth
func (handler *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendEmail")
	defer scope.End()

	req := dto.SendEmailRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendEmail(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send invoice email")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice sent successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
