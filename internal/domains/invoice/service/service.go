package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"carre/config"
	"carre/infras/mailer"
	"carre/infras/otel"
	eventModel "carre/internal/domains/event/model"
	eventRepo "carre/internal/domains/event/repository"
	"carre/internal/domains/invoice"
	"carre/internal/domains/invoice/model/dto"
	paymentModel "carre/internal/domains/payment/model"
	paymentRepo "carre/internal/domains/payment/repository"
	tableModel "carre/internal/domains/table/model"
	tableRepo "carre/internal/domains/table/repository"
	"carre/shared"
	"carre/shared/base64"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/failure"
	"carre/shared/money"
	"carre/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Invoice interface {
	GeneratePDF(ctx context.Context, req dto.GeneratePDFRequest) (dto.GeneratePDFResponse, error)
	SendEmail(ctx context.Context, req dto.SendEmailRequest) (dto.SendEmailResponse, error)
}

type serviceImpl struct {
	tableRepo   tableRepo.Table
	eventRepo   eventRepo.Event
	paymentRepo paymentRepo.Payment
	mailer      mailer.Mailer
	cfg         *config.Config
	otel        otel.Otel
}

func New(tableRepository tableRepo.Table, eventRepository eventRepo.Event, paymentRepository paymentRepo.Payment, mail mailer.Mailer, cfg *config.Config, otel otel.Otel) Invoice {
	return &serviceImpl{
		tableRepo:   tableRepository,
		eventRepo:   eventRepository,
		paymentRepo: paymentRepository,
		mailer:      mail,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) GeneratePDF(ctx context.Context, req dto.GeneratePDFRequest) (res dto.GeneratePDFResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GeneratePDF")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := s.compose(ctx, req.TableIDs, req.Consolidated)
	if err != nil {
		return res, err
	}

	pdfBytes, err := invoice.Render(doc)
	if err != nil {
		log.Error().Err(err).Msg("failed to render invoice pdf")

		return res, fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	res.Filename = doc.Filename()
	res.PDF = base64.Encode(pdfBytes)

	return res, nil
}

func (s *serviceImpl) SendEmail(ctx context.Context, req dto.SendEmailRequest) (res dto.SendEmailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := s.compose(ctx, req.TableIDs, req.Consolidated)
	if err != nil {
		return res, err
	}

	pdfBytes, err := invoice.Render(doc)
	if err != nil {
		log.Error().Err(err).Msg("failed to render invoice pdf")

		return res, fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	msg := mailer.Message{
		To:       []string{req.To},
		Subject:  req.Subject,
		HTMLBody: emailBody(doc),
		Attachments: []mailer.Attachment{
			{
				Filename:    doc.Filename(),
				ContentType: constant.ContentTypePDF,
				Data:        pdfBytes,
			},
		},
	}

	if err = s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Msg("failed to send invoice email")

		return res, fmt.Errorf("failed to send invoice email: %w", err)
	}

	res.Filename = doc.Filename()
	res.SentTo = req.To

	return res, nil
}

// compose loads the tables, their payments and the owning event, then
// builds the shared document model.
func (s *serviceImpl) compose(ctx context.Context, tableIDs []string, consolidated bool) (invoice.Document, error) {
	if !consolidated && len(tableIDs) > 1 {
		return invoice.Document{}, failure.BadRequestFromString("multiple tables require consolidated mode") // nolint:wrapcheck
	}

	tables := make([]tableModel.Table, 0, len(tableIDs))
	payments := []paymentModel.Payment{}

	for _, id := range tableIDs {
		tab, err := s.tableRepo.Get(ctx, shared.FilterByID(id, tableModel.FieldID, tableModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get table")

			return invoice.Document{}, fmt.Errorf("failed to get table: %w", err)
		}

		if tab.ID == constant.Empty {
			return invoice.Document{}, failure.NotFound(fmt.Sprintf("table not found: %s", id)) // nolint:wrapcheck
		}

		tables = append(tables, tab)

		tablePayments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{
			SortBy:  paymentModel.FieldPaymentDate,
			SortDir: gDto.SortDirAsc,
		}, shared.FilterByID(id, paymentModel.FieldTableID, paymentModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get payments")

			return invoice.Document{}, fmt.Errorf("failed to get payments: %w", err)
		}

		payments = append(payments, tablePayments...)
	}

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(tables[0].EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return invoice.Document{}, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return invoice.Document{}, failure.NotFound("event not found") // nolint:wrapcheck
	}

	doc := invoice.Build(event, tables, payments, s.cfg.App.Billing.SenderName, s.cfg.App.Billing.FooterContact, timezone.Now())

	return doc, nil
}

// emailBody is the fixed HTML wrapper around the attached invoice.
func emailBody(doc invoice.Document) string {
	return fmt.Sprintf(
		`<p>Bonjour,</p>
<p>Veuillez trouver ci-joint votre facture <strong>%s</strong> pour %s.</p>
<p>Montant total : <strong>%s</strong></p>
<p>%s</p>`,
		doc.Number,
		doc.EventName,
		money.FormatWithCurrency(doc.Total, doc.Currency),
		doc.FooterContact,
	)
}
