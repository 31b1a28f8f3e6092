package table

import (
	"carre/infras/otel"
	"carre/internal/domains/table/model"
	"carre/internal/domains/table/model/dto"
	"carre/internal/domains/table/service"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/validator"
	"carre/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTables)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Post("/generate/{id}", handler.GenerateTables)
		routerGroup.Get("/{id}", handler.GetTableByID)
		routerGroup.Patch("/{id}", handler.UpdateTable)
		routerGroup.Post("/{id}/confirm", handler.ConfirmTable)
		routerGroup.Post("/{id}/paid", handler.MarkTablePaid)
		routerGroup.Post("/{id}/release", handler.ReleaseTable)
	})
}

// GetTables retrieves tables based on query parameters.
// @Summary Get all tables
// @Description Retrieve tables with optional filtering by venue, day, zone and status.
// @Tags Table
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param venue_id query string false "Filter by venue ID"
// @Param event_id query string false "Filter by event ID"
// @Param day query string false "Filter by day (YYYY-MM-DD)"
// @Param zone query string false "Filter by zone"
// @Param status query string false "Filter by status (libre, reserve, confirme, paye)"
// @Success 200 {object} response.Data[dto.GetTablesResponse] "List of tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables [get]
// @Security BearerAuth
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Every filter here is an exact match on a column of the tables table.
	for _, field := range []string{model.FieldVenueID, model.FieldEventID, model.FieldDay, model.FieldZone, model.FieldStatus} {
		value := r.URL.Query().Get(field)
		if value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	tables, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tables retrieved successfully")

	response.WithJSON(w, http.StatusOK, tables)
}

// GetStats returns occupancy and revenue statistics for a venue and day.
// @Summary Get table statistics
// @Description Retrieve status counts, revenue, commissions and net for a venue on a given day.
// @Tags Table
// @Accept json
// @Produce json
// @Param venue_id query string true "Venue ID"
// @Param day query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.StatsResponse] "Statistics"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	venueID := r.URL.Query().Get(model.FieldVenueID)
	day := r.URL.Query().Get(model.FieldDay)

	stats, err := handler.service.Stats(ctx, venueID, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GenerateTables materializes tables for a venue and day from its layout templates.
// @Summary Generate tables for a day
// @Description Create the full table set for a venue on a given day from its layout templates. Replaces any existing tables for that venue and day.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.GenerateTablesRequest true "Generate Tables Request"
// @Success 201 {object} response.Data[dto.GenerateTablesResponse] "Tables generated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tables/generate/{id} [post]
// @Security BearerAuth
func (handler *Handler) GenerateTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateTables")
	defer scope.End()

	venueID := chi.URLParam(r, constant.RequestParamID)

	req := dto.GenerateTablesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Generate(ctx, req, venueID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate tables")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tables generated successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTableByID retrieves a table by its ID.
// @Summary Get a table by ID
// @Description Retrieve a table with its computed totals.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} response.Data[dto.TableResponse] "Table details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	table, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table retrieved successfully")

	response.WithJSON(w, http.StatusOK, table)
}

// UpdateTable updates a table's client data, pricing or status.
// @Summary Update a table by ID
// @Description Update client data, pricing or status. Saving client data on a free table reserves it; explicit status changes must follow the lifecycle order.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param request body dto.UpdateTableRequest true "Update Table Request"
// @Success 200 {object} response.Message "Table updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/tables/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Table updated successfully")
}

// ConfirmTable moves a reserved table to confirmed.
// @Summary Confirm a table
// @Description Move a reserved table to the confirmed state.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} response.Message "Table confirmed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/tables/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Confirm(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table confirmed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Table confirmed successfully")
}

// MarkTablePaid moves a confirmed table to paid.
// @Summary Mark a table as paid
// @Description Move a confirmed table to the paid state.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} response.Message "Table marked as paid"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/tables/{id}/paid [post]
// @Security BearerAuth
func (handler *Handler) MarkTablePaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkTablePaid")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkPaid(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark table as paid")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table marked as paid by user " + user)

	response.WithMessage(w, http.StatusOK, "Table marked as paid")
}

// ReleaseTable frees a table from any state, clearing its client data.
// @Summary Release a table
// @Description Return a table to the free state and clear all client and pricing data.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} response.Message "Table released successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/{id}/release [post]
// @Security BearerAuth
func (handler *Handler) ReleaseTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Release(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release table")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Table released successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Table released successfully")
}
