package menu

import (
	"carre/infras/otel"
	"carre/internal/domains/menu/model"
	"carre/internal/domains/menu/model/dto"
	"carre/internal/domains/menu/service"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/validator"
	"carre/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Post("/import", handler.ImportMenu)
		routerGroup.Post("/import/confirm", handler.ConfirmImport)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})
}

// CreateMenuItem handles the creation of a new menu item.
// @Summary Create a new menu item
// @Description Create a new beverage menu item for an event.
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Create Menu Item Request"
// @Success 201 {object} response.Message "Menu item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	req := dto.CreateMenuItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Menu item created successfully")
}

// GetMenuItems retrieves menu items based on query parameters.
// @Summary Get all menu items
// @Description Retrieve menu items with optional filtering by event, category and availability.
// @Tags Menu
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_id query string false "Filter by event ID"
// @Param category query string false "Filter by category"
// @Param available query string false "Filter by availability (true/false)"
// @Success 200 {object} response.Data[dto.GetMenuItemsResponse] "List of menu items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [get]
// @Security BearerAuth
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldEventID, model.FieldCategory, model.FieldAvailable} {
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

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// ImportMenu parses an uploaded menu file into draft items.
// @Summary Import a menu file
// @Description Parse a .docx, .xlsx, .xls or .csv menu file and return draft items for review. Nothing is persisted.
// @Tags Menu
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Menu file to parse"
// @Success 200 {object} response.Data[dto.ImportResponse] "Draft items extracted from the file"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/import [post]
// @Security BearerAuth
func (handler *Handler) ImportMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportMenu")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	res, err := handler.service.Import(ctx, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import menu file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu file parsed successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmImport persists reviewed draft items as menu items.
// @Summary Confirm a menu import
// @Description Persist the reviewed draft items produced by a previous import call.
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.ConfirmImportRequest true "Confirm Import Request"
// @Success 201 {object} response.Data[dto.ConfirmImportResponse] "Menu items imported successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/import/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmImport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmImport")
	defer scope.End()

	req := dto.ConfirmImportRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ConfirmImport(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm menu import")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu import confirmed successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMenuItemByID retrieves a menu item by its ID.
// @Summary Get a menu item by ID
// @Description Retrieve a menu item by its unique identifier.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Data[dto.MenuItemResponse] "Menu item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateMenuItem updates an existing menu item by its ID.
// @Summary Update a menu item by ID
// @Description Update the details of an existing menu item.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Param request body dto.UpdateMenuItemRequest true "Update Menu Item Request"
// @Success 200 {object} response.Message "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/menu-items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMenuItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

// DeleteMenuItem deletes a menu item by its ID.
// @Summary Delete a menu item by ID
// @Description Delete a menu item using its unique identifier.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
