package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"carre/config"
	"carre/infras/otel"
	"carre/internal/domains/table"
	"carre/internal/domains/table/model"
	"carre/internal/domains/table/model/dto"
	"carre/internal/domains/table/repository"
	venueModel "carre/internal/domains/venue/model"
	venueRepo "carre/internal/domains/venue/repository"
	"carre/shared"
	"carre/shared/cache"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/failure"
	gModel "carre/shared/model"
	"carre/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTable    = "table:get"
	cacheGetAllTable = "table:gets"
	cacheCountTable  = "table:count"
	cacheStatsTable  = "table:stats"
)

type Table interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTablesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TableResponse, error)
	Generate(ctx context.Context, req dto.GenerateTablesRequest, venueID string) (dto.GenerateTablesResponse, error)
	Update(ctx context.Context, req dto.UpdateTableRequest, id string) error
	Confirm(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
	Stats(ctx context.Context, venueID, day string) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo       repository.Table
	layoutRepo venueRepo.TableLayout
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Table, layoutRepo venueRepo.TableLayout, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Table {
	return &serviceImpl{
		repo:       repo,
		layoutRepo: layoutRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTable, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tables")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return res, fmt.Errorf("failed to count tables: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res.Tables = make([]dto.TableResponse, len(models))
	for i, mod := range models {
		res.Tables[i] = s.toResponse(mod)
	}

	res.CalculatePages(total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTable, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return res, fmt.Errorf("failed to count tables: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTable, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	mod, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if mod.ID == constant.Empty {
		return res, failure.NotFound("table not found") // nolint:wrapcheck
	}

	res = s.toResponse(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateTablesRequest, venueID string) (res dto.GenerateTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	day, err := time.Parse(constant.DayFormat, req.Day)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid day format: %v", err)) // nolint:wrapcheck
	}

	filter := dayLayoutFilter(venueID, day)
	params := gDto.QueryParams{
		SortBy:  venueModel.FieldLayoutSortOrder,
		SortDir: gDto.SortDirAsc,
	}

	layouts, err := s.layoutRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get layouts")

		return res, fmt.Errorf("failed to get layouts: %w", err)
	}

	if len(layouts) == 0 {
		return res, failure.NotFound("no layout configured for venue") // nolint:wrapcheck
	}

	// Day-specific templates override the default (null-date) ones.
	dated := layouts[:0:0]

	for _, layout := range layouts {
		if layout.Date != nil {
			dated = append(dated, layout)
		}
	}

	if len(dated) > 0 {
		layouts = dated
	}

	tables := materialize(layouts, req.EventID, venueID, day, user)

	if err = s.repo.ReplaceForDay(ctx, venueID, day, tables); err != nil {
		log.Error().Err(err).Msg("failed to replace tables for day")

		return res, fmt.Errorf("failed to replace tables for day: %w", err)
	}

	s.invalidateTables(ctx, "")

	res.Generated = len(tables)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTableRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return fmt.Errorf("failed to get table: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("table not found") // nolint:wrapcheck
	}

	status := current.Status

	switch {
	case req.Status != constant.Empty && req.Status != current.Status:
		if !table.CanTransition(current.Status, req.Status) {
			return failure.InvalidTransition(current.Status, req.Status) // nolint:wrapcheck
		}

		status = req.Status
	case current.Status == constant.TableStatusFree && req.ClientName != constant.Empty:
		// Saving client data on a free table reserves it.
		status = constant.TableStatusReserved
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldStatus] = status

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update table")

		return fmt.Errorf("failed to update table: %w", err)
	}

	s.invalidateTables(ctx, id)

	return nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(nil)

	return s.transition(ctx, id, constant.TableStatusReserved, constant.TableStatusConfirmed)
}

func (s *serviceImpl) MarkPaid(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(nil)

	return s.transition(ctx, id, constant.TableStatusConfirmed, constant.TableStatusPaid)
}

func (s *serviceImpl) transition(ctx context.Context, id, from, to string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return fmt.Errorf("failed to get table: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("table not found") // nolint:wrapcheck
	}

	if current.Status != from {
		return failure.InvalidTransition(current.Status, to) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update table status")

		return fmt.Errorf("failed to update table status: %w", err)
	}

	s.invalidateTables(ctx, id)

	return nil
}

func (s *serviceImpl) Release(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if table exists")

		return fmt.Errorf("failed to check if table exists: %w", err)
	}

	if !exist {
		return failure.NotFound("table not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:                  constant.TableStatusFree,
		model.FieldSoldPrice:               nil,
		model.FieldClientName:              nil,
		model.FieldClientEmail:             nil,
		model.FieldClientPhone:             nil,
		model.FieldClientAddress:           nil,
		model.FieldConciergeName:           nil,
		model.FieldConciergeCommission:     nil,
		model.FieldAdditionalPersons:       0,
		model.FieldAdditionalPersonPrice:   0,
		model.FieldOnSiteAdditionalPersons: 0,
		model.FieldOnSiteAdditionalRevenue: 0,
		model.FieldStaffNotes:              nil,
		model.FieldDrinkPreorder:           nil,
		constant.FieldModifiedAt:           timezone.Now(),
		constant.FieldModifiedBy:           user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to release table")

		return fmt.Errorf("failed to release table: %w", err)
	}

	s.invalidateTables(ctx, id)

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context, venueID, day string) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsedDay, err := time.Parse(constant.DayFormat, day)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid day format: %v", err)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheStatsTable, venueID, day)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	filter := venueDayFilter(venueID, parsedDay)

	tables, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res = summarize(tables)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) toResponse(mod model.Table) dto.TableResponse {
	var res dto.TableResponse

	total, commission, net := breakdown(mod)
	res.FromModel(mod, total, commission, net)

	return res
}

func (s *serviceImpl) invalidateTables(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTable, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete table from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheCountTable)
		shared.InvalidateCaches(c, s.cache, cacheStatsTable)
	}()
}

// breakdown computes the derived amounts for one table through the shared
// pricing functions.
func breakdown(mod model.Table) (total, commission, net float64) {
	soldPrice := 0.0
	if mod.SoldPrice != nil {
		soldPrice = *mod.SoldPrice
	}

	commissionPercent := 0.0
	if mod.ConciergeCommission != nil {
		commissionPercent = *mod.ConciergeCommission
	}

	total = table.Total(soldPrice, mod.AdditionalPersons, mod.AdditionalPersonPrice, mod.OnSiteAdditionalRevenue)
	commission = table.Commission(soldPrice, commissionPercent)
	net = table.Net(total, commission)

	return total, commission, net
}

// materialize expands the venue's layout templates into concrete table rows
// for one day. Numbers run prefix+1..count per zone.
func materialize(layouts []venueModel.TableLayout, eventID, venueID string, day time.Time, user string) []model.Table {
	tables := []model.Table{}

	for _, layout := range layouts {
		prefix := layout.Prefix
		if prefix == constant.Empty {
			prefix = layout.Zone + "-"
		}

		for i := 1; i <= layout.TableCount; i++ {
			tables = append(tables, model.Table{
				ID:            uuid.NewString(),
				EventID:       eventID,
				VenueID:       venueID,
				Day:           day,
				Zone:          layout.Zone,
				TableNumber:   fmt.Sprintf("%s%d", prefix, i),
				Status:        constant.TableStatusFree,
				StandardPrice: layout.StandardPrice,
				Capacity:      layout.Capacity,
				Metadata: gModel.Metadata{
					CreatedAt:  timezone.Now(),
					ModifiedAt: timezone.Now(),
					CreatedBy:  user,
					ModifiedBy: user,
				},
			})
		}
	}

	return tables
}

func summarize(tables []model.Table) dto.StatsResponse {
	res := dto.StatsResponse{
		CountByStatus: map[string]int{},
		TotalTables:   len(tables),
	}

	for _, status := range constant.TableStatuses {
		res.CountByStatus[status] = 0
	}

	for _, mod := range tables {
		res.CountByStatus[mod.Status]++

		if mod.Status != constant.TableStatusConfirmed && mod.Status != constant.TableStatusPaid {
			continue
		}

		total, commission, net := breakdown(mod)
		res.Revenue += total
		res.Commissions += commission
		res.Net += net
	}

	return res
}

// dayLayoutFilter selects the venue's templates that apply to the given day:
// day-specific rows plus the default (null-date) templates.
func dayLayoutFilter(venueID string, day time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    venueModel.FieldLayoutVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    venueModel.LayoutTableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    venueModel.FieldLayoutDate,
						Operator: gDto.FilterIsNull,
						Table:    venueModel.LayoutTableName,
					},
					gDto.Filter{
						ArgName:  "layout_date",
						Field:    venueModel.FieldLayoutDate,
						Value:    day,
						Operator: gDto.FilterOperatorEq,
						Table:    venueModel.LayoutTableName,
					},
				},
			},
		},
	}
}

func venueDayFilter(venueID string, day time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDay,
				Value:    day,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
