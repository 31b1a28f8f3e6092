package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Table lifecycle states, in pipeline order.
const (
	TableStatusFree      = "libre"
	TableStatusReserved  = "reserve"
	TableStatusConfirmed = "confirme"
	TableStatusPaid      = "paye"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

const (
	EventStatusDraft    = "draft"
	EventStatusActive   = "active"
	EventStatusArchived = "archived"
)

// Menu item categories. Importers must coerce free text into this set.
const (
	CategoryChampagne = "champagne"
	CategoryAperitif  = "aperitif"
	CategoryBiere     = "biere"
	CategoryEnergy    = "energy"
	CategorySpirits   = "spiritueux"
	CategoryVin       = "vin"
	CategorySoft      = "soft"
)

const (
	ZoneLeft       = "left"
	ZoneRight      = "right"
	ZoneBackPrefix = "back_"
)

const (
	DefaultMenuFormat = "Bouteille"
)

const (
	MenuParserHeuristic = "heuristic"
	MenuParserAI        = "ai"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID    = "id"
	RequestParamToken = "token"
	RequestMaxMemory  = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat    = time.RFC3339
	DayFormat     = "2006-01-02"
	CompactDay    = "20060102"
	DisplayDay    = "02/01/2006"
	MinutesToSecs = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelMailerScopeName   = "mailer"
	OtelLLMScopeName      = "llm"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
	ContentTypePDF               = "application/pdf"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)

// TableStatuses lists every lifecycle state in pipeline order.
var TableStatuses = []string{TableStatusFree, TableStatusReserved, TableStatusConfirmed, TableStatusPaid}

// MenuCategories is the closed category set for menu items.
var MenuCategories = []string{
	CategoryChampagne,
	CategoryAperitif,
	CategoryBiere,
	CategoryEnergy,
	CategorySpirits,
	CategoryVin,
	CategorySoft,
}

// Currencies supported on events.
var Currencies = []string{"CHF", "EUR", "USD"}

// PaymentMethods supported on table payments.
var PaymentMethods = []string{"virement", "carte", "twint", "especes", "autre"}
