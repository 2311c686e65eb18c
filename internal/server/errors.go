package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
	invoicedomain "github.com/hardwarepoint/inventory/internal/invoice/domain"
	ledgerdomain "github.com/hardwarepoint/inventory/internal/ledger/domain"
	settingsdomain "github.com/hardwarepoint/inventory/internal/settings/domain"
	supplierdomain "github.com/hardwarepoint/inventory/internal/supplier/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
	Context map[string]any    `json:"context,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrConflict       = errors.New("conflict")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	var stockErr *catalogdomain.StockError
	if errors.As(err, &stockErr) {
		return http.StatusConflict, errorPayload{
			Type:    "insufficient_stock",
			Message: stockErr.Error(),
			Context: map[string]any{
				"item_id":   stockErr.ItemID,
				"sku":       stockErr.SKU,
				"available": stockErr.Available,
				"requested": stockErr.Requested,
			},
		}
	}

	var underflowErr *ledgerdomain.UnderflowError
	if errors.As(err, &underflowErr) {
		return http.StatusConflict, errorPayload{
			Type:    "would_underflow_stock",
			Message: underflowErr.Error(),
			Context: map[string]any{
				"item_id":   underflowErr.ItemID,
				"sku":       underflowErr.SKU,
				"available": underflowErr.Available,
				"requested": underflowErr.Requested,
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: conflictMessage(err),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isCatalogValidationError(err),
		isLedgerValidationError(err),
		errors.Is(err, supplierdomain.ErrInvalidName),
		errors.Is(err, settingsdomain.ErrInvalidShopName),
		errors.Is(err, auditdomain.ErrInvalidPageToken),
		errors.Is(err, auditdomain.ErrInvalidTimeRange):
		return true
	default:
		return false
	}
}

func isCatalogValidationError(err error) bool {
	switch {
	case errors.Is(err, catalogdomain.ErrInvalidName),
		errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, catalogdomain.ErrInvalidQuality),
		errors.Is(err, catalogdomain.ErrInvalidSize),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, catalogdomain.ErrInvalidGST),
		errors.Is(err, catalogdomain.ErrInvalidThreshold),
		errors.Is(err, catalogdomain.ErrNegativeStock):
		return true
	default:
		return false
	}
}

func isLedgerValidationError(err error) bool {
	switch {
	case errors.Is(err, ledgerdomain.ErrNoLines),
		errors.Is(err, ledgerdomain.ErrInvalidQuantity),
		errors.Is(err, ledgerdomain.ErrInvalidPrice),
		errors.Is(err, ledgerdomain.ErrInvalidGST),
		errors.Is(err, ledgerdomain.ErrInvalidDiscount),
		errors.Is(err, ledgerdomain.ErrInvalidSupplier):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, catalogdomain.ErrDuplicateName),
		errors.Is(err, catalogdomain.ErrDuplicateSKU),
		errors.Is(err, catalogdomain.ErrDuplicateItem),
		errors.Is(err, catalogdomain.ErrItemInUse):
		return true
	default:
		return false
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, catalogdomain.ErrItemInUse):
		return "item is referenced by purchases or sales"
	case errors.Is(err, catalogdomain.ErrDuplicateSKU):
		return "sku already exists"
	case errors.Is(err, catalogdomain.ErrDuplicateName):
		return "name already exists"
	case errors.Is(err, catalogdomain.ErrDuplicateItem):
		return "item already exists for this combination"
	default:
		return "conflict"
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, supplierdomain.ErrNotFound),
		errors.Is(err, ledgerdomain.ErrPurchaseNotFound),
		errors.Is(err, ledgerdomain.ErrSaleNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNoItems),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
