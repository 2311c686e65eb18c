package domain

import (
	"context"
	"errors"
	"time"

	"github.com/hardwarepoint/inventory/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListAuditLogRequest struct {
	pagination.Pagination
	Table     string
	RecordID  int64
	Operation string
	StartAt   *time.Time
	EndAt     *time.Time
}

type ListAuditLogResponse struct {
	pagination.PageInfo
	AuditLogs []AuditLog `json:"audit_logs"`
}

type Service interface {
	// Record appends one audit entry on the caller's transaction handle.
	// The entry commits or rolls back together with the mutation it
	// describes; Record never opens its own transaction.
	Record(ctx context.Context, tx *gorm.DB, table string, recordID int64, op Operation, oldData, newData map[string]any) error
	List(ctx context.Context, req ListAuditLogRequest) (ListAuditLogResponse, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *AuditLog) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*AuditLog, error)
}

var (
	ErrInvalidTable     = errors.New("invalid_table")
	ErrInvalidOperation = errors.New("invalid_operation")
	ErrInvalidPageToken = errors.New("invalid_page_token")
	ErrInvalidTimeRange = errors.New("invalid_time_range")
)
