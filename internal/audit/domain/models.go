// Package domain defines the immutable audit trail written alongside every
// catalog and ledger mutation.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Operation string

const (
	OperationInsert Operation = "INSERT"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// AuditLog is one append-only entry. OldData and NewData hold JSON snapshots
// of the affected row: INSERT has only NewData, DELETE only OldData, UPDATE
// both.
type AuditLog struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Table     string            `gorm:"column:table_name;type:text;not null;index" json:"table_name"`
	RecordID  int64             `gorm:"not null;index" json:"record_id"`
	Operation Operation         `gorm:"type:text;not null" json:"operation"`
	OldData   datatypes.JSONMap `gorm:"type:jsonb" json:"old_data,omitempty"`
	NewData   datatypes.JSONMap `gorm:"type:jsonb" json:"new_data,omitempty"`
	CreatedAt time.Time         `gorm:"not null;index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

type AuditCursor struct {
	ID        snowflake.ID
	CreatedAt time.Time
}

type ListFilter struct {
	Table     string
	RecordID  int64
	Operation string
	StartAt   *time.Time
	EndAt     *time.Time
	Cursor    *AuditCursor
	Limit     int
}
