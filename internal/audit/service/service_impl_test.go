package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	"github.com/hardwarepoint/inventory/internal/audit/repository"
	"github.com/hardwarepoint/inventory/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (auditdomain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auditdomain.AuditLog{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	svc := NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  repository.Provide(),
	})
	return svc, db, fake
}

func TestRecord_WritesEntry(t *testing.T) {
	svc, db, fake := newTestService(t)
	ctx := context.Background()

	err := svc.Record(ctx, nil, "items", 42, auditdomain.OperationUpdate,
		map[string]any{"stock_quantity": 5.0},
		map[string]any{"stock_quantity": 8.0},
	)
	require.NoError(t, err)

	var entry auditdomain.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "items", entry.Table)
	assert.Equal(t, int64(42), entry.RecordID)
	assert.Equal(t, auditdomain.OperationUpdate, entry.Operation)
	assert.Equal(t, 5.0, entry.OldData["stock_quantity"])
	assert.Equal(t, 8.0, entry.NewData["stock_quantity"])
	assert.True(t, entry.CreatedAt.Equal(fake.Now()))
	assert.NotZero(t, entry.ID)
}

func TestRecord_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	err := svc.Record(ctx, nil, "", 1, auditdomain.OperationInsert, nil, nil)
	assert.ErrorIs(t, err, auditdomain.ErrInvalidTable)

	err = svc.Record(ctx, nil, "items", 1, auditdomain.Operation("UPSERT"), nil, nil)
	assert.ErrorIs(t, err, auditdomain.ErrInvalidOperation)
}

func TestRecord_RollsBackWithCallerTransaction(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := svc.Record(ctx, tx, "sales", 7, auditdomain.OperationInsert, nil,
			map[string]any{"total_amount": 118.0}); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&auditdomain.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestList_FiltersAndOrder(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	tables := []string{"items", "items", "sales"}
	for i, table := range tables {
		require.NoError(t, svc.Record(ctx, nil, table, int64(i+1), auditdomain.OperationInsert, nil,
			map[string]any{"n": float64(i)}))
		fake.Advance(time.Minute)
	}

	resp, err := svc.List(ctx, auditdomain.ListAuditLogRequest{Table: "items"})
	require.NoError(t, err)
	require.Len(t, resp.AuditLogs, 2)
	// Newest first.
	assert.True(t, resp.AuditLogs[0].CreatedAt.After(resp.AuditLogs[1].CreatedAt))

	resp, err = svc.List(ctx, auditdomain.ListAuditLogRequest{Table: "items", RecordID: 1})
	require.NoError(t, err)
	require.Len(t, resp.AuditLogs, 1)
	assert.Equal(t, int64(1), resp.AuditLogs[0].RecordID)

	resp, err = svc.List(ctx, auditdomain.ListAuditLogRequest{Operation: "INSERT"})
	require.NoError(t, err)
	assert.Len(t, resp.AuditLogs, 3)
}

func TestList_CursorPagination(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Record(ctx, nil, "items", int64(i+1), auditdomain.OperationInsert, nil,
			map[string]any{"n": float64(i)}))
		fake.Advance(time.Second)
	}

	var req auditdomain.ListAuditLogRequest
	req.PageSize = 2

	first, err := svc.List(ctx, req)
	require.NoError(t, err)
	require.Len(t, first.AuditLogs, 2)
	require.True(t, first.HasMore)
	require.NotEmpty(t, first.NextPageToken)

	req.PageToken = first.NextPageToken
	second, err := svc.List(ctx, req)
	require.NoError(t, err)
	require.Len(t, second.AuditLogs, 2)

	// Pages never overlap.
	seen := map[int64]bool{}
	for _, entry := range append(first.AuditLogs, second.AuditLogs...) {
		assert.False(t, seen[entry.RecordID])
		seen[entry.RecordID] = true
	}
}

func TestList_InvalidInput(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	var req auditdomain.ListAuditLogRequest
	req.PageToken = "not-base64!!"
	_, err := svc.List(ctx, req)
	assert.ErrorIs(t, err, auditdomain.ErrInvalidPageToken)

	start := fake.Now()
	end := start.Add(-time.Hour)
	_, err = svc.List(ctx, auditdomain.ListAuditLogRequest{StartAt: &start, EndAt: &end})
	assert.ErrorIs(t, err, auditdomain.ErrInvalidTimeRange)
}
