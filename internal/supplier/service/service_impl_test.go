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
	auditrepository "github.com/hardwarepoint/inventory/internal/audit/repository"
	auditservice "github.com/hardwarepoint/inventory/internal/audit/service"
	"github.com/hardwarepoint/inventory/internal/clock"
	ledgerdomain "github.com/hardwarepoint/inventory/internal/ledger/domain"
	"github.com/hardwarepoint/inventory/internal/supplier/domain"
	"github.com/hardwarepoint/inventory/internal/supplier/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Supplier{},
		&ledgerdomain.Purchase{},
		&ledgerdomain.PurchaseItem{},
		&auditdomain.AuditLog{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	audit := auditservice.NewService(auditservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
		Repo:  auditrepository.Provide(),
	})
	svc := New(Params{DB: db, Log: zap.NewNop(), Repo: repository.Provide(), Audit: audit})
	return svc, db
}

func TestCreateAndUpdateSupplier(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	phone := "+91 9876543210"
	created, err := svc.Create(ctx, domain.UpsertSupplierRequest{Name: "Sharma Hardware", Phone: &phone})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, domain.UpsertSupplierRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	updated, err := svc.Update(ctx, created.ID, domain.UpsertSupplierRequest{Name: "Sharma Distributors"})
	require.NoError(t, err)
	assert.Equal(t, "Sharma Distributors", updated.Name)

	var audits int64
	require.NoError(t, db.Model(&auditdomain.AuditLog{}).
		Where("table_name = ? AND record_id = ?", "suppliers", created.ID).
		Count(&audits).Error)
	assert.Equal(t, int64(2), audits)
}

func TestDeleteSupplier_ClearsPurchaseReferences(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.UpsertSupplierRequest{Name: "Verma Traders"})
	require.NoError(t, err)

	purchase := ledgerdomain.Purchase{SupplierID: &created.ID, PurchaseDate: time.Now().UTC()}
	require.NoError(t, db.Create(&purchase).Error)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var got ledgerdomain.Purchase
	require.NoError(t, db.First(&got, purchase.ID).Error)
	assert.Nil(t, got.SupplierID)
}
