package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/pkg/apperror"
)

type stockFixture struct {
	svc       *StockService
	stock     *fakeStockRepo
	product   *entity.Product
	warehouse *entity.Warehouse
	userID    uuid.UUID
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()

	products := newFakeProductRepo()
	warehouses := newFakeWarehouseRepo()
	stock := &fakeStockRepo{}
	auditSvc, _ := newTestAuditService()

	return &stockFixture{
		svc:       NewStockService(stock, products, warehouses, auditSvc),
		stock:     stock,
		product:   products.add(&entity.Product{Name: "Widget", SKU: "PROD-WIDGET01"}),
		warehouse: warehouses.add(&entity.Warehouse{Name: "Main"}),
		userID:    uuid.New(),
	}
}

func (f *stockFixture) adjust(t *testing.T, qty int, dir enum.StockDirection) {
	t.Helper()
	_, err := f.svc.AdjustStock(context.Background(), &AdjustStockInput{
		CreatedByID: f.userID,
		ProductID:   f.product.ID,
		WarehouseID: f.warehouse.ID,
		Quantity:    qty,
		Direction:   dir,
		Reference:   "manual",
	})
	require.NoError(t, err)
}

func TestAdjustStock_AppendsLedgerRow(t *testing.T) {
	f := newStockFixture(t)

	txn, err := f.svc.AdjustStock(context.Background(), &AdjustStockInput{
		CreatedByID: f.userID,
		ProductID:   f.product.ID,
		WarehouseID: f.warehouse.ID,
		Quantity:    5,
		Direction:   enum.StockDirectionIn,
		Reference:   "opening balance",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.Equal(t, 5, txn.Quantity)
	assert.Equal(t, enum.StockDirectionIn, txn.Direction)
	assert.Equal(t, "opening balance", txn.Reference)
	assert.Len(t, f.stock.txns, 1)
}

func TestAdjustStock_Validation(t *testing.T) {
	f := newStockFixture(t)

	_, err := f.svc.AdjustStock(context.Background(), &AdjustStockInput{
		CreatedByID: f.userID,
		ProductID:   f.product.ID,
		WarehouseID: f.warehouse.ID,
		Quantity:    0,
		Direction:   enum.StockDirectionIn,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.AdjustStock(context.Background(), &AdjustStockInput{
		CreatedByID: f.userID,
		ProductID:   uuid.New(),
		WarehouseID: f.warehouse.ID,
		Quantity:    1,
		Direction:   enum.StockDirectionIn,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	_, err = f.svc.AdjustStock(context.Background(), &AdjustStockInput{
		CreatedByID: f.userID,
		ProductID:   f.product.ID,
		WarehouseID: uuid.New(),
		Quantity:    1,
		Direction:   enum.StockDirectionIn,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	assert.Empty(t, f.stock.txns)
}

func TestGetSummary_SeparatesInAndOut(t *testing.T) {
	f := newStockFixture(t)

	f.adjust(t, 10, enum.StockDirectionIn)
	f.adjust(t, 4, enum.StockDirectionOut)
	f.adjust(t, 2, enum.StockDirectionOut)

	summary, err := f.svc.GetSummary(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, summary, 1)
	// IN and OUT are reported separately, never netted into one figure.
	assert.Equal(t, int64(10), summary[0].InQty)
	assert.Equal(t, int64(6), summary[0].OutQty)
	assert.Equal(t, f.product.ID, summary[0].ProductID)
	assert.Equal(t, f.warehouse.ID, summary[0].WarehouseID)
}
