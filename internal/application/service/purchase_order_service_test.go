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

type purchaseOrderFixture struct {
	svc       *PurchaseOrderService
	orders    *fakePurchaseOrderRepo
	stock     *fakeStockRepo
	vendor    *entity.Vendor
	product   *entity.Product
	warehouse *entity.Warehouse
	userID    uuid.UUID
}

func newPurchaseOrderFixture(t *testing.T) *purchaseOrderFixture {
	t.Helper()

	orders := newFakePurchaseOrderRepo()
	products := newFakeProductRepo()
	vendors := newFakeVendorRepo()
	warehouses := newFakeWarehouseRepo()
	stock := &fakeStockRepo{}
	auditSvc, _ := newTestAuditService()

	svc := NewPurchaseOrderService(orders, products, vendors, warehouses, stock,
		newFakeSequenceRepo(), &fakeTxManager{}, auditSvc)

	return &purchaseOrderFixture{
		svc:       svc,
		orders:    orders,
		stock:     stock,
		vendor:    vendors.add(&entity.Vendor{Name: "Supplies Inc"}),
		product:   products.add(&entity.Product{Name: "Widget", SKU: "PROD-WIDGET01", CostPrice: 10}),
		warehouse: warehouses.add(&entity.Warehouse{Name: "Main"}),
		userID:    uuid.New(),
	}
}

func (f *purchaseOrderFixture) createOrder(t *testing.T, quantity int) *entity.PurchaseOrder {
	t.Helper()
	order, err := f.svc.CreatePurchaseOrder(context.Background(), &CreatePurchaseOrderInput{
		CreatedByID: f.userID,
		VendorID:    f.vendor.ID,
		Items: []PurchaseOrderItemInput{
			{ProductID: f.product.ID, Quantity: quantity, UnitCost: 10},
		},
	})
	require.NoError(t, err)
	return order
}

func TestCreatePurchaseOrder_StartsInDraft(t *testing.T) {
	f := newPurchaseOrderFixture(t)

	order := f.createOrder(t, 8)

	// PO numbering tracks document count, so the first order is PO-1.
	assert.Equal(t, "PO-1", order.OrderNo)
	assert.Equal(t, enum.PurchaseOrderStatusDraft, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 80.0, order.Items[0].Total)
	assert.Nil(t, order.ReceivedByID)

	second := f.createOrder(t, 1)
	assert.Equal(t, "PO-2", second.OrderNo)
}

func TestCreatePurchaseOrder_RejectsBadInput(t *testing.T) {
	f := newPurchaseOrderFixture(t)

	_, err := f.svc.CreatePurchaseOrder(context.Background(), &CreatePurchaseOrderInput{
		CreatedByID: f.userID,
		VendorID:    f.vendor.ID,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.CreatePurchaseOrder(context.Background(), &CreatePurchaseOrderInput{
		CreatedByID: f.userID,
		VendorID:    uuid.New(),
		Items:       []PurchaseOrderItemInput{{ProductID: f.product.ID, Quantity: 1, UnitCost: 10}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	_, err = f.svc.CreatePurchaseOrder(context.Background(), &CreatePurchaseOrderInput{
		CreatedByID: f.userID,
		VendorID:    f.vendor.ID,
		Items:       []PurchaseOrderItemInput{{ProductID: f.product.ID, Quantity: -2, UnitCost: 10}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestReceivePurchaseOrder_EmitsStockIn(t *testing.T) {
	f := newPurchaseOrderFixture(t)
	order := f.createOrder(t, 8)

	received, err := f.svc.ReceivePurchaseOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.PurchaseOrderStatusReceived, received.Status)
	require.NotNil(t, received.ReceivedByID)
	assert.Equal(t, f.userID, *received.ReceivedByID)
	assert.NotNil(t, received.ReceivedAt)
	require.NotNil(t, received.WarehouseID)
	assert.Equal(t, f.warehouse.ID, *received.WarehouseID)

	require.Len(t, f.stock.txns, 1)
	txn := f.stock.txns[0]
	assert.Equal(t, enum.StockDirectionIn, txn.Direction)
	assert.Equal(t, f.product.ID, txn.ProductID)
	assert.Equal(t, 8, txn.Quantity)
	assert.Equal(t, order.OrderNo, txn.Reference)
}

func TestReceivePurchaseOrder_RejectsSecondReceive(t *testing.T) {
	f := newPurchaseOrderFixture(t)
	order := f.createOrder(t, 8)

	_, err := f.svc.ReceivePurchaseOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.NoError(t, err)

	_, err = f.svc.ReceivePurchaseOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	// No duplicate ledger rows from the rejected receive.
	assert.Len(t, f.stock.txns, 1)
}

func TestReceivePurchaseOrder_RequiresWarehouse(t *testing.T) {
	f := newPurchaseOrderFixture(t)
	order := f.createOrder(t, 8)

	_, err := f.svc.ReceivePurchaseOrder(context.Background(), f.userID, order.ID, uuid.Nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.ReceivePurchaseOrder(context.Background(), f.userID, order.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	assert.Empty(t, f.stock.txns)
}

func TestReceivePurchaseOrder_UnknownOrder(t *testing.T) {
	f := newPurchaseOrderFixture(t)

	_, err := f.svc.ReceivePurchaseOrder(context.Background(), f.userID, uuid.New(), f.warehouse.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
