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

type salesOrderFixture struct {
	svc       *SalesOrderService
	orders    *fakeSalesOrderRepo
	products  *fakeProductRepo
	stock     *fakeStockRepo
	customer  *entity.Customer
	product   *entity.Product
	warehouse *entity.Warehouse
	userID    uuid.UUID
}

func newSalesOrderFixture(t *testing.T) *salesOrderFixture {
	t.Helper()

	orders := newFakeSalesOrderRepo()
	products := newFakeProductRepo()
	customers := newFakeCustomerRepo()
	warehouses := newFakeWarehouseRepo()
	stock := &fakeStockRepo{}
	auditSvc, _ := newTestAuditService()

	svc := NewSalesOrderService(orders, products, customers, warehouses, stock,
		newFakeSequenceRepo(), &fakeTxManager{}, auditSvc)

	return &salesOrderFixture{
		svc:       svc,
		orders:    orders,
		products:  products,
		stock:     stock,
		customer:  customers.add(&entity.Customer{Name: "Acme Traders"}),
		product:   products.add(&entity.Product{Name: "Widget", SKU: "PROD-WIDGET01", UnitPrice: 25}),
		warehouse: warehouses.add(&entity.Warehouse{Name: "Main"}),
		userID:    uuid.New(),
	}
}

func (f *salesOrderFixture) createOrder(t *testing.T, quantity int) *entity.SalesOrder {
	t.Helper()
	order, err := f.svc.CreateSalesOrder(context.Background(), &CreateSalesOrderInput{
		CreatedByID: f.userID,
		CustomerID:  f.customer.ID,
		Items: []SalesOrderItemInput{
			{ProductID: f.product.ID, Quantity: quantity, UnitPrice: 25},
		},
	})
	require.NoError(t, err)
	return order
}

func TestCreateSalesOrder_StartsInDraft(t *testing.T) {
	f := newSalesOrderFixture(t)

	order := f.createOrder(t, 3)

	assert.Equal(t, "SO-1001", order.OrderNo)
	assert.Equal(t, enum.SalesOrderStatusDraft, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 75.0, order.Items[0].Total)
	assert.Nil(t, order.ApprovedByID)
	assert.Nil(t, order.DeliveredByID)
}

func TestCreateSalesOrder_RejectsBadInput(t *testing.T) {
	f := newSalesOrderFixture(t)

	_, err := f.svc.CreateSalesOrder(context.Background(), &CreateSalesOrderInput{
		CreatedByID: f.userID,
		CustomerID:  f.customer.ID,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.CreateSalesOrder(context.Background(), &CreateSalesOrderInput{
		CreatedByID: f.userID,
		CustomerID:  f.customer.ID,
		Items:       []SalesOrderItemInput{{ProductID: f.product.ID, Quantity: 0, UnitPrice: 25}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.CreateSalesOrder(context.Background(), &CreateSalesOrderInput{
		CreatedByID: f.userID,
		CustomerID:  uuid.New(),
		Items:       []SalesOrderItemInput{{ProductID: f.product.ID, Quantity: 1, UnitPrice: 25}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestApproveSalesOrder_FromDraft(t *testing.T) {
	f := newSalesOrderFixture(t)
	order := f.createOrder(t, 3)

	approved, err := f.svc.ApproveSalesOrder(context.Background(), f.userID, order.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.SalesOrderStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedByID)
	assert.Equal(t, f.userID, *approved.ApprovedByID)
	assert.NotNil(t, approved.ApprovedAt)
}

func TestApproveSalesOrder_RejectsNonDraft(t *testing.T) {
	f := newSalesOrderFixture(t)
	order := f.createOrder(t, 3)

	_, err := f.svc.ApproveSalesOrder(context.Background(), f.userID, order.ID)
	require.NoError(t, err)

	_, err = f.svc.ApproveSalesOrder(context.Background(), f.userID, order.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestDeliverSalesOrder_EmitsStockOut(t *testing.T) {
	f := newSalesOrderFixture(t)
	second := f.products.add(&entity.Product{Name: "Gadget", SKU: "PROD-GADGET01", UnitPrice: 40})

	order, err := f.svc.CreateSalesOrder(context.Background(), &CreateSalesOrderInput{
		CreatedByID: f.userID,
		CustomerID:  f.customer.ID,
		Items: []SalesOrderItemInput{
			{ProductID: f.product.ID, Quantity: 3, UnitPrice: 25},
			{ProductID: second.ID, Quantity: 5, UnitPrice: 40},
		},
	})
	require.NoError(t, err)

	_, err = f.svc.ApproveSalesOrder(context.Background(), f.userID, order.ID)
	require.NoError(t, err)

	delivered, err := f.svc.DeliverSalesOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.SalesOrderStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredByID)
	assert.Equal(t, f.userID, *delivered.DeliveredByID)
	require.NotNil(t, delivered.WarehouseID)
	assert.Equal(t, f.warehouse.ID, *delivered.WarehouseID)

	// One OUT ledger row per line, referencing the order number.
	require.Len(t, f.stock.txns, 2)
	for _, txn := range f.stock.txns {
		assert.Equal(t, enum.StockDirectionOut, txn.Direction)
		assert.Equal(t, f.warehouse.ID, txn.WarehouseID)
		assert.Equal(t, order.OrderNo, txn.Reference)
	}
	assert.Equal(t, 3, f.stock.txns[0].Quantity)
	assert.Equal(t, 5, f.stock.txns[1].Quantity)
}

func TestDeliverSalesOrder_RejectsDraft(t *testing.T) {
	f := newSalesOrderFixture(t)
	order := f.createOrder(t, 3)

	_, err := f.svc.DeliverSalesOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	assert.Empty(t, f.stock.txns)
}

func TestDeliverSalesOrder_RejectsRedelivery(t *testing.T) {
	f := newSalesOrderFixture(t)
	order := f.createOrder(t, 3)

	_, err := f.svc.ApproveSalesOrder(context.Background(), f.userID, order.ID)
	require.NoError(t, err)
	_, err = f.svc.DeliverSalesOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.NoError(t, err)

	_, err = f.svc.DeliverSalesOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	assert.Len(t, f.stock.txns, 1)
}

func TestDeliverSalesOrder_RequiresWarehouse(t *testing.T) {
	f := newSalesOrderFixture(t)
	order := f.createOrder(t, 3)

	_, err := f.svc.ApproveSalesOrder(context.Background(), f.userID, order.ID)
	require.NoError(t, err)

	_, err = f.svc.DeliverSalesOrder(context.Background(), f.userID, order.ID, uuid.Nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	_, err = f.svc.DeliverSalesOrder(context.Background(), f.userID, order.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestDeliverSalesOrder_MissingProductAbortsDelivery(t *testing.T) {
	f := newSalesOrderFixture(t)
	order := f.createOrder(t, 3)

	_, err := f.svc.ApproveSalesOrder(context.Background(), f.userID, order.ID)
	require.NoError(t, err)

	// Product deleted between approval and delivery.
	require.NoError(t, f.products.Delete(context.Background(), f.product.ID))

	_, err = f.svc.DeliverSalesOrder(context.Background(), f.userID, order.ID, f.warehouse.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	stored, err := f.orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.SalesOrderStatusApproved, stored.Status)
	assert.Empty(t, f.stock.txns)
}
