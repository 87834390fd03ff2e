package service

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/pkg/apperror"
)

type invoiceFixture struct {
	svc       *InvoiceService
	invoices  *fakeInvoiceRepo
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	audit     *fakeAuditRepo
	customer  *entity.Customer
	product   *entity.Product
	userID    uuid.UUID
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	invoices := newFakeInvoiceRepo()
	customers := newFakeCustomerRepo()
	products := newFakeProductRepo()
	auditSvc, auditRepo := newTestAuditService()

	svc := NewInvoiceService(invoices, customers, products, newFakeSequenceRepo(), &fakeTxManager{}, auditSvc)

	return &invoiceFixture{
		svc:       svc,
		invoices:  invoices,
		customers: customers,
		products:  products,
		audit:     auditRepo,
		customer:  customers.add(&entity.Customer{Name: "Acme Traders"}),
		product:   products.add(&entity.Product{Name: "Widget", SKU: "PROD-WIDGET01", UnitPrice: 100}),
		userID:    uuid.New(),
	}
}

func TestCreateInvoice_ComputesTotals(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CreatedByID:   f.userID,
		CustomerID:    f.customer.ID,
		DiscountType:  enum.DiscountTypeFlat,
		DiscountValue: 20,
		Items: []InvoiceItemInput{
			{ProductID: f.product.ID, Quantity: 2, UnitPrice: 100, TaxPercent: 10},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", invoice.InvoiceNo)
	assert.Equal(t, enum.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, 200.0, invoice.SubTotal)
	assert.Equal(t, 20.0, invoice.TaxTotal)
	assert.Equal(t, 20.0, invoice.DiscountAmount)
	assert.Equal(t, 200.0, invoice.GrandTotal)
	assert.Equal(t, 0.0, invoice.AmountPaid)
	assert.Equal(t, 200.0, invoice.BalanceDue)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, 20.0, invoice.Items[0].TaxAmount)
	assert.Equal(t, 220.0, invoice.Items[0].LineTotal)
}

func TestCreateInvoice_SequentialNumbers(t *testing.T) {
	f := newInvoiceFixture(t)

	input := &CreateInvoiceInput{
		CreatedByID: f.userID,
		CustomerID:  f.customer.ID,
		Items:       []InvoiceItemInput{{ProductID: f.product.ID, Quantity: 1, UnitPrice: 50}},
	}

	first, err := f.svc.CreateInvoice(context.Background(), input)
	require.NoError(t, err)
	second, err := f.svc.CreateInvoice(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", first.InvoiceNo)
	assert.Equal(t, "INV-1002", second.InvoiceNo)
}

func TestCreateInvoice_PercentageDiscount(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CreatedByID:   f.userID,
		CustomerID:    f.customer.ID,
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		Items: []InvoiceItemInput{
			{ProductID: f.product.ID, Quantity: 4, UnitPrice: 50},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, invoice.SubTotal)
	assert.Equal(t, 20.0, invoice.DiscountAmount)
	assert.Equal(t, 180.0, invoice.GrandTotal)
}

func TestCreateInvoice_DiscountClampedToSubtotal(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CreatedByID:   f.userID,
		CustomerID:    f.customer.ID,
		DiscountType:  enum.DiscountTypeFlat,
		DiscountValue: 500,
		Items: []InvoiceItemInput{
			{ProductID: f.product.ID, Quantity: 2, UnitPrice: 100},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, invoice.DiscountAmount)
	assert.Equal(t, 0.0, invoice.GrandTotal)
	assert.Equal(t, 0.0, invoice.BalanceDue)
}

func TestCreateInvoice_NegativeDiscountClampedToZero(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CreatedByID:   f.userID,
		CustomerID:    f.customer.ID,
		DiscountType:  enum.DiscountTypeFlat,
		DiscountValue: -50,
		Items: []InvoiceItemInput{
			{ProductID: f.product.ID, Quantity: 1, UnitPrice: 100},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, invoice.DiscountAmount)
	assert.Equal(t, 100.0, invoice.GrandTotal)
}

func TestCreateInvoice_RejectsBadLines(t *testing.T) {
	f := newInvoiceFixture(t)

	cases := []struct {
		name  string
		items []InvoiceItemInput
		code  int
	}{
		{
			name:  "no items",
			items: nil,
			code:  http.StatusUnprocessableEntity,
		},
		{
			name:  "zero quantity",
			items: []InvoiceItemInput{{ProductID: f.product.ID, Quantity: 0, UnitPrice: 100}},
			code:  http.StatusUnprocessableEntity,
		},
		{
			name:  "negative unit price",
			items: []InvoiceItemInput{{ProductID: f.product.ID, Quantity: 1, UnitPrice: -5}},
			code:  http.StatusUnprocessableEntity,
		},
		{
			name:  "unknown product",
			items: []InvoiceItemInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: 100}},
			code:  http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
				CreatedByID: f.userID,
				CustomerID:  f.customer.ID,
				Items:       tc.items,
			})
			require.Error(t, err)
			assert.Equal(t, tc.code, apperror.GetAppError(err).Code)
		})
	}

	// Nothing may be written when a line fails validation.
	assert.Empty(t, f.invoices.invoices)
}

func TestCreateInvoice_RejectsUnknownCustomer(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CreatedByID: f.userID,
		CustomerID:  uuid.New(),
		Items:       []InvoiceItemInput{{ProductID: f.product.ID, Quantity: 1, UnitPrice: 100}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateInvoice_RejectsNonFiniteTotal(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CreatedByID: f.userID,
		CustomerID:  f.customer.ID,
		Items: []InvoiceItemInput{
			{ProductID: f.product.ID, Quantity: 1, UnitPrice: math.MaxFloat64, TaxPercent: math.MaxFloat64},
		},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func createTestInvoice(t *testing.T, f *invoiceFixture) *entity.Invoice {
	t.Helper()
	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CreatedByID: f.userID,
		CustomerID:  f.customer.ID,
		Items: []InvoiceItemInput{
			{ProductID: f.product.ID, Quantity: 2, UnitPrice: 100},
		},
	})
	require.NoError(t, err)
	return invoice
}

func TestRecordPayment_PartialThenFull(t *testing.T) {
	f := newInvoiceFixture(t)
	invoice := createTestInvoice(t, f)

	updated, err := f.svc.RecordPayment(context.Background(), f.userID, invoice.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPartiallyPaid, updated.Status)
	assert.Equal(t, 150.0, updated.AmountPaid)
	assert.Equal(t, 50.0, updated.BalanceDue)

	updated, err = f.svc.RecordPayment(context.Background(), f.userID, invoice.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, updated.Status)
	assert.Equal(t, 200.0, updated.AmountPaid)
	assert.Equal(t, 0.0, updated.BalanceDue)

	// The update must have been persisted, not just returned.
	stored, err := f.svc.GetInvoice(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, stored.Status)
}

func TestRecordPayment_OverpaymentFloorsBalanceAtZero(t *testing.T) {
	f := newInvoiceFixture(t)
	invoice := createTestInvoice(t, f)

	updated, err := f.svc.RecordPayment(context.Background(), f.userID, invoice.ID, 500)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, updated.Status)
	assert.Equal(t, 500.0, updated.AmountPaid)
	assert.Equal(t, 0.0, updated.BalanceDue)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	f := newInvoiceFixture(t)
	invoice := createTestInvoice(t, f)

	for _, amount := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := f.svc.RecordPayment(context.Background(), f.userID, invoice.ID, amount)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	}
}

func TestRecordPayment_UnknownInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.RecordPayment(context.Background(), f.userID, uuid.New(), 100)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateStatus_AllowsAnyOverwrite(t *testing.T) {
	f := newInvoiceFixture(t)
	invoice := createTestInvoice(t, f)

	_, err := f.svc.RecordPayment(context.Background(), f.userID, invoice.ID, 200)
	require.NoError(t, err)

	// Paid back to Draft is allowed; the status field is a plain overwrite.
	updated, err := f.svc.UpdateStatus(context.Background(), f.userID, invoice.ID, enum.InvoiceStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusDraft, updated.Status)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := newInvoiceFixture(t)
	invoice := createTestInvoice(t, f)

	_, err := f.svc.UpdateStatus(context.Background(), f.userID, invoice.ID, enum.InvoiceStatus(99))
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestDeleteInvoice_WritesAuditEntry(t *testing.T) {
	f := newInvoiceFixture(t)
	invoice := createTestInvoice(t, f)

	require.NoError(t, f.svc.DeleteInvoice(context.Background(), f.userID, invoice.ID))

	_, err := f.svc.GetInvoice(context.Background(), invoice.ID)
	require.Error(t, err)

	var actions []string
	for _, e := range f.audit.entries {
		actions = append(actions, e.Action)
	}
	assert.Contains(t, actions, AuditActionDelete)
}
