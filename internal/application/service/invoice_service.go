package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/apperror"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// InvoiceService handles invoice creation, payment recording and status
// management
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	sequenceRepo repository.SequenceRepository
	txManager    repository.TxManager
	audit        *AuditService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	sequenceRepo repository.SequenceRepository,
	txManager repository.TxManager,
	audit *AuditService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		sequenceRepo: sequenceRepo,
		txManager:    txManager,
		audit:        audit,
	}
}

// InvoiceItemInput represents one line of an invoice being created
type InvoiceItemInput struct {
	ProductID  uuid.UUID
	Quantity   float64
	UnitPrice  float64
	TaxPercent float64
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	CreatedByID   uuid.UUID
	CustomerID    uuid.UUID
	DiscountType  enum.DiscountType
	DiscountValue float64
	Items         []InvoiceItemInput
}

// CreateInvoice validates the input, computes all totals and persists
// the invoice in Draft with the next invoice number. The whole invoice
// is rejected if any single line fails validation; nothing is written
// in that case.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.CustomerID == uuid.Nil {
		return nil, apperror.NewValidationError("Customer is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("Invoice must contain at least one item")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subTotal, taxTotal float64
	items := make([]entity.InvoiceItem, 0, len(input.Items))

	for _, item := range input.Items {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if !(item.Quantity > 0) {
			return nil, apperror.NewValidationError("Item quantity must be greater than zero")
		}
		if !(item.UnitPrice > 0) {
			return nil, apperror.NewValidationError("Item unit price must be greater than zero")
		}

		lineBase := item.Quantity * item.UnitPrice
		lineTax := lineBase * item.TaxPercent / 100
		subTotal += lineBase
		taxTotal += lineTax

		items = append(items, entity.InvoiceItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TaxPercent: item.TaxPercent,
			TaxAmount:  lineTax,
			LineTotal:  lineBase + lineTax,
		})
	}

	var discountAmount float64
	if input.DiscountType == enum.DiscountTypePercentage {
		discountAmount = subTotal * input.DiscountValue / 100
	} else {
		discountAmount = input.DiscountValue
	}
	if discountAmount < 0 {
		discountAmount = 0
	}
	if discountAmount > subTotal {
		discountAmount = subTotal
	}

	grandTotal := subTotal + taxTotal - discountAmount
	if grandTotal < 0 {
		grandTotal = 0
	}

	// Corrupt numeric input must not produce an invoice with a NaN or
	// infinite total.
	if math.IsNaN(grandTotal) || math.IsInf(grandTotal, 0) {
		return nil, apperror.NewValidationError("Invoice total is not a finite number")
	}

	number, err := s.sequenceRepo.Next(ctx, entity.SeriesInvoice, invoiceSeed)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		InvoiceNo:      formatInvoiceNo(number),
		CustomerID:     input.CustomerID,
		CreatedByID:    input.CreatedByID,
		SubTotal:       subTotal,
		TaxTotal:       taxTotal,
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		DiscountAmount: discountAmount,
		GrandTotal:     grandTotal,
		AmountPaid:     0,
		BalanceDue:     grandTotal,
		Status:         enum.InvoiceStatusDraft,
		Items:          items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.CreatedByID, AuditActionCreate, "invoice", invoice.ID, nil, invoice)

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// RecordPayment applies a payment to an invoice. The invoice row is
// locked for the duration of the update so concurrent payments
// serialize instead of losing increments. Overpayment is accepted; the
// balance floors at zero and no credit is tracked.
func (s *InvoiceService) RecordPayment(ctx context.Context, userID, invoiceID uuid.UUID, amount float64) (*entity.Invoice, error) {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, apperror.NewValidationError("Payment amount must be a positive number")
	}

	var updated *entity.Invoice
	err := s.txManager.Transaction(ctx, func(ctx context.Context) error {
		invoice, err := s.invoiceRepo.GetForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}

		before := *invoice

		invoice.AmountPaid += amount
		balance := invoice.GrandTotal - invoice.AmountPaid
		if balance <= 0 {
			balance = 0
			invoice.Status = enum.InvoiceStatusPaid
		} else {
			invoice.Status = enum.InvoiceStatusPartiallyPaid
		}
		invoice.BalanceDue = balance

		if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
			return err
		}

		updated = invoice
		s.audit.Record(ctx, userID, AuditActionPayment, "invoice", invoice.ID, &before, invoice)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateStatus overwrites the invoice status. No transition check is
// performed: the API contract allows any overwrite, including moving a
// Paid invoice back to Draft.
func (s *InvoiceService) UpdateStatus(ctx context.Context, userID, invoiceID uuid.UUID, status enum.InvoiceStatus) (*entity.Invoice, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError("Unknown invoice status")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	before := *invoice
	if err := s.invoiceRepo.UpdateStatus(ctx, invoiceID, status); err != nil {
		return nil, err
	}
	invoice.Status = status

	s.audit.Record(ctx, userID, AuditActionUpdate, "invoice", invoice.ID, &before, invoice)
	return invoice, nil
}

// DeleteInvoice deletes an invoice. Paid invoices are deletable; the
// audit entry is the only trace left behind.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	if err := s.invoiceRepo.Delete(ctx, invoiceID); err != nil {
		return err
	}

	s.audit.Record(ctx, userID, AuditActionDelete, "invoice", invoiceID, invoice, nil)
	return nil
}
