package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/apperror"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// PurchaseOrderService drives the purchase order lifecycle:
// Draft -> Received, with no reverse operation.
type PurchaseOrderService struct {
	orderRepo     repository.PurchaseOrderRepository
	productRepo   repository.ProductRepository
	vendorRepo    repository.VendorRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	sequenceRepo  repository.SequenceRepository
	txManager     repository.TxManager
	audit         *AuditService
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	sequenceRepo repository.SequenceRepository,
	txManager repository.TxManager,
	audit *AuditService,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		vendorRepo:    vendorRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		sequenceRepo:  sequenceRepo,
		txManager:     txManager,
		audit:         audit,
	}
}

// PurchaseOrderItemInput represents one line of a purchase order being created
type PurchaseOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  float64
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	CreatedByID uuid.UUID
	VendorID    uuid.UUID
	Items       []PurchaseOrderItemInput
}

// CreatePurchaseOrder creates a purchase order in Draft with the next
// PO number
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	if input.VendorID == uuid.Nil {
		return nil, apperror.NewValidationError("Vendor is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("Purchase order must contain at least one item")
	}

	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

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

	items := make([]entity.PurchaseOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewValidationError("Item quantity must be greater than zero")
		}

		items = append(items, entity.PurchaseOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Total:     float64(item.Quantity) * item.UnitCost,
		})
	}

	number, err := s.sequenceRepo.Next(ctx, entity.SeriesPurchaseOrder, purchaseOrderSeed)
	if err != nil {
		return nil, err
	}

	order := &entity.PurchaseOrder{
		OrderNo:     formatPurchaseOrderNo(number),
		VendorID:    input.VendorID,
		Status:      enum.PurchaseOrderStatusDraft,
		CreatedByID: input.CreatedByID,
		Items:       items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.CreatedByID, AuditActionCreate, "purchase_order", order.ID, nil, order)

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetPurchaseOrder retrieves a purchase order by ID
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// ListPurchaseOrders lists purchase orders with filtering
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params *repository.PurchaseOrderFilterParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ReceivePurchaseOrder moves a Draft order to Received, emitting one
// stock-IN transaction per line item at the requested warehouse. The
// order update and ledger rows commit in a single transaction. A
// received order cannot be unreceived.
func (s *PurchaseOrderService) ReceivePurchaseOrder(ctx context.Context, userID, orderID, warehouseID uuid.UUID) (*entity.PurchaseOrder, error) {
	if warehouseID == uuid.Nil {
		return nil, apperror.NewValidationError("Destination warehouse is required")
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}

	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}

	if order.Status != enum.PurchaseOrderStatusDraft {
		return nil, apperror.NewStateConflictError(
			fmt.Sprintf("Purchase order cannot be received from %s state", order.Status))
	}

	before := *order
	err = s.txManager.Transaction(ctx, func(ctx context.Context) error {
		for _, item := range order.Items {
			txn := &entity.StockTransaction{
				ProductID:   item.ProductID,
				WarehouseID: warehouseID,
				Quantity:    item.Quantity,
				Direction:   enum.StockDirectionIn,
				Reference:   order.OrderNo,
				CreatedByID: userID,
			}
			if err := s.stockRepo.Create(ctx, txn); err != nil {
				return err
			}
		}

		now := time.Now()
		order.Status = enum.PurchaseOrderStatusReceived
		order.ReceivedByID = &userID
		order.ReceivedAt = &now
		order.WarehouseID = &warehouseID

		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionReceive, "purchase_order", order.ID, &before, order)
	return order, nil
}
