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

// SalesOrderService drives the sales order lifecycle:
// Draft -> Approved -> Delivered, each transition one-way.
type SalesOrderService struct {
	orderRepo     repository.SalesOrderRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	sequenceRepo  repository.SequenceRepository
	txManager     repository.TxManager
	audit         *AuditService
}

// NewSalesOrderService creates a new sales order service
func NewSalesOrderService(
	orderRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	sequenceRepo repository.SequenceRepository,
	txManager repository.TxManager,
	audit *AuditService,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		sequenceRepo:  sequenceRepo,
		txManager:     txManager,
		audit:         audit,
	}
}

// SalesOrderItemInput represents one line of a sales order being created
type SalesOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// CreateSalesOrderInput represents the create sales order input
type CreateSalesOrderInput struct {
	CreatedByID uuid.UUID
	CustomerID  uuid.UUID
	Items       []SalesOrderItemInput
}

// CreateSalesOrder creates a sales order in Draft with the next SO
// number. Every line item's product reference is validated before
// anything is written.
func (s *SalesOrderService) CreateSalesOrder(ctx context.Context, input *CreateSalesOrderInput) (*entity.SalesOrder, error) {
	if input.CustomerID == uuid.Nil {
		return nil, apperror.NewValidationError("Customer is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("Sales order must contain at least one item")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
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

	items := make([]entity.SalesOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if _, exists := productMap[item.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewValidationError("Item quantity must be greater than zero")
		}

		items = append(items, entity.SalesOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     float64(item.Quantity) * item.UnitPrice,
		})
	}

	number, err := s.sequenceRepo.Next(ctx, entity.SeriesSalesOrder, salesOrderSeed)
	if err != nil {
		return nil, err
	}

	order := &entity.SalesOrder{
		OrderNo:     formatSalesOrderNo(number),
		CustomerID:  input.CustomerID,
		Status:      enum.SalesOrderStatusDraft,
		CreatedByID: input.CreatedByID,
		Items:       items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.CreatedByID, AuditActionCreate, "sales_order", order.ID, nil, order)

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetSalesOrder retrieves a sales order by ID
func (s *SalesOrderService) GetSalesOrder(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Sales order")
	}
	return order, nil
}

// ListSalesOrders lists sales orders with filtering
func (s *SalesOrderService) ListSalesOrders(ctx context.Context, params *repository.SalesOrderFilterParams) (*pagination.PaginatedResult[entity.SalesOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ApproveSalesOrder moves a Draft order to Approved, stamping the
// approver and time. Any other current state is a conflict.
func (s *SalesOrderService) ApproveSalesOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.SalesOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Sales order")
	}

	if order.Status != enum.SalesOrderStatusDraft {
		return nil, apperror.NewStateConflictError(
			fmt.Sprintf("Sales order cannot be approved from %s state", order.Status))
	}

	before := *order
	now := time.Now()
	order.Status = enum.SalesOrderStatusApproved
	order.ApprovedByID = &userID
	order.ApprovedAt = &now

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionApprove, "sales_order", order.ID, &before, order)
	return order, nil
}

// DeliverSalesOrder moves an Approved order to Delivered. Each line
// item's product is re-resolved and one stock-OUT transaction is
// emitted per line at the destination warehouse. The order update and
// all ledger rows commit in a single transaction: if any product no
// longer exists, nothing is delivered.
func (s *SalesOrderService) DeliverSalesOrder(ctx context.Context, userID, orderID, warehouseID uuid.UUID) (*entity.SalesOrder, error) {
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
		return nil, apperror.NewNotFoundError("Sales order")
	}

	if order.Status != enum.SalesOrderStatusApproved {
		return nil, apperror.NewStateConflictError(
			fmt.Sprintf("Sales order cannot be delivered from %s state", order.Status))
	}

	before := *order
	err = s.txManager.Transaction(ctx, func(ctx context.Context) error {
		for _, item := range order.Items {
			product, err := s.productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
			}

			txn := &entity.StockTransaction{
				ProductID:   item.ProductID,
				WarehouseID: warehouseID,
				Quantity:    item.Quantity,
				Direction:   enum.StockDirectionOut,
				Reference:   order.OrderNo,
				CreatedByID: userID,
			}
			if err := s.stockRepo.Create(ctx, txn); err != nil {
				return err
			}
		}

		now := time.Now()
		order.Status = enum.SalesOrderStatusDelivered
		order.DeliveredByID = &userID
		order.DeliveredAt = &now
		order.WarehouseID = &warehouseID

		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionDeliver, "sales_order", order.ID, &before, order)
	return order, nil
}
