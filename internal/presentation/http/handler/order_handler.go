package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/application/service"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	domainRepo "github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/internal/presentation/http/dto/response"
)

// SalesOrderHandler handles sales order HTTP requests
type SalesOrderHandler struct {
	orderService *service.SalesOrderService
}

// NewSalesOrderHandler creates a new sales order handler
func NewSalesOrderHandler(orderService *service.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{orderService: orderService}
}

// List handles listing sales orders
func (h *SalesOrderHandler) List(c *gin.Context) {
	params := &domainRepo.SalesOrderFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		var status enum.SalesOrderStatus
		if err := status.UnmarshalJSON([]byte(`"` + statusStr + `"`)); err == nil {
			params.Status = &status
		}
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	result, err := h.orderService.ListSalesOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales orders retrieved successfully", result)
}

// Create handles creating a sales order
func (h *SalesOrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID uuid.UUID `json:"customer_id" binding:"required"`
		Items      []struct {
			ProductID uuid.UUID `json:"product_id" binding:"required"`
			Quantity  int       `json:"quantity" binding:"required"`
			UnitPrice float64   `json:"unit_price"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.SalesOrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SalesOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	order, err := h.orderService.CreateSalesOrder(c.Request.Context(), &service.CreateSalesOrderInput{
		CreatedByID: *userID,
		CustomerID:  req.CustomerID,
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sales order created successfully", order)
}

// Get handles getting a single sales order with its line items
func (h *SalesOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	order, err := h.orderService.GetSalesOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales order retrieved successfully", order)
}

// Approve handles approving a draft sales order
func (h *SalesOrderHandler) Approve(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	order, err := h.orderService.ApproveSalesOrder(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales order approved successfully", order)
}

// Deliver handles delivering an approved sales order
func (h *SalesOrderHandler) Deliver(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sales order ID")
		return
	}

	var req struct {
		WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.DeliverSalesOrder(c.Request.Context(), *userID, id, req.WarehouseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales order delivered successfully", order)
}

// PurchaseOrderHandler handles purchase order HTTP requests
type PurchaseOrderHandler struct {
	orderService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(orderService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// List handles listing purchase orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	params := &domainRepo.PurchaseOrderFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		var status enum.PurchaseOrderStatus
		if err := status.UnmarshalJSON([]byte(`"` + statusStr + `"`)); err == nil {
			params.Status = &status
		}
	}
	if vendorIDStr := c.Query("vendor_id"); vendorIDStr != "" {
		if vendorID, err := uuid.Parse(vendorIDStr); err == nil {
			params.VendorID = &vendorID
		}
	}

	result, err := h.orderService.ListPurchaseOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Create handles creating a purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		VendorID uuid.UUID `json:"vendor_id" binding:"required"`
		Items    []struct {
			ProductID uuid.UUID `json:"product_id" binding:"required"`
			Quantity  int       `json:"quantity" binding:"required"`
			UnitCost  float64   `json:"unit_cost"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.PurchaseOrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.PurchaseOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}
	}

	order, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), &service.CreatePurchaseOrderInput{
		CreatedByID: *userID,
		VendorID:    req.VendorID,
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", order)
}

// Get handles getting a single purchase order with its line items
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", order)
}

// Receive handles receiving a draft purchase order
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req struct {
		WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.ReceivePurchaseOrder(c.Request.Context(), *userID, id, req.WarehouseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order received successfully", order)
}
