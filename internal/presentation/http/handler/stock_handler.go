package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/application/service"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	domainRepo "github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/internal/presentation/http/dto/response"
)

// StockHandler handles stock ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List handles listing stock ledger rows
func (h *StockHandler) List(c *gin.Context) {
	params := &domainRepo.StockFilterParams{
		Pagination: getPaginationParams(c),
	}

	if productIDStr := c.Query("product_id"); productIDStr != "" {
		if productID, err := uuid.Parse(productIDStr); err == nil {
			params.ProductID = &productID
		}
	}
	if warehouseIDStr := c.Query("warehouse_id"); warehouseIDStr != "" {
		if warehouseID, err := uuid.Parse(warehouseIDStr); err == nil {
			params.WarehouseID = &warehouseID
		}
	}

	result, err := h.stockService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock transactions retrieved successfully", result)
}

// Adjust handles a manual stock adjustment
func (h *StockHandler) Adjust(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		ProductID   uuid.UUID           `json:"product_id" binding:"required"`
		WarehouseID uuid.UUID           `json:"warehouse_id" binding:"required"`
		Quantity    int                 `json:"quantity" binding:"required"`
		Direction   enum.StockDirection `json:"direction"`
		Reference   string              `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	txn, err := h.stockService.AdjustStock(c.Request.Context(), &service.AdjustStockInput{
		CreatedByID: *userID,
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
		Direction:   req.Direction,
		Reference:   req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjustment recorded successfully", txn)
}

// Summary handles the stock summary aggregation
func (h *StockHandler) Summary(c *gin.Context) {
	var productID, warehouseID *uuid.UUID

	if productIDStr := c.Query("product_id"); productIDStr != "" {
		if id, err := uuid.Parse(productIDStr); err == nil {
			productID = &id
		}
	}
	if warehouseIDStr := c.Query("warehouse_id"); warehouseIDStr != "" {
		if id, err := uuid.Parse(warehouseIDStr); err == nil {
			warehouseID = &id
		}
	}

	summary, err := h.stockService.GetSummary(c.Request.Context(), productID, warehouseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock summary retrieved successfully", summary)
}
