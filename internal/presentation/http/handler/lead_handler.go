package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/application/service"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	domainRepo "github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/internal/presentation/http/dto/response"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// List handles listing leads
func (h *LeadHandler) List(c *gin.Context) {
	params := &domainRepo.LeadFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		var status enum.LeadStatus
		if err := status.UnmarshalJSON([]byte(`"` + statusStr + `"`)); err == nil {
			params.Status = &status
		}
	}
	if ownerIDStr := c.Query("owner_id"); ownerIDStr != "" {
		if ownerID, err := uuid.Parse(ownerIDStr); err == nil {
			params.OwnerID = &ownerID
		}
	}

	result, err := h.leadService.ListLeads(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// Create handles creating a lead
func (h *LeadHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name       string  `json:"name" binding:"required"`
		Source     string  `json:"source"`
		Department string  `json:"department"`
		Notes      *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &service.CreateLeadInput{
		Name:       req.Name,
		Source:     req.Source,
		Department: req.Department,
		OwnerID:    *userID,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead created successfully", lead)
}

// Get handles getting a single lead
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", lead)
}

// Update handles updating a lead
func (h *LeadHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req struct {
		Name       *string          `json:"name"`
		Source     *string          `json:"source"`
		Department *string          `json:"department"`
		Status     *enum.LeadStatus `json:"status"`
		Notes      *string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), *userID, id, &service.UpdateLeadInput{
		Name:       req.Name,
		Source:     req.Source,
		Department: req.Department,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead updated successfully", lead)
}

// Delete handles deleting a lead
func (h *LeadHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Convert handles converting a lead into an opportunity
func (h *LeadHandler) Convert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req struct {
		Title string  `json:"title"`
		Value float64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.leadService.ConvertLead(c.Request.Context(), *userID, id, &service.ConvertLeadInput{
		Title: req.Title,
		Value: req.Value,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead converted successfully", result)
}

// OpportunityHandler handles opportunity-related HTTP requests
type OpportunityHandler struct {
	opportunityService *service.OpportunityService
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(opportunityService *service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunityService: opportunityService}
}

// List handles listing opportunities
func (h *OpportunityHandler) List(c *gin.Context) {
	params := &domainRepo.OpportunityFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
	}

	if stageStr := c.Query("stage"); stageStr != "" {
		var stage enum.OpportunityStage
		if err := stage.UnmarshalJSON([]byte(`"` + stageStr + `"`)); err == nil {
			params.Stage = &stage
		}
	}
	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		if assigneeID, err := uuid.Parse(assigneeIDStr); err == nil {
			params.AssigneeID = &assigneeID
		}
	}

	result, err := h.opportunityService.ListOpportunities(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Opportunities retrieved successfully", result)
}

// Get handles getting a single opportunity
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid opportunity ID")
		return
	}

	opportunity, err := h.opportunityService.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Opportunity retrieved successfully", opportunity)
}

// Update handles updating an opportunity
func (h *OpportunityHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid opportunity ID")
		return
	}

	var req struct {
		Title *string                `json:"title"`
		Value *float64               `json:"value"`
		Stage *enum.OpportunityStage `json:"stage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	opportunity, err := h.opportunityService.UpdateOpportunity(c.Request.Context(), *userID, id, &service.UpdateOpportunityInput{
		Title: req.Title,
		Value: req.Value,
		Stage: req.Stage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Opportunity updated successfully", opportunity)
}
