package service

import (
	"context"

	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
)

// DashboardService aggregates headline figures for the landing screen
type DashboardService struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
	leadRepo     repository.LeadRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	leadRepo repository.LeadRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		leadRepo:     leadRepo,
	}
}

// DashboardSummary holds the headline counts and totals
type DashboardSummary struct {
	TotalCustomers     int64            `json:"total_customers"`
	TotalProducts      int64            `json:"total_products"`
	OpenLeads          int64            `json:"open_leads"`
	OutstandingBalance float64          `json:"outstanding_balance"`
	LowStockProducts   []entity.Product `json:"low_stock_products"`
}

// GetSummary collects the dashboard figures
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	openLeads, err := s.leadRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.invoiceRepo.TotalOutstanding(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalCustomers:     customers,
		TotalProducts:      products,
		OpenLeads:          openLeads,
		OutstandingBalance: outstanding,
		LowStockProducts:   lowStock,
	}, nil
}
