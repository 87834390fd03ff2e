package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// In-memory fakes shared across the service tests. Lookups follow the
// repository contract: not found is (nil, nil), never an error. Reads
// hand back copies so mutations only persist through Update, the same
// way a real database behaves.

type fakeTxManager struct {
	err error
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (m *fakeAuditRepo) Create(ctx context.Context, entry *entity.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *fakeAuditRepo) List(ctx context.Context, params *repository.AuditFilterParams) ([]entity.AuditLog, int64, error) {
	out := make([]entity.AuditLog, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func newTestAuditService() (*AuditService, *fakeAuditRepo) {
	repo := &fakeAuditRepo{}
	return NewAuditService(repo, zerolog.Nop()), repo
}

type fakeSequenceRepo struct {
	counters map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: make(map[string]int64)}
}

func (m *fakeSequenceRepo) Next(ctx context.Context, series string, seed int64) (int64, error) {
	if _, ok := m.counters[series]; !ok {
		m.counters[series] = seed
	}
	m.counters[series]++
	return m.counters[series], nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (m *fakeCustomerRepo) add(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.customers[c.ID] = c
	return c
}

func (m *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	m.add(customer)
	return nil
}

func (m *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	m.customers[customer.ID] = customer
	return nil
}

func (m *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.customers, id)
	return nil
}

func (m *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.customers)), nil
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (m *fakeVendorRepo) add(v *entity.Vendor) *entity.Vendor {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	m.vendors[v.ID] = v
	return v
}

func (m *fakeVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	m.add(vendor)
	return nil
}

func (m *fakeVendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, ok := m.vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *fakeVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	m.vendors[vendor.ID] = vendor
	return nil
}

func (m *fakeVendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.vendors, id)
	return nil
}

func (m *fakeVendorRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error) {
	out := make([]entity.Vendor, 0, len(m.vendors))
	for _, v := range m.vendors {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (m *fakeProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.products[p.ID] = p
	return p
}

func (m *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	m.add(product)
	return nil
}

func (m *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.products, id)
	return nil
}

func (m *fakeProductRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *fakeProductRepo) ListLowStock(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	warehouses map[uuid.UUID]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[uuid.UUID]*entity.Warehouse)}
}

func (m *fakeWarehouseRepo) add(w *entity.Warehouse) *entity.Warehouse {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	m.warehouses[w.ID] = w
	return w
}

func (m *fakeWarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	m.add(warehouse)
	return nil
}

func (m *fakeWarehouseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	w, ok := m.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (m *fakeWarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	m.warehouses[warehouse.ID] = warehouse
	return nil
}

func (m *fakeWarehouseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.warehouses, id)
	return nil
}

func (m *fakeWarehouseRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Warehouse, int64, error) {
	out := make([]entity.Warehouse, 0, len(m.warehouses))
	for _, w := range m.warehouses {
		out = append(out, *w)
	}
	return out, int64(len(out)), nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (m *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	cp := *invoice
	m.invoices[invoice.ID] = &cp
	return nil
}

func (m *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (m *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return m.GetByID(ctx, id)
}

func (m *fakeInvoiceRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return m.GetByID(ctx, id)
}

func (m *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	cp := *invoice
	m.invoices[invoice.ID] = &cp
	return nil
}

func (m *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	if inv, ok := m.invoices[id]; ok {
		inv.Status = status
	}
	return nil
}

func (m *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.invoices, id)
	return nil
}

func (m *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (m *fakeInvoiceRepo) TotalOutstanding(ctx context.Context) (float64, error) {
	var total float64
	for _, inv := range m.invoices {
		if inv.Status != enum.InvoiceStatusCancelled {
			total += inv.BalanceDue
		}
	}
	return total, nil
}

type fakeSalesOrderRepo struct {
	orders map[uuid.UUID]*entity.SalesOrder
}

func newFakeSalesOrderRepo() *fakeSalesOrderRepo {
	return &fakeSalesOrderRepo{orders: make(map[uuid.UUID]*entity.SalesOrder)}
}

func (m *fakeSalesOrderRepo) Create(ctx context.Context, order *entity.SalesOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *fakeSalesOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *fakeSalesOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	return m.GetByID(ctx, id)
}

func (m *fakeSalesOrderRepo) Update(ctx context.Context, order *entity.SalesOrder) error {
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *fakeSalesOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.orders, id)
	return nil
}

func (m *fakeSalesOrderRepo) List(ctx context.Context, params *repository.SalesOrderFilterParams) ([]entity.SalesOrder, int64, error) {
	out := make([]entity.SalesOrder, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

type fakePurchaseOrderRepo struct {
	orders map[uuid.UUID]*entity.PurchaseOrder
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{orders: make(map[uuid.UUID]*entity.PurchaseOrder)}
}

func (m *fakePurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *fakePurchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *fakePurchaseOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	return m.GetByID(ctx, id)
}

func (m *fakePurchaseOrderRepo) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *fakePurchaseOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.orders, id)
	return nil
}

func (m *fakePurchaseOrderRepo) List(ctx context.Context, params *repository.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	out := make([]entity.PurchaseOrder, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

type fakeStockRepo struct {
	txns []*entity.StockTransaction
}

func (m *fakeStockRepo) Create(ctx context.Context, txn *entity.StockTransaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	m.txns = append(m.txns, txn)
	return nil
}

func (m *fakeStockRepo) List(ctx context.Context, params *repository.StockFilterParams) ([]entity.StockTransaction, int64, error) {
	out := make([]entity.StockTransaction, 0, len(m.txns))
	for _, t := range m.txns {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (m *fakeStockRepo) Summary(ctx context.Context, productID, warehouseID *uuid.UUID) ([]entity.StockSummary, error) {
	type key struct {
		product   uuid.UUID
		warehouse uuid.UUID
	}
	agg := make(map[key]*entity.StockSummary)
	order := []key{}
	for _, t := range m.txns {
		if productID != nil && t.ProductID != *productID {
			continue
		}
		if warehouseID != nil && t.WarehouseID != *warehouseID {
			continue
		}
		k := key{t.ProductID, t.WarehouseID}
		s, ok := agg[k]
		if !ok {
			s = &entity.StockSummary{ProductID: t.ProductID, WarehouseID: t.WarehouseID}
			agg[k] = s
			order = append(order, k)
		}
		if t.Direction == enum.StockDirectionIn {
			s.InQty += int64(t.Quantity)
		} else {
			s.OutQty += int64(t.Quantity)
		}
	}
	out := make([]entity.StockSummary, 0, len(order))
	for _, k := range order {
		out = append(out, *agg[k])
	}
	return out, nil
}

type fakeLeadRepo struct {
	leads map[uuid.UUID]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[uuid.UUID]*entity.Lead)}
}

func (m *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	cp := *lead
	m.leads[lead.ID] = &cp
	return nil
}

func (m *fakeLeadRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	l, ok := m.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (m *fakeLeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	cp := *lead
	m.leads[lead.ID] = &cp
	return nil
}

func (m *fakeLeadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.leads, id)
	return nil
}

func (m *fakeLeadRepo) List(ctx context.Context, params *repository.LeadFilterParams) ([]entity.Lead, int64, error) {
	out := make([]entity.Lead, 0, len(m.leads))
	for _, l := range m.leads {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (m *fakeLeadRepo) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	for _, l := range m.leads {
		if l.Status != enum.LeadStatusConverted && l.Status != enum.LeadStatusLost {
			n++
		}
	}
	return n, nil
}

type fakeOpportunityRepo struct {
	opportunities map[uuid.UUID]*entity.Opportunity
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opportunities: make(map[uuid.UUID]*entity.Opportunity)}
}

func (m *fakeOpportunityRepo) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	if opportunity.ID == uuid.Nil {
		opportunity.ID = uuid.New()
	}
	cp := *opportunity
	m.opportunities[opportunity.ID] = &cp
	return nil
}

func (m *fakeOpportunityRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	o, ok := m.opportunities[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *fakeOpportunityRepo) Update(ctx context.Context, opportunity *entity.Opportunity) error {
	cp := *opportunity
	m.opportunities[opportunity.ID] = &cp
	return nil
}

func (m *fakeOpportunityRepo) List(ctx context.Context, params *repository.OpportunityFilterParams) ([]entity.Opportunity, int64, error) {
	out := make([]entity.Opportunity, 0, len(m.opportunities))
	for _, o := range m.opportunities {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}
