package entity

// Sequence series names. Invoice and sales order counters are seeded at
// 1000 so the first issued numbers are INV-1001 and SO-1001; the
// purchase order counter is seeded at 0 so its numbers track document
// count (PO-1, PO-2, ...).
const (
	SeriesInvoice       = "invoice"
	SeriesSalesOrder    = "sales_order"
	SeriesPurchaseOrder = "purchase_order"
)

// SequenceCounter backs the atomic number allocator. Each series holds
// its last issued value; allocation is a single upsert-increment so two
// concurrent creations can never read the same value.
type SequenceCounter struct {
	Series string `gorm:"size:50;primary_key" json:"series"`
	Value  int64  `gorm:"not null" json:"value"`
}

// TableName returns the table name for the SequenceCounter model
func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
