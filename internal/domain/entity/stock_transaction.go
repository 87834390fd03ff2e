package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockTransaction is one row of the append-only stock ledger. Rows are
// never updated or deleted; inventory on hand is derived by aggregation.
type StockTransaction struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ProductID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	WarehouseID uuid.UUID           `gorm:"type:uuid;not null;index" json:"warehouse_id"`
	Quantity    int                 `gorm:"not null" json:"quantity"`
	Direction   enum.StockDirection `gorm:"not null" json:"direction"`
	Reference   string              `gorm:"size:255" json:"reference"`
	CreatedByID uuid.UUID           `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`

	// Relationships
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Warehouse Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	CreatedBy User      `gorm:"foreignKey:CreatedByID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock transaction
func (st *StockTransaction) BeforeCreate(tx *gorm.DB) error {
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockTransaction model
func (StockTransaction) TableName() string {
	return "stock_transactions"
}

// StockSummary reports the aggregated IN and OUT quantities for one
// (product, warehouse) pair. The two sums are reported separately; the
// on-hand figure is left to the caller.
type StockSummary struct {
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	InQty       int64     `json:"in_qty"`
	OutQty      int64     `json:"out_qty"`
}
