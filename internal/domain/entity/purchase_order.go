package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PurchaseOrder represents an inbound order from a vendor. Receiving a
// purchase order emits one stock-IN transaction per line item; there is
// no reverse operation.
type PurchaseOrder struct {
	ID           uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo      string                   `gorm:"size:100;unique;not null" json:"order_no"`
	VendorID     uuid.UUID                `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Status       enum.PurchaseOrderStatus `gorm:"default:0" json:"status"`
	CreatedByID  uuid.UUID                `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	ReceivedByID *uuid.UUID               `gorm:"type:uuid;column:received_by" json:"received_by,omitempty"`
	ReceivedAt   *time.Time               `json:"received_at,omitempty"`
	WarehouseID  *uuid.UUID               `gorm:"type:uuid;index" json:"warehouse_id,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	DeletedAt    gorm.DeletedAt           `gorm:"index" json:"-"`

	// Relationships
	Vendor    Vendor              `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CreatedBy User                `gorm:"foreignKey:CreatedByID" json:"-"`
	Warehouse *Warehouse          `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Items     []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (po *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ProductID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	UnitCost        float64        `gorm:"type:decimal(15,2);not null" json:"unit_cost"`
	Total           float64        `gorm:"type:decimal(15,2);default:0" json:"total"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	Product       Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order item
func (poi *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if poi.ID == uuid.Nil {
		poi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
