package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SalesOrder represents an outbound order. Approval and delivery stamp
// the acting user and time; delivery emits one stock-OUT transaction
// per line item.
type SalesOrder struct {
	ID            uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo       string                `gorm:"size:100;unique;not null" json:"order_no"`
	CustomerID    uuid.UUID             `gorm:"type:uuid;not null;index" json:"customer_id"`
	Status        enum.SalesOrderStatus `gorm:"default:0" json:"status"`
	CreatedByID   uuid.UUID             `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	ApprovedByID  *uuid.UUID            `gorm:"type:uuid;column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt    *time.Time            `json:"approved_at,omitempty"`
	DeliveredByID *uuid.UUID            `gorm:"type:uuid;column:delivered_by" json:"delivered_by,omitempty"`
	DeliveredAt   *time.Time            `json:"delivered_at,omitempty"`
	WarehouseID   *uuid.UUID            `gorm:"type:uuid;index" json:"warehouse_id,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	DeletedAt     gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Customer  Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CreatedBy User             `gorm:"foreignKey:CreatedByID" json:"-"`
	Warehouse *Warehouse       `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Items     []SalesOrderItem `gorm:"foreignKey:SalesOrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales order
func (so *SalesOrder) BeforeCreate(tx *gorm.DB) error {
	if so.ID == uuid.Nil {
		so.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesOrder model
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// SalesOrderItem represents a line item in a sales order
type SalesOrderItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SalesOrderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"sales_order_id"`
	ProductID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	UnitPrice    float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total        float64        `gorm:"type:decimal(15,2);default:0" json:"total"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	SalesOrder SalesOrder `gorm:"foreignKey:SalesOrderID" json:"-"`
	Product    Product    `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales order item
func (soi *SalesOrderItem) BeforeCreate(tx *gorm.DB) error {
	if soi.ID == uuid.Nil {
		soi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesOrderItem model
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}
