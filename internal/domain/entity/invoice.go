package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice represents a customer invoice.
//
// Monetary invariants, maintained by the invoice service:
//
//	grand_total  = sub_total + tax_total - discount_amount, floor-clamped at 0
//	balance_due  = grand_total - amount_paid, floor-clamped at 0
type Invoice struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo      string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	CreatedByID    uuid.UUID          `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	SubTotal       float64            `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	TaxTotal       float64            `gorm:"type:decimal(15,2);default:0" json:"tax_total"`
	DiscountType   enum.DiscountType  `gorm:"default:0" json:"discount_type"`
	DiscountValue  float64            `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	DiscountAmount float64            `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	GrandTotal     float64            `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	AmountPaid     float64            `gorm:"type:decimal(15,2);default:0" json:"amount_paid"`
	BalanceDue     float64            `gorm:"type:decimal(15,2);default:0" json:"balance_due"`
	Status         enum.InvoiceStatus `gorm:"default:0" json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer  Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CreatedBy User          `gorm:"foreignKey:CreatedByID" json:"-"`
	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents one line of an invoice. UnitPrice is a snapshot
// of the product price at invoice creation time.
type InvoiceItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   float64        `gorm:"type:decimal(15,2);not null" json:"quantity"`
	UnitPrice  float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TaxPercent float64        `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxAmount  float64        `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	LineTotal  float64        `gorm:"type:decimal(15,2);default:0" json:"line_total"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
