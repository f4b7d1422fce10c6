package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-manager/internal/rental"
)

// Payment represents the payments table: one row per rent collection
type Payment struct {
	ID          uint            `gorm:"primarykey"`
	DocumentID  string          `gorm:"column:document_id;uniqueIndex;not null"`
	Address     string          `gorm:"column:address;not null"`
	TenantName  string          `gorm:"column:tenant_name;not null"`
	Rent        decimal.Decimal `gorm:"column:rent;type:decimal(12,2)"`
	Electricity decimal.Decimal `gorm:"column:electricity;type:decimal(12,2)"`
	Maintenance decimal.Decimal `gorm:"column:maintenance;type:decimal(12,2)"`
	Total       decimal.Decimal `gorm:"column:total;type:decimal(12,2)"`
	PaidAt      time.Time       `gorm:"column:paid_at;not null"`
}

// TableName sets the insert table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// NewPayment builds a ledger row from a rent collection
func NewPayment(st rental.Statement, paidAt time.Time) *Payment {
	return &Payment{
		Address:     st.Address,
		TenantName:  st.Tenant,
		Rent:        st.Rent,
		Electricity: st.Electricity,
		Maintenance: st.Maintenance,
		Total:       st.Total,
		PaidAt:      paidAt,
	}
}

type LeaseEventKind string

const (
	LeaseAssigned LeaseEventKind = "assigned"
	LeaseEnded    LeaseEventKind = "ended"
)

// LeaseEvent represents the lease_events table
type LeaseEvent struct {
	ID         uint           `gorm:"primarykey"`
	Address    string         `gorm:"column:address;not null"`
	TenantName string         `gorm:"column:tenant_name;not null"`
	Kind       LeaseEventKind `gorm:"column:kind;not null"`
	At         time.Time      `gorm:"column:at;not null"`
}

// TableName sets the insert table name for LeaseEvent
func (LeaseEvent) TableName() string {
	return "lease_events"
}

// Summary aggregates the payments recorded so far
type Summary struct {
	Payments       int64
	TotalCollected decimal.Decimal
	LeaseEvents    int64
}
