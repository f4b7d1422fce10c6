package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository defines the interface for session ledger operations
type Repository interface {
	RecordPayment(payment *Payment) error
	RecordLeaseEvent(event *LeaseEvent) error
	ListPayments() ([]*Payment, error)
	ListLeaseEvents() ([]*LeaseEvent, error)
	Summary() (*Summary, error)
}

// repository implements Repository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new instance of Repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// RecordPayment stores a payment, assigning a document id when missing
func (r *repository) RecordPayment(payment *Payment) error {
	if payment.DocumentID == "" {
		payment.DocumentID = uuid.New().String()
	}
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}

func (r *repository) RecordLeaseEvent(event *LeaseEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to record lease event: %w", err)
	}
	return nil
}

// ListPayments returns payments in the order they were recorded
func (r *repository) ListPayments() ([]*Payment, error) {
	var payments []*Payment
	if err := r.db.Order("id ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListLeaseEvents returns lease events in the order they were recorded
func (r *repository) ListLeaseEvents() ([]*LeaseEvent, error) {
	var events []*LeaseEvent
	if err := r.db.Order("id ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list lease events: %w", err)
	}
	return events, nil
}

// Summary totals the payments in Go so amounts stay exact
func (r *repository) Summary() (*Summary, error) {
	payments, err := r.ListPayments()
	if err != nil {
		return nil, err
	}

	var leaseEvents int64
	if err := r.db.Model(&LeaseEvent{}).Count(&leaseEvents).Error; err != nil {
		return nil, fmt.Errorf("failed to count lease events: %w", err)
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Total)
	}

	return &Summary{
		Payments:       int64(len(payments)),
		TotalCollected: total,
		LeaseEvents:    leaseEvents,
	}, nil
}
