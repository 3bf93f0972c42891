package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID         string
	CustomerID string
	// AmountCents is the invoice amount in minor currency units.
	AmountCents int64
	Status      InvoiceStatus
	Date        time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewInvoice(customerID string, amountCents int64, status InvoiceStatus, now time.Time) (*Invoice, error) {
	customerID = strings.TrimSpace(customerID)

	if customerID == "" {
		return nil, ErrMissingField("customerId")
	}
	if amountCents <= 0 {
		return nil, ErrInvalidField("amount", "must be greater than 0")
	}
	if !status.Valid() {
		return nil, ErrInvalidField("status", "must be one of: pending, paid")
	}

	t := now.UTC()
	return &Invoice{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
		Date:        t.Truncate(24 * time.Hour),
		CreatedAt:   t,
		UpdatedAt:   t,
	}, nil
}

// ApplyUpdate replaces the mutable fields with the same validation as NewInvoice.
func (i *Invoice) ApplyUpdate(customerID string, amountCents int64, status InvoiceStatus, now time.Time) error {
	customerID = strings.TrimSpace(customerID)

	if customerID == "" {
		return ErrMissingField("customerId")
	}
	if amountCents <= 0 {
		return ErrInvalidField("amount", "must be greater than 0")
	}
	if !status.Valid() {
		return ErrInvalidField("status", "must be one of: pending, paid")
	}

	i.CustomerID = customerID
	i.AmountCents = amountCents
	i.Status = status
	i.UpdatedAt = now.UTC()
	return nil
}
