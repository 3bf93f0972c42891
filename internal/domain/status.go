package domain

type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}
