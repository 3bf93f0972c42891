package dto

import (
	"net/url"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/validate"
)

// InvoiceForm is shared by create and update; the invoice id travels in the
// URL, never in the form body.
type InvoiceForm struct {
	CustomerID string `json:"customerId" form:"customerId" validate:"required"`
	Amount     string `json:"amount" form:"amount" validate:"required"`
	Status     string `json:"status" form:"status" validate:"required,oneof=pending paid"`
}

func (f *InvoiceForm) FillForm(values url.Values) {
	f.CustomerID = values.Get("customerId")
	f.Amount = values.Get("amount")
	f.Status = values.Get("status")
}

func (f *InvoiceForm) Validate() error {
	if fields := validate.FieldErrors(f); len(fields) > 0 {
		return domain.ErrFieldErrors(fields)
	}
	return nil
}
