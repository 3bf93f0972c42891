package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acmehq/dashboard/services/billing-service/internal/application/invoice"
	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
	"github.com/acmehq/dashboard/services/billing-service/internal/logger"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/dto"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/response"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/validate"
)

// invoicesURL is where browser form posts are sent after a successful
// mutation; it is the listing view whose cache the mutation revalidated.
const invoicesURL = "/dashboard/invoices"

type InvoicesHandler struct {
	svc *invoice.Service
}

func NewInvoicesHandler(svc *invoice.Service) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

func (h *InvoicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form dto.InvoiceForm
	if err := response.DecodeForm(r, &form); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := form.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateCmd{
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Status:     form.Status,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("invoice_id", inv.ID).
		Str("customer_id", inv.CustomerID).
		Int64("amount_cents", inv.AmountCents).
		Msg("invoice_created")

	if response.IsFormRequest(r) {
		response.SeeOther(w, invoicesURL)
		return
	}

	response.Created(w, dto.ToInvoiceResp(inv))
}

func (h *InvoicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "invoice_id")
	if !validate.IsUUID(id) {
		response.WriteError(w, r, domain.ErrInvalidField("invoice_id", "must be uuid"))
		return
	}

	var form dto.InvoiceForm
	if err := response.DecodeForm(r, &form); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := form.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	inv, err := h.svc.Update(r.Context(), invoice.UpdateCmd{
		InvoiceID:  id,
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Status:     form.Status,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("invoice_id", inv.ID).
		Msg("invoice_updated")

	if response.IsFormRequest(r) {
		response.SeeOther(w, invoicesURL)
		return
	}

	response.OK(w, dto.ToInvoiceResp(inv))
}

func (h *InvoicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "invoice_id")
	if !validate.IsUUID(id) {
		response.WriteError(w, r, domain.ErrInvalidField("invoice_id", "must be uuid"))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("invoice_id", id).
		Msg("invoice_deleted")

	if response.IsFormRequest(r) {
		response.SeeOther(w, invoicesURL)
		return
	}

	response.NoContent(w)
}

func (h *InvoicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "invoice_id")
	if !validate.IsUUID(id) {
		response.WriteError(w, r, domain.ErrInvalidField("invoice_id", "must be uuid"))
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ToInvoiceResp(inv))
}

func (h *InvoicesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	res, err := h.svc.List(r.Context(), page, pageSize)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	out := make([]dto.InvoiceResp, 0, len(res.Items))
	for _, it := range res.Items {
		out = append(out, dto.ToInvoiceResp(it))
	}

	response.OK(w, dto.PageResp[dto.InvoiceResp]{
		Items:    out,
		Page:     res.Page,
		PageSize: res.PageSize,
		Total:    res.Total,
	})
}
