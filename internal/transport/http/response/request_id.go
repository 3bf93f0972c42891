package response

import (
	"net/http"

	appctx "github.com/acmehq/dashboard/services/billing-service/internal/pkg/context"
)

// RequestIDFromRequest extracts the request id set by the RequestID middleware.
func RequestIDFromRequest(r *http.Request) string {
	id, _ := appctx.RequestID(r.Context())
	return id
}
