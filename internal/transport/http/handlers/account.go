package handlers

import (
	"net/http"

	"github.com/acmehq/dashboard/services/billing-service/internal/application/account"
	"github.com/acmehq/dashboard/services/billing-service/internal/logger"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/dto"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/response"
)

type AccountHandler struct {
	svc      *account.Service
	loginURL string
}

func NewAccountHandler(svc *account.Service, loginURL string) *AccountHandler {
	if loginURL == "" {
		loginURL = "/login"
	}
	return &AccountHandler{svc: svc, loginURL: loginURL}
}

func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var form dto.SignUpForm
	if err := response.DecodeForm(r, &form); err != nil {
		response.WriteError(w, r, err)
		return
	}

	// field errors mean no database call happens at all
	if err := form.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.SignUp(r.Context(), account.SignUpCmd{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Str("email", res.User.Email).
		Msg("user_signed_up")

	// browser form posts navigate to the login page; API clients get the body
	if response.IsFormRequest(r) {
		response.SeeOther(w, h.loginURL)
		return
	}

	response.Created(w, dto.SignUpData{User: dto.ToUserView(res.User)})
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form dto.LoginForm
	if err := response.DecodeForm(r, &form); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := form.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.ToAuthData(res))
}
