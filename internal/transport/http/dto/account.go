package dto

import (
	"net/url"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/validate"
)

type SignUpForm struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

func (f *SignUpForm) FillForm(values url.Values) {
	f.Name = values.Get("name")
	f.Email = values.Get("email")
	f.Password = values.Get("password")
}

func (f *SignUpForm) Validate() error {
	if fields := validate.FieldErrors(f); len(fields) > 0 {
		return domain.ErrFieldErrors(fields)
	}
	return nil
}

type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (f *LoginForm) FillForm(values url.Values) {
	f.Email = values.Get("email")
	f.Password = values.Get("password")
}

func (f *LoginForm) Validate() error {
	if fields := validate.FieldErrors(f); len(fields) > 0 {
		return domain.ErrFieldErrors(fields)
	}
	return nil
}
