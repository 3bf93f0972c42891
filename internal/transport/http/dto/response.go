package dto

import (
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/application/account"
	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokensView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthData struct {
	User   UserView   `json:"user"`
	Tokens TokensView `json:"tokens"`
}

type SignUpData struct {
	User UserView `json:"user"`
}

func ToUserView(u domain.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToAuthData(res account.AuthenticateResult) AuthData {
	return AuthData{
		User: ToUserView(res.User),
		Tokens: TokensView{
			AccessToken: res.Tokens.AccessToken,
			TokenType:   res.Tokens.TokenType,
			ExpiresIn:   res.Tokens.ExpiresIn,
		},
	}
}

type InvoiceResp struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToInvoiceResp(inv *domain.Invoice) InvoiceResp {
	return InvoiceResp{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		AmountCents: inv.AmountCents,
		Status:      string(inv.Status),
		Date:        inv.Date,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

type PageResp[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}
