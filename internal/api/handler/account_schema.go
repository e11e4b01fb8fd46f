package handler

import (
	"github.com/ecomarket/users-api/internal/core/domain"
)

// accountRequest is the create/update body. Wire field names and validation
// bounds are carried over from the legacy service.
type accountRequest struct {
	Name     string `json:"nombre" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=8"`
	Address  string `json:"direccion"`
	Phone    string `json:"telefono" validate:"omitempty,number,min=7,max=15"`
	Role     string `json:"rol" validate:"required,oneof=CLIENT SELLER ADMIN"`
}

func (r accountRequest) toAccount(id string) *domain.Account {
	return &domain.Account{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Address:  r.Address,
		Phone:    r.Phone,
		Role:     domain.Role(r.Role),
	}
}

// accountLinks is the hypermedia section of the v2 representation.
type accountLinks struct {
	Self       string `json:"self"`
	Collection string `json:"collection"`
}

// accountModel is the v2 representation: the account plus _links.
type accountModel struct {
	ID      string       `json:"id"`
	Name    string       `json:"nombre"`
	Email   string       `json:"email"`
	Address string       `json:"direccion,omitempty"`
	Phone   string       `json:"telefono,omitempty"`
	Role    domain.Role  `json:"rol"`
	Links   accountLinks `json:"_links"`
}

func toAccountModel(a *domain.Account) accountModel {
	return accountModel{
		ID:      a.ID,
		Name:    a.Name,
		Email:   a.Email,
		Address: a.Address,
		Phone:   a.Phone,
		Role:    a.Role,
		Links: accountLinks{
			Self:       "/api/v2/usuarios/" + a.ID,
			Collection: "/api/v2/usuarios",
		},
	}
}

// accountCollection wraps a v2 list response.
type accountCollection struct {
	Items []accountModel `json:"usuarios"`
	Links accountLinks   `json:"_links"`
}
