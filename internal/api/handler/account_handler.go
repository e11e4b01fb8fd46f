package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomarket/users-api/internal/api/metrics"
	"github.com/ecomarket/users-api/internal/core/domain"
	"github.com/ecomarket/users-api/internal/core/ports"
)

// AccountHandler exposes the account registry over HTTP. The v1 endpoints
// mirror the legacy wire contract; the v2 endpoints add _links.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List handles GET /api/usuarios.
//
// @Summary      List all accounts
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}   domain.Account
// @Failure      500  {object}  map[string]any
// @Router       /api/usuarios [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return c.JSON(http.StatusOK, accounts)
}

// Get handles GET /api/usuarios/:id.
//
// @Summary      Get an account by id
// @Tags         usuarios
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]any
// @Router       /api/usuarios/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Create handles POST /api/usuarios.
//
// @Summary      Create a new account
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/usuarios [post]
func (h *AccountHandler) Create(c echo.Context) error {
	account, err := h.bindAccount(c, "")
	if err != nil {
		return err
	}

	saved, err := h.service.Save(c.Request().Context(), account)
	if err != nil {
		return err
	}

	metrics.AccountsSavedTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, saved)
}

// Update handles PUT /api/usuarios/:id — a full-record overwrite of the
// existing account; 404 when the id is unknown.
//
// @Summary      Update an existing account
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Account id"
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/usuarios/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	existing, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	account, err := h.bindAccount(c, existing.ID)
	if err != nil {
		return err
	}

	saved, err := h.service.Save(c.Request().Context(), account)
	if err != nil {
		return err
	}

	metrics.AccountsSavedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, saved)
}

// Delete handles DELETE /api/usuarios/:id.
//
// @Summary      Delete an account by id
// @Tags         usuarios
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /api/usuarios/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.AccountsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// --- v2: same semantics, hypermedia representations ---

// ListV2 handles GET /api/v2/usuarios.
//
// @Summary      List all accounts (hypermedia)
// @Tags         usuarios-v2
// @Produce      json
// @Success      200  {object}  accountCollection
// @Router       /api/v2/usuarios [get]
func (h *AccountHandler) ListV2(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]accountModel, 0, len(accounts))
	for i := range accounts {
		items = append(items, toAccountModel(&accounts[i]))
	}
	return c.JSON(http.StatusOK, accountCollection{
		Items: items,
		Links: accountLinks{Self: "/api/v2/usuarios", Collection: "/api/v2/usuarios"},
	})
}

// GetV2 handles GET /api/v2/usuarios/:id.
//
// @Summary      Get an account by id (hypermedia)
// @Tags         usuarios-v2
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountModel
// @Failure      404  {object}  map[string]any
// @Router       /api/v2/usuarios/{id} [get]
func (h *AccountHandler) GetV2(c echo.Context) error {
	account, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountModel(account))
}

// CreateV2 handles POST /api/v2/usuarios.
//
// @Summary      Create a new account (hypermedia)
// @Tags         usuarios-v2
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  accountModel
// @Failure      400   {object}  map[string]any
// @Router       /api/v2/usuarios [post]
func (h *AccountHandler) CreateV2(c echo.Context) error {
	account, err := h.bindAccount(c, "")
	if err != nil {
		return err
	}

	saved, err := h.service.Save(c.Request().Context(), account)
	if err != nil {
		return err
	}

	metrics.AccountsSavedTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, toAccountModel(saved))
}

// UpdateV2 handles PUT /api/v2/usuarios/:id.
//
// @Summary      Update an existing account (hypermedia)
// @Tags         usuarios-v2
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Account id"
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  accountModel
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/v2/usuarios/{id} [put]
func (h *AccountHandler) UpdateV2(c echo.Context) error {
	existing, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	account, err := h.bindAccount(c, existing.ID)
	if err != nil {
		return err
	}

	saved, err := h.service.Save(c.Request().Context(), account)
	if err != nil {
		return err
	}

	metrics.AccountsSavedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toAccountModel(saved))
}

// DeleteV2 handles DELETE /api/v2/usuarios/:id.
//
// @Summary      Delete an account by id (hypermedia)
// @Tags         usuarios-v2
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /api/v2/usuarios/{id} [delete]
func (h *AccountHandler) DeleteV2(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.AccountsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// bindAccount decodes and validates the request body.
func (h *AccountHandler) bindAccount(c echo.Context, id string) (*domain.Account, error) {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return req.toAccount(id), nil
}
