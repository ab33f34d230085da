package http

import (
	"errors"
	"net/http"

	appmw "dealtrack/internal/adapter/middleware"
	"dealtrack/internal/domain/user"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type AuthHandler struct{ users user.Repository }

func NewAuthHandler(users user.Repository) *AuthHandler { return &AuthHandler{users: users} }

// CurrentUser returns the authenticated user's stored profile, upserting it
// from the token claims first so the row always mirrors the identity
// provider.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	ident, ok := appmw.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}

	ctx := c.Request().Context()
	u := &user.User{
		ID:              ident.Subject,
		Email:           ident.Email,
		FirstName:       ident.FirstName,
		LastName:        ident.LastName,
		ProfileImageURL: ident.ProfileImageURL,
	}
	if err := h.users.Upsert(ctx, u); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch user"})
	}

	stored, err := h.users.GetByID(ctx, ident.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: user.ErrNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch user"})
	}
	return c.JSON(http.StatusOK, stored)
}
