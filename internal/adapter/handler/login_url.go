package handler

import (
	"net/http"

	"studio-hub/internal/domain"
	"studio-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoginURLHandler handles GET /domains/:domainName/login-url.
type LoginURLHandler struct {
	uc *usecase.CreateLoginURL
}

// NewLoginURLHandler creates a new login-url handler.
func NewLoginURLHandler(uc *usecase.CreateLoginURL) *LoginURLHandler {
	return &LoginURLHandler{uc: uc}
}

// loginURLResponse is the success body.
type loginURLResponse struct {
	URL string `json:"url"`
}

// Handle extracts the caller's claims and the requested domain name, runs
// the authorization-and-provisioning flow, and returns the presigned URL.
// Claims checks run before the domain-name check.
func (h *LoginURLHandler) Handle(c echo.Context) error {
	claims, err := extractClaims(c)
	if err != nil {
		return mapDomainError(c, err)
	}

	domainName := c.Param("domainName")
	if domainName == "" {
		return mapDomainError(c, domain.ErrDomainNameMissing)
	}

	url, err := h.uc.Execute(c.Request().Context(), claims, domainName)
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(http.StatusOK, loginURLResponse{URL: url})
}
