package handler

import (
	"strings"

	"studio-hub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	userNameClaim = "username"
	groupsClaim   = "cognito:groups"
)

// extractClaims pulls the identity assertion out of the bearer token.
// The API gateway in front of this service has already verified the token
// signature; only the claims are read here. Pure parsing, no side effects.
func extractClaims(c echo.Context) (domain.IdentityClaims, error) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return domain.IdentityClaims{}, domain.ErrNoAuthorization
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.IdentityClaims{}, domain.ErrNoAuthorization
	}

	userName, ok := claims[userNameClaim].(string)
	if !ok || userName == "" {
		return domain.IdentityClaims{}, domain.ErrUserNameMissing
	}

	// Absence of the groups claim (not an empty list) means the user was
	// never placed in any group.
	rawGroups, ok := claims[groupsClaim]
	if !ok {
		return domain.IdentityClaims{}, domain.ErrUserNotInGroup
	}

	return domain.IdentityClaims{
		UserName: userName,
		Groups:   parseGroups(rawGroups),
	}, nil
}

// parseGroups accepts the two shapes Cognito delivers the groups claim in:
// a JSON array in the raw token, or a flattened "[a b]" / "a,b" string when
// the claim passed through an API gateway authorizer.
func parseGroups(raw any) []string {
	switch v := raw.(type) {
	case []any:
		groups := make([]string, 0, len(v))
		for _, g := range v {
			if s, ok := g.(string); ok && s != "" {
				groups = append(groups, s)
			}
		}
		return groups
	case string:
		s := strings.Trim(v, "[]")
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' '
		})
		return fields
	default:
		return nil
	}
}
