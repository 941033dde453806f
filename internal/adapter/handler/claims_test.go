package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-hub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func contextWithAuth(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/domains/team1/login-url", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestExtractClaims_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"username":       "alice",
		"cognito:groups": []string{"team1", "team2"},
	})

	claims, err := extractClaims(contextWithAuth("Bearer " + token))

	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, []string{"team1", "team2"}, claims.Groups)
}

func TestExtractClaims_NoAuthorizationHeader(t *testing.T) {
	_, err := extractClaims(contextWithAuth(""))

	assert.True(t, errors.Is(err, domain.ErrNoAuthorization))
}

func TestExtractClaims_NotABearerToken(t *testing.T) {
	_, err := extractClaims(contextWithAuth("Basic dXNlcjpwYXNz"))

	assert.True(t, errors.Is(err, domain.ErrNoAuthorization))
}

func TestExtractClaims_MalformedToken(t *testing.T) {
	_, err := extractClaims(contextWithAuth("Bearer not.a.jwt"))

	assert.True(t, errors.Is(err, domain.ErrNoAuthorization))
}

func TestExtractClaims_MissingUserName(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"cognito:groups": []string{"team1"},
	})

	_, err := extractClaims(contextWithAuth("Bearer " + token))

	assert.True(t, errors.Is(err, domain.ErrUserNameMissing))
}

func TestExtractClaims_MissingGroups(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"username": "alice",
	})

	_, err := extractClaims(contextWithAuth("Bearer " + token))

	assert.True(t, errors.Is(err, domain.ErrUserNotInGroup))
}

func TestExtractClaims_EmptyGroupListIsNotAbsence(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"username":       "alice",
		"cognito:groups": []string{},
	})

	claims, err := extractClaims(contextWithAuth("Bearer " + token))

	assert.NoError(t, err, "an empty group list is present, just empty")
	assert.Empty(t, claims.Groups)
}

func TestParseGroups_FlattenedStrings(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{"comma separated", "team1,team2", []string{"team1", "team2"}},
		{"bracketed space separated", "[team1 team2]", []string{"team1", "team2"}},
		{"single group", "team1", []string{"team1"}},
		{"array", []any{"team1", "team2"}, []string{"team1", "team2"}},
		{"unexpected type", 42, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseGroups(tt.raw))
		})
	}
}
