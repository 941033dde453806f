package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-hub/internal/domain"
	"studio-hub/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubStudioClient implements domain.StudioClient with canned data.
type stubStudioClient struct {
	domains     []domain.DomainSummary
	profile     *domain.UserProfile
	profileErr  error
	details     *domain.DomainDetails
	url         string
	createCalls int
}

func (s *stubStudioClient) ListDomains(_ context.Context, _ int32) ([]domain.DomainSummary, error) {
	return s.domains, nil
}

func (s *stubStudioClient) DescribeDomain(_ context.Context, _ string) (*domain.DomainDetails, error) {
	return s.details, nil
}

func (s *stubStudioClient) DescribeUserProfile(_ context.Context, _, _ string) (*domain.UserProfile, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profile, nil
}

func (s *stubStudioClient) CreateUserProfile(_ context.Context, _ domain.NewUserProfile) error {
	s.createCalls++
	return nil
}

func (s *stubStudioClient) CreatePresignedDomainURL(_ context.Context, _, _ string) (string, error) {
	return s.url, nil
}

// newServer wires the handler into an Echo instance the way main does, so
// responses (including HTTPError rendering) match production behavior.
func newServer(client domain.StudioClient) *echo.Echo {
	uc := usecase.NewCreateLoginURL(client, "123456789012", 10, slog.Default())
	h := NewLoginURLHandler(uc)

	e := echo.New()
	e.GET("/domains/:domainName/login-url", h.Handle)
	return e
}

func doRequest(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func bearerFor(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	return "Bearer " + signToken(t, claims)
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestLoginURL_Success(t *testing.T) {
	client := &stubStudioClient{
		domains:    []domain.DomainSummary{{ID: "d-1", Name: "team1"}},
		profileErr: domain.ErrProfileNotFound,
		details:    &domain.DomainDetails{ID: "d-1", Name: "team1"},
		url:        "https://studio.example/abc",
	}
	e := newServer(client)

	auth := bearerFor(t, jwt.MapClaims{"username": "alice", "cognito:groups": []string{"team1"}})
	rec := doRequest(e, "/domains/team1/login-url", auth)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://studio.example/abc"}`, rec.Body.String())
	assert.Equal(t, 1, client.createCalls)
}

func TestLoginURL_NoAuthorization(t *testing.T) {
	e := newServer(&stubStudioClient{})

	rec := doRequest(e, "/domains/team1/login-url", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no authorization given", messageOf(t, rec))
}

func TestLoginURL_MissingUserName(t *testing.T) {
	e := newServer(&stubStudioClient{})

	auth := bearerFor(t, jwt.MapClaims{"cognito:groups": []string{"team1"}})
	rec := doRequest(e, "/domains/team1/login-url", auth)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no user name in token given", messageOf(t, rec))
}

func TestLoginURL_MissingGroupsCheckedBeforeDomainName(t *testing.T) {
	e := newServer(&stubStudioClient{})

	// Claims checks run before the domain-name check, so a token without
	// groups yields the group failure even on this route.
	auth := bearerFor(t, jwt.MapClaims{"username": "alice"})
	rec := doRequest(e, "/domains/team1/login-url", auth)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "user not in group for requested domain", messageOf(t, rec))
}

func TestLoginURL_NotInGroup(t *testing.T) {
	client := &stubStudioClient{
		domains: []domain.DomainSummary{{ID: "d-1", Name: "team1"}},
	}
	e := newServer(client)

	auth := bearerFor(t, jwt.MapClaims{"username": "alice", "cognito:groups": []string{"team1"}})
	rec := doRequest(e, "/domains/team2/login-url", auth)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "user not in group for requested domain", messageOf(t, rec))
}

func TestLoginURL_ForbiddenBeatsNotFound(t *testing.T) {
	// The requested domain does not exist, but the caller is not in its
	// group either: authorization wins, 403 not 404.
	e := newServer(&stubStudioClient{})

	auth := bearerFor(t, jwt.MapClaims{"username": "alice", "cognito:groups": []string{"teamA", "teamB"}})
	rec := doRequest(e, "/domains/teamC/login-url", auth)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginURL_DomainNotFound(t *testing.T) {
	client := &stubStudioClient{domains: nil}
	e := newServer(client)

	auth := bearerFor(t, jwt.MapClaims{"username": "alice", "cognito:groups": []string{"team1"}})
	rec := doRequest(e, "/domains/team1/login-url", auth)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "could not find domain", messageOf(t, rec))
}

func TestLoginURL_MissingDomainNameParam(t *testing.T) {
	// Invoke the handler directly with no route param bound; the router
	// cannot produce this, but a misregistered route could.
	uc := usecase.NewCreateLoginURL(&stubStudioClient{}, "123456789012", 10, slog.Default())
	h := NewLoginURLHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, bearerFor(t, jwt.MapClaims{
		"username":       "alice",
		"cognito:groups": []string{"team1"},
	}))
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Handle(c)

	httpErr, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "no domain name provided", httpErr.Message)
	}
}
