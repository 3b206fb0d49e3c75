package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benchtrust/budgetplanung-api/internal/api/handler/router"
	"github.com/benchtrust/budgetplanung-api/internal/catalog"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/benchtrust/budgetplanung-api/pkg/middleware"
	"github.com/benchtrust/budgetplanung-api/pkg/validation"
	"github.com/stretchr/testify/require"
)

var (
	adminClaims   = &domain.Claims{UserID: 1, UserRoleID: authenticating.RoleAdmin}
	analystClaims = &domain.Claims{UserID: 2, UserRoleID: authenticating.RoleAnalyst}
	viewerClaims  = &domain.Claims{UserID: 3, UserRoleID: authenticating.RoleViewer}
)

func testValidator() *validation.Validator {
	return validation.New(catalog.Default())
}

// serve executa a requisição pelo router real, com as claims já no contexto
func serve(t *testing.T, routes []router.Route, method, target, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var apiErr apiErrors.APIError
	decodeBody(t, rec, &apiErr)
	return apiErr.Code
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
