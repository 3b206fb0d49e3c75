package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/benchtrust/budgetplanung-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeAuthenticator struct {
	authenticating.Authenticator
	claims *domain.Claims
	err    error
}

func (f *fakeAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	if token != "valid" {
		return nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
	}
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := &fakeAuthenticator{claims: &domain.Claims{UserID: 1, UserRoleID: authenticating.RoleViewer}}

	tests := []struct {
		name           string
		method         string
		target         string
		header         string
		expectedStatus int
	}{
		{name: "Rota pública sem token", method: http.MethodGet, target: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Preflight sem token", method: http.MethodOptions, target: "/v1/customers", expectedStatus: http.StatusOK},
		{name: "Sem header", method: http.MethodGet, target: "/v1/customers", expectedStatus: http.StatusUnauthorized},
		{name: "Header sem Bearer", method: http.MethodGet, target: "/v1/customers", header: "valid", expectedStatus: http.StatusUnauthorized},
		{name: "Token expirado", method: http.MethodGet, target: "/v1/customers", header: "Bearer old", expectedStatus: http.StatusUnauthorized},
		{name: "Token válido", method: http.MethodGet, target: "/v1/customers", header: "Bearer valid", expectedStatus: http.StatusOK},
		{name: "Token na query do stream", method: http.MethodGet, target: "/v1/events/customers?access_token=valid", expectedStatus: http.StatusOK},
		{name: "Token na query fora do stream", method: http.MethodGet, target: "/v1/customers?access_token=valid", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddlewareExpiredTokenCode(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
	req.Header.Set("Authorization", "Bearer old")
	rec := httptest.NewRecorder()

	AuthMiddleware(&fakeAuthenticator{})(okHandler()).ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{name: "Sem usuário no contexto", middleware: AllRoles(), expectedStatus: http.StatusUnauthorized},
		{name: "Viewer em rota de leitura", claims: &domain.Claims{UserRoleID: authenticating.RoleViewer}, middleware: AllRoles(), expectedStatus: http.StatusOK},
		{name: "Viewer em rota de escrita", claims: &domain.Claims{UserRoleID: authenticating.RoleViewer}, middleware: AnalystOrAdmin(), expectedStatus: http.StatusForbidden},
		{name: "Analyst em rota de escrita", claims: &domain.Claims{UserRoleID: authenticating.RoleAnalyst}, middleware: AnalystOrAdmin(), expectedStatus: http.StatusOK},
		{name: "Analyst em rota administrativa", claims: &domain.Claims{UserRoleID: authenticating.RoleAnalyst}, middleware: AdminOnly(), expectedStatus: http.StatusForbidden},
		{name: "Admin em rota administrativa", claims: &domain.Claims{UserRoleID: authenticating.RoleAdmin}, middleware: AdminOnly(), expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/plan", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/plan", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		called := false
		h := Cors(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/plan", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	handler := MetricsMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/customers/x", nil))

	count, err := testutil.GatherAndCount(registry, "budget_http_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/plan", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingResponseWriterFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	var w http.ResponseWriter = lrw
	flusher, ok := w.(http.Flusher)
	assert.True(t, ok)

	flusher.Flush()
	assert.True(t, rec.Flushed)
}
