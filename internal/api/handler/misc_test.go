package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/scheduler"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating"
	authmocks "github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating/mocks"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	customermocks "github.com/benchtrust/budgetplanung-api/internal/usecases/customer/mocks"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// cancelOnEventWriter encerra a requisição assim que o primeiro evento é enviado
type cancelOnEventWriter struct {
	*httptest.ResponseRecorder
	cancel context.CancelFunc
}

func (w *cancelOnEventWriter) Flush() {
	w.ResponseRecorder.Flush()
	if strings.Contains(w.Body.String(), "event: ") {
		w.cancel()
	}
}

func TestCustomerEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := customermocks.NewMockCustomerService(ctrl)

	unsubscribed := false
	service.EXPECT().
		OnCustomersChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, callback func(domain.CustomerChange)) func() {
			callback(domain.CustomerChange{Op: domain.CustomerChangeUpdate, CustomerID: "c1"})
			return func() { unsubscribed = true }
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/v1/events/customers", nil).WithContext(ctx)
	w := &cancelOnEventWriter{ResponseRecorder: httptest.NewRecorder(), cancel: cancel}

	CustomerEvents(service, nil).ServeHTTP(w, req)

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event: customers_changed\n")
	assert.Contains(t, w.Body.String(), `data: {"op":"update","customer_id":"c1"}`)
	assert.True(t, unsubscribed)
}

func TestCustomerEventsStopsOnShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := customermocks.NewMockCustomerService(ctrl)
	service.EXPECT().OnCustomersChanged(gomock.Any(), gomock.Any()).Return(func() {})

	shutdown := make(chan struct{})
	close(shutdown)

	rec := httptest.NewRecorder()
	CustomerEvents(service, shutdown).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events/customers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

type fakeSyncRunner struct {
	response *domain.SyncProvidersResponse
	err      error
}

func (f *fakeSyncRunner) RunNow(ctx context.Context) (*domain.SyncProvidersResponse, error) {
	return f.response, f.err
}

func TestSyncProviders(t *testing.T) {
	tests := []struct {
		name           string
		runner         *fakeSyncRunner
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Sincronização concluída",
			runner:         &fakeSyncRunner{response: &domain.SyncProvidersResponse{Quantity: 3, Message: "3 clientes foram sincronizados com sucesso"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sincronização em andamento",
			runner:         &fakeSyncRunner{err: scheduler.ErrSyncInProgress},
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrProviderSyncInProgress,
		},
		{
			name:           "Diretório indisponível",
			runner:         &fakeSyncRunner{err: customer.NewCustomerError(customer.ErrFetchProviders, apiErrors.ErrProviderSyncFailed, "Falha ao consultar o diretório de providers")},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrProviderSyncFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Providers(tt.runner), http.MethodPost, "/v1/providers/sync", "", analystClaims)

			assertStatus(t, rec, tt.expectedStatus)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
				return
			}

			var response domain.SyncProvidersResponse
			decodeBody(t, rec, &response)
			assert.Equal(t, 3, response.Quantity)
		})
	}
}

type fakeCronJob struct {
	running   bool
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }
func (f *fakeCronJob) IsRunning() bool    { return f.running }
func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running}
}

func TestCronJobs(t *testing.T) {
	t.Run("Dispara sincronização de providers", func(t *testing.T) {
		job := &fakeCronJob{}
		rec := serve(t, CronJobs(CronJobServices{ProviderSync: job}), http.MethodPost, "/v1/cron/run/providers-sync", "", adminClaims)

		assertStatus(t, rec, http.StatusAccepted)
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("Job já em execução", func(t *testing.T) {
		job := &fakeCronJob{running: true}
		rec := serve(t, CronJobs(CronJobServices{ProviderSync: job}), http.MethodPost, "/v1/cron/run/providers-sync", "", adminClaims)

		assertStatus(t, rec, http.StatusConflict)
		assert.Equal(t, 0, job.triggered)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec := serve(t, CronJobs(CronJobServices{ProviderSync: &fakeCronJob{}}), http.MethodPost, "/v1/cron/run/meta", "", adminClaims)

		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("Apenas administradores", func(t *testing.T) {
		rec := serve(t, CronJobs(CronJobServices{ProviderSync: &fakeCronJob{}}), http.MethodPost, "/v1/cron/run/all", "", analystClaims)

		assertStatus(t, rec, http.StatusForbidden)
	})

	t.Run("Status", func(t *testing.T) {
		rec := serve(t, CronJobs(CronJobServices{ProviderSync: &fakeCronJob{running: true}}), http.MethodGet, "/v1/cron/status", "", adminClaims)

		assertStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), `"providers-sync":{"sync_running":true}`)
	})
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(fakePinger{}), http.MethodGet, "/healthcheck", "", nil)
	assertStatus(t, rec, http.StatusOK)

	rec = serve(t, Healthcheck(fakePinger{err: errors.New("connection refused")}), http.MethodGet, "/healthcheck", "", nil)
	assertStatus(t, rec, http.StatusServiceUnavailable)
}

func TestLogin(t *testing.T) {
	t.Run("Credenciais válidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)
		service.EXPECT().LoginUser(gomock.Any(), "ana@benchtrust.de", "Geheim123").Return("token", nil)

		rec := serve(t, Authentication(service, testValidator()), http.MethodPost, "/v1/login", `{"email":"ana@benchtrust.de","password":"Geheim123"}`, nil)

		assertStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), `"token":"token"`)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)
		service.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 1, "Senha incorreta"))

		rec := serve(t, Authentication(service, testValidator()), http.MethodPost, "/v1/login", `{"email":"ana@benchtrust.de","password":"x"}`, nil)

		assertStatus(t, rec, http.StatusUnauthorized)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec))
	})
}

func TestCreateUserAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authmocks.NewMockAuthenticator(ctrl)

	service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *domain.CreateUserRequest) (*domain.User, error) {
			return &domain.User{ID: 7, Name: request.Name, Email: request.Email, RoleID: request.RoleID, Active: true}, nil
		})
	service.EXPECT().GetUserProfile(gomock.Any(), 3).Return(&domain.User{ID: 3, Name: "Viewer"}, nil)

	routes := Authentication(service, testValidator())

	rec := serve(t, routes, http.MethodPost, "/v1/users", `{"name":"Ana","email":"ana@benchtrust.de","password":"Geheim123","role_id":2}`, adminClaims)
	assertStatus(t, rec, http.StatusCreated)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = serve(t, routes, http.MethodPost, "/v1/users", `{"name":"Ana","email":"not-an-email","password":"Geheim123"}`, adminClaims)
	assertStatus(t, rec, http.StatusBadRequest)

	rec = serve(t, routes, http.MethodPost, "/v1/users", `{"name":"Ana","email":"ana@benchtrust.de","password":"Geheim123"}`, viewerClaims)
	assertStatus(t, rec, http.StatusForbidden)

	rec = serve(t, routes, http.MethodGet, "/v1/me", "", viewerClaims)
	assertStatus(t, rec, http.StatusOK)

	var me domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "Viewer", me.Name)
}

func TestUnknownRoute(t *testing.T) {
	rec := serve(t, Healthcheck(nil), http.MethodGet, "/v1/unknown", "", nil)

	assertStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, apiErrors.ErrRouteNotFound, errorCode(t, rec))
}
