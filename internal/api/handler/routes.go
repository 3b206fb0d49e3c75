package handler

import (
	"net/http"

	"github.com/benchtrust/budgetplanung-api/internal/api/handler/router"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/pkg/middleware"
	"github.com/benchtrust/budgetplanung-api/pkg/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, validator *validation.Validator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service, validator),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Catalog(service planning.PlanningService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/catalog",
			Method:      http.MethodGet,
			Handler:     GetCatalog(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Customers(service customer.CustomerService, planningService planning.PlanningService, validator *validation.Validator, shutdown <-chan struct{}) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service, validator),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCustomer(service, validator),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
		{
			Path:        "/v1/customers/:id/status",
			Method:      http.MethodPut,
			Handler:     ChangeCustomerStatus(service, validator),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCustomer(service),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
		{
			Path:        "/v1/customers/:id/revenue",
			Method:      http.MethodGet,
			Handler:     GetCustomerRevenue(planningService),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/customers",
			Method:      http.MethodGet,
			Handler:     CustomerEvents(service, shutdown),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Providers(runner ProviderSyncRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/providers/sync",
			Method:      http.MethodPost,
			Handler:     SyncProviders(runner),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
	}
}

func Prospects(service planning.PlanningService, validator *validation.Validator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/prospects",
			Method:      http.MethodGet,
			Handler:     ListProspects(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prospects",
			Method:      http.MethodPost,
			Handler:     CreateProspect(service, validator),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
		{
			Path:        "/v1/prospects/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProspect(service, validator),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
		{
			Path:        "/v1/prospects/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProspect(service),
			Middlewares: middlewares{middleware.AnalystOrAdmin()},
		},
	}
}

func Planning(service planning.PlanningService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/planning/year",
			Method:      http.MethodGet,
			Handler:     GetYearPlan(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/planning/months/:month",
			Method:      http.MethodGet,
			Handler:     GetPlanningMonth(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/planning/summary",
			Method:      http.MethodGet,
			Handler:     GetPlanningSummary(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
