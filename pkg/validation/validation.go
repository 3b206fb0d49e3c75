// Package validation valida as requisições na borda da API, incluindo as
// regras que dependem do catálogo de preços (IDs desconhecidos são rejeitados aqui,
// já que a calculadora de receita os trata silenciosamente como zero).
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
	catalog  *domain.Catalog
}

func New(catalog *domain.Catalog) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		catalog:  catalog,
	}

	// Usa o nome do campo JSON nas mensagens de erro
	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.validate.RegisterValidation("pricingmodel", v.pricingModel)
	_ = v.validate.RegisterValidation("addons", v.addOns)
	_ = v.validate.RegisterValidation("overrides", v.overrides)

	return v
}

func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

func (v *Validator) pricingModel(fl validator.FieldLevel) bool {
	_, ok := v.catalog.PricingModel(fl.Field().String())
	return ok
}

func (v *Validator) addOns(fl validator.FieldLevel) bool {
	ids, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	return v.knownAddOns(ids)
}

func (v *Validator) knownAddOns(ids []string) bool {
	for _, id := range ids {
		if _, ok := v.catalog.AddOn(id); !ok {
			return false
		}
	}
	return true
}

// overrides valida os ajustes mensais: mês entre 0 e 11, valor customizado não
// negativo e, sem valor customizado, modelo de preço e add-ons conhecidos.
func (v *Validator) overrides(fl validator.FieldLevel) bool {
	overrides, ok := fl.Field().Interface().(map[int]domain.MonthlyOverride)
	if !ok {
		return false
	}

	for month, override := range overrides {
		if month < 0 || month > 11 {
			return false
		}

		if override.CustomAmount != nil {
			if override.CustomAmount.IsNegative() {
				return false
			}
			continue
		}

		if _, ok := v.catalog.PricingModel(override.PricingModel); !ok {
			return false
		}
		if !v.knownAddOns(override.AddOns) {
			return false
		}
	}

	return true
}

// Details converte os erros de validação em um mapa campo -> regra violada
func Details(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule = rule + "=" + fieldErr.Param()
		}
		details[fieldErr.Field()] = rule
	}

	return details
}
