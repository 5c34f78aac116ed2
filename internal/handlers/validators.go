package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerValidators teaches gin's validator about decimal quantities.
// decimal.Decimal is validated through its string form.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("dpositive", validateDecimal(func(d decimal.Decimal) bool {
			return d.IsPositive()
		}))
		_ = v.RegisterValidation("dscale", validateDecimal(func(d decimal.Decimal) bool {
			return d.Equal(d.Truncate(domain.QuantityScale))
		}))
	})
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateDecimal(check func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return check(d)
	}
}
