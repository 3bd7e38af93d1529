package render

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/nvoronina/bankledger/internal/money"
)

func configureValidator(validate *validator.Validate) {
	_ = validate.RegisterValidation("money", validateMoneyAmount)
	_ = validate.RegisterValidation("dgt0", validateDecimalPositive)
	validate.RegisterTagNameFunc(useJSONTagNames)
}

func useJSONTagNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	// skip if tag key says it should be ignored
	if name == "-" {
		return ""
	}
	return name
}

// Monetary amount: at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return money.HasAtMostTwoDecimalPlaces(amount)
}

// Strictly positive decimal. validator's builtin 'gt' doesn't know
// decimal.Decimal, so positivity gets its own tag
func validateDecimalPositive(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return amount.IsPositive()
}
