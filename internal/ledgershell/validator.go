package ledgershell

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// ValidAmount validates whether the field holds a strictly positive amount.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := domain.ParseAmount(s)
		return err == nil
	}

	return false
}

// ValidInvestmentKind validates whether the field names a supported investment kind.
var ValidInvestmentKind validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := domain.ParseInvestmentKind(s)
		return err == nil
	}

	return false
}

func newValidator() (*validator.Validate, error) {
	v := validator.New()

	if err := v.RegisterValidation("amount", ValidAmount); err != nil {
		return nil, err
	}

	if err := v.RegisterValidation("investmentkind", ValidInvestmentKind); err != nil {
		return nil, err
	}

	return v, nil
}

func errorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "amount":
		return " must be a positive number"
	case "investmentkind":
		return " must be 1 (RENDA_FIXA) or 2 (RENDA_VARIAVEL)"
	}

	return " is invalid"
}
