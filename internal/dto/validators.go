package dto

import (
	"errors"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine. It must run before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return v.RegisterValidation("brlamount", validateBRLAmount)
}

// validateBRLAmount accepts strictly positive amounts typed as "1.234,56",
// "1234,56", "1234.56" or with an "R$" prefix, with at most two decimal
// places and within the stored range.
func validateBRLAmount(fl validator.FieldLevel) bool {
	amount, err := utils.ParseBRLAmount(fl.Field().String())
	if err != nil || !amount.IsPositive() {
		return false
	}
	return domain.ValidateMoney("", amount) == nil
}
