// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"cashless/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies.
type CustomValidator struct {
	validator *playground.Validate
}

// New returns a validator that also understands the role, card_type and stamp_type tags.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	_ = v.RegisterValidation("role", func(fl playground.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("card_type", func(fl playground.FieldLevel) bool {
		return entity.CardType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("stamp_type", func(fl playground.FieldLevel) bool {
		return entity.StampType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator. It returns playground.ValidationErrors on failure.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
