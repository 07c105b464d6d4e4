package dto

import (
	"fmt"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "category" and "sortkey" tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("category", validateCategory); err != nil {
		return fmt.Errorf("register category validator: %w", err)
	}
	if err := v.RegisterValidation("sortkey", validateSortKey); err != nil {
		return fmt.Errorf("register sortkey validator: %w", err)
	}
	return nil
}

func validateCategory(fl validator.FieldLevel) bool {
	_, ok := domain.ParseCategory(fl.Field().String())
	return ok
}

func validateSortKey(fl validator.FieldLevel) bool {
	return domain.SortKey(fl.Field().String()).IsValid()
}
