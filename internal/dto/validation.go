package dto

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/SscSPs/md_util/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator. It
// panics if they cannot be registered, since binding would fail on them later.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := registerDateValidators(v); err != nil {
			panic(err)
		}
	})
}

// registerDateValidators adds:
//
//	dateint  - a YYYYMMDD or YYYY-MM-DD date
//	dateints - a comma separated list of such dates
func registerDateValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("dateint", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDateInt(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("failed to register dateint validator: %w", err)
	}
	if err := v.RegisterValidation("dateints", func(fl validator.FieldLevel) bool {
		_, err := ParseDates([]string{fl.Field().String()})
		return err == nil
	}); err != nil {
		return fmt.Errorf("failed to register dateints validator: %w", err)
	}
	return nil
}

// ParseDates parses repeated and comma separated date values, keeping their order.
func ParseDates(raw []string) ([]domain.DateInt, error) {
	dates := make([]domain.DateInt, 0, len(raw))
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			d, err := domain.ParseDateInt(part)
			if err != nil {
				return nil, err
			}
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: at least one date is required", apperrors.ErrValidation)
	}
	return dates, nil
}
