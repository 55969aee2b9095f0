package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports json field names and knows
// the domain enums: role, project_status, task_status, task_priority and date.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("project_status", func(fl validator.FieldLevel) bool {
		return models.ProjectStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return models.TaskStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
		return models.TaskPriority(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	return v
}

// validateRequest runs struct validation and reports the first failing field
// as an apperrors.ValidationError.
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), describeTag(fe))
	}
	return fmt.Errorf("validation failed: %w", err)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "role":
		return "must be one of client, member, guest"
	case "project_status":
		return "must be one of Planned, In Progress, Blocked, Done"
	case "task_status":
		return "must be one of Open, In Progress, Blocked, Done"
	case "task_priority":
		return "must be one of Low, Medium, High, Critical"
	case "date":
		return "must be a date formatted YYYY-MM-DD"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
