package http

import (
	"github.com/go-playground/validator/v10"

	"dealtrack/internal/domain/deal"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// one of the ten pipeline stage labels
	_ = v.RegisterValidation("stage", func(fl validator.FieldLevel) bool {
		s := deal.Stage(fl.Field().String())
		for _, st := range deal.Stages {
			if s == st {
				return true
			}
		}
		return false
	})
	_ = v.RegisterValidation("brand", func(fl validator.FieldLevel) bool {
		switch deal.Brand(fl.Field().String()) {
		case deal.BrandRegus, deal.BrandSpaces:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("ncoexist", func(fl validator.FieldLevel) bool {
		switch deal.NCOExisting(fl.Field().String()) {
		case deal.NCO, deal.Existing, deal.Takeover:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("dealtype", func(fl validator.FieldLevel) bool {
		switch deal.DealType(fl.Field().String()) {
		case deal.TypeMCA, deal.TypeRevenueShare, deal.TypeProfitShare, deal.TypeConventional:
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "stage":
			out = append(out, FieldError{Field: field, Message: "must be one of the ten pipeline stages"})
		case "brand":
			out = append(out, FieldError{Field: field, Message: "must be a known brand"})
		case "ncoexist":
			out = append(out, FieldError{Field: field, Message: "must be NCO, Existing or Takeover"})
		case "dealtype":
			out = append(out, FieldError{Field: field, Message: "must be a known deal type"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
