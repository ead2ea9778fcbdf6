package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

func TestValidateLead(t *testing.T) {
	tests := []struct {
		name   string
		lead   entity.LeadProfile
		fields []string
	}{
		{"empty lead is fine", entity.LeadProfile{}, nil},
		{"valid email", entity.LeadProfile{Email: "jane@acme.io"}, nil},
		{"bad email", entity.LeadProfile{Email: "jane at acme"}, []string{"email"}},
		{"negative size", entity.LeadProfile{CompanySize: -1}, []string{"company_size"}},
		{"long title", entity.LeadProfile{JobTitle: strings.Repeat("x", 201)}, []string{"job_title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range ValidateLead(tt.lead) {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidateProduct(t *testing.T) {
	assert.Empty(t, ValidateProduct(entity.ProductInfo{}))

	errs := ValidateProduct(entity.ProductInfo{Benefits: []string{"fast", "  "}})
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "product.benefits", errs[0].Field)
	}

	many := make([]string, maxListItems+1)
	for i := range many {
		many[i] = "case"
	}
	errs = ValidateProduct(entity.ProductInfo{UseCases: many})
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "product.use_cases", errs[0].Field)
	}
}

func TestValidationFailureWrapsInvalidInput(t *testing.T) {
	err := validationFailure([]ValidationError{{"email", "is invalid"}})

	assert.True(t, errors.Is(err, entity.ErrInvalidInput))
	assert.Equal(t, CodeValidation, ErrorCode(err))
	assert.Contains(t, err.Error(), "email (is invalid)")
}
