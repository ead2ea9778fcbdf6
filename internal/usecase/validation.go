package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	maxTextField = 200
	maxListItems = 20
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateLead only rejects malformed values. Missing fields are fine: the
// enrichment and prompt layers substitute defaults for them.
func ValidateLead(lead entity.LeadProfile) []ValidationError {
	var errors []ValidationError

	for _, f := range []struct{ name, value string }{
		{"name", lead.Name},
		{"company", lead.Company},
		{"job_title", lead.JobTitle},
		{"industry", lead.Industry},
	} {
		if len(f.value) > maxTextField {
			errors = append(errors, ValidationError{f.name, fmt.Sprintf("must not exceed %d characters", maxTextField)})
		}
	}

	if lead.CompanySize < 0 {
		errors = append(errors, ValidationError{"company_size", "must not be negative"})
	}

	if strings.TrimSpace(lead.Email) != "" {
		if _, err := mail.ParseAddress(lead.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	return errors
}

func ValidateProduct(p entity.ProductInfo) []ValidationError {
	var errors []ValidationError

	if len(p.Name) > maxTextField {
		errors = append(errors, ValidationError{"product.name", fmt.Sprintf("must not exceed %d characters", maxTextField)})
	}

	for _, f := range []struct {
		name  string
		items []string
	}{
		{"product.benefits", p.Benefits},
		{"product.use_cases", p.UseCases},
		{"product.differentiators", p.Differentiators},
	} {
		if len(f.items) > maxListItems {
			errors = append(errors, ValidationError{f.name, fmt.Sprintf("must not have more than %d items", maxListItems)})
			continue
		}
		for _, item := range f.items {
			if strings.TrimSpace(item) == "" {
				errors = append(errors, ValidationError{f.name, "must not contain blank items"})
				break
			}
		}
	}

	return errors
}

func validationFailure(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
		Err:     entity.ErrInvalidInput,
	}
}
