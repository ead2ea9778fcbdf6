package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LeadProfile is the raw prospect record received from the caller.
// Fields outside the known set are carried in Extra.
type LeadProfile struct {
	Name        string         `json:"name"`
	Company     string         `json:"company"`
	JobTitle    string         `json:"job_title"`
	Industry    string         `json:"industry"`
	CompanySize int            `json:"company_size"`
	Email       string         `json:"email,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

var leadKnownFields = map[string]bool{
	"name": true, "company": true, "job_title": true, "industry": true,
	"company_size": true, "email": true, "extra": true,
}

// UnmarshalJSON accepts company_size as a number, a numeric string or null.
// Unknown keys end up in Extra.
func (l *LeadProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &InvalidInputError{Field: "lead", Message: "must be a JSON object"}
	}

	var out LeadProfile
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &out.Name},
		{"company", &out.Company},
		{"job_title", &out.JobTitle},
		{"industry", &out.Industry},
		{"email", &out.Email},
	} {
		v, ok := raw[f.key]
		if !ok || isNull(v) {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return &InvalidInputError{Field: f.key, Message: "must be a string"}
		}
	}

	if v, ok := raw["company_size"]; ok {
		size, err := parseCompanySize(v)
		if err != nil {
			return err
		}
		out.CompanySize = size
	}

	if v, ok := raw["extra"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &out.Extra); err != nil {
			return &InvalidInputError{Field: "extra", Message: "must be an object"}
		}
	}
	for k, v := range raw {
		if leadKnownFields[k] {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return &InvalidInputError{Field: k, Message: "invalid value"}
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any)
		}
		out.Extra[k] = val
	}

	*l = out
	return nil
}

func parseCompanySize(v json.RawMessage) (int, error) {
	if isNull(v) {
		return 0, nil
	}

	var n float64
	if err := json.Unmarshal(v, &n); err != nil {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return 0, &InvalidInputError{Field: "company_size", Message: "must be a number"}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		n, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &InvalidInputError{Field: "company_size", Message: "must be a number"}
		}
	}

	if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, &InvalidInputError{Field: "company_size", Message: "must be a whole number"}
	}
	if n < 0 {
		return 0, &InvalidInputError{Field: "company_size", Message: "must not be negative"}
	}
	if n > math.MaxInt32 {
		return 0, &InvalidInputError{Field: "company_size", Message: "is too large"}
	}
	return int(n), nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

type RoleContext struct {
	Level              string   `json:"level"`
	Priorities         []string `json:"priorities"`
	CommunicationStyle string   `json:"communication_style"`
}

type IndustryInsights struct {
	KeyTrends        []string `json:"key_trends"`
	CommonChallenges []string `json:"common_challenges"`
}

// SizeCategory buckets a lead's headcount.
type SizeCategory string

const (
	SizeSmallStartup SizeCategory = "small startup"
	SizeMidSize      SizeCategory = "mid-size company"
	SizeEnterprise   SizeCategory = "enterprise organization"
)

// EnrichedLeadProfile is a LeadProfile plus the derived sales context.
// It never shares memory with the LeadProfile it was built from.
type EnrichedLeadProfile struct {
	Name        string         `json:"name"`
	Company     string         `json:"company"`
	JobTitle    string         `json:"job_title"`
	Industry    string         `json:"industry"`
	CompanySize int            `json:"company_size"`
	Email       string         `json:"email,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`

	CompanySizeCategory  SizeCategory     `json:"company_size_category"`
	LikelyPainPoints     []string         `json:"likely_pain_points"`
	RoleContext          RoleContext      `json:"role_context"`
	IndustryInsights     IndustryInsights `json:"industry_insights"`
	PersonalizationHooks []string         `json:"personalization_hooks"`
}
