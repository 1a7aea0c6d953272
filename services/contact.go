package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"law_office_site_go/models"
)

// Maximum field lengths, in characters
const (
	MaxNameLen     = 200
	MaxPhoneLen    = 30
	MaxCaseTypeLen = 100
	MaxEmailLen    = 254
	MaxMessageLen  = 5000
)

// ValidationKind identifies the failing validation stage
type ValidationKind string

const (
	MissingFields ValidationKind = "MissingFields"
	FieldTooLong  ValidationKind = "FieldTooLong"
	InvalidFormat ValidationKind = "InvalidFormat"
)

// ValidationError reports a rejected submission. Fields names the offending
// fields; Limit is set only for FieldTooLong.
type ValidationError struct {
	Kind   ValidationKind
	Fields []string
	Limit  int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingFields:
		return "missing required fields: " + strings.Join(e.Fields, ", ")
	case FieldTooLong:
		return fmt.Sprintf("field too long: %s (max %d characters)", e.Fields[0], e.Limit)
	case InvalidFormat:
		return "invalid format: " + e.Fields[0]
	default:
		return "invalid submission"
	}
}

// Phone numbers may contain digits, whitespace and the symbols - + ( ) .
var phoneRe = regexp.MustCompile(`^[0-9\s\-\+\(\)\.]+$`)

var validate = validator.New()

// ValidateContact runs the staged validation pipeline over a submission:
// required fields, then lengths, then phone format, then email format when an
// email was provided. Each stage is terminal on failure. The returned
// submission has all fields trimmed. Validation has no side effects and never
// logs field values.
func ValidateContact(sub models.ContactSubmission) (models.ContactSubmission, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.CaseType = strings.TrimSpace(sub.CaseType)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)
	sub.Lang = strings.TrimSpace(sub.Lang)

	// Stage 1: required fields, reporting every missing field
	var missing []string
	if sub.Name == "" {
		missing = append(missing, "name")
	}
	if sub.Phone == "" {
		missing = append(missing, "phone")
	}
	if sub.CaseType == "" {
		missing = append(missing, "caseType")
	}
	if len(missing) > 0 {
		return sub, &ValidationError{Kind: MissingFields, Fields: missing}
	}

	// Stage 2: length limits
	for _, check := range []struct {
		field string
		value string
		limit int
	}{
		{"name", sub.Name, MaxNameLen},
		{"phone", sub.Phone, MaxPhoneLen},
		{"caseType", sub.CaseType, MaxCaseTypeLen},
		{"email", sub.Email, MaxEmailLen},
		{"message", sub.Message, MaxMessageLen},
	} {
		if utf8.RuneCountInString(check.value) > check.limit {
			return sub, &ValidationError{Kind: FieldTooLong, Fields: []string{check.field}, Limit: check.limit}
		}
	}

	// Stage 3: phone character class
	if !phoneRe.MatchString(sub.Phone) {
		return sub, &ValidationError{Kind: InvalidFormat, Fields: []string{"phone"}}
	}

	// Stage 4: email shape, only when provided
	if sub.Email != "" {
		if err := validate.Var(sub.Email, "email"); err != nil {
			return sub, &ValidationError{Kind: InvalidFormat, Fields: []string{"email"}}
		}
	}

	return sub, nil
}
