package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hromada/hromada-api/internal/domain"
)

const (
	briefDescriptionMax = 150
	fullDescriptionMax  = 2000
	additionalNotesMax  = 1000
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// truncate caps s at max characters (not bytes).
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// optionalString returns nil for blank input, a pointer to the trimmed
// value otherwise.
func optionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// parseOptionalFloat coerces a blank value to nil and anything else to
// a positive float.
func parseOptionalFloat(field, raw string) (*float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a number")
	}
	if v <= 0 {
		return nil, domain.NewValidationError(field, "must be a positive number")
	}
	return &v, nil
}

// parseRequiredFloat rejects a blank value instead of coercing it.
func parseRequiredFloat(field, raw string) (float64, error) {
	v, err := parseOptionalFloat(field, raw)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, domain.NewValidationError(field, "is required")
	}
	return *v, nil
}

func parseOptionalInt(field, raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be an integer")
	}
	if v <= 0 {
		return nil, domain.NewValidationError(field, "must be a positive integer")
	}
	return &v, nil
}

func parseLatitude(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < -90 || v > 90 {
		return 0, domain.NewValidationError(field, "invalid latitude")
	}
	return v, nil
}

func parseLongitude(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < -180 || v > 180 {
		return 0, domain.NewValidationError(field, "invalid longitude")
	}
	return v, nil
}

func parseUrgency(raw string) domain.Urgency {
	switch domain.Urgency(strings.ToUpper(strings.TrimSpace(raw))) {
	case domain.UrgencyLow:
		return domain.UrgencyLow
	case domain.UrgencyHigh:
		return domain.UrgencyHigh
	case domain.UrgencyCritical:
		return domain.UrgencyCritical
	default:
		return domain.UrgencyMedium
	}
}
