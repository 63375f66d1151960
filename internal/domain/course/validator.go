package course

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field validators for the course metadata form. Each one is pure: it takes
// the raw input and returns an error message, or "" when the value is valid.
// The caller owns the per-field error and touched maps; nothing here mutates
// state.

const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldCategory     = "category"
	FieldLanguage     = "language"
	FieldDuration     = "durationHours"
	FieldPrice        = "priceMinor"
	FieldThumbnailURL = "thumbnailUrl"
	FieldBio          = "bio"
)

const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 1000
	DurationMin       = 1
	DurationMax       = 999
	PriceMin          = 0
	PriceMax          = 999_999_999
	BioMinLen         = 50
	BioMaxLen         = 1000
)

// ValidateField dispatches by field name. Unknown fields validate clean.
func ValidateField(name, value string) string {
	switch name {
	case FieldTitle:
		return ValidateTitle(value)
	case FieldDescription:
		return ValidateDescription(value)
	case FieldCategory:
		return ValidateCategory(value)
	case FieldLanguage:
		return ValidateLanguage(value)
	case FieldDuration:
		return ValidateDuration(value)
	case FieldPrice:
		return ValidatePrice(value)
	case FieldThumbnailURL:
		return ValidateThumbnailURL(value)
	case FieldBio:
		return ValidateBio(value)
	}
	return ""
}

func ValidateTitle(v string) string {
	return requireLength("Title", v, TitleMinLen, TitleMaxLen)
}

func ValidateDescription(v string) string {
	return requireLength("Description", v, DescriptionMinLen, DescriptionMaxLen)
}

func ValidateCategory(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Category is required"
	}
	return ""
}

func ValidateLanguage(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Language is required"
	}
	return ""
}

// ValidateDuration accepts whole hours in [1, 999].
func ValidateDuration(v string) string {
	n, msg := requireWholeNumber("Duration", v)
	if msg != "" {
		return msg
	}
	if n < DurationMin || n > DurationMax {
		return fmt.Sprintf("Duration must be between %d and %d hours", DurationMin, DurationMax)
	}
	return ""
}

// ValidatePrice accepts whole minor currency units in [0, 999999999].
// Fractional values are rejected outright.
func ValidatePrice(v string) string {
	n, msg := requireWholeNumber("Price", v)
	if msg != "" {
		return msg
	}
	if n < PriceMin || n > PriceMax {
		return fmt.Sprintf("Price must be between %d and %d", PriceMin, PriceMax)
	}
	return ""
}

// ValidateThumbnailURL checks URL syntax only; reachability is not our
// problem.
func ValidateThumbnailURL(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Thumbnail URL is required"
	}
	u, err := url.ParseRequestURI(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "Thumbnail URL must be a valid URL"
	}
	return ""
}

// ValidateBio covers long-text profile fields shown with live character
// counters.
func ValidateBio(v string) string {
	return requireLength("Bio", v, BioMinLen, BioMaxLen)
}

func requireLength(label, v string, min, max int) string {
	if v == "" {
		return label + " is required"
	}
	n := utf8.RuneCountInString(v)
	if n < min || n > max {
		return fmt.Sprintf("%s must be between %d and %d characters", label, min, max)
	}
	return ""
}

func requireWholeNumber(label, v string) (int64, string) {
	if strings.TrimSpace(v) == "" {
		return 0, label + " is required"
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, label + " must be a number"
	}
	if f != math.Trunc(f) {
		return 0, label + " must be a whole number"
	}
	return int64(f), ""
}
