package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxNameLength        = 100
	MaxEmailLength       = 254
	MaxURLLength         = 2048

	MinTitleLength       = 1
	MinDescriptionLength = 1
	MinNameLength        = 1
)

// dateLayouts are the ISO 8601 forms accepted for due dates, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ValidateTitle checks a task title.
func ValidateTitle(title string) error {
	return validateText("title", title, MinTitleLength, MaxTitleLength)
}

// ValidateDescription checks a task description.
func ValidateDescription(description string) error {
	return validateText("description", description, MinDescriptionLength, MaxDescriptionLength)
}

// ValidateName checks a user display name.
func ValidateName(name string) error {
	return validateText("name", name, MinNameLength, MaxNameLength)
}

func validateText(field, value string, minLen, maxLen int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	n := utf8.RuneCountInString(value)
	if n < minLen {
		return fmt.Errorf("%s must be at least %d characters long", field, minLen)
	}
	if n > maxLen {
		return fmt.Errorf("%s cannot exceed %d characters", field, maxLen)
	}
	return nil
}

// ValidateEmail performs a shallow shape check; deliverability is not our concern.
func ValidateEmail(email string) error {
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email cannot exceed %d characters", MaxEmailLength)
	}
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 || strings.ContainsAny(email, " \t\r\n") {
		return fmt.Errorf("email %q is malformed", email)
	}
	return nil
}

// ValidateURL checks an avatar URL length; the scheme is not restricted.
func ValidateURL(url string) error {
	if len(url) > MaxURLLength {
		return fmt.Errorf("url cannot exceed %d characters", MaxURLLength)
	}
	return nil
}

// ParseISODate parses a date or date-time string. Date-only values are midnight UTC.
func ParseISODate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected ISO 8601", value)
}

// EscapeLike escapes LIKE wildcards so user input is matched literally (ESCAPE '\').
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// NilIfBlank turns "" into nil so optional fields stay absent.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
