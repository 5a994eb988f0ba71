// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/courtside/internal/core/notify"
)

// MaxTitleLength bounds titles coming from files and flags. The toast box is
// a single column, so anything longer wraps past the point of being useful.
const MaxTitleLength = 120

// Title validates a notification title is non-empty after trimming whitespace
// and fits MaxTitleLength runes.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("title is %d characters, maximum is %d", n, MaxTitleLength)
	}
	return nil
}

// TitleField returns a criterio validator for notification titles.
func TitleField(field, title string) error {
	return criterio.Run(field, title, Title)
}

// Severity validates a severity name. Empty is allowed and means info.
func Severity(name string) error {
	if name == "" {
		return nil
	}
	_, err := notify.ParseSeverity(name)
	return err
}

// SeverityField returns a criterio validator for severity names.
func SeverityField(field, name string) error {
	return criterio.Run(field, name, Severity)
}
