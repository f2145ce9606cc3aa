package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Johannes-Berggren/repodash/internal/models"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "table.page_length")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

const maxPageLength = 100

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateUI()...)
	errors = append(errors, c.validateTable()...)
	errors = append(errors, c.validateData()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateUI() []ValidationError {
	var errors []ValidationError

	if _, err := models.ParseDisplayMode(c.UI.DisplayMode); err != nil {
		errors = append(errors, ValidationError{
			Field:   "ui.display_mode",
			Value:   c.UI.DisplayMode,
			Message: err.Error(),
		})
	}

	return errors
}

func (c *Config) validateTable() []ValidationError {
	var errors []ValidationError

	if c.Table.PageLength <= 0 || c.Table.PageLength > maxPageLength {
		errors = append(errors, ValidationError{
			Field:   "table.page_length",
			Value:   c.Table.PageLength,
			Message: fmt.Sprintf("must be between 1 and %d", maxPageLength),
		})
	}

	if c.Table.MaxColumnWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "table.max_column_width",
			Value:   c.Table.MaxColumnWidth,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateData() []ValidationError {
	var errors []ValidationError

	if c.Data.File != "" && c.Data.Scan != "" {
		errors = append(errors, ValidationError{
			Field:   "data.scan",
			Value:   c.Data.Scan,
			Message: "cannot be combined with data.file",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxAgeDays < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_age_days",
			Value:   c.Logging.MaxAgeDays,
			Message: "must be non-negative",
		})
	}

	return errors
}
