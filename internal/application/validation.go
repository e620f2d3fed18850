package application

import (
	"fmt"
	"strings"

	"tracklist/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "newName" -> "new name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":    "path",
		"newName": "new name",
		"sortKey": "sort key",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDesignName checks that a design name is usable as a file name.
func ValidateDesignName(fieldName, name string) error {
	if err := ValidateRequired(fieldName, name); err != nil {
		return err
	}
	if !domain.FilenameValid(name) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s contains invalid characters: %s", formatFieldName(fieldName), name),
		}
	}
	return nil
}

// ValidateSortKey checks that key is offered for the given ride type.
func ValidateSortKey(table domain.RideTypeTable, rideType domain.RideType, key domain.SortKey) error {
	for _, k := range table.SortKeys(rideType) {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("%w: %s for %s", ErrSortKeyNotOffered, key, table.Lookup(rideType).Name)
}
