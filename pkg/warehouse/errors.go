package warehouse

import (
	"fmt"
	"strings"

	"github.com/divyakjce123/3d-warehouse-visualizer/pkg/errors"
)

// =============================================================================
// Fatal Errors
// =============================================================================

// ConfigError is a single configuration violation.
//
// The Code distinguishes the violation kind: structural problems
// (INVALID_CONFIG), numeric constraints (INVALID_DIMENSION), gap overflow
// (GAP_OVERFLOW), and the safety cap (RESOURCE_LIMIT). Field is a
// dotted/indexed path into the config, e.g. "sections[0].wall_gaps.front".
type ConfigError struct {
	Code    errors.Code `json:"code" bson:"code"`
	Field   string      `json:"field" bson:"field"`
	Message string      `json:"message" bson:"message"`
}

// Error implements the error interface.
func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// configErr builds a ConfigError with a formatted message.
func configErr(code errors.Code, field, format string, args ...any) ConfigError {
	return ConfigError{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidationError aggregates every violation found in a config.
// Compute returns it when validation fails; no tree is produced.
type ValidationError struct {
	Errors []ConfigError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid config: " + e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, ce := range e.Errors {
		msgs[i] = ce.Error()
	}
	return fmt.Sprintf("invalid config (%d violations): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// =============================================================================
// Recoverable Warnings
// =============================================================================

// Warning records a pallet that could not be matched to a rack cell.
// Warnings never abort a computation; they are returned alongside the tree.
type Warning struct {
	// Section is the 1-based section index the pallet was configured in.
	Section int `json:"section" bson:"section"`
	// Pallet is the 1-based position of the pallet within the section's list.
	Pallet int `json:"pallet" bson:"pallet"`
	// Type is the pallet's configured type tag, if any.
	Type string `json:"type,omitempty" bson:"type,omitempty"`
	// Message names the offending index and its allowed maximum.
	Message string `json:"message" bson:"message"`
}

// String formats the warning for logs and CLI output.
func (w Warning) String() string {
	return fmt.Sprintf("section %d pallet %d: %s", w.Section, w.Pallet, w.Message)
}

func placementWarning(section, pallet int, typ, format string, args ...any) Warning {
	return Warning{
		Section: section,
		Pallet:  pallet,
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
	}
}
