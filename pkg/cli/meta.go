package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fepozopo/unborder/pkg/stdimg"
)

// ParamType is a small enum for parameter types used in metadata.
type ParamType string

const (
	ParamTypeInt    ParamType = "int"
	ParamTypeFloat  ParamType = "float"
	ParamTypeBool   ParamType = "bool"
	ParamTypeString ParamType = "string"
)

// ValidationRule is a machine-friendly representation of the constraints
// that a UI or client can use to validate input before invoking a command.
type ValidationRule struct {
	Type     ParamType `json:"type"`
	Required bool      `json:"required"`
	Min      *float64  `json:"min,omitempty"`
	Max      *float64  `json:"max,omitempty"`
	Example  string    `json:"example,omitempty"`
	Hint     string    `json:"hint,omitempty"`
}

// RuleFor derives the validation rule of a registered argument.
func RuleFor(a stdimg.ArgSpec) ValidationRule {
	r := ValidationRule{
		Type:     ParamType(a.Type),
		Required: a.Required,
		Example:  a.Default,
		Hint:     a.Description,
	}
	if a.HasRange {
		lo, hi := a.Min, a.Max
		r.Min = &lo
		r.Max = &hi
	}
	return r
}

// parseBoolLikeToString accepts common truthy/falsy forms and returns "true"/"false" string.
func parseBoolLikeToString(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return "true", nil
	case "0", "f", "false", "n", "no", "off":
		return "false", nil
	default:
		return "", fmt.Errorf("invalid boolean: %q", s)
	}
}

// ValidateArg checks raw against the rule for a and returns its normalized text.
// Range violations and unparsable numbers wrap stdimg.ErrInvalidArgument.
func ValidateArg(a stdimg.ArgSpec, raw string) (string, error) {
	rule := RuleFor(a)
	s := strings.TrimSpace(raw)
	if s == "" {
		if rule.Required {
			return "", fmt.Errorf("%s is required: %w", a.Name, stdimg.ErrInvalidArgument)
		}
		return a.Default, nil
	}

	var v float64
	switch rule.Type {
	case ParamTypeInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("%s: %q is not an integer: %w", a.Name, raw, stdimg.ErrInvalidArgument)
		}
		v = float64(n)
		s = strconv.Itoa(n)
	case ParamTypeFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", fmt.Errorf("%s: %q is not a number: %w", a.Name, raw, stdimg.ErrInvalidArgument)
		}
		v = f
		s = strconv.FormatFloat(f, 'f', -1, 64)
	case ParamTypeBool:
		b, err := parseBoolLikeToString(s)
		if err != nil {
			return "", fmt.Errorf("%s: %v: %w", a.Name, err, stdimg.ErrInvalidArgument)
		}
		return b, nil
	default:
		return s, nil
	}

	if rule.Min != nil && v < *rule.Min {
		return "", fmt.Errorf("%s: %s below minimum %g: %w", a.Name, s, *rule.Min, stdimg.ErrInvalidArgument)
	}
	if rule.Max != nil && v > *rule.Max {
		return "", fmt.Errorf("%s: %s above maximum %g: %w", a.Name, s, *rule.Max, stdimg.ErrInvalidArgument)
	}
	return s, nil
}

// NormalizeArgs validates raw positional arguments for the named command.
// Missing optional arguments are filled with their defaults.
func NormalizeArgs(commandName string, raw []string) ([]string, error) {
	spec, ok := stdimg.LookupCommand(commandName)
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", commandName)
	}
	if len(raw) > len(spec.Args) {
		return nil, fmt.Errorf("%s takes at most %d args, got %d: %w", commandName, len(spec.Args), len(raw), stdimg.ErrInvalidArgument)
	}
	out := make([]string, len(spec.Args))
	for i, a := range spec.Args {
		v := ""
		if i < len(raw) {
			v = raw[i]
		}
		norm, err := ValidateArg(a, v)
		if err != nil {
			return nil, err
		}
		out[i] = norm
	}
	return out, nil
}
