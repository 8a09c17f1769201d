package tools

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// ParamType is the declared type of an operation parameter
type ParamType string

const (
	// Parameter types
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
)

// Param declares a single operation parameter. The registry is built
// from these static declarations; nothing is discovered by reflection.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Minimum     *float64 // inclusive lower bound for numbers
	Enum        []string // allowed values for strings
	Format      string   // "date" requires YYYY-MM-DD
}

// Schema declares the full parameter contract of one operation
type Schema struct {
	Params []Param
	// OneOf names parameters of which at least one must be supplied
	OneOf []string
}

func minimum(v float64) *float64 {
	return &v
}

// Validate checks args against the schema. It runs before the handler
// so malformed input never reaches the data store.
func (s Schema) Validate(op string, args map[string]interface{}) error {
	byName := make(map[string]Param, len(s.Params))
	for _, p := range s.Params {
		byName[p.Name] = p
	}

	// Reject parameters the operation does not declare, in stable order
	// for reproducible messages.
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := byName[k]; !ok {
			return errInvalidParameter(op, k, "unknown parameter")
		}
	}

	for _, p := range s.Params {
		value, present := args[p.Name]
		if !present || value == nil {
			if p.Required {
				return errInvalidParameter(op, p.Name, "required parameter missing")
			}
			continue
		}
		if err := p.check(op, value); err != nil {
			return err
		}
	}

	if len(s.OneOf) > 0 {
		satisfied := false
		for _, name := range s.OneOf {
			if v, ok := args[name]; ok && v != nil && v != "" {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return errInvalidParameter(op, strings.Join(s.OneOf, "|"),
				"at least one of these parameters is required")
		}
	}

	return nil
}

func (p Param) check(op string, value interface{}) error {
	switch p.Type {
	case TypeString:
		str, ok := value.(string)
		if !ok {
			return errInvalidParameter(op, p.Name, "must be a string")
		}
		if p.Required && str == "" {
			return errInvalidParameter(op, p.Name, "must not be empty")
		}
		if len(p.Enum) > 0 && str != "" {
			found := false
			for _, allowed := range p.Enum {
				if strings.EqualFold(str, allowed) {
					found = true
					break
				}
			}
			if !found {
				return errInvalidParameter(op, p.Name,
					fmt.Sprintf("must be one of: %s", strings.Join(p.Enum, ", ")))
			}
		}
		if p.Format == "date" && str != "" {
			if _, err := time.Parse("2006-01-02", str); err != nil {
				return errInvalidParameter(op, p.Name, "must be a date in YYYY-MM-DD format")
			}
		}
	case TypeNumber:
		num, ok := asNumber(value)
		if !ok {
			return errInvalidParameter(op, p.Name, "must be a number")
		}
		if p.Minimum != nil && num < *p.Minimum {
			return errInvalidParameter(op, p.Name,
				fmt.Sprintf("must be at least %g", *p.Minimum))
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return errInvalidParameter(op, p.Name, "must be a boolean")
		}
	}
	return nil
}

// asNumber accepts the numeric representations produced by JSON
// decoding and by Go callers.
func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// JSONSchema renders the schema as the JSON-Schema object shape that
// tool-calling runtimes expect.
func (s Schema) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(s.Params))
	var required []string

	for _, p := range s.Params {
		prop := map[string]interface{}{
			"type":        string(p.Type),
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Minimum != nil && !math.IsNaN(*p.Minimum) {
			prop["minimum"] = *p.Minimum
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Argument accessors used by handlers after validation has passed.

func stringArg(args map[string]interface{}, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]interface{}, name string) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return false
}

func numberArg(args map[string]interface{}, name string) (float64, bool) {
	if v, ok := args[name]; ok && v != nil {
		return asNumber(v)
	}
	return 0, false
}
