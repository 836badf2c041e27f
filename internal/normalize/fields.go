package normalize

import (
	"fmt"
	"strings"
)

func getStringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing required field %q", ErrIncompleteData, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q has type %T, want string", ErrInvalidField, key, v)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: required field %q is empty", ErrIncompleteData, key)
	}
	return s, nil
}

func getOptionalStringField(m map[string]any, key string) (*string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: field %q has type %T, want string or null", ErrInvalidField, key, v)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	return &trimmed, nil
}

func getOptionalFloat64Field(m map[string]any, key string) (*float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case float64:
		f := val
		return &f, nil
	case int: // unlikely from encoding/json, but harmless to support
		f := float64(val)
		return &f, nil
	default:
		return nil, fmt.Errorf("%w: field %q has type %T, want number or null", ErrInvalidField, key, v)
	}
}

func getBoolField(m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %q has type %T, want boolean", ErrInvalidField, key, v)
	}
	return b, nil
}

func getStringListField(m map[string]any, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return []string{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q has type %T, want array of strings", ErrInvalidField, key, v)
	}
	items := make([]string, 0, len(list))
	for i, elem := range list {
		s, ok := elem.(string)
		if !ok {
			return nil, fmt.Errorf("%w: field %q element %d has type %T, want string", ErrInvalidField, key, i, elem)
		}
		items = append(items, s)
	}
	return items, nil
}
