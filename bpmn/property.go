package bpmn

import (
	"fmt"
	"strings"
)

const (
	PropertyID   = "id"
	PropertyName = "name"
)

// GetProperty reads a named attribute of the element. The second result is
// false when the element is nil or the attribute is not supported.
func GetProperty(elem Element, name string) (string, bool) {
	if elem == nil {
		return "", false
	}

	switch name {
	case PropertyID:
		return elem.GetID(), true
	case PropertyName:
		return elem.GetName(), true
	default:
		return "", false
	}
}

// SetProperty writes a named attribute of the element.
func SetProperty(elem Element, name, value string) error {
	if elem == nil {
		return fmt.Errorf("set %s: element is nil", name)
	}

	switch name {
	case PropertyID:
		if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t\n") {
			return fmt.Errorf("invalid id %q", value)
		}
		elem.SetID(value)
	case PropertyName:
		elem.SetName(value)
	default:
		return fmt.Errorf("%s has no property %q", elem.GetShape(), name)
	}

	return nil
}
