package catalog

import (
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
)

// Specification is a named product attribute such as ("Material", "Cotton")
type Specification struct {
	name  string
	value string
}

// NewSpecification creates a specification; name and value must not be blank
func NewSpecification(name, value string) (Specification, error) {
	if strings.TrimSpace(name) == "" {
		return Specification{}, shared.NewInvalidArgumentError("Name of specification is required")
	}
	if strings.TrimSpace(value) == "" {
		return Specification{}, shared.NewInvalidArgumentError("Value of specification is required")
	}
	return Specification{name: name, value: value}, nil
}

func (s Specification) Name() string {
	return s.name
}

func (s Specification) Value() string {
	return s.value
}

// IsZero reports whether no specification was supplied
func (s Specification) IsZero() bool {
	return s.name == "" && s.value == ""
}

// Equals compares name and value
func (s Specification) Equals(other Specification) bool {
	return s.name == other.name && s.value == other.value
}
