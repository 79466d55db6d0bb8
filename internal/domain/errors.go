package domain

import "fmt"

// DefinitionNotFoundError is returned when a requested definition name is
// absent from a source after a full extraction pass.
type DefinitionNotFoundError struct {
	Name   string
	Source string
}

func (e *DefinitionNotFoundError) Error() string {
	return fmt.Sprintf("definition %q not found in %s", e.Name, e.Source)
}

// NewDefinitionNotFound builds a DefinitionNotFoundError for the given name
// and source path.
func NewDefinitionNotFound(name, source string) *DefinitionNotFoundError {
	return &DefinitionNotFoundError{Name: name, Source: source}
}
