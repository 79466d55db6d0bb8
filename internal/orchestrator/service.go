// Package orchestrator coordinates extraction, schema building, and closure
// filtering into the two generation entry points.
package orchestrator

import (
	"github.com/go-openapi/spec"

	"github.com/griffnb/ts-swag/internal/console"
	"github.com/griffnb/ts-swag/internal/extractor"
	"github.com/griffnb/ts-swag/internal/schema"
)

// Service wires the extractor and builder. It holds no per-invocation state,
// so one Service may serve concurrent generation requests.
type Service struct {
	extractor *extractor.Service
	builder   *schema.BuilderService
}

// New creates a new orchestrator service.
func New() *Service {
	return &Service{
		extractor: extractor.NewService(),
		builder:   schema.NewBuilder(),
	}
}

// GenerateAll extracts every definition in the source file and returns the
// full, dereferenced schema set.
func (s *Service) GenerateAll(sourcePath string) (map[string]spec.Schema, error) {
	defs, err := s.extractor.Extract(sourcePath, "")
	if err != nil {
		return nil, err
	}

	schemas := make(map[string]spec.Schema, len(defs))
	for name, def := range defs {
		schemas[name] = s.builder.Build(def)
	}

	console.Logger.Debug("generated %d schemas from %s", len(schemas), sourcePath)

	return schema.DereferenceArrays(schemas), nil
}

// GenerateByName extracts definitions from the source focused on rootName,
// builds schemas only for names in the reachable closure, and dereferences
// arrays. Returns a DefinitionNotFoundError when rootName is absent.
func (s *Service) GenerateByName(sourcePath, rootName string) (map[string]spec.Schema, error) {
	defs, err := s.extractor.Extract(sourcePath, rootName)
	if err != nil {
		return nil, err
	}

	reachable := Closure(rootName, defs)

	schemas := make(map[string]spec.Schema, len(reachable))
	for name := range reachable {
		def, ok := defs[name]
		if !ok {
			// External type: the reference stays dangling by design.
			continue
		}
		schemas[name] = s.builder.Build(def)
	}

	console.Logger.Debug("closure of %s covers %d of %d definitions in %s",
		rootName, len(schemas), len(defs), sourcePath)

	return schema.DereferenceArrays(schemas), nil
}
