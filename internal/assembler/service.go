package assembler

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/go-openapi/spec"
	"golang.org/x/sync/errgroup"

	"github.com/griffnb/ts-swag/internal/console"
	"github.com/griffnb/ts-swag/internal/orchestrator"
	"github.com/griffnb/ts-swag/internal/registry"
	"github.com/griffnb/ts-swag/internal/schema"
)

// Source is one schema input: a TypeScript declaration file, optionally
// narrowed to the closure of a root type name.
type Source struct {
	Path string
	Root string
}

// Config holds assembler configuration.
type Config struct {
	Title       string
	Description string
	Version     string
	Sources     []Source
	Registry    *registry.Registry
	// Extra schema sets merged in from outer collaborators, keyed by an
	// origin label used only for logging.
	ExtraSchemas map[string]map[string]spec.Schema
}

// Service assembles the final OpenAPI document.
type Service struct {
	orchestrator *orchestrator.Service
	config       *Config
}

// New creates a new assembler service with defaults applied.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	if config.Title == "" {
		config.Title = "API"
	}
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	if config.Registry == nil {
		config.Registry = registry.NewRegistry()
	}
	return &Service{
		orchestrator: orchestrator.New(),
		config:       config,
	}
}

// sourceSchemas pairs a source path with its generated schema set for
// deterministic merge ordering.
type sourceSchemas struct {
	path    string
	schemas map[string]spec.Schema
}

// Assemble generates every source's schema set concurrently, merges them with
// the registry's handler operations and any extra schema sets, drops schemas
// unreachable from the paths, and rewrites reference prefixes for OpenAPI 3.
func (s *Service) Assemble() (*Document, error) {
	var (
		mu        sync.Mutex
		collected []sourceSchemas
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, src := range s.config.Sources {
		src := src
		g.Go(func() error {
			var (
				schemas map[string]spec.Schema
				err     error
			)
			if src.Root != "" {
				schemas, err = s.orchestrator.GenerateByName(src.Path, src.Root)
			} else {
				schemas, err = s.orchestrator.GenerateAll(src.Path)
			}
			if err != nil {
				return fmt.Errorf("failed to generate schemas from %s: %w", src.Path, err)
			}

			mu.Lock()
			collected = append(collected, sourceSchemas{path: src.Path, schemas: schemas})
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Sort by source path so later sources win collisions deterministically.
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].path < collected[j].path
	})

	merged := make(map[string]spec.Schema)
	for _, sc := range collected {
		for name, node := range sc.schemas {
			if _, exists := merged[name]; exists {
				console.Logger.Debug("schema %s redefined by %s", name, sc.path)
			}
			merged[name] = node
		}
	}

	extraOrigins := make([]string, 0, len(s.config.ExtraSchemas))
	for origin := range s.config.ExtraSchemas {
		extraOrigins = append(extraOrigins, origin)
	}
	sort.Strings(extraOrigins)
	for _, origin := range extraOrigins {
		for name, node := range s.config.ExtraSchemas[origin] {
			if _, exists := merged[name]; exists {
				console.Logger.Debug("schema %s redefined by %s", name, origin)
			}
			merged[name] = node
		}
	}

	doc := &Document{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       s.config.Title,
			Description: s.config.Description,
			Version:     s.config.Version,
		},
		Paths:      make(map[string]*PathItem),
		Components: Components{Schemas: merged},
	}

	s.addHandlerPaths(doc)

	if len(doc.Paths) > 0 {
		RemoveUnusedSchemas(doc)
	}

	RewriteRefs(doc)

	console.Logger.Debug("assembled document with %d paths and %d schemas",
		len(doc.Paths), len(doc.Components.Schemas))

	return doc, nil
}

// addHandlerPaths converts each registered handler descriptor into a path
// operation referencing its request and response schemas.
func (s *Service) addHandlerPaths(doc *Document) {
	for _, h := range s.config.Registry.Handlers() {
		op := &Operation{
			OperationID: h.OperationID,
			Summary:     h.Summary,
			Description: h.Description,
			Tags:        h.Tags,
			Responses:   map[string]Response{},
		}

		if h.Request != "" {
			op.RequestBody = &RequestBody{
				Required: true,
				Content: map[string]MediaType{
					"application/json": {Schema: schema.RefSchema(h.Request)},
				},
			}
		}

		if h.Response != "" {
			op.Responses["200"] = Response{
				Description: "OK",
				Content: map[string]MediaType{
					"application/json": {Schema: schema.RefSchema(h.Response)},
				},
			}
		} else {
			op.Responses["204"] = Response{Description: "No Content"}
		}

		item, ok := doc.Paths[h.Path]
		if !ok {
			item = &PathItem{}
			doc.Paths[h.Path] = item
		}
		item.setOperation(h.Method, op)
	}
}
