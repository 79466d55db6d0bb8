// Package registry holds the explicit handler registry consumed by the
// document assembler. Handlers are declared through manifests discovered on
// disk and registered on a Registry value rather than a process-wide list.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Descriptor declares one HTTP handler: its route, operation metadata, and
// the schema names its request and response bodies reference.
type Descriptor struct {
	Name        string   `json:"name"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operationId"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Request     string   `json:"request"`
	Response    string   `json:"response"`
}

var validMethods = map[string]struct{}{
	"GET": {}, "POST": {}, "PUT": {}, "DELETE": {},
	"PATCH": {}, "OPTIONS": {}, "HEAD": {},
}

// Registry collects handler descriptors for one assembly run.
type Registry struct {
	handlers []Descriptor
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register validates and adds a descriptor. The method is upper-cased; the
// path must be rooted.
func (r *Registry) Register(d Descriptor) error {
	d.Method = strings.ToUpper(strings.TrimSpace(d.Method))
	if _, ok := validMethods[d.Method]; !ok {
		return fmt.Errorf("handler %s: unsupported method %q", d.Name, d.Method)
	}
	if !strings.HasPrefix(d.Path, "/") {
		return fmt.Errorf("handler %s: path %q must start with /", d.Name, d.Path)
	}
	if d.OperationID == "" {
		d.OperationID = d.Name
	}
	r.handlers = append(r.handlers, d)
	return nil
}

// Handlers returns the registered descriptors ordered by path then method for
// deterministic document output.
func (r *Registry) Handlers() []Descriptor {
	out := make([]Descriptor, len(r.handlers))
	copy(out, r.handlers)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}
