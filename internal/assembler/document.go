// Package assembler merges per-source schema sets and the handler registry
// into one OpenAPI 3 document.
package assembler

import "github.com/go-openapi/spec"

// Document is the OpenAPI 3.0 output shape. Schema nodes reuse the
// go-openapi schema model; only the surrounding document structure differs
// from Swagger 2.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       Info                 `json:"info"`
	Paths      map[string]*PathItem `json:"paths"`
	Components Components           `json:"components"`
}

// Info carries the document metadata.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// Components holds the reusable schema set.
type Components struct {
	Schemas map[string]spec.Schema `json:"schemas"`
}

// PathItem describes the operations available on one path.
type PathItem struct {
	Get     *Operation `json:"get,omitempty"`
	Post    *Operation `json:"post,omitempty"`
	Put     *Operation `json:"put,omitempty"`
	Delete  *Operation `json:"delete,omitempty"`
	Patch   *Operation `json:"patch,omitempty"`
	Options *Operation `json:"options,omitempty"`
	Head    *Operation `json:"head,omitempty"`
}

// Operation is one HTTP operation derived from a handler descriptor.
type Operation struct {
	OperationID string              `json:"operationId,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

// RequestBody describes an operation's request payload.
type RequestBody struct {
	Required bool                 `json:"required,omitempty"`
	Content  map[string]MediaType `json:"content"`
}

// Response describes one status code's payload.
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// MediaType pairs a content type with its schema.
type MediaType struct {
	Schema *spec.Schema `json:"schema,omitempty"`
}

// setOperation stores an operation under its method on the path item.
func (p *PathItem) setOperation(method string, op *Operation) {
	switch method {
	case "GET":
		p.Get = op
	case "POST":
		p.Post = op
	case "PUT":
		p.Put = op
	case "DELETE":
		p.Delete = op
	case "PATCH":
		p.Patch = op
	case "OPTIONS":
		p.Options = op
	case "HEAD":
		p.Head = op
	}
}

// operations returns the non-nil operations on the path item.
func (p *PathItem) operations() []*Operation {
	all := []*Operation{p.Get, p.Post, p.Put, p.Delete, p.Patch, p.Options, p.Head}
	out := all[:0]
	for _, op := range all {
		if op != nil {
			out = append(out, op)
		}
	}
	return out
}
