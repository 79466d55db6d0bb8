// Package extractor walks a TypeScript declaration source and produces the
// flat name → Definition mapping consumed by the schema builder.
package extractor

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/griffnb/ts-swag/internal/console"
	"github.com/griffnb/ts-swag/internal/domain"
)

// Service extracts definitions from TypeScript sources. Each Extract call
// creates its own tree-sitter parser, so a single Service is safe for
// concurrent use.
type Service struct{}

// NewService creates a new extractor service.
func NewService() *Service {
	return &Service{}
}

// Extract parses the source at path and returns every declaration found,
// keyed by declared name. When focusName is non-empty and absent from the
// result after a full walk, a DefinitionNotFoundError is returned.
func (s *Service) Extract(path, focusName string) (domain.Definitions, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}

	defs, err := s.ExtractSource(content, path)
	if err != nil {
		return nil, err
	}

	if focusName != "" {
		if _, ok := defs[focusName]; !ok {
			return nil, domain.NewDefinitionNotFound(focusName, path)
		}
	}

	return defs, nil
}

// ExtractSource parses raw TypeScript source bytes. The path is used only for
// error reporting.
func (s *Service) ExtractSource(content []byte, path string) (domain.Definitions, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no syntax tree produced for %s", path)
	}
	if root.HasError() {
		console.Logger.Warn("source %s contains syntax errors, extracting what parses", path)
	}

	defs := make(domain.Definitions)
	w := &walker{content: content}
	w.collectDeclarations(root, defs)

	return defs, nil
}
