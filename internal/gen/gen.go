// Package gen drives document assembly and writes the generated files.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"

	"github.com/griffnb/ts-swag/internal/assembler"
	"github.com/griffnb/ts-swag/internal/console"
	"github.com/griffnb/ts-swag/internal/registry"
)

// Name is the default document instance name.
const Name = "openapi"

// Version of the generator.
const Version = "v1.0.0"

type genTypeWriter func(*Config, *assembler.Document) error

// Gen presents the generate tool.
type Gen struct {
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSONDoc,
		"yaml": gen.writeYAMLDoc,
		"yml":  gen.writeYAMLDoc,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	// Sources are the TypeScript declaration files to generate schemas
	// from, comma separated.
	Sources string

	// RootName narrows generation to the closure reachable from one type
	// name. Only valid with a single source.
	RootName string

	// HandlersDir is the conventional directory scanned for handler
	// manifests. Empty disables discovery.
	HandlersDir string

	// OutputDir receives the generated files.
	OutputDir string

	// OutputTypes define which files are generated (json, yaml).
	OutputTypes []string

	// Title, Description and APIVersion populate the document info block.
	Title       string
	Description string
	APIVersion  string

	// InstanceName distinguishes multiple generated documents.
	InstanceName string
}

// Build assembles the OpenAPI document for the configured sources and writes
// the requested output files.
func (g *Gen) Build(config *Config) error {
	if config.InstanceName == "" {
		config.InstanceName = Name
	}
	if config.OutputDir == "" {
		config.OutputDir = "./docs"
	}

	sources := parseSources(config)
	if len(sources) == 0 {
		return fmt.Errorf("no sources specified")
	}
	if config.RootName != "" && len(sources) > 1 {
		return fmt.Errorf("a root type name requires exactly one source")
	}
	for _, src := range sources {
		if _, err := os.Stat(src.Path); os.IsNotExist(err) {
			return fmt.Errorf("source %s does not exist", src.Path)
		}
	}

	reg := registry.NewRegistry()
	if config.HandlersDir != "" {
		var err error
		reg, err = registry.Discover(config.HandlersDir)
		if err != nil {
			return err
		}
	}

	title := config.Title
	if title == "" {
		title = cases.Title(language.English).String(config.InstanceName)
	}

	console.Logger.Debug("assembling document from %d sources", len(sources))

	doc, err := assembler.New(&assembler.Config{
		Title:       title,
		Description: config.Description,
		Version:     config.APIVersion,
		Sources:     sources,
		Registry:    reg,
	}).Assemble()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, outputType := range config.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if typeWriter, ok := g.outputTypeMap[outputType]; ok {
			if err := typeWriter(config, doc); err != nil {
				return err
			}
		} else {
			console.Logger.Warn("output type %q not supported", outputType)
		}
	}

	return nil
}

// parseSources splits the comma-separated source list and applies the root
// name to a single source.
func parseSources(config *Config) []assembler.Source {
	var sources []assembler.Source
	for _, path := range strings.Split(config.Sources, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		sources = append(sources, assembler.Source{Path: path})
	}
	if config.RootName != "" && len(sources) == 1 {
		sources[0].Root = config.RootName
	}
	return sources
}

func (g *Gen) outputFileName(config *Config, ext string) string {
	filename := Name + "." + ext
	if config.InstanceName != Name {
		filename = config.InstanceName + "_" + filename
	}
	return filepath.Join(config.OutputDir, filename)
}

func (g *Gen) writeJSONDoc(config *Config, doc *assembler.Document) error {
	data, err := g.jsonIndent(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	path := g.outputFileName(config, "json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	console.Logger.Debug("wrote %s", path)

	return nil
}

func (g *Gen) writeYAMLDoc(config *Config, doc *assembler.Document) error {
	data, err := g.jsonIndent(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	yamlData, err := g.jsonToYAML(data)
	if err != nil {
		return fmt.Errorf("failed to convert document to yaml: %w", err)
	}

	path := g.outputFileName(config, "yaml")
	if err := os.WriteFile(path, yamlData, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	console.Logger.Debug("wrote %s", path)

	return nil
}
