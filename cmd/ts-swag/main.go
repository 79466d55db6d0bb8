package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/ts-swag/internal/console"
	"github.com/griffnb/ts-swag/internal/gen"
)

const (
	sourceFlag       = "source"
	nameFlag         = "name"
	handlersDirFlag  = "handlersDir"
	outputFlag       = "output"
	outputTypesFlag  = "outputTypes"
	titleFlag        = "title"
	descriptionFlag  = "description"
	apiVersionFlag   = "apiVersion"
	instanceNameFlag = "instanceName"
	quietFlag        = "quiet"
	debugFlag        = "debug"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:    sourceFlag,
		Aliases: []string{"s"},
		Usage:   "TypeScript declaration files to generate schemas from, comma separated",
	},
	&cli.StringFlag{
		Name:    nameFlag,
		Aliases: []string{"n"},
		Usage:   "Generate only the schemas reachable from this type name (single source only)",
	},
	&cli.StringFlag{
		Name:  handlersDirFlag,
		Usage: "Directory scanned for handler manifests, disabled by default",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./docs",
		Usage:   "Output directory for all the generated files (openapi.json, openapi.yaml)",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json,yaml",
		Usage:   "Output types of generated files like json,yaml",
	},
	&cli.StringFlag{
		Name:  titleFlag,
		Value: "",
		Usage: "Title for the generated document info block",
	},
	&cli.StringFlag{
		Name:  descriptionFlag,
		Value: "",
		Usage: "Description for the generated document info block",
	},
	&cli.StringFlag{
		Name:  apiVersionFlag,
		Value: "1.0.0",
		Usage: "API version for the generated document info block",
	},
	&cli.StringFlag{
		Name:  instanceNameFlag,
		Value: "",
		Usage: "This parameter can be used to name different document instances. It is optional.",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

func generateAction(ctx *cli.Context) error {
	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}
	if ctx.Bool(quietFlag) {
		console.Logger.Quiet()
	}

	if ctx.String(sourceFlag) == "" {
		return fmt.Errorf("no source files specified")
	}

	outputTypes := strings.Split(ctx.String(outputTypesFlag), ",")
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}

	return gen.New().Build(&gen.Config{
		Sources:      ctx.String(sourceFlag),
		RootName:     ctx.String(nameFlag),
		HandlersDir:  ctx.String(handlersDirFlag),
		OutputDir:    ctx.String(outputFlag),
		OutputTypes:  outputTypes,
		Title:        ctx.String(titleFlag),
		Description:  ctx.String(descriptionFlag),
		APIVersion:   ctx.String(apiVersionFlag),
		InstanceName: ctx.String(instanceNameFlag),
	})
}

func main() {
	app := cli.NewApp()
	app.Version = gen.Version
	app.Usage = "Generate OpenAPI 3 documentation from TypeScript declaration files."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate OpenAPI documentation",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
