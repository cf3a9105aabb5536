package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cockroachdb/errors"

	internal "github.com/neko233-com/template233-go/internal/template233"
	"github.com/neko233-com/template233-go/pkg/template233"
	"github.com/neko233-com/template233-go/pkg/template233/prompt"
)

func main() {
	createDefault := flag.Bool("default", false, "Also create a commented default_data_template.json")
	settingsFile := flag.String("config", "", "Settings file (default ./template233.yaml if present)")
	dataDir := flag.String("dir", "", "data_gen directory (overrides settings and TEMPLATE233_DIR)")
	schemaDir := flag.String("schema", "", "Schema catalog directory used for validation")
	watch := flag.Bool("watch", false, "Keep re-validating the template whenever it changes")
	verbosity := flag.Int("v", 0, "Log verbosity")
	flag.Parse()

	os.Exit(run(*settingsFile, *dataDir, *schemaDir, *createDefault, *watch, *verbosity))
}

func run(settingsFile, dataDir, schemaDir string, createDefault, watch bool, verbosity int) int {
	// 中断信号只在这里注册一次，之后由 ctx 传递
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings, err := internal.LoadSettings(settingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if dataDir != "" {
		settings.DataDir = dataDir
	}
	if schemaDir != "" {
		settings.SchemaDir = schemaDir
	}
	if !filepath.IsAbs(settings.DataDir) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		settings.DataDir = filepath.Join(cwd, settings.DataDir)
	}

	template233.SetLogger(internal.NewConsoleLogger(os.Stderr, verbosity))

	printer := prompt.NewPrinter(os.Stdout, settings.ColorEnabled())
	_, err = template233.Init(ctx, prompt.NewLinePrompter(os.Stdin, os.Stdout), printer, template233.InitOptions{
		DataDir:       settings.DataDir,
		CreateDefault: createDefault,
		SchemaDir:     settings.SchemaDir,
		Watch:         watch,
		Global: template233.GlobalOptions{
			DefaultObjects: settings.DefaultObjects,
			DefaultCount:   settings.DefaultCount,
			Languages:      settings.Languages,
		},
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrInterrupted):
		// 操作员中断，不再输出任何内容
		return 0
	default:
		printer.Danger("Error: %v", err)
		return 1
	}
}
