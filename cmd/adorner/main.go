// Command adorner annotates TEI word elements with identifiers, parts of
// speech and sentence boundaries in a single streaming pass.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/adorner/core/adorn"
	"github.com/FocuswithJustin/adorner/internal/config"
	"github.com/FocuswithJustin/adorner/internal/logging"
	"github.com/FocuswithJustin/adorner/internal/records"
	"github.com/FocuswithJustin/adorner/internal/validation"
)

const version = "0.1.0"

// stdout receives command output; tests replace it.
var stdout io.Writer = os.Stdout

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `name:"config" short:"c" help:"Configuration file (.yaml, .yml or .toml)" type:"existingfile"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" help:"Log format (text, json)"`
	Records   string `name:"records" help:"SQLite run history database" type:"path"`
}

// cli defines the command-line interface for adorner.
type cli struct {
	Globals

	Annotate AnnotateCmd `cmd:"" help:"Annotate words in TEI documents"`
	Census   CensusCmd   `cmd:"" help:"Count words, pages and split words without annotating"`
	Runs     RunsGroup   `cmd:"" help:"Inspect the run history"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// CLI holds the parsed command line.
var CLI cli

// load reads the configuration file, if any, and sets up logging. Flags
// take precedence over the file.
func (g *Globals) load() (*config.File, error) {
	file := &config.File{}
	if g.Config != "" {
		if err := validation.ValidatePath(g.Config); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		f, err := config.Load(g.Config)
		if err != nil {
			return nil, err
		}
		file = f
	}

	level, format := file.Log.Level, file.Log.Format
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	if g.LogFormat != "" {
		format = g.LogFormat
	}
	logging.InitLogger(logging.ParseLevel(level), logging.ParseFormat(format))
	logging.Debug("config_loaded", "path", g.Config, "level", level, "format", format)
	return file, nil
}

// annotationConfig returns the defaults overlaid with file.
func annotationConfig(file *config.File) (adorn.Config, error) {
	cfg := adorn.DefaultConfig()
	if err := file.Apply(&cfg); err != nil {
		return adorn.Config{}, err
	}
	return cfg, nil
}

// openStore opens the run history named by the flag or the config file.
// It returns nil when neither names one.
func (g *Globals) openStore(file *config.File) (*records.Store, error) {
	path := g.Records
	if path == "" && file != nil {
		path = file.Records.Path
	}
	if path == "" {
		return nil, nil
	}
	if err := validation.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid records path: %w", err)
	}
	return records.Open(path)
}

// requireStore is openStore for commands that cannot work without one.
func (g *Globals) requireStore(file *config.File) (*records.Store, error) {
	store, err := g.openStore(file)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("no run history: pass --records or set records.path in the config file")
	}
	return store, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "adorner version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("adorner"),
		kong.Description("Streaming word annotation for TEI documents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&CLI.Globals)
	ctx.FatalIfErrorf(err)
}
