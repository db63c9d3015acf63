package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/FocuswithJustin/adorner/core/adorn"
	"github.com/FocuswithJustin/adorner/core/census"
	aerrors "github.com/FocuswithJustin/adorner/core/errors"
	"github.com/FocuswithJustin/adorner/core/sentences"
	"github.com/FocuswithJustin/adorner/core/xml"
	"github.com/FocuswithJustin/adorner/internal/archive"
	"github.com/FocuswithJustin/adorner/internal/config"
	"github.com/FocuswithJustin/adorner/internal/logging"
	"github.com/FocuswithJustin/adorner/internal/records"
	"github.com/FocuswithJustin/adorner/internal/validation"
)

// AnnotateCmd annotates one or more documents.
type AnnotateCmd struct {
	Inputs []string `arg:"" help:"Documents to annotate (.xml, .xml.gz or .xml.xz)" type:"existingfile"`
	Out    string   `short:"o" help:"Output file for a single input; compressed by suffix. Default is stdout" type:"path"`
	OutDir string   `name:"out-dir" help:"Directory for annotated documents, named after each input" type:"path"`

	Scheme         string `help:"Identifier scheme (reading-order, page-block, page-block-attributes)"`
	Base           string `help:"Identifier base name. Default is the input file name"`
	Prune          string `help:"Attributes to prune (none, all, token, part, eos; combine with , or +)"`
	PseudoPageSize int    `name:"pseudo-page-size" help:"Words per pseudo-page; 0 disables, -1 keeps the config value" default:"-1"`
	Whitespace     bool   `help:"Write blanks between words"`
}

// overlay applies command-line settings on top of cfg.
func (c *AnnotateCmd) overlay(cfg *adorn.Config) error {
	if c.Scheme != "" {
		s, err := adorn.ParseScheme(c.Scheme)
		if err != nil {
			return err
		}
		cfg.Scheme = s
	}
	if c.Base != "" {
		cfg.BaseName = c.Base
	}
	if c.Prune != "" {
		mode, err := config.ParsePruneMode(c.Prune)
		if err != nil {
			return err
		}
		cfg.Prune = mode
	}
	if c.PseudoPageSize >= 0 {
		cfg.PseudoPageSize = c.PseudoPageSize
	}
	if c.Whitespace {
		cfg.OutputWhitespace = true
	}
	if err := validation.ValidateIDPrefix(cfg.BaseName); err != nil {
		return err
	}
	return cfg.Validate()
}

// outputFor returns where the annotated form of input goes. Empty means
// stdout.
func (c *AnnotateCmd) outputFor(input string) (string, error) {
	if c.OutDir == "" {
		return c.Out, nil
	}
	name := filepath.Base(input)
	if err := validation.ValidateFilename(name); err != nil {
		return "", err
	}
	rel, err := validation.SanitizePath(c.OutDir, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.OutDir, rel), nil
}

func (c *AnnotateCmd) Run(g *Globals) error {
	if len(c.Inputs) > 1 && c.OutDir == "" {
		return aerrors.NewValidation("out-dir", "required with more than one input")
	}
	if c.Out != "" && c.OutDir != "" {
		return aerrors.NewValidation("out", "cannot be combined with --out-dir")
	}

	file, err := g.load()
	if err != nil {
		return err
	}
	cfg, err := annotationConfig(file)
	if err != nil {
		return err
	}
	if err := c.overlay(&cfg); err != nil {
		return err
	}

	store, err := g.openStore(file)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	ctx := context.Background()
	for _, input := range c.Inputs {
		output, err := c.outputFor(input)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		if err := annotateDocument(ctx, cfg, file, input, output, store); err != nil {
			logging.ErrorContext(ctx, "document_failed", "path", input, "error", err)
			return fmt.Errorf("%s: %w", input, err)
		}
	}
	return nil
}

// checkDocument validates path and checks its header against its suffix.
func checkDocument(path string) error {
	if err := validation.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return aerrors.NewIO("open", path, err)
	}
	header := make([]byte, 512)
	n, err := io.ReadFull(f, header)
	f.Close()
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return aerrors.NewIO("read", path, err)
	}
	return validation.CheckDocumentHeader(header[:n], path)
}

// readDocument checks the input and returns the decompressed document.
func readDocument(path string) ([]byte, error) {
	if err := checkDocument(path); err != nil {
		return nil, err
	}
	return archive.ReadFile(path)
}

// annotateDocument runs the counting pass and the annotation pass over one
// document and records the result when store is not nil.
func annotateDocument(ctx context.Context, cfg adorn.Config, file *config.File, input, output string, store *records.Store) (err error) {
	started := time.Now()
	runID := records.NewRunID()
	ctx = logging.WithRunID(ctx, runID)

	if output != "" {
		same, err := samePath(input, output)
		if err != nil {
			return err
		}
		if same {
			return aerrors.NewValidation("out", "would overwrite the input document")
		}
	}

	data, err := readDocument(input)
	if err != nil {
		return err
	}

	logging.DocumentStart(ctx, "census", input)
	res, err := census.CountReader(bytes.NewReader(data), cfg.IDAttribute)
	if err != nil {
		return withPath(err, input)
	}
	logging.DocumentDone(ctx, "census", input, res.Maxima.Words, time.Since(started),
		"pages", res.Maxima.Page, "split_words", len(res.Parts))

	if cfg.BaseName == "" {
		cfg.BaseName = validation.DocumentBaseName(input)
		if err := validation.ValidateIDPrefix(cfg.BaseName); err != nil {
			return err
		}
	}

	var dst io.Writer = stdout
	if output != "" {
		var w *archive.Writer
		w, err = archive.Create(output, true)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := w.Close(); cerr != nil && err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(output)
			}
		}()
		dst = w
	}

	pass := time.Now()
	logging.DocumentStart(ctx, "annotate", input, "scheme", cfg.Scheme.String(), "base", cfg.BaseName)
	xw := xml.NewWriter(dst)
	tr, err := adorn.New(cfg, adorn.Collaborators{
		Tags:   file.TagClassifier(),
		Split:  res.SplitTable(),
		Maxima: &res.Maxima,
	}, xw)
	if err != nil {
		return err
	}
	if err := xml.Stream(bytes.NewReader(data), tr); err != nil {
		return withPath(err, input)
	}
	if err := tr.Close(); err != nil {
		return err
	}
	if err := xw.Flush(); err != nil {
		return aerrors.NewIO("write", output, err)
	}

	if n := tr.DroppedMarkup(); n > 0 {
		logging.Anomaly(ctx, "markup_inside_word", input, n)
	}
	numbered := sentences.Number(tr.Records())
	sentenceCount, words := sentences.Summary(numbered)
	logging.DocumentDone(ctx, "annotate", input, words, time.Since(pass), "sentences", sentenceCount)

	if store == nil {
		return nil
	}
	run := records.Run{
		ID:         runID,
		Document:   input,
		Digest:     records.Digest(data),
		Scheme:     cfg.Scheme.String(),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if err := store.SaveRun(ctx, run, numbered); err != nil {
		return err
	}
	logging.InfoContext(ctx, "run_saved", "records", store.Path())
	return nil
}

// withPath names the document in a parse error.
func withPath(err error, path string) error {
	var perr *aerrors.ParseError
	if aerrors.As(err, &perr) && perr.Path == "" {
		perr.Path = path
	}
	return err
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}

// CensusCmd prints the counting pass result for each document.
type CensusCmd struct {
	Inputs []string `arg:"" help:"Documents to count" type:"existingfile"`
}

// censusReport is one document's census output.
type censusReport struct {
	Path   string        `json:"path"`
	Digest string        `json:"digest"`
	Result census.Result `json:"census"`
}

func (c *CensusCmd) Run(g *Globals) error {
	file, err := g.load()
	if err != nil {
		return err
	}
	cfg, err := annotationConfig(file)
	if err != nil {
		return err
	}

	reports := make([]censusReport, 0, len(c.Inputs))
	for _, input := range c.Inputs {
		data, err := readDocument(input)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		res, err := census.CountReader(bytes.NewReader(data), cfg.IDAttribute)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		reports = append(reports, censusReport{Path: input, Digest: records.Digest(data), Result: res})
	}
	return printJSON(reports)
}
