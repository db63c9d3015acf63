package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	aerrors "github.com/FocuswithJustin/adorner/core/errors"
	"github.com/FocuswithJustin/adorner/core/sentences"
	"github.com/FocuswithJustin/adorner/internal/archive"
	"github.com/FocuswithJustin/adorner/internal/records"
)

// RunsGroup contains run history commands.
type RunsGroup struct {
	List   RunsListCmd   `cmd:"" help:"List runs over a document, newest first"`
	Show   RunsShowCmd   `cmd:"" help:"Show a run and optionally its words"`
	Delete RunsDeleteCmd `cmd:"" help:"Delete a run and its words"`
}

// RunsListCmd lists the runs whose input matches a document's content.
type RunsListCmd struct {
	Document string `arg:"" help:"Document to look up by content digest" type:"existingfile"`
}

func (c *RunsListCmd) Run(g *Globals) error {
	file, err := g.load()
	if err != nil {
		return err
	}
	store, err := g.requireStore(file)
	if err != nil {
		return err
	}
	defer store.Close()

	digest, err := digestDocument(c.Document)
	if err != nil {
		return err
	}
	runs, err := store.RunsForDigest(context.Background(), digest)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(stdout, "No runs for %s\n", c.Document)
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tSCHEME\tWORDS\tSENTENCES\tDOCUMENT")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Scheme, r.Words, r.Sentences, r.Document)
	}
	return tw.Flush()
}

// digestDocument hashes the decompressed document without holding it in memory.
func digestDocument(path string) (string, error) {
	if err := checkDocument(path); err != nil {
		return "", err
	}
	r, err := archive.Open(path)
	if err != nil {
		return "", aerrors.NewIO("open", path, err)
	}
	defer r.Close()
	return records.DigestReader(r)
}

// RunsShowCmd prints one run as JSON.
type RunsShowCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Words bool   `help:"Include the run's words grouped by sentence"`
}

type runReport struct {
	records.Run
	Grouped [][]sentences.Numbered `json:"sentence_words,omitempty"`
}

func (c *RunsShowCmd) Run(g *Globals) error {
	file, err := g.load()
	if err != nil {
		return err
	}
	store, err := g.requireStore(file)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	run, err := store.GetRun(ctx, c.ID)
	if err != nil {
		return err
	}
	report := runReport{Run: *run}
	if c.Words {
		words, err := store.Words(ctx, c.ID)
		if err != nil {
			return err
		}
		report.Grouped = sentences.Group(words)
	}
	return printJSON(report)
}

// RunsDeleteCmd removes a run.
type RunsDeleteCmd struct {
	ID string `arg:"" help:"Run ID"`
}

func (c *RunsDeleteCmd) Run(g *Globals) error {
	file, err := g.load()
	if err != nil {
		return err
	}
	store, err := g.requireStore(file)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteRun(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Deleted run %s\n", c.ID)
	return nil
}
