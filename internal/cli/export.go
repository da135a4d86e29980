package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/pkg/cache"
	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/errors"
	"github.com/SharadhNaidu/mailcanvas/pkg/export"
)

const (
	formatMarkup = "markup"
	formatHTML   = "html"

	// artifactTTL bounds how long compiled exports are reused before being
	// recompiled.
	artifactTTL = 7 * 24 * time.Hour
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string // output file path; stdout when empty
	format  string // "markup" or "html"
	noCache bool   // skip the artifact cache
}

// exportCommand creates the export command: compile a document file into
// flow markup or best-effort HTML.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [document.json]",
		Short: "Compile a document into vertically-flowed email markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatMarkup && opts.format != formatHTML {
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want %s or %s)", opts.format, formatMarkup, formatHTML)
			}
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatMarkup, "output format: markup (default), html")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "recompile even when a cached artifact exists")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, path string, opts exportOpts) error {
	logger := loggerFromContext(ctx)
	track := newProgress(logger)

	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	artifacts := c.newCache(ctx, opts.noCache)
	defer artifacts.Close()

	key := cache.ArtifactKey(export.ContentHash(doc), opts.format)
	res, cached := cachedResult(ctx, artifacts, key)
	if !cached {
		res, err = compileDocument(ctx, doc, opts.format)
		if err != nil {
			return err
		}
		storeResult(ctx, logger, artifacts, key, res)
	}

	payload := res.Markup
	if opts.format == formatHTML {
		payload = res.HTML
	}
	if err := writeOutput(opts.output, payload); err != nil {
		return err
	}

	reportFindings(res)
	if cached {
		logger.Debug("served from artifact cache", "key", key)
	}
	track.done(fmt.Sprintf("Exported %d blocks", doc.Len()))
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

func compileDocument(ctx context.Context, doc *document.Document, format string) (export.Result, error) {
	if format == formatHTML {
		return export.Export(ctx, doc, export.WithHTMLCompiler(export.Basic{}))
	}
	return export.Compile(doc), nil
}

// cachedResult loads a previously compiled result; any cache failure is a miss.
func cachedResult(ctx context.Context, c cache.Cache, key string) (export.Result, bool) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return export.Result{}, false
	}
	var res export.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return export.Result{}, false
	}
	return res, true
}

func storeResult(ctx context.Context, logger *log.Logger, c cache.Cache, key string, res export.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.Set(ctx, key, data, artifactTTL); err != nil {
		logger.Debug("artifact cache write failed", "err", err)
	}
}

func writeOutput(path, payload string) error {
	if path == "" {
		_, err := fmt.Print(payload)
		return err
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(payload), 0o644)
}

// reportFindings prints compiler warnings and downstream diagnostics. Both are
// advisory: the export already succeeded with placeholders in place.
func reportFindings(res export.Result) {
	for _, w := range res.Warnings {
		printWarning("%s: %s", w.BlockName, w.Message)
	}
	for _, d := range res.Diagnostics {
		printDetail("line %d <%s>: %s", d.Line, d.TagName, d.Message)
	}
}
