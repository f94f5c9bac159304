package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegrid/pkg/errors"
	"github.com/matzehuels/slidegrid/pkg/pipeline"
	"github.com/matzehuels/slidegrid/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: svg, json, pdf, png, dot, tree
	syntax  string   // overrides the syntax inferred from the file extension
	style   string   // overrides the document style
	debug   bool     // outline and label every area
	scale   float64  // PNG pixel density
	inches  bool     // add inch coordinates to JSON output
	refresh bool     // ignore cached results
	ttl     time.Duration
	cache   cacheOpts
}

// renderCommand creates the render command for writing slide artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale, ttl: pipeline.DefaultTTL}

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render a layout document to SVG, JSON, PDF, PNG or a tree diagram",
		Long: `Render a layout document.

The document is decoded, its area tree resolved and its annotations drawn.
Each requested format is written next to the input unless --output is given.
PDF and PNG output need rsvg-convert on PATH.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: documentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			formats, err := availableFormats(opts.formats, render.Available())
			if err != nil {
				return err
			}
			opts.formats = formats
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated, default svg)")
	cmd.Flags().StringVar(&opts.syntax, "syntax", "", "document syntax: toml, yaml, json (default: from extension)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default), blueprint")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "outline and label every area")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().BoolVar(&opts.inches, "inches", false, "add inch coordinates to JSON output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "how long rendered results stay cached")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	data, syntax, err := readDocument(input, opts.syntax)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Document: data,
		Syntax:   string(syntax),
		Formats:  opts.formats,
		Style:    opts.style,
		Debug:    opts.debug,
		Scale:    opts.scale,
		Inches:   opts.inches,
		TTL:      opts.ttl,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)), "cached", result.CacheHit)

	paths, err := writeArtifacts(result.Artifacts, opts.formats, input, opts.output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", displayName(input, result.Title))
	printStats(result.Stats.NodeCount, result.Stats.Annotations, result.CacheHit)
	for _, p := range paths {
		printFile(p)
	}
	if input != "-" {
		printNextStep("Browse the tree", appName+" inspect "+input)
	}
	return nil
}

// availableFormats drops PDF and PNG with a warning when no SVG converter is
// installed. It fails if nothing is left to render.
func availableFormats(formats []string, converter bool) ([]string, error) {
	if converter {
		return formats, nil
	}
	kept := make([]string, 0, len(formats))
	for _, f := range formats {
		if f == pipeline.FormatPDF || f == pipeline.FormatPNG {
			printWarning("Skipping %s: rsvg-convert not found on PATH", f)
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return nil, errors.New(errors.ErrCodeUnsupported, "no requested format can be rendered without rsvg-convert")
	}
	return kept, nil
}

// writeArtifacts writes each format to disk and returns the paths in format
// order. A single format goes to output itself when output is set.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return nil, fmt.Errorf("missing %s output", format)
		}
		path := outputPath(format, input, output, len(formats) == 1)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath picks the file for one format. With a single format an explicit
// output is used verbatim; otherwise the format becomes the extension of the
// base path, and "tree" output gets a ".tree.svg" suffix.
func outputPath(format, input, output string, single bool) string {
	if single && output != "" {
		return output
	}
	base := basePath(output, input)
	switch format {
	case pipeline.FormatTree:
		return base + ".tree.svg"
	default:
		return base + "." + format
	}
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "slide"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func displayName(input, title string) string {
	if title != "" {
		return StyleHighlight.Render(title)
	}
	return StyleHighlight.Render(input)
}
