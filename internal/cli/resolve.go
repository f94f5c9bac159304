package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegrid/pkg/layout"
	"github.com/matzehuels/slidegrid/pkg/pipeline"
	"github.com/matzehuels/slidegrid/pkg/render/sink"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	syntax string // overrides the syntax inferred from the file extension
	inches bool   // print inches instead of EMU
	json   bool   // print the JSON export instead of a table
}

// resolveCommand creates the resolve command, which prints every area's rectangle.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve [document]",
		Short: "Print the resolved rectangle of every area",
		Long: `Resolve a layout document and print every area's path, kind, unit and
rectangle. Use "-" to read the document from stdin.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: documentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.syntax, "syntax", "", "document syntax: toml, yaml, json (default: from extension)")
	cmd.Flags().BoolVar(&opts.inches, "inches", false, "print lengths in inches")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the JSON export")

	return cmd
}

func (c *CLI) runResolve(ctx context.Context, path string, opts resolveOpts) error {
	slide, err := loadSlide(ctx, path, opts.syntax)
	if err != nil {
		return err
	}

	if opts.json {
		var jsonOpts []sink.JSONOption
		if opts.inches {
			jsonOpts = append(jsonOpts, sink.WithJSONInches())
		}
		data, err := sink.RenderJSON(slide.Root, jsonOpts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	size := slide.Root.Size()
	printKeyValue("Canvas", formatLength(size.Width, opts.inches)+" × "+formatLength(size.Height, opts.inches))
	if slide.Document.Title != "" {
		printKeyValue("Title", slide.Document.Title)
	}
	fmt.Fprintln(stdout, renderTable(
		[]string{"Path", "Kind", "Unit", "Name", "X", "Y", "Width", "Height"},
		nodeRows(slide.Root, opts.inches),
	))
	return nil
}

// loadSlide reads, decodes and resolves a document without rendering it.
func loadSlide(ctx context.Context, path, syntax string) (*pipeline.Slide, error) {
	logger := loggerFromContext(ctx)

	data, s, err := readDocument(path, syntax)
	if err != nil {
		return nil, err
	}
	opts := pipeline.Options{Document: data, Syntax: string(s), Logger: logger}
	doc, err := pipeline.Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	slide, err := pipeline.Resolve(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return slide, nil
}

// nodeRows lists every area of a resolved tree in pre-order.
func nodeRows(root *layout.Root, inches bool) [][]string {
	var rows [][]string
	for a := range root.Walk() {
		r, err := a.Rect()
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprint(a.Path()),
			a.Kind().String(),
			a.Unit().String(),
			a.Name(),
			formatLength(r.X, inches),
			formatLength(r.Y, inches),
			formatLength(r.Width, inches),
			formatLength(r.Height, inches),
		})
	}
	return rows
}

func formatLength(emu int64, inches bool) string {
	if inches {
		return strconv.FormatFloat(float64(emu)/layout.EMUPerInch, 'f', 2, 64) + "in"
	}
	return strconv.FormatInt(emu, 10)
}

