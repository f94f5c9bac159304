package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the inspect command, an interactive tree browser.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		syntax string
		inches bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [document]",
		Short: "Browse a resolved layout tree interactively",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: documentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], syntax, inches)
		},
	}

	cmd.Flags().StringVar(&syntax, "syntax", "", "document syntax: toml, yaml, json (default: from extension)")
	cmd.Flags().BoolVar(&inches, "inches", false, "start with lengths in inches")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, path, syntax string, inches bool) error {
	if path == "-" {
		return fmt.Errorf("inspect needs a file; stdin is used for keyboard input")
	}
	slide, err := loadSlide(ctx, path, syntax)
	if err != nil {
		return err
	}

	model := NewInspectModel(slide.Document.Title, slide.Root)
	model.Inches = inches
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
