package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegrid/internal/server"
)

// serveCommand creates the serve command, which exposes rendering over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
		timeout time.Duration
		copts   cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

  GET  /healthz
  POST /v1/render?format=svg|json|pdf|png|dot|tree&syntax=toml|yaml|json

The request body is the layout document. Pass --redis to share the artifact
cache between several instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, copts,
				server.WithMaxBodyBytes(maxBody),
				server.WithTimeout(timeout))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum document size in bytes")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request timeout")
	copts.register(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, copts cacheOpts, opts ...server.Option) error {
	runner, err := c.newRunner(ctx, copts)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	printInfo("Serving on %s", StyleLink.Render("http://"+addr))
	return server.New(runner, c.Logger, opts...).ListenAndServe(ctx, addr)
}
