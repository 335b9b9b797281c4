package main

import (
	"context"
	"io"

	"github.com/luxas/deklarative/activity"
	"github.com/luxas/deklarative/activity/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

type runOptions struct {
	configFile string
	level      string
	exporter   string
	files      int
	failAt     int
}

func newRunCmd() *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sample workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&o.configFile, "config", "", "Configuration file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&o.level, "level", "", "Minimum activity level, overrides the configuration")
	cmd.Flags().StringVar(&o.exporter, "exporter", "", "Span exporter (none, stdout, jaeger or otlp), overrides the configuration")
	cmd.Flags().IntVar(&o.files, "files", 3, "Number of files the workload copies")
	cmd.Flags().IntVar(&o.failAt, "fail-at", -1, "Index of the file that fails to copy, or -1")
	return cmd
}

func (o *runOptions) config() (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.Load(o.configFile); err != nil {
			return nil, err
		}
	}
	if o.level != "" {
		l, err := activity.ParseLevel(o.level)
		if err != nil {
			return nil, errors.Wrap(err, "--level")
		}
		cfg.Level = l
	}
	if o.exporter != "" {
		cfg.Exporter.Kind = o.exporter
	}
	return cfg, cfg.Validate()
}

func (o *runOptions) run(ctx context.Context, out io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := o.config()
	if err != nil {
		return err
	}
	stack, err := cfg.Build(ctx, out)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, stack.Shutdown(context.Background())) }()

	ctx = activity.ContextWithBackend(ctx, stack.Backend)
	return (&syncer{tenant: "acme", failAt: o.failAt}).Sync(ctx, o.files)
}
