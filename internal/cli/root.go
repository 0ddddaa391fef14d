// Package cli implements the lexicon command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexicon/internal/config"
	"github.com/dmitrymomot/lexicon/middlewares"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/logger"
)

type rootOptions struct {
	envFiles []string
	dir      string
	source   string
	fallback string

	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand builds the lexicon command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "lexicon",
		Short: "Resolve and serve translations",
		Long: `lexicon resolves dotted translation keys such as "message.welcome"
against translation files, an S3 bucket or a PostgreSQL table.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "env files to load (default .env)")
	root.PersistentFlags().StringVar(&opts.dir, "dir", "", "translations directory (overrides TRANSLATIONS_DIR)")
	root.PersistentFlags().StringVar(&opts.source, "source", "", "translation source: dir, s3 or postgres")
	root.PersistentFlags().StringVar(&opts.fallback, "fallback", "", "fallback locale (overrides FALLBACK_LOCALE)")

	root.AddCommand(
		newTransCommand(opts),
		newChoiceCommand(opts),
		newHasCommand(opts),
		newLocalesCommand(opts),
		newServeCommand(opts),
		newMigrateCommand(opts),
		newImportCommand(opts),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	if o.dir != "" {
		_ = os.Setenv("TRANSLATIONS_DIR", o.dir)
	}
	if o.source != "" {
		_ = os.Setenv("TRANSLATIONS_SOURCE", o.source)
	}
	if o.fallback != "" {
		_ = os.Setenv("FALLBACK_LOCALE", o.fallback)
	}

	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.log = logger.New(cfg.Log, cmd.ErrOrStderr(),
		middlewares.RequestIDExtractor(),
		middlewares.LocaleExtractor(),
	)
	return nil
}

// withResolver builds the runtime, runs fn and releases the connections.
func (o *rootOptions) withResolver(ctx context.Context, fn func(*runtime) error) error {
	rt, err := buildRuntime(ctx, o.cfg, o.log)
	if err != nil {
		return err
	}
	defer func() { _ = rt.close(context.Background()) }()
	return fn(rt)
}

// placeholders parses "name=value" arguments.
func placeholders(args []string) (i18n.M, error) {
	m := make(i18n.M, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("placeholder %q must be name=value", arg)
		}
		m[name] = value
	}
	return m, nil
}
