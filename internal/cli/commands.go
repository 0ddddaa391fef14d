package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexicon/internal/server"
	"github.com/dmitrymomot/lexicon/pkg/db"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/storage"
)

func newTransCommand(opts *rootOptions) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "trans KEY [name=value...]",
		Short: "Translate a key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			replace, err := placeholders(args[1:])
			if err != nil {
				return err
			}
			return opts.withResolver(cmd.Context(), func(rt *runtime) error {
				s, err := rt.resolver.Get(cmd.Context(), args[0], replace, locale)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale (default fallback locale)")
	return cmd
}

func newChoiceCommand(opts *rootOptions) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "choice KEY N [name=value...]",
		Short: "Translate a key and pick the variant for N",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("N must be a number: %w", err)
			}
			replace, err := placeholders(args[2:])
			if err != nil {
				return err
			}
			return opts.withResolver(cmd.Context(), func(rt *runtime) error {
				s, err := rt.resolver.GetChoice(cmd.Context(), args[0], n, replace, locale)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale (default fallback locale)")
	return cmd
}

func newHasCommand(opts *rootOptions) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "has KEY",
		Short: "Report whether a key has a translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withResolver(cmd.Context(), func(rt *runtime) error {
				fmt.Fprintln(cmd.OutOrStdout(), rt.resolver.Has(cmd.Context(), args[0], locale))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale (default fallback locale)")
	return cmd
}

func newLocalesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withResolver(cmd.Context(), func(rt *runtime) error {
				for _, l := range rt.resolver.Locales() {
					fmt.Fprintln(cmd.OutOrStdout(), l)
				}
				return nil
			})
		},
	}
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := buildRuntime(cmd.Context(), opts.cfg, opts.log)
			if err != nil {
				return err
			}

			httpCfg := opts.cfg.HTTP
			if addr != "" {
				httpCfg.Address = addr
			}

			srv := server.New(rt.resolver,
				server.WithAddress(httpCfg.Address),
				server.WithLogger(opts.log),
				server.WithTimeouts(httpCfg.ReadTimeout, httpCfg.WriteTimeout, httpCfg.RequestTimeout),
				server.WithShutdownTimeout(httpCfg.ShutdownTimeout),
				server.WithHealthChecks(rt.checks),
				server.WithShutdownHook(rt.close),
				server.WithShutdownHook(func(context.Context) error {
					logger.Flush(2 * time.Second)
					return nil
				}),
			)
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the translations table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.cfg.DB.Enabled() {
				return errors.New("DATABASE_CONN_URL is not set")
			}
			pool, err := db.Connect(cmd.Context(), opts.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()
			return db.Migrate(cmd.Context(), pool, opts.cfg.DB.MigrationsTable, opts.log)
		},
	}
}

// localeWriter stores all groups of one locale.
type localeWriter interface {
	WriteLocale(ctx context.Context, locale string, groups map[string]i18n.Resource) error
}

// replaceLocale swaps a locale in PostgreSQL in one transaction, dropping
// groups that are no longer in the directory.
type replaceLocale struct {
	db db.TxBeginner
}

func (r replaceLocale) WriteLocale(ctx context.Context, locale string, groups map[string]i18n.Resource) error {
	return db.ReplaceLocale(ctx, r.db, locale, groups)
}

// groupWriter stores one group of one locale.
type groupWriter interface {
	Put(ctx context.Context, locale, group string, res i18n.Resource) error
}

// putGroups writes groups one by one, for stores without transactions.
type putGroups struct {
	w groupWriter
}

func (p putGroups) WriteLocale(ctx context.Context, locale string, groups map[string]i18n.Resource) error {
	for _, group := range slices.Sorted(maps.Keys(groups)) {
		if err := p.w.Put(ctx, locale, group, groups[group]); err != nil {
			return err
		}
	}
	return nil
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "import DIR",
		Short: "Copy a translations directory into PostgreSQL or S3",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var w localeWriter
			switch target {
			case "postgres":
				if !opts.cfg.DB.Enabled() {
					return errors.New("DATABASE_CONN_URL is not set")
				}
				pool, err := db.Connect(ctx, opts.cfg.DB)
				if err != nil {
					return err
				}
				defer pool.Close()
				w = replaceLocale{db: pool}
			case "s3":
				src, err := storage.New(opts.cfg.Storage)
				if err != nil {
					return err
				}
				w = putGroups{w: src}
			default:
				return fmt.Errorf("unknown target %q, want postgres or s3", target)
			}

			n, err := importDir(ctx, os.DirFS(args[0]), w)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d groups\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "to", "postgres", "target: postgres or s3")
	return cmd
}

// importDir copies every group of every locale in fsys to w, one locale
// at a time.
func importDir(ctx context.Context, fsys fs.FS, w localeWriter) (int, error) {
	src := i18n.NewDirSource(fsys)
	locales, err := src.Locales(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, locale := range locales {
		entries, err := fs.ReadDir(fsys, locale)
		if err != nil {
			return count, err
		}

		groups := make(map[string]i18n.Resource)
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			group := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
			// Keys address groups by their first segment only.
			if group == "" || strings.Contains(group, ".") {
				continue
			}
			if _, ok := groups[group]; ok {
				continue
			}

			res, err := src.Find(ctx, locale, group)
			if err != nil {
				return count, err
			}
			groups[group] = *res
		}

		if err := w.WriteLocale(ctx, locale, groups); err != nil {
			return count, fmt.Errorf("importing %s: %w", locale, err)
		}
		count += len(groups)
	}
	return count, nil
}
