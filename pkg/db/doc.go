// Package db stores translation resources in PostgreSQL.
//
// Connect opens a pgx pool with startup retries, Migrate applies the
// embedded goose migrations that create the translations table, and Source
// serves the table to an i18n.Resolver:
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := db.Migrate(ctx, pool, cfg.MigrationsTable, log); err != nil {
//		return err
//	}
//
//	resolver, err := i18n.New(ctx, i18n.WithSource(db.NewSource(pool)))
//
// Each row holds one group of one locale in its original encoding, so the
// resolver decodes it with the loader registered for the row's format.
package db
