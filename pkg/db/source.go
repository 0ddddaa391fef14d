package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// Querier is the subset of *pgxpool.Pool and pgx.Tx used by Source.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TxBeginner starts transactions. *pgxpool.Pool implements it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Source serves translation resources from the translations table.
type Source struct {
	db Querier
}

// NewSource creates a Source over db, usually a *pgxpool.Pool.
func NewSource(db Querier) *Source {
	return &Source{db: db}
}

const (
	selectLocales = `SELECT DISTINCT locale FROM translations ORDER BY locale`
	selectGroup   = `SELECT format, body FROM translations WHERE locale = $1 AND grp = $2`
	upsertGroup   = `INSERT INTO translations (locale, grp, format, body)
VALUES ($1, $2, $3, $4)
ON CONFLICT (locale, grp) DO UPDATE
SET format = EXCLUDED.format, body = EXCLUDED.body, updated_at = now()`
	deleteLocale = `DELETE FROM translations WHERE locale = $1`
)

// Locales returns the distinct locales present in the table.
func (s *Source) Locales(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, selectLocales)
	if err != nil {
		return nil, fmt.Errorf("db: listing locales: %w", err)
	}

	locales, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("db: listing locales: %w", err)
	}
	return locales, nil
}

// Find returns the stored resource, or i18n.ErrResourceNotFound.
func (s *Source) Find(ctx context.Context, locale, group string) (*i18n.Resource, error) {
	var res i18n.Resource
	err := s.db.QueryRow(ctx, selectGroup, locale, group).Scan(&res.Format, &res.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, i18n.ErrResourceNotFound
		}
		return nil, fmt.Errorf("db: reading %s/%s: %w", locale, group, err)
	}
	return &res, nil
}

// Put stores one group, replacing the previous version.
func (s *Source) Put(ctx context.Context, locale, group string, res i18n.Resource) error {
	return put(ctx, s.db, locale, group, res)
}

func put(ctx context.Context, q Querier, locale, group string, res i18n.Resource) error {
	if locale == "" || group == "" || res.Format == "" {
		return ErrInvalidResource
	}
	if _, err := q.Exec(ctx, upsertGroup, locale, group, res.Format, res.Data); err != nil {
		return fmt.Errorf("db: writing %s/%s: %w", locale, group, err)
	}
	return nil
}

// ReplaceLocale swaps all groups of locale for groups in one transaction.
// Readers see either the old or the new set.
func ReplaceLocale(ctx context.Context, db TxBeginner, locale string, groups map[string]i18n.Resource) error {
	if locale == "" {
		return ErrInvalidResource
	}

	return WithTx(ctx, db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteLocale, locale); err != nil {
			return fmt.Errorf("db: clearing %s: %w", locale, err)
		}
		for group, res := range groups {
			if err := put(ctx, tx, locale, group, res); err != nil {
				return err
			}
		}
		return nil
	})
}

// WithTx runs fn in a transaction. The transaction is rolled back when fn
// returns an error or panics, and committed otherwise.
func WithTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db: begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

var _ i18n.Source = (*Source)(nil)
