package i18n_test

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

//go:embed testdata
var testdataFS embed.FS

var errPermissionDenied = errors.New("permission denied")

func testdata(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(testdataFS, "testdata")
	require.NoError(t, err)
	return sub
}

func newResolver(t *testing.T, opts ...i18n.Option) *i18n.Resolver {
	t.Helper()
	opts = append([]i18n.Option{
		i18n.WithFallbackLocale("en"),
		i18n.WithSource(i18n.NewDirSource(testdata(t))),
	}, opts...)
	r, err := i18n.New(context.Background(), opts...)
	require.NoError(t, err)
	return r
}

// countingSource counts Find calls and can be switched to fail.
type countingSource struct {
	next   i18n.Source
	finds  atomic.Int32
	failed atomic.Bool
}

func (s *countingSource) Locales(ctx context.Context) ([]string, error) {
	return s.next.Locales(ctx)
}

func (s *countingSource) Find(ctx context.Context, locale, group string) (*i18n.Resource, error) {
	s.finds.Add(1)
	if s.failed.Load() {
		return nil, errPermissionDenied
	}
	return s.next.Find(ctx, locale, group)
}

// failingSource fails every call.
type failingSource struct{}

func (failingSource) Locales(context.Context) ([]string, error) {
	return nil, errPermissionDenied
}

func (failingSource) Find(context.Context, string, string) (*i18n.Resource, error) {
	return nil, errPermissionDenied
}

// blockingSource holds Find until release is closed and records whether
// the context it was given had been cancelled by then.
type blockingSource struct {
	next    i18n.Source
	entered chan struct{}
	release chan struct{}
	ctxErr  error
}

func (s *blockingSource) Locales(ctx context.Context) ([]string, error) {
	return s.next.Locales(ctx)
}

func (s *blockingSource) Find(ctx context.Context, locale, group string) (*i18n.Resource, error) {
	close(s.entered)
	<-s.release
	s.ctxErr = ctx.Err()
	if s.ctxErr != nil {
		return nil, s.ctxErr
	}
	return s.next.Find(ctx, locale, group)
}
