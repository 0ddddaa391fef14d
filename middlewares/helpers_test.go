package middlewares_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func newTestResolver(t *testing.T) *i18n.Resolver {
	t.Helper()

	fsys := fstest.MapFS{
		"en/message.json": &fstest.MapFile{Data: []byte(`{"hello": "Hello"}`)},
		"de/message.json": &fstest.MapFile{Data: []byte(`{"hello": "Hallo"}`)},
		"pl/message.json": &fstest.MapFile{Data: []byte(`{"hello": "Cześć"}`)},
	}

	r, err := i18n.New(context.Background(), i18n.WithSource(i18n.NewDirSource(fsys)))
	require.NoError(t, err)
	return r
}
