package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Resource is the raw content of one translation group in one locale.
type Resource struct {
	// Format selects the Loader, e.g. "json" or "yaml".
	Format string
	Data   []byte
}

// Source provides translation resources and the list of locales that have
// them.
type Source interface {
	// Locales returns the supported locale identifiers.
	Locales(ctx context.Context) ([]string, error)

	// Find returns the resource for (locale, group).
	// Returns ErrResourceNotFound if there is none. Any other error is
	// treated as a fault of the underlying storage.
	Find(ctx context.Context, locale, group string) (*Resource, error)
}

// DirSource reads resources from a directory tree in which every top-level
// directory is a locale and every file inside it a group:
//
//	en/message.json
//	en/errors.yaml
//	de/message.toml
//
// The format is taken from the file extension. When several files share a
// group name ("message.json" and "message.yaml") the lexically first one
// wins. Names with more than one extension ("message.old.json") never match.
type DirSource struct {
	fsys fs.FS
}

// NewDirSource creates a Source over fsys. Use os.DirFS for a directory on
// disk or an embed.FS sub-tree for compiled-in translations.
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Locales lists the top-level directories.
func (s *DirSource) Locales(_ context.Context) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading locale directories: %w", err)
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	return locales, nil
}

// Find returns the first regular file named "{group}.{ext}" in the locale
// directory.
func (s *DirSource) Find(_ context.Context, locale, group string) (*Resource, error) {
	if !validSegment(locale) || !validSegment(group) {
		return nil, ErrResourceNotFound
	}

	entries, err := fs.ReadDir(s.fsys, locale)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("reading locale %q: %w", locale, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		ext := path.Ext(name)
		if !entry.Type().IsRegular() || ext == "" || strings.TrimSuffix(name, ext) != group {
			continue
		}

		data, err := fs.ReadFile(s.fsys, path.Join(locale, name))
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path.Join(locale, name), err)
		}

		return &Resource{
			Format: strings.ToLower(strings.TrimPrefix(ext, ".")),
			Data:   data,
		}, nil
	}

	return nil, ErrResourceNotFound
}

// validSegment rejects names that would escape the locale directory.
func validSegment(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

var _ Source = (*DirSource)(nil)
