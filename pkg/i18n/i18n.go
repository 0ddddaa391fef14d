package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/lexicon/pkg/choice"
	"github.com/dmitrymomot/lexicon/pkg/logger"
)

// DefaultLocale is used when no fallback locale is configured.
const DefaultLocale = "en"

// Resolver turns dotted keys like "message.welcome" into translated
// strings. The first key segment names a translation group that is loaded
// from the Source on first use and cached; the remaining segments are the
// path inside the group.
//
// A Resolver never fails on missing data: unknown groups, unknown paths and
// paths ending on a nested group all resolve to the key itself.
type Resolver struct {
	source  Source
	cache   Cache
	loaders map[string]Loader
	logger  *slog.Logger
	loads   singleflight.Group

	// Optional handler called when a key resolves to itself.
	missingKeyHandler func(locale, key string)

	// Fixed after construction.
	supported      map[string]struct{}
	locales        []string
	fallbackLocale string

	mu            sync.RWMutex
	currentLocale string
}

// Option configures the Resolver during construction.
type Option func(*Resolver) error

// New creates a Resolver. A Source is required; its locales are discovered
// once here and never refreshed.
func New(ctx context.Context, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		loaders:        defaultLoaders(),
		logger:         logger.Discard(),
		fallbackLocale: DefaultLocale,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if r.source == nil {
		return nil, ErrNilSource
	}
	if r.cache == nil {
		r.cache = NewMemoryCache()
	}

	locales, err := r.source.Locales(ctx)
	if err != nil {
		return nil, errors.Join(ErrSourceFailed, err)
	}

	r.supported = make(map[string]struct{}, len(locales))
	for _, l := range locales {
		if _, dup := r.supported[l]; l == "" || dup {
			continue
		}
		r.supported[l] = struct{}{}
		r.locales = append(r.locales, l)
	}
	slices.Sort(r.locales)

	r.currentLocale = r.fallbackLocale

	return r, nil
}

// WithFallbackLocale sets the locale used at startup and whenever an
// unsupported locale is requested.
// Default: "en".
func WithFallbackLocale(locale string) Option {
	return func(r *Resolver) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		r.fallbackLocale = locale
		return nil
	}
}

// WithSource sets where translation resources and locales come from.
func WithSource(src Source) Option {
	return func(r *Resolver) error {
		if src == nil {
			return ErrNilSource
		}
		r.source = src
		return nil
	}
}

// WithLoader registers the loader for a resource format such as "json".
// Registering a format again replaces the previous loader.
func WithLoader(format string, l Loader) Option {
	return func(r *Resolver) error {
		format = strings.ToLower(strings.TrimPrefix(format, "."))
		if format == "" {
			return ErrEmptyFormat
		}
		if l == nil {
			return ErrNilLoader
		}
		r.loaders[format] = l
		return nil
	}
}

// WithCache replaces the default in-memory cache.
func WithCache(c Cache) Option {
	return func(r *Resolver) error {
		if c == nil {
			return ErrNilCache
		}
		r.cache = c
		return nil
	}
}

// WithLogger sets the logger for source faults and cache failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) error {
		if l != nil {
			r.logger = l
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called whenever a key resolves to
// itself. Useful for spotting untranslated keys during development.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(r *Resolver) error {
		r.missingKeyHandler = handler
		return nil
	}
}

// Get resolves key in the given locale (the current locale when omitted or
// empty) and substitutes placeholders. Missing data resolves to key.
// The error is non-nil only when the source fails or a resource cannot be
// decoded; the returned string is key in that case.
func (r *Resolver) Get(ctx context.Context, key string, replace M, locale ...string) (string, error) {
	loc := r.effectiveLocale(locale)

	value, found, err := r.lookup(ctx, loc, key)
	if err != nil {
		return key, err
	}
	if !found {
		r.missing(loc, key)
		return key, nil
	}

	return ReplacePlaceholders(value, replace), nil
}

// Trans is Get without the error: faults are logged and key is returned.
func (r *Resolver) Trans(ctx context.Context, key string, replace M, locale ...string) string {
	s, err := r.Get(ctx, key, replace, locale...)
	if err != nil {
		r.logger.ErrorContext(ctx, "translation lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return s
}

// GetChoice resolves key to a pipe-delimited message and picks the variant
// for n, see package choice. When the key is missing the key itself is
// used as the message. When no variant applies the result is key.
func (r *Resolver) GetChoice(ctx context.Context, key string, n float64, replace M, locale ...string) (string, error) {
	loc := r.effectiveLocale(locale)

	message, found, err := r.lookup(ctx, loc, key)
	if err != nil {
		return key, err
	}
	if !found {
		r.missing(loc, key)
		message = key
	}

	selected, ok := choice.Select(message, n, loc)
	if !ok {
		r.logger.DebugContext(ctx, "no variant applies",
			slog.String("key", key),
			slog.String("locale", loc),
			slog.Float64("n", n),
		)
		if found {
			r.missing(loc, key)
		}
		return key, nil
	}

	return ReplacePlaceholders(selected, replace), nil
}

// TransChoice is GetChoice without the error: faults are logged and key is
// returned.
func (r *Resolver) TransChoice(ctx context.Context, key string, n float64, replace M, locale ...string) string {
	s, err := r.GetChoice(ctx, key, n, replace, locale...)
	if err != nil {
		r.logger.ErrorContext(ctx, "translation lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return s
}

// Has reports whether key resolves to something other than itself.
// A translation whose text equals its own key is reported as missing.
func (r *Resolver) Has(ctx context.Context, key string, locale ...string) bool {
	return r.Trans(ctx, key, nil, locale...) != key
}

// SetLocale switches the current locale. Unsupported locales select the
// fallback locale instead.
func (r *Resolver) SetLocale(locale string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Supports(locale) {
		r.currentLocale = locale
		return
	}
	r.currentLocale = r.fallbackLocale
}

// Locale returns the current locale.
func (r *Resolver) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentLocale
}

// FallbackLocale returns the fallback locale.
func (r *Resolver) FallbackLocale() string {
	return r.fallbackLocale
}

// Supports reports whether the source provides locale.
func (r *Resolver) Supports(locale string) bool {
	_, ok := r.supported[locale]
	return ok
}

// Locales returns the supported locales, sorted.
func (r *Resolver) Locales() []string {
	return slices.Clone(r.locales)
}

func (r *Resolver) effectiveLocale(locale []string) string {
	if len(locale) > 0 && locale[0] != "" {
		return locale[0]
	}
	return r.Locale()
}

// lookup splits key into group and path and descends the group.
func (r *Resolver) lookup(ctx context.Context, locale, key string) (string, bool, error) {
	group, rest, _ := strings.Cut(key, ".")

	data, err := r.group(ctx, locale, group)
	if err != nil {
		return "", false, err
	}

	var path []string
	if rest != "" {
		path = strings.Split(rest, ".")
	}

	value, ok := data.Lookup(path)
	return value, ok, nil
}

// group returns the cached group or loads it from the source. Absent
// resources and resources in a format without a loader yield an empty
// group that is not cached.
func (r *Resolver) group(ctx context.Context, locale, group string) (Node, error) {
	data, err := r.cache.Get(ctx, locale, group)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.WarnContext(ctx, "translation cache read failed",
			slog.String("locale", locale),
			slog.String("group", group),
			slog.String("error", err.Error()),
		)
	}

	// Shared by all waiters, detached from the first caller's cancellation.
	v, err, _ := r.loads.Do(locale+"\x00"+group, func() (any, error) {
		return r.load(context.WithoutCancel(ctx), locale, group)
	})
	if err != nil {
		return nil, err
	}
	return v.(Node), nil
}

func (r *Resolver) load(ctx context.Context, locale, group string) (Node, error) {
	res, err := r.source.Find(ctx, locale, group)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Node{}, nil
		}
		return nil, errors.Join(ErrSourceFailed, err)
	}

	loader, ok := r.loaders[res.Format]
	if !ok {
		r.logger.DebugContext(ctx, "no loader for translation resource",
			slog.String("locale", locale),
			slog.String("group", group),
			slog.String("format", res.Format),
		)
		return Node{}, nil
	}

	data, err := loader.Load(res.Data)
	if err != nil {
		if !errors.Is(err, ErrInvalidResource) {
			err = errors.Join(ErrInvalidResource, err)
		}
		return nil, fmt.Errorf("%s/%s.%s: %w", locale, group, res.Format, err)
	}

	if err := r.cache.Put(ctx, locale, group, data); err != nil {
		r.logger.WarnContext(ctx, "translation cache write failed",
			slog.String("locale", locale),
			slog.String("group", group),
			slog.String("error", err.Error()),
		)
	}

	return data, nil
}

func (r *Resolver) missing(locale, key string) {
	if r.missingKeyHandler != nil {
		r.missingKeyHandler(locale, key)
	}
}
