package i18n

import "errors"

var (
	ErrEmptyLocale      = errors.New("i18n: locale cannot be empty")
	ErrEmptyFormat      = errors.New("i18n: format cannot be empty")
	ErrNilLoader        = errors.New("i18n: loader cannot be nil")
	ErrNilSource        = errors.New("i18n: source cannot be nil")
	ErrNilCache         = errors.New("i18n: cache cannot be nil")
	ErrCacheMiss        = errors.New("i18n: cache miss")
	ErrResourceNotFound = errors.New("i18n: resource not found")
	ErrSourceFailed     = errors.New("i18n: translation source failed")
	ErrInvalidResource  = errors.New("i18n: invalid translation resource")
)
