package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

var (
	ErrInvalidConfig   = errors.New("storage: invalid configuration")
	ErrAccessDenied    = errors.New("storage: access denied")
	ErrListFailed      = errors.New("storage: list failed")
	ErrDownloadFailed  = errors.New("storage: download failed")
	ErrUploadFailed    = errors.New("storage: upload failed")
	ErrObjectTooLarge  = errors.New("storage: object exceeds size limit")
	ErrInvalidResource = errors.New("storage: resource needs locale, group and format")
)

// wrapS3Error maps S3 failures onto sentinel errors. Missing objects become
// i18n.ErrResourceNotFound so the resolver treats them as absent data.
// The AWS error is formatted with %v so callers match on sentinels only.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", i18n.ErrResourceNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%w: %v", i18n.ErrResourceNotFound, err)
	}

	return fmt.Errorf("%w: %v", fallback, err)
}
