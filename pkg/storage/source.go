package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// API is the part of *s3.Client used by Source.
type API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Source implements i18n.Source over a bucket.
type Source struct {
	api API
	cfg Config
}

// New creates a Source with static credentials.
func New(cfg Config) (*Source, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		}
	})

	return &Source{api: client, cfg: cfg}, nil
}

// NewWithAPI creates a Source over an existing client. Credentials in cfg
// are ignored.
func NewWithAPI(api API, cfg Config) (*Source, error) {
	cfg.applyDefaults()
	if api == nil || cfg.Bucket == "" {
		return nil, ErrInvalidConfig
	}
	return &Source{api: api, cfg: cfg}, nil
}

// Locales lists the common prefixes directly below the configured prefix.
func (s *Source) Locales(ctx context.Context) ([]string, error) {
	base := s.dir()
	p := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.cfg.Bucket),
		Prefix:    aws.String(base),
		Delimiter: aws.String("/"),
	})

	var locales []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrListFailed)
		}
		for _, cp := range page.CommonPrefixes {
			locale := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), base), "/")
			if locale != "" {
				locales = append(locales, locale)
			}
		}
	}
	return locales, nil
}

// Find returns the first object named "{locale}/{group}.*" in key order.
func (s *Source) Find(ctx context.Context, locale, group string) (*i18n.Resource, error) {
	if !validSegment(locale) || !validSegment(group) {
		return nil, i18n.ErrResourceNotFound
	}

	prefix := s.dir() + locale + "/" + group + "."
	page, err := s.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrListFailed)
	}

	for _, obj := range page.Contents {
		key := aws.ToString(obj.Key)
		ext := strings.TrimPrefix(key, prefix)
		if ext == "" || strings.ContainsAny(ext, "/.") {
			continue
		}
		if aws.ToInt64(obj.Size) > s.cfg.MaxObjectSize {
			return nil, fmt.Errorf("%w: %s", ErrObjectTooLarge, key)
		}

		data, err := s.read(ctx, key)
		if err != nil {
			return nil, err
		}
		return &i18n.Resource{Format: strings.ToLower(ext), Data: data}, nil
	}

	return nil, i18n.ErrResourceNotFound
}

// Put uploads one group as "{prefix}/{locale}/{group}.{format}". Objects of
// the same group in other formats are left in place and may shadow it.
func (s *Source) Put(ctx context.Context, locale, group string, res i18n.Resource) error {
	if !validSegment(locale) || !validSegment(group) || res.Format == "" {
		return ErrInvalidResource
	}

	format := strings.ToLower(res.Format)
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(s.dir() + path.Join(locale, group+"."+format)),
		Body:          bytes.NewReader(res.Data),
		ContentLength: aws.Int64(int64(len(res.Data))),
		ContentType:   aws.String(contentType(format)),
	})
	if err != nil {
		return wrapS3Error(err, ErrUploadFailed)
	}
	return nil
}

func (s *Source) read(ctx context.Context, key string) ([]byte, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrDownloadFailed)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, s.cfg.MaxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDownloadFailed, key, err)
	}
	if int64(len(data)) > s.cfg.MaxObjectSize {
		return nil, fmt.Errorf("%w: %s", ErrObjectTooLarge, key)
	}
	return data, nil
}

// dir is the key prefix of the locale directories, "" or "prefix/".
func (s *Source) dir() string {
	if s.cfg.Prefix == "" {
		return ""
	}
	return s.cfg.Prefix + "/"
}

func validSegment(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func contentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "yaml", "yml":
		return "application/yaml"
	case "toml":
		return "application/toml"
	default:
		return "text/plain; charset=utf-8"
	}
}

var _ i18n.Source = (*Source)(nil)
