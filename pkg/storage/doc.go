// Package storage serves translation resources from an S3-compatible bucket.
//
// The bucket uses the same layout as a translations directory, optionally
// below a key prefix:
//
//	{prefix}/en/message.json
//	{prefix}/de/message.yaml
//
// Every common prefix directly below {prefix} is a locale and every object
// inside it a group:
//
//	src, err := storage.New(storage.Config{
//		Bucket:    "translations",
//		AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
//		SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	})
//	if err != nil {
//		return err
//	}
//	resolver, err := i18n.New(ctx, i18n.WithSource(src))
package storage
