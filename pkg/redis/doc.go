// Package redis opens go-redis clients from environment configuration.
//
// The client backs the shared translation cache (i18n.RedisCache) and the
// readiness probe:
//
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	cache := i18n.NewRedisCache(client, i18n.WithRedisPrefix("i18n"))
//	checks := health.Checks{"redis": redis.Healthcheck(client)}
package redis
