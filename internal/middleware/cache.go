package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/venue-seat-selection/internal/config"
)

// captureWriter buffers the response body while forwarding it to the
// client so a successful render can be cached afterwards.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the route and query string.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// VenueCache caches successful GET responses in Redis.  The venue map
// is rebuilt only on explicit reload, so its JSON rendering is safe to
// serve from cache for the configured TTL.  Only the body is stored;
// every cached route here produces JSON, which keeps the entry format
// trivial.  With caching disabled or no Redis client the middleware is
// a pass-through.
func VenueCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK {
				_ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}

// InvalidateCache drops every cache entry under the configured prefix.
// Called after a venue reload so stale maps are not served for a full
// TTL.  Errors are ignored; a failed invalidation only extends
// staleness within the TTL bound.
func InvalidateCache(ctx context.Context, cfg config.CacheConfig, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	iter := rdb.Scan(ctx, 0, cfg.Prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		_ = rdb.Del(ctx, iter.Val()).Err()
	}
}
