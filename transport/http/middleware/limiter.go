package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	"rental/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client in Redis. Every request renews the window, so a client
// has to stay quiet for a full window to be let back in. A cache outage lets requests through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			count, ok := a.hit(r.Context(), cacheKey, limiter.WindowSeconds)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hit records one request under key and returns the count in the current window.
func (a *appMiddleware) hit(ctx context.Context, key string, windowSeconds int) (int, bool) {
	var count int

	err := a.cache.Get(ctx, key, &count)

	switch {
	case errors.Is(err, cache.Nil):
		count = 0
	case err != nil:
		log.Warn().Err(err).Msg("rate limiter cache unavailable, letting request through")

		return 0, false
	}

	count++

	if err := a.cache.Save(ctx, key, count, windowSeconds); err != nil {
		log.Warn().Err(err).Msg("rate limiter failed to record request")

		return 0, false
	}

	return count, true
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != constant.Empty {
		return ua
	}

	return unknownUserAgent
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
