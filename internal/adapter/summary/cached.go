package summary

import (
	"context"
	"time"

	"question-bank/internal/cache"
	"question-bank/internal/domain"
	"question-bank/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedSummaryProvider decorates a SummaryProvider with a cache and
// collapses concurrent requests for the same locator into a single
// upstream call. Cache failures degrade to direct generation; they are
// logged and never surfaced.
type CachedSummaryProvider struct {
	next    domain.SummaryProvider
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCachedSummaryProvider wraps next with a cache. ttl of zero caches
// summaries without expiration.
func NewCachedSummaryProvider(next domain.SummaryProvider, c domain.Cache, ttl time.Duration) *CachedSummaryProvider {
	return &CachedSummaryProvider{next: next, cache: c, ttl: ttl}
}

func (p *CachedSummaryProvider) Produce(ctx context.Context, locator domain.ContentLocator, difficultyDist, bloomsDist domain.Distribution) (*domain.ContentSummary, error) {
	l := logger.Get()
	key := cache.SummaryKey(locator.TenantID, locator.FilterKey, locator.FilterValue)

	start := time.Now()
	if cached, err := p.cache.Get(ctx, key); err == nil {
		l.Debug("Summary cache hit", zap.String("key", key))
		return &domain.ContentSummary{Text: cached, Duration: time.Since(start)}, nil
	} else if err != domain.ErrCacheMiss {
		l.Warn("Summary cache lookup failed, generating directly",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	// Identical in-flight requests share one upstream call.
	result, err, shared := p.sfGroup.Do(key, func() (interface{}, error) {
		generated, genErr := p.next.Produce(ctx, locator, difficultyDist, bloomsDist)
		if genErr != nil {
			return nil, genErr
		}
		if setErr := p.cache.Set(ctx, key, generated.Text, p.ttl); setErr != nil {
			l.Warn("Failed to cache generated summary",
				zap.String("key", key),
				zap.Error(setErr),
			)
		}
		return generated, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		l.Debug("Summary generation shared with concurrent request", zap.String("key", key))
	}

	generated := result.(*domain.ContentSummary)
	// Followers of a shared flight get their own copy so each request's
	// summary stays independently owned.
	summaryCopy := *generated
	return &summaryCopy, nil
}
