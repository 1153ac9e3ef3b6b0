package summary

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"question-bank/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type countingProvider struct {
	calls   atomic.Int32
	latency time.Duration
	err     error
}

func (p *countingProvider) Produce(ctx context.Context, locator domain.ContentLocator, difficultyDist, bloomsDist domain.Distribution) (*domain.ContentSummary, error) {
	p.calls.Add(1)
	if p.latency > 0 {
		time.Sleep(p.latency)
	}
	if p.err != nil {
		return nil, p.err
	}
	return &domain.ContentSummary{Text: "generated summary", Duration: p.latency}, nil
}

const testKey = "questionbank:summary:content:cx2201:toc_level_1_title_56330_ch10_ptg01"

func TestCachedSummaryProvider_Hit(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, testKey).Return("cached summary", nil)

	next := &countingProvider{}
	provider := NewCachedSummaryProvider(next, c, time.Hour)

	summary, err := provider.Produce(context.Background(), testLocator, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "cached summary", summary.Text)
	assert.Zero(t, next.calls.Load(), "cache hit must not reach the engine")
	c.AssertExpectations(t)
}

func TestCachedSummaryProvider_MissPopulates(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, testKey).Return("", domain.ErrCacheMiss)
	c.On("Set", mock.Anything, testKey, "generated summary", time.Hour).Return(nil)

	next := &countingProvider{}
	provider := NewCachedSummaryProvider(next, c, time.Hour)

	summary, err := provider.Produce(context.Background(), testLocator, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "generated summary", summary.Text)
	assert.Equal(t, int32(1), next.calls.Load())
	c.AssertExpectations(t)
}

func TestCachedSummaryProvider_CacheErrorDegradesToDirect(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, testKey).Return("", errors.New("redis down"))
	c.On("Set", mock.Anything, testKey, "generated summary", time.Hour).Return(errors.New("redis down"))

	next := &countingProvider{}
	provider := NewCachedSummaryProvider(next, c, time.Hour)

	summary, err := provider.Produce(context.Background(), testLocator, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "generated summary", summary.Text)
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedSummaryProvider_CollapsesConcurrentMisses(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, testKey).Return("", domain.ErrCacheMiss)
	c.On("Set", mock.Anything, testKey, "generated summary", time.Hour).Return(nil)

	next := &countingProvider{latency: 50 * time.Millisecond}
	provider := NewCachedSummaryProvider(next, c, time.Hour)

	const concurrency = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			summary, err := provider.Produce(context.Background(), testLocator, nil, nil)
			assert.NoError(t, err)
			assert.Equal(t, "generated summary", summary.Text)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), next.calls.Load(), "concurrent identical requests must share one engine call")
}

func TestCachedSummaryProvider_UpstreamErrorPropagates(t *testing.T) {
	c := new(mockCache)
	c.On("Get", mock.Anything, testKey).Return("", domain.ErrCacheMiss)

	upstreamErr := domain.NewUpstreamError(errors.New("timeout"))
	next := &countingProvider{err: upstreamErr}
	provider := NewCachedSummaryProvider(next, c, time.Hour)

	summary, err := provider.Produce(context.Background(), testLocator, nil, nil)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, upstreamErr)
}
