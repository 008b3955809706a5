package cache

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"

	"github.com/amberstream/lib-exposure-go/constant"
	"github.com/amberstream/lib-exposure-go/model"
)

// Manager handles caching of EPG pages. Entitlements and DRM payloads are
// single-use per playback attempt and are never cached.
type Manager struct {
	cache  *ristretto.Cache[string, *model.ChannelEPG]
	logger *zap.SugaredLogger
}

// New creates a new cache manager
func New(logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, *model.ChannelEPG]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.CacheMaxCost,
		BufferItems: constant.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		cache:  cache,
		logger: logger.Sugar(),
	}, nil
}

// Key builds the cache key for a channel and time range
func Key(channelID string, from, to time.Time) string {
	return fmt.Sprintf("%s:%s:%s", channelID,
		strconv.FormatInt(from.UnixMilli(), 10),
		strconv.FormatInt(to.UnixMilli(), 10))
}

// Get retrieves a cached EPG page
func (m *Manager) Get(key string) (*model.ChannelEPG, bool) {
	if page, found := m.cache.Get(key); found {
		m.logger.Debugf("EPG cache hit for %s (%d programs)", key, len(page.Programs))
		return page, true
	}

	return nil, false
}

// Store caches an EPG page with a fixed TTL. The write is applied before
// returning so an immediate re-read hits.
func (m *Manager) Store(key string, page *model.ChannelEPG) {
	m.cache.SetWithTTL(key, page, 1, constant.EPGCacheTTL)
	m.cache.Wait()
	m.logger.Debugf("Stored EPG page for %s", key)
}
