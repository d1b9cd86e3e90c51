package cache

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
	"github.com/ashworthrenovations/ashworth-api/pkg/metrics"
)

const (
	sitemapKey      = "seo:sitemap"
	schemaKeyPrefix = "seo:schemas:"
	cacheName       = "seo"
	checkPeriod     = time.Hour
)

// ArtifactSource produces the SEO artifacts the cache holds. Content is
// static, so a rebuild always yields the same output; the cache exists to
// avoid recomputing schema trees on every request.
type ArtifactSource interface {
	Sitemap() []models.SitemapEntry
	LocationSchemas(slug string) ([]any, bool)
}

// SeoCache holds prebuilt sitemap and schema artifacts
type SeoCache struct {
	cache  *gocache.Cache
	source ArtifactSource
	ttl    time.Duration
	mu     sync.RWMutex
	ready  bool
}

// NewSeoCache creates a cache over the given artifact source
func NewSeoCache(source ArtifactSource, ttlSeconds int) *SeoCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &SeoCache{
		cache:  gocache.New(ttl, checkPeriod),
		source: source,
		ttl:    ttl,
	}
}

// Initialize warms the cache with every artifact. Called during startup
// before the server accepts requests.
func (sc *SeoCache) Initialize(locationSlugs []string) error {
	logger.Info("Initializing SEO artifact cache...")
	start := time.Now()

	sc.cache.Set(sitemapKey, sc.source.Sitemap(), sc.ttl)
	for _, slug := range locationSlugs {
		schemas, ok := sc.source.LocationSchemas(slug)
		if !ok {
			return fmt.Errorf("no schemas for location %q", slug)
		}
		sc.cache.Set(schemaKeyPrefix+slug, schemas, sc.ttl)
	}

	sc.mu.Lock()
	sc.ready = true
	sc.mu.Unlock()

	logger.Info("SEO artifact cache initialized",
		zap.Int("locations", len(locationSlugs)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// IsReady reports whether the initial warm completed
func (sc *SeoCache) IsReady() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ready
}

// GetSitemap returns the cached sitemap, rebuilding on expiry
func (sc *SeoCache) GetSitemap() []models.SitemapEntry {
	if v, found := sc.cache.Get(sitemapKey); found {
		metrics.CacheHits.WithLabelValues(cacheName).Inc()
		return v.([]models.SitemapEntry)
	}
	metrics.CacheMisses.WithLabelValues(cacheName).Inc()

	entries := sc.source.Sitemap()
	sc.cache.Set(sitemapKey, entries, sc.ttl)
	return entries
}

// GetLocationSchemas returns the cached schema set for a location page,
// rebuilding on expiry. The second return is false for unknown slugs.
func (sc *SeoCache) GetLocationSchemas(slug string) ([]any, bool) {
	if v, found := sc.cache.Get(schemaKeyPrefix + slug); found {
		metrics.CacheHits.WithLabelValues(cacheName).Inc()
		return v.([]any), true
	}
	metrics.CacheMisses.WithLabelValues(cacheName).Inc()

	schemas, ok := sc.source.LocationSchemas(slug)
	if !ok {
		return nil, false
	}
	sc.cache.Set(schemaKeyPrefix+slug, schemas, sc.ttl)
	return schemas, true
}
