package news

import (
	"context"
	"sync"
	"time"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/types"
)

// Service provides the market sentiment signal with caching. The signal is
// global, so one fetch per cache window serves every ticker in the run.
type Service struct {
	client  *Client
	scraper *Scraper
	cache   *sentimentCache
	cfg     *ServiceConfig
}

var _ interfaces.SentimentSource = (*Service)(nil)

// ServiceConfig configures the sentiment service
type ServiceConfig struct {
	Query          string        // Market-wide news query
	MaxArticles    int           // Maximum articles to score per fetch
	CacheDuration  time.Duration // How long to cache the sentiment signal
	ScraperTimeout time.Duration // Timeout for the scraper fallback
}

// DefaultServiceConfig returns default configuration
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		Query:          "stock",
		MaxArticles:    20,
		CacheDuration:  30 * time.Minute,
		ScraperTimeout: 30 * time.Second,
	}
}

type sentimentCache struct {
	mu   sync.RWMutex
	data map[string]*cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	sentiment types.Sentiment
	timestamp time.Time
}

func newSentimentCache(ttl time.Duration) *sentimentCache {
	return &sentimentCache{
		data: make(map[string]*cacheEntry),
		ttl:  ttl,
	}
}

func (c *sentimentCache) get(query string) (types.Sentiment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[query]
	if !exists {
		return types.Sentiment{}, false
	}
	if time.Since(entry.timestamp) > c.ttl {
		return types.Sentiment{}, false
	}
	return entry.sentiment, true
}

func (c *sentimentCache) set(query string, sentiment types.Sentiment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[query] = &cacheEntry{
		sentiment: sentiment,
		timestamp: time.Now(),
	}
}

// NewService creates a sentiment service. apiKey may be empty, in which case
// only the scraper fallback is used.
func NewService(apiKey string, cfg *ServiceConfig) *Service {
	if cfg == nil {
		cfg = DefaultServiceConfig()
	}
	return &Service{
		client:  NewClient(apiKey),
		scraper: NewScraper(cfg.ScraperTimeout),
		cache:   newSentimentCache(cfg.CacheDuration),
		cfg:     cfg,
	}
}

// MarketSentiment returns the cached or freshly computed global signal.
func (s *Service) MarketSentiment(ctx context.Context) (types.Sentiment, error) {
	if cached, ok := s.cache.get(s.cfg.Query); ok {
		logger.Debug(ctx, "Using cached sentiment", "query", s.cfg.Query)
		return cached, nil
	}

	sentiment, err := s.fetchFreshSentiment(ctx)
	if err != nil {
		return types.Sentiment{}, err
	}

	s.cache.set(s.cfg.Query, sentiment)
	return sentiment, nil
}

func (s *Service) fetchFreshSentiment(ctx context.Context) (types.Sentiment, error) {
	articles, err := s.client.FetchArticles(ctx, s.cfg.Query, s.cfg.MaxArticles)
	if err != nil {
		logger.Warn(ctx, "NewsAPI fetch failed, trying scraper fallback", "error", err)
		articles, err = s.scraper.ScrapeHeadlines(ctx, s.cfg.MaxArticles)
		if err != nil {
			return types.Sentiment{}, err
		}
	}

	avg, scored := ScoreArticles(articles)
	label, suggestion := Classify(avg)

	logger.Info(ctx, "Market sentiment computed",
		"articles", len(articles),
		"scored", scored,
		"polarity", avg,
		"label", label,
		"suggestion", string(suggestion),
	)

	return types.Sentiment{
		AveragePolarity: avg,
		Label:           label,
		Suggestion:      suggestion,
		ArticleCount:    scored,
	}, nil
}
