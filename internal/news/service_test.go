package news

import (
	"testing"
	"time"

	"github.com/Danypoz1986/StockBot/internal/types"
)

func TestSentimentCacheMissAndHit(t *testing.T) {
	c := newSentimentCache(time.Minute)

	if _, ok := c.get("stock"); ok {
		t.Fatal("Expected a miss on an empty cache")
	}

	want := types.Sentiment{
		AveragePolarity: 0.3,
		Label:           "positiivinen",
		Suggestion:      types.SuggestionBuy,
		ArticleCount:    12,
	}
	c.set("stock", want)

	got, ok := c.get("stock")
	if !ok {
		t.Fatal("Expected a hit after set")
	}
	if got != want {
		t.Errorf("Cached sentiment mismatch: %+v", got)
	}

	// A different query is a separate cache slot.
	if _, ok := c.get("markets"); ok {
		t.Error("Expected a miss for an unseen query")
	}
}

func TestSentimentCacheExpiry(t *testing.T) {
	c := newSentimentCache(10 * time.Millisecond)
	c.set("stock", types.Sentiment{Label: "neutraali", Suggestion: types.SuggestionHold})

	time.Sleep(25 * time.Millisecond)
	if _, ok := c.get("stock"); ok {
		t.Error("Expected the entry to expire after the TTL")
	}
}

func TestDefaultServiceConfig(t *testing.T) {
	cfg := DefaultServiceConfig()
	if cfg.Query != "stock" {
		t.Errorf("Unexpected default query: %s", cfg.Query)
	}
	if cfg.MaxArticles != 20 {
		t.Errorf("Unexpected default article cap: %d", cfg.MaxArticles)
	}
	if cfg.CacheDuration != 30*time.Minute {
		t.Errorf("Unexpected default cache duration: %s", cfg.CacheDuration)
	}
}
