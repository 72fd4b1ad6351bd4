package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/Danypoz1986/StockBot/internal/logger"
)

// Scraper collects market headlines directly from financial news sites.
// Used as a fallback signal source when NewsAPI is unavailable or keyless.
type Scraper struct {
	sources []Source
	timeout time.Duration
}

// Source defines one scraped news site.
type Source struct {
	Name      string
	BaseURL   string
	Path      string
	Selectors Selectors
	RateLimit time.Duration
}

// Selectors defines CSS selectors for extracting headline data.
type Selectors struct {
	Container   string
	Title       string
	Description string
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		sources: defaultSources(),
		timeout: timeout,
	}
}

func defaultSources() []Source {
	return []Source{
		{
			Name:    "YahooFinance",
			BaseURL: "https://finance.yahoo.com",
			Path:    "/topic/stock-market-news/",
			Selectors: Selectors{
				Container:   "li.stream-item",
				Title:       "h3",
				Description: "p",
			},
			RateLimit: 2 * time.Second,
		},
		{
			Name:    "MarketWatch",
			BaseURL: "https://www.marketwatch.com",
			Path:    "/markets",
			Selectors: Selectors{
				Container:   "div.article__content",
				Title:       "h3.article__headline a",
				Description: "p.article__summary",
			},
			RateLimit: 2 * time.Second,
		},
	}
}

// ScrapeHeadlines fetches market headlines from all configured sources.
func (s *Scraper) ScrapeHeadlines(ctx context.Context, maxArticles int) ([]Article, error) {
	logger.Info(ctx, "Starting headline scraping", "sources", len(s.sources))

	perSource := maxArticles / len(s.sources)
	if perSource < 1 {
		perSource = 1
	}

	all := []Article{}
	for _, source := range s.sources {
		articles, err := s.scrapeSource(ctx, source, perSource)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to scrape source", err, "source", source.Name)
			continue
		}
		all = append(all, articles...)

		time.Sleep(source.RateLimit)
	}

	logger.Info(ctx, "Headline scraping completed", "articles", len(all))
	return all, nil
}

func (s *Scraper) scrapeSource(ctx context.Context, source Source, maxArticles int) ([]Article, error) {
	articles := []Article{}

	c := colly.NewCollector(
		colly.AllowedDomains(domainOf(source.BaseURL)),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	c.OnHTML(source.Selectors.Container, func(e *colly.HTMLElement) {
		if len(articles) >= maxArticles {
			return
		}

		title := strings.TrimSpace(e.ChildText(source.Selectors.Title))
		if title == "" {
			return
		}

		articles = append(articles, Article{
			Title:       title,
			Description: extractDescription(e.DOM, source.Selectors.Description, title),
			Source:      source.Name,
			URL:         e.Request.AbsoluteURL(e.ChildAttr("a", "href")),
		})
	})

	if err := c.Visit(source.BaseURL + source.Path); err != nil {
		return nil, fmt.Errorf("visit %s: %w", source.Name, err)
	}
	c.Wait()

	return articles, nil
}

// extractDescription pulls the summary paragraph out of a headline block,
// falling back to the title when the block carries no summary.
func extractDescription(sel *goquery.Selection, selector, fallback string) string {
	desc := strings.TrimSpace(sel.Find(selector).First().Text())
	if desc == "" {
		return fallback
	}
	return desc
}

func domainOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	return u.Host
}
