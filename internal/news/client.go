package news

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Danypoz1986/StockBot/internal/api"
)

const newsAPIBaseURL = "https://newsapi.org"

// Article is one news item considered for polarity scoring.
type Article struct {
	Title       string
	Description string
	Source      string
	URL         string
}

// Client fetches articles from the NewsAPI /v2/everything endpoint.
type Client struct {
	apiKey string
	client *api.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		client: api.NewClient(
			api.WithBaseURL(newsAPIBaseURL),
			api.WithTimeout(20*time.Second),
			api.WithLogging(true),
		),
	}
}

type everythingResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// FetchArticles queries NewsAPI for the given market-wide query string.
func (c *Client) FetchArticles(ctx context.Context, query string, max int) ([]Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news api key is not set")
	}

	path := fmt.Sprintf("/v2/everything?q=%s&apiKey=%s", url.QueryEscape(query), url.QueryEscape(c.apiKey))

	var er everythingResponse
	if err := c.client.DoJSON(api.NewRequest("GET", path).WithContext(ctx), &er); err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	if er.Status != "ok" {
		return nil, fmt.Errorf("news api status %s: %s", er.Code, er.Message)
	}

	articles := make([]Article, 0, len(er.Articles))
	for _, a := range er.Articles {
		if max > 0 && len(articles) >= max {
			break
		}
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			URL:         a.URL,
		})
	}
	return articles, nil
}
