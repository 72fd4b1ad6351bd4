package news

import (
	"strings"
	"unicode"

	"github.com/Danypoz1986/StockBot/internal/types"
)

// Polarity boundaries for classifying the averaged score.
const (
	positiveBoundary = 0.1
	negativeBoundary = -0.1
)

// Small financial-news polarity lexicon. Scores are per token in [-1,1];
// article polarity is the mean over matched tokens.
var lexicon = map[string]float64{
	"gain": 0.6, "gains": 0.6, "surge": 0.8, "surges": 0.8, "rally": 0.7,
	"rallies": 0.7, "record": 0.4, "profit": 0.6, "profits": 0.6,
	"growth": 0.5, "strong": 0.5, "beat": 0.6, "beats": 0.6, "upgrade": 0.7,
	"upgraded": 0.7, "bullish": 0.8, "optimistic": 0.6, "positive": 0.5,
	"rise": 0.5, "rises": 0.5, "rose": 0.5, "soar": 0.8, "soars": 0.8,
	"recovery": 0.5, "boost": 0.5, "boosts": 0.5, "outperform": 0.6,
	"dividend": 0.3, "expansion": 0.4, "success": 0.5, "successful": 0.5,

	"loss": -0.6, "losses": -0.6, "drop": -0.5, "drops": -0.5, "fall": -0.5,
	"falls": -0.5, "fell": -0.5, "plunge": -0.8, "plunges": -0.8,
	"crash": -0.9, "crashes": -0.9, "decline": -0.5, "declines": -0.5,
	"weak": -0.5, "miss": -0.6, "misses": -0.6, "downgrade": -0.7,
	"downgraded": -0.7, "bearish": -0.8, "pessimistic": -0.6,
	"negative": -0.5, "layoff": -0.6, "layoffs": -0.6, "bankruptcy": -0.9,
	"recession": -0.8, "slump": -0.7, "slumps": -0.7, "warning": -0.5,
	"cuts": -0.5, "lawsuit": -0.6, "fraud": -0.9, "debt": -0.4,
	"underperform": -0.6, "selloff": -0.7, "tumble": -0.7, "tumbles": -0.7,
}

// negators flip the sign of the following sentiment token.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "without": true,
}

// ScoreText computes the polarity of a text in [-1,1]. Texts with no
// lexicon matches score zero.
func ScoreText(text string) float64 {
	tokens := tokenize(text)
	var sum float64
	var matched int
	negate := false
	for _, tok := range tokens {
		if negators[tok] {
			negate = true
			continue
		}
		if score, ok := lexicon[tok]; ok {
			if negate {
				score = -score
			}
			sum += score
			matched++
		}
		negate = false
	}
	if matched == 0 {
		return 0
	}
	score := sum / float64(matched)
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

// ScoreArticles averages per-article description polarities. Articles with
// empty descriptions do not contribute. Returns the average and the number
// of scored articles.
func ScoreArticles(articles []Article) (float64, int) {
	var sum float64
	var scored int
	for _, a := range articles {
		if strings.TrimSpace(a.Description) == "" {
			continue
		}
		sum += ScoreText(a.Description)
		scored++
	}
	if scored == 0 {
		return 0, 0
	}
	return sum / float64(scored), scored
}

// Classify maps an average polarity to the Finnish label and suggestion.
func Classify(avg float64) (label string, suggestion types.Suggestion) {
	switch {
	case avg > positiveBoundary:
		return "positiivinen", types.SuggestionBuy
	case avg < negativeBoundary:
		return "negatiivinen", types.SuggestionSell
	default:
		return "neutraali", types.SuggestionHold
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
