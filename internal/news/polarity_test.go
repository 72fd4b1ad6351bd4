package news

import (
	"testing"

	"github.com/Danypoz1986/StockBot/internal/types"
)

func TestScoreTextDirections(t *testing.T) {
	if s := ScoreText("Nokia shares surge after strong quarterly profit"); s <= 0 {
		t.Errorf("Expected positive score, got %f", s)
	}
	if s := ScoreText("Markets plunge as recession fears deepen, heavy losses"); s >= 0 {
		t.Errorf("Expected negative score, got %f", s)
	}
	if s := ScoreText("The board meets on Thursday in Helsinki"); s != 0 {
		t.Errorf("Expected zero for text with no lexicon matches, got %f", s)
	}
	if s := ScoreText(""); s != 0 {
		t.Errorf("Expected zero for empty text, got %f", s)
	}
}

func TestScoreTextNegationFlipsSign(t *testing.T) {
	plain := ScoreText("profit growth")
	negated := ScoreText("no profit growth")
	if plain <= 0 {
		t.Fatalf("Expected positive baseline, got %f", plain)
	}
	if negated >= plain {
		t.Errorf("Expected negation to lower the score, got %f vs %f", negated, plain)
	}
}

func TestScoreTextClampedToUnitRange(t *testing.T) {
	for _, text := range []string{
		"surge surge surge soar rally bullish",
		"crash crash bankruptcy fraud plunge",
	} {
		s := ScoreText(text)
		if s < -1 || s > 1 {
			t.Errorf("Score out of range for %q: %f", text, s)
		}
	}
}

func TestScoreArticlesSkipsEmptyDescriptions(t *testing.T) {
	articles := []Article{
		{Title: "a", Description: "Shares surge on strong profit"},
		{Title: "b", Description: ""},
		{Title: "c", Description: "   "},
		{Title: "d", Description: "Heavy losses as markets plunge"},
	}

	_, scored := ScoreArticles(articles)
	if scored != 2 {
		t.Errorf("Expected 2 scored articles, got %d", scored)
	}

	avg, scored := ScoreArticles(nil)
	if avg != 0 || scored != 0 {
		t.Errorf("Expected zero result for no articles, got %f / %d", avg, scored)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		avg        float64
		label      string
		suggestion types.Suggestion
	}{
		{0.5, "positiivinen", types.SuggestionBuy},
		{0.11, "positiivinen", types.SuggestionBuy},
		{0.1, "neutraali", types.SuggestionHold}, // boundary is exclusive
		{0.0, "neutraali", types.SuggestionHold},
		{-0.1, "neutraali", types.SuggestionHold},
		{-0.11, "negatiivinen", types.SuggestionSell},
		{-0.8, "negatiivinen", types.SuggestionSell},
	}
	for _, tc := range cases {
		label, suggestion := Classify(tc.avg)
		if label != tc.label || suggestion != tc.suggestion {
			t.Errorf("Classify(%f) = %s/%s, expected %s/%s", tc.avg, label, suggestion, tc.label, tc.suggestion)
		}
	}
}
