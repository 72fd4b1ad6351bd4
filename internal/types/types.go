package types

// Suggestion is a coarse market recommendation. Finnish wire values are kept
// for compatibility with previously persisted prediction files.
type Suggestion string

const (
	SuggestionBuy  Suggestion = "Osta"
	SuggestionSell Suggestion = "Myy"
	SuggestionHold Suggestion = "Pidä"
)

// Direction of a realized price move between two runs.
type Direction string

const (
	DirectionRose    Direction = "Rose"
	DirectionFell    Direction = "Fell"
	DirectionStable  Direction = "Stable"
	DirectionUnknown Direction = "Unknown"
)

type Candle struct {
	Ts                          int64
	Open, High, Low, Close, Vol float64
}

// Snapshot is the persisted per-ticker unit of state: the suggestion recorded
// on the previous run and the closing price it was based on.
type Snapshot struct {
	Suggestion Suggestion `json:"suggestion"`
	Close      float64    `json:"close"`
}

// SnapshotSet maps ticker symbols to their last recorded snapshot.
type SnapshotSet map[string]Snapshot

// State is the whole persisted unit, replaced atomically at the end of a run.
// LastSentDate (YYYY-MM-DD) backs the once-per-day send gate across restarts.
type State struct {
	Predictions  SnapshotSet `json:"predictions"`
	LastSentDate string      `json:"last_sent_date,omitempty"`
}

// Company is one entry of the configured registry.
type Company struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
}

// Sentiment is the global news-derived signal for a single run.
type Sentiment struct {
	AveragePolarity float64    `json:"average_polarity"`
	Label           string     `json:"label"` // positiivinen, negatiivinen, neutraali
	Suggestion      Suggestion `json:"suggestion"`
	ArticleCount    int        `json:"article_count"`
}

// Verdict is the per-ticker outcome of comparing the previous snapshot
// against the freshly fetched close. Ephemeral, never persisted.
type Verdict struct {
	Ticker      string    `json:"ticker"`
	DisplayName string    `json:"display_name"`
	Correct     bool      `json:"correct"`
	Direction   Direction `json:"direction"`
	Detail      string    `json:"detail"`
}

// ThresholdAlert describes a price move past the configured percentage
// threshold, dispatched immediately and independently of the summary report.
type ThresholdAlert struct {
	Ticker      string  `json:"ticker"`
	DisplayName string  `json:"display_name"`
	Direction   string  `json:"direction"` // noussut/laskenut merkittävästi
	PrevClose   float64 `json:"prev_close"`
	CurClose    float64 `json:"cur_close"`
	PctChange   float64 `json:"pct_change"`
}

// RunResult summarizes one orchestrated cycle for logging and auditing.
type RunResult struct {
	Compared      int  `json:"compared"`
	Recorded      int  `json:"recorded"`
	FailedTickers int  `json:"failed_tickers"`
	AlertsSent    int  `json:"alerts_sent"`
	SummarySent   bool `json:"summary_sent"`
	StateSaved    bool `json:"state_saved"`
}
