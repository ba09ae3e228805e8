package model

// Span is a half-open byte range [Start, End) into the analyzed text
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the span length in bytes
func (s Span) Len() int {
	return s.End - s.Start
}

// IssueType classifies a detected credibility problem
type IssueType string

const (
	// Bias issues
	IssueLoadedLanguage IssueType = "loaded_language"
	IssueGeneralization IssueType = "generalization"
	IssueExaggeration   IssueType = "exaggeration"
	IssueSubjective     IssueType = "subjective_language"
	IssuePoliticalBias  IssueType = "political_bias"

	// Emotional manipulation issues
	IssueEmotionalTrigger IssueType = "emotional_trigger"
	IssueUrgency          IssueType = "urgency_manipulation"
	IssueFear             IssueType = "fear_manipulation"
	IssueTypography       IssueType = "typography_manipulation"

	// Fact-checking issues
	IssueFalseClaim        IssueType = "false_claim"
	IssueExternalFactCheck IssueType = "external_fact_check"
	IssueUncitedStatistic  IssueType = "uncited_statistic"

	// Linguistic pattern issues
	IssueClickbait      IssueType = "clickbait"
	IssuePropaganda     IssueType = "propaganda_technique"
	IssueSensationalism IssueType = "sensationalist_language"
	IssueHedging        IssueType = "excessive_hedging"
	IssuePassiveVoice   IssueType = "excessive_passive_voice"
)

// Issue represents a single detected problem. Issues are immutable once
// created; detectors hand ownership to the orchestrator on merge.
type Issue struct {
	Type        IssueType `json:"type"`
	Description string    `json:"description"`
	Confidence  float64   `json:"confidence"` // in [0,1]
	Spans       []Span    `json:"spans"`
}

// Source records how a factual claim was resolved
type Source struct {
	Claim         string `json:"claim"`
	Verified      bool   `json:"verified"`
	FactCheckURL  string `json:"fact_check_url"`
	PublishedDate string `json:"published_date"`
}

// Leaning is a categorical estimate of political orientation
type Leaning string

const (
	LeaningLeft        Leaning = "left"
	LeaningRight       Leaning = "right"
	LeaningCenterLeft  Leaning = "center-left"
	LeaningCenterRight Leaning = "center-right"
	LeaningCenter      Leaning = "center"
	LeaningSlightLeft  Leaning = "slight-left"
	LeaningSlightRight Leaning = "slight-right"
	LeaningNeutral     Leaning = "neutral"
)
