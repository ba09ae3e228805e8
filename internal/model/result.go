package model

import "time"

// BiasMetadata summarizes the bias detector's findings
type BiasMetadata struct {
	BiasTypesDetected          []string `json:"bias_types_detected"`
	PoliticalLeaning           Leaning  `json:"political_leaning,omitempty"`
	PoliticalLeaningConfidence float64  `json:"political_leaning_confidence"`
	OverallBiasLevel           float64  `json:"overall_bias_level"`
}

// EmotionMetadata summarizes the emotion analyzer's findings
type EmotionMetadata struct {
	EmotionTypesDetected       []string `json:"emotion_types_detected"`
	DominantEmotion            string   `json:"dominant_emotion,omitempty"`
	EmotionalManipulationScore float64  `json:"emotional_manipulation_score"`
	EmotionalIntensity         float64  `json:"emotional_intensity"`
}

// FactMetadata summarizes the fact checker's findings.
// OverallFactualAccuracy is nil when no claims were detected: the scorer
// must treat that as "no signal", not as perfect accuracy.
type FactMetadata struct {
	ClaimsDetected         int      `json:"claims_detected"`
	ClaimsVerified         int      `json:"claims_verified"`
	ClaimsRefuted          int      `json:"claims_refuted"`
	OverallFactualAccuracy *float64 `json:"overall_factual_accuracy"`
}

// PatternMetadata summarizes the linguistic pattern analyzer's findings
type PatternMetadata struct {
	PatternsDetected    []string `json:"patterns_detected"`
	ClickbaitLevel      float64  `json:"clickbait_level"`
	PropagandaLevel     float64  `json:"propaganda_level"`
	SensationalismLevel float64  `json:"sensationalism_level"`
	HedgingLevel        float64  `json:"hedging_level"`
}

// Metadata collects per-detector metadata, keyed the way the detectors ran.
// Each entry is independent; only the scorer reads across them.
type Metadata struct {
	Bias                  *BiasMetadata    `json:"bias,omitempty"`
	EmotionalManipulation *EmotionMetadata `json:"emotional_manipulation,omitempty"`
	FactChecking          *FactMetadata    `json:"fact_checking,omitempty"`
	LinguisticPatterns    *PatternMetadata `json:"linguistic_patterns,omitempty"`
}

// ScoreResult is the scorer's output
type ScoreResult struct {
	Score          int                   `json:"score"`      // 0-100
	Confidence     float64               `json:"confidence"` // 0-1
	Summary        string                `json:"summary"`
	IssuePenalties map[IssueType]float64 `json:"issue_penalties"`
}

// AnalysisResult is the complete output of one analysis run.
// Issues are concatenated in fixed detector order (bias, emotion,
// fact-check, patterns) so summaries are reproducible.
type AnalysisResult struct {
	Timestamp  time.Time `json:"timestamp"`
	TextLength int       `json:"text_length"`
	Issues     []Issue   `json:"issues"`
	Metadata   Metadata  `json:"metadata"`
	Sources    []Source  `json:"sources"`

	CredibilityScore int     `json:"credibility_score"`
	Confidence       float64 `json:"confidence"`
	Summary          string  `json:"summary"`

	// Set by the URL path only
	URL             string `json:"url,omitempty"`
	Title           string `json:"title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	Domain          string `json:"domain,omitempty"`

	// Set by the caller layer when the source could not be fetched;
	// the core is never invoked in that case and the score is forced to 0.
	Error string `json:"error,omitempty"`

	// Optional LLM narrative, generated after scoring.
	// Never feeds back into the score.
	LLM *LLMNote `json:"llm,omitempty"`
}

// LLMNote is an optional model-generated narrative about a finished
// analysis. It is clearly separated from the core result and never
// affects scoring.
type LLMNote struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	SummaryMD string `json:"summary_md"`
}
