package emotion

import (
	"strings"
	"testing"

	"github.com/ppiankov/trustlens/internal/model"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(model.TablesConfig{})
}

func TestDetect_TriggerCategories(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Detect("This terrifying and dangerous scheme is an outrageous betrayal.")

	var triggers []model.Issue
	for _, issue := range result.Issues {
		if issue.Type == model.IssueEmotionalTrigger {
			triggers = append(triggers, issue)
		}
	}
	if len(triggers) != 2 {
		t.Fatalf("Expected 2 trigger issues (fear, anger), got %d", len(triggers))
	}
	// Category order: fear first
	if !strings.Contains(triggers[0].Description, "fear") {
		t.Errorf("Expected fear issue first, got %q", triggers[0].Description)
	}
	if len(triggers[0].Spans) != 2 {
		t.Errorf("Expected 2 fear spans, got %d", len(triggers[0].Spans))
	}
	if triggers[0].Confidence != 0.75 {
		t.Errorf("Expected confidence 0.75, got %.2f", triggers[0].Confidence)
	}

	meta := result.Metadata
	if len(meta.EmotionTypesDetected) != 2 || meta.EmotionTypesDetected[0] != "fear" || meta.EmotionTypesDetected[1] != "anger" {
		t.Errorf("Unexpected emotion types: %v", meta.EmotionTypesDetected)
	}
	// Tie between fear and anger resolves to the earlier category
	if meta.DominantEmotion != "fear" {
		t.Errorf("Expected dominant emotion fear, got %q", meta.DominantEmotion)
	}
}

func TestDetect_Urgency(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Detect("Act now, this limited time offer ends soon.")

	var urgency *model.Issue
	for i := range result.Issues {
		if result.Issues[i].Type == model.IssueUrgency {
			urgency = &result.Issues[i]
		}
	}
	if urgency == nil {
		t.Fatal("Expected an urgency_manipulation issue")
	}
	if urgency.Confidence != 0.8 {
		t.Errorf("Expected confidence 0.8, got %.2f", urgency.Confidence)
	}
	if len(urgency.Spans) < 3 {
		t.Errorf("Expected at least 3 urgency spans, got %d", len(urgency.Spans))
	}
}

func TestDetect_FearPatterns(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Detect("Warning: the hidden dangers in your kitchen might be killing you.")

	var fear *model.Issue
	for i := range result.Issues {
		if result.Issues[i].Type == model.IssueFear {
			fear = &result.Issues[i]
		}
	}
	if fear == nil {
		t.Fatal("Expected a fear_manipulation issue")
	}
	if fear.Confidence != 0.85 {
		t.Errorf("Expected confidence 0.85, got %.2f", fear.Confidence)
	}

	found := false
	for _, et := range result.Metadata.EmotionTypesDetected {
		if et == "fear" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected fear in emotion types, got %v", result.Metadata.EmotionTypesDetected)
	}
}

func TestDetect_Typography(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Detect("This is ABSOLUTELY IMPORTANT news!!!")

	var typography []model.Issue
	for _, issue := range result.Issues {
		if issue.Type == model.IssueTypography {
			typography = append(typography, issue)
		}
	}
	if len(typography) != 2 {
		t.Fatalf("Expected 2 typography issues (caps, exclamations), got %d", len(typography))
	}
	if len(typography[0].Spans) != 2 {
		t.Errorf("Expected 2 all-caps spans, got %d", len(typography[0].Spans))
	}
	if typography[1].Confidence != 0.75 {
		t.Errorf("Expected exclamation confidence 0.75, got %.2f", typography[1].Confidence)
	}
}

func TestDetect_AcronymsNotShouting(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Detect("The FBI and the NASA team met.")

	for _, issue := range result.Issues {
		if issue.Type == model.IssueTypography {
			t.Errorf("Expected short acronyms to be ignored, got %+v", issue)
		}
	}
}

func TestDetect_ScoresBounded(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Detect("Terrifying! Horrific! Deadly! Alarming! Shocking! Outrageous!")

	meta := result.Metadata
	if meta.EmotionalManipulationScore < 0 || meta.EmotionalManipulationScore > 1 {
		t.Errorf("Manipulation score out of range: %.2f", meta.EmotionalManipulationScore)
	}
	if meta.EmotionalIntensity < 0 || meta.EmotionalIntensity > 1 {
		t.Errorf("Intensity out of range: %.2f", meta.EmotionalIntensity)
	}
	if meta.EmotionalManipulationScore == 0 {
		t.Error("Expected a nonzero manipulation score for dense trigger text")
	}
}

func TestDetect_EmptyText(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Detect("")

	if len(result.Issues) != 0 {
		t.Errorf("Expected no issues, got %d", len(result.Issues))
	}
	if result.Metadata.EmotionalManipulationScore != 0 {
		t.Errorf("Expected score 0, got %.2f", result.Metadata.EmotionalManipulationScore)
	}
	if result.Metadata.EmotionalIntensity != 0 {
		t.Errorf("Expected intensity 0, got %.2f", result.Metadata.EmotionalIntensity)
	}
}

func TestExcessiveSentences(t *testing.T) {
	a := newTestAnalyzer()

	text := "This terrifying, dangerous, and deadly crisis is heartbreaking. The committee met on Tuesday."
	excessive := a.ExcessiveSentences(text)

	if len(excessive) != 1 {
		t.Fatalf("Expected 1 excessive sentence, got %d", len(excessive))
	}
	if !strings.Contains(excessive[0], "terrifying") {
		t.Errorf("Unexpected sentence: %q", excessive[0])
	}
}
