package quiz

import (
	"fmt"

	"quizkit/internal/question"
)

// Tier is the qualitative feedback category of a score.
type Tier string

const (
	// TierPerfect is every question correct.
	TierPerfect Tier = "perfect"
	// TierExcellent is at least 80 percent correct.
	TierExcellent Tier = "excellent"
	// TierGood is at least 60 percent correct.
	TierGood Tier = "good"
	// TierWeak is at least 40 percent correct.
	TierWeak Tier = "weak"
	// TierPoor is below 40 percent, or a quiz with nothing to score.
	TierPoor Tier = "poor"
)

var defaultMessages = map[Tier]string{
	TierPerfect:   "Perfect score! Outstanding work.",
	TierExcellent: "Excellent! You know your material.",
	TierGood:      "Good job! A little more study and you'll ace it.",
	TierWeak:      "Not bad, but there is room to improve.",
	TierPoor:      "Keep practicing and try again.",
}

// TierFor maps a score to its tier, checking thresholds from the top down. A zero total is poor.
func TierFor(correct, total int) Tier {
	if total <= 0 {
		return TierPoor
	}
	// Integer comparisons keep the boundaries exact: correct/total >= p/100 <=> correct*100 >= p*total.
	switch {
	case correct >= total:
		return TierPerfect
	case correct*100 >= 80*total:
		return TierExcellent
	case correct*100 >= 60*total:
		return TierGood
	case correct*100 >= 40*total:
		return TierWeak
	default:
		return TierPoor
	}
}

// Message returns the feedback line for the tier, preferring the bank's own wording.
func (tier Tier) Message(feedback question.Feedback) string {
	var custom string
	switch tier {
	case TierPerfect:
		custom = feedback.Perfect
	case TierExcellent:
		custom = feedback.Excellent
	case TierGood:
		custom = feedback.Good
	case TierWeak:
		custom = feedback.Weak
	case TierPoor:
		custom = feedback.Poor
	}
	if custom != "" {
		return custom
	}
	return defaultMessages[tier]
}

// ScoreLine formats the score display text.
func (result ScoreResult) ScoreLine() string {
	return fmt.Sprintf("Your Score: %d / %d", result.CorrectCount, result.Total)
}
