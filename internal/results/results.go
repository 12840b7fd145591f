// Package results derives the end-of-quiz summary from a final score.
package results

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScore is returned when score and total cannot form a summary.
var ErrInvalidScore = errors.New("invalid score")

// AppName appears in the share text.
const AppName = "Quiz Master"

// Tier is the performance band used for the headline message.
type Tier int

const (
	TierKeepPracticing Tier = iota // Below 50%
	TierGoodEffort                 // 50-69%
	TierGreatJob                   // 70-89%
	TierOutstanding                // 90% and up
)

// TierFor returns the message band for a percentage. Bands are checked
// from the top and include their lower bound.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 90:
		return TierOutstanding
	case percentage >= 70:
		return TierGreatJob
	case percentage >= 50:
		return TierGoodEffort
	default:
		return TierKeepPracticing
	}
}

// Message returns the headline text for the tier.
func (t Tier) Message() string {
	switch t {
	case TierOutstanding:
		return "Outstanding"
	case TierGreatJob:
		return "Great Job"
	case TierGoodEffort:
		return "Good Effort"
	default:
		return "Keep Practicing"
	}
}

// Emoji returns the decoration shown next to the headline.
func (t Tier) Emoji() string {
	switch t {
	case TierOutstanding:
		return "🎉"
	case TierGreatJob:
		return "👏"
	case TierGoodEffort:
		return "👍"
	default:
		return "💪"
	}
}

// Tone is the colour emphasis of the summary. It has three bands and is
// banded separately from Tier.
type Tone int

const (
	ToneDestructive Tone = iota // Below 50%
	ToneAccent                  // 50-69%
	ToneSuccess                 // 70% and up
)

// ToneFor returns the colour band for a percentage.
func ToneFor(percentage int) Tone {
	switch {
	case percentage >= 70:
		return ToneSuccess
	case percentage >= 50:
		return ToneAccent
	default:
		return ToneDestructive
	}
}

func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneAccent:
		return "accent"
	default:
		return "destructive"
	}
}

// Summary is the derived result of a finished quiz.
type Summary struct {
	Score      int
	Total      int
	Percentage int
	Tier       Tier
	Tone       Tone
}

// Percentage returns round(100*score/total), rounding half away from zero.
// It returns 0 when total is not positive.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}

// Summarize builds the summary for score out of total.
func Summarize(score, total int) (Summary, error) {
	if total <= 0 {
		return Summary{}, fmt.Errorf("%w: total %d must be positive", ErrInvalidScore, total)
	}
	if score < 0 || score > total {
		return Summary{}, fmt.Errorf("%w: score %d outside 0..%d", ErrInvalidScore, score, total)
	}
	pct := Percentage(score, total)
	return Summary{
		Score:      score,
		Total:      total,
		Percentage: pct,
		Tier:       TierFor(pct),
		Tone:       ToneFor(pct),
	}, nil
}

// Message returns the tier headline.
func (s Summary) Message() string {
	return s.Tier.Message()
}

// ShareText returns the text handed to the share target.
func (s Summary) ShareText() string {
	return fmt.Sprintf("I scored %d/%d (%d%%) on %s!", s.Score, s.Total, s.Percentage, AppName)
}
