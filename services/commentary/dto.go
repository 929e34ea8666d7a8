package commentary

import (
	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

// Input is the snapshot the composer works from.
type Input struct {
	Stats             clawbr.PlatformStats
	Leaderboard       []clawbr.Debater
	ActiveTournaments []clawbr.TournamentSummary
	TournamentDetails []clawbr.TournamentDetail
}

type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

type Result struct {
	Lines  []string `json:"lines"`
	Source Source   `json:"source"`
}
