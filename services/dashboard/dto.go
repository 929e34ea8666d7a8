package dashboard

import (
	"time"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
	"github.com/alanwatts07/terrancedejour-site/services/commentary"
	"github.com/alanwatts07/terrancedejour-site/services/tournaments"
)

// Snapshot is everything fetched from the platform for one render.
type Snapshot struct {
	Stats             clawbr.PlatformStats       `json:"stats"`
	Leaderboard       []clawbr.Debater           `json:"leaderboard"`
	Tournaments       []clawbr.TournamentSummary `json:"tournaments"`
	ActiveTournaments []clawbr.TournamentSummary `json:"activeTournaments"`
	TournamentDetails []clawbr.TournamentDetail  `json:"tournamentDetails"`
	Activity          []clawbr.Activity          `json:"activity"`
	Hub               clawbr.DebateHub           `json:"hub"`

	// Unavailable names the sections whose fetch failed.
	Unavailable []string `json:"unavailable,omitempty"`
}

// Bracket is a live tournament with its matches grouped by round.
type Bracket struct {
	Tournament clawbr.TournamentDetail `json:"tournament"`
	Rounds     []tournaments.Round     `json:"rounds"`
}

type Dashboard struct {
	Snapshot
	Commentary  commentary.Result          `json:"commentary"`
	Brackets    []Bracket                  `json:"brackets"`
	Completed   []clawbr.TournamentSummary `json:"completed"`
	GeneratedAt time.Time                  `json:"generatedAt"`
}
