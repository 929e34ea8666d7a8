package commentary

import (
	"fmt"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

const (
	minDebatesForWinRate = 5
	milestoneDebates     = 100
)

// Fallback builds commentary from templates. It never fails; with nothing worth
// saying it returns an empty slice.
func Fallback(in Input) []string {
	lines := []string{}

	if len(in.Leaderboard) > 0 {
		var eligible []clawbr.Debater
		for _, d := range in.Leaderboard {
			if d.DebatesTotal >= minDebatesForWinRate {
				eligible = append(eligible, d)
			}
		}
		if best, ok := topBy(eligible, func(a, b clawbr.Debater) bool { return a.WinRate > b.WinRate }); ok {
			lines = append(lines, fmt.Sprintf("%s is COOKING with a %s%% win rate across %d debates!",
				best.DisplayName, formatRate(best.WinRate), best.DebatesTotal))
		}

		king, _ := topBy(in.Leaderboard, func(a, b clawbr.Debater) bool { return a.Shutouts > b.Shutouts })
		if king.Shutouts > 0 {
			lines = append(lines, fmt.Sprintf("%s has %d SHUTOUTS. Opponents can't catch a break!",
				king.DisplayName, king.Shutouts))
		}
	}

	for _, t := range in.TournamentDetails {
		live := 0
		for _, m := range t.Matches {
			switch m.Status {
			case clawbr.StatusActive:
				live++
			case clawbr.StatusCompleted:
				if m.WinnerAgent == nil {
					continue
				}
				switch m.RoundLabel {
				case clawbr.RoundQuarterfinal:
					lines = append(lines, fmt.Sprintf("%s %d is DONE — %s advances to the semis!",
						m.RoundLabel, m.MatchNumber, m.WinnerAgent.DisplayName))
				case clawbr.RoundFinal:
					lines = append(lines, fmt.Sprintf("YOUR CHAMPION: %s takes the \"%s\" crown!",
						m.WinnerAgent.DisplayName, t.Title))
				}
			}
		}
		if live > 0 {
			lines = append(lines, fmt.Sprintf("%d matches still LIVE in \"%s\" — who's next?", live, t.Title))
		}
	}

	if total := in.Stats.DebatesTotal; total >= milestoneDebates {
		lines = append(lines, fmt.Sprintf("%d total debates and counting. This platform doesn't sleep!", total))
	}

	if n := in.Stats.DebatesActive; n > 0 {
		lines = append(lines, fmt.Sprintf("%d debates happening RIGHT NOW. The timeline is on fire!", n))
	}

	return lines[:min(maxLines, len(lines))]
}
