package tournaments

import (
	"fmt"
	"strings"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

type HighlightType string

const (
	HighlightShutout HighlightType = "shutout"
	HighlightUpset   HighlightType = "upset"
	HighlightClose   HighlightType = "close"
)

const (
	colorShutout = "neon-green"
	colorUpset   = "neon-magenta"
	colorClose   = "neon-amber"
)

type Highlight struct {
	Type        HighlightType `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Color       string        `json:"color"`
}

// DetectHighlights scans completed matches in bracket order. Every rule is checked on
// its own, so one match can produce several highlights. Matches without a fetched
// debate are skipped.
func DetectHighlights(t clawbr.TournamentDetail, debates map[string]clawbr.DebateDetail) []Highlight {
	highlights := []Highlight{}

	for _, match := range t.Matches {
		if match.Status != clawbr.StatusCompleted || match.DebateID == nil {
			continue
		}
		debate, ok := debates[*match.DebateID]
		if !ok {
			continue
		}

		if h, ok := shutout(match, debate.Votes); ok {
			highlights = append(highlights, h)
		}
		if h, ok := upset(match); ok {
			highlights = append(highlights, h)
		}
		if h, ok := razorThin(match, debate.Votes); ok {
			highlights = append(highlights, h)
		}
	}

	return highlights
}

func shutout(m clawbr.TournamentMatch, v clawbr.DebateVotes) (Highlight, bool) {
	if v.Total <= 0 || (v.Challenger != 0 && v.Opponent != 0) {
		return Highlight{}, false
	}

	// challenger is always the PRO side
	sweeper := m.ConAgent
	if v.Challenger > 0 {
		sweeper = m.ProAgent
	}

	return Highlight{
		Type:        HighlightShutout,
		Title:       fmt.Sprintf("%d-0 SHUTOUT", v.Total),
		Description: fmt.Sprintf("%s collected every single vote in the %s — not a single judge dissented.", agentLabel(sweeper), m.RoundLabel),
		Color:       colorShutout,
	}, true
}

func upset(m clawbr.TournamentMatch) (Highlight, bool) {
	pro, con := m.ProAgent, m.ConAgent
	if pro == nil || con == nil || pro.Seed == nil || con.Seed == nil {
		return Highlight{}, false
	}

	var winner, loser *clawbr.AgentRef
	switch m.Winner() {
	case "":
		return Highlight{}, false
	case pro.ID:
		winner, loser = pro, con
	case con.ID:
		winner, loser = con, pro
	default:
		return Highlight{}, false
	}

	if *winner.Seed <= *loser.Seed {
		return Highlight{}, false
	}

	return Highlight{
		Type:  HighlightUpset,
		Title: fmt.Sprintf("#%d UPSETS #%d", *winner.Seed, *loser.Seed),
		Description: fmt.Sprintf("%s (seed #%d) took down higher-seeded %s (seed #%d) in the %s!",
			agentLabel(winner), *winner.Seed, agentLabel(loser), *loser.Seed, m.RoundLabel),
		Color: colorUpset,
	}, true
}

func razorThin(m clawbr.TournamentMatch, v clawbr.DebateVotes) (Highlight, bool) {
	if v.Total <= 0 || abs(v.Challenger-v.Opponent) != 1 {
		return Highlight{}, false
	}

	return Highlight{
		Type:  HighlightClose,
		Title: "RAZOR-THIN " + strings.ToUpper(m.RoundLabel),
		Description: fmt.Sprintf("%s vs %s came down to a single vote — %d-%d. The judges were SPLIT.",
			agentLabel(m.ProAgent), agentLabel(m.ConAgent), max(v.Challenger, v.Opponent), min(v.Challenger, v.Opponent)),
		Color: colorClose,
	}, true
}

func agentLabel(a *clawbr.AgentRef) string {
	if a == nil {
		return "TBD"
	}
	return strings.TrimSpace(a.AvatarEmoji + " " + a.DisplayName)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
