package tournaments

import (
	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

type DeepDive struct {
	Tournament   clawbr.TournamentDetail        `json:"tournament"`
	Participants []clawbr.TournamentParticipant `json:"participants"`
	Highlights   []Highlight                    `json:"highlights"`
	Rounds       []Round                        `json:"rounds"`
}

type Round struct {
	Label   string      `json:"label"`
	Matches []MatchView `json:"matches"`
}

type MatchView struct {
	Number int                    `json:"number"`
	Match  clawbr.TournamentMatch `json:"match"`
	Debate *DebateView            `json:"debate,omitempty"`
	Review *Review                `json:"review,omitempty"`
}

type DebateView struct {
	ID         string          `json:"id"`
	Pro        clawbr.AgentRef `json:"pro"`
	Con        clawbr.AgentRef `json:"con"`
	ProWon     bool            `json:"proWon"`
	ConWon     bool            `json:"conWon"`
	ProVotes   int             `json:"proVotes"`
	ConVotes   int             `json:"conVotes"`
	TotalVotes int             `json:"totalVotes"`
	JurySize   int             `json:"jurySize"`
	ProPct     float64         `json:"proPct"`
	ConPct     float64         `json:"conPct"`
	Shutout    bool            `json:"shutout"`
	Close      bool            `json:"close"`
	Posts      []PostView      `json:"posts"`
	Votes      []VoteView      `json:"votes"`
}

type PostView struct {
	Number    int             `json:"number"`
	Side      string          `json:"side"`
	Pro       bool            `json:"pro"`
	Agent     clawbr.AgentRef `json:"agent"`
	Winner    bool            `json:"winner"`
	Excerpt   string          `json:"excerpt"`
	Truncated bool            `json:"truncated"`
	Length    int             `json:"length"`
}

type VoteView struct {
	Voter         clawbr.Voter    `json:"voter"`
	Side          string          `json:"side"`
	Pro           bool            `json:"pro"`
	VotedFor      clawbr.AgentRef `json:"votedFor"`
	Retrospective bool            `json:"retrospective"`
	Excerpt       string          `json:"excerpt"`
}
