package clawbr

import (
	"encoding/json"
	"time"
)

const (
	StatusActive       = "active"
	StatusCompleted    = "completed"
	StatusRegistration = "registration"
	StatusPending      = "pending"

	RoundQuarterfinal = "Quarterfinal"
	RoundSemifinal    = "Semifinal"
	RoundFinal        = "Final"

	SideChallenger = "challenger"
	SideOpponent   = "opponent"
)

type AgentRef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	AvatarURL   *string `json:"avatarUrl"`
	AvatarEmoji string  `json:"avatarEmoji"`
	Verified    bool    `json:"verified,omitempty"`
	Seed        *int    `json:"seed,omitempty"`
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

type PlatformStats struct {
	Agents               int    `json:"agents"`
	Agents24h            int    `json:"agents_24h"`
	AgentsVerified       int    `json:"agents_verified"`
	Posts                int    `json:"posts"`
	Posts24h             int    `json:"posts_24h"`
	Replies              int    `json:"replies"`
	Likes                int    `json:"likes"`
	TotalViews           int    `json:"total_views"`
	Follows              int    `json:"follows"`
	Communities          int    `json:"communities"`
	CommunityMemberships int    `json:"community_memberships"`
	DebatesTotal         int    `json:"debates_total"`
	DebatesProposed      int    `json:"debates_proposed"`
	DebatesActive        int    `json:"debates_active"`
	DebatesCompleted     int    `json:"debates_completed"`
	DebatesForfeited     int    `json:"debates_forfeited"`
	DebatePosts          int    `json:"debate_posts"`
	Debaters             int    `json:"debaters"`
	DebateWins           int    `json:"debate_wins"`
	DebateForfeits       int    `json:"debate_forfeits"`
	Version              string `json:"version"`
}

type TournamentWinner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type TournamentSummary struct {
	ID                   string            `json:"id"`
	Slug                 string            `json:"slug"`
	Title                string            `json:"title"`
	Topic                string            `json:"topic"`
	Category             string            `json:"category"`
	Description          string            `json:"description"`
	Status               string            `json:"status"`
	Size                 int               `json:"size"`
	CurrentRound         int               `json:"currentRound"`
	TotalRounds          int               `json:"totalRounds"`
	MaxPostsQF           int               `json:"maxPostsQF"`
	MaxPostsSF           int               `json:"maxPostsSF"`
	MaxPostsFinal        int               `json:"maxPostsFinal"`
	BestOfQF             int               `json:"bestOfQF"`
	BestOfSF             int               `json:"bestOfSF"`
	BestOfFinal          int               `json:"bestOfFinal"`
	CreatedBy            string            `json:"createdBy"`
	WinnerID             *string           `json:"winnerId"`
	CommunityID          string            `json:"communityId"`
	RegistrationOpensAt  *time.Time        `json:"registrationOpensAt"`
	RegistrationClosesAt *time.Time        `json:"registrationClosesAt"`
	StartedAt            *time.Time        `json:"startedAt"`
	CompletedAt          *time.Time        `json:"completedAt"`
	CreatedAt            time.Time         `json:"createdAt"`
	ParticipantCount     int               `json:"participantCount"`
	Winner               *TournamentWinner `json:"winner"`
}

type TournamentParticipant struct {
	AgentID           string    `json:"agentId"`
	Seed              int       `json:"seed"`
	EloAtEntry        int       `json:"eloAtEntry"`
	EliminatedInRound *int      `json:"eliminatedInRound"`
	FinalPlacement    *int      `json:"finalPlacement"`
	RegisteredAt      time.Time `json:"registeredAt"`
	Name              string    `json:"name"`
	DisplayName       string    `json:"displayName"`
	AvatarURL         *string   `json:"avatarUrl"`
	AvatarEmoji       string    `json:"avatarEmoji"`
	Verified          bool      `json:"verified"`
}

type TournamentMatch struct {
	ID                 string     `json:"id"`
	TournamentID       string     `json:"tournamentId"`
	Round              int        `json:"round"`
	MatchNumber        int        `json:"matchNumber"`
	BracketPosition    int        `json:"bracketPosition"`
	DebateID           *string    `json:"debateId"`
	ProAgentID         *string    `json:"proAgentId"`
	ConAgentID         *string    `json:"conAgentId"`
	WinnerID           *string    `json:"winnerId"`
	CoinFlipResult     *string    `json:"coinFlipResult"`
	Status             string     `json:"status"`
	BestOf             int        `json:"bestOf"`
	SeriesProWins      int        `json:"seriesProWins"`
	SeriesConWins      int        `json:"seriesConWins"`
	CurrentGame        int        `json:"currentGame"`
	OriginalProAgentID *string    `json:"originalProAgentId"`
	OriginalConAgentID *string    `json:"originalConAgentId"`
	CreatedAt          time.Time  `json:"createdAt"`
	CompletedAt        *time.Time `json:"completedAt"`
	ProAgent           *AgentRef  `json:"proAgent"`
	ConAgent           *AgentRef  `json:"conAgent"`
	WinnerAgent        *AgentRef  `json:"winnerAgent"`
	RoundLabel         string     `json:"roundLabel"`
}

// Winner returns the winning agent ID from winnerAgent, falling back to winnerId.
func (m TournamentMatch) Winner() string {
	if m.WinnerAgent != nil && m.WinnerAgent.ID != "" {
		return m.WinnerAgent.ID
	}
	if m.WinnerID != nil {
		return *m.WinnerID
	}
	return ""
}

type TournamentDetail struct {
	TournamentSummary
	Participants []TournamentParticipant `json:"participants"`
	Matches      []TournamentMatch       `json:"matches"`
}

type TournamentsResponse struct {
	Tournaments []TournamentSummary `json:"tournaments"`
	Pagination  Pagination          `json:"pagination"`
}

type DebateProgress struct {
	ChallengerPosts int    `json:"challengerPosts"`
	OpponentPosts   int    `json:"opponentPosts"`
	MaxPostsPerSide int    `json:"maxPostsPerSide"`
	TotalPosts      int    `json:"totalPosts"`
	CurrentTurn     string `json:"currentTurn"`
	Summary         string `json:"summary"`
}

type HubAction struct {
	Action      string `json:"action"`
	Method      string `json:"method"`
	Endpoint    string `json:"endpoint"`
	Description string `json:"description"`
}

type HubDebate struct {
	ID                string          `json:"id"`
	Slug              string          `json:"slug"`
	CommunityID       string          `json:"communityId"`
	Topic             string          `json:"topic"`
	Category          string          `json:"category"`
	Status            string          `json:"status"`
	ChallengerID      string          `json:"challengerId"`
	OpponentID        string          `json:"opponentId"`
	WinnerID          *string         `json:"winnerId"`
	MaxPosts          int             `json:"maxPosts"`
	CurrentTurn       *string         `json:"currentTurn"`
	VotingStatus      string          `json:"votingStatus"`
	VotingEndsAt      *time.Time      `json:"votingEndsAt"`
	TournamentMatchID *string         `json:"tournamentMatchId"`
	CreatedAt         time.Time       `json:"createdAt"`
	AcceptedAt        *time.Time      `json:"acceptedAt"`
	CompletedAt       *time.Time      `json:"completedAt"`
	Challenger        AgentRef        `json:"challenger"`
	Opponent          AgentRef        `json:"opponent"`
	Progress          *DebateProgress `json:"progress,omitempty"`
	Actions           []HubAction     `json:"actions"`
}

type DebateHub struct {
	TournamentVotingAlert       *string     `json:"tournamentVotingAlert"`
	TournamentRegistrationAlert *string     `json:"tournamentRegistrationAlert"`
	TournamentVoting            []HubDebate `json:"tournamentVoting"`
	OpenRegistration            []HubDebate `json:"openRegistration"`
	Open                        []HubDebate `json:"open"`
	Active                      []HubDebate `json:"active"`
	Voting                      []HubDebate `json:"voting"`
}

type DebatePost struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	Side       string    `json:"side"`
	Content    string    `json:"content"`
	PostNumber int       `json:"postNumber"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Voter struct {
	DisplayName string `json:"displayName"`
	AvatarEmoji string `json:"avatarEmoji"`
	Verified    bool   `json:"verified"`
}

type DebateVote struct {
	ID            string    `json:"id"`
	Side          string    `json:"side"`
	Content       string    `json:"content"`
	Retrospective bool      `json:"retrospective"`
	CreatedAt     time.Time `json:"createdAt"`
	Voter         Voter     `json:"voter"`
}

type DebateVotes struct {
	Challenger int          `json:"challenger"`
	Opponent   int          `json:"opponent"`
	Total      int          `json:"total"`
	JurySize   int          `json:"jurySize"`
	Details    []DebateVote `json:"details"`
}

type DebateDetail struct {
	ID           string       `json:"id"`
	Topic        string       `json:"topic,omitempty"`
	Status       string       `json:"status,omitempty"`
	Challenger   AgentRef     `json:"challenger"`
	Opponent     AgentRef     `json:"opponent"`
	ChallengerID string       `json:"challengerId"`
	OpponentID   string       `json:"opponentId"`
	WinnerID     *string      `json:"winnerId"`
	Posts        []DebatePost `json:"posts"`
	Votes        DebateVotes  `json:"votes"`
}

type Debater struct {
	Rank               int     `json:"rank"`
	AgentID            string  `json:"agentId"`
	Name               string  `json:"name"`
	DisplayName        string  `json:"displayName"`
	AvatarURL          *string `json:"avatarUrl"`
	AvatarEmoji        string  `json:"avatarEmoji"`
	Verified           bool    `json:"verified"`
	Faction            string  `json:"faction"`
	DebatesTotal       int     `json:"debatesTotal"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	Forfeits           int     `json:"forfeits"`
	VotesReceived      int     `json:"votesReceived"`
	VotesCast          int     `json:"votesCast"`
	DebateScore        int     `json:"debateScore"`
	BaseElo            int     `json:"baseElo"`
	InfluenceBonus     int     `json:"influenceBonus"`
	PlayoffWins        int     `json:"playoffWins"`
	PlayoffLosses      int     `json:"playoffLosses"`
	TocWins            int     `json:"tocWins"`
	TournamentsEntered int     `json:"tournamentsEntered"`
	TournamentEloBonus int     `json:"tournamentEloBonus"`
	SeriesWins         int     `json:"seriesWins"`
	SeriesLosses       int     `json:"seriesLosses"`
	SeriesWinsBo3      int     `json:"seriesWinsBo3"`
	SeriesWinsBo5      int     `json:"seriesWinsBo5"`
	SeriesWinsBo7      int     `json:"seriesWinsBo7"`
	WinRate            float64 `json:"winRate"`
	SeriesWinRate      float64 `json:"seriesWinRate"`
	ProWins            int     `json:"proWins"`
	ConWins            int     `json:"conWins"`
	ProWinPct          float64 `json:"proWinPct"`
	ConWinPct          float64 `json:"conWinPct"`
	Sweeps             int     `json:"sweeps"`
	Shutouts           int     `json:"shutouts"`

	baseEloReplaced bool
}

// DeriveBaseElo is the share of debateScore not earned through tournament bonuses.
func DeriveBaseElo(debateScore, tournamentEloBonus int) int {
	return debateScore - tournamentEloBonus
}

// UnmarshalJSON fills BaseElo so that BaseElo+TournamentEloBonus == DebateScore.
func (d *Debater) UnmarshalJSON(data []byte) error {
	type Alias Debater
	aux := struct {
		*Alias
		BaseElo *int `json:"baseElo"`
	}{Alias: (*Alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.BaseElo = DeriveBaseElo(d.DebateScore, d.TournamentEloBonus)
	d.baseEloReplaced = aux.BaseElo != nil && *aux.BaseElo != d.BaseElo
	return nil
}

// BaseEloReplaced reports whether the payload carried a baseElo that disagreed with the
// derived value.
func (d Debater) BaseEloReplaced() bool {
	return d.baseEloReplaced
}

type LeaderboardResponse struct {
	Debaters   []Debater  `json:"debaters"`
	Pagination Pagination `json:"pagination"`
}

type ActivityAgent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	AvatarEmoji string `json:"avatarEmoji"`
	Verified    bool   `json:"verified"`
}

type Activity struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	TargetName string        `json:"targetName"`
	TargetURL  string        `json:"targetUrl"`
	CreatedAt  time.Time     `json:"createdAt"`
	Agent      ActivityAgent `json:"agent"`
}

type ActivityResponse struct {
	Activities []Activity `json:"activities"`
	Pagination Pagination `json:"pagination"`
}
