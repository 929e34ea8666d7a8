package tournaments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

type stubUpstream struct {
	tournament clawbr.TournamentDetail
	err        error
	debates    map[string]clawbr.DebateDetail
	requested  []string
}

func (s *stubUpstream) GetTournament(ctx context.Context, slug string) (clawbr.TournamentDetail, error) {
	return s.tournament, s.err
}

func (s *stubUpstream) FetchDebates(ctx context.Context, ids []string) map[string]clawbr.DebateDetail {
	s.requested = ids
	out := map[string]clawbr.DebateDetail{}
	for _, id := range ids {
		if d, ok := s.debates[id]; ok {
			out[id] = d
		}
	}
	return out
}

func fixtureTournament() clawbr.TournamentDetail {
	td := agent("td", "Terrance DeJour", pointer.Int(2))
	anvil := agent("max", "Max Anvil", pointer.Int(3))
	slops := agent("slops", "SLOPS", pointer.Int(4))
	alley := agent("alley", "AlleyBot", pointer.Int(1))

	final := completedMatch("final", alley, td, alley, clawbr.RoundFinal)
	final.Round, final.MatchNumber = 3, 1
	sf2 := completedMatch("sf2", td, anvil, td, clawbr.RoundSemifinal)
	sf2.Round, sf2.MatchNumber = 2, 2
	sf1 := completedMatch("sf1", alley, slops, alley, clawbr.RoundSemifinal)
	sf1.Round, sf1.MatchNumber = 2, 1

	detail := clawbr.TournamentDetail{
		Participants: []clawbr.TournamentParticipant{
			{AgentID: "slops", DisplayName: "SLOPS", Seed: 4},
			{AgentID: "alley", DisplayName: "AlleyBot", Seed: 1},
			{AgentID: "td", DisplayName: "Terrance DeJour", Seed: 2},
			{AgentID: "max", DisplayName: "Max Anvil", Seed: 3},
		},
		Matches: []clawbr.TournamentMatch{final, sf2, sf1},
	}
	detail.Title = "AI Juries"
	detail.Slug = "ai-juries"
	detail.Status = clawbr.StatusCompleted
	detail.TotalRounds = 3
	detail.WinnerID = pointer.String("alley")
	return detail
}

func TestDeepDive(t *testing.T) {
	t0 := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	long := strings.Repeat("receipts win rounds ", 30)

	upstream := &stubUpstream{
		tournament: fixtureTournament(),
		debates: map[string]clawbr.DebateDetail{
			"sf2": {
				ID:           "sf2",
				Challenger:   *agent("td", "Terrance DeJour", nil),
				Opponent:     *agent("max", "Max Anvil", nil),
				ChallengerID: "td",
				OpponentID:   "max",
				WinnerID:     pointer.String("td"),
				Posts: []clawbr.DebatePost{
					{ID: "p2", AuthorID: "max", Side: clawbr.SideOpponent, Content: "I argue for AI juries", PostNumber: 2},
					{ID: "p1", AuthorID: "td", Side: clawbr.SideChallenger, Content: long, PostNumber: 1},
				},
				Votes: clawbr.DebateVotes{
					Challenger: 11, Opponent: 0, Total: 11, JurySize: 11,
					Details: []clawbr.DebateVote{
						{ID: "v2", Side: clawbr.SideChallenger, Content: "later", CreatedAt: t0.Add(time.Minute), Voter: clawbr.Voter{DisplayName: "AshCrypt"}},
						{ID: "v1", Side: clawbr.SideChallenger, Content: "earlier", CreatedAt: t0, Voter: clawbr.Voter{DisplayName: "Drift"}},
					},
				},
			},
			"sf1": votes(6, 5),
		},
	}

	svc := NewTournamentsService(upstream, Reviews{"sf2": {DebateTake: "ELEVEN TO ZERO."}}, zerolog.Nop())
	dive, err := svc.DeepDive(context.Background(), "ai-juries")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"final", "sf2", "sf1"}, upstream.requested)

	// participants by seed
	require.Len(t, dive.Participants, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{
		dive.Participants[0].Seed, dive.Participants[1].Seed, dive.Participants[2].Seed, dive.Participants[3].Seed,
	})

	// rounds in bracket order
	require.Len(t, dive.Rounds, 2)
	assert.Equal(t, clawbr.RoundSemifinal, dive.Rounds[0].Label)
	assert.Equal(t, clawbr.RoundFinal, dive.Rounds[1].Label)
	require.Len(t, dive.Rounds[0].Matches, 2)
	assert.Equal(t, "sf1", *dive.Rounds[0].Matches[0].Match.DebateID)
	assert.Equal(t, 2, dive.Rounds[0].Matches[1].Number)

	// final debate missing: placeholder
	assert.Nil(t, dive.Rounds[1].Matches[0].Debate)

	view := dive.Rounds[0].Matches[1].Debate
	require.NotNil(t, view)
	assert.True(t, view.ProWon)
	assert.True(t, view.Shutout)
	assert.False(t, view.Close)
	assert.InDelta(t, 100.0, view.ProPct, 0.001)

	require.Len(t, view.Posts, 2)
	assert.Equal(t, 1, view.Posts[0].Number)
	assert.Equal(t, "PRO", view.Posts[0].Side)
	assert.True(t, view.Posts[0].Winner)
	assert.True(t, view.Posts[0].Truncated)
	assert.True(t, strings.HasSuffix(view.Posts[0].Excerpt, "…"))
	assert.Equal(t, "CON", view.Posts[1].Side)
	assert.Equal(t, "Max Anvil", view.Posts[1].Agent.DisplayName)

	require.Len(t, view.Votes, 2)
	assert.Equal(t, "Drift", view.Votes[0].Voter.DisplayName)
	assert.Equal(t, "Terrance DeJour", view.Votes[0].VotedFor.DisplayName)

	require.NotNil(t, dive.Rounds[0].Matches[1].Review)
	assert.Equal(t, "ELEVEN TO ZERO.", dive.Rounds[0].Matches[1].Review.DebateTake)

	thin := dive.Rounds[0].Matches[0].Debate
	require.NotNil(t, thin)
	assert.True(t, thin.Close)

	// sf1 is razor-thin, sf2 is a shutout; bracket list order is final, sf2, sf1
	assert.Equal(t, []HighlightType{HighlightShutout, HighlightClose}, types(dive.Highlights))
}

func TestDeepDive_NotFound(t *testing.T) {
	upstream := &stubUpstream{err: &clawbr.APIError{Status: 500, Path: "/tournaments/x"}}
	svc := NewTournamentsService(upstream, nil, zerolog.Nop())

	_, err := svc.DeepDive(context.Background(), "x")
	assert.True(t, errors.Is(err, clawbr.ErrNotFound))

	_, err = svc.Highlights(context.Background(), "x")
	assert.True(t, errors.Is(err, clawbr.ErrNotFound))
}

func TestHighlights(t *testing.T) {
	upstream := &stubUpstream{
		tournament: fixtureTournament(),
		debates:    map[string]clawbr.DebateDetail{"sf1": votes(6, 5)},
	}
	svc := NewTournamentsService(upstream, nil, zerolog.Nop())

	hs, err := svc.Highlights(context.Background(), "ai-juries")
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, "RAZOR-THIN SEMIFINAL", hs[0].Title)
}

func TestExcerpt(t *testing.T) {
	text, cut := Excerpt("short", 400)
	assert.Equal(t, "short", text)
	assert.False(t, cut)

	text, cut = Excerpt("alpha beta gamma", 13)
	assert.True(t, cut)
	assert.Equal(t, "alpha beta…", text)

	text, cut = Excerpt("ééééé ééééé", 8)
	assert.True(t, cut)
	assert.Equal(t, "ééééé…", text)
}

func TestGroupByRound(t *testing.T) {
	matches := []clawbr.TournamentMatch{
		{ID: "f", Round: 3, MatchNumber: 1, RoundLabel: clawbr.RoundFinal},
		{ID: "q2", Round: 1, MatchNumber: 2, RoundLabel: clawbr.RoundQuarterfinal},
		{ID: "q1", Round: 1, MatchNumber: 1, RoundLabel: clawbr.RoundQuarterfinal},
	}

	rounds := GroupByRound(matches)
	require.Len(t, rounds, 2)
	assert.Equal(t, clawbr.RoundQuarterfinal, rounds[0].Label)
	assert.Equal(t, "q1", rounds[0].Matches[0].Match.ID)
	assert.Equal(t, "q2", rounds[0].Matches[1].Match.ID)
	assert.Equal(t, clawbr.RoundFinal, rounds[1].Label)
	assert.Empty(t, GroupByRound(nil))
}
