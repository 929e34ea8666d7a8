package commentary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
	"github.com/alanwatts07/terrancedejour-site/repos/completion"
)

type fakeCompleter struct {
	content string
	err     error
	block   bool
	prompt  string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.content, f.err
}

func leaderboard() []clawbr.Debater {
	return []clawbr.Debater{
		{Rank: 1, DisplayName: "Terrance DeJour", Wins: 8, Losses: 0, DebatesTotal: 8, WinRate: 100, Shutouts: 3,
			DebateScore: 1200, TournamentEloBonus: 200, BaseElo: 1000},
		{Rank: 2, DisplayName: "Max Anvil", Wins: 6, Losses: 4, DebatesTotal: 10, WinRate: 60, Shutouts: 1,
			DebateScore: 1100, TournamentEloBonus: 0, BaseElo: 1100},
	}
}

func finalTournament(status string) clawbr.TournamentDetail {
	t := clawbr.TournamentDetail{
		Matches: []clawbr.TournamentMatch{{
			Round: 3, MatchNumber: 1, Status: status, RoundLabel: clawbr.RoundFinal,
			WinnerAgent: &clawbr.AgentRef{ID: "slops", DisplayName: "SLOPS"},
		}},
	}
	t.Title = "AI Juries"
	t.Status = clawbr.StatusCompleted
	t.CurrentRound, t.TotalRounds, t.BestOfFinal = 3, 3, 1
	return t
}

func TestFallback_WinRateAndShutouts(t *testing.T) {
	lines := Fallback(Input{Leaderboard: leaderboard()})

	require.Len(t, lines, 2)
	assert.Equal(t, "Terrance DeJour is COOKING with a 100% win rate across 8 debates!", lines[0])
	assert.Equal(t, "Terrance DeJour has 3 SHUTOUTS. Opponents can't catch a break!", lines[1])
}

func TestFallback_WinRateNeedsFiveDebates(t *testing.T) {
	board := []clawbr.Debater{
		{DisplayName: "Rookie", DebatesTotal: 4, WinRate: 100},
		{DisplayName: "Vet", DebatesTotal: 12, WinRate: 66.7},
	}
	lines := Fallback(Input{Leaderboard: board})

	require.Len(t, lines, 1)
	assert.Equal(t, "Vet is COOKING with a 66.7% win rate across 12 debates!", lines[0])
}

func TestFallback_Champion(t *testing.T) {
	lines := Fallback(Input{TournamentDetails: []clawbr.TournamentDetail{finalTournament(clawbr.StatusCompleted)}})

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "SLOPS")
	assert.Contains(t, lines[0], "crown")
	assert.Equal(t, `YOUR CHAMPION: SLOPS takes the "AI Juries" crown!`, lines[0])
}

func TestFallback_TournamentNotes(t *testing.T) {
	tournament := clawbr.TournamentDetail{Matches: []clawbr.TournamentMatch{
		{MatchNumber: 3, Status: clawbr.StatusCompleted, RoundLabel: clawbr.RoundQuarterfinal,
			WinnerAgent: &clawbr.AgentRef{DisplayName: "Terrance DeJour"}},
		{MatchNumber: 4, Status: clawbr.StatusCompleted, RoundLabel: clawbr.RoundQuarterfinal},
		{MatchNumber: 1, Status: clawbr.StatusActive, RoundLabel: clawbr.RoundSemifinal},
		{MatchNumber: 2, Status: clawbr.StatusActive, RoundLabel: clawbr.RoundSemifinal},
	}}
	tournament.Title = "Open Bracket"

	lines := Fallback(Input{TournamentDetails: []clawbr.TournamentDetail{tournament}})

	assert.Equal(t, []string{
		"Quarterfinal 3 is DONE — Terrance DeJour advances to the semis!",
		`2 matches still LIVE in "Open Bracket" — who's next?`,
	}, lines)
}

func TestFallback_PlatformNotes(t *testing.T) {
	lines := Fallback(Input{Stats: clawbr.PlatformStats{DebatesTotal: 250, DebatesActive: 7}})

	assert.Equal(t, []string{
		"250 total debates and counting. This platform doesn't sleep!",
		"7 debates happening RIGHT NOW. The timeline is on fire!",
	}, lines)

	assert.Empty(t, Fallback(Input{Stats: clawbr.PlatformStats{DebatesTotal: 99}}))
}

func TestFallback_CappedAtFour(t *testing.T) {
	lines := Fallback(Input{
		Stats:             clawbr.PlatformStats{DebatesTotal: 500, DebatesActive: 3},
		Leaderboard:       leaderboard(),
		TournamentDetails: []clawbr.TournamentDetail{finalTournament(clawbr.StatusCompleted)},
	})

	require.Len(t, lines, 4)
	assert.Contains(t, lines[3], "500 total debates")
}

func TestFallback_Empty(t *testing.T) {
	lines := Fallback(Input{})
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestParseCompletion(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
		ok      bool
	}{
		{
			name: "three lines",
			content: "TD is cooking with that shutout streak\n\n" +
				"SLOPS riding the tournament bonus to the top\n\n" +
				"AlleyBot voting on everything to farm influence",
			want: []string{
				"TD is cooking with that shutout streak",
				"SLOPS riding the tournament bonus to the top",
				"AlleyBot voting on everything to farm influence",
			},
			ok: true,
		},
		{
			name: "five lines capped",
			content: "Line number one is right here bro\n\nLine number two is right here bro\n\n" +
				"Line number three is right here bro\n\nLine number four is right here bro\n\n" +
				"Line number five is right here bro",
			want: []string{
				"Line number one is right here bro",
				"Line number two is right here bro",
				"Line number three is right here bro",
				"Line number four is right here bro",
			},
			ok: true,
		},
		{
			name: "think block stripped",
			content: "<think>\nthe user wants four lines, let me plan them out carefully\n</think>\n" +
				"TD is cooking with that shutout streak\n\nSLOPS riding the tournament bonus to the top\n\n" +
				"AlleyBot voting on everything to farm influence",
			want: []string{
				"TD is cooking with that shutout streak",
				"SLOPS riding the tournament bonus to the top",
				"AlleyBot voting on everything to farm influence",
			},
			ok: true,
		},
		{
			name: "junk filtered",
			content: "- TD is cooking with that shutout streak\n" +
				"1. SLOPS riding the tournament bonus to the top\n" +
				"*leans back on the couch and cracks a cold one*\n" +
				"---\n" +
				"too short\n" +
				"AlleyBot voting on everything to farm influence",
			ok: false,
		},
		{
			name: "one block resplit",
			content: "TD is ABSOLUTELY cooking right now bro!  *sips* SLOPS riding the bonus wave to the top!  " +
				"AlleyBot shutouts are just unreal this season.",
			want: []string{
				"TD is ABSOLUTELY cooking right now bro!",
				"SLOPS riding the bonus wave to the top!",
				"AlleyBot shutouts are just unreal this season.",
			},
			ok: true,
		},
		{
			name:    "empty",
			content: "   ",
			ok:      false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lines, ok := ParseCompletion(c.content)
			assert.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.want, lines)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Input{
		Stats:             clawbr.PlatformStats{Agents: 40, AgentsVerified: 12, DebatesTotal: 250, DebatesActive: 7, DebatePosts: 3000},
		Leaderboard:       leaderboard(),
		TournamentDetails: []clawbr.TournamentDetail{finalTournament(clawbr.StatusCompleted)},
	})

	assert.True(t, strings.HasPrefix(prompt, "You are Terrance DeJour"))
	assert.Contains(t, prompt, "clash/rebuttal (40%)")
	assert.Contains(t, prompt, "- 40 agents on the platform, 12 verified")
	assert.Contains(t, prompt, "- 250 total debates, 7 LIVE right now")
	assert.Contains(t, prompt, "#1 Terrance DeJour: 8-0 (100% win rate, 3 shutouts, total ELO 1200 = base 1000 + tournament bonus +200, playoff W-L: 0-0, influence: 0, TOC wins: 0)")
	assert.Contains(t, prompt, "#2 Max Anvil: 6-4 (60% win rate, 1 shutouts, total ELO 1100 = base 1100 + tournament bonus 0,")
	assert.Contains(t, prompt, "TOURNAMENT MVP: Terrance DeJour has the highest tournament ELO bonus on the platform (+200).")
	assert.Contains(t, prompt, "DEBATE GRINDER: Max Anvil has the highest base ELO (1100) from pure debate wins alone.")
	assert.Contains(t, prompt, `"AI Juries" (completed, round 3/3, Bo1 final) — 0 active matches, 1 completed. SLOPS won Final 1`)
}

func TestBuildPrompt_NoMVPWithoutBonus(t *testing.T) {
	prompt := BuildPrompt(Input{Leaderboard: []clawbr.Debater{{Rank: 1, DisplayName: "Solo", DebateScore: 900, BaseElo: 900}}})

	assert.NotContains(t, prompt, "TOURNAMENT MVP")
	assert.Contains(t, prompt, "DEBATE GRINDER: Solo")
	assert.NotContains(t, BuildPrompt(Input{}), "DEBATE GRINDER")
}

func TestCompose(t *testing.T) {
	in := Input{Leaderboard: leaderboard()}
	fallback := Fallback(in)

	t.Run("model lines", func(t *testing.T) {
		fake := &fakeCompleter{content: "Line number one is right here bro\n\nLine number two is right here bro\n\nLine number three is right here bro"}
		res := NewComposer(fake, time.Second, zerolog.Nop()).Compose(context.Background(), in)

		assert.Equal(t, SourceModel, res.Source)
		assert.Len(t, res.Lines, 3)
		assert.Contains(t, fake.prompt, "TOP 5 DEBATERS")
	})

	t.Run("error falls back", func(t *testing.T) {
		res := NewComposer(&fakeCompleter{err: errors.New("boom")}, time.Second, zerolog.Nop()).Compose(context.Background(), in)
		assert.Equal(t, SourceFallback, res.Source)
		assert.Equal(t, fallback, res.Lines)
	})

	t.Run("timeout falls back", func(t *testing.T) {
		res := NewComposer(&fakeCompleter{block: true}, 20*time.Millisecond, zerolog.Nop()).Compose(context.Background(), in)
		assert.Equal(t, SourceFallback, res.Source)
		assert.Equal(t, fallback, res.Lines)
	})

	t.Run("too few lines falls back", func(t *testing.T) {
		res := NewComposer(&fakeCompleter{content: "Just one line of hype here bro"}, time.Second, zerolog.Nop()).Compose(context.Background(), in)
		assert.Equal(t, SourceFallback, res.Source)
	})

	t.Run("no completer", func(t *testing.T) {
		res := NewComposer(nil, time.Second, zerolog.Nop()).Compose(context.Background(), in)
		assert.Equal(t, SourceFallback, res.Source)
		assert.Equal(t, fallback, res.Lines)
	})
}

func TestCompose_ServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := completion.NewService(completion.Options{BaseURL: server.URL + "/v1", Model: "cogito:32b", Timeout: time.Second})
	in := Input{Leaderboard: leaderboard()}

	res := NewComposer(client, time.Second, zerolog.Nop()).Compose(context.Background(), in)

	assert.Equal(t, SourceFallback, res.Source)
	require.NotEmpty(t, res.Lines)
	assert.Contains(t, res.Lines[0], "100% win rate")
	assert.Equal(t, Fallback(in), res.Lines)
}
