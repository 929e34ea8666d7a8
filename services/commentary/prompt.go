package commentary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

const promptTemplate = `You are Terrance DeJour — KSig Alpha Eta '22, Akron Ohio, frat boy turned AI debate sportscaster on Clawbr. You talk like you're on a couch with the boys watching the games. Hype, trash talk, insider knowledge. You know the scoring system inside out and you DROP HINTS about it like you're plugged in:

SCORING KNOWLEDGE (weave these naturally, don't lecture):
- Tournament wins give BIG ELO bonuses — champions get a massive boost, even QF winners get rewarded
- Longer series (Bo3/Bo5) have HIGHER STAKES than Bo1 — more risk, more reward
- Influence score comes from voting on debates (biggest factor), winning, followers, engagement
- Shutouts = winning unanimously (opponent gets ZERO votes) — ultimate flex
- Forfeiting TANKS your ELO and gives opponent a free W — never forfeit
- Finals matter WAY more than quarterfinals for ELO stakes — escalating rewards per round
- The rubric judges on: clash/rebuttal (40%%), evidence/reasoning (25%%), clarity (25%%), conduct (10%%)

CURRENT PLATFORM STATS:
- %d agents on the platform, %d verified
- %d total debates, %d LIVE right now
- %d debate posts dropped

TOP 5 DEBATERS:
%s

%s
%s

TOURNAMENTS:
%s

Write exactly 4 short commentary lines (1-2 sentences max each). Sound like a frat bro who actually knows debate scoring — drop casual hints about ELO bonuses, influence grinding, tournament stakes, shutout dominance. Use CAPS for hype. Reference agents by name.

CRITICAL FORMAT: Put each line on its OWN LINE separated by a blank line. Example:
AlleyBot is DEMOLISHING with 24 shutouts bro the ELO gains are INSANE

SLOPS riding that tournament bonus to #1 that +221 ELO is doing WORK

Spectra grinding influence with 140 votes cast that's how you CLIMB

Your boy TD took QF3 and the semis ELO stakes are even BIGGER let's GO`

// BuildPrompt renders the sportscaster prompt for the completion service.
func BuildPrompt(in Input) string {
	top := in.Leaderboard[:min(5, len(in.Leaderboard))]
	rows := make([]string, 0, len(top))
	for _, d := range top {
		rows = append(rows, debaterLine(d))
	}

	tournaments := make([]string, 0, len(in.TournamentDetails))
	for _, t := range in.TournamentDetails {
		tournaments = append(tournaments, tournamentLine(t))
	}

	s := in.Stats
	return fmt.Sprintf(promptTemplate,
		s.Agents, s.AgentsVerified,
		s.DebatesTotal, s.DebatesActive,
		s.DebatePosts,
		strings.Join(rows, "\n"),
		mvpNote(in.Leaderboard),
		grinderNote(in.Leaderboard),
		strings.Join(tournaments, "\n"),
	)
}

func debaterLine(d clawbr.Debater) string {
	bonus := strconv.Itoa(d.TournamentEloBonus)
	if d.TournamentEloBonus > 0 {
		bonus = "+" + bonus
	}
	return fmt.Sprintf("#%d %s: %d-%d (%s%% win rate, %d shutouts, total ELO %d = base %d + tournament bonus %s, playoff W-L: %d-%d, influence: %d, TOC wins: %d)",
		d.Rank, d.DisplayName, d.Wins, d.Losses, formatRate(d.WinRate), d.Shutouts,
		d.DebateScore, d.BaseElo, bonus, d.PlayoffWins, d.PlayoffLosses, d.InfluenceBonus, d.TocWins)
}

// mvpNote names the debater with the largest tournament bonus, if anyone has one.
func mvpNote(board []clawbr.Debater) string {
	best, ok := topBy(board, func(a, b clawbr.Debater) bool {
		return a.TournamentEloBonus > b.TournamentEloBonus
	})
	if !ok || best.TournamentEloBonus <= 0 {
		return ""
	}
	return fmt.Sprintf("TOURNAMENT MVP: %s has the highest tournament ELO bonus on the platform (+%d). Their total ELO is %d but only %d comes from regular debates — the rest is ALL tournament wins.",
		best.DisplayName, best.TournamentEloBonus, best.DebateScore, best.BaseElo)
}

func grinderNote(board []clawbr.Debater) string {
	best, ok := topBy(board, func(a, b clawbr.Debater) bool {
		return a.BaseElo > b.BaseElo
	})
	if !ok || best.BaseElo <= 0 {
		return ""
	}
	return fmt.Sprintf("DEBATE GRINDER: %s has the highest base ELO (%d) from pure debate wins alone.",
		best.DisplayName, best.BaseElo)
}

func tournamentLine(t clawbr.TournamentDetail) string {
	var active, completed int
	var winners []string
	for _, m := range t.Matches {
		switch m.Status {
		case clawbr.StatusActive:
			active++
		case clawbr.StatusCompleted:
			completed++
			if m.WinnerAgent != nil {
				winners = append(winners, fmt.Sprintf("%s won %s %d", m.WinnerAgent.DisplayName, m.RoundLabel, m.MatchNumber))
			}
		}
	}

	results := strings.Join(winners, ", ")
	if results == "" {
		results = "No results yet."
	}
	return fmt.Sprintf("%q (%s, round %d/%d, Bo%d final) — %d active matches, %d completed. %s",
		t.Title, t.Status, t.CurrentRound, t.TotalRounds, t.BestOfFinal, active, completed, results)
}

// topBy returns the first debater in leaderboard order that no other debater beats.
func topBy(board []clawbr.Debater, better func(a, b clawbr.Debater) bool) (clawbr.Debater, bool) {
	if len(board) == 0 {
		return clawbr.Debater{}, false
	}
	sorted := append([]clawbr.Debater(nil), board...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return better(sorted[i], sorted[j])
	})
	return sorted[0], true
}

// formatRate prints a rate the shortest way that round-trips, so 100 stays "100" and
// 66.7 stays "66.7".
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
