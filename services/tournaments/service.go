package tournaments

import (
	"context"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

const (
	postExcerptLength = 400
	voteExcerptLength = 300

	sidePro = "PRO"
	sideCon = "CON"
)

var trailingPartialWord = regexp.MustCompile(`\s+\S*$`)

// Upstream is the part of the platform client the deep dive needs.
type Upstream interface {
	GetTournament(ctx context.Context, slug string) (clawbr.TournamentDetail, error)
	FetchDebates(ctx context.Context, ids []string) map[string]clawbr.DebateDetail
}

type TournamentsService struct {
	upstream Upstream
	reviews  Reviews
	logger   zerolog.Logger
}

func NewTournamentsService(upstream Upstream, reviews Reviews, logger zerolog.Logger) *TournamentsService {
	return &TournamentsService{
		upstream: upstream,
		reviews:  reviews,
		logger:   logger.With().Str("module", "service").Str("component", "tournaments").Logger(),
	}
}

// DeepDive assembles the full breakdown of one tournament. Only the tournament fetch
// can fail the call, and it always fails as clawbr.ErrNotFound.
func (s *TournamentsService) DeepDive(ctx context.Context, slug string) (*DeepDive, error) {
	tournament, debates, err := s.load(ctx, slug)
	if err != nil {
		return nil, err
	}

	participants := append([]clawbr.TournamentParticipant(nil), tournament.Participants...)
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Seed < participants[j].Seed
	})

	rounds := GroupByRound(tournament.Matches)
	for r := range rounds {
		for m := range rounds[r].Matches {
			view := &rounds[r].Matches[m]
			if view.Match.DebateID == nil {
				continue
			}
			if debate, ok := debates[*view.Match.DebateID]; ok {
				view.Debate = buildDebateView(debate)
			}
			if review, ok := s.reviews.Lookup(*view.Match.DebateID); ok {
				view.Review = &review
			}
		}
	}

	return &DeepDive{
		Tournament:   tournament,
		Participants: participants,
		Highlights:   DetectHighlights(tournament, debates),
		Rounds:       rounds,
	}, nil
}

// Highlights runs only the detector for one tournament.
func (s *TournamentsService) Highlights(ctx context.Context, slug string) ([]Highlight, error) {
	tournament, debates, err := s.load(ctx, slug)
	if err != nil {
		return nil, err
	}
	return DetectHighlights(tournament, debates), nil
}

func (s *TournamentsService) load(ctx context.Context, slug string) (clawbr.TournamentDetail, map[string]clawbr.DebateDetail, error) {
	tournament, err := s.upstream.GetTournament(ctx, slug)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("tournament lookup failed")
		return clawbr.TournamentDetail{}, nil, xerrors.Errorf("tournament %q: %w", slug, clawbr.ErrNotFound)
	}

	var ids []string
	for _, m := range tournament.Matches {
		if m.DebateID != nil {
			ids = append(ids, *m.DebateID)
		}
	}

	debates := s.upstream.FetchDebates(ctx, ids)
	if missing := len(ids) - len(debates); missing > 0 {
		s.logger.Debug().Str("slug", slug).Int("missing", missing).Msg("some debates unavailable")
	}

	return tournament, debates, nil
}

// GroupByRound orders matches by round then match number and groups them under their
// round label. Rounds without matches never appear.
func GroupByRound(matches []clawbr.TournamentMatch) []Round {
	sorted := append([]clawbr.TournamentMatch(nil), matches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Round != sorted[j].Round {
			return sorted[i].Round < sorted[j].Round
		}
		return sorted[i].MatchNumber < sorted[j].MatchNumber
	})

	var rounds []Round
	index := map[string]int{}
	for _, m := range sorted {
		label := m.RoundLabel
		if label == "" {
			label = clawbr.RoundLabel(m.Round, 0)
		}
		i, ok := index[label]
		if !ok {
			i = len(rounds)
			index[label] = i
			rounds = append(rounds, Round{Label: label})
		}
		rounds[i].Matches = append(rounds[i].Matches, MatchView{
			Number: len(rounds[i].Matches) + 1,
			Match:  m,
		})
	}
	return rounds
}

func buildDebateView(d clawbr.DebateDetail) *DebateView {
	v := &DebateView{
		ID:         d.ID,
		Pro:        d.Challenger,
		Con:        d.Opponent,
		ProVotes:   d.Votes.Challenger,
		ConVotes:   d.Votes.Opponent,
		TotalVotes: d.Votes.Total,
		JurySize:   d.Votes.JurySize,
	}

	if d.WinnerID != nil {
		v.ProWon = *d.WinnerID == d.ChallengerID
		v.ConWon = *d.WinnerID == d.OpponentID
	}

	if v.TotalVotes > 0 {
		v.ProPct = float64(v.ProVotes) / float64(v.TotalVotes) * 100
		v.ConPct = float64(v.ConVotes) / float64(v.TotalVotes) * 100
		v.Shutout = v.ProVotes == 0 || v.ConVotes == 0
	}
	v.Close = !v.Shutout && abs(v.ProVotes-v.ConVotes) <= 1

	posts := append([]clawbr.DebatePost(nil), d.Posts...)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PostNumber < posts[j].PostNumber
	})
	for _, p := range posts {
		pro := p.Side == clawbr.SideChallenger
		text, cut := Excerpt(p.Content, postExcerptLength)
		pv := PostView{
			Number:    p.PostNumber,
			Side:      sideLabel(pro),
			Pro:       pro,
			Agent:     d.Opponent,
			Excerpt:   text,
			Truncated: cut,
			Length:    utf8.RuneCountInString(p.Content),
		}
		if pro {
			pv.Agent = d.Challenger
		}
		pv.Winner = d.WinnerID != nil && p.AuthorID == *d.WinnerID
		v.Posts = append(v.Posts, pv)
	}

	ballots := append([]clawbr.DebateVote(nil), d.Votes.Details...)
	sort.SliceStable(ballots, func(i, j int) bool {
		return ballots[i].CreatedAt.Before(ballots[j].CreatedAt)
	})
	for _, b := range ballots {
		pro := b.Side == clawbr.SideChallenger
		text, _ := Excerpt(b.Content, voteExcerptLength)
		vv := VoteView{
			Voter:         b.Voter,
			Side:          sideLabel(pro),
			Pro:           pro,
			VotedFor:      d.Opponent,
			Retrospective: b.Retrospective,
			Excerpt:       text,
		}
		if pro {
			vv.VotedFor = d.Challenger
		}
		v.Votes = append(v.Votes, vv)
	}

	return v
}

// Excerpt shortens text to at most limit runes, backing off to the previous word
// boundary and appending an ellipsis.
func Excerpt(text string, limit int) (string, bool) {
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	cut := trailingPartialWord.ReplaceAllString(string(runes[:limit]), "")
	return cut + "…", true
}

func sideLabel(pro bool) string {
	if pro {
		return sidePro
	}
	return sideCon
}
