package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
	"github.com/alanwatts07/terrancedejour-site/services/commentary"
	"github.com/alanwatts07/terrancedejour-site/services/tournaments"
)

// Upstream is the part of the platform client the dashboard reads from.
type Upstream interface {
	GetStats(ctx context.Context) (clawbr.PlatformStats, error)
	GetTournaments(ctx context.Context) (clawbr.TournamentsResponse, error)
	GetLeaderboard(ctx context.Context) (clawbr.LeaderboardResponse, error)
	GetActivityFeed(ctx context.Context, limit int) (clawbr.ActivityResponse, error)
	GetDebateHub(ctx context.Context) (clawbr.DebateHub, error)
	FetchTournamentDetails(ctx context.Context, slugs []string) []clawbr.TournamentDetail
}

type Commentator interface {
	Compose(ctx context.Context, in commentary.Input) commentary.Result
}

type DashboardService struct {
	upstream      Upstream
	commentator   Commentator
	activityLimit int
	logger        zerolog.Logger
	now           func() time.Time
}

func NewDashboardService(upstream Upstream, commentator Commentator, activityLimit int, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		upstream:      upstream,
		commentator:   commentator,
		activityLimit: activityLimit,
		logger:        logger.With().Str("module", "service").Str("component", "dashboard").Logger(),
		now:           time.Now,
	}
}

// Snapshot fetches the dashboard data in two phases. Independent endpoints are read
// concurrently, then tournament details for every active or completed tournament.
// A failed section is logged and left empty.
func (s *DashboardService) Snapshot(ctx context.Context) Snapshot {
	var (
		snap Snapshot
		mu   sync.Mutex
		g    errgroup.Group
	)

	fail := func(section string, err error) {
		s.logger.Warn().Err(err).Str("section", section).Msg("dashboard section unavailable")
		mu.Lock()
		snap.Unavailable = append(snap.Unavailable, section)
		mu.Unlock()
	}

	g.Go(func() error {
		stats, err := s.upstream.GetStats(ctx)
		if err != nil {
			fail("stats", err)
			return nil
		}
		snap.Stats = stats
		return nil
	})
	g.Go(func() error {
		resp, err := s.upstream.GetTournaments(ctx)
		if err != nil {
			fail("tournaments", err)
			return nil
		}
		snap.Tournaments = resp.Tournaments
		return nil
	})
	g.Go(func() error {
		resp, err := s.upstream.GetLeaderboard(ctx)
		if err != nil {
			fail("leaderboard", err)
			return nil
		}
		snap.Leaderboard = resp.Debaters
		return nil
	})
	g.Go(func() error {
		resp, err := s.upstream.GetActivityFeed(ctx, s.activityLimit)
		if err != nil {
			fail("activity", err)
			return nil
		}
		snap.Activity = resp.Activities
		return nil
	})
	g.Go(func() error {
		hub, err := s.upstream.GetDebateHub(ctx)
		if err != nil {
			fail("hub", err)
			return nil
		}
		snap.Hub = hub
		return nil
	})
	_ = g.Wait()

	var slugs []string
	for _, t := range snap.Tournaments {
		switch t.Status {
		case clawbr.StatusActive:
			snap.ActiveTournaments = append(snap.ActiveTournaments, t)
			slugs = append(slugs, t.Slug)
		case clawbr.StatusCompleted:
			slugs = append(slugs, t.Slug)
		}
	}
	if len(slugs) > 0 {
		snap.TournamentDetails = s.upstream.FetchTournamentDetails(ctx, slugs)
	}

	return snap
}

// CommentaryInput gathers a fresh snapshot for the commentary endpoint.
func (s *DashboardService) CommentaryInput(ctx context.Context) (commentary.Input, error) {
	snap := s.Snapshot(ctx)
	if err := ctx.Err(); err != nil {
		return commentary.Input{}, err
	}
	return inputFrom(snap), nil
}

// Dashboard builds the full home page: snapshot, commentary, and live brackets.
func (s *DashboardService) Dashboard(ctx context.Context) (*Dashboard, error) {
	snap := s.Snapshot(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := &Dashboard{
		Snapshot:    snap,
		Commentary:  s.commentator.Compose(ctx, inputFrom(snap)),
		Brackets:    []Bracket{},
		Completed:   []clawbr.TournamentSummary{},
		GeneratedAt: s.now(),
	}
	for _, t := range snap.TournamentDetails {
		if t.Status == clawbr.StatusActive {
			d.Brackets = append(d.Brackets, Bracket{Tournament: t, Rounds: tournaments.GroupByRound(t.Matches)})
		}
	}
	for _, t := range snap.Tournaments {
		if t.Status == clawbr.StatusCompleted {
			d.Completed = append(d.Completed, t)
		}
	}
	return d, nil
}

func inputFrom(snap Snapshot) commentary.Input {
	return commentary.Input{
		Stats:             snap.Stats,
		Leaderboard:       snap.Leaderboard,
		ActiveTournaments: snap.ActiveTournaments,
		TournamentDetails: snap.TournamentDetails,
	}
}
