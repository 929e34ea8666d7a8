package clawbr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
	"golang.org/x/xerrors"
)

// How long a cached body may be served for each endpoint.
const (
	statsFreshness       = 60 * time.Second
	tournamentsFreshness = 60 * time.Second
	tournamentFreshness  = 30 * time.Second
	debateFreshness      = 30 * time.Second
	hubFreshness         = 30 * time.Second
	leaderboardFreshness = 60 * time.Second
	activityFreshness    = 30 * time.Second

	maxBodyBytes = 8 << 20
)

type Options struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	CacheSize     int
	MaxParallel   int
	Logger        zerolog.Logger

	// HTTPClient replaces the default client built from Timeout.
	HTTPClient *http.Client
}

// Service is a read-only client for the Clawbr platform API.
type Service struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	cache       *responseCache
	inflight    singleflight.Group
	maxParallel int
	logger      zerolog.Logger
}

// NewService creates a new client.
func NewService(opts Options) *Service {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	maxParallel := opts.MaxParallel
	if maxParallel < 1 {
		maxParallel = 1
	}

	return &Service{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(limit, burst),
		cache:       newResponseCache(opts.CacheSize, statsFreshness),
		maxParallel: maxParallel,
		logger:      opts.Logger.With().Str("module", "repos").Str("component", "clawbr").Logger(),
	}
}

func (s *Service) GetStats(ctx context.Context) (PlatformStats, error) {
	var stats PlatformStats
	err := s.get(ctx, "/stats", statsFreshness, &stats)
	return stats, err
}

func (s *Service) GetTournaments(ctx context.Context) (TournamentsResponse, error) {
	var res TournamentsResponse
	err := s.get(ctx, "/tournaments", tournamentsFreshness, &res)
	return res, err
}

func (s *Service) GetTournament(ctx context.Context, slug string) (TournamentDetail, error) {
	var t TournamentDetail
	if strings.TrimSpace(slug) == "" {
		return t, ErrNotFound
	}
	if err := s.get(ctx, "/tournaments/"+url.PathEscape(slug), tournamentFreshness, &t); err != nil {
		return t, err
	}

	for i := range t.Matches {
		if t.Matches[i].RoundLabel == "" {
			t.Matches[i].RoundLabel = RoundLabel(t.Matches[i].Round, t.TotalRounds)
		}
	}
	return t, nil
}

func (s *Service) GetDebate(ctx context.Context, id string) (DebateDetail, error) {
	var d DebateDetail
	if strings.TrimSpace(id) == "" {
		return d, ErrNotFound
	}
	err := s.get(ctx, "/debates/"+url.PathEscape(id), debateFreshness, &d)
	return d, err
}

func (s *Service) GetDebateHub(ctx context.Context) (DebateHub, error) {
	var hub DebateHub
	err := s.get(ctx, "/debates/hub", hubFreshness, &hub)
	return hub, err
}

func (s *Service) GetLeaderboard(ctx context.Context) (LeaderboardResponse, error) {
	var res LeaderboardResponse
	if err := s.get(ctx, "/leaderboard/debates/detailed", leaderboardFreshness, &res); err != nil {
		return res, err
	}

	replaced := 0
	for _, d := range res.Debaters {
		if d.BaseEloReplaced() {
			replaced++
		}
	}
	if replaced > 0 {
		s.logger.Warn().Int("rows", replaced).Msg("leaderboard baseElo disagreed with debateScore - tournamentEloBonus, using derived value")
	}
	return res, nil
}

func (s *Service) GetActivityFeed(ctx context.Context, limit int) (ActivityResponse, error) {
	var res ActivityResponse
	if limit < 1 {
		limit = 5
	}
	err := s.get(ctx, fmt.Sprintf("/feed/activity?limit=%d", limit), activityFreshness, &res)
	return res, err
}

// Ping checks that the platform answers, bypassing the cache.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.fetch(ctx, "/stats")
	return err
}

// RoundLabel names a bracket round counted back from the last one.
func RoundLabel(round, totalRounds int) string {
	switch totalRounds - round {
	case 0:
		return RoundFinal
	case 1:
		return RoundSemifinal
	case 2:
		return RoundQuarterfinal
	default:
		return fmt.Sprintf("Round %d", round)
	}
}

func (s *Service) get(ctx context.Context, path string, freshness time.Duration, out any) error {
	body, ok := s.cache.get(path, freshness)
	if !ok {
		// The shared fetch outlives any one caller; the client timeout still bounds it.
		shared := context.WithoutCancel(ctx)
		v, err, _ := s.inflight.Do(path, func() (interface{}, error) {
			return s.fetch(shared, path)
		})
		if err != nil {
			return err
		}
		body = v.([]byte)
		s.cache.put(path, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return xerrors.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *Service) fetch(ctx context.Context, path string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, xerrors.Errorf("rate limit wait %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, xerrors.Errorf("create request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	response, err := s.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("request %s: %w", path, err)
	}
	defer response.Body.Close()

	s.logger.Debug().
		Str("path", path).
		Int("status", response.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("upstream request")

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &APIError{Status: response.StatusCode, Path: path}
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return nil, xerrors.Errorf("read %s: %w", path, err)
	}
	return body, nil
}
