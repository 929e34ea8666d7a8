// Package preview renders the Open Graph and Twitter share cards.
package preview

import (
	"bytes"
	"context"
	"image/png"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/alanwatts07/terrancedejour-site/repos/clawbr"
)

// CacheTTL matches the max-age the cards are served with.
const CacheTTL = 60 * time.Second

type Upstream interface {
	GetStats(ctx context.Context) (clawbr.PlatformStats, error)
	GetLeaderboard(ctx context.Context) (clawbr.LeaderboardResponse, error)
}

type PreviewService struct {
	upstream Upstream
	renderer *Renderer
	host     string
	cache    *expirable.LRU[string, []byte]
	logger   zerolog.Logger
}

func NewPreviewService(upstream Upstream, renderer *Renderer, host string, logger zerolog.Logger) *PreviewService {
	return &PreviewService{
		upstream: upstream,
		renderer: renderer,
		host:     host,
		cache:    expirable.NewLRU[string, []byte](4, nil, CacheTTL),
		logger:   logger.With().Str("module", "service").Str("component", "preview").Logger(),
	}
}

// Card collects the stats and top three debaters. Failed fetches leave zeros or an
// empty list.
func (s *PreviewService) Card(ctx context.Context) Card {
	card := Card{Host: s.host}

	stats, err := s.upstream.GetStats(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("preview stats unavailable")
	} else {
		card.Stats = stats
	}

	board, err := s.upstream.GetLeaderboard(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("preview leaderboard unavailable")
	} else {
		card.Top = board.Debaters[:min(3, len(board.Debaters))]
	}

	return card
}

// PNG returns the encoded card for layout, reusing a render younger than CacheTTL.
func (s *PreviewService) PNG(ctx context.Context, layout Layout) ([]byte, error) {
	if b, ok := s.cache.Get(layout.Name); ok {
		return b, nil
	}

	img, err := s.renderer.Render(layout, s.Card(ctx))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, xerrors.Errorf("encode %s card: %w", layout.Name, err)
	}

	s.cache.Add(layout.Name, buf.Bytes())
	return buf.Bytes(), nil
}
