package clawbr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchTournamentDetails loads every slug in parallel. Failed slugs are logged and left
// out; the rest keep input order.
func (s *Service) FetchTournamentDetails(ctx context.Context, slugs []string) []TournamentDetail {
	results := make([]*TournamentDetail, len(slugs))

	var g errgroup.Group
	g.SetLimit(s.maxParallel)

	for i, slug := range slugs {
		g.Go(func() error {
			detail, err := s.GetTournament(ctx, slug)
			if err != nil {
				s.logger.Warn().Err(err).Str("slug", slug).Msg("tournament detail unavailable")
				return nil
			}
			results[i] = &detail
			return nil
		})
	}
	_ = g.Wait()

	details := make([]TournamentDetail, 0, len(results))
	for _, d := range results {
		if d != nil {
			details = append(details, *d)
		}
	}
	return details
}

// FetchDebates loads every debate ID in parallel, keyed by the requested ID. Failed or
// duplicate IDs do not abort the others.
func (s *Service) FetchDebates(ctx context.Context, ids []string) map[string]DebateDetail {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	results := make([]*DebateDetail, len(unique))

	var g errgroup.Group
	g.SetLimit(s.maxParallel)

	for i, id := range unique {
		g.Go(func() error {
			debate, err := s.GetDebate(ctx, id)
			if err != nil {
				s.logger.Warn().Err(err).Str("debate_id", id).Msg("debate detail unavailable")
				return nil
			}
			results[i] = &debate
			return nil
		})
	}
	_ = g.Wait()

	debates := make(map[string]DebateDetail, len(unique))
	for i, d := range results {
		if d != nil {
			debates[unique[i]] = *d
		}
	}
	return debates
}
