package commentary

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Completer is anything that answers a single prompt with free text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Composer struct {
	completer Completer
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewComposer returns a composer. A nil completer means every call uses the fallback.
func NewComposer(completer Completer, timeout time.Duration, logger zerolog.Logger) *Composer {
	return &Composer{
		completer: completer,
		timeout:   timeout,
		logger:    logger.With().Str("module", "service").Str("component", "commentary").Logger(),
	}
}

// Compose asks the model first and falls back to templates on any failure.
func (c *Composer) Compose(ctx context.Context, in Input) Result {
	if lines, ok := c.fromModel(ctx, in); ok {
		return Result{Lines: lines, Source: SourceModel}
	}
	return Result{Lines: Fallback(in), Source: SourceFallback}
}

func (c *Composer) fromModel(ctx context.Context, in Input) ([]string, bool) {
	if c.completer == nil {
		return nil, false
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	content, err := c.completer.Complete(ctx, BuildPrompt(in))
	if err != nil {
		c.logger.Warn().Err(err).Dur("latency", time.Since(start)).Msg("completion failed, using fallback")
		return nil, false
	}

	lines, ok := ParseCompletion(content)
	if !ok {
		c.logger.Warn().Int("chars", len(content)).Msg("completion unusable, using fallback")
		return nil, false
	}

	c.logger.Debug().Int("lines", len(lines)).Dur("latency", time.Since(start)).Msg("model commentary")
	return lines, true
}
