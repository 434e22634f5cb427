// Package translation turns a text and a target language into a translated
// text by asking a chat-completion model. Results are memoized per process.
package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valpere/bhasha/internal"
	"github.com/valpere/bhasha/internal/postprocess"
	"github.com/valpere/bhasha/internal/translator"
)

const (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 2000
)

type Config struct {
	Temperature float64 `mapstructure:"temperature" json:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens" json:"max_tokens"`
	CleanOutput bool    `mapstructure:"clean_output" json:"clean_output"`
}

type Service struct {
	completer translator.Completer
	cache     *Cache
	cfg       Config
	logger    *slog.Logger
}

// NewService wires a Service. A nil cache gets a fresh one; a nil logger
// discards.
func NewService(completer translator.Completer, cache *Cache, cfg Config, logger *slog.Logger) *Service {
	if cache == nil {
		cache = NewCache()
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		completer: completer,
		cache:     cache,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *Service) Cache() *Cache {
	return s.cache
}

// Translate never returns an error directly: failures are classified into
// the Result and reported to n. Only successful calls are memoized, so a
// failed request is retried against the provider next time.
func (s *Service) Translate(ctx context.Context, req internal.TranslationRequest, n Notifier) Result {
	if n == nil {
		n = discard{}
	}
	if req.Model == "" {
		req.Model = translator.DefaultModel
	}

	if strings.TrimSpace(req.SourceText) == "" {
		n.Notify(Notice{Level: LevelInfo, Text: MsgEmptyInput})
		return Result{Kind: KindEmptyInput}
	}

	if req.APIKey == "" {
		return s.fail(n, req, Result{Kind: KindMissingCredential, Err: ErrMissingCredential})
	}

	if !req.TargetLanguage.Valid() {
		err := fmt.Errorf("unsupported target language %q", req.TargetLanguage)
		return s.fail(n, req, Result{Kind: KindService, Err: err})
	}

	key := NewKey(req)
	if text, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit",
			slog.String("language", req.TargetLanguage.String()),
			slog.String("model", req.Model))
		return Result{Text: text, Kind: KindOK, Cached: true}
	}

	n.Notify(Notice{Level: LevelProgress, Text: fmt.Sprintf("Translating to %s...", req.TargetLanguage)})
	start := time.Now()
	content, err := s.completer.Complete(ctx, req.APIKey, translator.ChatRequest{
		Model:       req.Model,
		Messages:    BuildMessages(req.TargetLanguage, req.SourceText),
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	n.Done()

	if err != nil {
		kind := KindService
		if errors.Is(err, translator.ErrAuthentication) {
			kind = KindAuthentication
		}
		return s.fail(n, req, Result{Kind: kind, Err: err})
	}

	var text string
	if s.cfg.CleanOutput {
		text = postprocess.Clean(content)
	} else {
		text = strings.TrimSpace(content)
	}
	s.cache.Put(key, text)

	s.logger.Debug("translated",
		slog.String("provider", s.completer.Name()),
		slog.String("language", req.TargetLanguage.String()),
		slog.String("model", req.Model),
		slog.Int("source_runes", len([]rune(req.SourceText))),
		slog.Duration("latency", time.Since(start)))

	return Result{Text: text, Kind: KindOK}
}

func (s *Service) fail(n Notifier, req internal.TranslationRequest, res Result) Result {
	s.logger.Warn("translation failed",
		slog.String("kind", res.Kind.String()),
		slog.String("language", req.TargetLanguage.String()),
		slog.String("model", req.Model),
		slog.Any("error", res.Err))
	n.Notify(Notice{Level: LevelError, Text: res.Message()})
	return res
}
