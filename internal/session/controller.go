package session

import (
	"context"
	"log/slog"

	"github.com/valpere/bhasha/internal"
	"github.com/valpere/bhasha/internal/language"
	"github.com/valpere/bhasha/internal/translation"
)

// Translator is the part of translation.Service the controller needs.
type Translator interface {
	Translate(ctx context.Context, req internal.TranslationRequest, n translation.Notifier) translation.Result
}

// Snapshot is everything a view needs after an action.
type Snapshot struct {
	State        State
	Notices      []translation.Notice
	CanTranslate bool
}

// Controller applies user actions to sessions. The API key and model are
// fixed for the life of the process.
type Controller struct {
	svc    Translator
	apiKey string
	model  string
	logger *slog.Logger
}

func NewController(svc Translator, apiKey, model string, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{svc: svc, apiKey: apiKey, model: model, logger: logger}
}

// CanTranslate reports whether the translate action is offered at all.
func (c *Controller) CanTranslate() bool {
	return c.apiKey != ""
}

// View renders the current state without changing it. Without a key it
// carries the setup notice.
func (c *Controller) View(sess *Session) Snapshot {
	snap := Snapshot{State: sess.State(), CanTranslate: c.CanTranslate()}
	if !snap.CanTranslate {
		snap.Notices = []translation.Notice{{Level: translation.LevelError, Text: translation.MsgMissingCredential}}
	}
	return snap
}

// Edit stores new input text. No validation happens here.
func (c *Controller) Edit(sess *Session, text string) {
	sess.mu.Lock()
	sess.state.InputText = text
	sess.mu.Unlock()
}

// Select moves the language selector.
func (c *Controller) Select(sess *Session, lang language.Language) {
	if !lang.Valid() {
		return
	}
	sess.mu.Lock()
	sess.state.Language = lang
	sess.mu.Unlock()
}

// Translate stores text and lang, then replaces the last result with the
// service's answer. The session stays locked for the whole call.
func (c *Controller) Translate(ctx context.Context, sess *Session, text string, lang language.Language) Snapshot {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.state.InputText = text
	if lang.Valid() {
		sess.state.Language = lang
	}

	if !c.CanTranslate() {
		return Snapshot{
			State:   sess.state,
			Notices: []translation.Notice{{Level: translation.LevelError, Text: translation.MsgMissingCredential}},
		}
	}

	var notices translation.Notices
	res := c.svc.Translate(ctx, internal.TranslationRequest{
		APIKey:         c.apiKey,
		SourceText:     sess.state.InputText,
		TargetLanguage: sess.state.Language,
		Model:          c.model,
	}, &notices)
	sess.state.LastResult = res.Text

	c.logger.Debug("translate action",
		slog.String("session", sess.ID),
		slog.String("kind", res.Kind.String()),
		slog.Bool("cached", res.Cached))

	return Snapshot{State: sess.state, Notices: notices.List, CanTranslate: true}
}

// Clear resets input and result without touching the service.
func (c *Controller) Clear(sess *Session) Snapshot {
	sess.mu.Lock()
	sess.state.Reset()
	sess.mu.Unlock()
	return c.View(sess)
}
