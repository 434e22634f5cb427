// Package web serves the two-pane translator page and a couple of small
// JSON endpoints.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/valpere/bhasha/internal/language"
	"github.com/valpere/bhasha/internal/markdown"
	"github.com/valpere/bhasha/internal/session"
	"github.com/valpere/bhasha/internal/translation"
)

const (
	Title      = "Indian Language Translator"
	cookieName = "bhasha_session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed docs/*.md
var docsFS embed.FS

// Server holds the handlers. stats may be nil, in which case /api/cache
// answers 404.
type Server struct {
	ctrl     *session.Controller
	sessions *session.Store
	stats    func() translation.CacheStats
	logger   *slog.Logger

	page  *template.Template
	about template.HTML
	setup template.HTML
}

func NewServer(ctrl *session.Controller, sessions *session.Store, stats func() translation.CacheStats, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	about, err := docsFS.ReadFile("docs/about.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read about: %w", err)
	}

	return &Server{
		ctrl:     ctrl,
		sessions: sessions,
		stats:    stats,
		logger:   logger,
		page:     page,
		about:    markdown.Fragment(about),
		setup:    markdown.Fragment(SetupGuide()),
	}, nil
}

// SetupGuide returns the Markdown instructions for configuring the API key.
func SetupGuide() []byte {
	b, _ := docsFS.ReadFile("docs/setup.md")
	return b
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("POST /clear", s.handleClear)
	mux.HandleFunc("POST /input", s.handleInput)
	mux.HandleFunc("GET /api/cache", s.handleCacheStats)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.recoverer(s.logRequests(mux))
}

type languageOption struct {
	Name     string
	Tag      string
	Selected bool
}

type pageData struct {
	Title        string
	About        template.HTML
	Setup        template.HTML
	Languages    []languageOption
	Selected     language.Language
	InputText    string
	Result       string
	ResultTag    string
	CanTranslate bool
	Notices      []translation.Notice
}

func (s *Server) render(w http.ResponseWriter, snap session.Snapshot) {
	data := pageData{
		Title:        Title,
		About:        s.about,
		Setup:        s.setup,
		Selected:     snap.State.Language,
		InputText:    snap.State.InputText,
		Result:       snap.State.LastResult,
		ResultTag:    snap.State.Language.Tag().String(),
		CanTranslate: snap.CanTranslate,
		Notices:      snap.Notices,
	}
	for _, l := range language.All() {
		data.Languages = append(data.Languages, languageOption{
			Name:     l.String(),
			Tag:      l.Tag().String(),
			Selected: l == snap.State.Language,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("render failed", slog.Any("error", err))
	}
}

// session returns the visitor's session, issuing a cookie for new ones.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(cookieName); err == nil {
		id = c.Value
	}

	sess, created := s.sessions.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.render(w, s.ctrl.View(sess))
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	lang, err := language.Parse(r.PostFormValue("language"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.render(w, s.ctrl.Translate(r.Context(), sess, r.PostFormValue("text"), lang))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.render(w, s.ctrl.Clear(sess))
}

// handleInput keeps the stored input and selection in step with the form
// between actions.
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if _, ok := r.PostForm["text"]; ok {
		s.ctrl.Edit(sess, r.PostFormValue("text"))
	}
	if v := r.PostFormValue("language"); v != "" {
		if lang, err := language.Parse(v); err == nil {
			s.ctrl.Select(sess, lang)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"can_translate": s.ctrl.CanTranslate(),
		"sessions":      s.sessions.Len(),
		"time":          time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
