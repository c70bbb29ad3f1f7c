package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"strings"
	"time"

	"watcher/internal/application/port/input"
	"watcher/internal/application/port/output"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/yuin/goldmark"
)

//go:embed templates/index.html
var indexHTML string

//go:embed static
var staticFiles embed.FS

var pageTemplate = template.Must(template.New("index").Parse(indexHTML))

var errURLRequired = errors.New("url is required")

// Config of the HTTP surface. Metrics is mounted on /metrics when set. RunTimeout bounds
// each moderation run started by a request.
type Config struct {
	ServiceName string
	Metrics     http.Handler
	RunTimeout  time.Duration
}

type Server struct {
	moderator  input.Moderator
	logger     output.LoggerPort
	md         goldmark.Markdown
	router     chi.Router
	runTimeout time.Duration
}

type pageData struct {
	URL    string
	Output template.HTML
	Failed bool
}

type moderateRequest struct {
	URL string `json:"url"`
}

type moderateResponse struct {
	RunID  string `json:"run_id,omitempty"`
	Text   string `json:"text"`
	Report string `json:"report,omitempty"`
	Error  string `json:"error,omitempty"`
	HTML   string `json:"html"`
}

func NewServer(cfg Config, moderator input.Moderator, logger output.LoggerPort) *Server {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "watcher"
	}

	s := &Server{
		moderator:  moderator,
		logger:     logger,
		md:         goldmark.New(),
		runTimeout: cfg.RunTimeout,
	}

	accessLog := httplog.NewLogger(cfg.ServiceName, httplog.Options{JSON: true})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(accessLog))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/moderate", s.handleModerate)
	r.Get("/healthz", s.handleHealth)

	static, _ := fs.Sub(staticFiles, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, pageData{})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleModerate(w http.ResponseWriter, r *http.Request) {
	asJSON := wantsJSON(r)

	url, err := readURL(r)
	if err != nil {
		if asJSON {
			s.writeJSON(w, http.StatusBadRequest, moderateResponse{
				Text:  err.Error(),
				Error: err.Error(),
				HTML:  template.HTMLEscapeString(err.Error()),
			})
			return
		}
		s.renderPage(w, http.StatusBadRequest, pageData{Output: template.HTML(template.HTMLEscapeString(err.Error())), Failed: true})
		return
	}

	ctx := r.Context()
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}
	outcome := s.moderator.Moderate(ctx, url)

	rendered, err := renderOutput(s.md, outcome.Text())
	if err != nil {
		s.logger.Error("Output rendering failed", "run", outcome.RunID, "error", err)
		rendered = template.HTML("<pre>" + template.HTMLEscapeString(outcome.Text()) + "</pre>")
	}

	if asJSON {
		resp := moderateResponse{
			RunID:  outcome.RunID,
			Text:   outcome.Text(),
			Report: outcome.Report,
			HTML:   string(rendered),
		}
		if outcome.Failed() {
			resp.Error = outcome.Err.Error()
		}
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	s.renderPage(w, http.StatusOK, pageData{URL: url, Output: rendered, Failed: outcome.Failed()})
}

// readURL accepts a JSON body or a regular form post.
func readURL(r *http.Request) (string, error) {
	var url string
	if isJSON(r.Header.Get("Content-Type")) {
		var req moderateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", errors.New("invalid request body")
		}
		url = req.URL
	} else {
		if err := r.ParseForm(); err != nil {
			return "", errors.New("invalid form")
		}
		url = r.PostFormValue("url")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return "", errURLRequired
	}
	return url, nil
}

func wantsJSON(r *http.Request) bool {
	return isJSON(r.Header.Get("Content-Type")) || strings.Contains(r.Header.Get("Accept"), "application/json")
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("Page rendering failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encoding failed", "error", err)
	}
}
