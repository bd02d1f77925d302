// Package proxy serves the credential-hiding relay in front of the
// Aladin TTB API: clients call /aladin/<endpoint> without a key and the
// proxy injects ttbkey server-side before forwarding.
package proxy

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/jerrychoi/bookroad/pkg/aladin"
)

// cacheControl keeps replayed responses fresh enough for interactive
// browsing while shielding the upstream from identical bursts.
const cacheControl = "public, max-age=60"

const defaultTimeout = 15 * time.Second

// Options configures a proxy Server.
type Options struct {
	// TTBKey is injected into every upstream request. Required.
	TTBKey string
	// UpstreamBase overrides the Aladin API base URL (tests).
	UpstreamBase string
	// HTTPClient overrides the forwarding client (tests).
	HTTPClient *http.Client
}

// Server relays /aladin/{endpoint} requests to the catalog API.
type Server struct {
	ttbKey   string
	upstream string
	client   *http.Client
}

// New creates a Server from opts.
func New(opts Options) (*Server, error) {
	if opts.TTBKey == "" {
		return nil, eris.New("proxy: ttb key is required")
	}
	s := &Server{
		ttbKey:   opts.TTBKey,
		upstream: opts.UpstreamBase,
		client:   opts.HTTPClient,
	}
	if s.upstream == "" {
		s.upstream = aladin.DefaultBaseURL
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: defaultTimeout}
	}
	return s, nil
}

// Handler returns the chi router for the relay.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/aladin/{endpoint}", s.relay)
	return r
}

func (s *Server) relay(w http.ResponseWriter, r *http.Request) {
	endpoint := chi.URLParam(r, "endpoint")

	target, err := url.Parse(s.upstream + "/" + endpoint)
	if err != nil {
		http.Error(w, "bad endpoint", http.StatusBadRequest)
		return
	}

	// Copy the caller's query string and overwrite any smuggled key.
	q := r.URL.Query()
	q.Set("ttbkey", s.ttbKey)
	target.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Warn("proxy: upstream request failed",
			zap.String("endpoint", endpoint), zap.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		zap.L().Debug("proxy: response copy interrupted", zap.Error(err))
	}
}
