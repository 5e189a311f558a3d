// Package api serves the dashboard: the status page, its JSON endpoints,
// dashboard commands and the live websocket feed.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/db"
	httpx "github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/http"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/metrics"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultCommandsPerSecond = 5
	readHeaderTimeout        = 10 * time.Second
	commandTimeout           = 10 * time.Second
)

//go:embed web/*
var webContent embed.FS

// Config wires an APIServer. History and Metrics are optional.
type Config struct {
	ListenAddr        string
	Endpoint          models.Endpoint
	Sessions          SessionCommander
	Status            StatusSource
	History           db.Service
	Metrics           metrics.MetricStore
	CommandsPerSecond float64
	Logger            *zap.Logger
}

type APIServer struct {
	addr     string
	endpoint models.Endpoint
	sessions SessionCommander
	status   StatusSource
	history  db.Service
	metrics  metrics.MetricStore
	limiter  *rate.Limiter
	logger   *zap.Logger
	router   *mux.Router
	upgrader websocket.Upgrader

	mu      sync.Mutex
	srv     *http.Server
	lis     net.Listener
	clients map[*wsClient]struct{}
}

func NewAPIServer(cfg Config) *APIServer {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	cps := cfg.CommandsPerSecond
	if cps <= 0 {
		cps = defaultCommandsPerSecond
	}

	s := &APIServer{
		addr:     cfg.ListenAddr,
		endpoint: cfg.Endpoint,
		sessions: cfg.Sessions,
		status:   cfg.Status,
		history:  cfg.History,
		metrics:  cfg.Metrics,
		limiter:  rate.NewLimiter(rate.Limit(cps), max(1, int(cps))),
		logger:   cfg.Logger.With(zap.String("component", "dashboard")),
		router:   mux.NewRouter(),
		clients:  make(map[*wsClient]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)
	s.router.Use(httpx.LoggingMiddleware(s.logger))

	s.router.HandleFunc("/api/status", s.getStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/api/config", s.getConfig).Methods(http.MethodGet)
	s.router.HandleFunc("/api/history", s.getProbeHistory).Methods(http.MethodGet)
	s.router.HandleFunc("/api/sessions", s.getSessionHistory).Methods(http.MethodGet)
	s.router.HandleFunc("/api/metrics", s.getMetrics).Methods(http.MethodGet)

	s.router.HandleFunc("/api/commands/{command:stop|disconnect|reconnect}", s.postCommand).
		Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/chat", s.postChat).Methods(http.MethodPost, http.MethodOptions)

	s.router.HandleFunc("/ws", s.handleWebsocket)

	fsys, err := fs.Sub(webContent, "web")
	if err != nil {
		s.logger.Error("Error setting up static file serving", zap.Error(err))
		return
	}

	s.router.PathPrefix("/").Handler(http.FileServer(http.FS(fsys)))
}

// Handler exposes the router, mainly for tests.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

// Start binds the listener and serves in the background. A bind failure is
// returned immediately.
func (s *APIServer) Start(_ context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%w on %s: %w", errFailedToListen, s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.mu.Lock()
	s.srv = srv
	s.lis = lis
	s.mu.Unlock()

	s.logger.Info("Dashboard listening", zap.String("addr", lis.Addr().String()))

	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Dashboard server error", zap.Error(err))
		}
	}()

	return nil
}

// Addr is the bound address, or nil before Start.
func (s *APIServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lis == nil {
		return nil
	}

	return s.lis.Addr()
}

// Stop stops accepting connections and closes every websocket client.
func (s *APIServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	clients := make([]*wsClient, 0, len(s.clients))

	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		c.close()
	}

	if srv == nil {
		return nil
	}

	return srv.Shutdown(ctx)
}

func (s *APIServer) getStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.status.Snapshot())
}

// getConfig hides the account name in online mode, where it is the login.
func (s *APIServer) getConfig(w http.ResponseWriter, _ *http.Request) {
	resp := configResponse{
		Host:    s.endpoint.Host,
		Port:    s.endpoint.Port,
		Offline: s.endpoint.Offline,
	}

	if s.endpoint.Offline {
		resp.Username = s.endpoint.Username
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *APIServer) getProbeHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, http.StatusNotFound, errHistoryDisabled)
		return
	}

	points, err := s.history.GetProbeHistory(r.Context(), limitParam(r))
	if err != nil {
		s.logger.Error("Failed to read probe history", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err)

		return
	}

	if points == nil {
		points = []db.ProbeRecord{}
	}

	s.writeJSON(w, http.StatusOK, points)
}

func (s *APIServer) getSessionHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, http.StatusNotFound, errHistoryDisabled)
		return
	}

	records, err := s.history.GetSessionHistory(r.Context(), limitParam(r))
	if err != nil {
		s.logger.Error("Failed to read session history", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err)

		return
	}

	if records == nil {
		records = []db.SessionRecord{}
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *APIServer) getMetrics(w http.ResponseWriter, _ *http.Request) {
	points := []models.MetricPoint{}

	if s.metrics != nil {
		points = append(points, s.metrics.GetPoints()...)
	}

	s.writeJSON(w, http.StatusOK, points)
}

func (s *APIServer) postCommand(w http.ResponseWriter, r *http.Request) {
	s.serveCommand(w, r, mux.Vars(r)["command"], "")
}

func (s *APIServer) postChat(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	s.serveCommand(w, r, CommandChat, req.Message)
}

func (s *APIServer) serveCommand(w http.ResponseWriter, r *http.Request, command, message string) {
	if !s.limiter.Allow() {
		s.writeError(w, http.StatusTooManyRequests, errRateLimited)
		return
	}

	res := s.runCommand(r.Context(), command, message)

	code := http.StatusOK
	if !res.OK && res.Error != "" {
		code = http.StatusBadGateway
	}

	s.writeJSON(w, code, res)
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}

	return limit
}

func (s *APIServer) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("Failed to encode response", zap.Error(err))
	}
}

func (s *APIServer) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, errorResponse{Error: err.Error()})
}
