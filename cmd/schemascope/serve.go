package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the schema, graph, layout, and audit findings as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen address",
				Value:   ":8765",
				Sources: cli.EnvVars("SCHEMASCOPE_ADDR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: runServe,
	}
}

func runServe(_ context.Context, cmd *cli.Command) error {
	config := zap.NewProductionConfig()
	if cmd.Bool("debug") {
		config = zap.NewDevelopmentConfig()
	}

	logger, err := config.Build()
	if err != nil {
		return err
	}

	defer func() {
		_ = logger.Sync()
	}()

	ws, err := loadWorkspace(cmd)
	if err != nil {
		logger.Error("loading workspace", zap.Error(err))

		return err
	}

	addr := cmd.String("addr")
	if addr == ":8765" && ws.config.Serve.Addr != "" {
		addr = ws.config.Serve.Addr
	}

	srv := &server{ws: ws, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/schema", srv.handleSchema)
	mux.HandleFunc("GET /api/graph", srv.handleGraph)
	mux.HandleFunc("GET /api/layout", srv.handleLayout)
	mux.HandleFunc("GET /api/audit", srv.handleAudit)

	logger.Info("serving schema API",
		zap.String("addr", addr),
		zap.Int("objects", ws.model.Len()),
		zap.Int("edges", len(ws.edges)))

	return http.ListenAndServe(addr, srv.logging(mux))
}

// server holds the immutable workspace. Everything served is read-only and
// built once at startup, so handlers need no locking.
type server struct {
	ws     *workspace
	logger *zap.Logger
}

func (s *server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func (s *server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encoding response", zap.Error(err))
	}
}

func (s *server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.ws.model.Objects())
}

type jsonEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

func (s *server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	edges := make([]jsonEdge, len(s.ws.edges))
	for i, e := range s.ws.edges {
		edges[i] = jsonEdge{From: e.From, To: e.To, Label: e.Label}
	}

	s.writeJSON(w, edges)
}

type jsonPosition struct {
	Key string  `json:"key"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

func (s *server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	// Emit in table order so the response is deterministic.
	var positions []jsonPosition

	for _, t := range s.ws.model.Tables() {
		if p, ok := s.ws.layout[t.Key]; ok {
			positions = append(positions, jsonPosition{Key: t.Key, X: p.X, Y: p.Y})
		}
	}

	s.writeJSON(w, positions)
}

func (s *server) handleAudit(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.ws.findings)
}
