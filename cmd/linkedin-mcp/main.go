// linkedin-mcp - LinkedIn profile lookup and search over the Model Context Protocol.
// Copyright (C) 2026 Jorineg
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exhttp"

	"github.com/Jorineg/linkedin-mcp/pkg/config"
	"github.com/Jorineg/linkedin-mcp/pkg/mcptools"
	"github.com/Jorineg/linkedin-mcp/pkg/serp"
	"github.com/Jorineg/linkedin-mcp/pkg/voyager"
)

// Information to find out exactly which commit the server was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.ScrapingdogAPIKey == "" {
		log.Warn().Msg("No search proxy API key configured, search tools will fail")
	}

	tools := &mcptools.Tools{
		LinkedIn: voyager.NewClient(voyager.ClientOpts{UserAgent: cfg.UserAgent}),
		Search:   serp.NewClient(serp.ClientOpts{APIKey: cfg.ScrapingdogAPIKey}),
		Log:      log,
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "linkedin-mcp",
		Title:   "LinkedIn MCP: Profile Only",
		Version: Tag,
	}, nil)
	tools.Register(server)

	// Stateless mode: every tool call stands on its own, which is what lets
	// the server run behind serverless platforms and load balancers.
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{Stateless: true})

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.Handle("/mcp/", mcpHandler)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		exhttp.WriteJSONResponse(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": Tag,
			"commit":  Commit,
			"built":   BuildTime,
		})
	})

	httpServer := &http.Server{Addr: cfg.Listen, Handler: mux}

	go func() {
		log.Info().Str("listen", cfg.Listen).Msg("Starting MCP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}
