/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/bhasha/internal/session"
	"github.com/valpere/bhasha/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web translator",
	Long: `Serve the two-pane translator page.

Without an OpenAI key the page still loads, but the Translate button is
disabled and setup instructions are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(cfg)
		if err != nil {
			return err
		}

		ctrl := session.NewController(svc, cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger)
		srv, err := web.NewServer(ctrl, session.NewStore(cfg.Session.IdleTTL), svc.Cache().Stats, logger)
		if err != nil {
			return err
		}

		if !cfg.HasAPIKey() {
			logger.Warn("OPENAI_API_KEY not set, translation disabled")
		}

		httpServer := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", "addr", cfg.Server.Addr, "model", cfg.OpenAI.Model)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8501", "Listen address")
	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
