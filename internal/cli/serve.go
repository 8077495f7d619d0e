package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"aurora_deployer/internal/infrastructure/restapi"
	"aurora_deployer/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP view of the settings and accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.settings.GetConfig()
			if port == "" {
				port = cfg.Server.Port
			}

			metrics.MustRegisterMetrics()
			gin.SetMode(gin.ReleaseMode)

			handler := restapi.NewSettingsHandler(
				a.settings,
				a.profiles,
				a.accounts,
				time.Duration(cfg.Cache.AccountsTTLSeconds)*time.Second,
				time.Duration(cfg.Cache.CleanupIntervalSeconds)*time.Second,
				a.log,
			)

			srv := &http.Server{
				Addr:         ":" + port,
				Handler:      restapi.SetupRouter(handler),
				ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
				WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
				IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("Starting HTTP server", "address", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("HTTP server failed: %w", err)
				}
				return nil
			case <-cmd.Context().Done():
			}

			a.log.Info("Shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("HTTP server shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default from settings)")
	return cmd
}
