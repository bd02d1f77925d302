package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jerrychoi/bookroad/internal/proxy"
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Serve the key-hiding catalog relay",
	Long:  "Starts the HTTP relay that forwards /aladin/<endpoint> requests to the Aladin API with the ttbkey injected server-side, so clients never carry the credential.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("proxy"); err != nil {
			return err
		}

		srv, err := proxy.New(proxy.Options{
			TTBKey:       cfg.Aladin.TTBKey,
			UpstreamBase: cfg.Aladin.BaseURL,
		})
		if err != nil {
			return err
		}

		httpSrv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Proxy.Port),
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("proxy: listening", zap.Int("port", cfg.Proxy.Port))
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		zap.L().Info("proxy: stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(proxyCmd)
}
