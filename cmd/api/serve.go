package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API with the reconciler and notification consumer",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	return withApp(serve)(cmd, args)
}

func serve(cmd *cobra.Command, a *app) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := a.notifications.Start(a.consumer); err != nil {
		return errors.Wrap(err, "start notification consumer")
	}
	a.settings.Watch()

	reconcileDone := make(chan struct{})
	go func() {
		defer close(reconcileDone)
		if err := a.reconciler.Run(ctx); err != nil {
			log.Printf("[cmd] reconciler stopped err=%v", err)
		}
	}()

	srv := &http.Server{
		Addr:    ":" + getenvDefault("PORT", "8080"),
		Handler: a.router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[cmd] http server listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Printf("[cmd] shutdown initiated")
	case err := <-serveErr:
		if err != nil {
			cancel()
			<-reconcileDone
			return errors.Wrap(err, "http server")
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[cmd] server shutdown error err=%v", err)
	}
	<-reconcileDone
	log.Printf("[cmd] bye")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
