// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/lpsite/internal/config"
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/handlers"
	"github.com/thatcatcamp/lpsite/internal/logging"
	"github.com/thatcatcamp/lpsite/internal/middleware"
	"github.com/thatcatcamp/lpsite/internal/tls"
	"go.uber.org/zap"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the lpsite HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger, err := newLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runServer(ctx, logger); err != nil {
			logger.Error("server stopped", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}

// newRouter wires the middleware chain and public routes. The returned
// stop function releases the rate limiter, if any.
func newRouter(repo *content.Repository, logger *zap.Logger, tlsEnabled bool) (*gin.Engine, func()) {
	stop := func() {}

	r := gin.New()
	if err := r.SetTrustedProxies(config.GetStringSlice("server.trusted_proxies")); err != nil {
		logger.Warn("invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.RecoveryWithWriter(logging.NewPrintfAdapter(logger)))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.LocaleMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("server.ip_blocklist")))

	if perMinute := config.GetInt("server.rate_limit"); perMinute > 0 {
		limiter := middleware.NewRateLimiter(perMinute, time.Minute)
		r.Use(middleware.RateLimitMiddleware(limiter))
		stop = limiter.Stop
	}

	if tlsEnabled {
		r.Use(middleware.HTTPSRedirectMiddleware(config.GetString("server.https_port")))
	}

	handlers.NewPublicHandler(repo, siteOptions()).Register(r)
	return r, stop
}

// runServer serves until ctx is cancelled, then shuts down gracefully
func runServer(ctx context.Context, logger *zap.Logger) error {
	repo, err := loadRepository(logger)
	if err != nil {
		return err
	}
	for l, ids := range repo.Availability() {
		logger.Info("content loaded", zap.String("locale", string(l)), zap.Strings("ids", ids))
	}

	tlsEnabled := config.GetBool("server.tls_enabled")
	r, stopRouter := newRouter(repo, logger, tlsEnabled)
	defer stopRouter()

	errorLog := log.New(logging.NewPrintfAdapter(logger), "", 0)
	httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
	var servers []*http.Server

	if tlsEnabled {
		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load TLS config: %w", err)
		}

		tlsManager, err := tls.NewManager(ctx, tlsCfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize TLS manager: %w", err)
		}

		// plain HTTP answers ACME challenges and redirects everything else
		servers = append(servers, newHTTPServer(httpAddr, tlsManager.HTTPChallengeHandler(r), errorLog))
		httpsSrv := newHTTPServer(fmt.Sprintf(":%s", config.GetString("server.https_port")), r, errorLog)
		httpsSrv.TLSConfig = tlsManager.GetTLSConfig()
		servers = append(servers, httpsSrv)
	} else {
		servers = append(servers, newHTTPServer(httpAddr, r, errorLog))
	}

	// bind every port before serving any
	listeners, err := listenAll(servers)
	if err != nil {
		return err
	}

	errs := make(chan error, len(servers))
	for i, srv := range servers {
		listener := listeners[i]
		logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.Bool("tls", srv.TLSConfig != nil),
			zap.String("base_domain", config.GetString("server.base_domain")))

		go func(srv *http.Server, listener net.Listener) {
			var err error
			if srv.TLSConfig != nil {
				err = srv.ServeTLS(listener, "", "")
			} else {
				err = srv.Serve(listener)
			}
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- err
			}
		}(srv, listener)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case serveErr = <-errs:
	}

	timeout := config.GetDuration("server.shutdown_timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown failed", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}

	return serveErr
}

const readHeaderTimeout = 10 * time.Second

func newHTTPServer(addr string, handler http.Handler, errorLog *log.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          errorLog,
	}
}

// listenAll binds a listener per server. On failure the listeners already
// opened are closed.
func listenAll(servers []*http.Server) ([]net.Listener, error) {
	listeners := make([]net.Listener, 0, len(servers))
	for _, srv := range servers {
		listener, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}
			return nil, fmt.Errorf("failed to bind %s: %w", srv.Addr, err)
		}
		listeners = append(listeners, listener)
	}
	return listeners, nil
}
