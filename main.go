package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/aeexplorer/api/rest"
	"github.com/hedisam/aeexplorer/internal/custompromauto"
	"github.com/hedisam/aeexplorer/internal/explorer"
	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

type Options struct {
	ServerAddr      string
	NodeURL         string
	PollInterval    time.Duration
	HTTPTimeout     time.Duration
	MaxRetryElapsed time.Duration
	MemSize         int
	Preload         bool
	Verbose         bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ServerAddr, "server-addr", "localhost:8080", "Server addr to serve the http server on")
	flag.StringVar(&opts.NodeURL, "node-url", "https://mainnet.aeternity.io", "Base URL of the node and middleware to fetch from")
	flag.DurationVar(&opts.PollInterval, "poll-interval", time.Second*30, "Chain height polling interval")
	flag.DurationVar(&opts.HTTPTimeout, "http-timeout", time.Second*10, "Timeout of a single middleware request")
	flag.DurationVar(&opts.MaxRetryElapsed, "max-retry-elapsed", 0, "Retry unreachable middleware requests for up to this long. Zero disables retries")
	flag.IntVar(&opts.MemSize, "mem-size", memdb.DefaultMemSize, "Initial size hint of every store collection")
	flag.BoolVar(&opts.Preload, "preload", true, "Fetch the latest generations and transactions on start")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpClient := &http.Client{Timeout: opts.HTTPTimeout}
	mwClient := middleware.New(logger, httpClient, middleware.WithRetry(opts.MaxRetryElapsed))

	root := explorer.NewRoot(opts.NodeURL, 0)
	exp := explorer.New(logger, mwClient, root, memdb.WithMemSize(opts.MemSize))
	tracker := explorer.NewHeightTracker(logger, mwClient, root)

	if opts.Preload {
		tracker.OnFirstHeight(func(ctx context.Context, height int64) {
			err := exp.Preload(ctx)
			if err != nil {
				logger.WithError(err).Error("Failed to preload explorer state")
			}
		})
	}

	height, err := tracker.Refresh(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to get initial chain height, preloading once the tracker gets one")
	} else {
		logger.WithField("height", height).Info("Fetched initial chain height")
	}

	go tracker.Run(ctx, opts.PollInterval)

	restServer := restapi.NewServer(logger, exp, exp, exp, exp)
	mux := http.NewServeMux()
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/status", restServer.GetStatus)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/accounts/{address}", restServer.GetAccount)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/accounts/{address}/transactions", restServer.ListAccountTransactions)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/channels", restServer.ListChannels)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/channels/{id}/transactions", restServer.ListChannelTransactions)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/contracts", restServer.ListContracts)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/contracts/{id}/transactions", restServer.ListContractTransactions)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/generations", restServer.ListGenerations)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/generations/{height}", restServer.GetGeneration)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/generations/hash/{hash}", restServer.GetGeneration)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/names", restServer.ListNames)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/oracles", restServer.ListOracles)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/oracles/{id}/queries", restServer.ListOracleQueries)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/transactions", restServer.ListTransactions)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/transactions/latest", restServer.ListLatestTransactions)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/transactions/{hash}", restServer.GetTransaction)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", promhttp.HandlerFor(custompromauto.Registry(), promhttp.HandlerOpts{}))

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ServerAddr == "" {
		logger.Error("--server-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if u, err := url.Parse(opts.NodeURL); opts.NodeURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		logger.Error("--node-url must be an absolute URL, e.g. https://mainnet.aeternity.io")
		flag.Usage()
		os.Exit(1)
	}
	if opts.PollInterval < time.Second*3 {
		logger.Error("--poll-interval is too small, it cannot be less than 3 seconds")
		flag.Usage()
		os.Exit(1)
	}
	if opts.HTTPTimeout <= 0 {
		logger.Error("--http-timeout must be positive")
		flag.Usage()
		os.Exit(1)
	}
	if opts.MaxRetryElapsed < 0 {
		logger.Error("--max-retry-elapsed cannot be negative")
		flag.Usage()
		os.Exit(1)
	}
	if opts.MemSize < 0 {
		logger.Error("--mem-size cannot be negative")
		flag.Usage()
		os.Exit(1)
	}
}
