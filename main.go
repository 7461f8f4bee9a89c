package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nerzal/gocloak/v13"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/kova98/redditgrow.api/analysis"
	"github.com/kova98/redditgrow.api/config"
	"github.com/kova98/redditgrow.api/data"
	"github.com/kova98/redditgrow.api/data/repos"
	"github.com/kova98/redditgrow.api/handlers"
	"github.com/kova98/redditgrow.api/metrics"
	"github.com/kova98/redditgrow.api/models"
	"github.com/kova98/redditgrow.api/sources"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

func main() {
	rootCmd := &cobra.Command{
		Use:          "redditgrow",
		Short:        "Reddit post analysis API",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()

			opts := slog.HandlerOptions{Level: config.Config.LogLevel}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &opts)))
		},
		RunE: runServeCommand,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Starts the HTTP API",
			RunE:  runServeCommand,
		},
		&cobra.Command{
			Use:   "analyze <post_URL>",
			Short: "Analyzes a single Reddit post and prints the result as JSON",
			Args:  cobra.ExactArgs(1),
			RunE:  runAnalyzeCommand,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzer(m *metrics.Metrics) (*analysis.Analyzer, *http.Client, error) {
	client, err := sources.NewHTTPClient(config.Config.ProxyURL)
	if err != nil {
		return nil, nil, err
	}

	var detector analysis.LanguageDetector
	if config.Config.DetectLanguage {
		detector = analysis.NewLinguaDetector()
	}

	reddit := sources.NewRedditClient(slog.Default(), client, m)
	return analysis.NewAnalyzer(slog.Default(), reddit, detector, m), client, nil
}

func runAnalyzeCommand(cmd *cobra.Command, args []string) error {
	analyzer, _, err := newAnalyzer(nil)
	if err != nil {
		return err
	}

	var body any
	result, err := analyzer.Analyze(cmd.Context(), args[0])
	if err != nil {
		body = handlers.AnalysisFailure(err).Body
	} else {
		body = models.AnalyzeResponse{Success: true, AnalysisResult: result}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(body); encErr != nil {
		return encErr
	}
	return err
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	m := metrics.New()

	analyzer, client, err := newAnalyzer(m)
	if err != nil {
		slog.Error("failed to create http client", "error", err)
		return err
	}

	store, closeStore, err := connectionStore()
	if err != nil {
		return err
	}
	defer closeStore()

	srv := newServer(m)
	analyze := handlers.NewAnalyzeHandler(analyzer)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", srv.public(analyze.AnalyzePost))
	mux.Handle("GET /metrics", m.Handler())

	if config.Config.AuthEnabled() {
		keycloakClient := gocloak.NewClient(config.Config.KeycloakURL)
		srv.auth = handlers.NewAuthHandler(keycloakClient)

		connections := handlers.NewConnectionHandler(store)
		analytics := handlers.NewAnalyticsHandler(store)
		mux.HandleFunc("GET /reddit/connection", srv.private(connections.GetConnection))
		mux.HandleFunc("DELETE /reddit/connection", srv.private(connections.DeleteConnection))
		mux.HandleFunc("GET /analytics", srv.private(analytics.GetAnalytics))

		if config.Config.OAuthEnabled() {
			oauth := handlers.NewOAuthHandler(sources.NewRedditOAuth(slog.Default(), client, m), store, m)
			mux.HandleFunc("GET /reddit/authorize", srv.private(oauth.Authorize))
			mux.HandleFunc("POST /reddit/oauth", srv.private(oauth.Exchange))
		} else {
			slog.Warn("REDDIT_CLIENT_ID or REDDIT_CLIENT_SECRET not set, oauth routes disabled")
		}
	} else {
		slog.Warn("KEYCLOAK_URL not set, private routes disabled")
	}

	httpServer := &http.Server{
		Addr:    ":" + config.Config.Port,
		Handler: withCORS(mux),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("Starting server", "port", config.Config.Port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("failed to start server", "error", err)
		return err
	}

	return nil
}

func connectionStore() (handlers.ConnectionStore, func(), error) {
	if config.Config.PostgresURL == "" {
		slog.Info("POSTGRES_URL not set, keeping reddit connections in memory")
		return repos.NewMemoryConnectionRepo(), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		return nil, nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := data.RunMigrations(db.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		db.Close()
		return nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}
	return repos.NewConnectionRepo(db), closeDB, nil
}
