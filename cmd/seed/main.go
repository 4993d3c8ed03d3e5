// Package main seeds the news database with a fixed set of rows.
// Usage: newsdesk-seed [-config path.yaml] [-full] [-trace] [-metrics-file path.prom]
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"newsdesk/internal/config"
	"newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/usecase/news"
)

func main() {
	var (
		configPath  string
		full        bool
		trace       bool
		metricsFile string
	)
	flag.StringVar(&configPath, "config", "", "YAML file with a 'database' section (environment variables override it)")
	flag.BoolVar(&full, "full", false, "Also publish a complete demo article with images and a summary")
	flag.BoolVar(&trace, "trace", false, "Log a span for every statement (requires LOG_LEVEL=debug)")
	flag.StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit (textfile collector format)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: newsdesk-seed [-config path.yaml] [-full] [-trace] [-metrics-file path.prom]")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := initLogger()
	os.Exit(run(logger, configPath, full, trace, metricsFile))
}

func initLogger() *slog.Logger {
	logger, runID := logging.WithRunID(logging.WithFields(logging.NewLogger(), map[string]interface{}{
		"service": "newsdesk-seed",
	}))
	slog.SetDefault(logger)
	logger.Debug("logger initialized", slog.String("run_id", runID))
	return logger
}

func run(logger *slog.Logger, configPath string, full, trace bool, metricsFile string) int {
	ctx := logging.WithLogger(context.Background(), logger)

	if trace {
		tp := tracing.NewLogProvider(logger)
		otel.SetTracerProvider(tp)
		defer func() { _ = tp.Shutdown(ctx) }()
	}
	if metricsFile != "" {
		defer writeMetrics(logger, metricsFile)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("failed to load database configuration", slog.Any("error", err))
		return 1
	}

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		// Open already logged the cause.
		return 1
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	svc := newService(conn, logger)
	if err := seed(ctx, svc, full); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		return 1
	}
	logger.Info("seed completed")
	return 0
}

func loadConfig(path string) (config.DatabaseConfig, error) {
	if path != "" {
		return config.LoadDatabaseConfigFile(path)
	}
	return config.LoadDatabaseConfig()
}

func newService(conn *sql.DB, logger *slog.Logger) *news.Service {
	exec := db.NewExecutor(conn,
		db.WithCircuitBreaker(circuitbreaker.NewDB()),
		db.WithLogger(logger),
	)
	return news.NewService(postgres.NewRepositories(exec))
}

// seed inserts the fixed example rows. Each insert commits on its own.
func seed(ctx context.Context, svc *news.Service, full bool) error {
	logger := logging.FromContext(ctx)

	categoryID, err := svc.InsertCategory(ctx, "Politics", "All first related to politics")
	if err != nil {
		return err
	}
	authorID, err := svc.InsertAuthor(ctx, "'jonny", "jon@mail.com")
	if err != nil {
		return err
	}
	logger.Info("example rows inserted",
		slog.Int64("category_id", categoryID),
		slog.Int64("author_id", authorID))

	if !full {
		return nil
	}

	published, err := svc.PublishArticle(ctx, news.ArticleInput{
		CategoryID:  categoryID,
		AuthorID:    authorID,
		EditorName:  "Mary Major",
		EditorEmail: "mary@mail.com",
		Datetime:    time.Now().UTC().Truncate(time.Second),
		Title:       "Parliament passes annual budget",
		Body:        "Parliament approved the annual budget after a lengthy debate.",
		Link:        "https://news.example.com/politics/budget",
		ImageURLs:   []string{"https://img.example.com/budget.jpg"},
		Summary:     "The budget passed after a late-night vote.",
	})
	if err != nil {
		return err
	}
	logger.Info("demo article published", slog.Int64("article_id", published.ArticleID))
	return nil
}

func writeMetrics(logger *slog.Logger, path string) {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		logger.Error("failed to write metrics", slog.String("path", path), slog.Any("error", err))
	}
}
