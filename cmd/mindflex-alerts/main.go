package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/client"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

type alertsConfig struct {
	ServerAddress string        `env:"MINDFLEX_ADDRESS" envDefault:"http://localhost:8084"`
	Username      string        `env:"MINDFLEX_USERNAME"`
	Password      string        `env:"MINDFLEX_PASSWORD"`
	Subjects      []string      `env:"ALERT_SUBJECTS" envSeparator:","`
	Interval      time.Duration `env:"ALERT_INTERVAL" envDefault:"30s"`
	Timeout       time.Duration `env:"CLIENT_TIMEOUT" envDefault:"5s"`
	Retries       int           `env:"CLIENT_RETRIES" envDefault:"2"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c := client.NewClient(client.Config{
		BaseURL: cfg.ServerAddress,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
		Backoff: time.Second,
	})
	if err := c.Login(ctx, cfg.Username, cfg.Password); err != nil {
		logger.Log.Fatal("login failed", zap.Error(err))
	}

	logger.Log.Info("watching for new questions",
		zap.Strings("subjects", cfg.Subjects), zap.Duration("interval", cfg.Interval))
	client.NewPoller(c, cfg.Subjects, cfg.Interval, printQuestions).Run(ctx)
}

// loadConfig reads the environment, applies flag overrides and rejects
// settings the poller cannot run with.
func loadConfig(fset *flag.FlagSet, args []string) (alertsConfig, error) {
	var cfg alertsConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}

	var (
		address  string
		username string
		subjects string
		interval time.Duration
	)
	fset.StringVar(&address, "a", "", "mindflex server address")
	fset.StringVar(&username, "u", "", "tutor username")
	fset.StringVar(&subjects, "s", "", "comma separated subjects to watch")
	fset.DurationVar(&interval, "i", 0, "poll interval")
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	if address != "" {
		cfg.ServerAddress = address
	}
	if username != "" {
		cfg.Username = username
	}
	if subjects != "" {
		cfg.Subjects = strings.Split(subjects, ",")
	}
	if interval != 0 {
		cfg.Interval = interval
	}

	switch {
	case cfg.Username == "" || cfg.Password == "":
		return cfg, errors.New("MINDFLEX_USERNAME and MINDFLEX_PASSWORD must be set")
	case cfg.Interval <= 0:
		return cfg, errors.New("ALERT_INTERVAL must be positive")
	case cfg.Retries < 0:
		return cfg, errors.New("CLIENT_RETRIES must not be negative")
	}
	return cfg, nil
}

func printQuestions(questions []models.Question) {
	for _, q := range questions {
		fmt.Printf("[%s] %s | %s | $%s | due in %s\n",
			q.Subject, q.Title, strings.TrimSpace(q.Description), q.Budget.StringFixed(2), q.DeliveryTime)
	}
}
