package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yusufkecer/health-tracker/internal/auth"
	"github.com/yusufkecer/health-tracker/internal/config"
	"github.com/yusufkecer/health-tracker/internal/dashboard"
	"github.com/yusufkecer/health-tracker/internal/db"
	"github.com/yusufkecer/health-tracker/internal/domain"
	"github.com/yusufkecer/health-tracker/internal/logger"
	"github.com/yusufkecer/health-tracker/internal/repository"
	"github.com/yusufkecer/health-tracker/internal/tui"
	"go.uber.org/zap"
)

var (
	token   string
	baseURL string
	logFile string
	offline bool
)

var rootCmd = &cobra.Command{
	Use:   "healthtui",
	Short: "HealthTracker dashboard in the terminal",
	Long: `healthtui opens the HealthTracker dashboard shell in the terminal.

The session token comes from --token or HT_SESSION_TOKEN. Without one the
dashboard shows the sign-in prompt; press l for the sign-in link.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&token, "token", os.Getenv("HT_SESSION_TOKEN"), "session token issued by the web sign-in")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "base URL of the HealthTracker server")
	rootCmd.Flags().StringVar(&logFile, "log-file", "healthtui.log", "file that receives log output")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "skip the database; session lookups then fail and show the sign-in prompt")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Log.File = logFile

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		accounts auth.AccountFinder = offlineAccounts{}
		records  dashboard.RecordLister
	)
	if !offline {
		database, err := db.Connect(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer database.Close()
		accounts, records = repositories(database)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	loginURL := strings.TrimRight(baseURL, "/") + cfg.Auth.LoginPath
	client := auth.NewClient(tokens, accounts, loginURL, log)

	model := tui.New(ctx, client, records, token, log)
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if m, ok := final.(tui.Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		log.Error("terminal program exited", zap.Error(err))
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func repositories(database *sql.DB) (auth.AccountFinder, dashboard.RecordLister) {
	return repository.NewAccountRepository(database), repository.NewRecordRepository(database)
}

type offlineAccounts struct{}

func (offlineAccounts) GetByID(context.Context, string) (*domain.Account, error) {
	return nil, domain.ErrNotFound
}
