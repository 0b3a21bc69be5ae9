package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpadapter "parcelrouting/internal/adapters/in/http"
	"parcelrouting/internal/core/application/usecases/queries"
	"parcelrouting/internal/core/domain/services"
	"parcelrouting/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the parcelrouting CLI with its serve and classify
// subcommands. Flags take precedence over PARCELS_* environment variables,
// which take precedence over the .env file.
func NewRootCommand() *cobra.Command {
	v := NewViper()
	var envFile string

	root := &cobra.Command{
		Use:           "parcelrouting",
		Short:         "Routes parcels to handling departments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return LoadDotEnv(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before reading the environment.")

	root.AddCommand(newServeCommand(v), newClassifyCommand())
	return root
}

func newServeCommand(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and the container status job",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}
			return serve(c.Context(), cfg)
		},
	}

	c.Flags().String("port", "", "HTTP port to listen on.")
	c.Flags().String("log-level", "", "Log level: debug, info, warn or error.")
	c.Flags().String("log-format", "", "Log format: console or json.")
	_ = v.BindPFlag(keyHTTPPort, c.Flags().Lookup("port"))
	_ = v.BindPFlag(keyLogLevel, c.Flags().Lookup("log-level"))
	_ = v.BindPFlag(keyLogFormat, c.Flags().Lookup("log-format"))
	return c
}

func serve(ctx context.Context, cfg Config) error {
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cfg.LogOutput})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewCompositionRoot(cfg, log)
	if err := app.Seed(ctx); err != nil {
		return fmt.Errorf("seeding departments: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("port", cfg.HTTPPort))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newClassifyCommand() *cobra.Command {
	var weight, value string

	c := &cobra.Command{
		Use:   "classify",
		Short: "Print the departments the default bands route a parcel to",
		RunE: func(c *cobra.Command, _ []string) error {
			w, err := decimal.NewFromString(weight)
			if err != nil {
				return fmt.Errorf("weight %q: %w", weight, err)
			}
			val, err := decimal.NewFromString(value)
			if err != nil {
				return fmt.Errorf("value %q: %w", value, err)
			}

			query, err := queries.NewClassifyParcelQuery(w, val)
			if err != nil {
				return err
			}
			view, err := queries.NewClassifyParcelQueryHandler(services.NewRuleResolver(nil)).Handle(c.Context(), query)
			if err != nil {
				return err
			}
			return printClassification(c.OutOrStdout(), view)
		},
	}

	c.Flags().StringVar(&weight, "weight", "", "Parcel weight in kilograms.")
	c.Flags().StringVar(&value, "value", "0", "Declared parcel value.")
	_ = c.MarkFlagRequired("weight")
	return c
}

func printClassification(w io.Writer, view queries.ClassificationView) error {
	lines := []string{
		describe("weight", view.Weight),
		describe("value", view.Value),
		fmt.Sprintf("requires insurance: %t", view.RequiresInsurance),
		"departments: " + strings.Join(view.Departments, ", "),
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func describe(axis string, r services.Resolution) string {
	department := r.Department
	if !r.Found() {
		department = "-"
	}
	return fmt.Sprintf("%s %s -> %s (%s)", axis, r.Measurement.String(), department, r.Source)
}
