package main

import (
	"Hoard/cmd"
	"Hoard/database"
	"Hoard/internal/config"
	"Hoard/internal/dto"
	"Hoard/internal/server"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configurationPath string

// Provider loads the yaml configuration, falling back to the defaults when
// the file does not exist.
func Provider(path string) (*config.Configuration, error) {
	cfg, err := config.LoadConfiguration(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "hoard",
		Short:         "Personal inventory store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configurationPath, "config", "c", "hoard.yaml", "path to the configuration file")
	rootCmd.AddCommand(serveCommand(), exportCommand(), importCommand(), cleanCommand(), statsCommand())

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// withServer builds the dependency graph for one command and closes the
// database afterwards.
func withServer(run func(ctx context.Context, s *cmd.Server) error) error {
	s, err := InitializeServer(configurationPath)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer database.CloseDatabase(s.DB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, s)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled janitor",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withServer(func(ctx context.Context, s *cmd.Server) error {
				if err := s.JanitorService.StartCleanCycle(); err != nil {
					return err
				}
				defer s.JanitorService.StopClean()

				app := server.NewApp(s)
				go func() {
					<-ctx.Done()
					if err := app.Shutdown(); err != nil {
						s.LogService.Log.WithError(err).Error("shutdown failed")
					}
				}()

				s.LogService.Log.WithFields(logrus.Fields{
					"port": s.Configuration.Server.Port,
				}).Info("listening")
				if err := app.Listen(fmt.Sprintf(":%d", s.Configuration.Server.Port)); err != nil {
					return fmt.Errorf("failed to start server: %w", err)
				}
				return nil
			})
		},
	}
}

func exportCommand() *cobra.Command {
	var out string
	var backup bool
	command := &cobra.Command{
		Use:   "export",
		Short: "Write the whole store as an export document",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withServer(func(ctx context.Context, s *cmd.Server) error {
				if out == "" && !backup {
					document, err := s.ExchangeService.Export(ctx)
					if err != nil {
						return err
					}
					return printJSON(document)
				}
				document, err := s.ExchangeService.ExportFile(ctx, out)
				if err != nil {
					return err
				}
				s.LogService.Log.WithFields(logrus.Fields{
					"path":     out,
					"backup":   backup,
					"items":    document.Metadata.TotalItems,
					"sections": document.Metadata.TotalSections,
				}).Info("export written")
				return nil
			})
		},
	}
	command.Flags().StringVarP(&out, "out", "o", "", "file to write, stdout when empty")
	command.Flags().BoolVar(&backup, "backup", false, "write a dated backup into the storage folder")
	return command
}

func importCommand() *cobra.Command {
	var file, mode string
	command := &cobra.Command{
		Use:   "import",
		Short: "Load an export document into the store",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withServer(func(ctx context.Context, s *cmd.Server) error {
				result, err := s.ExchangeService.ImportFile(ctx, file, dto.ImportMode(mode))
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "export document to import")
	command.Flags().StringVarP(&mode, "mode", "m", string(dto.ImportMerge), "merge or replace")
	_ = command.MarkFlagRequired("file")
	return command
}

func cleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Run one janitor cycle",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withServer(func(ctx context.Context, s *cmd.Server) error {
				report, err := s.JanitorService.RunCleanCycle(ctx)
				if report != nil {
					if printErr := printJSON(report); printErr != nil {
						return printErr
					}
				}
				return err
			})
		},
	}
}

func statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print inventory statistics",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withServer(func(ctx context.Context, s *cmd.Server) error {
				stats, err := s.StatisticsService.Statistics(ctx)
				if err != nil {
					return err
				}
				return printJSON(stats)
			})
		},
	}
}
