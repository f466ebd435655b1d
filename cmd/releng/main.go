// Releng — инструмент командной строки для автоматизации release-задач:
// создание release-веток, перевод дескриптора на следующую версию,
// отчёт об изменениях feature-флагов.
//
// Использование:
//
//	releng [--log-level LEVEL] [--config PATH] [--json] <command> [flags]
//
// Команды:
//
//	run   Выполнить release-задачи
//	list  Показать зарегистрированные задачи
//
// Токен доступа к GitHub берётся из переменной окружения
// GITHUB_ACCESS_TOKEN. Адрес Pushgateway для метрик запуска —
// из RELENG_PUSHGATEWAY (необязательно).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/releng/internal/catalog"
	"github.com/shaiso/releng/internal/config"
	"github.com/shaiso/releng/internal/ghclient"
	"github.com/shaiso/releng/internal/harness"
	"github.com/shaiso/releng/internal/state"
	"github.com/shaiso/releng/internal/tasks"
	"github.com/shaiso/releng/internal/telemetry"
)

// PushgatewayEnv — переменная окружения с адресом Pushgateway.
const PushgatewayEnv = "RELENG_PUSHGATEWAY"

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var logLevel string
	var configPath string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "releng",
		Short:         "Releng — release automation tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (fatal, error, warn, info, debug)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default releng.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Log in JSON format")

	rootCmd.AddCommand(
		newRunCmd(&logLevel, &configPath, &jsonOutput),
		newListCmd(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRunCmd создаёт команду выполнения release-задач.
func newRunCmd(logLevel, configPath *string, jsonOutput *bool) *cobra.Command {
	var taskNames []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run release tasks",
		Long:  "Runs the requested release tasks in order. Without --tasks, all registered tasks run in name order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// логирование настраивается раньше всего остального,
			// чтобы были видны проблемы загрузки каталога и задач
			level, err := telemetry.ParseLevel(*logLevel)
			if err != nil {
				return err
			}
			logger := telemetry.Setup(level, *jsonOutput)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Repository == "" {
				return fmt.Errorf("repository is not configured (set repository in %s)", config.DefaultPath)
			}

			current, err := catalog.LoadCurrentRelease(cfg.DescriptorPath, logger)
			if err != nil {
				return err
			}
			logger.Info("current release", "release", current.String())

			releases, err := catalog.LoadFile(cfg.CatalogPath, logger)
			if err != nil {
				return err
			}

			st := state.New(logger, current, releases)

			registry, err := tasks.Default(cfg, ghclient.NewFromEnv(cfg.Repository))
			if err != nil {
				return err
			}
			st.Logger.Info("loaded tasks",
				"count", registry.Count(),
				"tasks", strings.Join(registry.Names(), ", "))

			metrics := harness.NewMetrics(st.RunID.String())
			h := harness.New(harness.Config{
				Registry: registry,
				State:    st,
				Metrics:  metrics,
			})

			runErr := h.Run(cmd.Context(), taskNames)

			if gateway := os.Getenv(PushgatewayEnv); gateway != "" {
				if err := metrics.Push(gateway); err != nil {
					st.Logger.Warn("could not push run metrics", "gateway", gateway, "error", err)
				}
			}

			if runErr != nil {
				st.Logger.Log(cmd.Context(), telemetry.LevelFatal, "run aborted", "error", runErr)
			}
			return runErr
		},
	}

	cmd.Flags().StringSliceVar(&taskNames, "tasks", nil, "Tasks to run, in order (default: all registered tasks)")

	return cmd
}

// newListCmd создаёт команду вывода зарегистрированных задач.
func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			// клиент задачам здесь не понадобится — задачи только перечисляются
			registry, err := tasks.Default(cfg, ghclient.NewFromEnv(cfg.Repository))
			if err != nil {
				return err
			}

			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
