package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nconklindev/hitlisten/internal/config"
	"github.com/nconklindev/hitlisten/internal/logging"
	"github.com/nconklindev/hitlisten/internal/pipeline"
	"github.com/nconklindev/hitlisten/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var workbook string

	root := &cobra.Command{
		Use:           "hitlisten",
		Short:         "Group size and statistical power analysis for Hitlisten workbooks",
		Version:       fmt.Sprintf("%s\ncommit: %s\nbuilt: %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(workbook)
		},
	}
	root.SetVersionTemplate("hitlisten {{.Version}}\n")
	root.Flags().StringVarP(&workbook, "workbook", "w", "", "open this workbook instead of showing the file picker")

	root.AddCommand(newAnalyzeCmd())
	return root
}

func runTUI(workbook string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs go to a file
	logFile := os.Getenv("HITLISTEN_LOG_FILE")
	if logFile == "" {
		logFile = "hitlisten.log"
	}
	f, err := tea.LogToFile(logFile, "hitlisten")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	log := logging.Setup(f)
	log.Info("starting", "version", version, "root", cfg.Root)

	p := tea.NewProgram(ui.InitialModel(cfg, log, workbook), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func newAnalyzeCmd() *cobra.Command {
	var (
		workbook string
		chart    bool
		export   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the analysis headless and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Setup(os.Stderr)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path := workbook
			if path == "" {
				path = cfg.WorkbookPath()
			}

			result, err := pipeline.Run(cfg, path, log, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pipeline.Report(result))

			if chart {
				if err := save(log, "chart", cfg, result, pipeline.SaveChart); err != nil {
					return err
				}
			}
			if export {
				if err := save(log, "export", cfg, result, pipeline.SaveExport); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&workbook, "workbook", "w", "", "workbook path (default: data/raw/<HITLISTEN_WORKBOOK>)")
	cmd.Flags().BoolVar(&chart, "chart", false, "save the group comparison chart to data/processed")
	cmd.Flags().BoolVar(&export, "export", false, "save the results workbook to data/processed")
	return cmd
}

func save(log *slog.Logger, what string, cfg *config.Config, r *pipeline.Result, fn func(*config.Config, *pipeline.Result) (string, error)) error {
	path, err := fn(cfg, r)
	if err != nil {
		return err
	}
	log.Info("saved", "what", what, "path", path)
	return nil
}
