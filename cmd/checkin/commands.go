package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/checkin-tracker/internal/attendance"
	"github.com/username/checkin-tracker/internal/config"
	"github.com/username/checkin-tracker/internal/delivery"
	"github.com/username/checkin-tracker/internal/report"
	"github.com/username/checkin-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

// resolveMonth parses an optional YYYY-MM argument, defaulting to the
// current month
func resolveMonth(args []string) (int, time.Month, error) {
	if len(args) > 0 {
		return dateutil.ParseMonth(args[0])
	}
	today := dateutil.Today()
	return today.Year(), today.Month(), nil
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [YYYY-MM]",
		Short: "Show the attendance calendar for a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := resolveMonth(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store, err := initStore(cfg)
			if err != nil {
				return err
			}

			ma, err := store.LoadOrInit(year, month)
			if err != nil {
				return fmt.Errorf("failed to load month: %w", err)
			}

			fmt.Printf("📅 %d-%02d\n", year, int(month))
			fmt.Println("═══════════════════════════")
			for _, rec := range ma {
				date, err := dateutil.ParseDate(rec.Date)
				if err != nil {
					return err
				}
				fmt.Printf("  %s %s  %s\n", rec.Date, date.Format("Mon"), rec.Status.Text())
			}
			fmt.Println("───────────────────────────")
			fmt.Printf("  全勤 %d  半天 %d  加班 %d  缺勤 %d  工作人天 %d\n",
				ma.CountByStatus(attendance.StatusFull),
				ma.CountByStatus(attendance.StatusHalf),
				ma.CountByStatus(attendance.StatusOvertime),
				ma.CountByStatus(attendance.StatusAbsent),
				ma.WorkedDays())

			return nil
		},
	}
}

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <YYYY-MM-DD>",
		Short: "Advance the attendance status of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store, err := initStore(cfg)
			if err != nil {
				return err
			}

			ma, err := store.LoadOrInit(date.Year(), date.Month())
			if err != nil {
				return fmt.Errorf("failed to load month: %w", err)
			}

			updated, err := store.ApplyToggle(ma, date)
			if err != nil {
				return fmt.Errorf("failed to toggle %s: %w", args[0], err)
			}

			idx := updated.IndexOf(date.Format("2006-01-02"))
			fmt.Printf("✅ %s: %s → %s\n", args[0], ma[idx].Status.Text(), updated[idx].Status.Text())

			return nil
		},
	}
}

// reportFlags are the per-invocation overrides for the report header fields
type reportFlags struct {
	name     string
	position string
	email    string
}

func (rf *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rf.name, "name", "", "Employee name (overrides config)")
	cmd.Flags().StringVar(&rf.position, "position", "", "Position (overrides config)")
	cmd.Flags().StringVar(&rf.email, "email", "", "Recipient email (overrides config)")
}

func (rf *reportFlags) apply(cfg *config.Config) (name, position, email string) {
	name = cfg.Employee.Name
	position = cfg.Employee.Position
	email = cfg.Employee.Email
	if rf.name != "" {
		name = rf.name
	}
	if rf.position != "" {
		position = rf.position
	}
	if rf.email != "" {
		email = rf.email
	}
	return name, position, email
}

// generateReport loads the month and runs the report pipeline shared by
// the export and send commands
func generateReport(cfg *config.Config, flags *reportFlags, year int, month time.Month) (*report.Artifact, error) {
	store, err := initStore(cfg)
	if err != nil {
		return nil, err
	}

	ma, err := store.LoadOrInit(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month: %w", err)
	}

	name, position, email := flags.apply(cfg)
	generator := report.NewGenerator(
		report.NewHTTPTemplateFetcher(cfg.Report.TemplateURL, logger),
		logger,
	)

	return generator.Generate(report.Request{
		Attendance:     ma,
		Year:           year,
		Month:          month,
		Position:       position,
		EmployeeName:   name,
		RecipientEmail: email,
	})
}

func exportCmd() *cobra.Command {
	flags := &reportFlags{}
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Generate the timesheet and save it locally",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := resolveMonth(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			artifact, err := generateReport(cfg, flags, year, month)
			if err != nil {
				return fmt.Errorf("report was not generated: %w", err)
			}

			dir := cfg.Report.OutputDir
			if outputDir != "" {
				dir = outputDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}

			path := filepath.Join(dir, artifact.FileName)
			if err := os.WriteFile(path, artifact.FileBytes, 0644); err != nil {
				return fmt.Errorf("failed to write report file: %w", err)
			}

			logger.Info("Report exported",
				zap.String("path", path),
				zap.Int("worked_days", artifact.WorkedDays))
			fmt.Printf("✅ Exported %s\n", path)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")

	return cmd
}

func sendCmd() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "send [YYYY-MM]",
		Short: "Generate the timesheet and send it by email",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := resolveMonth(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.Delivery.Endpoint == "" {
				return fmt.Errorf("delivery.endpoint is required for send")
			}

			artifact, err := generateReport(cfg, flags, year, month)
			if err != nil {
				return fmt.Errorf("report was not generated: %w", err)
			}

			client := delivery.NewClient(cfg.Delivery.Endpoint, logger)
			if err := client.Send(delivery.Message{
				To:        artifact.RecipientEmail,
				Subject:   artifact.Subject,
				Text:      artifact.BodyText,
				FileName:  artifact.FileName,
				FileBytes: artifact.FileBytes,
			}); err != nil {
				return fmt.Errorf("report generated but delivery failed: %w", err)
			}

			fmt.Printf("✅ Sent %s to %s\n", artifact.FileName, artifact.RecipientEmail)

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
