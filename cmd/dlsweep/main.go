package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/IvanShishkin/dlsweep/internal/classify"
	"github.com/IvanShishkin/dlsweep/internal/config"
	"github.com/IvanShishkin/dlsweep/internal/filesystem"
	"github.com/IvanShishkin/dlsweep/internal/organizer"
	"github.com/IvanShishkin/dlsweep/internal/report"
	"github.com/IvanShishkin/dlsweep/internal/stats"
	"github.com/IvanShishkin/dlsweep/pkg/models"
	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorOrange = "\033[38;5;208m"
	colorYellow = "\033[38;5;220m"
	colorGray   = "\033[38;5;245m"
	colorCyan   = "\033[36m"
)

var (
	version    = "0.1.0"
	logger     *zap.Logger
	verbose    bool
	configFile string
	rootDir    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dlsweep",
		Short: "dlsweep - Downloads folder organizer",
		Long: `Keeps a downloads folder tidy: moves stale entries into category folders,
summarizes disk usage and lists the most recently downloaded files.`,
		Version:       version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			printMainBanner()
			cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Downloads directory (default: ~/Downloads)")

	// Disable built-in help command
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Add commands
	rootCmd.AddCommand(organizeCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(recentCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(helpCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a development logger when verbose, otherwise a silent
// JSON logger that only reports errors
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	return cfg.Build()
}

// reportFlags are the output flags shared by every tool
type reportFlags struct {
	format string
	output string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "report", "r", "", "Report format: text, json, md (default: console output)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path")
}

func (f *reportFlags) apply(cfg *config.Config) {
	if f.format != "" {
		cfg.ReportFormat = f.format
	}
	if f.output != "" {
		cfg.OutputFile = f.output
	}
}

// loadConfig loads the configuration and applies the global flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return nil, err
	}
	if rootDir != "" {
		cfg.Root = config.ExpandHome(rootDir)
	}
	return cfg, nil
}

// validate reports an invalid configuration to the user
func validate(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		fmt.Printf("\n  %s✗ Invalid parameter:%s %s\n\n", colorRed, colorReset, err.Error())
		return err
	}
	return nil
}

// openRoot opens the configured root. A root that does not exist is
// reported to the user and yields a nil filesystem without an error.
func openRoot(cfg *config.Config) (billy.Filesystem, error) {
	fsys, err := filesystem.OpenRoot(cfg.Root)
	if err != nil {
		if errors.Is(err, filesystem.ErrRootNotFound) || errors.Is(err, filesystem.ErrNotDirectory) {
			fmt.Printf("\n  %s✗ Directory not found:%s %s\n\n", colorRed, colorReset, cfg.Root)
			logger.Error("Root unavailable", zap.String("root", cfg.Root), zap.Error(err))
			return nil, nil
		}
		return nil, err
	}
	return fsys, nil
}

// printReportPath prints where a report file was written
func printReportPath(path string) {
	if path != "" {
		fmt.Printf("  %sReport:%s    %s%s%s\n\n", colorGray, colorReset, colorOrange, path, colorReset)
	}
}

// organizeCmd creates the organize command
func organizeCmd() *cobra.Command {
	var (
		ageHours  float64
		dryRun    bool
		rulesPath string
		rf        reportFlags
	)

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Move stale entries into category folders",
		Long: `Move every top-level entry older than the age threshold into a category
folder chosen by its extension. Directories go to Folders, unknown types to Misc.
Name collisions get a timestamp suffix; nothing is ever overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Override config with CLI flags
			if cmd.Flags().Changed("age-hours") {
				cfg.AgeThresholdHours = ageHours
			}
			if dryRun {
				cfg.DryRun = true
			}
			if rulesPath != "" {
				cfg.RulesPath = config.ExpandHome(rulesPath)
			}
			rf.apply(cfg)

			if err := validate(cfg); err != nil {
				return err
			}

			rules, err := classify.NewLoader(cfg.RulesPath).Load()
			if err != nil {
				fmt.Printf("\n  %s✗ Invalid rules:%s %s\n\n", colorRed, colorReset, err.Error())
				return err
			}

			fsys, err := openRoot(cfg)
			if err != nil || fsys == nil {
				return err
			}

			printBanner(fsys.Root(), cfg)

			org := organizer.NewOrganizer(cfg, rules, fsys, logger)
			org.SetEventCallback(func(m *models.MoveResult) {
				switch {
				case m.Failed():
					fmt.Printf("  %s✗ Error moving %s:%s %s\n", colorRed, m.Name, colorReset, m.Error)
				case cfg.DryRun:
					fmt.Printf("  %sWould move:%s %s %s->%s %s\n", colorGray, colorReset, m.Name, colorGray, colorReset, m.Destination)
				default:
					fmt.Printf("  %sMoved:%s %s %s->%s %s\n", colorGreen, colorReset, m.Name, colorGray, colorReset, m.Destination)
				}
			})

			var results *models.OrganizeResults
			if cfg.DryRun {
				results, err = org.Plan(cmd.Context())
			} else {
				results, err = org.Organize(cmd.Context())
			}
			if err != nil {
				logger.Error("Organize failed", zap.Error(err))
				return err
			}

			generator, err := report.NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			path, err := generator.GenerateOrganize(results)
			if err != nil {
				logger.Error("Failed to generate report", zap.Error(err))
				return err
			}
			printReportPath(path)

			return nil
		},
	}

	cmd.Flags().Float64Var(&ageHours, "age-hours", 24, "Minimum age in hours before an entry is moved")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be moved without moving anything")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML category rules file (default: built-in table)")
	rf.register(cmd)

	return cmd
}

// statsCmd creates the stats command
func statsCmd() *cobra.Command {
	var rf reportFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show size and age statistics for the downloads folder",
		Long: `Summarize every visible file under the root: total size, file count and the
oldest and newest file, plus the same figures per first-level subdirectory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rf.apply(cfg)
			if err := validate(cfg); err != nil {
				return err
			}

			fsys, err := openRoot(cfg)
			if err != nil || fsys == nil {
				return err
			}

			result, err := stats.NewCollector(fsys, logger).Collect(cmd.Context())
			if err != nil {
				logger.Error("Stats failed", zap.Error(err))
				return err
			}

			generator, err := report.NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			path, err := generator.GenerateStats(result)
			if err != nil {
				logger.Error("Failed to generate report", zap.Error(err))
				return err
			}
			printReportPath(path)

			return nil
		},
	}

	rf.register(cmd)
	return cmd
}

// recentCmd creates the recent command
func recentCmd() *cobra.Command {
	var rf reportFlags

	cmd := &cobra.Command{
		Use:   "recent [limit]",
		Short: "List the most recently downloaded files",
		Long:  `List the most recent files anywhere under the root, newest first (default: 10).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				limit, err := parseLimit(args[0])
				if err != nil {
					return err
				}
				cfg.RecentLimit = limit
			}
			rf.apply(cfg)
			if err := validate(cfg); err != nil {
				return err
			}

			fsys, err := openRoot(cfg)
			if err != nil || fsys == nil {
				return err
			}

			result, err := stats.NewCollector(fsys, logger).Recent(cmd.Context(), cfg.RecentLimit)
			if err != nil {
				logger.Error("Recent failed", zap.Error(err))
				return err
			}

			generator, err := report.NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			path, err := generator.GenerateRecent(result)
			if err != nil {
				logger.Error("Failed to generate report", zap.Error(err))
				return err
			}
			printReportPath(path)

			return nil
		},
	}

	rf.register(cmd)
	return cmd
}

// parseLimit parses the recent limit argument
func parseLimit(arg string) (int, error) {
	limit, err := strconv.Atoi(arg)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer (got: %s)", arg)
	}
	return limit, nil
}

// categoriesCmd creates the categories command
func categoriesCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the active category table",
		Long:  `Display the categories used by organize, in matching order, with their extensions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if rulesPath != "" {
				cfg.RulesPath = config.ExpandHome(rulesPath)
			}

			rules, err := classify.NewLoader(cfg.RulesPath).Load()
			if err != nil {
				fmt.Printf("\n  %s✗ Invalid rules:%s %s\n\n", colorRed, colorReset, err.Error())
				return err
			}

			source := "built-in"
			if cfg.RulesPath != "" {
				source = cfg.RulesPath
			}

			fmt.Println()
			fmt.Printf("%s%sCATEGORIES%s %s(%s)%s\n\n", colorBold, colorOrange, colorReset, colorGray, source, colorReset)
			for _, c := range rules.Categories() {
				matches := append([]string{}, c.Extensions...)
				for _, name := range c.Filenames {
					matches = append(matches, `"`+name+`"`)
				}
				fmt.Printf("  %s✓ %-12s%s %s\n", colorBold, c.Name, colorReset, strings.Join(matches, " "))
			}
			fmt.Println()
			fmt.Printf("  %s○ %-12s%s %sanything else%s\n", colorBold, classify.CategoryMisc, colorReset, colorGray, colorReset)
			fmt.Printf("  %s○ %-12s%s %sdirectories%s\n", colorBold, classify.CategoryFolders, colorReset, colorGray, colorReset)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML category rules file (default: built-in table)")
	return cmd
}
