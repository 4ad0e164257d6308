package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hirepath/earnings-engine/internal/api"
	"github.com/hirepath/earnings-engine/internal/calculation"
	"github.com/hirepath/earnings-engine/internal/domain"
	"github.com/hirepath/earnings-engine/internal/output"
	"github.com/hirepath/earnings-engine/internal/preset"
	"github.com/hirepath/earnings-engine/internal/refdata"
	"github.com/hirepath/earnings-engine/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "earnings %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// loadEngine builds an engine from the --data flag if set, otherwise
// from the embedded reference dataset.
func loadEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	dataDir, _ := cmd.Flags().GetString("data")

	var (
		ref *refdata.ReferenceData
		err error
	)
	if dataDir != "" {
		ref, err = refdata.Load(dataDir)
	} else {
		ref, err = refdata.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return calculation.NewEngine(ref), nil
}

var rootCmd = &cobra.Command{
	Use:   "earnings",
	Short: "Earnings and tax estimation engine CLI",
	Long:  "Localized wage ranges, weekly/annual earnings projections and take-home pay estimates for staffing roles",
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Run a calculator tool for a role and city",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		toolID, _ := cmd.Flags().GetString("tool")
		roleID, _ := cmd.Flags().GetString("role")
		citySlug, _ := cmd.Flags().GetString("city")
		hours, _ := cmd.Flags().GetString("hours")

		params := map[string]interface{}{
			"roleId":   roleID,
			"citySlug": citySlug,
		}
		if hours != "" {
			params["hoursPerWeek"] = hours
		}

		results, err := engine.ComputeVariants(toolID, params)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown output format: %s (valid: table, json, csv)", outputFormat)
		}
		data, err := f.Format(results)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available calculator tools",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		for _, cfg := range engine.Presets().List() {
			fmt.Printf("%-18s %s\n", cfg.ToolID, cfg.Description)
			fmt.Printf("%-18s default %s hrs/wk", "", cfg.DefaultHours.String())
			if len(cfg.VariantHours) > 0 {
				fmt.Print(", variants")
				for _, h := range cfg.VariantHours {
					fmt.Printf(" %s", h.String())
				}
			}
			if cfg.IncludeTaxes {
				fmt.Print(", with taxes")
			}
			fmt.Println()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		addr, _ := cmd.Flags().GetString("addr")
		router := api.NewRouter(api.NewHandler(engine))

		srv := &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}

		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil {
			log.Fatal(err)
		}
	},
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Solve the weekly hours needed to hit a net take-home target",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		roleID, _ := cmd.Flags().GetString("role")
		citySlug, _ := cmd.Flags().GetString("city")
		netStr, _ := cmd.Flags().GetString("net")

		target, err := decimal.NewFromString(netStr)
		if err != nil {
			log.Fatalf("invalid --net amount %q: %v", netStr, err)
		}

		solved, err := engine.SolveHoursForNet(roleID, citySlug, target, calculation.DefaultSolverOptions())
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Target net: $%s/week\n", target.StringFixed(2))
		fmt.Printf("Required schedule: %s hrs/week\n\n", solved.Hours.StringFixed(2))

		f := output.GetFormatterByName("table")
		data, err := f.Format([]*domain.CalculationResult{solved.Result})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal calculator",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		p := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Directory of reference data YAML files (default: embedded dataset)")

	computeCmd.Flags().StringP("tool", "t", preset.ToolWeeklyEarnings, "Tool to run (weekly-earnings, take-home-pay, localized-range)")
	computeCmd.Flags().StringP("role", "r", "", "Role id (required)")
	computeCmd.Flags().StringP("city", "c", "", "City slug (required)")
	computeCmd.Flags().String("hours", "", "Hours per week (default: tool preset)")
	computeCmd.Flags().StringP("format", "f", "table", "Output format (table, json, csv)")
	_ = computeCmd.MarkFlagRequired("role")
	_ = computeCmd.MarkFlagRequired("city")

	serveCmd.Flags().String("addr", ":8080", "Listen address")

	targetCmd.Flags().StringP("role", "r", "", "Role id (required)")
	targetCmd.Flags().StringP("city", "c", "", "City slug (required)")
	targetCmd.Flags().StringP("net", "n", "", "Net take-home target per week, in dollars (required)")
	_ = targetCmd.MarkFlagRequired("role")
	_ = targetCmd.MarkFlagRequired("city")
	_ = targetCmd.MarkFlagRequired("net")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
