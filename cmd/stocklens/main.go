// StockLens — stock sentiment analysis dashboard.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanjaynv/stocklens/api"
	"github.com/sanjaynv/stocklens/internal/analyzer"
	"github.com/sanjaynv/stocklens/internal/config"
	"github.com/sanjaynv/stocklens/internal/providers/fmp"
	"github.com/sanjaynv/stocklens/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stocklens",
	Short: "StockLens — stock sentiment analysis dashboard",
	Long: `StockLens analyzes a stock's recent news sentiment and serves a
dashboard combining company profile, keyword-classified headlines, and a
30-day price chart. Runs on live Financial Modeling Prep data when a key
is configured, and on synthetic demo data otherwise.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("StockLens %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [symbol]",
	Short: "Analyze a stock's news sentiment",
	Long:  "Fetch profile and news for a symbol, classify headline sentiment, and print the analysis.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := analyzer.New(fmp.New(cfg.FMP.APIKey), nil, cfg.Analysis.NewsLimit)
		result, err := a.Analyze(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("%s (%s)\n", result.Name, result.Symbol)
		fmt.Printf("  Price:      $%s\n", result.Price)
		fmt.Printf("  Market Cap: %s\n", utils.FormatMarketCap(result.MarketCap))
		fmt.Printf("  Sector:     %s\n", result.Sector)
		fmt.Printf("  Sentiment:  %s\n", result.SentimentScore)
		fmt.Printf("  Source:     %s\n\n", result.DataSource)
		fmt.Println("Recent news:")
		for _, a := range result.News {
			fmt.Printf("  [%s] %s (%s, %s)\n", a.Sentiment, a.Title, a.Source, a.PublishedDate)
		}
		fmt.Printf("\n%s\n", result.Summary)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "print the raw analysis result as JSON")
}

// --- Chart Command ---

var chartCmd = &cobra.Command{
	Use:   "chart [symbol]",
	Short: "Print the 30-day price series for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := analyzer.New(fmp.New(cfg.FMP.APIKey), nil, cfg.Analysis.NewsLimit)
		series, err := a.Chart(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, p := range series {
			fmt.Printf("%s  %10.2f  vol %d\n", p.Date, p.Price, p.Volume)
		}
		return nil
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := api.NewServer(cfg)
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			srv.SetServeUI(false)
		}
		fmt.Printf("Starting StockLens server on %s\n", cfg.API.Addr())
		return srv.ListenAndServe(cfg.API.Addr())
	},
}

func init() {
	serveCmd.Flags().Bool("no-ui", false, "serve only the API, without the embedded dashboard")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  StockLens — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:     %s (%s)\n", version, commit)
		fmt.Printf("  API Server:  %s\n", cfg.API.Addr())
		mode := "mock (demo data)"
		if fmp.New(cfg.FMP.APIKey).Configured() {
			mode = "live (Financial Modeling Prep)"
		}
		fmt.Printf("  Data Mode:   %s\n", mode)
		fmt.Printf("  RSS Feeds:   %d configured\n", len(cfg.News.Feeds))
		fmt.Println()

		fmt.Println("  API Keys:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "not set"
			if k.IsSet {
				status = fmt.Sprintf("set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-15s %s\n", k.Name+":", status)
		}
		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}
