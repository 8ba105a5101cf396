package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"SmartInvest/internal/di"
	domrepo "SmartInvest/internal/domain/repository"
	"SmartInvest/internal/services/advisor"
	"SmartInvest/pkg/config"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartinvest",
		Short: "Stock and crypto prediction API",
		Long: `smartinvest serves price projections, recommendations and insights
for stocks and crypto assets over HTTP.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "config file path")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(predictCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(backfillCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the alert scheduler",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("app initialization failed: %w", err)
	}
	defer cleanup()

	// blocks until SIGINT/SIGTERM
	return app.Run()
}

func predictCmd() *cobra.Command {
	var assetType string
	cmd := &cobra.Command{
		Use:   "predict <symbol>",
		Short: "Print the prediction, recommendation and insights for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset := domrepo.AssetType(strings.ToLower(assetType))
			if !domrepo.IsValidAssetType(asset) {
				return fmt.Errorf("asset type must be stock or crypto, got %q", assetType)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ms, cleanup, err := di.InitializeMarketService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p, err := ms.Predict(ctx, args[0], asset)
			if err != nil {
				return err
			}
			in, err := ms.Insights(ctx, args[0], asset)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{
				"prediction":     p,
				"recommendation": advisor.Recommend(p.Symbol, p),
				"insights":       in,
			})
		},
	}
	cmd.Flags().StringVarP(&assetType, "asset-type", "a", "stock", "asset type: stock or crypto")
	return cmd
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one alert sweep and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sweeper, cleanup, err := di.InitializeAlertSweeper(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := sweeper.Sweep(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func backfillCmd() *cobra.Command {
	var (
		assetType string
		days      int
	)
	cmd := &cobra.Command{
		Use:   "backfill <symbol>...",
		Short: "Copy daily bars from the upstream providers into ClickHouse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset := domrepo.AssetType(strings.ToLower(assetType))
			if !domrepo.IsValidAssetType(asset) {
				return fmt.Errorf("asset type must be stock or crypto, got %q", assetType)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			bf, cleanup, err := di.InitializeBackfill(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stored := make(map[string]int, len(args))
			for _, symbol := range args {
				n, err := bf.Run(ctx, symbol, asset, days)
				if err != nil {
					return fmt.Errorf("backfill %s: %w", symbol, err)
				}
				stored[strings.ToUpper(symbol)] = n
			}
			return printJSON(cmd, stored)
		},
	}
	cmd.Flags().StringVarP(&assetType, "asset-type", "a", "stock", "asset type: stock or crypto")
	cmd.Flags().IntVarP(&days, "days", "d", 365, "days of history to copy")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smartinvest version %s\n", version)
		},
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
