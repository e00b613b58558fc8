package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/crypto-analyzer/internal/analysis"
	"github.com/ducminhle1904/crypto-analyzer/internal/config"
	"github.com/ducminhle1904/crypto-analyzer/internal/exchange/bybit"
	"github.com/ducminhle1904/crypto-analyzer/internal/indicators"
	"github.com/ducminhle1904/crypto-analyzer/internal/monitoring"
	"github.com/ducminhle1904/crypto-analyzer/pkg/data"
	"github.com/ducminhle1904/crypto-analyzer/pkg/reporting"
)

const (
	AppName    = "Crypto Analyzer"
	AppVersion = "1.0.0"
)

func main() {
	var (
		symbol      = flag.String("symbol", "", "Trading symbol (e.g. BTCUSDT), overrides env")
		interval    = flag.String("interval", "", "Candle interval (1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w), overrides env")
		category    = flag.String("category", "", "Market category (spot, linear, inverse), overrides env")
		period      = flag.String("period", "", "Trailing period to analyze (e.g. 90d, 365d)")
		startDate   = flag.String("start", "", "Start date (YYYY-MM-DD), overrides -period")
		endDate     = flag.String("end", "", "End date (YYYY-MM-DD), default now")
		dataFile    = flag.String("data", "", "CSV file or data directory with historical candles (skips the exchange fetch)")
		format      = flag.String("format", "console", "Report format: console or json")
		jsonOut     = flag.String("json-out", "", "Write report JSON to this path")
		csvOut      = flag.String("csv-out", "", "Write detected events CSV to this path")
		excelOut    = flag.String("excel-out", "", "Write full analysis workbook to this path")
		envFile     = flag.String("env", ".env", "Environment file to load")
		metricsPort = flag.Int("metrics-port", 0, "Serve Prometheus metrics on this port (0 = off)")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	loadEnvironment(*envFile)
	cfg := config.Load()
	applyFlagOverrides(cfg, *symbol, *interval, *category)

	health := monitoring.NewHealthChecker()
	if *metricsPort > 0 {
		go serveMetrics(*metricsPort, health)
	}

	start, end, err := resolveRange(cfg, *period, *startDate, *endDate)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	provider, client := buildProvider(cfg, *dataFile)
	req := data.Request{
		Symbol:   cfg.Analysis.Symbol,
		Interval: cfg.Analysis.Interval,
		Category: cfg.Analysis.Category,
		Start:    start,
		End:      end,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	series, err := provider.GetHistoricalData(ctx, req)
	if err != nil {
		log.Fatalf("❌ Failed to load %s data: %v", req.Symbol, err)
	}

	runStart := time.Now()
	result, err := analysis.New().Analyze(req.Symbol, series)
	health.MarkRun(req.Symbol, err)
	if err != nil {
		monitoring.RecordAnalysis(req.Symbol, "error", time.Since(runStart).Seconds())
		log.Fatalf("❌ Analysis failed: %v", err)
	}
	recordRunMetrics(req.Symbol, result, time.Since(runStart))

	if client != nil && *format == "console" {
		if ticker, err := client.GetLatestTicker(ctx, req.Category, req.Symbol); err == nil {
			log.Printf("💹 Live %s price: $%.2f (last close $%.2f)",
				ticker.Symbol, ticker.Price, result.Report.CurrentPrice)
		} else {
			log.Printf("⚠️ Could not fetch live ticker: %v", err)
		}
	}

	if err := render(result, *format, *jsonOut, *csvOut, *excelOut, req); err != nil {
		log.Fatalf("❌ Failed to write report: %v", err)
	}

	if *metricsPort > 0 {
		log.Printf("📊 Metrics served on :%d, press Ctrl+C to exit", *metricsPort)
		select {}
	}
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Could not load %s: %v", envFile, err)
		}
		return
	}
	log.Printf("✅ Environment loaded from %s", envFile)
}

func applyFlagOverrides(cfg *config.Config, symbol, interval, category string) {
	if symbol != "" {
		cfg.Analysis.Symbol = symbol
	}
	if interval != "" {
		cfg.Analysis.Interval = interval
	}
	if category != "" {
		cfg.Analysis.Category = category
	}
}

func resolveRange(cfg *config.Config, period, startDate, endDate string) (time.Time, time.Time, error) {
	end := time.Now()
	if endDate != "" {
		parsed, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		end = parsed
	}

	if startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		return start, end, nil
	}

	if period != "" {
		d, ok := data.ParseTrailingPeriod(period)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q (use 7d, 30d, 365d)", period)
		}
		return end.Add(-d), end, nil
	}

	return end.AddDate(0, 0, -cfg.Analysis.Days), end, nil
}

// buildProvider returns the data source plus the exchange client when one is
// in play; CSV runs return a nil client.
func buildProvider(cfg *config.Config, dataFile string) (data.Provider, *bybit.Client) {
	if dataFile != "" {
		path := dataFile
		if info, err := os.Stat(dataFile); err == nil && info.IsDir() {
			located, ok := data.LocateCSV(dataFile, data.Request{
				Symbol:   cfg.Analysis.Symbol,
				Interval: cfg.Analysis.Interval,
				Category: cfg.Analysis.Category,
			})
			if !ok {
				log.Fatalf("❌ No candle export for %s %s under %s",
					cfg.Analysis.Symbol, cfg.Analysis.Interval, dataFile)
			}
			path = located
		}
		return data.NewCachedProvider(data.NewCSVProvider(path)), nil
	}

	client := bybit.NewClient(bybit.Config{
		APIKey:    cfg.Exchange.APIKey,
		APISecret: cfg.Exchange.Secret,
		Testnet:   cfg.Exchange.Testnet,
	})
	return data.NewCachedProvider(data.NewBybitProvider(client)), client
}

func recordRunMetrics(symbol string, result *analysis.Result, elapsed time.Duration) {
	monitoring.RecordAnalysis(symbol, "ok", elapsed.Seconds())
	monitoring.UpdateSeriesLength(symbol, result.Indicators.Length)
	for _, ev := range result.Events {
		monitoring.RecordEvent(symbol, ev.Kind.String())
	}
	if rsi, ok := result.Report.Indicators[indicators.RSI14]; ok {
		monitoring.UpdateRSI(symbol, rsi)
	}
}

func render(result *analysis.Result, format, jsonOut, csvOut, excelOut string, req data.Request) error {
	switch format {
	case "json":
		if err := reporting.PrintReportJSON(result.Report); err != nil {
			return err
		}
	case "console":
		console := reporting.NewConsoleReporter()
		console.PrintReport(result.Report)
		console.PrintWarnings(result.Indicators.Warnings)
	default:
		return fmt.Errorf("unknown format %q (use console or json)", format)
	}

	outDir := reporting.DefaultOutputDir(req.Symbol, req.Interval)

	if jsonOut != "" {
		path := resolveOutPath(jsonOut, outDir)
		if err := reporting.WriteReportJSON(result.Report, path); err != nil {
			return err
		}
		log.Printf("📄 Report JSON written to %s", path)
	}
	if csvOut != "" {
		path := resolveOutPath(csvOut, outDir)
		if err := reporting.WriteEventsCSV(result.Events, path); err != nil {
			return err
		}
		log.Printf("📄 Events CSV written to %s", path)
	}
	if excelOut != "" {
		path := resolveOutPath(excelOut, outDir)
		if err := reporting.NewExcelReporter().WriteReportXLSX(result, path); err != nil {
			return err
		}
		log.Printf("📄 Analysis workbook written to %s", path)
	}
	return nil
}

// resolveOutPath places bare filenames into the default output directory;
// explicit paths are kept as-is.
func resolveOutPath(out, defaultDir string) string {
	if filepath.Dir(out) != "." {
		return out
	}
	return filepath.Join(defaultDir, out)
}

func serveMetrics(port int, health *monitoring.HealthChecker) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())
	mux.Handle("/health", health)

	addr := fmt.Sprintf(":%d", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("⚠️ Metrics server stopped: %v", err)
	}
}
