package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	householdcarbon "github.com/superdango/household-carbon"
	"github.com/superdango/household-carbon/internal/demo"
	"github.com/superdango/household-carbon/model/household"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx := context.Background()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])

		flag.PrintDefaults()

		fmt.Fprint(os.Stderr, "\nProfile format (yaml or json):\n")
		fmt.Fprint(os.Stderr, "  households:\n")
		fmt.Fprint(os.Stderr, "    - name: the smiths\n")
		fmt.Fprint(os.Stderr, "      state: TX\n")
	}

	flagProfile := ""
	flagOutput := ""
	flagDemoEnabled := ""
	flagDemoCount := 0
	flagLogLevel := ""
	flagLogFormat := ""

	flag.StringVar(&flagProfile, "profile", "", "yaml or json file describing households")
	flag.StringVar(&flagOutput, "output", "openmetrics", "output format (openmetrics, json)")
	flag.StringVar(&flagDemoEnabled, "demo.enabled", "false", "estimate fictive demo households")
	flag.IntVar(&flagDemoCount, "demo.count", 1, "number of fictive demo households")
	flag.StringVar(&flagLogLevel, "log.level", "info", "log severity (debug, info, warn, error)")
	flag.StringVar(&flagLogFormat, "log.format", "text", "log format (text, json)")

	flag.Parse()

	initLogging(flagLogLevel, flagLogFormat)

	households := loadHouseholds(flagProfile, flagDemoEnabled, flagDemoCount)

	if err := run(ctx, os.Stdout, households, flagOutput); err != nil {
		slog.Error("failed to estimate households emissions", "err", err)
		os.Exit(1)
	}

	slog.Info("households emissions have been successfully estimated", "households", len(households))
}

func initLogging(logLevel string, logFormat string) {
	switch logFormat {
	case "text":
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:   slogLevel(logLevel),
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})))
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(logLevel),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Key = "severity"
					return a
				case slog.MessageKey:
					a.Key = "message"
					return a
				default:
					return a
				}
			},
		})))
	}
}

func loadHouseholds(profile string, demoEnabled string, demoCount int) []household.Household {
	if demoEnabled == "true" {
		if demoCount <= 1 {
			return []household.Household{demo.NewHousehold()}
		}
		return demo.NewHouseholds(demoCount)
	}

	if profile == "" {
		slog.Error("profile is not set")
		flag.PrintDefaults()
		os.Exit(1)
	}

	households, err := household.LoadProfiles(profile)
	if err != nil {
		slog.Error("failed to load profile", "profile", profile, "err", err)
		os.Exit(1)
	}

	return households
}

func run(ctx context.Context, w io.Writer, households []household.Household, output string) error {
	if output != "openmetrics" && output != "json" {
		return fmt.Errorf("unsupported output format: %q", output)
	}

	footprints := make(chan household.Footprint)

	errg, errgctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		return household.EstimateAll(errgctx, households, footprints)
	})

	switch output {
	case "openmetrics":
		metrics := make(chan *householdcarbon.Metric)
		errg.Go(func() error {
			defer close(metrics)
			for footprint := range footprints {
				for _, metric := range footprint.Metrics() {
					metrics <- metric
				}
			}
			return nil
		})
		errg.Go(func() error {
			err := householdcarbon.WriteOpenMetrics(errgctx, w, metrics)
			// unblock the producers
			for range metrics {
			}
			return err
		})
	case "json":
		errg.Go(func() error {
			all := make([]household.Footprint, 0, len(households))
			for footprint := range footprints {
				all = append(all, footprint)
			}
			if errgctx.Err() != nil {
				return nil
			}
			slices.SortFunc(all, func(a, b household.Footprint) int {
				return strings.Compare(a.Household, b.Household)
			})

			encoder := json.NewEncoder(w)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(all); err != nil {
				return fmt.Errorf("failed to write json footprints: %w", err)
			}
			return nil
		})
	}

	return errg.Wait()
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
