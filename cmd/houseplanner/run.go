package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ChicagoDave/houseplanner/internal/config"
	"github.com/ChicagoDave/houseplanner/internal/server"
	"github.com/ChicagoDave/houseplanner/pkg/cache"
	"github.com/ChicagoDave/houseplanner/pkg/cost"
	"github.com/ChicagoDave/houseplanner/pkg/model"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/scene2d"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// errInvalidPlan is returned by validate when the report has errors.
var errInvalidPlan = errors.New("plan has validation errors")

// generateOutput is the JSON document written by generate.
type generateOutput struct {
	Model      model.BuildingModel `json:"model"`
	Stats      model.Stats         `json:"stats"`
	Validation *validation.Report  `json:"validation"`
}

func generateCmd() *cobra.Command {
	var (
		out     string
		format  string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "generate [plan]",
		Short: "Generate a building model from a plan file or project directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p, err := plan.LoadProject(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			m, report := model.Generate(p)
			prog.done(fmt.Sprintf("Generated %d walls, %d roof planes", len(m.Walls), len(m.RoofPlanes)))
			for _, w := range report.Warnings {
				logger.Warn(w.Message, "path", w.PlanPath)
			}

			var doc any
			switch format {
			case "model":
				doc = generateOutput{Model: m, Stats: m.Stats(), Validation: report}
			case "plan2d":
				doc = scene2d.Assemble2D(&m)
			default:
				return fmt.Errorf("unknown format %q (want model or plan2d)", format)
			}
			if summary {
				printSummary(cmd.OutOrStdout(), &m, m.Stats())
				if out == "" {
					return nil
				}
			}
			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write model JSON to this file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "model", "output format: model or plan2d")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a human-readable summary")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan]",
		Short: "Validate a plan without writing a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.LoadProject(args[0])
			if err != nil {
				return err
			}
			report := model.Check(p)
			printValidationReport(cmd.OutOrStdout(), report)
			if !report.Valid {
				return errInvalidPlan
			}
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the reference demo plan as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := plan.MarshalYAML(plan.Demo())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the plan to this file instead of stdout")
	return cmd
}

func costCmd() *cobra.Command {
	f := cost.DefaultFinancing()

	cmd := &cobra.Command{
		Use:   "cost [plan]",
		Short: "Estimate construction cost and loan payments for a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.LoadProject(args[0])
			if err != nil {
				return err
			}
			m, report := model.Generate(p)
			printCostReport(cmd.OutOrStdout(), cost.Estimate(&m, f))
			if report.HasWarnings() {
				fmt.Fprintln(cmd.OutOrStdout())
				printValidationReport(cmd.OutOrStdout(), report)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&f.InterestRate, "rate", f.InterestRate, "annual interest rate")
	cmd.Flags().IntVar(&f.TermYears, "term", f.TermYears, "loan term in years")
	cmd.Flags().Float64Var(&f.DownPayment, "down", f.DownPayment, "down payment as a fraction of total cost")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, backend string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve model generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if backend != "" {
				cfg.CacheBackend = backend
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, err := cache.Open(ctx, cfg.Cache())
			if err != nil {
				return fmt.Errorf("opening cache: %w", err)
			}
			defer c.Close()
			pruneCache(ctx, c, logger)

			return server.New(cfg, c, logger).Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HOUSEPLANNER_ADDR)")
	cmd.Flags().StringVar(&backend, "cache", "", "cache backend: none, sqlite or redis (overrides HOUSEPLANNER_CACHE)")
	return cmd
}

// pruneCache drops expired entries from a SQLite cache and returns how many
// were removed. Other backends expire entries themselves.
func pruneCache(ctx context.Context, c cache.Cache, logger *log.Logger) int64 {
	sc, ok := c.(*cache.SQLiteCache)
	if !ok {
		return 0
	}
	n, err := sc.Prune(ctx)
	if err != nil {
		logger.Warn("pruning cache", "err", err)
		return 0
	}
	logger.Info("pruned expired cache entries", "removed", n)
	return n
}

// writeOutput writes to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
