package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/config"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/ingest"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/report"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/segmentation"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/service"
	"github.com/andresuchdata/sc-toolkit/backend-go/pkg/logger"
)

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:      "products",
		Usage:     "Classify product tables (ABC, MCABC, nested ABC)",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "a-pct", Usage: "A tier cumulative coverage %"},
			&cli.Float64Flag{Name: "b-pct", Usage: "B tier cumulative coverage %"},
			&cli.Float64Flag{Name: "weight-value", Value: 0.5, Usage: "MCABC weight: annual value"},
			&cli.Float64Flag{Name: "weight-lead", Value: 0.3, Usage: "MCABC weight: lead time"},
			&cli.Float64Flag{Name: "weight-crit", Value: 0.2, Usage: "MCABC weight: criticality"},
			outDirFlag(),
		},
		Action: runProducts,
	}
}

func customersCommand() *cli.Command {
	return &cli.Command{
		Name:      "customers",
		Usage:     "Segment customer tables by revenue and profit margin",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "margin-threshold", Usage: "Profit margin threshold %"},
			outDirFlag(),
		},
		Action: runCustomers,
	}
}

func suppliersCommand() *cli.Command {
	return &cli.Command{
		Name:      "suppliers",
		Usage:     "Segment supplier tables on the Kraljic matrix",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "threshold", Usage: "Impact/risk threshold"},
			outDirFlag(),
		},
		Action: runSuppliers,
	}
}

func outDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "out-dir",
		Usage:   "Directory for result CSVs (defaults to APP_OUTPUT_DIR)",
		EnvVars: []string{"APP_OUTPUT_DIR"},
	}
}

func runProducts(c *cli.Context) error {
	cfg := config.Load()
	svc := service.NewSegmentationService(cfg.Defaults)
	outDir := outputDir(c, cfg)

	params := domain.ProductParams{
		APct:              c.Float64("a-pct"),
		BPct:              c.Float64("b-pct"),
		WeightValue:       c.Float64("weight-value"),
		WeightLeadTime:    c.Float64("weight-lead"),
		WeightCriticality: c.Float64("weight-crit"),
	}

	return eachInput(c, func(path string) error {
		table, err := ingest.ReadFile(path)
		if err != nil {
			return err
		}

		segments, err := svc.ProductSegments(table, params)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		attrCols := []string{domain.ColDemand, domain.ColUnitCost}
		if table.HasColumn(domain.ColLeadTime) {
			attrCols = append(attrCols, domain.ColLeadTime)
		}
		if table.HasColumn(domain.ColCriticality) {
			attrCols = append(attrCols, domain.ColCriticality)
		}

		base := baseName(path)
		outputs := []struct {
			suffix string
			rows   []domain.ClassifiedRow
		}{
			{"abc", segments.ABC},
			{"mcabc", segments.MCABC},
			{"nested", segments.Nested},
		}
		for _, out := range outputs {
			dest := filepath.Join(outDir, fmt.Sprintf("%s_%s.csv", base, out.suffix))
			if err := writeRankedFile(dest, domain.ColItem, attrCols, out.rows); err != nil {
				return err
			}
			logger.Log.Info().Str("file", dest).Int("rows", len(out.rows)).Msg("Wrote classification")
		}
		return nil
	})
}

func runCustomers(c *cli.Context) error {
	cfg := config.Load()
	svc := service.NewSegmentationService(cfg.Defaults)
	outDir := outputDir(c, cfg)

	return eachInput(c, func(path string) error {
		table, err := ingest.ReadFile(path)
		if err != nil {
			return err
		}

		rows, err := svc.CustomerSegments(table, c.Float64("margin-threshold"))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		dest := filepath.Join(outDir, baseName(path)+"_segments.csv")
		attrs := []string{segmentation.AttrRevenue, segmentation.AttrProfit, segmentation.AttrMargin}
		if err := writeSegmentsFile(dest, domain.ColCustomer, attrs, rows); err != nil {
			return err
		}
		logger.Log.Info().Str("file", dest).Int("rows", len(rows)).Msg("Wrote customer segments")
		return nil
	})
}

func runSuppliers(c *cli.Context) error {
	cfg := config.Load()
	svc := service.NewSegmentationService(cfg.Defaults)
	outDir := outputDir(c, cfg)

	return eachInput(c, func(path string) error {
		table, err := ingest.ReadFile(path)
		if err != nil {
			return err
		}

		rows, err := svc.SupplierSegments(table, c.Float64("threshold"))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		dest := filepath.Join(outDir, baseName(path)+"_segments.csv")
		attrs := []string{segmentation.AttrProfitImpact, segmentation.AttrSupplyRisk}
		if err := writeSegmentsFile(dest, domain.ColSupplier, attrs, rows); err != nil {
			return err
		}
		logger.Log.Info().Str("file", dest).Int("rows", len(rows)).Msg("Wrote supplier segments")
		return nil
	})
}

// eachInput runs fn over every positional argument. Files are independent
// of each other, so they are processed concurrently; each call owns its
// table.
func eachInput(c *cli.Context, fn func(path string) error) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	g := new(errgroup.Group)
	for _, f := range files {
		g.Go(func() error { return fn(f) })
	}
	return g.Wait()
}

func outputDir(c *cli.Context, cfg *config.Config) string {
	if dir := c.String("out-dir"); dir != "" {
		return dir
	}
	return cfg.App.OutputDir
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeRankedFile(path, keyHeader string, attrCols []string, rows []domain.ClassifiedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return report.WriteRanked(f, keyHeader, attrCols, rows)
}

func writeSegmentsFile(path, keyHeader string, attrCols []string, rows []domain.ClassifiedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return report.WriteSegments(f, keyHeader, attrCols, rows)
}
