package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/config"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/eoq"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/report"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/service"
	"github.com/andresuchdata/sc-toolkit/backend-go/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "sctk",
		Usage: "Supply-chain toolkit: EOQ and segmentation analyses",
		Commands: []*cli.Command{
			eoqCommand(),
			productsCommand(),
			customersCommand(),
			suppliersCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}

func eoqCommand() *cli.Command {
	return &cli.Command{
		Name:  "eoq",
		Usage: "Compute the economic order quantity for one scenario",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Usage: "Named preset instead of explicit parameters"},
			&cli.Float64Flag{Name: "demand", Usage: "Annual demand (units/year)"},
			&cli.Float64Flag{Name: "unit-cost", Usage: "Unit cost"},
			&cli.Float64Flag{Name: "ordering-cost", Usage: "Ordering cost per order"},
			&cli.Float64Flag{Name: "holding-rate", Usage: "Annual holding rate (fraction of unit cost)"},
			&cli.Float64Flag{Name: "lead-time", Usage: "Lead time in months"},
			&cli.Float64Flag{Name: "sigma", Usage: "Std dev of monthly demand (enables safety stock)"},
			&cli.Float64Flag{Name: "discount-qty", Usage: "Discount threshold quantity"},
			&cli.Float64Flag{Name: "discount-rate", Usage: "Discount rate (fraction)"},
			&cli.StringFlag{Name: "out", Usage: "Write result CSV to this path instead of stdout"},
		},
		Action: runEOQ,
	}
}

func runEOQ(c *cli.Context) error {
	cfg := config.Load()
	svc := service.NewEOQService(cfg.Presets)

	var in eoq.Input
	if preset := c.String("preset"); preset != "" {
		resolved, err := svc.ResolvePreset(preset)
		if err != nil {
			return err
		}
		in = resolved
	} else {
		in = eoq.Input{
			AnnualDemand:   c.Float64("demand"),
			UnitCost:       c.Float64("unit-cost"),
			OrderingCost:   c.Float64("ordering-cost"),
			HoldingRate:    c.Float64("holding-rate"),
			LeadTimeMonths: c.Float64("lead-time"),
		}
		if c.IsSet("sigma") {
			sigma := c.Float64("sigma")
			in.DemandStdDev = &sigma
		}
		if qty := c.Float64("discount-qty"); qty > 0 {
			in.Discount = &eoq.DiscountOffer{
				ThresholdQuantity: qty,
				Rate:              c.Float64("discount-rate"),
			}
		}
	}

	res, err := svc.Compute(in)
	if err != nil {
		return err
	}

	logger.Log.Info().
		Float64("eoq", res.OptimalQuantity).
		Float64("tlc", res.TotalLogisticsCost).
		Float64("rop", res.ReorderPoint).
		Msg("EOQ analysis complete")
	if d := res.Discount; d != nil {
		if d.Accept {
			logger.Log.Info().Float64("annual_savings", d.AnnualSavings).Msg("Accept discount")
		} else {
			logger.Log.Info().Msg("Base EOQ is cheaper - do not accept discount")
		}
	}

	var w io.Writer = os.Stdout
	if out := c.String("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	return report.WriteEOQ(w, res)
}
