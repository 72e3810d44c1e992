package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polar3/batch"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		u1Path      string
		u2Path      string
		outPath     string
		workers     int
		compression string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Project every block pair of u1, u2 onto its closest rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 0 {
				return fmt.Errorf("solve: --workers must be >= 0, got %d", workers)
			}
			c, err := a.compression(compression)
			if err != nil {
				return err
			}
			u1, err := a.readBatch(u1Path)
			if err != nil {
				return err
			}
			u2, err := a.readBatch(u2Path)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics, err := batch.NewMetrics(reg)
			if err != nil {
				return err
			}

			opts := append(a.cfg.BatchOptions(), batch.WithLogger(a.log), batch.WithMetrics(metrics))
			if cmd.Flags().Changed("workers") {
				opts = append(opts, batch.WithWorkers(workers))
			}

			result := make([]float32, len(u1))
			start := time.Now()
			if err := batch.Solve(u1, u2, result, opts...); err != nil {
				return err
			}
			elapsed := time.Since(start)

			if err := a.writeBatch(outPath, result, c); err != nil {
				return err
			}

			ev := a.log.Info().Dur("elapsed", elapsed)
			if err := logMetrics(ev, reg); err != nil {
				return err
			}
			ev.Msg("batch solved")
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&u1Path, "u1", "u1.p3b", "rest shapes")
	fs.StringVar(&u2Path, "u2", "u2.p3b", "deformed shapes")
	fs.StringVar(&outPath, "out", "result.p3b", "output file for the rotations")
	fs.IntVar(&workers, "workers", 0, "worker goroutines, 0 = GOMAXPROCS (overrides config)")
	compressionFlag(fs, &compression)
	return cmd
}

// logMetrics gathers reg and adds one field per metric to ev: counter and
// gauge values, and the sample sum of histograms.
func logMetrics(ev *zerolog.Event, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev.Float64(mf.GetName(), metricValue(mf.GetType(), m))
		}
	}
	return nil
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return m.GetHistogram().GetSampleSum()
	default:
		return m.GetUntyped().GetValue()
	}
}
