package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polar3/batch"
	"github.com/katalvlaran/polar3/reference"
	"github.com/katalvlaran/polar3/smallmat"
)

// checkReport summarizes how far a result batch is from the float64 reference.
type checkReport struct {
	Blocks       int
	Worst        float32 // largest element-wise deviation
	WorstBlock   int
	AboveTol     int
	NotRotations int
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		u1Path     string
		u2Path     string
		resultPath string
		tol        float64
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare a result batch against a float64 gonum reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("tol") {
				tol = a.cfg.Check.Tolerance
			}
			u1, err := a.readBatch(u1Path)
			if err != nil {
				return err
			}
			u2, err := a.readBatch(u2Path)
			if err != nil {
				return err
			}
			result, err := a.readBatch(resultPath)
			if err != nil {
				return err
			}
			if err := batch.Validate(u1, u2, result); err != nil {
				return err
			}

			rep, err := check(u1, u2, result, float32(tol))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "blocks=%d worst=%.3g (block %d) above_tol=%d not_rotation=%d\n",
				rep.Blocks, rep.Worst, rep.WorstBlock, rep.AboveTol, rep.NotRotations)
			a.log.Info().
				Int("blocks", rep.Blocks).
				Float32("worst", rep.Worst).
				Int("worst_block", rep.WorstBlock).
				Int("above_tol", rep.AboveTol).
				Int("not_rotation", rep.NotRotations).
				Float64("tol", tol).
				Msg("batch checked")

			if rep.AboveTol > 0 || rep.NotRotations > 0 {
				return fmt.Errorf("check: %d of %d blocks exceed tolerance %g, %d are not rotations",
					rep.AboveTol, rep.Blocks, tol, rep.NotRotations)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&u1Path, "u1", "u1.p3b", "rest shapes")
	fs.StringVar(&u2Path, "u2", "u2.p3b", "deformed shapes")
	fs.StringVar(&resultPath, "result", "result.p3b", "rotations produced by solve")
	fs.Float64Var(&tol, "tol", 0, "maximum element-wise deviation (overrides config)")
	return cmd
}

// check recomputes every block with the reference implementation. The
// buffers must already be validated.
func check(u1, u2, result []float32, tol float32) (checkReport, error) {
	rep := checkReport{Blocks: len(result) / batch.BlockSize}
	for k := 0; k < rep.Blocks; k++ {
		want, err := reference.ClosestRotation(blockAt(u1, k), blockAt(u2, k))
		if err != nil {
			return rep, fmt.Errorf("block %d: %w", k, err)
		}
		got := blockAt(result, k)

		dev := got.MaxAbsDiff(want)
		if dev > rep.Worst {
			rep.Worst, rep.WorstBlock = dev, k
		}
		if dev > tol {
			rep.AboveTol++
		}
		if !got.IsRotation(smallmat.DefaultTolerance * 10) {
			rep.NotRotations++
		}
	}
	return rep, nil
}
