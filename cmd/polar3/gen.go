package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polar3/batch"
	"github.com/katalvlaran/polar3/decomp"
	"github.com/katalvlaran/polar3/pcg"
	"github.com/katalvlaran/polar3/smallmat"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		blocks      int
		seed        uint64
		stream      uint64
		u1Path      string
		u2Path      string
		truthPath   string
		compression string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic batch u2 = R·u1 with random rotations R",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if !fs.Changed("blocks") {
				blocks = a.cfg.Gen.Blocks
			}
			if !fs.Changed("seed") {
				seed = a.cfg.Gen.Seed
			}
			if !fs.Changed("stream") {
				stream = a.cfg.Gen.Stream
			}
			if blocks < 0 {
				return fmt.Errorf("gen: --blocks must be >= 0, got %d", blocks)
			}
			c, err := a.compression(compression)
			if err != nil {
				return err
			}

			u1, u2, truth := generate(pcg.New(seed, stream), blocks)

			if err := a.writeBatch(u1Path, u1, c); err != nil {
				return err
			}
			if err := a.writeBatch(u2Path, u2, c); err != nil {
				return err
			}
			if truthPath != "" {
				if err := a.writeBatch(truthPath, truth, c); err != nil {
					return err
				}
			}
			a.log.Info().Int("blocks", blocks).Uint64("seed", seed).Uint64("stream", stream).Msg("batch generated")
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&blocks, "blocks", 0, "number of 3x3 blocks (overrides config)")
	fs.Uint64Var(&seed, "seed", 0, "PCG32 initial state (overrides config)")
	fs.Uint64Var(&stream, "stream", 0, "PCG32 stream selector (overrides config)")
	fs.StringVar(&u1Path, "u1", "u1.p3b", "output file for the rest shapes")
	fs.StringVar(&u2Path, "u2", "u2.p3b", "output file for the rotated shapes")
	fs.StringVar(&truthPath, "truth", "", "optional output file for the generating rotations")
	compressionFlag(fs, &compression)
	return cmd
}

// generate draws blocks shapes A with entries in [-1, 1) and rotations
// R = ClosestRotation(I, G) for random G, returning A, R·A and R.
func generate(rng *pcg.Source, blocks int) (u1, u2, truth []float32) {
	n := blocks * batch.BlockSize
	u1, u2, truth = make([]float32, n), make([]float32, n), make([]float32, n)
	for k := 0; k < blocks; k++ {
		var a smallmat.Mat3
		for c := range a {
			for r := range a[c] {
				a[c][r] = rng.Range(-1, 1)
			}
		}
		rt := decomp.ClosestRotation(smallmat.Identity3(), rng.Mat3())

		off := k * batch.BlockSize
		a.Store(u1[off:])
		rt.Mul(a).Store(u2[off:])
		rt.Store(truth[off:])
	}
	return u1, u2, truth
}
