package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polar3/decomp"
	"github.com/katalvlaran/polar3/smallmat"
)

func newSVDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "svd m00 m01 m02 m10 m11 m12 m20 m21 m22",
		Short: "Decompose one column-major 3x3 matrix and print its closest rotation",
		Long: "Arguments are the nine entries in column-major order: m<c><r> is column c, row r.\n" +
			"Prints U, the singular values, Vᵗ, the closest rotation and the number of Jacobi steps.",
		Args: cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [9]float32
			for i, s := range args {
				v, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return fmt.Errorf("svd: argument %d: %w", i, err)
				}
				vals[i] = float32(v)
			}
			m := smallmat.Load(vals[:])

			u, vt, d := decomp.SVD(m)
			_, _, steps := decomp.JacobiSteps(m.T().Mul(m))
			r, flipped := decomp.Procrustes(smallmat.Identity3(), m)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "U =\n%v\n", u)
			fmt.Fprintf(out, "D = %v\n", d)
			fmt.Fprintf(out, "Vt =\n%v\n", vt)
			fmt.Fprintf(out, "R =\n%v\n", r)
			fmt.Fprintf(out, "flipped = %t, jacobi steps = %d\n", flipped, steps)

			a.log.Debug().Int("steps", steps).Bool("flipped", flipped).Msg("svd")
			return nil
		},
	}
}
