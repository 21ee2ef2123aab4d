// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gsokit/matrix"
	"github.com/katalvlaran/gsokit/matrix/exact"
)

func newGSOCmd(a *app) *cobra.Command {
	var exactMode bool
	cmd := &cobra.Command{
		Use:   "gso FILE",
		Short: "Orthonormalize the columns of a matrix",
		Long: `Orthonormalize the columns with Gram–Schmidt and adaptive
re-orthogonalization. Numerically dependent columns come out as zero.
With --exact the columns are orthogonalized over the rationals instead
(orthogonal, not normalized).`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var r report
			if exactMode {
				m, err := readRat(args[0])
				if err != nil {
					return err
				}
				b := m.Clone()
				exact.GSO(b, b)
				r.matrix("basis", b, b.Strings())

				return r.write(a.stdout, a.format)
			}

			m, err := readFloat(args[0])
			if err != nil {
				return err
			}
			a.log.Debug().Int("rows", m.Rows()).Int("cols", m.Cols()).Msg("orthonormalizing")
			b, err := matrix.NewDense(m.Rows(), m.Cols())
			if err != nil {
				return err
			}
			if err := matrix.GSO(b, m, a.cfg.options(a.log)...); err != nil {
				return err
			}
			r.matrix("basis", b, floatRows(b))

			return r.write(a.stdout, a.format)
		},
	}
	cmd.Flags().BoolVar(&exactMode, "exact", false, "orthogonalize over the rationals")

	return cmd
}

func newQRCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "qr FILE",
		Short: "Factor a matrix as Q·R",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := readFloat(args[0])
			if err != nil {
				return err
			}
			q, rr, err := matrix.Factorize(m, a.cfg.options(a.log)...)
			if err != nil {
				return err
			}
			var r report
			r.matrix("q", q, floatRows(q))
			r.matrix("r", rr, floatRows(rr))

			return r.write(a.stdout, a.format)
		},
	}
}

func newGramCmd(a *app) *cobra.Command {
	var exactMode bool
	cmd := &cobra.Command{
		Use:   "gram FILE",
		Short: "Print the Gram matrix A·Aᵀ of the rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var r report
			if exactMode {
				m, err := readInt(args[0])
				if err != nil {
					return err
				}
				g, err := exact.GramOf(m)
				if err != nil {
					return err
				}
				r.matrix("gram", g, g.Strings())

				return r.write(a.stdout, a.format)
			}

			m, err := readFloat(args[0])
			if err != nil {
				return err
			}
			g, err := matrix.GramOf(m)
			if err != nil {
				return err
			}
			r.matrix("gram", g, floatRows(g))

			return r.write(a.stdout, a.format)
		},
	}
	cmd.Flags().BoolVar(&exactMode, "exact", false, "integer entries, exact arithmetic")

	return cmd
}

func newCovolumeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "covolume FILE",
		Short: "Covolume of the lattice spanned by the integer rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := readInt(args[0])
			if err != nil {
				return err
			}
			g, err := exact.GramOf(m)
			if err != nil {
				return err
			}
			var r report
			r.scalar("covolume", exact.Covolume(m))
			r.scalar("gram_determinant", exact.Determinant(g).String())

			return r.write(a.stdout, a.format)
		},
	}
}

func newRREFCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rref FILE",
		Short: "Reduced row echelon form over the rationals",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := readRat(args[0])
			if err != nil {
				return err
			}
			red := exact.RREF(m, m)
			var r report
			r.matrix("rref", m, m.Strings())
			r.scalar("rank", red.Rank)
			r.scalar("pivots", red.Pivots)
			if red.Det != nil {
				r.scalar("determinant", red.Det.RatString())
				r.scalar("singular", red.Singular)
			}

			return r.write(a.stdout, a.format)
		},
	}
}

// newInverseCmd calls the kernel directly: a non-square input is a
// precondition violation and ends with exit status 2.
func newInverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse FILE",
		Short: "Exact inverse of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := readRat(args[0])
			if err != nil {
				return err
			}
			inv := m.Clone()
			det, ok := exact.Inverse(inv, m)
			var r report
			if !ok {
				a.log.Warn().Str("file", args[0]).Msg("matrix is singular")
				r.scalar("singular", true)
				r.scalar("determinant", det.RatString())

				return r.write(a.stdout, a.format)
			}
			r.matrix("inverse", inv, inv.Strings())
			r.scalar("determinant", det.RatString())

			return r.write(a.stdout, a.format)
		},
	}
}
