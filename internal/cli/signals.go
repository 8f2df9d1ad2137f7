package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/jetplot/jetplot/pkg/dataio"
	"github.com/jetplot/jetplot/pkg/errors"
	"github.com/jetplot/jetplot/pkg/signals"
)

// signalsCommand groups the numeric helpers.
func (c *CLI) signalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signals",
		Short: "Compute signal statistics from tabular data",
		Long: `Compute signal statistics from a data file (.csv, .tsv or .json).

Rows are observations and columns are variables.`,
	}

	cmd.AddCommand(c.stableRankCommand())
	cmd.AddCommand(c.participationCommand())
	cmd.AddCommand(c.normalizeCommand())
	cmd.AddCommand(c.smoothCommand())
	cmd.AddCommand(c.ccaCommand())

	return cmd
}

func (c *CLI) stableRankCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stable-rank FILE",
		Short: "Print the stable rank (sum of squared singular values over the largest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := importTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sr, err := signals.StableRank(t.Data)
			if err != nil {
				return err
			}
			printKeyValue("stable rank", formatFloat(sr))
			return nil
		},
	}
}

func (c *CLI) participationCommand() *cobra.Command {
	var observations bool

	cmd := &cobra.Command{
		Use:   "participation FILE",
		Short: "Print the participation ratio of a covariance matrix",
		Long: `Print the participation ratio (trace C)^2 / sum(lambda^2) of a covariance matrix.

By default FILE holds the covariance matrix itself. With --observations, FILE
holds raw observations and the sample covariance is computed first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := importTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			pr, err := participation(t.Data, observations)
			if err != nil {
				return err
			}
			printKeyValue("participation ratio", formatFloat(pr))
			return nil
		},
	}

	cmd.Flags().BoolVar(&observations, "observations", false, "treat FILE as observations and compute their covariance")
	return cmd
}

// participation returns the participation ratio of m, or of the sample
// covariance of m when observations is set.
func participation(m *mat.Dense, observations bool) (float64, error) {
	if !observations {
		return signals.ParticipationRatio(m)
	}
	if r, _ := m.Dims(); r < 2 {
		return 0, errors.New(errors.ErrCodeInvalidShape, "covariance needs at least 2 observations, got %d", r)
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, m, nil)
	return signals.ParticipationRatio(&cov)
}

func (c *CLI) normalizeCommand() *cobra.Command {
	var axisName, output string

	cmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Scale every row (or column) to unit Euclidean norm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := signals.ParseAxis(axisName)
			if err != nil {
				return err
			}
			t, err := importTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			n, err := signals.Normalize(t.Data, axis)
			if err != nil {
				return err
			}
			return writeTable(cmd.Context(), &dataio.Table{Columns: t.Columns, Data: n}, output)
		},
	}

	cmd.Flags().StringVar(&axisName, "axis", signals.Rows.String(), "normalize each of: rows, columns")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: CSV on stdout)")
	return cmd
}

func (c *CLI) smoothCommand() *cobra.Command {
	var (
		window int
		output string
	)

	cmd := &cobra.Command{
		Use:   "smooth FILE",
		Short: "Apply a moving-average filter to every column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := importTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s, err := smoothTable(t, window)
			if err != nil {
				return err
			}
			return writeTable(cmd.Context(), s, output)
		},
	}

	cmd.Flags().IntVarP(&window, "window", "w", 5, "filter width in samples")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: CSV on stdout)")
	return cmd
}

// smoothTable smooths each column of t. The result has window-1 fewer rows.
func smoothTable(t *dataio.Table, window int) (*dataio.Table, error) {
	_, cols := t.Dims()
	var out *mat.Dense
	for j := 0; j < cols; j++ {
		s, err := signals.Smooth(t.Column(j), window)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", t.ColumnName(j), err)
		}
		if out == nil {
			out = mat.NewDense(len(s), cols, nil)
		}
		out.SetCol(j, s)
	}
	return &dataio.Table{Columns: t.Columns, Data: out}, nil
}

func (c *CLI) ccaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cca X_FILE Y_FILE",
		Short: "Print canonical correlations between two sets of variables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := importTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			y, err := importTable(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			corrs, err := signals.CanonCorr(x.Data, y.Data)
			if err != nil {
				return err
			}
			fmt.Println(corrTable(corrs))
			return nil
		},
	}
}

// corrTable renders canonical correlations as a bordered table.
func corrTable(corrs []float64) string {
	rows := make([][]string, len(corrs))
	for i, v := range corrs {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.FormatFloat(v, 'f', 6, 64)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Correlation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return StyleNumber
			}
			return StyleDim
		}).
		Render()
}

// importTable reads a data file and logs its shape.
func importTable(ctx context.Context, path string) (*dataio.Table, error) {
	t, err := dataio.Import(path)
	if err != nil {
		return nil, err
	}
	r, cols := t.Dims()
	loggerFromContext(ctx).Debug("loaded data", "path", path, "rows", r, "cols", cols)
	return t, nil
}

// writeTable writes t to path, or as CSV to stdout when path is empty.
func writeTable(ctx context.Context, t *dataio.Table, path string) error {
	if path == "" {
		return dataio.WriteCSV(os.Stdout, t, ',')
	}
	if err := dataio.Export(t, path); err != nil {
		return err
	}
	loggerFromContext(ctx).Infof("Wrote %s", path)
	return nil
}
