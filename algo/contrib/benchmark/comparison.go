package benchmark

import (
	"cmp"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/kalaninja/algosharp/algo"
)

// WriteComparison renders results as a table ordered by ascending median.
func WriteComparison(w io.Writer, results []*Result) error {
	if len(results) == 0 {
		return errors.Wrap(algo.ErrInvalidArgument, "no results to compare")
	}

	ordered := slices.Clone(results)
	slices.SortStableFunc(ordered, func(a, b *Result) int {
		return cmp.Compare(a.median, b.median)
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Median", "StdDev", "Iterations"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, r := range ordered {
		table.Append([]string{
			r.Name,
			r.Median().String(),
			r.StdDev().String(),
			strconv.Itoa(r.TotalIterations()),
		})
	}
	table.Render()
	return nil
}

// Comparison is WriteComparison into a string.
func Comparison(results []*Result) (string, error) {
	var sb strings.Builder
	if err := WriteComparison(&sb, results); err != nil {
		return "", err
	}
	return sb.String(), nil
}
