package confusion

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Render writes the matrix as text: one header line of gold-label columns
// ("y=J") and one line per visible prediction row ("l=I").
//
// Description:
//
//	Render always re-derives the untrimmed matrix internally; the null row
//	and column are hidden by skipping them while printing, never by slicing,
//	so printed header indices stay absolute regardless of visibility.
//
//	With opts.ShowCounts, cells are raw counts center-aligned in fixed
//	5-character fields. Otherwise each cell is the row rate
//	m[i][j] / Σ_{y≥1} m[i][y], right-aligned with opts.Decimals places; the
//	denominator always excludes the null-gold column, so rows may sum to
//	less than 1 when null-gold observations exist and WithNullGold is set.
//	When opts.MarkDiagonal is set in rate mode, the space before each
//	diagonal cell is overwritten with '*'. A row whose non-null-gold sum is
//	zero has an undefined rate; its cells render as right-aligned "-".
//
// Errors:
//   - ErrEmptyInput — no observations added yet.
//
// Complexity: O(k²) time.
func (c *ConfusionMatrix) Render(w io.Writer, opts DisplayOptions) error {
	mat, err := c.Compile(false)
	if err != nil {
		return err
	}

	k := len(mat)
	gap := strings.Repeat(" ", max(opts.Spacing, 0))
	margin := strings.Repeat(" ", max(opts.Indent, 0))
	rateWidth := opts.Decimals + 2 // "0." plus fraction digits

	var b strings.Builder

	// Header: pad past the row-label column, then one "y=J" per visible column.
	b.WriteString(margin)
	b.WriteString(strings.Repeat(" ", countWidth+len(gap)))
	for j := 0; j < k; j++ {
		if j == NullLabel && !c.nullGold {
			continue
		}
		b.WriteString(" y=" + strconv.Itoa(j) + " " + gap)
	}
	b.WriteByte('\n')

	for i := 0; i < k; i++ {
		if i == NullLabel && !c.nullPred {
			continue
		}

		line := margin + " l=" + strconv.Itoa(i) + " " + gap
		rowSum := 0
		for _, n := range mat[i][1:] { // null-gold column never counts
			rowSum += n
		}

		for j := 0; j < k; j++ {
			if j == NullLabel && !c.nullGold {
				continue
			}
			if opts.ShowCounts {
				line += center(strconv.Itoa(mat[i][j]), countWidth) + gap
				continue
			}
			if i == j && opts.MarkDiagonal {
				line = line[:len(line)-1] + string(diagonalMark)
			}
			line += rate(mat[i][j], rowSum, opts.Decimals, rateWidth) + gap
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err = io.WriteString(w, b.String())

	return err
}

// Display renders to stdout. See Render.
func (c *ConfusionMatrix) Display(opts DisplayOptions) error {
	return c.Render(os.Stdout, opts)
}

// center pads s to width, splitting the padding evenly and giving the odd
// space to the right. Strings already at or over width pass through.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// rate formats n/sum right-aligned to the given precision and width, or the
// undefined-rate placeholder when sum is zero.
func rate(n, sum, decimals, width int) string {
	if sum == 0 {
		return fmt.Sprintf("%*s", width, undefinedRate)
	}

	return fmt.Sprintf("%*.*f", width, decimals, float64(n)/float64(sum))
}
