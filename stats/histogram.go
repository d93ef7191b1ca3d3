package stats

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/equitext/equitext/internal/options"
)

// histogramConfig holds the rendering knobs of WriteHistogram.
type histogramConfig struct {
	scale       float64
	precision   int
	occurrences bool
	glyph       string
	sortByCount bool
	reverse     bool
}

// HistogramOption configures WriteHistogram.
type HistogramOption = options.Option[*histogramConfig]

// WithScale stretches or shrinks bars relative to the default
// 80-column layout. The default is 1.
func WithScale(scale float64) HistogramOption {
	return options.New(func(c *histogramConfig) error {
		if scale <= 0 {
			return fmt.Errorf("histogram scale must be positive, got %v", scale)
		}
		c.scale = scale

		return nil
	})
}

// WithPrecision sets the number of decimals of the ratio printed at
// the tip of each bar. The default is 3.
func WithPrecision(precision int) HistogramOption {
	return options.New(func(c *histogramConfig) error {
		if precision < 0 {
			return fmt.Errorf("histogram precision must not be negative, got %d", precision)
		}
		c.precision = precision

		return nil
	})
}

// WithOccurrences appends the absolute occurrence count of each rune
// after its ratio. Off by default.
func WithOccurrences() HistogramOption {
	return options.NoError(func(c *histogramConfig) {
		c.occurrences = true
	})
}

// WithGlyph sets the string used as one unit of a bar. The default is
// "=".
func WithGlyph(glyph string) HistogramOption {
	return options.New(func(c *histogramConfig) error {
		if glyph == "" {
			return fmt.Errorf("histogram glyph must not be empty")
		}
		c.glyph = glyph

		return nil
	})
}

// WithSortByCodePoint orders rows by code point instead of the
// default occurrence-count order.
func WithSortByCodePoint() HistogramOption {
	return options.NoError(func(c *histogramConfig) {
		c.sortByCount = false
	})
}

// WithAscending reverses the default descending row order.
func WithAscending() HistogramOption {
	return options.NoError(func(c *histogramConfig) {
		c.reverse = false
	})
}

// WriteHistogram renders the occurrence histogram of text to w, one
// row per distinct rune:
//
//	e ========== 0.125 (4)
//
// Rows hold the rune, a bar proportional to its occurrences, the
// occurrence ratio, and optionally the absolute count. The widest row
// targets 80 columns at the default scale. A uniform text (such as
// equitext output) renders bars of identical width.
func WriteHistogram(w io.Writer, text string, opts ...HistogramOption) error {
	cfg := &histogramConfig{
		scale:       1,
		precision:   3,
		glyph:       "=",
		sortByCount: true,
		reverse:     true,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	report := NewReport(text)
	if report.Length == 0 {
		return nil
	}

	rows := slices.Clone(report.Counts)
	if cfg.sortByCount {
		slices.SortFunc(rows, func(a, b SymbolCount) int {
			if n := cmp.Compare(a.Count, b.Count); n != 0 {
				return n
			}

			return cmp.Compare(a.Symbol, b.Symbol)
		})
	} else {
		slices.SortFunc(rows, func(a, b SymbolCount) int {
			return cmp.Compare(a.Symbol, b.Symbol)
		})
	}
	if cfg.reverse {
		slices.Reverse(rows)
	}

	maxCount := 0
	for _, row := range report.Counts {
		if row.Count > maxCount {
			maxCount = row.Count
		}
	}

	// A row is rune + space + bar + space + ratio (+ " (count)");
	// size the bar unit so the widest row fits 80 columns.
	maxRatio := formatRatio(float64(maxCount)/float64(report.Length), cfg.precision)
	barless := 3 + len(maxRatio)
	if cfg.occurrences {
		barless += 3 + len(strconv.Itoa(maxCount))
	}
	unit := float64(80-barless) / float64(maxCount) * cfg.scale

	for _, row := range rows {
		ratio := formatRatio(float64(row.Count)/float64(report.Length), cfg.precision)
		line := fmt.Sprintf("%c %s %s",
			row.Symbol, strings.Repeat(cfg.glyph, int(unit*float64(row.Count))), ratio)
		if cfg.occurrences {
			line += fmt.Sprintf(" (%d)", row.Count)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// formatRatio rounds to the given number of decimals and prints the
// shortest representation, "0.125" rather than "0.125000".
func formatRatio(ratio float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	rounded := math.Round(ratio*pow) / pow

	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
