// Package confusion: functional configuration for matrix construction and
// a plain options struct for text rendering. Defaults are documented
// constants (single source of truth); public entry points consume ...Option
// and resolve them via gatherOptions.
package confusion

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultNullPrediction hides the null-prediction row (label 0) from
	// trimmed matrices and rendered output.
	DefaultNullPrediction = false

	// DefaultNullGold hides the null-gold column (label 0) from trimmed
	// matrices and rendered output.
	DefaultNullGold = false

	// DefaultNormalize leaves one-shot Matrix cells as raw counts.
	DefaultNormalize = false

	// DefaultPretty suppresses the one-shot Matrix display side effect.
	DefaultPretty = false
)

// Rendering defaults, mirrored by DefaultDisplayOptions.
const (
	// DefaultIndent is the number of leading spaces on every rendered line.
	DefaultIndent = 0

	// DefaultSpacing is the gap width between rendered columns.
	DefaultSpacing = 2

	// DefaultDecimals is the precision of rendered rates.
	DefaultDecimals = 3

	// countWidth is the fixed field width for center-aligned counts. The
	// header margin (countWidth+spacing) depends on it; keep them in sync.
	countWidth = 5

	// diagonalMark replaces the space preceding a diagonal rate cell.
	diagonalMark = '*'

	// undefinedRate is rendered for every rate cell of a row whose
	// non-null-gold sum is zero (the rate is 0/0, undefined).
	undefinedRate = "-"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them internally.
type Options struct {
	nullPred  bool // show the null-prediction row
	nullGold  bool // show the null-gold column
	normalize bool // one-shot Matrix only: divide cells by total count
	pretty    bool // one-shot Matrix only: display before returning
}

// WithNullPrediction shows the row of null (abstained) predictions in
// trimmed matrices and rendered output.
func WithNullPrediction() Option {
	return func(o *Options) { o.nullPred = true }
}

// WithNullGold shows the column of null (missing) gold labels in trimmed
// matrices and rendered output.
//
// Note: rendered rates are always normalized over non-null gold columns
// only, so visible rows may sum to less than 1 when this option is set and
// null-gold observations exist. This asymmetry is deliberate.
func WithNullGold() Option {
	return func(o *Options) { o.nullGold = true }
}

// WithNormalize divides every cell of the one-shot Matrix result by the
// total number of observations. It has no effect on New.
func WithNormalize() Option {
	return func(o *Options) { o.normalize = true }
}

// WithPretty makes the one-shot Matrix display the compiled counts to
// stdout with DefaultDisplayOptions before returning. The display always
// renders raw counts; WithNormalize never affects printed output. It has no
// effect on New.
func WithPretty() Option {
	return func(o *Options) { o.pretty = true }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		nullPred:  DefaultNullPrediction,
		nullGold:  DefaultNullGold,
		normalize: DefaultNormalize,
		pretty:    DefaultPretty,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// DisplayOptions configures Render and Display.
//
// Fields:
//   - ShowCounts   — render raw counts (center-aligned, fixed width) when
//     true; row-normalized rates (right-aligned) when false.
//   - Indent       — leading spaces on every line.
//   - Spacing      — gap width between columns.
//   - Decimals     — decimal places for rates (ignored for counts).
//   - MarkDiagonal — overlay '*' before diagonal rate cells. Never applied
//     to counts.
type DisplayOptions struct {
	ShowCounts   bool
	Indent       int
	Spacing      int
	Decimals     int
	MarkDiagonal bool
}

// DefaultDisplayOptions returns the documented rendering defaults:
// counts shown, no indent, spacing 2, 3 decimals, diagonal marking on.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		ShowCounts:   true,
		Indent:       DefaultIndent,
		Spacing:      DefaultSpacing,
		Decimals:     DefaultDecimals,
		MarkDiagonal: true,
	}
}
