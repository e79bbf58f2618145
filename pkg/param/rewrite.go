package param

import (
	"github.com/shopspring/decimal"

	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/internal/csvspan"
	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/internal/edit"
	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/internal/numtext"
)

// DefaultTargetColumns are the soul-reward columns scaled when
// RewriteOptions.TargetColumns is nil. Names must match header fields
// exactly.
var DefaultTargetColumns = []string{"getSoul", "bonusSoul_single", "bonusSoul_multi"}

// RewriteOptions controls Rewrite behavior.
type RewriteOptions struct {
	// TargetColumns overrides the set of column names eligible for
	// scaling. If nil, DefaultTargetColumns is used.
	TargetColumns []string
}

// Result reports the outcome of a rewrite.
type Result struct {
	// Text is the rewritten buffer. Bytes outside edited cells are
	// identical to the input.
	Text string

	// CellsChanged counts cells whose raw bytes actually changed.
	CellsChanged int

	// ZeroCellsSkipped counts target cells holding integer zero,
	// which are never rewritten.
	ZeroCellsSkipped int
}

// Rewrite scales the target columns of a CSV text buffer by multiplier.
// The header record (record 0) is never touched. Returns ErrNoRecords
// for empty input and ErrNoTargetColumns when the header contains none
// of the target names; per-cell conditions (ragged rows, non-integer
// cells, zeros) skip the cell and never fail the call.
func Rewrite(text string, multiplier decimal.Decimal, opts RewriteOptions) (*Result, error) {
	targets := opts.TargetColumns
	if targets == nil {
		targets = DefaultTargetColumns
	}

	records := csvspan.SplitRecords(text)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	header := csvspan.RecordBody(text[records[0].Start:records[0].End])
	columns := resolveColumns(header, targets)
	if len(columns) == 0 {
		return nil, ErrNoTargetColumns
	}

	var (
		edits       []edit.Edit
		changed     int
		zeroSkipped int
	)

	for _, rec := range records[1:] {
		body := csvspan.RecordBody(text[rec.Start:rec.End])
		fields := csvspan.SplitFields(body)

		for _, index := range columns {
			if index >= len(fields) {
				// Ragged row: fewer fields than the header.
				continue
			}

			span := fields[index]
			raw := body[span.Start:span.End]
			inner, quoted := csvspan.DecodeField(raw)

			lead, core, trail := numtext.SplitCore(inner)
			if !numtext.IsInteger(core) {
				continue
			}

			old, err := numtext.ParseInteger(core)
			if err != nil {
				continue
			}
			if old.IsZero() {
				zeroSkipped++
				continue
			}

			scaled := numtext.Scale(old, multiplier)
			newInner := lead + numtext.Render(scaled) + trail
			newRaw := csvspan.EncodeField(newInner, quoted)

			if newRaw != raw {
				edits = append(edits, edit.Edit{
					Start:       rec.Start + span.Start,
					End:         rec.Start + span.End,
					Replacement: newRaw,
				})
				changed++
			}
		}
	}

	return &Result{
		Text:             edit.Apply(text, edits),
		CellsChanged:     changed,
		ZeroCellsSkipped: zeroSkipped,
	}, nil
}

// resolveColumns maps target names to their field index in the header
// body. Names absent from the header are simply not mapped; the caller
// decides whether an empty map is fatal.
func resolveColumns(header string, targets []string) map[string]int {
	want := make(map[string]bool, len(targets))
	for _, name := range targets {
		want[name] = true
	}

	columns := make(map[string]int)
	for index, span := range csvspan.SplitFields(header) {
		name, _ := csvspan.DecodeField(header[span.Start:span.End])
		if want[name] {
			columns[name] = index
		}
	}
	return columns
}
