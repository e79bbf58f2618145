package param

import (
	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/internal/csvspan"
)

// InspectColumns decodes the header record of text and reports every
// header field in order, plus the target-name → index map that a rewrite
// with the same targets would use. A nil targets slice means
// DefaultTargetColumns. Unlike Rewrite, an empty map is not an error
// here — inspection of a file with no matching columns is still useful.
func InspectColumns(text string, targets []string) ([]string, map[string]int, error) {
	if targets == nil {
		targets = DefaultTargetColumns
	}

	records := csvspan.SplitRecords(text)
	if len(records) == 0 {
		return nil, nil, ErrNoRecords
	}

	header := csvspan.RecordBody(text[records[0].Start:records[0].End])
	var fields []string
	for _, span := range csvspan.SplitFields(header) {
		name, _ := csvspan.DecodeField(header[span.Start:span.End])
		fields = append(fields, name)
	}

	return fields, resolveColumns(header, targets), nil
}
