// Package csvspan splits delimited text into byte spans without copying,
// so that edits can be applied against offsets in the original buffer.
package csvspan

// Quote is the quoting character recognized by the splitter and codec.
const Quote = '"'

// Comma is the field delimiter.
const Comma = ','

// Span is a half-open [Start, End) byte range into the buffer it was
// produced from.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// SplitRecords splits text into record spans. A record span includes its
// trailing '\n' (and any preceding '\r'); the final record may lack a
// terminator. Line breaks inside an open quoted section do not end a
// record. Empty input yields no spans.
func SplitRecords(text string) []Span {
	var spans []Span
	start := 0
	inQuotes := false

	for i := 0; i < len(text); {
		switch {
		case text[i] == Quote:
			if inQuotes {
				if i+1 < len(text) && text[i+1] == Quote {
					// Escaped quote: consume both, stay inside.
					i += 2
					continue
				}
				inQuotes = false
			} else {
				inQuotes = true
			}
			i++
		case text[i] == '\n' && !inQuotes:
			spans = append(spans, Span{Start: start, End: i + 1})
			start = i + 1
			i++
		default:
			i++
		}
	}

	if start < len(text) {
		spans = append(spans, Span{Start: start, End: len(text)})
	}
	return spans
}

// SplitFields splits one record body into field spans. The delimiter is
// excluded from both neighboring spans; commas inside an open quoted
// section do not split. A record body always yields at least one span
// (an empty body is a single empty field).
func SplitFields(record string) []Span {
	var spans []Span
	fieldStart := 0
	inQuotes := false

	for i := 0; i < len(record); {
		switch {
		case record[i] == Quote:
			if inQuotes {
				if i+1 < len(record) && record[i+1] == Quote {
					i += 2
					continue
				}
				inQuotes = false
			} else {
				inQuotes = true
			}
			i++
		case record[i] == Comma && !inQuotes:
			spans = append(spans, Span{Start: fieldStart, End: i})
			fieldStart = i + 1
			i++
		default:
			i++
		}
	}

	spans = append(spans, Span{Start: fieldStart, End: len(record)})
	return spans
}

// RecordBody strips the line terminator ("\r\n" or "\n") from a raw
// record, returning the body that field spans are measured against.
func RecordBody(record string) string {
	if n := len(record); n >= 2 && record[n-2] == '\r' && record[n-1] == '\n' {
		return record[:n-2]
	} else if n >= 1 && record[n-1] == '\n' {
		return record[:n-1]
	}
	return record
}
