package param

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
)

// ReadFileText loads a param CSV as text. A single leading UTF-8
// byte-order mark is stripped; line terminators are preserved exactly as
// stored.
func ReadFileText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("param: read %s: %w", path, err)
	}
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("param: decode %s: %w", path, err)
	}
	return string(decoded), nil
}

// WriteFileText writes text verbatim as UTF-8 without a byte-order mark.
func WriteFileText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("param: write %s: %w", path, err)
	}
	return nil
}

// OutputPath derives the conventional output file name for a rewrite:
// the input name with "_soulx<multiplier>" appended to the stem, dots in
// the multiplier replaced by underscores. "ER_param.csv" scaled by 2.00
// becomes "ER_param_soulx2_00.csv" in the same directory.
func OutputPath(path string, multiplier decimal.Decimal) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	tag := strings.ReplaceAll(FormatMultiplier(multiplier), ".", "_")
	return stem + "_soulx" + tag + ext
}

// FileResult is the outcome of RewriteFile.
type FileResult struct {
	Result

	// OutputPath is where the rewritten text was written.
	OutputPath string
}

// RewriteFile reads a param CSV, rewrites it with Rewrite, and writes
// the result next to the input using OutputPath naming. The input file
// is never modified.
func RewriteFile(path string, multiplier decimal.Decimal, opts RewriteOptions) (*FileResult, error) {
	text, err := ReadFileText(path)
	if err != nil {
		return nil, err
	}

	res, err := Rewrite(text, multiplier, opts)
	if err != nil {
		return nil, err
	}

	out := OutputPath(path, multiplier)
	if err := WriteFileText(out, res.Text); err != nil {
		return nil, err
	}

	return &FileResult{Result: *res, OutputPath: out}, nil
}
