/*
Package param rewrites soul-reward columns in Elden Ring param CSV
exports while leaving every other byte of the file untouched.

# Quick Start

Scale a file on disk:

	res, err := param.RewriteFile("ER_param.csv", mult, param.RewriteOptions{})

Or work on text already in memory:

	res, err := param.Rewrite(text, mult, param.RewriteOptions{})

# What Gets Rewritten

For every data row, each target column whose cell holds a plain integer
literal (optional sign, digits only) is multiplied by the caller's
decimal multiplier and rounded half away from zero at the integer scale.
Everything else — the header row, non-target columns, quoting style,
CRLF vs LF terminators, interior whitespace, non-numeric cells — is
preserved byte-for-byte. Zero-valued cells are never changed; they are
tallied separately.

The default target set is getSoul, bonusSoul_single and bonusSoul_multi;
RewriteOptions.TargetColumns overrides it.

# Multiplier

ParseMultiplier validates a user-entered string as an exact decimal in
[0.00, 10.00]. All arithmetic is exact decimal (shopspring/decimal);
binary floating point is never involved, so 0.1 means exactly one tenth
even against very large soul values.

# Error Handling

Fatal conditions are detected before any output is produced:

  - ErrInvalidMultiplier — the multiplier string is not a decimal
    numeral or is out of range
  - ErrNoRecords — the input text is empty
  - ErrNoTargetColumns — no target column name matched any header field

Ragged rows, non-integer cells and zeros are per-cell skips, never
errors.

# File Helpers

ReadFileText strips a single leading UTF-8 byte-order mark; WriteFileText
writes the text back verbatim without reintroducing one. OutputPath
derives the conventional output name (base_soulx2_00.csv for a 2.00
multiplier).
*/
package param
