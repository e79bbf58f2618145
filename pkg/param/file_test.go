package param

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFileText_StripsLeadingBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbfgetSoul\n1\n"), 0644))

	text, err := ReadFileText(path)
	require.NoError(t, err)
	require.Equal(t, "getSoul\n1\n", text)
}

func TestReadFileText_PreservesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\r\n1,2\r\n"), 0644))

	text, err := ReadFileText(path)
	require.NoError(t, err)
	require.Equal(t, "a,b\r\n1,2\r\n", text)
}

func TestWriteFileText_NoBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, WriteFileText(path, "a\r\n1\r\n"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("a\r\n1\r\n"), raw)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path string
		mult string
		want string
	}{
		{"ER_param.csv", "2.00", "ER_param_soulx2_00.csv"},
		{"data/params.csv", "0.5", filepath.Join("data", "params_soulx0_5.csv")},
		{"noext", "3", "noext_soulx3"},
	}

	for _, tt := range tests {
		m, err := ParseMultiplier(tt.mult)
		require.NoError(t, err)
		require.Equal(t, tt.want, OutputPath(tt.path, m))
	}
}

func TestRewriteFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "souls.csv")
	require.NoError(t, os.WriteFile(in, []byte("\xef\xbb\xbfgetSoul,name\r\n100,boss\r\n0,npc\r\n"), 0644))

	m, err := ParseMultiplier("2.00")
	require.NoError(t, err)

	res, err := RewriteFile(in, m, RewriteOptions{})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "souls_soulx2_00.csv"), res.OutputPath)
	require.Equal(t, 1, res.CellsChanged)
	require.Equal(t, 1, res.ZeroCellsSkipped)

	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	// BOM stripped, CRLF preserved, only the target cell changed.
	require.Equal(t, "getSoul,name\r\n200,boss\r\n0,npc\r\n", string(out))

	// The input file is untouched.
	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	require.Equal(t, "\xef\xbb\xbfgetSoul,name\r\n100,boss\r\n0,npc\r\n", string(orig))
}

func TestRewriteFile_MissingInput(t *testing.T) {
	m, err := ParseMultiplier("1")
	require.NoError(t, err)

	_, err = RewriteFile(filepath.Join(t.TempDir(), "nope.csv"), m, RewriteOptions{})
	require.Error(t, err)
}
