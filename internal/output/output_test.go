package output

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarlcorp/randcred/internal/credential"
	"github.com/zarlcorp/randcred/internal/generate"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		rec  credential.Record
		want string
	}{
		{
			name: "with label",
			rec:  credential.Record{Label: "accountA", Username: "abcdefghij", Password: "p@ss"},
			want: "accountA:\n  -- Username: abcdefghij\n  -- Password: p@ss\n",
		},
		{
			name: "without label",
			rec:  credential.Record{Username: "abcdefghij", Password: "p@ss"},
			want: "  -- Username: abcdefghij\n  -- Password: p@ss\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.rec))
		})
	}
}

func TestAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.txt")
	rec := credential.Record{Label: "mail", Username: "AbCdEfGhIj", Password: "0123456789"}

	n, err := Append(path, rec)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Format(rec), string(data))
	assert.Equal(t, len(data), n)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAppendPreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.txt")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o600))

	rec := credential.Record{Username: "u", Password: "p"}
	_, err := Append(path, rec)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "existing\n"))
	assert.Equal(t, "existing\n"+Format(rec), string(data))
}

func TestAppendMultipleRecordsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.txt")
	g := generate.New()

	var (
		total int
		want  strings.Builder
	)
	for range 3 {
		rec := credential.Record{Username: g.Username(10), Password: g.Password(25, true)}
		n, err := Append(path, rec)
		require.NoError(t, err)
		total += n
		want.WriteString(Format(rec))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(data))
	assert.Equal(t, len(data), total)
	assert.Equal(t, 3, strings.Count(string(data), "  -- Username: "))
}

func TestAppendError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "creds.txt")

	n, err := Append(path, credential.Record{Username: "u", Password: "p"})
	require.Error(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "output: open")
}

func TestResolvePath(t *testing.T) {
	g := generate.New()

	assert.Equal(t, "given.txt", ResolvePath("given.txt", g))

	got := ResolvePath("", g)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{10}$`), got)
}
