package combine

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFormatFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"src/main.go": "package main\n"})

	block, err := FormatFile(root, native("src/main.go")[0], zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Equal(t, "# "+native("src/main.go")[0]+"\n```\npackage main\n```\n\n", block)
}

func TestFormatFileWithoutTrailingNewline(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.txt": "A"})

	block, err := FormatFile(root, "a.txt", nil)

	require.NoError(t, err)
	assert.Equal(t, "# a.txt\n```\nA```\n\n", block)
}

func TestFormatFileLossyDecoding(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"blob.dat": "ok\xff\xfe!\n"})

	block, err := FormatFile(root, "blob.dat", nil)

	require.NoError(t, err)
	assert.True(t, utf8.ValidString(block))
	assert.Contains(t, block, "ok�")
	assert.Contains(t, block, "!\n```\n\n")
}

func TestFormatFileMissing(t *testing.T) {
	_, err := FormatFile(t.TempDir(), "missing.txt", nil)
	assert.Error(t, err)
}

func TestDecodeLossyKeepsValidText(t *testing.T) {
	text := "héllo, 世界\n"
	assert.Equal(t, text, decodeLossy([]byte(text)))
}

func TestWriteCombined(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"README.md": "hello\n",
		"a.txt":     "A",
	})

	var out bytes.Buffer
	n, skipped, err := WriteCombined(&out, root, []string{"README.md", "a.txt"}, writeOptions{}, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Empty(t, skipped)
	want := "# README.md\n```\nhello\n```\n\n# a.txt\n```\nA```\n\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, len(want), n)
}

func TestWriteCombinedUnreadableFileAborts(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.txt": "A", "c.txt": "C"})

	var out bytes.Buffer
	_, _, err := WriteCombined(&out, root, []string{"a.txt", "b.txt", "c.txt"}, writeOptions{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.txt")
	assert.NotContains(t, out.String(), "# c.txt")
}

func TestWriteCombinedSkipUnreadable(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.txt": "A", "c.txt": "C"})

	var out bytes.Buffer
	_, skipped, err := WriteCombined(&out, root, []string{"a.txt", "b.txt", "c.txt"}, writeOptions{skipUnreadable: true}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, skipped)
	assert.Equal(t, "# a.txt\n```\nA```\n\n# c.txt\n```\nC```\n\n", out.String())
}

func TestWriteCombinedWithTree(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.txt": "A"})

	var out bytes.Buffer
	_, _, err := WriteCombined(&out, root, []string{"a.txt"}, writeOptions{tree: true}, nil)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "# Tree\n```\n"))
	assert.True(t, strings.HasSuffix(out.String(), "# a.txt\n```\nA```\n\n"))
}
