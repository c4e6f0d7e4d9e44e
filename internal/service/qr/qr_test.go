package qr

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintToTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	NewRenderer().PrintToTerminal(out, "https://sho.rt/abc123")
	assert.NotZero(t, out.Len())
}

func TestSaveToDownloads(t *testing.T) {
	renderer := &Renderer{dir: t.TempDir()}

	path, err := renderer.SaveToDownloads("https://sho.rt/abc123", "abc123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "shortenit-qr-abc123-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestSaveToDownloads_NormalizesReference(t *testing.T) {
	renderer := &Renderer{dir: t.TempDir()}

	path, err := renderer.SaveToDownloads("https://sho.rt/abc123", "https://sho.rt/abc123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "shortenit-qr-abc123-"))
}

func TestSaveToDownloads_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Downloads")
	renderer := &Renderer{dir: dir}

	_, err := renderer.SaveToDownloads("https://sho.rt/abc123", "abc123")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
