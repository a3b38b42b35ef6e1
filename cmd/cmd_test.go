package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args in an isolated environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("FLASHDECK_DB", filepath.Join(dir, "flashdeck.db"))
	t.Chdir(dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "flashdeck (devel)")
}

func TestDeckAddRejectsEmptyForm(t *testing.T) {
	_, err := execute(t, "deck", "add", "--question", "  ", "--answer", "gato")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question is required")
}

func TestDeckSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "question": "dog", "answer": "cachorro"},
			{"id": 2, "question": "cat", "answer": "gato"},
			{"id": 3, "question": "hotdog", "answer": "cachorro-quente", "level": 2}
		]`))
	}))
	defer srv.Close()

	out, err := execute(t, "--server", srv.URL, "deck", "search", "--question", "dog")
	require.NoError(t, err)
	assert.Contains(t, out, "2 matches found")
	assert.Contains(t, out, "hotdog")
	assert.NotContains(t, out, "gato")
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded yet.")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 8))
	assert.Equal(t, "pássa…", clip("pássaro!", 6))
}
