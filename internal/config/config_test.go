package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortenit/shortenit-cli/internal/prompt"
)

// scriptedAsker replays canned answers and records which validators it ran.
type scriptedAsker struct {
	answers []string
	err     error
}

func (a *scriptedAsker) Input(message, defaultValue string, validate func(string) error) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	answer := a.answers[0]
	a.answers = a.answers[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func newTestStore(t *testing.T, asker Asker) (*Store, *bytes.Buffer) {
	t.Helper()
	os.Clearenv()
	t.Setenv("SHORTENIT_CONFIG_DIR", t.TempDir())
	out := &bytes.Buffer{}
	store, err := New(asker, out)
	require.NoError(t, err)
	return store, out
}

func TestStore_IsConfigured_EmptyStore(t *testing.T) {
	store, _ := newTestStore(t, &scriptedAsker{})
	assert.False(t, store.IsConfigured())
	assert.Equal(t, "", store.BaseURL())
	assert.Equal(t, "", store.APIKey())
}

func TestStore_Setup(t *testing.T) {
	asker := &scriptedAsker{answers: []string{"http://localhost:9090/", "sk-1234567890abcdef"}}
	store, out := newTestStore(t, asker)

	require.NoError(t, store.Setup())
	assert.True(t, store.IsConfigured())
	assert.Equal(t, "http://localhost:9090", store.BaseURL(), "trailing slash must be stripped")
	assert.Equal(t, "sk-1234567890abcdef", store.APIKey())
	assert.Contains(t, out.String(), "Configuration saved successfully!")
}

func TestStore_Setup_EmptyAPIKeyAllowed(t *testing.T) {
	asker := &scriptedAsker{answers: []string{"https://sho.rt", ""}}
	store, _ := newTestStore(t, asker)

	require.NoError(t, store.Setup())
	assert.True(t, store.IsConfigured())
	assert.Equal(t, "", store.APIKey())
}

func TestStore_Setup_Cancelled(t *testing.T) {
	asker := &scriptedAsker{err: prompt.ErrCancelled}
	store, out := newTestStore(t, asker)

	err := store.Setup()
	assert.ErrorIs(t, err, prompt.ErrCancelled)
	assert.Contains(t, out.String(), "Configuration cancelled.")
	assert.False(t, store.IsConfigured())
}

func TestStore_Reset(t *testing.T) {
	asker := &scriptedAsker{answers: []string{"http://localhost:9090", "secret"}}
	store, _ := newTestStore(t, asker)

	require.NoError(t, store.Setup())
	require.True(t, store.IsConfigured())
	require.NoError(t, store.Reset())
	assert.False(t, store.IsConfigured())
}

func TestStore_Reset_NoStoredConfig(t *testing.T) {
	store, _ := newTestStore(t, &scriptedAsker{})
	assert.NoError(t, store.Reset())
}

func TestStore_EnvOverrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("SHORTENIT_CONFIG_DIR", t.TempDir())
	t.Setenv("SHORTENIT_BASE_URL", "https://sho.rt/")
	t.Setenv("SHORTENIT_API_KEY", "env-key")

	store, err := New(&scriptedAsker{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "https://sho.rt", store.BaseURL())
	assert.Equal(t, "env-key", store.APIKey())
	assert.True(t, store.IsConfigured())
}

func TestStore_Show_MasksAPIKey(t *testing.T) {
	asker := &scriptedAsker{answers: []string{"http://localhost:9090", "sk-1234567890abcdef"}}
	store, _ := newTestStore(t, asker)
	require.NoError(t, store.Setup())

	out := &bytes.Buffer{}
	store.Show(out)
	assert.Contains(t, out.String(), "sk-1234567...")
	assert.NotContains(t, out.String(), "sk-1234567890abcdef")
}

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "empty", key: "", want: ""},
		{name: "short key", key: "abc", want: "abc..."},
		{name: "long key", key: "0123456789abcdef", want: "0123456789..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.key))
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	assert.NoError(t, validateBaseURL("http://localhost:8080"))
	assert.NoError(t, validateBaseURL("https://sho.rt"))
	assert.Error(t, validateBaseURL("not a url"))
	assert.Error(t, validateBaseURL("ftp://sho.rt"))
	assert.Error(t, validateBaseURL(""))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	os.Clearenv()
	dir := t.TempDir()
	t.Setenv("SHORTENIT_CONFIG_DIR", dir)

	asker := &scriptedAsker{answers: []string{"http://localhost:9090", "secret"}}
	store, err := New(asker, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, store.Setup())

	reopened, err := New(&scriptedAsker{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", reopened.BaseURL())

	_, err = os.Stat(filepath.Join(dir, configFileName))
	assert.NoError(t, err)
}
