// Package config persists the CLI configuration and gates commands on it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/fatih/color"

	"github.com/shortenit/shortenit-cli/internal/prompt"
)

const (
	appDirName     = "shortenit"
	configFileName = "config.json"
	defaultBaseURL = "http://localhost:8080"

	// Number of leading API key characters shown by Show. The rest never
	// reaches the terminal.
	keyMaskPrefix = 10
)

// record is the on-disk layout of the persisted configuration.
type record struct {
	BaseURL string `json:"baseUrl"`
	APIKey  string `json:"apiKey,omitempty"`
}

// envOverrides take precedence over persisted values.
type envOverrides struct {
	BaseURL   string `env:"SHORTENIT_BASE_URL"`
	APIKey    string `env:"SHORTENIT_API_KEY"`
	ConfigDir string `env:"SHORTENIT_CONFIG_DIR"`
}

// Asker abstracts the interactive prompts used by Setup.
type Asker interface {
	Input(message, defaultValue string, validate func(string) error) (string, error)
}

// Store reads and writes the user-scoped configuration record. Concurrent
// invocations running Setup race on the file; the last writer wins.
type Store struct {
	dir       string
	overrides envOverrides
	asker     Asker
	out       io.Writer
}

// New builds a Store rooted at the user config directory, or at
// SHORTENIT_CONFIG_DIR when set.
func New(asker Asker, out io.Writer) (*Store, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, err
	}
	dir := overrides.ConfigDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve user config directory: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}
	return &Store{dir: dir, overrides: overrides, asker: asker, out: out}, nil
}

// BaseURL returns the configured backend base URL, or an empty string.
func (s *Store) BaseURL() string {
	if s.overrides.BaseURL != "" {
		return strings.TrimRight(s.overrides.BaseURL, "/")
	}
	return s.load().BaseURL
}

// APIKey returns the configured API key, or an empty string. The key is
// optional; backends that enforce authentication reject requests at call time.
func (s *Store) APIKey() string {
	if s.overrides.APIKey != "" {
		return s.overrides.APIKey
	}
	return s.load().APIKey
}

// IsConfigured reports whether every required field is present. Only the base
// URL is required.
func (s *Store) IsConfigured() bool {
	return s.BaseURL() != ""
}

// EnsureConfigured runs the interactive setup when the store is not yet
// populated and returns immediately otherwise.
func (s *Store) EnsureConfigured() error {
	if s.IsConfigured() {
		return nil
	}
	fmt.Fprintln(s.out, color.YellowString("\nFirst time setup required!"))
	return s.Setup()
}

// Setup prompts for the backend base URL and API key and persists both. A
// cancelled prompt surfaces as prompt.ErrCancelled after printing a notice;
// callers must exit cleanly on it.
func (s *Store) Setup() error {
	s.Show(s.out)

	current := s.load()
	baseDefault := current.BaseURL
	if baseDefault == "" {
		baseDefault = defaultBaseURL
	}
	baseURL, err := s.asker.Input("Enter your Shortenit backend URL:", baseDefault, validateBaseURL)
	if err != nil {
		return s.noteCancelled(err)
	}
	apiKey, err := s.asker.Input("Enter your API key (leave empty if the backend does not require one):", current.APIKey, nil)
	if err != nil {
		return s.noteCancelled(err)
	}

	rec := record{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		APIKey:  strings.TrimSpace(apiKey),
	}
	if err := s.save(rec); err != nil {
		return err
	}
	fmt.Fprintln(s.out, color.GreenString("\nConfiguration saved successfully!"))
	return nil
}

// Reset clears all persisted fields.
func (s *Store) Reset() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot clear configuration: %w", err)
	}
	fmt.Fprintln(s.out, color.GreenString("\nConfiguration cleared successfully!"))
	return nil
}

// Show prints the current values to w. The API key is shown as a short prefix
// only, keeping the full credential out of terminal scrollback.
func (s *Store) Show(w io.Writer) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint("\nCurrent Configuration:"))
	fmt.Fprintln(w, color.CyanString("Base URL:"), orNotSet(s.BaseURL()))
	fmt.Fprintln(w, color.CyanString("API Key: "), orNotSet(Mask(s.APIKey())))
	fmt.Fprintln(w)
}

// Mask reduces a credential to a displayable prefix.
func Mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > keyMaskPrefix {
		key = key[:keyMaskPrefix]
	}
	return key + "..."
}

func orNotSet(v string) string {
	if v == "" {
		return "Not set"
	}
	return v
}

func validateBaseURL(input string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(input))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("please enter a valid URL")
	}
	return nil
}

func (s *Store) noteCancelled(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(s.out, color.YellowString("\nConfiguration cancelled."))
	}
	return err
}

func (s *Store) path() string {
	return filepath.Join(s.dir, configFileName)
}

func (s *Store) load() record {
	var rec record
	data, err := os.ReadFile(s.path())
	if err != nil {
		return rec
	}
	_ = json.Unmarshal(data, &rec)
	return rec
}

func (s *Store) save(rec record) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return fmt.Errorf("cannot persist configuration: %w", err)
	}
	return nil
}
