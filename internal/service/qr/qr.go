// Package qr renders QR codes for shortened links.
package qr

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mdp/qrterminal/v3"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/shortenit/shortenit-cli/pkg/urlref"
)

const (
	pngSize    = 512
	filePrefix = "shortenit-qr"
)

// Renderer writes QR codes to the terminal or to the user's downloads folder.
type Renderer struct {
	// dir overrides the downloads location when non-empty.
	dir string
}

// NewRenderer returns a Renderer targeting $HOME/Downloads.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// PrintToTerminal renders a compact half-block QR code for url onto w.
func (r *Renderer) PrintToTerminal(w io.Writer, url string) {
	qrterminal.GenerateHalfBlock(url, qrterminal.L, w)
}

// SaveToDownloads writes a PNG QR code for url into the downloads directory
// and returns the absolute path written. The filename embeds the short code
// and the current time so repeated invocations never collide. ref may be a
// bare code or a full short URL.
func (r *Renderer) SaveToDownloads(url, ref string) (string, error) {
	dir, err := r.downloadsDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create downloads directory: %w", err)
	}
	code := urlref.Normalize(ref)
	name := fmt.Sprintf("%s-%s-%d.png", filePrefix, code, time.Now().Unix())
	path := filepath.Join(dir, name)
	if err := qrcode.WriteFile(url, qrcode.Highest, pngSize, path); err != nil {
		return "", fmt.Errorf("cannot write QR code image: %w", err)
	}
	return path, nil
}

func (r *Renderer) downloadsDir() (string, error) {
	if r.dir != "" {
		return r.dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}
