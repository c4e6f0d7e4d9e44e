package commands

import (
	"context"
	"io"

	"github.com/shortenit/shortenit-cli/internal/api/modeldto"
)

// APIClient is the backend surface the orchestrators depend on.
type APIClient interface {
	ShortenURL(ctx context.Context, req modeldto.ShortenRequest) (*modeldto.ShortenResponse, error)
	ExpandURL(ctx context.Context, ref string) (*modeldto.URLRecord, error)
	DeleteURL(ctx context.Context, ref string) error
	ListURLs(ctx context.Context) ([]modeldto.URLRecord, error)
	ListAllURLs(ctx context.Context) ([]modeldto.URLRecord, error)
}

// TitleFetcher resolves the HTML title of a page before shortening.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, pageURL string) (string, error)
}

// QRRenderer renders QR codes for shortened links.
type QRRenderer interface {
	PrintToTerminal(w io.Writer, url string)
	SaveToDownloads(url, ref string) (string, error)
}

// Confirmer asks a yes/no question on the terminal.
type Confirmer interface {
	Confirm(message string, defaultValue bool) (bool, error)
}
