// Package modeldto provides data transfer objects for the Shortenit backend API.
package modeldto

import "time"

type (
	// ShortenRequest is the payload for creating a short link.
	ShortenRequest struct {
		OriginalURL    string `json:"originalUrl"`
		Title          string `json:"title,omitempty"`
		CustomAlias    string `json:"customAlias,omitempty"`
		ExpirationDays string `json:"expirationDays,omitempty"`
	}

	// ShortenResponse is returned by the backend on link creation.
	ShortenResponse struct {
		ShortCode   string     `json:"shortCode"`
		ShortURL    string     `json:"shortUrl"`
		OriginalURL string     `json:"originalUrl"`
		Title       string     `json:"title,omitempty"`
		CreatedAt   time.Time  `json:"createdAt"`
		ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	}

	// URLRecord is a stored link as reported by the expand and list operations.
	URLRecord struct {
		Code        string    `json:"code"`
		OriginalURL string    `json:"originalUrl"`
		Title       string    `json:"title,omitempty"`
		ClickCount  int       `json:"clickCount"`
		CreatedAt   time.Time `json:"createdAt"`
		IsActive    bool      `json:"isActive"`
	}

	// URLPage wraps the paginated recent listing.
	URLPage struct {
		Content []URLRecord `json:"content"`
	}

	// ErrorResponse is the structured error payload the backend attaches to
	// failed requests.
	ErrorResponse struct {
		Error string `json:"error"`
	}
)
