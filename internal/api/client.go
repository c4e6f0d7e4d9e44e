// Package api implements the typed HTTP client for the Shortenit backend.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/shortenit/shortenit-cli/internal/api/errors"
	"github.com/shortenit/shortenit-cli/internal/api/modeldto"
	"github.com/shortenit/shortenit-cli/pkg/urlref"
)

const (
	urlsPath    = "/api/urls"
	urlsAllPath = "/api/urls/all"

	recentPageSize = 10
)

// Client issues JSON requests to a fixed backend, attaching the configured API
// key to every request. It is stateless and safe to rebuild per invocation.
type Client struct {
	rest *resty.Client
	log  *slog.Logger
}

// New constructs a Client bound to baseURL. apiKey may be empty when the
// backend does not enforce authentication.
func New(baseURL, apiKey string, log *slog.Logger) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		rest.SetHeader("X-API-Key", apiKey)
	}
	return &Client{rest: rest, log: log}
}

// ShortenURL creates a short link. A taken custom alias surfaces as
// *apierrors.ConflictError.
func (c *Client) ShortenURL(ctx context.Context, req modeldto.ShortenRequest) (*modeldto.ShortenResponse, error) {
	var (
		result  modeldto.ShortenResponse
		payload modeldto.ErrorResponse
	)
	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&payload).
		Post(urlsPath)
	if err != nil {
		return nil, &apierrors.TransportError{Err: err}
	}
	c.log.Debug("shorten request finished", slog.Int("status", res.StatusCode()))
	if res.IsError() {
		if res.StatusCode() == http.StatusConflict {
			return nil, &apierrors.ConflictError{Alias: req.CustomAlias, Msg: payload.Error}
		}
		return nil, classify(res, payload, req.CustomAlias)
	}
	return &result, nil
}

// ExpandURL resolves a short code, or a full short URL, to its stored record.
func (c *Client) ExpandURL(ctx context.Context, ref string) (*modeldto.URLRecord, error) {
	code := urlref.Normalize(ref)
	var (
		record  modeldto.URLRecord
		payload modeldto.ErrorResponse
	)
	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(&record).
		SetError(&payload).
		Get(urlsPath + "/" + code)
	if err != nil {
		return nil, &apierrors.TransportError{Err: err}
	}
	c.log.Debug("expand request finished", slog.String("code", code), slog.Int("status", res.StatusCode()))
	if res.IsError() {
		return nil, classify(res, payload, code)
	}
	return &record, nil
}

// DeleteURL removes a stored link by short code or full short URL.
func (c *Client) DeleteURL(ctx context.Context, ref string) error {
	code := urlref.Normalize(ref)
	var payload modeldto.ErrorResponse
	res, err := c.rest.R().
		SetContext(ctx).
		SetError(&payload).
		Delete(urlsPath + "/" + code)
	if err != nil {
		return &apierrors.TransportError{Err: err}
	}
	c.log.Debug("delete request finished", slog.String("code", code), slog.Int("status", res.StatusCode()))
	if res.IsError() {
		return classify(res, payload, code)
	}
	return nil
}

// ListURLs fetches the most recent page of stored links, newest first.
func (c *Client) ListURLs(ctx context.Context) ([]modeldto.URLRecord, error) {
	var (
		page    modeldto.URLPage
		payload modeldto.ErrorResponse
	)
	res, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page": "0",
			"size": strconv.Itoa(recentPageSize),
		}).
		SetResult(&page).
		SetError(&payload).
		Get(urlsPath)
	if err != nil {
		return nil, &apierrors.TransportError{Err: err}
	}
	c.log.Debug("list request finished", slog.Int("status", res.StatusCode()), slog.Int("records", len(page.Content)))
	if res.IsError() {
		return nil, classify(res, payload, "")
	}
	return page.Content, nil
}

// ListAllURLs fetches every stored link. The backend returns its natural
// oldest-first order; the result is reversed here so rendering is always
// newest first, matching the recent listing.
func (c *Client) ListAllURLs(ctx context.Context) ([]modeldto.URLRecord, error) {
	var (
		records []modeldto.URLRecord
		payload modeldto.ErrorResponse
	)
	res, err := c.rest.R().
		SetContext(ctx).
		SetResult(&records).
		SetError(&payload).
		Get(urlsAllPath)
	if err != nil {
		return nil, &apierrors.TransportError{Err: err}
	}
	c.log.Debug("list-all request finished", slog.Int("status", res.StatusCode()), slog.Int("records", len(records)))
	if res.IsError() {
		return nil, classify(res, payload, "")
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// classify maps a non-2xx response onto the closed error set. A structured
// backend message wins over the generic fallback but not over the dedicated
// auth and not-found conditions.
func classify(res *resty.Response, payload modeldto.ErrorResponse, code string) error {
	switch res.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &apierrors.AuthError{Status: res.StatusCode()}
	case http.StatusNotFound:
		return &apierrors.NotFoundError{Code: code}
	}
	if payload.Error != "" {
		return &apierrors.ServerMessageError{Msg: payload.Error}
	}
	return &apierrors.UnknownError{Status: res.StatusCode()}
}
