package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/shortenit/shortenit-cli/internal/api/errors"
	"github.com/shortenit/shortenit-cli/internal/api/modeldto"
	"github.com/shortenit/shortenit-cli/internal/mocks"
)

func TestShort_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockAPIClient(ctrl)
	titles := mocks.NewMockTitleFetcher(ctrl)
	qr := mocks.NewMockQRRenderer(ctrl)
	out := &bytes.Buffer{}

	titles.EXPECT().FetchTitle(gomock.Any(), "https://example.com").Return("Example Domain", nil)
	client.EXPECT().ShortenURL(gomock.Any(), modeldto.ShortenRequest{
		OriginalURL: "https://example.com",
		Title:       "Example Domain",
	}).Return(&modeldto.ShortenResponse{
		ShortCode: "abc123",
		ShortURL:  "https://sho.rt/abc123",
		Title:     "Example Domain",
	}, nil)

	err := NewShort(client, titles, qr, out).Execute(context.Background(), "https://example.com", ShortOptions{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "https://sho.rt/abc123")
	assert.Contains(t, out.String(), "Example Domain")
}

func TestShort_Execute_TitleFlagSkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockAPIClient(ctrl)
	titles := mocks.NewMockTitleFetcher(ctrl)
	qr := mocks.NewMockQRRenderer(ctrl)
	out := &bytes.Buffer{}

	client.EXPECT().ShortenURL(gomock.Any(), modeldto.ShortenRequest{
		OriginalURL: "https://example.com",
		Title:       "My Title",
	}).Return(&modeldto.ShortenResponse{ShortCode: "abc123", ShortURL: "https://sho.rt/abc123"}, nil)

	err := NewShort(client, titles, qr, out).Execute(context.Background(), "https://example.com", ShortOptions{Title: "My Title"})
	require.NoError(t, err)
}

func TestShort_Execute_TitleFailureAbortsBeforeShorten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockAPIClient(ctrl)
	titles := mocks.NewMockTitleFetcher(ctrl)
	qr := mocks.NewMockQRRenderer(ctrl)
	out := &bytes.Buffer{}

	titles.EXPECT().FetchTitle(gomock.Any(), "https://example.com").Return("", errors.New("no title found on the page"))

	err := NewShort(client, titles, qr, out).Execute(context.Background(), "https://example.com", ShortOptions{})
	require.Error(t, err)
	assert.Contains(t, out.String(), "no title found on the page")
}

func TestShort_Execute_AliasConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockAPIClient(ctrl)
	titles := mocks.NewMockTitleFetcher(ctrl)
	qr := mocks.NewMockQRRenderer(ctrl)
	out := &bytes.Buffer{}

	titles.EXPECT().FetchTitle(gomock.Any(), gomock.Any()).Return("Example Domain", nil)
	client.EXPECT().ShortenURL(gomock.Any(), gomock.Any()).
		Return(nil, &apierrors.ConflictError{Alias: "taken"})

	err := NewShort(client, titles, qr, out).Execute(context.Background(), "https://example.com", ShortOptions{CustomAlias: "taken"})
	require.Error(t, err)
	var conflict *apierrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Contains(t, out.String(), `Custom alias "taken" is already taken`)
}

func TestShort_Execute_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockAPIClient(ctrl)
	titles := mocks.NewMockTitleFetcher(ctrl)
	qr := mocks.NewMockQRRenderer(ctrl)
	out := &bytes.Buffer{}

	err := NewShort(client, titles, qr, out).Execute(context.Background(), "not a url", ShortOptions{})
	require.Error(t, err)
	assert.Contains(t, out.String(), "Not a valid URL")
}

func TestShort_Execute_PrintAndSaveQR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockAPIClient(ctrl)
	titles := mocks.NewMockTitleFetcher(ctrl)
	qr := mocks.NewMockQRRenderer(ctrl)
	out := &bytes.Buffer{}

	expires := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	titles.EXPECT().FetchTitle(gomock.Any(), gomock.Any()).Return("Example Domain", nil)
	client.EXPECT().ShortenURL(gomock.Any(), gomock.Any()).Return(&modeldto.ShortenResponse{
		ShortCode: "abc123",
		ShortURL:  "https://sho.rt/abc123",
		ExpiresAt: &expires,
	}, nil)
	qr.EXPECT().PrintToTerminal(gomock.Any(), "https://sho.rt/abc123")
	qr.EXPECT().SaveToDownloads("https://sho.rt/abc123", "abc123").Return("/home/u/Downloads/shortenit-qr-abc123-1.png", nil)

	err := NewShort(client, titles, qr, out).Execute(context.Background(), "https://example.com", ShortOptions{PrintQR: true, SaveQR: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "31/12/2026")
	assert.Contains(t, out.String(), "/home/u/Downloads/shortenit-qr-abc123-1.png")
}
