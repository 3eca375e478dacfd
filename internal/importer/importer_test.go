package importer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePage = `<!DOCTYPE html>
<html>
<head>
	<title>Neon Drift on Store</title>
	<meta property="og:title" content="Neon Drift">
	<meta property="og:description" content="An arcade racer through a rain-soaked city.">
	<meta property="og:image" content="https://cdn.example.com/neon-drift/header.jpg">
</head>
<body>
	<div id="developers_list"><a href="/dev/1">Night Shift Games</a></div>
	<div class="dev_row">
		<div class="subtitle">Publisher:</div>
		<div class="summary">Big Box Publishing</div>
	</div>
	<div class="release_date"><div class="date">14 Mar, 2024</div></div>
</body>
</html>`

const bareBonesPage = `<html>
<head><title>Plain Page</title></head>
<body></body>
</html>`

func newTestImporter() *Importer {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestImporter_Import(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(storePage))
	}))
	defer server.Close()

	draft, err := newTestImporter().Import(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Neon Drift", draft.Title)
	assert.Equal(t, "An arcade racer through a rain-soaked city.", draft.Description)
	assert.Equal(t, "https://cdn.example.com/neon-drift/header.jpg", draft.CoverImage)
	assert.Equal(t, "Night Shift Games", draft.Developer)
	assert.Equal(t, "Big Box Publishing", draft.Publisher)
	assert.Equal(t, "2024-03-14", draft.ReleaseDate)
	assert.Equal(t, server.URL, draft.SourceURL)
}

func TestImporter_Import_TitleFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(bareBonesPage))
	}))
	defer server.Close()

	draft, err := newTestImporter().Import(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Plain Page", draft.Title)
	assert.Empty(t, draft.ReleaseDate)
}

func TestImporter_Import_NoTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body></body></html>"))
	}))
	defer server.Close()

	_, err := newTestImporter().Import(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestImporter_Import_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestImporter().Import(context.Background(), server.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestImporter_Import_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(storePage))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestImporter().Import(ctx, server.URL)
	assert.Error(t, err)
}
