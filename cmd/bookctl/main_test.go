package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookcatalog/internal/book"
	"bookcatalog/internal/client"
	"bookcatalog/internal/config"
	"bookcatalog/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerURL_EnvOverride(t *testing.T) {
	t.Setenv("BOOKCTL_URL", "http://books.internal:8080")

	assert.Equal(t, "http://books.internal:8080", serverURL())
}

func TestServerURL_Default(t *testing.T) {
	t.Setenv("BOOKCTL_URL", "")

	assert.Equal(t, "http://localhost:3000", serverURL())
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("BOOKCTL_URL=from_file\n"), 0o644))
	t.Setenv("BOOKCTL_URL", "from_env")
	chdir(t, tmp)

	loadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("BOOKCTL_URL"))
}

func TestRun(t *testing.T) {
	cfg := &config.Config{MaxBodyBytes: 1 << 20, RateLimitBurst: 20}
	app := server.New(cfg, book.NewMemoryStore(book.DefaultSeed()), prometheus.NewRegistry())
	ts := httptest.NewServer(app.Handler())
	t.Cleanup(func() {
		ts.Close()
		app.Close()
	})
	c := client.New(ts.URL, client.WithHTTPClient(ts.Client()))
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, c, &out, "list", 0, "", ""))
	assert.Contains(t, out.String(), "The Great Gatsby")
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))

	out.Reset()
	require.NoError(t, run(ctx, c, &out, "add", 0, "Dune", "Frank Herbert"))
	assert.Contains(t, out.String(), "Dune")
	assert.Contains(t, out.String(), "Book created with id 4")

	out.Reset()
	require.NoError(t, run(ctx, c, &out, "edit", 4, "Dune Messiah", ""))
	assert.Contains(t, out.String(), "Dune Messiah")

	out.Reset()
	require.NoError(t, run(ctx, c, &out, "get", 4, "", ""))
	assert.Contains(t, out.String(), "Frank Herbert")

	out.Reset()
	require.NoError(t, run(ctx, c, &out, "delete", 4, "", ""))
	assert.NotContains(t, out.String(), "Dune")

	out.Reset()
	assert.Error(t, run(ctx, c, &out, "delete", 4, "", ""))
	assert.Empty(t, out.String())

	assert.Error(t, run(ctx, c, &out, "purge", 0, "", ""))
}
