package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/mmcdole/marquee/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batmanResults = `{
	"page": 1,
	"results": [
		{"id": 268, "title": "Batman", "release_date": "1989-06-23", "vote_average": 7.2, "vote_count": 7500},
		{"id": 272, "title": "Batman Begins", "release_date": "2005-06-10", "vote_average": 7.7, "vote_count": 20000},
		{"id": 155, "title": "The Dark Knight", "release_date": "2008-07-16", "vote_average": 8.5, "vote_count": 32000}
	],
	"total_pages": 1,
	"total_results": 3
}`

// isolateEnv keeps the developer's environment out of the config under test
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MARQUEE_TMDB_TOKEN", "TMDB_TOKEN", "MARQUEE_TMDB_BASE_URL",
		"MARQUEE_LOGGING_FILE", "MARQUEE_UI_SETTLE_DELAY",
	} {
		t.Setenv(key, "")
	}
}

func writeTestConfig(t *testing.T, baseURL, token string) string {
	t.Helper()
	dir := t.TempDir()
	content := "tmdb:\n" +
		"  base_url: " + baseURL + "\n" +
		"  token: \"" + token + "\"\n" +
		"logging:\n" +
		"  file: " + filepath.Join(dir, "marquee.log") + "\n" +
		"  level: debug\n"

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(args ...string) cliResult {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestSearchCommand(t *testing.T) {
	isolateEnv(t)

	var gotQuery, gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(batmanResults))
	}))
	defer server.Close()

	cfgPath := writeTestConfig(t, server.URL+"/3", "test-token")

	t.Run("prints all results as TSV", func(t *testing.T) {
		res := runCLI("--config", cfgPath, "search", "dark", "knight")
		require.NoError(t, res.err)

		assert.Equal(t, "/3/search/movie", gotPath)
		assert.Equal(t, "dark knight", gotQuery)
		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t,
			"268\tBatman\t1989\t7.2\t7500\n"+
				"272\tBatman Begins\t2005\t7.7\t20000\n"+
				"155\tThe Dark Knight\t2008\t8.5\t32000\n",
			res.stdout)
		assert.Empty(t, res.stderr)
	})

	t.Run("filter and limit", func(t *testing.T) {
		res := runCLI("--config", cfgPath, "search", "batman", "--filter", "year >= 2000", "--limit", "1")
		require.NoError(t, res.err)
		assert.Equal(t, "272\tBatman Begins\t2005\t7.7\t20000\n", res.stdout)
	})

	t.Run("negative limit", func(t *testing.T) {
		res := runCLI("--config", cfgPath, "search", "batman", "-n", "-1")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "invalid --limit")
	})

	t.Run("requires a query", func(t *testing.T) {
		res := runCLI("--config", cfgPath, "search")
		require.Error(t, res.err)
	})
}

func TestSearchCommand_InvalidFilterSkipsRequest(t *testing.T) {
	isolateEnv(t)

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(batmanResults))
	}))
	defer server.Close()

	res := runCLI("--config", writeTestConfig(t, server.URL, "test-token"),
		"search", "batman", "--filter", "year >=")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid filter expression")
	assert.Zero(t, requests.Load())
}

func TestSearchCommand_EmptyResults(t *testing.T) {
	isolateEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[],"total_pages":0,"total_results":0}`))
	}))
	defer server.Close()

	res := runCLI("--config", writeTestConfig(t, server.URL, "test-token"), "search", "zzzznotamovie")

	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "info: No movies found for your request.\n", res.stderr)
}

func TestSearchCommand_GatewayFailure(t *testing.T) {
	isolateEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key","success":false}`))
	}))
	defer server.Close()

	res := runCLI("--config", writeTestConfig(t, server.URL, "bad-token"), "search", "x")

	require.ErrorIs(t, res.err, errSearchFailed)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "error: Something went wrong. Try again later.\n", res.stderr)
}

func TestSearchCommand_MissingToken(t *testing.T) {
	isolateEnv(t)

	res := runCLI("--config", writeTestConfig(t, "http://127.0.0.1:1", ""), "search", "x")

	require.ErrorIs(t, res.err, config.ErrMissingToken)
}

func TestRootCommand_Version(t *testing.T) {
	res := runCLI("--version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, Version)
}
