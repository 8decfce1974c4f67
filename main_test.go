package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/hn/domain"
)

func TestParseListArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		category domain.Category
		limit    int
		err      string
	}{
		{name: "defaults", args: nil, category: domain.CategoryTop, limit: 10},
		{name: "category", args: []string{"ask"}, category: domain.CategoryAsk, limit: 10},
		{name: "category and limit", args: []string{"show", "3"}, category: domain.CategoryShow, limit: 3},
		{name: "unknown category", args: []string{"hot"}, err: `unknown category "hot"`},
		{name: "limit without category", args: []string{"5"}, err: `unknown category "5"`},
		{name: "zero limit", args: []string{"top", "0"}, err: "limit must be a positive integer"},
		{name: "bad limit", args: []string{"top", "ten"}, err: "limit must be a positive integer"},
		{name: "too many", args: []string{"top", "3", "x"}, err: "unexpected argument: x"},
		{name: "trailing flag", args: []string{"top", "--verbose"}, err: "flag --verbose must come before the arguments"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			category, limit, err := parseListArgs(tc.args)
			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.category, category)
			require.Equal(t, tc.limit, limit)
		})
	}
}

func TestParseViewArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		rank  int
		limit int
		err   string
	}{
		{name: "rank only", args: []string{"2"}, rank: 2},
		{name: "rank and limit", args: []string{"2", "5"}, rank: 2, limit: 5},
		{name: "zero limit means none", args: []string{"2", "0"}, rank: 2},
		{name: "missing rank", args: nil, err: "missing required argument: rank"},
		{name: "zero rank", args: []string{"0"}, err: "rank must be a positive integer"},
		{name: "negative rank", args: []string{"-3"}, err: "rank must be a positive integer"},
		{name: "word rank", args: []string{"first"}, err: "rank must be a positive integer"},
		{name: "negative limit", args: []string{"1", "-1"}, err: "limit must be a non-negative integer"},
		{name: "trailing flag", args: []string{"1", "-o"}, err: "flag -o must come before the arguments"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rank, limit, err := parseViewArgs(tc.args)
			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rank, rank)
			require.Equal(t, tc.limit, limit)
		})
	}
}

func TestSplitViewArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		rest  []string
		flags viewFlags
		err   string
	}{
		{name: "none", args: []string{"2"}, rest: []string{"2"}},
		{name: "short after rank", args: []string{"2", "-o"}, rest: []string{"2"}, flags: viewFlags{open: true}},
		{name: "long after limit", args: []string{"2", "1", "--open"}, rest: []string{"2", "1"}, flags: viewFlags{open: true}},
		{name: "between", args: []string{"2", "-c", "5", "--prune"}, rest: []string{"2", "5"}, flags: viewFlags{copy: true, prune: true}},
		{name: "pager", args: []string{"3", "--pager"}, rest: []string{"3"}, flags: viewFlags{pager: true}},
		{name: "negative number is positional", args: []string{"-1"}, rest: []string{"-1"}},
		{name: "double dash", args: []string{"2", "--", "-o"}, rest: []string{"2", "-o"}},
		{name: "unknown", args: []string{"2", "--bogus"}, err: "flag provided but not defined: --bogus"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rest, flags, err := splitViewArgs(tc.args)
			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rest, rest)
			require.Equal(t, tc.flags, flags)
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	settings := map[string]string{
		"vcs.revision": "0123456789abcdef0123",
		"vcs.time":     "2026-10-01T10:00:00Z",
	}

	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", settings)
	require.Equal(t, "v1.2.3", v)
	require.Equal(t, "0123456789ab", c)
	require.Equal(t, "2026-10-01T10:00:00Z", d)

	v, c, d = resolveVersionInfo("v9.9.9", "abc", "yesterday", "v1.2.3", settings)
	require.Equal(t, "v9.9.9", v)
	require.Equal(t, "abc", c)
	require.Equal(t, "yesterday", d)

	v, _, _ = resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	require.Equal(t, "dev", v)
}

// fakeAPI serves a two-story listing where story 1 has a comment tree.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	now := time.Now().Unix()
	docs := map[string]any{
		"/v0/topstories.json": []int{1, 2},
		"/v0/item/1.json": map[string]any{
			"id": 1, "type": "story", "by": "pg", "time": now - 3*3600, "score": 99,
			"title": "Show HN: A thing", "url": "https://www.example.com/thing",
			"descendants": 2, "kids": []int{10},
		},
		"/v0/item/2.json": map[string]any{
			"id": 2, "type": "story", "by": "dang", "time": now, "score": 1, "title": "Ask HN: Why?",
		},
		"/v0/item/10.json": map[string]any{
			"id": 10, "type": "comment", "by": "alice", "time": now - 120, "parent": 1,
			"text": "Neat &amp; tidy", "kids": []int{11},
		},
		"/v0/item/11.json": map[string]any{
			"id": 11, "type": "comment", "by": "bob", "time": now - 60, "parent": 10, "text": "<i>Agreed</i>",
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("null"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func isolatedEnv(t *testing.T, apiBase string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "HN_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	storePath := filepath.Join(dir, "listing.json")
	t.Setenv("HN_API_BASE", apiBase)
	t.Setenv("HN_STORE_PATH", storePath)
	t.Setenv("HN_NO_COLOR", "true")
	return storePath
}

// recordingLauncher stands in for the desktop so tests never start a browser.
type recordingLauncher struct {
	opened []string
	copied []string
}

func (l *recordingLauncher) Open(url string) error {
	l.opened = append(l.opened, url)
	return nil
}

func (l *recordingLauncher) Copy(url string) error {
	l.copied = append(l.copied, url)
	return nil
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runWith(t, &recordingLauncher{}, args...)
}

func runWith(t *testing.T, l *recordingLauncher, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr, l).Run(append([]string{"hn"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestApp_ListThenView(t *testing.T) {
	srv := fakeAPI(t)
	storePath := isolatedEnv(t, srv.URL+"/v0")

	out, _, err := run(t, "list", "top", "5")
	require.NoError(t, err)
	require.Equal(t, " 1. Show HN: A thing (example.com)\n 2. Ask HN: Why?\n", out)
	require.FileExists(t, storePath)

	out, _, err = run(t, "view", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Show HN: A thing (example.com)\n99 pts by pg 3 hours ago | 2 comments\n")
	require.Contains(t, out, "alice 2 mins ago\nNeat & tidy\n\n")
	require.Contains(t, out, "   bob 1 mins ago\n   Agreed\n\n")

	out, _, err = run(t, "view", "1", "1")
	require.NoError(t, err)
	require.Contains(t, out, "alice")
	require.NotContains(t, out, "bob")
}

func TestApp_ViewFlagsAfterArguments(t *testing.T) {
	srv := fakeAPI(t)
	isolatedEnv(t, srv.URL+"/v0")

	_, _, err := run(t, "list")
	require.NoError(t, err)

	l := &recordingLauncher{}
	out, _, err := runWith(t, l, "view", "2", "-o")
	require.NoError(t, err)
	require.Contains(t, out, "Ask HN: Why?\n")
	require.Empty(t, l.opened, "story 2 has no link")

	l = &recordingLauncher{}
	out, _, err = runWith(t, l, "view", "1", "1", "--open", "-c")
	require.NoError(t, err)
	require.Equal(t, []string{"https://www.example.com/thing"}, l.opened)
	require.Equal(t, []string{"https://www.example.com/thing"}, l.copied)
	require.NotContains(t, out, "bob")

	l = &recordingLauncher{}
	_, _, err = runWith(t, l, "view", "-o", "1")
	require.NoError(t, err)
	require.Equal(t, []string{"https://www.example.com/thing"}, l.opened)

	_, _, err = run(t, "view", "1", "--bogus")
	require.ErrorContains(t, err, "flag provided but not defined: --bogus")
}

func TestApp_ViewWithoutListing(t *testing.T) {
	srv := fakeAPI(t)
	isolatedEnv(t, srv.URL+"/v0")

	_, _, err := run(t, "view", "1")
	require.True(t, domain.IsNotFound(err), "expected NotFoundError, got %v", err)
}

func TestApp_RejectsBadArguments(t *testing.T) {
	srv := fakeAPI(t)
	isolatedEnv(t, srv.URL+"/v0")

	out, _, err := run(t, "view", "0")
	require.ErrorContains(t, err, "rank must be a positive integer")
	require.Contains(t, out, "view")

	_, _, err = run(t, "list", "hot")
	require.ErrorContains(t, err, `unknown category "hot"`)
}

func TestApp_InvalidConfigIsReported(t *testing.T) {
	isolatedEnv(t, "ftp://example.com")

	_, _, err := run(t, "list")
	require.ErrorContains(t, err, "config:")
}

func TestApp_VersionSkipsConfig(t *testing.T) {
	isolatedEnv(t, "ftp://example.com")

	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "hn "), "got %q", out)
	require.Contains(t, out, "commit: ")
}
