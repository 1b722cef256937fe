package catalog

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const structuredBody = `{
	"languages": {
		"javascript": {
			"style": {
				"noVar": {"name": "noVar", "sources": [{"source": {"eslint": "no-var"}}]}
			}
		}
	}
}`

const markdownBody = `### JS

| ESLint rule | Biome rule |
| ---- | ---- |
| [eqeqeq](url) | [noDoubleEquals](url) |
`

func TestLoadStructuredSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "rules.json") {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(structuredBody))
	}))
	defer srv.Close()

	table, err := Load(context.Background(), srv.Client(), []string{srv.URL + "/metadata/rules.json"}, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := table.Lookup("no-var"); !ok {
		t.Fatal("missing entry for no-var")
	}
}

func TestLoadSkipsFailingSourceWithWarning(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(markdownBody))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer bad.Close()

	var warnings bytes.Buffer
	table, err := Load(context.Background(), nil, []string{bad.URL + "/rules-sources/", good.URL + "/rules-sources/"}, &warnings)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := table.Lookup("eqeqeq"); !ok {
		t.Fatal("surviving source must still contribute entries")
	}
	if !strings.Contains(warnings.String(), "warning: skipping catalog source") {
		t.Fatalf("want a skip warning, got %q", warnings.String())
	}
}

func TestLoadFailsWhenAllSourcesFail(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer bad.Close()

	var warnings bytes.Buffer
	_, err := Load(context.Background(), nil, []string{bad.URL + "/a.json", bad.URL + "/b.json"}, &warnings)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("want FetchError, got %v", err)
	}
	if len(fetchErr.Failures) != 2 {
		t.Fatalf("want 2 recorded failures, got %v", fetchErr.Failures)
	}
}

func TestLoadMergesSourcesFirstWins(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`### JS

| a | b |
| ---- | ---- |
| [no-var](url) | [useVar](url) |
`))
	}))
	defer first.Close()
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`### JS

| a | b |
| ---- | ---- |
| [no-var](url) | [somethingElse](url) |
| [eqeqeq](url) | [noDoubleEquals](url) |
`))
	}))
	defer second.Close()

	table, err := Load(context.Background(), nil, []string{first.URL, second.URL}, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	e, _ := table.Lookup("no-var")
	if e.Target != "useVar" {
		t.Fatalf("earlier source must win, got %s", e.Target)
	}
	if _, ok := table.Lookup("eqeqeq"); !ok {
		t.Fatal("later source must still contribute new entries")
	}
}
