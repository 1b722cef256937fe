package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultSource is Biome's machine-readable rules metadata document.
const DefaultSource = "https://biomejs.dev/metadata/rules.json"

// maxDocumentSize bounds how much of a catalog document is read.
const maxDocumentSize = 16 << 20

// FetchError reports that every configured catalog source failed to fetch or
// parse.
type FetchError struct {
	Failures []string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load Biome rule catalog from any source: %s",
		strings.Join(e.Failures, "; "))
}

// Load fetches each source URL in turn, parses it with the strategy matching
// its format, and merges the results into one table. Sources are fetched
// sequentially. A source that fails is skipped with a warning on warn; only
// when every source fails does the whole load fail.
func Load(ctx context.Context, client *http.Client, sources []string, warn io.Writer) (*Table, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if len(sources) == 0 {
		sources = []string{DefaultSource}
	}

	table := NewTable()
	var failures []string
	loaded := 0
	for _, src := range sources {
		part, err := fetchOne(ctx, client, src)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", src, err))
			if warn != nil {
				fmt.Fprintf(warn, "warning: skipping catalog source %s: %v\n", src, err)
			}
			continue
		}
		table.Merge(part)
		loaded++
	}
	if loaded == 0 {
		return nil, &FetchError{Failures: failures}
	}
	return table, nil
}

func fetchOne(ctx context.Context, client *http.Client, url string) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, err
	}
	return ParserFor(url).Parse(body)
}
