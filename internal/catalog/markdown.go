package catalog

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
)

// MarkdownParser reads the legacy rule-sources documentation pages, which
// list equivalences as two-column link tables under per-category headings and
// Biome-exclusive rules as a bulleted list. Malformed rows are skipped, never
// fatal; the regex scan is deliberately confined behind the Parser interface
// so the structured catalog can replace it wholesale.
type MarkdownParser struct{}

var (
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	dividerPattern = regexp.MustCompile(`\|\s*-+\s*\|\s*-+\s*\|`)
)

const exclusiveHeading = "biome exclusive rules"

func (MarkdownParser) Parse(data []byte) (*Table, error) {
	table := NewTable()

	var (
		category    string
		inTable     bool
		inExclusive bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "### "):
			category = strings.TrimSpace(strings.TrimPrefix(line, "### "))
			inTable = false
		case strings.HasPrefix(line, "## "):
			heading := strings.TrimSpace(strings.TrimPrefix(line, "## "))
			inExclusive = strings.EqualFold(heading, exclusiveHeading)
			inTable = false
		case inExclusive:
			if strings.HasPrefix(line, "- ") {
				if m := linkPattern.FindStringSubmatch(line); m != nil {
					table.AddExclusive(m[1])
				}
			}
		case dividerPattern.MatchString(line):
			inTable = true
		case inTable:
			if !strings.HasPrefix(line, "|") {
				// Any non-table, non-empty line ends the table region.
				if line != "" {
					inTable = false
				}
				continue
			}
			links := linkPattern.FindAllStringSubmatch(line, -1)
			if len(links) < 2 {
				// Header restatements and malformed rows.
				continue
			}
			table.Add(Entry{Source: links[0][1], Target: links[1][1], Category: category})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
