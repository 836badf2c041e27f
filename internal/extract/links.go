package extract

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// uriPattern matches PDF link annotations of the form "/URI (https://...)".
// Scheme matching is case-insensitive.
var uriPattern = regexp.MustCompile(`(?i)/URI\s*\(\s*(https?://[^)]+)\s*\)`)

// Links scans raw document text for embedded URI annotations and returns
// the unique URLs found. Output order is unspecified; callers that need
// determinism must sort.
func Links(text string) []string {
	seen := make(map[string]struct{})

	for _, m := range uriPattern.FindAllStringSubmatch(text, -1) {
		url := strings.TrimSpace(m[1])
		lower := strings.ToLower(url)
		if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
			continue
		}
		seen[url] = struct{}{}
	}

	links := make([]string, 0, len(seen))
	for url := range seen {
		links = append(links, url)
	}
	return links
}

// SaveLinks writes links to path, one per line, sorted for stable output.
func SaveLinks(links []string, path string) error {
	sorted := make([]string, len(links))
	copy(sorted, links)
	sort.Strings(sorted)

	var b strings.Builder
	for _, link := range sorted {
		b.WriteString(link)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save links to %q: %w", path, err)
	}
	return nil
}

// ReadLines returns up to limit non-blank, whitespace-trimmed lines from
// the file at path, in file order. limit <= 0 means no bound.
func ReadLines(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read lines from %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines from %q: %w", path, err)
	}
	return lines, nil
}
