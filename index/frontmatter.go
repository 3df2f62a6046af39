package index

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// splitFrontMatter separates a markdown file into its front-matter mapping
// and body text. A file that does not open with a fence has no front matter:
// the whole file is body and the mapping is empty (validation will then
// reject it for the missing required fields).
//
// A fence that opens but never closes, or YAML that does not parse, is a
// syntax error. Callers treat that as fatal for the whole build, unlike
// validation failures which only drop the one file.
func splitFrontMatter(raw []byte) (map[string]any, string, error) {
	s := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if s != fence && !strings.HasPrefix(s, fence+"\n") {
		return map[string]any{}, s, nil
	}

	rest := strings.TrimPrefix(s, fence)
	rest = strings.TrimPrefix(rest, "\n")

	var block, body string
	switch {
	case rest == fence || strings.HasPrefix(rest, fence+"\n"):
		// Fence closed immediately: empty front matter.
		block = ""
		body = strings.TrimPrefix(strings.TrimPrefix(rest, fence), "\n")
	default:
		if i := strings.Index(rest, "\n"+fence+"\n"); i >= 0 {
			block = rest[:i]
			body = rest[i+len("\n"+fence+"\n"):]
		} else if strings.HasSuffix(rest, "\n"+fence) {
			block = rest[:len(rest)-len("\n"+fence)]
			body = ""
		} else {
			return nil, "", fmt.Errorf("front matter fence opened but never closed")
		}
	}

	fm := map[string]any{}
	if block != "" {
		if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
			return nil, "", fmt.Errorf("invalid front matter: %w", err)
		}
		if fm == nil {
			fm = map[string]any{}
		}
	}
	return fm, body, nil
}
