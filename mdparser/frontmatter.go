package mdparser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// extractFrontMatter splits a leading YAML front matter block off source and
// decodes it. The block must open with --- on the very first line and close
// with a --- or ... line. Decoding happens before any shielding, so
// protector sentinels can never reach metadata values.
func (s *state) extractFrontMatter(source string) (map[string]interface{}, string) {
	block, rest, ok := splitFrontMatter(source)
	if !ok {
		return nil, source
	}

	meta := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		s.addWarning(WarningInvalidFrontMatter, "document", fmt.Sprintf("front matter is not valid YAML: %v", err))
		return nil, source
	}
	if len(meta) == 0 {
		return nil, rest
	}
	return meta, rest
}

func splitFrontMatter(source string) (block, rest string, ok bool) {
	lines := strings.SplitAfter(source, "\n")
	if strings.TrimRight(lines[0], "\r\n") != "---" || len(lines) < 2 {
		return "", "", false
	}

	for i := 1; i < len(lines); i++ {
		marker := strings.TrimRight(lines[i], "\r\n")
		if marker == "---" || marker == "..." {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), true
		}
	}

	return "", "", false
}
