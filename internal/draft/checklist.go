package draft

import (
	"regexp"
	"strings"
)

var (
	// "- [ ] Book venue" or "* [x] Pick a date (due: 2024-06-12)"
	checkboxRe  = regexp.MustCompile(`(?m)^\s*[-*] \[([ xX])\] (.+)$`)
	dueSuffixRe = regexp.MustCompile(`\s*\(due:?\s*([^)]+)\)\s*$`)
)

// parsedItem is one drafted task from either reply shape.
type parsedItem struct {
	draftItem
	checked bool
}

// parseChecklist reads markdown checkboxes, the shape models fall back to
// when they ignore the JSON instruction.
func parseChecklist(text string) []parsedItem {
	matches := checkboxRe.FindAllStringSubmatch(text, -1)
	items := make([]parsedItem, 0, len(matches))
	for _, m := range matches {
		content := strings.TrimSpace(m[2])
		var due string
		if d := dueSuffixRe.FindStringSubmatch(content); d != nil {
			due = strings.TrimSpace(d[1])
			content = strings.TrimSpace(content[:len(content)-len(d[0])])
		}
		if content == "" {
			continue
		}
		items = append(items, parsedItem{
			draftItem: draftItem{Content: content, DueDate: due},
			checked:   strings.EqualFold(m[1], "x"),
		})
	}
	return items
}
