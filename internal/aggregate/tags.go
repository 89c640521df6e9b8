package aggregate

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`#(\w+)`)

// ExtractTags returns every #tag token embedded in the comment, in order of
// appearance and with the leading # stripped. An empty comment yields an
// empty slice.
func ExtractTags(comment string) []string {
	matches := tagRe.FindAllStringSubmatch(comment, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// StripTags returns the comment with all #tag tokens removed and whitespace
// collapsed, for display next to the extracted tags.
func StripTags(comment string) string {
	stripped := tagRe.ReplaceAllString(comment, "")
	return strings.Join(strings.Fields(stripped), " ")
}
