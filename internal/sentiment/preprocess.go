package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	exclamationRuns     = regexp.MustCompile(`!{2,}`)
	questionRuns        = regexp.MustCompile(`\?{2,}`)
)

// RemoveLinks strips markdown link targets (keeping the link text) and
// bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// FlattenMarkdown renders markdown to plain text for feedback submitted
// in markdown form, then drops any remaining links.
func FlattenMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := htmlTagPattern.ReplaceAllString(string(output), " ")
	plainText = strings.Join(strings.Fields(plainText), " ")

	return RemoveLinks(plainText)
}

// Clean normalizes raw feedback before scoring: URLs and HTML tags are
// removed, whitespace runs collapse to a single space, and repeated
// exclamation or question marks collapse to one.
func Clean(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	text = exclamationRuns.ReplaceAllString(text, "!")
	text = questionRuns.ReplaceAllString(text, "?")

	return text
}
