package md2html

import "regexp"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Runs of three or more newlines, compressed to two
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeLineEndings converts \r\n and \r to \n. The tokenizer treats
// \n as the only line terminator, so this runs before parsing.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits runs of consecutive newlines to two, leaving at
// most one blank line. Two newlines already close a paragraph; further ones
// are noise.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
