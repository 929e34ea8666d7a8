package commentary

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minLines        = 3
	maxLines        = 4
	minLineLength   = 16
	minSentenceLen  = 21
	resplitMinChars = 81
)

var (
	thinkBlock     = regexp.MustCompile(`(?s)<think>.*?</think>`)
	lineBreaks     = regexp.MustCompile(`\n+`)
	numberedItem   = regexp.MustCompile(`^\d+\.`)
	stageDirection = regexp.MustCompile(`^\*[^*]+\*$`)
	separatorRule  = regexp.MustCompile(`^[-*_=]{3,}$`)
	inlineAction   = regexp.MustCompile(`\*[^*]+\*`)
	sentenceBreak  = regexp.MustCompile(`([!?.])(?:\s{2,}|\n+)`)
)

// ParseCompletion turns raw model output into commentary lines. It reports false when
// fewer than three usable lines survive cleaning; otherwise at most four are returned.
func ParseCompletion(content string) ([]string, bool) {
	cleaned := strings.TrimSpace(thinkBlock.ReplaceAllString(content, ""))

	var lines []string
	for _, l := range lineBreaks.Split(cleaned, -1) {
		l = strings.TrimSpace(l)
		if usableLine(l) {
			lines = append(lines, l)
		}
	}

	// one big paragraph: try sentence boundaries instead
	if len(lines) < minLines && utf8.RuneCountInString(cleaned) >= resplitMinChars {
		lines = splitSentences(cleaned)
	}

	if len(lines) < minLines {
		return nil, false
	}
	return lines[:min(maxLines, len(lines))], true
}

func usableLine(l string) bool {
	if utf8.RuneCountInString(l) < minLineLength {
		return false
	}
	switch {
	case strings.HasPrefix(l, "-"), strings.HasPrefix(l, "•"), strings.HasPrefix(l, "* "):
		return false
	case numberedItem.MatchString(l), stageDirection.MatchString(l), separatorRule.MatchString(l):
		return false
	}
	return true
}

func splitSentences(text string) []string {
	text = inlineAction.ReplaceAllString(text, "")
	marked := sentenceBreak.ReplaceAllString(text, "$1\x00")

	var out []string
	for _, s := range strings.Split(marked, "\x00") {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) >= minSentenceLen {
			out = append(out, s)
		}
	}
	return out
}
