// Package section splits puzzle input into blank-line separated sections.
package section

import (
	"strings"
)

// Section is a run of non-blank lines with its position in the original text.
type Section struct {
	Lines     []string
	StartLine int // 1-based, inclusive
	EndLine   int
}

// Header returns the first line of the section.
func (s Section) Header() string {
	if len(s.Lines) == 0 {
		return ""
	}
	return s.Lines[0]
}

// Body returns every line after the header.
func (s Section) Body() []string {
	if len(s.Lines) < 2 {
		return nil
	}
	return s.Lines[1:]
}

// Text joins the section's lines back together.
func (s Section) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Split breaks text on blank lines. Leading, trailing and repeated blank
// lines produce no empty sections.
func Split(text string) []Section {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var sections []Section
	var current []string
	startLine := 1

	flush := func(endLine int) {
		if len(current) == 0 {
			return
		}
		sections = append(sections, Section{Lines: current, StartLine: startLine, EndLine: endLine})
		current = nil
	}

	for i, line := range lines {
		lineNum := i + 1
		if strings.TrimSpace(line) == "" {
			flush(lineNum - 1)
			continue
		}
		if len(current) == 0 {
			startLine = lineNum
		}
		current = append(current, strings.TrimRight(line, " \t"))
	}
	flush(len(lines))

	return sections
}
