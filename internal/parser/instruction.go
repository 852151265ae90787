package parser

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Format identifies the instruction file flavor.
type Format string

const (
	FormatText     Format = ".txt"
	FormatMarkdown Format = ".md"
)

// FormatForPath maps a file path to its instruction format by extension.
func FormatForPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".md" {
		return FormatMarkdown
	}
	return FormatText
}

// InstructionParser parses instruction file text into steps.
//
// Files may use explicit directive lines (SEND:, WAIT:). If at least one
// directive line is present the file is in directive mode and every other
// line is ignored. Otherwise the text is split into paragraphs on blank-line
// boundaries and each paragraph becomes one send step.
type InstructionParser struct {
	sendPattern    *regexp.Regexp
	waitPattern    *regexp.Regexp
	headingPattern *regexp.Regexp
	bulletPattern  *regexp.Regexp
	orderedPattern *regexp.Regexp
	quotePattern   *regexp.Regexp
	blankPattern   *regexp.Regexp
	breakPattern   *regexp.Regexp
}

// NewInstructionParser creates a new instruction file parser.
func NewInstructionParser() *InstructionParser {
	return &InstructionParser{
		// Directives are case-sensitive. A WAIT line only counts as a
		// directive when its payload is numeric; anything else falls
		// through to ordinary text.
		sendPattern:    regexp.MustCompile(`^SEND:\s*(.*?)\s*$`),
		waitPattern:    regexp.MustCompile(`^WAIT:\s*([0-9]+(?:\.[0-9]+)?)\s*$`),
		headingPattern: regexp.MustCompile(`^\s{0,3}#{1,6}\s*`),
		bulletPattern:  regexp.MustCompile(`^\s*[-*+]\s+`),
		orderedPattern: regexp.MustCompile(`^\s*\d+\.\s+`),
		quotePattern:   regexp.MustCompile(`^\s*>\s*`),
		blankPattern:   regexp.MustCompile(`\n\s*\n`),
		breakPattern:   regexp.MustCompile(`\n+`),
	}
}

// Parse converts instruction file text into an ordered InstructionSet.
// Empty or blank input yields an empty set, never an error.
func (p *InstructionParser) Parse(text string, format Format) InstructionSet {
	lines := strings.Split(text, "\n")

	var steps InstructionSet
	sawDirective := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if m := p.waitPattern.FindStringSubmatch(stripped); m != nil {
			seconds, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			sawDirective = true
			steps = append(steps, Step{Kind: StepWait, Seconds: seconds})
			continue
		}
		if m := p.sendPattern.FindStringSubmatch(stripped); m != nil {
			// A bare "SEND:" is still a directive line; it just
			// contributes no step.
			sawDirective = true
			if body := strings.TrimSpace(m[1]); body != "" {
				steps = append(steps, Step{Kind: StepSend, Text: body})
			}
		}
	}

	if sawDirective {
		return steps
	}

	return p.paragraphSteps(lines, format)
}

// HasDirectives reports whether the text contains at least one recognized
// directive line, i.e. whether Parse would use directive mode.
func (p *InstructionParser) HasDirectives(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if p.waitPattern.MatchString(stripped) || p.sendPattern.MatchString(stripped) {
			return true
		}
	}
	return false
}

// paragraphSteps is the fallback for files without directive lines: one send
// step per blank-line-delimited paragraph, newlines inside a paragraph
// collapsed to single spaces.
func (p *InstructionParser) paragraphSteps(lines []string, format Format) InstructionSet {
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		if format == FormatMarkdown {
			normalized = append(normalized, p.markdownLineToText(line))
		} else {
			normalized = append(normalized, strings.TrimSpace(line))
		}
	}

	var steps InstructionSet
	for _, block := range p.blankPattern.Split(strings.Join(normalized, "\n"), -1) {
		cleaned := strings.TrimSpace(p.breakPattern.ReplaceAllString(block, " "))
		if cleaned != "" {
			steps = append(steps, Step{Kind: StepSend, Text: cleaned})
		}
	}
	return steps
}

// markdownLineToText strips heading markers, list bullets, ordered-list
// numbers, and blockquote markers so markdown files read as plain sentences.
func (p *InstructionParser) markdownLineToText(line string) string {
	line = p.headingPattern.ReplaceAllString(line, "")
	line = p.bulletPattern.ReplaceAllString(line, "")
	line = p.orderedPattern.ReplaceAllString(line, "")
	line = p.quotePattern.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}
