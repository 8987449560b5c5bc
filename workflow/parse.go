package workflow

import (
	"regexp"
	"strconv"
	"strings"
)

// Subtask is one unit of work produced by a decomposition step.
// Order is significant: ID is the 1-based ordinal position, preserved into
// worker dispatch and into the combination step's input.
type Subtask struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// SubtaskParser splits raw decomposition output into an ordered subtask list.
type SubtaskParser func(text string) []Subtask

// EvaluationParser extracts a numeric score and feedback text from raw
// evaluation output. Unparsable output must map to score 0 with the raw
// text as feedback, never an error.
type EvaluationParser func(text string) (score float64, feedback string)

// ParseSubtasks is the default SubtaskParser. Model output format is not
// guaranteed, so it is deliberately tolerant: it splits on newlines, strips
// numbered-list and bullet markers, and discards empty entries and bare
// prose headers ("Here are the subtasks:").
func ParseSubtasks(text string) []Subtask {
	var subtasks []Subtask
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		stripped, marked := stripListMarker(line)
		if stripped == "" {
			continue
		}
		if !marked && strings.HasSuffix(stripped, ":") {
			continue
		}
		subtasks = append(subtasks, Subtask{ID: len(subtasks) + 1, Description: stripped})
	}
	return subtasks
}

// stripListMarker removes a leading bullet or numbered-list marker.
// It reports whether a marker was present.
func stripListMarker(line string) (string, bool) {
	for _, bullet := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, bullet) {
			return strings.TrimSpace(line[len(bullet):]), true
		}
	}

	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')' || line[i] == ':') {
		return strings.TrimSpace(line[i+1:]), true
	}

	return line, false
}

var (
	scoreRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	denomRe = regexp.MustCompile(`^/\s*\d+(?:\.\d+)?`)
)

// ParseEvaluation is the default EvaluationParser. The first numeric token
// in the text is the score ("8", "8.5", "8/10", and "Score: 7" all parse);
// the remaining text is the feedback. Output with no numeric token maps to
// score 0 with the full raw text as feedback.
func ParseEvaluation(text string) (float64, string) {
	trimmed := strings.TrimSpace(text)

	loc := scoreRe.FindStringIndex(trimmed)
	if loc == nil {
		return 0, trimmed
	}

	score, err := strconv.ParseFloat(trimmed[loc[0]:loc[1]], 64)
	if err != nil {
		return 0, trimmed
	}

	feedback := strings.TrimSpace(trimmed[loc[1]:])
	// Drop a "/10"-style denominator so it doesn't leak into feedback.
	if m := denomRe.FindString(feedback); m != "" {
		feedback = strings.TrimSpace(feedback[len(m):])
	}
	feedback = strings.TrimSpace(strings.TrimLeft(feedback, "-–—:,.;"))

	return score, feedback
}
