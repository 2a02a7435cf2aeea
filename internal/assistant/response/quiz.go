package response

import (
	"regexp"
	"strconv"
	"strings"

	"study-buddy/backend/internal/model"
)

var (
	questionLineRegex = regexp.MustCompile(`^Q(\d+)\s*[.):]\s*(.*)$`)
	optionLineRegex   = regexp.MustCompile(`^([A-D])\s*[).]\s*(.+)$`)
	answerLineRegex   = regexp.MustCompile(`(?i)^Correct\s+Answer\s*:\s*(.+)$`)
	explainLineRegex  = regexp.MustCompile(`(?i)^Explanation\s*:\s*(.*)$`)
)

// ParseQuiz parses quiz output into questions. It returns nil when the text
// has no recognisable question or any question is missing its text or answer;
// callers then fall back to the raw text.
func ParseQuiz(text string) []model.Question {
	var (
		questions []model.Question
		current   *model.Question
		inExplain bool
	)

	flush := func() bool {
		if current == nil {
			return true
		}
		current.Text = strings.TrimSpace(current.Text)
		current.Explanation = strings.TrimSpace(current.Explanation)
		if current.Text == "" || current.Answer == "" {
			return false
		}
		questions = append(questions, *current)
		return true
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.ReplaceAll(raw, "**", ""))
		line = strings.TrimLeft(line, "#- ")

		if m := questionLineRegex.FindStringSubmatch(line); m != nil {
			if !flush() {
				return nil
			}
			n, _ := strconv.Atoi(m[1])
			current = &model.Question{Number: n, Text: m[2]}
			inExplain = false
			continue
		}
		if current == nil || line == "" {
			continue
		}

		switch {
		case optionLineRegex.MatchString(line) && !inExplain:
			m := optionLineRegex.FindStringSubmatch(line)
			current.Options = append(current.Options, model.Option{Letter: m[1], Text: strings.TrimSpace(m[2])})
		case answerLineRegex.MatchString(line):
			current.Answer = strings.TrimSpace(answerLineRegex.FindStringSubmatch(line)[1])
			inExplain = false
		case explainLineRegex.MatchString(line):
			current.Explanation = explainLineRegex.FindStringSubmatch(line)[1]
			inExplain = true
		case inExplain:
			current.Explanation += " " + line
		case len(current.Options) == 0 && current.Answer == "":
			// Question text wrapped onto the next line.
			current.Text += " " + line
		}
	}
	if !flush() || len(questions) == 0 {
		return nil
	}
	return questions
}
