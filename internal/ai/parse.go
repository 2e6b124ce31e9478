package ai

import (
	"strings"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// ExtractSection pulls the body of one named section out of a markdown
// completion. A heading is any line carrying "**" or "#"; the section runs
// until the next heading that does not mention the name. Missing sections
// yield an empty string, never an error: the full text is always stored
// alongside the parsed parts, so a lossy parse loses nothing.
func ExtractSection(text, name string) string {
	lowerName := strings.ToLower(name)
	var content []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		isHeading := strings.Contains(line, "**") || strings.Contains(line, "#")
		mentionsName := strings.Contains(strings.ToLower(line), lowerName)
		switch {
		case mentionsName && isHeading:
			inSection = true
		case inSection && isHeading:
			return strings.TrimSpace(strings.Join(content, "\n"))
		case inSection:
			content = append(content, strings.TrimSpace(line))
		}
	}
	return strings.TrimSpace(strings.Join(content, "\n"))
}

// ExtractBulletPoints returns up to five list items found in a completion.
func ExtractBulletPoints(text string) []string {
	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, prefix := range []string{"•", "-", "*", "1.", "2.", "3.", "4.", "5."} {
			if strings.HasPrefix(line, prefix) {
				points = append(points, line)
				break
			}
		}
		if len(points) == 5 {
			break
		}
	}
	return points
}

// ParseQuizQuestions reads the line grammar QuizPrompt requests:
//
//	Question N: text
//	A) ... D) options
//	Correct Answer: letter
//	Explanation: text
//
// Malformed questions (fewer than four options, or no parsable correct
// answer) are dropped. At most max questions are returned.
func ParseQuizQuestions(text string, max int) []domain.QuizQuestion {
	var (
		questions []domain.QuizQuestion
		current   *domain.QuizQuestion
	)
	flush := func() {
		if current != nil && current.Text != "" && len(current.Options) == 4 && current.CorrectIndex >= 0 {
			questions = append(questions, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Question"):
			flush()
			current = &domain.QuizQuestion{CorrectIndex: -1}
			if _, after, ok := strings.Cut(line, ":"); ok {
				current.Text = strings.TrimSpace(after)
			}
		case current != nil && len(line) >= 2 && line[1] == ')' && line[0] >= 'A' && line[0] <= 'D':
			if len(current.Options) < 4 {
				current.Options = append(current.Options, strings.TrimSpace(line[2:]))
			}
		case current != nil && strings.HasPrefix(line, "Correct Answer:"):
			answer := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "Correct Answer:")))
			if len(answer) > 0 && answer[0] >= 'A' && answer[0] <= 'D' {
				current.CorrectIndex = int(answer[0] - 'A')
			}
		case current != nil && strings.HasPrefix(line, "Explanation:"):
			current.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
		}
	}
	flush()

	if len(questions) > max {
		questions = questions[:max]
	}
	return questions
}
