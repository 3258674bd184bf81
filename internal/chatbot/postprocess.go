package chatbot

import (
	"regexp"
	"strings"

	"hr-chatbot-backend/internal/hrtools"
)

// followupPatterns strip greetings and template echoes the model sometimes
// prepends despite being told not to.
var followupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?ims)^Hello!.*?(?:\n|\.)`),
	regexp.MustCompile(`(?ims)^Hi!.*?(?:\n|\.)`),
	regexp.MustCompile(`(?ims)^Good morning.*?(?:\n|\.)`),
	regexp.MustCompile(`(?ims)^Good afternoon.*?(?:\n|\.)`),
	regexp.MustCompile(`(?ims)^Good evening.*?(?:\n|\.)`),
	regexp.MustCompile(`(?ims)^I'm the HR Chatbot for Acme AI Ltd\.\s*`),
	regexp.MustCompile(`(?ims)^How can I help you.*?\?\s*`),
	regexp.MustCompile(`(?ims)^How can I assist you.*?\?\s*`),
	regexp.MustCompile(`(?ims)^I'd be happy to help.*?\.\s*`),
	regexp.MustCompile(`(?ims)^I see that you're.*?\.\s*`),
}

// CleanFollowup removes greeting phrases and prompt leakage from a model
// response.
func CleanFollowup(text string) string {
	original := text
	for _, re := range followupPatterns {
		text = re.ReplaceAllString(text, "")
	}
	if text != original {
		text = strings.TrimLeft(text, " \t\n")
	}
	return strings.TrimSpace(text)
}

var calculatorRe = regexp.MustCompile(`CALCULATOR:\s*(.+)`)

// calcSkipWords suppress calculator dispatch for policy questions where the
// model emits the marker while merely explaining a formula.
var calcSkipWords = []string{"policy", "sick", "leave", "paid"}

// HandleCalculator evaluates a CALCULATOR: marker in the response. For
// policy-flavored questions the marker is stripped instead of evaluated.
func HandleCalculator(text, question string) string {
	if !strings.Contains(text, "CALCULATOR:") {
		return text
	}

	match := calculatorRe.FindStringSubmatch(text)
	if match == nil {
		return text
	}

	lower := strings.ToLower(question)
	for _, w := range calcSkipWords {
		if strings.Contains(lower, w) {
			return strings.TrimSpace(strings.ReplaceAll(text, "CALCULATOR:", ""))
		}
	}

	return hrtools.Calculate(strings.TrimSpace(match[1]))
}

var (
	emailRe  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	numberRe = regexp.MustCompile(`\d[\d,]{2,}`)
	nameRe   = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
)

// Grounded checks a cleaned response against the retrieved context. It
// extracts verifiable substrings (emails, longer numbers, capitalized name
// pairs) and reports false when the response asserts such facts but not one
// of them appears verbatim in the context. A best-effort heuristic, not a
// correctness guarantee.
func Grounded(response, context string) bool {
	var facts []string
	facts = append(facts, emailRe.FindAllString(response, -1)...)
	facts = append(facts, numberRe.FindAllString(response, -1)...)
	facts = append(facts, nameRe.FindAllString(response, -1)...)

	if len(facts) == 0 {
		return true
	}
	for _, fact := range facts {
		if strings.Contains(context, fact) {
			return true
		}
	}
	return false
}
