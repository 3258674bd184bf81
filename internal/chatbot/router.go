package chatbot

import (
	"regexp"
	"strings"
)

const (
	// FirstGreeting is returned for a greeting at the start of a session.
	FirstGreeting = "Hello! I'm the HR Chatbot for Acme AI Ltd. How can I help you with HR-related questions today?"
	// FollowupGreeting is returned for a greeting mid-conversation.
	FollowupGreeting = "Hello! How can I assist you?"
)

var greetings = []string{
	"hello", "hi", "hey", "greetings", "good morning",
	"good afternoon", "good evening", "hi there", "hey there",
	"hello there", "sup", "whats up", "yo", "hiya", "howdy",
	"good day", "salaam", "assalam", "salam",
}

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// IsGreeting reports whether the input is a short standalone greeting. Such
// inputs never reach the model; a longer message that merely opens with a
// greeting still does.
func IsGreeting(question string) bool {
	lower := strings.TrimSpace(strings.ToLower(question))
	clean := punctuationRe.ReplaceAllString(lower, "")

	if len(strings.Fields(clean)) > 4 {
		return false
	}
	for _, g := range greetings {
		if strings.Contains(lower, g) || strings.HasPrefix(lower, g) {
			return true
		}
	}
	return false
}

// executiveAnswers are fixed responses for leadership lookups the model has
// been observed to get wrong despite the records being in the index.
var executiveAnswers = []struct {
	keywords []string
	answer   string
}{
	{
		keywords: []string{"coo", "chief operating officer"},
		answer:   "The COO (Chief Operating Officer) is Syed Sadhli Ahmed Roomy, who is also the Co-Founder of Acme AI Ltd.",
	},
}

// ExecutiveAnswer returns a hard-coded leadership answer when the question
// matches one, and "" otherwise.
func ExecutiveAnswer(question string) string {
	lower := strings.ToLower(question)
	for _, e := range executiveAnswers {
		for _, kw := range e.keywords {
			if containsWord(lower, kw) {
				return e.answer
			}
		}
	}
	return ""
}

// containsWord matches kw on word boundaries so "coo" does not fire inside
// "cooperation".
func containsWord(s, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(s, kw)
	}
	for _, w := range strings.Fields(punctuationRe.ReplaceAllString(s, " ")) {
		if w == kw {
			return true
		}
	}
	return false
}
