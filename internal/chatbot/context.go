package chatbot

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Turn is one user/bot exchange from the conversation history.
type Turn struct {
	User string
	Bot  string
}

const (
	maxHistoryExchanges = 3
	maxBotExcerpt       = 150
)

var referenceWords = []string{"he", "his", "him", "she", "her", "it", "its", "that", "this", "they", "them", "their"}

// HasReference reports whether the question contains a pronoun or
// demonstrative that likely refers back to an earlier turn. Only such
// questions get conversation history spliced into the prompt.
func HasReference(question string) bool {
	words := strings.Fields(strings.ToLower(question))
	for _, w := range words {
		for _, ref := range referenceWords {
			if w == ref {
				return true
			}
		}
	}
	return false
}

// FormatHistory renders the most recent exchanges for the prompt. Bot
// answers are truncated so a verbose earlier answer does not crowd out the
// retrieved context.
func FormatHistory(history []Turn) string {
	if len(history) == 0 {
		return ""
	}

	recent := history
	if len(recent) > maxHistoryExchanges {
		recent = recent[len(recent)-maxHistoryExchanges:]
	}

	lines := []string{"RECENT CONVERSATION:"}
	for i, turn := range recent {
		bot := truncateRunes(turn.Bot, maxBotExcerpt)
		lines = append(lines, fmt.Sprintf("%d. User: %s", i+1, turn.User))
		lines = append(lines, fmt.Sprintf("   Bot: %s...", bot))
	}
	return strings.Join(lines, "\n")
}

// truncateRunes caps s at n characters without splitting a multi-byte rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
