package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-chatbot-backend/internal/vector"
)

type stubRetriever struct {
	context  string
	category vector.Category
	err      error
}

func (s *stubRetriever) RetrieveContext(context.Context, string) (string, vector.Category, error) {
	return s.context, s.category, s.err
}

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"hello", true},
		{"Hi!", true},
		{"hey there", true},
		{"Good morning", true},
		{"salaam", true},
		{"yo", true},
		{"hello, how are you?", true},
		{"hello can you tell me about the leave policy", false},
		{"what is the leave policy", false},
		{"who is the CEO", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, IsGreeting(tc.input), "input: %q", tc.input)
	}
}

func TestHasReference(t *testing.T) {
	assert.True(t, HasReference("what is his email"))
	assert.True(t, HasReference("tell me more about that"))
	assert.True(t, HasReference("Where do they sit?"))
	assert.False(t, HasReference("what is the leave policy"))
	assert.False(t, HasReference("history of the company"))
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "", FormatHistory(nil))

	long := strings.Repeat("x", 300)
	history := []Turn{
		{User: "q1", Bot: "a1"},
		{User: "q2", Bot: "a2"},
		{User: "q3", Bot: long},
		{User: "q4", Bot: "a4"},
	}
	text := FormatHistory(history)

	assert.True(t, strings.HasPrefix(text, "RECENT CONVERSATION:"))
	assert.NotContains(t, text, "q1", "only the last three exchanges are kept")
	assert.Contains(t, text, "1. User: q2")
	assert.Contains(t, text, "3. User: q4")
	assert.Contains(t, text, long[:150]+"...")
	assert.NotContains(t, text, long[:151])
}

func TestFormatHistoryTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 200)
	text := FormatHistory([]Turn{{User: "q", Bot: long}})

	assert.True(t, utf8.ValidString(text))
	assert.Contains(t, text, strings.Repeat("é", 150)+"...")
	assert.NotContains(t, text, strings.Repeat("é", 151))
}

func TestCleanFollowup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello! Nice to see you.\nThe leave policy allows 16 days.", "The leave policy allows 16 days."},
		{"How can I assist you today? The office opens at 9am.", "The office opens at 9am."},
		{"I'm the HR Chatbot for Acme AI Ltd. You get 16 days of leave.", "You get 16 days of leave."},
		{"The leave policy allows 16 days.", "The leave policy allows 16 days."},
		{"I'd be happy to help with that. The answer is 42.", "The answer is 42."},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, CleanFollowup(tc.input), "input: %q", tc.input)
	}
}

func TestHandleCalculator(t *testing.T) {
	// Marker is evaluated for calculation questions.
	result := HandleCalculator("CALCULATOR: 50000 * 0.3125", "calculate my basic salary from 50000")
	assert.Equal(t, "Calculation: 50000 * 0.3125 = 15,625", result)

	// Policy questions strip the marker but keep the explanation.
	result = HandleCalculator("The formula is CALCULATOR: 16 / 4 per quarter", "what is the annual leave policy")
	assert.NotContains(t, result, "CALCULATOR:")
	assert.Contains(t, result, "16 / 4")

	// No marker passes through untouched.
	assert.Equal(t, "plain answer", HandleCalculator("plain answer", "anything"))
}

func TestGrounded(t *testing.T) {
	context := "Employee: Punom Chowdhury\nEmail: punom@acmeai.tech\nGross salary 50000"

	assert.True(t, Grounded("Punom Chowdhury is the Team Lead.", context))
	assert.True(t, Grounded("Contact punom@acmeai.tech for details.", context))
	assert.True(t, Grounded("The policy allows leave every quarter.", context), "no verifiable facts means nothing to reject")
	assert.False(t, Grounded("Contact john@example.com for details.", context))
	assert.False(t, Grounded("Jane Smith handles payroll.", context))
}

func TestExecutiveAnswer(t *testing.T) {
	answer := ExecutiveAnswer("Who is the COO?")
	assert.Contains(t, answer, "Syed Sadhli Ahmed Roomy")

	assert.Equal(t, answer, ExecutiveAnswer("who is the chief operating officer of the company"))
	assert.Empty(t, ExecutiveAnswer("how does team cooperation work"))
	assert.Empty(t, ExecutiveAnswer("what is the leave policy"))
}

func TestAnswerGreetingShortCircuit(t *testing.T) {
	bot := New(&stubRetriever{err: errors.New("should not be called")}, &stubGenerator{err: errors.New("should not be called")})

	answer, err := bot.Answer(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, FirstGreeting, answer)

	answer, err = bot.Answer(context.Background(), "hi there!", []Turn{{User: "q", Bot: "a"}})
	require.NoError(t, err)
	assert.Equal(t, FollowupGreeting, answer)
}

func TestAnswerPipeline(t *testing.T) {
	retriever := &stubRetriever{context: "Annual leave is 16 days, allocated 4 days per quarter.", category: vector.CategoryDefault}
	generator := &stubGenerator{response: "Hello! Glad to help.\nAnnual leave is 16 days per year, 4 days each quarter."}
	bot := New(retriever, generator)

	answer, err := bot.Answer(context.Background(), "what is the annual leave allowance", nil)
	require.NoError(t, err)
	assert.Equal(t, "Annual leave is 16 days per year, 4 days each quarter.", answer)
	assert.Contains(t, generator.prompt, "RELEVANT HR KNOWLEDGE:")
	assert.Contains(t, generator.prompt, retriever.context)
	assert.NotContains(t, generator.prompt, "RECENT CONVERSATION:")
}

func TestAnswerSplicesHistoryForReferences(t *testing.T) {
	retriever := &stubRetriever{context: "Employee: Punom Chowdhury\nEmail: punom@acmeai.tech"}
	generator := &stubGenerator{response: "punom@acmeai.tech"}
	bot := New(retriever, generator)

	history := []Turn{{User: "who is Punom", Bot: "Punom Chowdhury is the Team Lead."}}
	_, err := bot.Answer(context.Background(), "what is her email", history)
	require.NoError(t, err)
	assert.Contains(t, generator.prompt, "RECENT CONVERSATION:")
	assert.Contains(t, generator.prompt, "who is Punom")
}

func TestAnswerTypedErrors(t *testing.T) {
	ctx := context.Background()

	bot := New(&stubRetriever{err: errors.New("index offline")}, &stubGenerator{})
	_, err := bot.Answer(ctx, "what is the leave policy", nil)
	assert.ErrorIs(t, err, ErrRetrieval)

	bot = New(&stubRetriever{context: "ctx"}, &stubGenerator{err: errors.New("connection refused")})
	_, err = bot.Answer(ctx, "what is the leave policy", nil)
	assert.ErrorIs(t, err, ErrModel)

	bot = New(&stubRetriever{context: "ctx"}, &stubGenerator{response: "I'd be happy to help with that."})
	_, err = bot.Answer(ctx, "what is the leave policy", nil)
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestAnswerUngroundedFallback(t *testing.T) {
	retriever := &stubRetriever{context: "Annual leave is 16 days."}
	generator := &stubGenerator{response: "Contact bogus@nowhere.example for leave requests."}
	bot := New(retriever, generator)

	answer, err := bot.Answer(context.Background(), "how do I request time off", nil)
	require.NoError(t, err)
	assert.Equal(t, UngroundedFallback, answer)
}

func TestAnswerCalculatorSkipsGroundedness(t *testing.T) {
	retriever := &stubRetriever{context: "Basic salary is 31.25% of gross."}
	generator := &stubGenerator{response: "CALCULATOR: 50000 * 0.3125"}
	bot := New(retriever, generator)

	answer, err := bot.Answer(context.Background(), "calculate basic salary for 50000 gross", nil)
	require.NoError(t, err)
	assert.Equal(t, "Calculation: 50000 * 0.3125 = 15,625", answer)
}
