package chatbot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hr-chatbot-backend/internal/vector"
)

// Fallback answers surfaced to the user when the pipeline cannot produce a
// grounded response. The HTTP layer maps typed errors onto these so the chat
// endpoint always returns a message.
const (
	UngroundedFallback = "I don't have that specific information. Please contact HR at people@acmeai.tech or call +8801313094329."
	RephraseFallback   = "I apologize, but I couldn't generate a proper response. Could you please rephrase your question?"
	ErrorFallback      = "I apologize, but I encountered an error processing your request. Please try again."
)

var (
	// ErrRetrieval means the vector index could not serve the query.
	ErrRetrieval = errors.New("retrieval failed")
	// ErrModel means the language model call failed.
	ErrModel = errors.New("model failed")
	// ErrEmptyAnswer means the model answered but nothing usable survived
	// post-processing.
	ErrEmptyAnswer = errors.New("empty answer")
)

type Retriever interface {
	RetrieveContext(ctx context.Context, query string) (string, vector.Category, error)
}

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Chatbot runs the answer pipeline: greeting and executive short-circuits,
// retrieval, prompting, then cleanup and validation of the model output.
type Chatbot struct {
	retriever Retriever
	generator Generator
}

func New(retriever Retriever, generator Generator) *Chatbot {
	return &Chatbot{retriever: retriever, generator: generator}
}

func (c *Chatbot) Answer(ctx context.Context, question string, history []Turn) (string, error) {
	question = strings.TrimSpace(question)

	// Greetings never reach the model.
	if IsGreeting(question) {
		if len(history) == 0 {
			return FirstGreeting, nil
		}
		return FollowupGreeting, nil
	}

	if answer := ExecutiveAnswer(question); answer != "" {
		return answer, nil
	}

	historyText := ""
	if HasReference(question) {
		historyText = FormatHistory(history)
	}

	retrieved, category, err := c.retriever.RetrieveContext(ctx, question)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	slog.Debug("retrieved context", "category", category, "chars", len(retrieved))

	response, err := c.generator.Generate(ctx, BuildPrompt(historyText, retrieved, question))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModel, err)
	}

	cleaned := CleanFollowup(response)
	final := HandleCalculator(cleaned, question)

	if len(strings.TrimSpace(final)) < 5 {
		return "", ErrEmptyAnswer
	}

	// Calculator output carries numbers the context never contained, so the
	// groundedness check only applies when no calculation ran.
	if final == cleaned && !Grounded(final, retrieved) {
		slog.Debug("answer failed groundedness check", "question", question)
		return UngroundedFallback, nil
	}

	return strings.TrimSpace(final), nil
}
