package vector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hr-chatbot-backend/internal/database"
)

type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

type Chunk struct {
	Text      string
	Source    string
	DocType   string
	Team      string
	Embedding []float32
}

// Store persists embedded chunks in SQLite and serves nearest-neighbor
// queries from an in-memory copy of the index. The corpus is small (one
// policy document plus employee records), so a brute-force cosine scan is
// sufficient.
type Store struct {
	db       *gorm.DB
	embedder Embedder

	mu     sync.RWMutex
	chunks []Chunk
}

func NewStore(db *gorm.DB, embedder Embedder) *Store {
	return &Store{db: db, embedder: embedder}
}

// Load reads the persisted index into memory. Call once at startup and
// after ingestion.
func (s *Store) Load() error {
	var rows []database.DocumentChunk
	if err := s.db.Find(&rows).Error; err != nil {
		return fmt.Errorf("could not load document chunks: %w", err)
	}

	chunks := make([]Chunk, 0, len(rows))
	for _, row := range rows {
		var embedding []float32
		if err := json.Unmarshal(row.Embedding, &embedding); err != nil {
			slog.Warn("skipping chunk with unreadable embedding", "chunk_id", row.ID, "error", err)
			continue
		}
		chunks = append(chunks, Chunk{
			Text:      row.Text,
			Source:    row.Source,
			DocType:   row.DocType,
			Team:      row.Team,
			Embedding: embedding,
		})
	}

	s.mu.Lock()
	s.chunks = chunks
	s.mu.Unlock()

	slog.Info("vector index loaded", "chunks", len(chunks))
	return nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Add persists chunks and appends them to the in-memory index.
func (s *Store) Add(ctx context.Context, chunks []Chunk) error {
	rows := make([]database.DocumentChunk, len(chunks))
	for i, c := range chunks {
		embedding, err := json.Marshal(c.Embedding)
		if err != nil {
			return fmt.Errorf("could not marshal embedding: %w", err)
		}
		rows[i] = database.DocumentChunk{
			Text:      c.Text,
			Source:    c.Source,
			DocType:   c.DocType,
			Team:      c.Team,
			Embedding: datatypes.JSON(embedding),
		}
	}

	if err := s.db.WithContext(ctx).CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("could not persist document chunks: %w", err)
	}

	s.mu.Lock()
	s.chunks = append(s.chunks, chunks...)
	s.mu.Unlock()
	return nil
}

// Reset drops every chunk from disk and memory, used for full rebuilds.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&database.DocumentChunk{}).Error; err != nil {
		return fmt.Errorf("could not clear document chunks: %w", err)
	}

	s.mu.Lock()
	s.chunks = nil
	s.mu.Unlock()
	return nil
}

type scoredChunk struct {
	chunk Chunk
	score float32
}

// Search embeds the query and returns the k most similar chunks, best first.
func (s *Store) Search(ctx context.Context, query string, k int) ([]Chunk, error) {
	if k <= 0 {
		return nil, nil
	}

	queryEmbedding, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not embed query: %w", err)
	}

	s.mu.RLock()
	scored := make([]scoredChunk, 0, len(s.chunks))
	for _, chunk := range s.chunks {
		if len(chunk.Embedding) != len(queryEmbedding) {
			continue
		}
		scored = append(scored, scoredChunk{chunk: chunk, score: CosineSimilarity(queryEmbedding, chunk.Embedding)})
	}
	s.mu.RUnlock()

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if k > len(scored) {
		k = len(scored)
	}
	results := make([]Chunk, k)
	for i := 0; i < k; i++ {
		results[i] = scored[i].chunk
	}
	return results, nil
}

// RetrieveContext classifies the query, retrieves the category's top-k
// chunks, and joins their text under the category's character budget.
func (s *Store) RetrieveContext(ctx context.Context, query string) (string, Category, error) {
	category := Classify(query)

	chunks, err := s.Search(ctx, query, TopK(category))
	if err != nil {
		return "", category, err
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	context := strings.Join(texts, "\n---\n")
	budget := ContextBudget(category)
	if utf8.RuneCountInString(context) > budget {
		context = string([]rune(context)[:budget])
	}
	return context, category, nil
}

func CosineSimilarity(a, b []float32) float32 {
	var dot, magA, magB float32
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (float32(math.Sqrt(float64(magA))) * float32(math.Sqrt(float64(magB))))
}
