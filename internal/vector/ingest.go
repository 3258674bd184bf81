package vector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"hr-chatbot-backend/internal/database"
	"hr-chatbot-backend/internal/hrtools"
	"hr-chatbot-backend/internal/storage"
)

const (
	DefaultPolicyFile   = "General HR Queries.pdf"
	DefaultEmployeeFile = "employees.json"

	chunkSize      = 800
	chunkOverlap   = 150
	embedBatchSize = 16
)

// Ingestor builds the vector index from the HR corpus: the policy PDF split
// along its markdown header structure, plus one document per employee
// record. Runs at startup when the index is empty, or on demand from the
// ingest command.
type Ingestor struct {
	source   storage.Source
	store    *Store
	embedder Embedder

	PolicyFile   string
	EmployeeFile string

	// Progress, when set, is called after each embedded batch.
	Progress func(done, total int)
}

func NewIngestor(source storage.Source, store *Store, embedder Embedder) *Ingestor {
	return &Ingestor{
		source:       source,
		store:        store,
		embedder:     embedder,
		PolicyFile:   DefaultPolicyFile,
		EmployeeFile: DefaultEmployeeFile,
	}
}

// Run ingests the corpus and returns the number of chunks indexed.
func (ing *Ingestor) Run(ctx context.Context) (int, error) {
	chunks, err := ing.collectChunks(ctx)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		return 0, fmt.Errorf("corpus produced no chunks")
	}

	if err := ing.embedChunks(ctx, chunks); err != nil {
		return 0, err
	}

	if err := ing.store.Add(ctx, chunks); err != nil {
		return 0, err
	}

	slog.Info("ingestion complete", "chunks", len(chunks))
	return len(chunks), nil
}

func (ing *Ingestor) collectChunks(ctx context.Context) ([]Chunk, error) {
	var docs []Chunk

	pdfBytes, err := ing.source.Fetch(ctx, ing.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("could not load policy document: %w", err)
	}

	markdown, err := pdfToMarkdown(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("could not convert policy document: %w", err)
	}

	mdSplitter := textsplitter.NewMarkdownTextSplitter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
	)
	sections, err := mdSplitter.SplitText(markdown)
	if err != nil {
		return nil, fmt.Errorf("could not split policy document: %w", err)
	}
	for _, section := range sections {
		docs = append(docs, Chunk{Text: section, Source: ing.PolicyFile, DocType: database.DocTypePolicy})
	}
	slog.Info("policy document processed", "sections", len(sections))

	// Employee data is optional: the bot can still answer policy questions
	// without it.
	if employeeBytes, err := ing.source.Fetch(ctx, ing.EmployeeFile); err != nil {
		slog.Warn("could not load employee data, continuing without it", "error", err)
	} else {
		dir, err := hrtools.ParseDirectory(employeeBytes)
		if err != nil {
			return nil, err
		}
		records := employeeChunks(dir, ing.EmployeeFile)
		docs = append(docs, records...)
		slog.Info("employee records processed", "records", len(records))
	}

	return splitOversized(docs)
}

// splitOversized applies a final recursive character pass so no chunk
// exceeds the window the embedding model handles well.
func splitOversized(docs []Chunk) ([]Chunk, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
	)

	var out []Chunk
	for _, doc := range docs {
		parts, err := splitter.SplitText(doc.Text)
		if err != nil {
			return nil, fmt.Errorf("could not split chunk: %w", err)
		}
		for _, part := range parts {
			c := doc
			c.Text = part
			out = append(out, c)
		}
	}
	return out, nil
}

func (ing *Ingestor) embedChunks(ctx context.Context, chunks []Chunk) error {
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		texts := make([]string, end-start)
		for i := start; i < end; i++ {
			texts[i-start] = chunks[i].Text
		}

		vectors, err := ing.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			return fmt.Errorf("could not embed chunks %d-%d: %w", start, end, err)
		}
		for i := range vectors {
			chunks[start+i].Embedding = vectors[i]
		}

		if ing.Progress != nil {
			ing.Progress(end, len(chunks))
		}
	}
	return nil
}

func employeeChunks(dir *hrtools.Directory, source string) []Chunk {
	var out []Chunk

	for _, team := range dir.Teams() {
		for _, emp := range team.Members {
			text := fmt.Sprintf("Employee: %s\nPosition: %s\nEmail: %s\nTable: %s\nBlood Group: %s\nTeam: %s",
				emp.EmployeeName, emp.Position, emp.Email, emp.Table, emp.BloodGroup, team.Label)
			out = append(out, Chunk{Text: text, Source: source, DocType: database.DocTypeEmployee, Team: team.Key})
		}
	}

	for _, coord := range dir.EmployeeDetails.ProjectCoordinators {
		text := fmt.Sprintf("Project Coordinator: %s\nTables: %s\nEmail: %s\nType: Project Coordinator",
			coord.Name, strings.Join(coord.Tables, ", "), coord.Email)
		out = append(out, Chunk{Text: text, Source: source, DocType: database.DocTypeCoordinator})
	}

	for _, contact := range dir.EmployeeDetails.ManagementTeamContacts {
		position := contact.Position
		if position == "" {
			position = "Management"
		}
		text := fmt.Sprintf("Management: %s\nPosition: %s\nEmail: %s\nType: Management Contact",
			contact.Name, position, contact.Email)
		out = append(out, Chunk{Text: text, Source: source, DocType: database.DocTypeManagement})
	}

	return out
}
