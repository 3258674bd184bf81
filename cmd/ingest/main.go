package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/schollz/progressbar/v3"

	"hr-chatbot-backend/cmd"
	"hr-chatbot-backend/internal/database"
	"hr-chatbot-backend/internal/llm"
	"hr-chatbot-backend/internal/storage"
	"hr-chatbot-backend/internal/vector"
)

type IngestConfig struct {
	DataDir        string `env:"DATA_DIR" envDefault:"./data"`
	CorpusLocation string `env:"CORPUS_LOCATION" envDefault:"./corpus"`
	PolicyFile     string `env:"POLICY_FILE" envDefault:"General HR Queries.pdf"`
	EmployeeFile   string `env:"EMPLOYEE_FILE" envDefault:"employees.json"`

	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`

	OllamaURL      string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	EmbeddingModel string `env:"EMBEDDING_MODEL" envDefault:"mxbai-embed-large"`
}

func main() {
	rebuild := flag.Bool("rebuild", false, "drop the existing index before ingesting")

	cmd.LoadEnvFile()

	var cfg IngestConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	ctx := context.Background()

	db, err := database.Open(filepath.Join(cfg.DataDir, "chunks.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	model, err := llm.NewClient(llm.Config{
		ServerURL:      cfg.OllamaURL,
		EmbeddingModel: cfg.EmbeddingModel,
		ChatModel:      cfg.EmbeddingModel, // ingestion never chats
	})
	if err != nil {
		log.Fatalf("Failed to create model client: %v", err)
	}

	source, err := storage.NewSource(ctx, cfg.CorpusLocation, storage.S3Config{
		EndpointURL:     cfg.S3EndpointURL,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
	})
	if err != nil {
		log.Fatalf("Failed to create corpus source: %v", err)
	}

	store := vector.NewStore(db, model)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load vector index: %v", err)
	}

	if *rebuild {
		log.Println("Dropping existing index...")
		if err := store.Reset(ctx); err != nil {
			log.Fatalf("Failed to reset index: %v", err)
		}
	} else if store.Count() > 0 {
		log.Fatalf("Index already holds %d chunks; pass -rebuild to replace it", store.Count())
	}

	ingestor := vector.NewIngestor(source, store, model)
	ingestor.PolicyFile = cfg.PolicyFile
	ingestor.EmployeeFile = cfg.EmployeeFile

	var bar *progressbar.ProgressBar
	ingestor.Progress = func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("embedding chunks"),
				progressbar.OptionSetWidth(30),
				progressbar.OptionClearOnFinish(),
			)
		}
		bar.Set(done) //nolint:errcheck
	}

	n, err := ingestor.Run(ctx)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	log.Printf("Ingested %d chunks into %s", n, filepath.Join(cfg.DataDir, "chunks.db"))
}
