package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"hr-chatbot-backend/cmd"
	"hr-chatbot-backend/internal/api"
	"hr-chatbot-backend/internal/auth"
	"hr-chatbot-backend/internal/chatbot"
	"hr-chatbot-backend/internal/database"
	"hr-chatbot-backend/internal/feedback"
	"hr-chatbot-backend/internal/hrtools"
	"hr-chatbot-backend/internal/llm"
	"hr-chatbot-backend/internal/session"
	"hr-chatbot-backend/internal/storage"
	"hr-chatbot-backend/internal/vector"
)

type APIConfig struct {
	APIPort string `env:"API_PORT" envDefault:"8000"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// CorpusLocation is a local directory or an s3://bucket[/prefix] path
	// holding the policy PDF and employee JSON.
	CorpusLocation string `env:"CORPUS_LOCATION" envDefault:"./corpus"`
	PolicyFile     string `env:"POLICY_FILE" envDefault:"General HR Queries.pdf"`
	EmployeeFile   string `env:"EMPLOYEE_FILE" envDefault:"employees.json"`

	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`

	OllamaURL      string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	ChatModel      string        `env:"CHAT_MODEL" envDefault:"llama3.2"`
	EmbeddingModel string        `env:"EMBEDDING_MODEL" envDefault:"mxbai-embed-large"`
	Temperature    float64       `env:"MODEL_TEMPERATURE" envDefault:"0.1"`
	MaxTokens      int           `env:"MODEL_MAX_TOKENS" envDefault:"1200"`
	ModelTimeout   time.Duration `env:"MODEL_TIMEOUT" envDefault:"90s"`

	JWTSecret string        `env:"JWT_SECRET,notEmpty,required"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	UsersFile string        `env:"USERS_FILE" envDefault:"users.json"`

	RatingsFile string `env:"RATINGS_FILE" envDefault:"ratings.json"`
	// RabbitMQURL, when set, routes ratings through a broker instead of the
	// in-process queue.
	RabbitMQURL string `env:"RABBITMQ_URL"`
}

func main() {
	log.Println("Starting HR chatbot API server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
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
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Temperature:    cfg.Temperature,
		MaxTokens:      cfg.MaxTokens,
		Timeout:        cfg.ModelTimeout,
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
	if store.Count() == 0 {
		log.Println("Vector index is empty, ingesting corpus...")
		ingestor := vector.NewIngestor(source, store, model)
		ingestor.PolicyFile = cfg.PolicyFile
		ingestor.EmployeeFile = cfg.EmployeeFile
		if _, err := ingestor.Run(ctx); err != nil {
			log.Fatalf("Failed to ingest corpus: %v", err)
		}
	}

	directory := loadDirectory(ctx, source, cfg.EmployeeFile)

	users, err := auth.NewFileStore(filepath.Join(cfg.DataDir, cfg.UsersFile))
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	ratingLog, err := feedback.NewRatingLog(filepath.Join(cfg.DataDir, cfg.RatingsFile))
	if err != nil {
		log.Fatalf("Failed to open ratings log: %v", err)
	}
	publisher, receiver := setupRatingQueue(cfg.RabbitMQURL)
	defer publisher.Close()
	go feedback.NewWorker(receiver, ratingLog).Run()

	bot := chatbot.New(store, model)
	sessions := session.NewMemoryStore()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))

	api.NewChatService(bot, sessions, publisher, model.Ping).AddRoutes(r)
	api.NewAuthService(users, issuer).AddRoutes(r)
	if directory != nil {
		api.NewEmployeeService(directory).AddRoutes(r)
	}

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}

// loadDirectory returns nil when the employee file is missing; the directory
// endpoints are simply not mounted in that case.
func loadDirectory(ctx context.Context, source storage.Source, name string) *hrtools.Directory {
	data, err := source.Fetch(ctx, name)
	if err != nil {
		log.Printf("Employee data unavailable, directory endpoints disabled: %v", err)
		return nil
	}
	dir, err := hrtools.ParseDirectory(data)
	if err != nil {
		log.Printf("Employee data unreadable, directory endpoints disabled: %v", err)
		return nil
	}
	return dir
}

func setupRatingQueue(rabbitMQURL string) (feedback.Publisher, feedback.Receiver) {
	if rabbitMQURL == "" {
		queue := feedback.NewInMemoryQueue()
		return queue, queue
	}

	publisher, err := feedback.NewRabbitMQPublisher(rabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect rating publisher to RabbitMQ: %v", err)
	}
	receiver, err := feedback.NewRabbitMQReceiver(rabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect rating receiver to RabbitMQ: %v", err)
	}
	return publisher, receiver
}
