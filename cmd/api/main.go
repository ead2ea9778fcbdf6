package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/config"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/generation"
	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/infra/worker"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Model
	llm, err := generation.NewModel(cfg.LLM)
	if err != nil {
		log.Fatalf("failed to configure LLM: %v", err)
	}
	generator := generation.NewClient(llm)

	// 2. Storage (optional)
	var (
		repo   entity.CampaignRepositoryInterface
		pinger handlers.Pinger
		getUC  handlers.CampaignFinder
	)
	if cfg.DatabaseURL != "" {
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			log.Fatal(err)
		}

		campaignRepo := database.NewCampaignRepository(db)
		repo, pinger = campaignRepo, db
		getUC = usecase.NewGetCampaignUseCase(campaignRepo)

		go worker.NewFollowUpDueWorker(campaignRepo, cfg.FollowUpTick).Start(ctx)
	} else {
		log.Println("DATABASE_URL not set, campaigns will not be stored")
	}

	// 3. Draft export (optional)
	var exporter usecase.DraftExporter
	if cfg.ExportDir != "" {
		exporter = mail.NewDraftExporter(cfg.ExportDir, cfg.MailFrom)
	}

	generateUC := usecase.NewGenerateCampaignUseCase(generator, repo, exporter)

	// 4. Broker (optional)
	var (
		producer queue.QueueProducerInterface
		broker   handlers.BrokerConn
	)
	if cfg.RabbitMQHost != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPort)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Close()

		producer, broker = queue.NewProducer(rabbitMQ.Ch), rabbitMQ.Conn

		consumerCh, err := rabbitMQ.Conn.Channel()
		if err != nil {
			log.Fatalf("failed to open consumer channel: %v", err)
		}
		w := queue.NewWorker(consumerCh, generateUC)
		go func() {
			if err := w.Start(ctx, queue.QueueName); err != nil {
				log.Printf("[WORKER] %v", err)
			}
		}()
	} else {
		log.Println("RABBITMQ_HOST not set, async generation disabled")
	}

	// 5. Router
	router := handlers.NewRouter(handlers.Router{
		Campaign:          handlers.NewCampaignHandler(generateUC, getUC, producer),
		Enrichment:        handlers.NewEnrichmentHandler(),
		Prompt:            handlers.NewPromptHandler(),
		Health:            handlers.NewHealthHandler(pinger, broker, true),
		GenerationLimiter: handlers.NewRateLimiter(10, time.Minute),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("outreach API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
