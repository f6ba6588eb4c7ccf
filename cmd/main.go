package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"
	"github.com/mrsingh-rishi/job-outreach/internal/clients/gemini"
	"github.com/mrsingh-rishi/job-outreach/internal/clients/mailer"
	"github.com/mrsingh-rishi/job-outreach/internal/clients/websearch"
	"github.com/mrsingh-rishi/job-outreach/internal/config"
	"github.com/mrsingh-rishi/job-outreach/internal/events"
	"github.com/mrsingh-rishi/job-outreach/internal/logger"
	"github.com/mrsingh-rishi/job-outreach/internal/metrics"
	"github.com/mrsingh-rishi/job-outreach/internal/repositories"
	"github.com/mrsingh-rishi/job-outreach/internal/server"
	"github.com/mrsingh-rishi/job-outreach/internal/services"
	log "github.com/sirupsen/logrus"
)

func buildOutreachService(ctx context.Context, cfg *config.Config,
	emailLogs *repositories.EmailLogs, bus EventBus.Bus) *services.OutreachService {

	planner := services.NewQueryPlanner(cfg.Outreach.MaxQueries)
	scraper := services.NewPageScraper(time.Duration(cfg.Search.RequestTimeoutInSeconds) * time.Second)

	searchClient := websearch.NewClient(cfg.Search.APIKey, cfg.Search.EngineID)
	searchClient.SetRateLimit(cfg.Search.MaxRequestsPerSecond)
	searchClient.SetTimeout(time.Duration(cfg.Search.RequestTimeoutInSeconds) * time.Second)

	aggregator := services.NewAggregator(
		services.NewSearchSource(searchClient, planner, scraper, cfg.Outreach),
		services.NewPatternSource(),
		services.NewLinkedinSource(),
		services.NewJobBoardSource(),
		services.NewStartupSource(),
	)

	var aiService *services.AIService
	if cfg.AI.Enabled() {
		aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, gemini.Model(cfg.AI.Model))
		if err != nil {
			log.Fatalf("can't create AI client: %v", err)
		}
		aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
		aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)
		aiService = services.NewAIService(aiClient)
	}

	builder := services.NewMessageBuilder(cfg.Smtp, aiService)
	dispatcher := services.NewDispatcher(mailer.NewClient(cfg.Smtp), emailLogs, bus, cfg.Outreach)

	return services.NewOutreachService(aggregator, services.NewHistoryFilter(emailLogs),
		builder, dispatcher)
}

func main() {

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	emailLogs := repositories.NewEmailLogsRepository(dbContext.DB)

	bus := EventBus.New()
	err = bus.SubscribeAsync(events.EmailDispatchedTopic, func(event events.EmailDispatched) {
		log.WithFields(log.Fields{
			"job_title": event.JobTitle,
			"recipient": event.Recipient,
			"success":   event.Success,
		}).Info("dispatch attempt finished")
	}, false)
	if err != nil {
		log.Fatalf("can't subscribe to dispatch events: %v", err)
	}

	if cfg.Outreach.LogRetentionInDays > 0 {
		cleaner, err := services.NewLogsCleaner(emailLogs, cfg.Outreach.LogRetentionInDays)
		if err != nil {
			log.Fatalf("can't create logs cleaner: %v", err)
		}
		defer cleaner.Stop()
	}

	outreach := buildOutreachService(ctx, cfg, emailLogs, bus)

	srv := server.New(cfg.Server, server.NewHandlers(outreach, emailLogs))
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown failed: %v", err)
	}
	bus.WaitAsync()
	log.Info("Services stopped.")
}
