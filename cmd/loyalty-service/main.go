package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/LavaJover/shvark-loyalty-service/internal/config"
	httpdelivery "github.com/LavaJover/shvark-loyalty-service/internal/delivery/http"
	"github.com/LavaJover/shvark-loyalty-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-loyalty-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	sub := kafka.NewDefaultKafkaSubscriber(brokers)

	// Init repositories
	programRepo := repository.NewDefaultProgramRepository(db)
	progressRepo := repository.NewDefaultProgressRepository(db)
	redemptionRepo := repository.NewDefaultRedemptionRepository(db)
	issueRepo := repository.NewDefaultIssueRepository(db)
	historyRepo := repository.NewDefaultHistoryRepository(db)

	// Init metrics
	loyaltyMetrics := metrics.NewLoyaltyMetrics()

	// Init usecases
	programUsecase := usecase.NewDefaultProgramUsecase(programRepo)
	progressUsecase := usecase.NewDefaultProgressUsecase(programRepo, progressRepo)
	accrualUsecase := usecase.NewDefaultAccrualUsecase(programRepo, progressRepo, pub, loyaltyMetrics, cfg.KafkaService.BonusTopic)
	redemptionUsecase := usecase.NewDefaultRedemptionUsecase(redemptionRepo, pub, loyaltyMetrics, cfg.KafkaService.BonusTopic)
	requestUsecase := usecase.NewDefaultBonusRequestUsecase(programRepo, progressRepo, issueRepo, pub, loyaltyMetrics, cfg.KafkaService.BonusTopic)
	historyUsecase := usecase.NewDefaultHistoryUsecase(historyRepo)

	// Init HTTP handlers
	bonusHandler := handlers.NewBonusHandler(progressUsecase, redemptionUsecase, requestUsecase, historyUsecase)
	adminHandler := handlers.NewAdminBonusHandler(programUsecase, progressUsecase, requestUsecase, historyUsecase)
	router := httpdelivery.NewRouter(bonusHandler, adminHandler)

	// Order completion events drive accrual
	go accrualUsecase.StartOrderEventWorker(
		context.Background(),
		sub,
		cfg.KafkaService.OrderTopic,
		cfg.KafkaService.GroupID,
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("loyalty service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
