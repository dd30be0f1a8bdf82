package main

import (
	"os"
	"os/signal"
	"sponsorship/config"
	"sponsorship/domain"
	"sponsorship/services/sponsorship/delivery"
	"sponsorship/services/sponsorship/repository"
	"sponsorship/services/sponsorship/usecase"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using the process environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        config.GetRateLimitMax(),
		Expiration: time.Minute,
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	var mailer domain.ContactMailer
	if goMailer, err := config.NewGoMailer(); err != nil {
		log.WithError(err).Warn("Mail is not configured, contact confirmations will only be logged")
		mailer = config.LogMailer{}
	} else {
		mailer = goMailer
	}

	timeout := config.GetContextTimeout()

	// Repositories
	childRepo := repository.NewChildRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	sponsorshipRepo := repository.NewSponsorshipRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Use cases
	childUC := usecase.NewChildUseCase(childRepo, config.GetUploadDir(), timeout)
	sponsorUC := usecase.NewSponsorUseCase(sponsorRepo, timeout)
	sponsorshipUC := usecase.NewSponsorshipUseCase(sponsorshipRepo, timeout)
	policyUC := usecase.NewPolicyUseCase(policyRepo, timeout)
	authUC := usecase.NewAuthUseCase(userRepo, timeout)
	contactUC := usecase.NewContactUseCase(contactRepo, mailer, timeout)
	profileUC := usecase.NewProfileUseCase(profileRepo, config.GetUploadDir(), timeout)

	// Delivery
	delivery.NewAuthHandler(app, authUC)
	delivery.NewChildHandler(app, childUC)
	delivery.NewSponsorHandler(app, sponsorUC)
	delivery.NewSponsorshipHandler(app, sponsorshipUC)
	delivery.NewPolicyHandler(app, policyUC)
	delivery.NewContactHandler(app, contactUC)
	delivery.NewProfileHandler(app, profileUC)

	app.Static("/uploads", config.GetUploadDir())

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on %s", config.GetFiberListenAddress())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server shut down gracefully")
}
