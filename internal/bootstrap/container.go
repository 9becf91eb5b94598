package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"study-planner-be/internal/config"
	"study-planner-be/internal/controller"
	"study-planner-be/internal/pkg/logger"
	"study-planner-be/internal/repository/contract"
	"study-planner-be/internal/repository/implementation"
	"study-planner-be/internal/repository/memory"
	"study-planner-be/internal/repository/redisrepo"
	"study-planner-be/internal/service"
	"study-planner-be/pkg/database"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	PlannerController controller.IPlannerController
	ProfileController controller.IProfileController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Session store (memory by default; redis/postgres via env)
	sessions := newSessionRepository(cfg, appLogger)

	// 3. In-process event bus
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, appLogger)

	// 4. Services
	locker := service.NewSessionLocker()
	sessionService := service.NewSessionService(sessions)
	plannerService := service.NewPlannerService(cfg.Planner, sessions, locker, publisherService, appLogger)
	profileService := service.NewProfileService(sessions, locker)

	// 5. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		PlannerController: controller.NewPlannerController(plannerService),
		ProfileController: controller.NewProfileController(profileService),
		ConsumerService:   consumerService,
		Logger:            appLogger,
	}
}

func newSessionRepository(cfg *config.Config, appLogger logger.ILogger) contract.SessionRepository {
	ttl := time.Duration(cfg.Store.SessionHours) * time.Hour

	switch cfg.Store.Backend {
	case "redis":
		repo, err := redisrepo.NewSessionRepository(cfg.Store.RedisURL, ttl)
		if err != nil {
			log.Panicf("Unable to initialize redis session store: %v", err)
		}
		return repo

	case "postgres":
		gormDB, err := database.NewGormDBFromDSN(cfg.Store.PostgresDSN)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		repo, err := implementation.NewSessionRepository(gormDB)
		if err != nil {
			log.Panicf("Unable to initialize postgres session store: %v", err)
		}
		return repo

	default:
		appLogger.Info("bootstrap", "Using in-memory session store", nil)
		return memory.NewSessionRepository(ttl)
	}
}
