package bootstrap

import (
	"context"
	"fmt"
	"log"

	"paddy-kbs-be/internal/config"
	"paddy-kbs-be/internal/constant"
	"paddy-kbs-be/internal/controller"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/internal/repository/cache"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/internal/repository/factstore"
	"paddy-kbs-be/internal/repository/implementation"
	"paddy-kbs-be/internal/repository/memory"
	"paddy-kbs-be/internal/seed"
	"paddy-kbs-be/internal/service"
	"paddy-kbs-be/pkg/database"
	"paddy-kbs-be/pkg/inference"
	pktNats "paddy-kbs-be/pkg/nats"
	"paddy-kbs-be/pkg/sparql"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController   controller.IHealthController
	AdvisoryController controller.IAdvisoryController
	QueryController    controller.IQueryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	GraphService service.IGraphService
	QueryService service.IQueryService
	Store        contract.FactStore

	closers []func()
}

func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Loggers
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	c.closers = append(c.closers, func() {
		_ = sysLogger.Sync()
		_ = auditLogger.Sync()
	})

	// 2. Fact store and run history
	store, runs, err := c.openStore(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	store = factstore.WithTimeout(store, cfg.FactStore.Timeout)
	c.Store = store

	// 3. Caches
	var projections cache.ProjectionCache = cache.NoopProjectionCache{}
	if cfg.Cache.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.Cache.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		projections = cache.NewRedisProjectionCache(rdb, cfg.Cache.ProjectionTTL)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}
	snapshots := memory.NewSnapshotCache(cfg.Cache.SnapshotTTL)

	// 4. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS is optional. A nil *Publisher must not reach the interface.
	var eventPublisher service.EventPublisher
	if cfg.Messaging.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Messaging.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 5. Services
	graphService := service.NewGraphService(store, snapshots, sysLogger)
	sessionService := service.NewSessionService(store, sysLogger)
	publisherService := service.NewPublisherService(constant.TopicPipelineRun, pubSub)
	eventService := service.NewEventService(eventPublisher, sysLogger)
	advisoryService := service.NewAdvisoryService(
		store,
		sessionService,
		graphService,
		inference.NewPipeline(),
		publisherService,
		eventService,
		sysLogger,
	)
	queryService := service.NewQueryService(store, sessionService, graphService, runs, projections, sysLogger)

	c.ConsumerService = service.NewConsumerService(pubSub, constant.TopicPipelineRun, runs, auditLogger)
	c.GraphService = graphService
	c.QueryService = queryService

	// 6. Controllers
	c.HealthController = controller.NewHealthController(store)
	c.AdvisoryController = controller.NewAdvisoryController(advisoryService)
	c.QueryController = controller.NewQueryController(queryService)

	return c, nil
}

// openStore picks the fact store for the configured driver. Run history
// goes to Postgres whenever a connection string is set.
func (c *Container) openStore(cfg *config.Config) (contract.FactStore, contract.PipelineRunRepository, error) {
	var db *gorm.DB
	if cfg.Database.Connection != "" {
		var err error
		db, err = database.NewGormDB(cfg.Database.Connection, database.DefaultPoolConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to GORM DB: %w", err)
		}
		c.closers = append(c.closers, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
	}

	var runs contract.PipelineRunRepository
	if db != nil {
		runs = implementation.NewPipelineRunRepository(db)
	} else {
		runs = memory.NewPipelineRunRepository()
	}

	switch cfg.FactStore.Driver {
	case config.StoreDriverMemory:
		store := factstore.NewMemoryStore()
		if cfg.FactStore.SeedFile != "" {
			f, err := seed.LoadFile(cfg.FactStore.SeedFile)
			if err != nil {
				return nil, nil, err
			}
			n, err := seed.Apply(context.Background(), store, f, false)
			if err != nil {
				return nil, nil, err
			}
			log.Printf("[INFO] Seeded memory fact store with %d facts from %s", n, cfg.FactStore.SeedFile)
		}
		return store, runs, nil

	case config.StoreDriverPostgres:
		if db == nil {
			return nil, nil, fmt.Errorf("fact store driver %q needs DB_CONNECTION_STRING", cfg.FactStore.Driver)
		}
		return factstore.NewGormStore(db), runs, nil

	case config.StoreDriverSparql:
		client := sparql.NewClient(cfg.FactStore.SparqlQueryURL, cfg.FactStore.SparqlUpdateURL)
		return factstore.NewSparqlStore(client, cfg.FactStore.OntologyIRI), runs, nil

	default:
		return nil, nil, fmt.Errorf("unknown fact store driver %q", cfg.FactStore.Driver)
	}
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
