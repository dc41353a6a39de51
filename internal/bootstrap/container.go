package bootstrap

import (
	"context"
	"log"

	"badger-buds-be/internal/config"
	"badger-buds-be/internal/controller"
	"badger-buds-be/internal/pkg/logger"
	"badger-buds-be/internal/pkg/metrics"
	"badger-buds-be/internal/repository/memory"
	"badger-buds-be/internal/repository/redisstore"
	"badger-buds-be/internal/repository/unitofwork"
	"badger-buds-be/internal/service"
	adoptionEvents "badger-buds-be/pkg/adoption/events"
	pktNats "badger-buds-be/pkg/nats"
	"badger-buds-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AdoptionController controller.IAdoptionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Metrics *metrics.SelectionMetrics
	Logger  logger.ILogger

	closers []func()
}

// Options carries the optional infrastructure; zero values fall back to
// in-process implementations so tests can build a container without network.
type Options struct {
	Logger         logger.ILogger
	AuditLogger    logger.ILogger
	SessionBackend store.Backend
	EventSink      adoptionEvents.Sink
}

func NewContainer(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) *Container {
	opts := Options{
		Logger:      logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction()),
		AuditLogger: logger.NewIsolatedLogger(cfg.App.AuditLogFilePath),
	}
	var closers []func()

	// Session storage
	if cfg.Session.Backend == config.SessionBackendRedis {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		opts.SessionBackend = redisstore.NewSessionRepository(rdb, cfg.Session.KeyPrefix, cfg.Session.TTL)
		closers = append(closers, func() { _ = rdb.Close() })
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		log.Printf("[INFO] Using Session Backend: MEMORY (ttl %s)", cfg.Session.TTL)
	}

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		opts.EventSink = natsPub
		closers = append(closers, natsPub.Close)
	}

	c := NewContainerWithOptions(uowFactory, cfg, opts)
	c.closers = append(c.closers, closers...)
	return c
}

func NewContainerWithOptions(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	if opts.AuditLogger == nil {
		opts.AuditLogger = opts.Logger
	}
	if opts.SessionBackend == nil {
		opts.SessionBackend = memory.NewSessionRepository(cfg.Session.TTL)
	}

	// In-process event bus for adoption records
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	selectionMetrics := metrics.NewSelectionMetrics()
	eventPublisher := adoptionEvents.NewNatsPublisher(opts.EventSink, opts.Logger)
	publisherService := service.NewPublisherService(cfg.Events.AdoptionTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.AdoptionTopic,
		uowFactory,
		opts.AuditLogger,
	)

	adoptionService := service.NewAdoptionService(
		uowFactory,
		opts.SessionBackend,
		opts.Logger,
		eventPublisher,
		publisherService,
		selectionMetrics,
		cfg.Catalog.ImageBaseURL,
	)

	return &Container{
		AdoptionController: controller.NewAdoptionController(adoptionService),
		ConsumerService:    consumerService,
		Metrics:            selectionMetrics,
		Logger:             opts.Logger,
		closers: []func(){
			func() { _ = pubSub.Close() },
		},
	}
}

// Close releases connections opened by the container.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
