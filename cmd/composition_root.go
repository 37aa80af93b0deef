package cmd

import (
	"log/slog"

	"foodorder/internal/adapters/out/csvexport"
	"foodorder/internal/adapters/out/kafka"
	memorycartrepo "foodorder/internal/adapters/out/memory/cartrepo"
	"foodorder/internal/adapters/out/postgres"
	rediscartrepo "foodorder/internal/adapters/out/redis/cartrepo"
	"foodorder/internal/adapters/out/staticmenu"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CartStoreRedis selects the redis cart store; any other value selects the
// in-process store.
const CartStoreRedis = "redis"

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.MenuCatalog
	cartRepo   ports.CartRepository
	billing    services.BillingCalculator
	publisher  ports.OrderStatusPublisher
	exporter   ports.HistoryExporter
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	billing, err := services.NewBillingCalculator(config.TaxRateBasisPoints)
	if err != nil {
		return CompositionRoot{}, err
	}

	var cartRepo ports.CartRepository
	if config.CartStore == CartStoreRedis {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		cartRepo = rediscartrepo.NewRedisCartRepository(client)
	} else {
		cartRepo = memorycartrepo.NewMemoryCartRepository()
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    staticmenu.NewCatalog(),
		cartRepo:   cartRepo,
		billing:    billing,
		publisher:  kafka.NewStatusPublisher([]string{config.KafkaHost}, config.KafkaOrderStatusTopic),
		exporter:   csvexport.NewHistoryExporter(config.HistoryExportPath),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) MenuCatalog() ports.MenuCatalog {
	return c.catalog
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartRepo, c.catalog)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.cartRepo, c.billing)
}

func (c *CompositionRoot) CreateProcessNextOrderCommandHandler() commands.ProcessNextOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessNextOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAdvanceDeliveriesCommandHandler() commands.AdvanceDeliveriesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveriesCommandHandler(f, c.publisher, c.exporter, c.logger)
}

func (c *CompositionRoot) CreateGetBillQueryHandler() queries.GetBillQueryHandler {
	return queries.NewGetBillQueryHandler(c.cartRepo, c.billing)
}

func (c *CompositionRoot) CreateGetQueuedOrdersQueryHandler() queries.GetQueuedOrdersQueryHandler {
	return queries.NewGetQueuedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueQueryHandler() queries.GetRevenueQueryHandler {
	return queries.NewGetRevenueQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}
