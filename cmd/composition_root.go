package cmd

import (
	"log/slog"

	"crumbsy/internal/adapters/in/http"
	"crumbsy/internal/adapters/out/postgres"
	"crumbsy/internal/core/application/usecases/commands"
	"crumbsy/internal/core/application/usecases/queries"
	"crumbsy/internal/core/ports"
	"crumbsy/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateSendQuoteCommandHandler() commands.SendQuoteCommandHandler {
	return commands.NewSendQuoteCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRevokeQuoteCommandHandler() commands.RevokeQuoteCommandHandler {
	return commands.NewRevokeQuoteCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAssignBakerCommandHandler() commands.AssignBakerCommandHandler {
	return commands.NewAssignBakerCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddMessageCommandHandler() commands.AddMessageCommandHandler {
	return commands.NewAddMessageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelExpiredOrdersCommandHandler() commands.CancelExpiredOrdersCommandHandler {
	return commands.NewCancelExpiredOrdersCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetPostedOrdersQueryHandler() queries.GetPostedOrdersQueryHandler {
	return queries.NewGetPostedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateSendQuoteCommandHandler(),
		c.CreateRevokeQuoteCommandHandler(),
		c.CreateAssignBakerCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateDeclineOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateAddMessageCommandHandler(),
		c.CreateGetPostedOrdersQueryHandler(),
		c.CreateGetBuyerOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCancelExpiredOrdersCommandHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
