package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inFlightOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o := queuedOrder(t)
	require.NoError(t, o.StartPreparing())
	if status == order.OnTheWay {
		require.NoError(t, o.Advance(time.Now().UTC()))
	}
	return o
}

func TestAdvanceDeliveriesCommandHandler_Handle_NoInFlightOrders(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFlight", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockStatusPublisher)
	exporter := new(MockHistoryExporter)

	h := commands.NewAdvanceDeliveriesCommandHandler(factory, publisher, exporter, testLogger())
	require.NoError(t, h.Handle(ctx, commands.NewAdvanceDeliveriesCommand()))
	publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything, mock.Anything)
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}

func TestAdvanceDeliveriesCommandHandler_Handle_AdvancesEachOrderOneStep(t *testing.T) {
	ctx := t.Context()
	preparing := inFlightOrder(t, order.Preparing)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockStatusPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFlight", ctx).Return([]*order.Order{preparing}, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.OnTheWay
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishStatusChanged", ctx, preparing.ID(), order.OnTheWay).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	exporter := new(MockHistoryExporter)

	h := commands.NewAdvanceDeliveriesCommandHandler(factory, publisher, exporter, testLogger())
	require.NoError(t, h.Handle(ctx, commands.NewAdvanceDeliveriesCommand()))
	assert.Equal(t, order.OnTheWay, preparing.Status())

	// No delivery completed, so the export snapshot stays untouched.
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
	publisher.AssertExpectations(t)
}

func TestAdvanceDeliveriesCommandHandler_Handle_DeliveryTriggersExport(t *testing.T) {
	ctx := t.Context()
	onTheWay := inFlightOrder(t, order.OnTheWay)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFlight", ctx).Return([]*order.Order{onTheWay}, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.IsDelivered()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	publisher := new(MockStatusPublisher)
	publisher.On("PublishStatusChanged", ctx, onTheWay.ID(), order.Delivered).Return(nil).Once()

	// Export reads the committed history through a second unit of work.
	exportRepo := new(MockOrderRepository)
	exportUoW := new(MockOrderUoW)
	mock.InOrder(
		exportUoW.On("Begin", ctx).Return(nil).Once(),
		exportUoW.On("OrderRepository").Return(exportRepo).Once(),
		exportRepo.On("GetAllDelivered", ctx).Return([]*order.Order{onTheWay}, nil).Once(),
	)
	exportUoW.On("Rollback", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	exporter := new(MockHistoryExporter)
	exporter.On("Export", ctx, []*order.Order{onTheWay}).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(exportUoW).Once()

	h := commands.NewAdvanceDeliveriesCommandHandler(factory, publisher, exporter, testLogger())
	require.NoError(t, h.Handle(ctx, commands.NewAdvanceDeliveriesCommand()))

	assert.True(t, onTheWay.IsDelivered())
	require.NotNil(t, onTheWay.DeliveredAt())
	exporter.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAdvanceDeliveriesCommandHandler_Handle_ExportFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	onTheWay := inFlightOrder(t, order.OnTheWay)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFlight", ctx).Return([]*order.Order{onTheWay}, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil)

	publisher := new(MockStatusPublisher)
	publisher.On("PublishStatusChanged", ctx, onTheWay.ID(), order.Delivered).Return(nil).Once()

	exportRepo := new(MockOrderRepository)
	exportRepo.On("GetAllDelivered", ctx).Return([]*order.Order{onTheWay}, nil).Once()
	exportUoW := new(MockOrderUoW)
	exportUoW.On("Begin", ctx).Return(nil).Once()
	exportUoW.On("OrderRepository").Return(exportRepo).Once()
	exportUoW.On("Rollback", ctx).Return(nil)

	exporter := new(MockHistoryExporter)
	exporter.On("Export", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(exportUoW).Once()

	h := commands.NewAdvanceDeliveriesCommandHandler(factory, publisher, exporter, testLogger())
	require.NoError(t, h.Handle(ctx, commands.NewAdvanceDeliveriesCommand()))
}

func TestAdvanceDeliveriesCommandHandler_Handle_UpdateErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	preparing := inFlightOrder(t, order.Preparing)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInFlight", ctx).Return([]*order.Order{preparing}, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockStatusPublisher)
	exporter := new(MockHistoryExporter)

	h := commands.NewAdvanceDeliveriesCommandHandler(factory, publisher, exporter, testLogger())
	require.Error(t, h.Handle(ctx, commands.NewAdvanceDeliveriesCommand()))
	publisher.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything, mock.Anything)
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}
