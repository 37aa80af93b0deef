package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()

	price, err := kernel.NewMoneyFromUnits(250)
	require.NoError(t, err)
	item, err := menu.NewItem("Margherita", price)
	require.NoError(t, err)

	c := cart.NewCart()
	require.NoError(t, c.AddItem(item, 2))
	return c
}

func testBilling(t *testing.T) services.BillingCalculator {
	t.Helper()

	calc, err := services.NewBillingCalculator(services.DefaultTaxRateBasisPoints)
	require.NoError(t, err)
	return calc
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockPlacementUoW)
	factory := new(MockPlacementUoWFactory)

	// 2 x 250.00 = 500.00 subtotal, 25.00 tax, 525.00 total.
	expectedTotal, err := kernel.NewMoney(52500)
	require.NoError(t, err)

	mock.InOrder(
		cartRepo.On("Get", ctx).Return(filledCart(t), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(orderID) &&
				o.Status() == order.Queued &&
				o.Total().IsEqual(expectedTotal)
		})).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Record", ctx, expectedTotal).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cartRepo.On("Clear", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory, cartRepo, testBilling(t))
	require.NoError(t, h.Handle(ctx, cmd))
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	cartRepo.On("Get", ctx).Return(cart.NewCart(), nil).Once()

	factory := new(MockPlacementUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, cartRepo, testBilling(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrCartIsEmpty)

	// Nothing was placed, so the cart must survive.
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockPlacementUoW)
	factory := new(MockPlacementUoWFactory)

	mock.InOrder(
		cartRepo.On("Get", ctx).Return(filledCart(t), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory, cartRepo, testBilling(t))
	require.Error(t, h.Handle(ctx, cmd))
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockPlacementUoW)
	factory := new(MockPlacementUoWFactory)

	mock.InOrder(
		cartRepo.On("Get", ctx).Return(filledCart(t), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Record", ctx, mock.AnythingOfType("kernel.Money")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory, cartRepo, testBilling(t))
	require.Error(t, h.Handle(ctx, cmd))
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	h := commands.NewPlaceOrderCommandHandler(
		new(MockPlacementUoWFactory), new(MockCartRepository), testBilling(t))
	require.Error(t, h.Handle(ctx, cmd))
}
