package orders

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"brasserie/internal/database"
	"brasserie/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	db       *gorm.DB
	svc      *Service
	customer models.User
	cashier  models.User
	salmon   models.Menu
	icedTea  models.Menu
	offMenu  models.Menu
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "orders_test.db")
	db, err := gorm.Open("sqlite3", path+"?_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	f := &testFixture{db: db, svc: NewService(db)}

	f.customer = models.User{Name: "Customer", Email: "customer@test.local", Role: string(models.RoleCustomer)}
	require.NoError(t, db.Create(&f.customer).Error)
	f.cashier = models.User{Name: "Cashier", Email: "cashier@test.local", Role: string(models.RoleCashier)}
	require.NoError(t, db.Create(&f.cashier).Error)

	category := models.Category{Name: "Main Dish"}
	require.NoError(t, db.Create(&category).Error)

	f.salmon = models.Menu{CategoryID: category.ID, Name: "Grilled Salmon", Price: 28000, IsAvailable: true}
	require.NoError(t, db.Create(&f.salmon).Error)
	f.icedTea = models.Menu{CategoryID: category.ID, Name: "Iced Tea", Price: 5000, IsAvailable: true}
	require.NoError(t, db.Create(&f.icedTea).Error)
	f.offMenu = models.Menu{CategoryID: category.ID, Name: "Seasonal Special", Price: 40000, IsAvailable: false}
	require.NoError(t, db.Create(&f.offMenu).Error)

	return f
}

func (f *testFixture) checkout(t *testing.T, entries ...CartEntry) *models.Order {
	t.Helper()
	order, err := f.svc.Checkout(CheckoutInput{
		CustomerID:  f.customer.ID,
		TableNumber: 5,
		Items:       entries,
	})
	require.NoError(t, err)
	return order
}

func TestCheckoutPricingIsServerSide(t *testing.T) {
	f := newFixture(t)

	order := f.checkout(t,
		CartEntry{MenuID: f.salmon.ID, Quantity: 2},
		CartEntry{MenuID: f.icedTea.ID, Quantity: 3},
	)

	assert.Equal(t, 2*28000+3*5000, order.TotalAmount)
	assert.Equal(t, string(models.OrderStatusPending), order.OrderStatus)
	assert.Equal(t, string(models.PaymentStatusPending), order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.Equal(t, item.Price*item.Quantity, item.Subtotal)
		assert.NotEmpty(t, item.Menu.Name)
	}
}

func TestCheckoutSingleItemScenario(t *testing.T) {
	f := newFixture(t)

	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1, Customization: "no lemon"})

	assert.Equal(t, 28000, order.TotalAmount)
	assert.Equal(t, 5, order.TableNumber)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 28000, order.Items[0].Subtotal)
	assert.Equal(t, "no lemon", order.Items[0].Customization)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Checkout(CheckoutInput{CustomerID: f.customer.ID, TableNumber: 5})

	var verr *CartValidationError
	require.True(t, errors.As(err, &verr))

	var count int64
	f.db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCheckoutItemizesInvalidEntries(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Checkout(CheckoutInput{
		CustomerID:  f.customer.ID,
		TableNumber: 5,
		Items: []CartEntry{
			{MenuID: f.salmon.ID, Quantity: 1},
			{MenuID: "", Quantity: 2},
			{MenuID: f.icedTea.ID, Quantity: 0},
		},
	})

	var verr *CartValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Invalid, 2)
	assert.Equal(t, 1, verr.Invalid[0].Index)
	assert.Equal(t, 2, verr.Invalid[1].Index)
}

func TestCheckoutRejectsInvalidTableNumber(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Checkout(CheckoutInput{
		CustomerID:  f.customer.ID,
		TableNumber: 0,
		Items:       []CartEntry{{MenuID: f.salmon.ID, Quantity: 1}},
	})

	var verr *CartValidationError
	require.True(t, errors.As(err, &verr))
}

func TestCheckoutUnavailableItemIsAtomic(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Checkout(CheckoutInput{
		CustomerID:  f.customer.ID,
		TableNumber: 5,
		Items: []CartEntry{
			{MenuID: f.salmon.ID, Quantity: 1},
			{MenuID: f.offMenu.ID, Quantity: 1},
			{MenuID: "no-such-item", Quantity: 1},
		},
	})

	var uerr *UnavailableItemsError
	require.True(t, errors.As(err, &uerr))
	assert.ElementsMatch(t, []string{f.offMenu.ID, "no-such-item"}, uerr.MenuIDs)

	// No partial order may exist.
	var orderCount, itemCount int64
	f.db.Model(&models.Order{}).Count(&orderCount)
	f.db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestPriceSnapshotSurvivesMenuChanges(t *testing.T) {
	f := newFixture(t)

	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	require.NoError(t, f.db.Model(&models.Menu{}).Where("id = ?", f.salmon.ID).
		Update("price", 99000).Error)
	_, _, err := f.svc.ToggleAvailability(f.salmon.ID)
	require.NoError(t, err)

	reloaded, err := f.svc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 28000, reloaded.TotalAmount)
	assert.Equal(t, 28000, reloaded.Items[0].Price)
}

func TestTransitionWalksForward(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	for _, target := range []models.OrderStatus{
		models.OrderStatusCooking,
		models.OrderStatusReady,
		models.OrderStatusCompleted,
	} {
		res, err := f.svc.Transition(order.ID, target)
		require.NoError(t, err)
		assert.True(t, res.Transitioned)
		assert.Equal(t, string(target), res.Order.OrderStatus)
	}

	final, err := f.svc.GetOrder(order.ID)
	require.NoError(t, err)
	require.NotNil(t, final.CompletedTime)
}

func TestTransitionIdempotentReapply(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	res, err := f.svc.Transition(order.ID, models.OrderStatusPending)
	require.NoError(t, err)
	assert.False(t, res.Transitioned)
	assert.Equal(t, string(models.OrderStatusPending), res.Order.OrderStatus)
}

func TestTransitionRejectsBackward(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	_, err := f.svc.Transition(order.ID, models.OrderStatusCooking)
	require.NoError(t, err)
	_, err = f.svc.Transition(order.ID, models.OrderStatusReady)
	require.NoError(t, err)

	_, err = f.svc.Transition(order.ID, models.OrderStatusPending)
	var terr *InvalidTransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, models.OrderStatusReady, terr.From)
	assert.Equal(t, models.OrderStatusPending, terr.To)
	assert.Equal(t, []models.OrderStatus{models.OrderStatusCompleted}, terr.ValidTargets)
}

func TestTransitionRejectsSkips(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	_, err := f.svc.Transition(order.ID, models.OrderStatusCompleted)
	var terr *InvalidTransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, []models.OrderStatus{models.OrderStatusCooking}, terr.ValidTargets)
}

func TestTransitionUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Transition("no-such-order", models.OrderStatusCooking)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestConcurrentTransitionsApplyOnce(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	var wg sync.WaitGroup
	results := make([]*TransitionResult, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.svc.Transition(order.ID, models.OrderStatusCooking)
		}(i)
	}
	wg.Wait()

	transitioned := 0
	for i := 0; i < 2; i++ {
		require.NoError(t, errs[i])
		if results[i].Transitioned {
			transitioned++
		}
	}
	// Exactly one caller applies the write; the other resolves to an
	// idempotent no-op, never a second silent transition.
	assert.Equal(t, 1, transitioned)

	final, err := f.svc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderStatusCooking), final.OrderStatus)
}

func TestMarkPaidRecordsCashier(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	paid, err := f.svc.MarkPaid(order.ID, f.cashier.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentStatusPaid), paid.PaymentStatus)
	require.NotNil(t, paid.CashierID)
	assert.Equal(t, f.cashier.ID, *paid.CashierID)
	// Payment does not advance the kitchen: the order was still pending.
	assert.Equal(t, string(models.OrderStatusPending), paid.OrderStatus)
}

func TestMarkPaidCompletesReadyOrder(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	_, err := f.svc.Transition(order.ID, models.OrderStatusCooking)
	require.NoError(t, err)
	_, err = f.svc.Transition(order.ID, models.OrderStatusReady)
	require.NoError(t, err)

	paid, err := f.svc.MarkPaid(order.ID, f.cashier.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentStatusPaid), paid.PaymentStatus)
	assert.Equal(t, string(models.OrderStatusCompleted), paid.OrderStatus)
	require.NotNil(t, paid.CompletedTime)
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	f := newFixture(t)
	order := f.checkout(t, CartEntry{MenuID: f.salmon.ID, Quantity: 1})

	_, err := f.svc.MarkPaid(order.ID, f.cashier.ID)
	require.NoError(t, err)
	again, err := f.svc.MarkPaid(order.ID, f.cashier.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.PaymentStatusPaid), again.PaymentStatus)
}

func TestMarkPaidUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MarkPaid("no-such-order", f.cashier.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestToggleAvailability(t *testing.T) {
	f := newFixture(t)

	menu, previous, err := f.svc.ToggleAvailability(f.salmon.ID)
	require.NoError(t, err)
	assert.True(t, previous)
	assert.False(t, menu.IsAvailable)

	available, err := f.svc.FindAvailable([]string{f.salmon.ID, f.icedTea.ID})
	require.NoError(t, err)
	assert.NotContains(t, available, f.salmon.ID)
	assert.Contains(t, available, f.icedTea.ID)
}
