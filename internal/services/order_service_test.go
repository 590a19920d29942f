package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/pkg/apperrors"
)

func TestCreateOrderHappyPath(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	notifier := &fakeNotifier{}
	svc := newOrderServiceForTest(t, db, notifier, OrderServiceConfig{PromptPayID: "0812345678"})

	resp, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderID)
	require.NotNil(t, resp.QRCodePath)
	assert.Equal(t, "/uploads/qr-"+resp.OrderID+".png", *resp.QRCodePath)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", resp.OrderID).Error)
	assert.Equal(t, models.OrderStatusWaiting, order.Status)
	require.NotNil(t, order.QRCodePath)

	assert.Eventually(t, func() bool {
		return notifier.count(NotificationNewOrder) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCreateOrderRejectsSelfOrder(t *testing.T) {
	db := newTestDB(t)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{})

	_, err := svc.Create(artist.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "Ordering from my own shop",
		Price:    100,
	})
	assert.ErrorIs(t, err, apperrors.ErrSelfOrder)
}

func TestCreateOrderRequiresArtistRole(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	other := createTestUser(t, db, "Carol", models.UserRoleCustomer)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{})

	_, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: other.ID,
		Detail:   "Commission from a non-artist",
		Price:    100,
	})
	assert.ErrorIs(t, err, apperrors.ErrArtistRequired)
}

func TestCreateOrderUnknownArtistIs404(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{})

	_, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: "11111111-1111-1111-1111-111111111111",
		Detail:   "Commission from a ghost",
		Price:    100,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestCreateOrderWithoutMerchantSkipsQR(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{PromptPayID: ""})

	resp, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.QRCodePath)
}

func TestCreateOrderSurvivesQRFailure(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	svc := NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
		&fakeNotifier{},
		fakeQRGenerator{fail: true},
		newTestStorage(t),
		OrderServiceConfig{PromptPayID: "0812345678"},
	)

	resp, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.QRCodePath)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", resp.OrderID).Error)
	assert.Equal(t, models.OrderStatusWaiting, order.Status)
}

func TestUpdateStatusByNonPartyIs404(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	outsider := createTestUser(t, db, "Mallory", models.UserRoleCustomer)
	notifier := &fakeNotifier{}
	svc := newOrderServiceForTest(t, db, notifier, OrderServiceConfig{})

	resp, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(resp.OrderID, models.OrderStatusPaid, outsider.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", resp.OrderID).Error)
	assert.Equal(t, models.OrderStatusWaiting, order.Status)
}

func TestUpdateStatusToPaidNotifiesArtistOnce(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	notifier := &fakeNotifier{}
	svc := newOrderServiceForTest(t, db, notifier, OrderServiceConfig{})

	resp, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(resp.OrderID, models.OrderStatusPaid, customer.ID))

	assert.Eventually(t, func() bool {
		return notifier.count(NotificationPaymentConfirmed) == 1
	}, time.Second, 10*time.Millisecond)

	// Moving on does not re-fire payment mail.
	require.NoError(t, svc.UpdateStatus(resp.OrderID, models.OrderStatusWorking, artist.ID))
	require.NoError(t, svc.UpdateStatus(resp.OrderID, models.OrderStatusDone, artist.ID))

	assert.Never(t, func() bool {
		return notifier.count(NotificationPaymentConfirmed) > 1
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{})

	err := svc.UpdateStatus("any", models.OrderStatus("cancelled"), "user")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUpdateStatusEnforcedTransitions(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{EnforceTransitions: true})

	resp, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(resp.OrderID, models.OrderStatusPaid, customer.ID))

	// Re-issuing the current status is allowed.
	require.NoError(t, svc.UpdateStatus(resp.OrderID, models.OrderStatusPaid, customer.ID))

	// Going backwards is not.
	err = svc.UpdateStatus(resp.OrderID, models.OrderStatusWaiting, customer.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUpdateStatusBackwardsAllowedByDefault(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{})

	resp, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(resp.OrderID, models.OrderStatusWorking, artist.ID))
	require.NoError(t, svc.UpdateStatus(resp.OrderID, models.OrderStatusWaiting, artist.ID))
}

func TestListByCustomerJoinsArtist(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	svc := newOrderServiceForTest(t, db, &fakeNotifier{}, OrderServiceConfig{})

	_, err := svc.Create(customer.ID, &dto.CreateOrderRequest{
		ArtistID: artist.ID,
		Detail:   "A portrait of my cat in watercolor",
		Price:    500,
	})
	require.NoError(t, err)

	orders, err := svc.ListByCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Bob", orders[0].ArtistName)
	assert.Equal(t, models.OrderStatusWaiting, orders[0].Status)

	other, err := svc.ListByCustomer(artist.ID)
	require.NoError(t, err)
	assert.Empty(t, other)
}
