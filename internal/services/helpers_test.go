package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skydraw_backend/database"
	"skydraw_backend/internal/auth"
	"skydraw_backend/internal/config"
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test name, so the pool's
	// connections all see the same schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	config.AppConfig = cfg
}

func createTestUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestShop(t *testing.T, db *gorm.DB, owner *models.User, approved bool) *models.Shop {
	t.Helper()

	shop := &models.Shop{
		UserID:     owner.ID,
		Name:       owner.Name + "'s Art Shop",
		Bio:        "Welcome to our shop",
		IsApproved: approved,
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func newTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	require.NoError(t, err)
	return store
}

// fakeNotifier records Notify calls so tests can assert dispatch without a
// mail relay.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []fakeNotification
}

type fakeNotification struct {
	UserID  string
	OrderID string
	Kind    NotificationKind
}

func (f *fakeNotifier) Notify(userID, orderID string, kind NotificationKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeNotification{UserID: userID, OrderID: orderID, Kind: kind})
}

func (f *fakeNotifier) count(kind NotificationKind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

type fakeQRGenerator struct {
	fail bool
}

func (f fakeQRGenerator) GeneratePNG(payload string) ([]byte, error) {
	if f.fail {
		return nil, fmt.Errorf("qr render failed")
	}
	return []byte("png:" + payload), nil
}

func newOrderServiceForTest(t *testing.T, db *gorm.DB, notifier NotificationService, cfg OrderServiceConfig) OrderService {
	t.Helper()
	return NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
		notifier,
		fakeQRGenerator{},
		newTestStorage(t),
		cfg,
	)
}
