package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/pkg/apperrors"
)

func newShopServiceForTest(t *testing.T, db *gorm.DB) ShopService {
	t.Helper()
	return NewShopService(
		repositories.NewShopRepository(db),
		repositories.NewArtworkRepository(db),
		repositories.NewOrderRepository(db),
		newTestStorage(t),
		ShopServiceConfig{
			MaxUploadSize: 5 * 1024 * 1024,
			AllowedTypes:  []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		},
	)
}

func TestListApprovedHidesPendingShops(t *testing.T) {
	db := newTestDB(t)
	approvedOwner := createTestUser(t, db, "Bob", models.UserRoleArtist)
	pendingOwner := createTestUser(t, db, "Carol", models.UserRoleArtist)
	approved := createTestShop(t, db, approvedOwner, true)
	createTestShop(t, db, pendingOwner, false)
	svc := newShopServiceForTest(t, db)

	shops, err := svc.ListApproved()
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, approved.ID, shops[0].ID)
	assert.Equal(t, "Bob", shops[0].OwnerName)
}

func TestGetDetailOfPendingShopIs404(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Carol", models.UserRoleArtist)
	pending := createTestShop(t, db, owner, false)
	svc := newShopServiceForTest(t, db)

	_, err := svc.GetDetail(pending.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestGetDetailReturnsArtworks(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Bob", models.UserRoleArtist)
	shop := createTestShop(t, db, owner, true)
	require.NoError(t, db.Create(&models.Artwork{
		ShopID: shop.ID,
		Title:  "Sunset",
		Price:  250,
	}).Error)
	svc := newShopServiceForTest(t, db)

	detail, err := svc.GetDetail(shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.ID, detail.Shop.ID)
	require.Len(t, detail.Artworks, 1)
	assert.Equal(t, "Sunset", detail.Artworks[0].Title)
}

func TestUpdateShopChangesNameAndBio(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Bob", models.UserRoleArtist)
	shop := createTestShop(t, db, owner, true)
	svc := newShopServiceForTest(t, db)

	err := svc.UpdateShop(owner.ID, &dto.UpdateShopRequest{Name: "Bob Studio", Bio: "Oil paintings"})
	require.NoError(t, err)

	var updated models.Shop
	require.NoError(t, db.First(&updated, "id = ?", shop.ID).Error)
	assert.Equal(t, "Bob Studio", updated.Name)
	assert.Equal(t, "Oil paintings", updated.Bio)
}

func TestAddArtworkStoresImage(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Bob", models.UserRoleArtist)
	createTestShop(t, db, owner, true)
	svc := newShopServiceForTest(t, db)

	artwork, err := svc.AddArtwork(owner.ID, &dto.AddArtworkRequest{
		Title: "Sunset",
		Price: 250,
	}, &ArtworkUpload{
		FileName:    "sunset.png",
		ContentType: "image/png",
		Size:        64,
		Reader:      strings.NewReader("fake png bytes"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(artwork.ImageURL, "/uploads/artwork-"))
	assert.True(t, strings.HasSuffix(artwork.ImageURL, ".png"))
}

func TestAddArtworkRejectsOversizedUpload(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Bob", models.UserRoleArtist)
	createTestShop(t, db, owner, true)
	svc := newShopServiceForTest(t, db)

	_, err := svc.AddArtwork(owner.ID, &dto.AddArtworkRequest{
		Title: "Sunset",
		Price: 250,
	}, &ArtworkUpload{
		FileName:    "sunset.png",
		ContentType: "image/png",
		Size:        6 * 1024 * 1024,
		Reader:      strings.NewReader("too big"),
	})
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestAddArtworkRejectsNonImage(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "Bob", models.UserRoleArtist)
	createTestShop(t, db, owner, true)
	svc := newShopServiceForTest(t, db)

	_, err := svc.AddArtwork(owner.ID, &dto.AddArtworkRequest{
		Title: "Sunset",
		Price: 250,
	}, &ArtworkUpload{
		FileName:    "sunset.pdf",
		ContentType: "application/pdf",
		Size:        64,
		Reader:      strings.NewReader("%PDF"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestDeleteArtworkOfForeignShopIs404(t *testing.T) {
	db := newTestDB(t)
	bob := createTestUser(t, db, "Bob", models.UserRoleArtist)
	carol := createTestUser(t, db, "Carol", models.UserRoleArtist)
	createTestShop(t, db, bob, true)
	carolShop := createTestShop(t, db, carol, true)

	artwork := &models.Artwork{ShopID: carolShop.ID, Title: "Sunset", Price: 250}
	require.NoError(t, db.Create(artwork).Error)
	svc := newShopServiceForTest(t, db)

	err := svc.DeleteArtwork(bob.ID, artwork.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)

	var count int64
	require.NoError(t, db.Model(&models.Artwork{}).Where("id = ?", artwork.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestArtistDashboardCollectsShopArtworksOrders(t *testing.T) {
	db := newTestDB(t)
	customer := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	artist := createTestUser(t, db, "Bob", models.UserRoleArtist)
	shop := createTestShop(t, db, artist, true)
	require.NoError(t, db.Create(&models.Artwork{ShopID: shop.ID, Title: "Sunset", Price: 250}).Error)
	require.NoError(t, db.Create(&models.Order{
		CustomerID: customer.ID,
		ArtistID:   artist.ID,
		Detail:     "A portrait of my cat in watercolor",
		Price:      500,
		Status:     models.OrderStatusWaiting,
	}).Error)
	svc := newShopServiceForTest(t, db)

	dashboard, err := svc.Dashboard(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.ID, dashboard.Shop.ID)
	assert.Len(t, dashboard.Artworks, 1)
	require.Len(t, dashboard.Orders, 1)
	assert.Equal(t, "Alice", dashboard.Orders[0].CustomerName)
}
