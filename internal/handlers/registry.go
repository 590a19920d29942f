package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	OrderHandler  *OrderHandler
	ArtistHandler *ArtistHandler
	AdminHandler  *AdminHandler
}
