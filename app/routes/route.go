package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/gostore/admin/app/handlers"
	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/middlewares"
	"github.com/gostore/admin/app/repositories"
	"github.com/gostore/admin/app/services"
	"github.com/gostore/admin/app/utils/renderer"
	"github.com/gostore/admin/app/utils/sessions"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// Deps carries the optional infrastructure next to the required DB
// and session store. Nil Redis, Cloudinary or Snap clients disable
// the matching feature without disabling the API.
type Deps struct {
	DB           *gorm.DB
	SessionStore sessions.SessionStore
	RedisClient  *redis.Client
	Cloudinary   *cloudinary.Cloudinary
	SnapClient   *snap.Client
}

func NewRouter(deps Deps) *mux.Router {
	rnd := renderer.New()
	validate := helpers.NewValidator()

	userRepo := repositories.NewUserRepository(deps.DB)
	storeRepo := repositories.NewStoreRepository(deps.DB)
	billboardRepo := repositories.NewBillboardRepository(deps.DB)
	categoryRepo := repositories.NewCategoryRepository(deps.DB)
	sizeRepo := repositories.NewSizeRepository(deps.DB)
	colorRepo := repositories.NewColorRepository(deps.DB)
	productRepo := repositories.NewProductRepository(deps.DB)
	orderRepo := repositories.NewOrderRepository(deps.DB)

	authorizer := services.NewAuthorizer(storeRepo)
	productCache := services.NewProductCache(deps.RedisClient)
	uploader := services.NewImageUploader(deps.Cloudinary)
	checkoutSvc := services.NewCheckoutService(productRepo, orderRepo, deps.SnapClient)
	dashboardSvc := services.NewDashboardService(orderRepo, productRepo)

	authHandler := handlers.NewAuthHandler(rnd, validate, userRepo, deps.SessionStore)
	storeHandler := handlers.NewStoreHandler(rnd, validate, storeRepo, billboardRepo, productRepo, orderRepo, authorizer)
	billboardHandler := handlers.NewBillboardHandler(rnd, validate, billboardRepo, categoryRepo, authorizer)
	categoryHandler := handlers.NewCategoryHandler(rnd, validate, categoryRepo, productRepo, authorizer)
	sizeHandler := handlers.NewSizeHandler(rnd, validate, sizeRepo, productRepo, authorizer)
	colorHandler := handlers.NewColorHandler(rnd, validate, colorRepo, productRepo, authorizer)
	productHandler := handlers.NewProductHandler(rnd, validate, productRepo, authorizer, productCache)
	orderHandler := handlers.NewOrderHandler(rnd, orderRepo, dashboardSvc, authorizer)
	checkoutHandler := handlers.NewCheckoutHandler(rnd, validate, checkoutSvc)
	uploadHandler := handlers.NewUploadHandler(rnd, uploader, authorizer)

	router := mux.NewRouter()
	router.Use(middlewares.SessionAuthMiddleware(deps.SessionStore))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// Fixed prefixes register before the {storeId} wildcard so mux
	// never swallows them as store IDs.
	api.HandleFunc("/stores", storeHandler.Create).Methods("POST")
	api.HandleFunc("/stores", storeHandler.List).Methods("GET")
	api.HandleFunc("/stores/{storeId}", storeHandler.Update).Methods("PATCH")
	api.HandleFunc("/stores/{storeId}", storeHandler.Delete).Methods("DELETE")

	api.HandleFunc("/midtrans/notification", checkoutHandler.Notification).Methods("POST")

	api.HandleFunc("/{storeId}/billboards", billboardHandler.Create).Methods("POST")
	api.HandleFunc("/{storeId}/billboards", billboardHandler.List).Methods("GET")
	api.HandleFunc("/{storeId}/billboards/{billboardId}", billboardHandler.Get).Methods("GET")
	api.HandleFunc("/{storeId}/billboards/{billboardId}", billboardHandler.Update).Methods("PATCH")
	api.HandleFunc("/{storeId}/billboards/{billboardId}", billboardHandler.Delete).Methods("DELETE")

	api.HandleFunc("/{storeId}/categories", categoryHandler.Create).Methods("POST")
	api.HandleFunc("/{storeId}/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/{storeId}/categories/{categoryId}", categoryHandler.Get).Methods("GET")
	api.HandleFunc("/{storeId}/categories/{categoryId}", categoryHandler.Update).Methods("PATCH")
	api.HandleFunc("/{storeId}/categories/{categoryId}", categoryHandler.Delete).Methods("DELETE")

	api.HandleFunc("/{storeId}/sizes", sizeHandler.Create).Methods("POST")
	api.HandleFunc("/{storeId}/sizes", sizeHandler.List).Methods("GET")
	api.HandleFunc("/{storeId}/sizes/{sizeId}", sizeHandler.Get).Methods("GET")
	api.HandleFunc("/{storeId}/sizes/{sizeId}", sizeHandler.Update).Methods("PATCH")
	api.HandleFunc("/{storeId}/sizes/{sizeId}", sizeHandler.Delete).Methods("DELETE")

	api.HandleFunc("/{storeId}/colors", colorHandler.Create).Methods("POST")
	api.HandleFunc("/{storeId}/colors", colorHandler.List).Methods("GET")
	api.HandleFunc("/{storeId}/colors/{colorId}", colorHandler.Get).Methods("GET")
	api.HandleFunc("/{storeId}/colors/{colorId}", colorHandler.Update).Methods("PATCH")
	api.HandleFunc("/{storeId}/colors/{colorId}", colorHandler.Delete).Methods("DELETE")

	api.HandleFunc("/{storeId}/products", productHandler.Create).Methods("POST")
	api.HandleFunc("/{storeId}/products", productHandler.List).Methods("GET")
	api.HandleFunc("/{storeId}/products/{productId}", productHandler.Get).Methods("GET")
	api.HandleFunc("/{storeId}/products/{productId}", productHandler.Update).Methods("PATCH")
	api.HandleFunc("/{storeId}/products/{productId}", productHandler.Delete).Methods("DELETE")

	api.HandleFunc("/{storeId}/orders", orderHandler.List).Methods("GET")
	api.HandleFunc("/{storeId}/overview", orderHandler.Overview).Methods("GET")
	api.HandleFunc("/{storeId}/checkout", checkoutHandler.Checkout).Methods("POST")
	api.HandleFunc("/{storeId}/uploads", uploadHandler.Upload).Methods("POST")

	return router
}
