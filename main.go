package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"storesetup-backend/controller"
	"storesetup-backend/dao"
	"storesetup-backend/model"
	"storesetup-backend/pkg/assistant"
	"storesetup-backend/pkg/imaging"
	"storesetup-backend/pkg/platform"
	"storesetup-backend/usecase"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// 1. DB Connection
	user := envOr("MYSQL_USER", "user")
	pwd := envOr("MYSQL_PWD", "password")
	host := envOr("MYSQL_HOST", "tcp(127.0.0.1:3306)")
	dbName := envOr("MYSQL_DATABASE", "storesetup_db")

	dsn := fmt.Sprintf("%s:%s@%s/%s?parseTime=true&loc=Local", user, pwd, host, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	fmt.Println("Connected to Database!")

	// 2. External services
	ctx := context.Background()
	gateway, err := assistant.NewClient(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Fatal("Failed to init assistant client:", err)
	}

	uploader, err := imaging.NewUploader(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		log.Fatal("Failed to init Cloudinary uploader:", err)
	}

	apiBaseURL := envOr("PLATFORM_BASE_URL", "https://api.salla.dev/admin/v2")
	platformName := envOr("PLATFORM_NAME", "salla")
	oauthConfig := platform.OAuthConfig{
		AuthorizeURL: envOr("PLATFORM_AUTHORIZE_URL", "https://accounts.salla.sa/oauth2/auth"),
		TokenURL:     envOr("PLATFORM_TOKEN_URL", "https://accounts.salla.sa/oauth2/token"),
		ClientID:     os.Getenv("PLATFORM_CLIENT_ID"),
		ClientSecret: os.Getenv("PLATFORM_CLIENT_SECRET"),
		RedirectURI:  envOr("PLATFORM_REDIRECT_URI", "http://localhost:8080/oauth/callback"),
		Scopes:       []string{"offline_access", "products.read_write", "categories.read_write", "settings.read"},
	}

	catalogFor := func(store *model.ConnectedStore) usecase.CatalogClient {
		return platform.NewClient(platform.Config{
			BaseURL:     apiBaseURL,
			AccessToken: store.AccessToken,
		})
	}

	// 3. Dependency Injection
	merchantRepo := dao.NewMerchantRepository(db)
	storeRepo := dao.NewStoreRepository(db)
	sessionRepo := dao.NewSessionRepository(db)
	messageRepo := dao.NewMessageRepository(db)
	catalogRepo := dao.NewCatalogRepository(db)

	sessionUsecase := usecase.NewSessionUsecase(sessionRepo, storeRepo, catalogRepo)
	chatUsecase := usecase.NewChatUsecase(sessionRepo, storeRepo, merchantRepo, messageRepo, gateway, catalogFor)
	categoryUsecase := usecase.NewCategoryUsecase(sessionRepo, storeRepo, catalogRepo, catalogFor)
	productUsecase := usecase.NewProductUsecase(sessionRepo, storeRepo, catalogRepo, catalogFor)
	brandingUsecase := usecase.NewBrandingUsecase(sessionRepo, storeRepo, catalogRepo, uploader)
	oauthUsecase := usecase.NewOAuthUsecase(merchantRepo, storeRepo, oauthConfig, platformName, apiBaseURL)

	chatController := controller.NewChatController(chatUsecase)
	setupController := controller.NewSetupController(sessionUsecase)
	categoryController := controller.NewCategoryController(categoryUsecase)
	productController := controller.NewProductController(productUsecase)
	brandingController := controller.NewBrandingController(brandingUsecase)
	oauthController := controller.NewOAuthController(oauthUsecase)

	// 4. Routing
	http.HandleFunc("/chat", chatController.HandleChat)
	http.HandleFunc("/messages", chatController.HandleMessages)
	http.HandleFunc("/setup/session", setupController.HandleSession)
	http.HandleFunc("/categories/confirm", categoryController.HandleConfirm)
	http.HandleFunc("/products/confirm", productController.HandleConfirm)
	http.HandleFunc("/products/bulk-confirm", productController.HandleBulkConfirm)
	http.HandleFunc("/themes/confirm", brandingController.HandleThemeConfirm)
	http.HandleFunc("/logo/confirm", brandingController.HandleLogoConfirm)
	http.HandleFunc("/landing/confirm", brandingController.HandleLandingConfirm)
	http.HandleFunc("/coupons/confirm", brandingController.HandleCouponConfirm)
	http.HandleFunc("/oauth/authorize", oauthController.HandleAuthorize)
	http.HandleFunc("/oauth/callback", oauthController.HandleCallback)

	// 5. Start Server
	port := envOr("PORT", "8080")
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
