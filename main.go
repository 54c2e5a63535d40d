package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"globalbazaar/internal/handlers"
	"globalbazaar/internal/middleware"
	"globalbazaar/internal/models"
	"globalbazaar/internal/repositories"
	"globalbazaar/internal/services"
	"globalbazaar/pkg/rabbitmq"
)

// stores groups the repository set the services are wired with, either
// GORM-backed or in-memory depending on configuration.
type stores struct {
	products repositories.ProductRepository
	orders   repositories.OrderRepository
	users    repositories.UserRepository
	catalog  repositories.CatalogRepository
}

func main() {
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("CORS_ORIGINS", "https://windy-cast.surge.sh,http://localhost:5173,https://storied-bavarois-820863.netlify.app")
	viper.AutomaticEnv()

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	st, err := openStores(viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Optional broker: order.created events are best effort and the server
	// runs without a broker when no URL is configured.
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	productService := services.NewProductService(st.products)
	authService := services.NewAuthService(st.users, jwtSecret)
	catalogService := services.NewCatalogService(st.catalog)

	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	orderService := services.NewOrderService(st.orders, st.products, publisher)

	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetString("CORS_ORIGINS"),
		AllowCredentials: true,
	}))

	auth := middleware.AuthRequired(authService)

	authHandler.RegisterRoutes(app)
	catalogHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app, auth)
	orderHandler.RegisterRoutes(app, auth)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("GlobalBazaar Server is running!")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}()
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openStores connects to postgres when a DSN is configured and falls back
// to the in-memory repositories otherwise, which keeps local development
// working without a database.
func openStores(dsn string) (stores, error) {
	if dsn == "" {
		log.Println("DATABASE_DSN not set, using in-memory storage")
		catalog := repositories.NewMemoryCatalogRepository()
		seedCatalog(catalog)
		return stores{
			products: repositories.NewMemoryProductRepository(),
			orders:   repositories.NewMemoryOrderRepository(),
			users:    repositories.NewMemoryUserRepository(),
			catalog:  catalog,
		}, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return stores{}, err
	}
	err = db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.Category{},
		&models.Slide{},
		&models.User{},
	)
	if err != nil {
		return stores{}, err
	}

	return stores{
		products: repositories.NewGORMProductRepository(db),
		orders:   repositories.NewGORMOrderRepository(db),
		users:    repositories.NewGORMUserRepository(db),
		catalog:  repositories.NewGORMCatalogRepository(db),
	}, nil
}

// seedCatalog gives the in-memory catalog something to list.
func seedCatalog(catalog *repositories.MemoryCatalogRepository) {
	catalog.Seed(
		[]models.Category{
			{ID: "cat-electronics", Name: "Electronics"},
			{ID: "cat-fashion", Name: "Fashion"},
			{ID: "cat-home", Name: "Home & Garden"},
			{ID: "cat-beauty", Name: "Beauty"},
		},
		[]models.Slide{
			{ID: "slide-1", Title: "Season sale"},
			{ID: "slide-2", Title: "New arrivals"},
		},
	)
}
