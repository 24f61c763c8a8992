package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "clinica_billing/docs" // This will be auto-generated
	"clinica_billing/internal/adapter/http/handlers"
	repository2 "clinica_billing/internal/adapter/persistence/repository"
	"clinica_billing/internal/infrastructure/database"
	"clinica_billing/internal/usecase"
	"clinica_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store := newPriceStore()

	pricingUseCase := usecase.NewPricingUseCase(store, pricingConfigFromEnv())
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, pricingHandler)
}

// newPriceStore picks the store backend. DynamoDB is the default;
// PRICE_STORE_BACKEND=postgres switches to the pgx repository.
func newPriceStore() interfaces.IPriceStore {
	switch backend := getenvDefault("PRICE_STORE_BACKEND", "dynamodb"); backend {
	case "postgres":
		ctx := context.Background()
		pool, err := database.ConnectPostgres(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		repo := repository2.NewPriceRecordPostgresRepository(pool)
		if err := repo.InitSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize postgres schema: %v", err)
		}
		return repo
	case "dynamodb":
		return repository2.NewPriceRecordDynamoRepository(database.ConnectDynamoDB())
	default:
		log.Fatalf("Unknown PRICE_STORE_BACKEND %q", backend)
		return nil
	}
}

func pricingConfigFromEnv() usecase.Config {
	return usecase.Config{
		CacheTTL:            time.Duration(getenvInt("PRICING_CACHE_TTL_SECONDS", 0)) * time.Second,
		BatchChunkSize:      getenvInt("PRICING_BATCH_CHUNK_SIZE", 0),
		SuggestionPrefixLen: getenvInt("PRICING_SUGGESTION_PREFIX_LEN", 0),
		SuggestionLimit:     getenvInt("PRICING_SUGGESTION_LIMIT", 0),
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt returns def when the variable is unset or not an integer; the
// usecase applies its own defaults on zero.
func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring non-integer %s=%q", key, v)
		return def
	}
	return n
}
