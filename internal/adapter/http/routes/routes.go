package routes

import (
	"log"
	"os"
	"strconv"

	_ "seguimiento_actividades/docs" // swag-generated
	"seguimiento_actividades/internal/adapter/http/handlers"
	"seguimiento_actividades/internal/adapter/http/middleware"
	"seguimiento_actividades/internal/adapter/persistence/repository"
	"seguimiento_actividades/internal/infrastructure/database"
	"seguimiento_actividades/internal/infrastructure/token"
	"seguimiento_actividades/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	activityRepo := repository.NewActivityDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "infra-secret-key"
		log.Printf("[auth] JWT_SECRET not set, using default secret")
	}
	tokens := token.NewJWTTokenService(secret)

	activityUseCase := usecase.NewActivityUseCase(activityRepo, catalogRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)

	activityHandler := handlers.NewActivityHandler(activityUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addActivityRoutes(v1, middleware.RequireAuth(tokens), activityHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// The frontend is served from another origin; allow all origins but keep
	// the Authorization header explicit.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))
}
