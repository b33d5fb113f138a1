package main

import (
	_ "seguimiento_actividades/docs"
	"seguimiento_actividades/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Seguimiento de Actividades API
// @version         1.0
// @description     Activity tracking for infrastructure leads (catalog-driven due dates, role-based visibility) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
