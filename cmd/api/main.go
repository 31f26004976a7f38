package main

import (
	"fieldops/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Field Ops API
// @version         1.0
// @description     Multi-tenant field service jobs, estimates, invoices and payments.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
