package main

import (
	_ "github.com/lukec3x/sgt-d3/docs"
	"github.com/lukec3x/sgt-d3/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SGT Policy Service API
// @version         1.0
// @description     Insurance policy and endorsement tracking service backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
