package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lukec3x/sgt-d3/docs" // This will be auto-generated
	"github.com/lukec3x/sgt-d3/internal/adapter/http/handlers"
	"github.com/lukec3x/sgt-d3/internal/adapter/persistence/repository"
	"github.com/lukec3x/sgt-d3/internal/infrastructure/database"
	"github.com/lukec3x/sgt-d3/internal/usecase"
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
	ddb := database.ConnectDynamoDB()

	policyRepo := repository.NewPolicyDynamoRepository(ddb)
	endorsementRepo := repository.NewEndorsementDynamoRepository(ddb)

	policyUseCase := usecase.NewPolicyUseCase(policyRepo)
	endorsementUseCase := usecase.NewEndorsementUseCase(endorsementRepo, policyRepo)

	policyHandler := handlers.NewPolicyHandler(policyUseCase, endorsementUseCase)
	endorsementHandler := handlers.NewEndorsementHandler(endorsementUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInsuranceRoutes(v1, policyHandler, endorsementHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
