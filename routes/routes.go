package routes

import (
	"net/http"

	"auction-house/controllers"
	"auction-house/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers bundles the handlers wired into the route table.
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Product *controllers.ProductController
	Bid     *controllers.BidController
}

// SetupRoutes registers every route. Handlers arrive as parameters; the
// route table holds no state of its own.
func SetupRoutes(router *gin.Engine, ctrls Controllers, jwtSecret string) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/api/auth/register", ctrls.Auth.Register)
	router.POST("/api/auth/login", ctrls.Auth.Login)

	// Public reads
	router.GET("/api/products", ctrls.Product.GetAllProducts)
	router.GET("/api/products/:productId", ctrls.Product.GetProduct)
	router.GET("/api/users/:userId", ctrls.User.GetUser)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(jwtSecret))
	{
		auth.GET("/api/auth/whoami", ctrls.Auth.WhoAmI)

		auth.POST("/api/products", ctrls.Product.CreateProduct)
		auth.PUT("/api/products/:productId", ctrls.Product.UpdateProduct)
		auth.DELETE("/api/products/:productId", ctrls.Product.DeleteProduct)

		auth.POST("/api/products/:productId/bids", ctrls.Bid.PlaceBid)
		auth.DELETE("/api/bids/:bidId", ctrls.Bid.DeleteBid)
	}
}
