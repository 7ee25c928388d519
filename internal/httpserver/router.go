package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"dollshop-backend/internal/service/auth"
	"dollshop-backend/internal/service/cart"
	"dollshop-backend/internal/service/catalog"
	"dollshop-backend/internal/service/companion"
	"dollshop-backend/internal/service/forum"
	"dollshop-backend/internal/service/order"
	"dollshop-backend/internal/service/user"
)

// Deps bundles the services the router dispatches to.
type Deps struct {
	Auth      *auth.Service
	Users     *user.Service
	Carts     *cart.Service
	Orders    *order.Service
	Catalog   *catalog.Service
	Forum     *forum.Service
	Companion *companion.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	authed := router.Group("/", requireAuth(deps.Auth))

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/local/signup", signupHandler(deps.Auth))
		authGroup.POST("/local/signin", signinHandler(deps.Auth))
		authGroup.POST("/refresh", refreshHandler(deps.Auth))
	}
	authed.POST("/auth/logout", logoutHandler(deps.Auth))

	userGroup := authed.Group("/user")
	{
		userGroup.GET("", listUsersHandler(deps.Users))
		userGroup.GET("/me", currentUserHandler(deps.Users))
		userGroup.GET("/email/:email", userByEmailHandler(deps.Users))
		userGroup.PATCH("", updateUserHandler(deps.Users))
		userGroup.DELETE("", deleteUserHandler(deps.Users))
	}

	cartGroup := authed.Group("/cart")
	{
		cartGroup.GET("/findOne/:id", findCartHandler(deps.Carts))
		cartGroup.GET("/findCartId/:id", findCartIDHandler(deps.Carts))
		cartGroup.GET("/findAllProducts/:id", findCartProductsHandler(deps.Carts))
		cartGroup.POST("/addProduct", addProductHandler(deps.Carts))
		cartGroup.POST("/addProductWithOption", addProductWithOptionHandler(deps.Carts))
		cartGroup.PATCH("/updateProductWithOption/:id", updateProductWithOptionHandler(deps.Carts))
		cartGroup.PATCH("/updateAddedProduct/:id", updateAddedProductHandler(deps.Carts))
		cartGroup.DELETE("/deleteAddedProduct", deleteAddedProductHandler(deps.Carts))
	}

	orderGroup := authed.Group("/order")
	{
		orderGroup.POST("", createOrderHandler(deps.Orders))
		orderGroup.GET("", listAllOrdersHandler(deps.Orders))
		orderGroup.GET("/my", listMyOrdersHandler(deps.Orders))
		orderGroup.GET("/:id", getOrderHandler(deps.Orders))
		orderGroup.PATCH("/:id", updateOrderHandler(deps.Orders))
		orderGroup.DELETE("/:id", deleteOrderHandler(deps.Orders))
	}

	productGroup := router.Group("/product")
	{
		productGroup.GET("", listProductsHandler(deps.Catalog))
		productGroup.GET("/:id", getProductHandler(deps.Catalog))
	}
	productAdmin := authed.Group("/product")
	{
		productAdmin.POST("", createProductHandler(deps.Catalog))
		productAdmin.PATCH("/:id", updateProductHandler(deps.Catalog))
		productAdmin.DELETE("/:id", deleteProductHandler(deps.Catalog))
	}

	clothesGroup := router.Group("/clothes")
	{
		clothesGroup.GET("/product/:id", listClothesHandler(deps.Catalog))
		clothesGroup.GET("/:id", getClothesHandler(deps.Catalog))
	}
	clothesAdmin := authed.Group("/clothes")
	{
		clothesAdmin.POST("", createClothesHandler(deps.Catalog))
		clothesAdmin.PATCH("/:id", updateClothesHandler(deps.Catalog))
		clothesAdmin.DELETE("/:id", deleteClothesHandler(deps.Catalog))
	}

	modelGroup := router.Group("/models")
	{
		modelGroup.GET("/product/:id", listModelsHandler(deps.Catalog))
		modelGroup.GET("/:id", getModelHandler(deps.Catalog))
	}
	modelAdmin := authed.Group("/models")
	{
		modelAdmin.POST("", createModelHandler(deps.Catalog))
		modelAdmin.PATCH("/:id", updateModelHandler(deps.Catalog))
		modelAdmin.DELETE("/:id", deleteModelHandler(deps.Catalog))
	}

	postGroup := authed.Group("/post")
	{
		postGroup.POST("", writePostHandler(deps.Forum))
		postGroup.GET("/board/:boardId", listPostsHandler(deps.Forum))
		postGroup.GET("/board/:boardId/page", pagePostsHandler(deps.Forum))
		postGroup.GET("/:id", viewPostHandler(deps.Forum))
		postGroup.PATCH("/:id", updatePostHandler(deps.Forum))
		postGroup.DELETE("/:id", deletePostHandler(deps.Forum))
	}

	commentGroup := authed.Group("/comment")
	{
		commentGroup.POST("", writeCommentHandler(deps.Forum))
		commentGroup.GET("/post/:postId", listCommentsHandler(deps.Forum))
		commentGroup.GET("/:id", getCommentHandler(deps.Forum))
		commentGroup.PATCH("/:id", updateCommentHandler(deps.Forum))
		commentGroup.DELETE("/:id", deleteCommentHandler(deps.Forum))
	}

	deviceGroup := authed.Group("/device")
	{
		deviceGroup.POST("", registerDeviceHandler(deps.Companion))
		deviceGroup.GET("", listDevicesHandler(deps.Companion))
		deviceGroup.GET("/my", listMyDevicesHandler(deps.Companion))
		deviceGroup.GET("/mac/:mac", deviceByMACHandler(deps.Companion))
		deviceGroup.GET("/:id", getDeviceHandler(deps.Companion))
		deviceGroup.POST("/sync", syncDeviceHandler(deps.Companion))
		deviceGroup.POST("/unsync/:id", unsyncDeviceHandler(deps.Companion))
		deviceGroup.PATCH("/:id", updateDeviceHandler(deps.Companion))
		deviceGroup.DELETE("/:id", deleteDeviceHandler(deps.Companion))
	}

	alarmGroup := authed.Group("/alarm")
	{
		alarmGroup.POST("", createAlarmHandler(deps.Companion))
		alarmGroup.GET("", listAlarmsHandler(deps.Companion))
		alarmGroup.GET("/:id", getAlarmHandler(deps.Companion))
		alarmGroup.PATCH("/:id", updateAlarmHandler(deps.Companion))
		alarmGroup.DELETE("/:id", deleteAlarmHandler(deps.Companion))
	}

	musicGroup := authed.Group("/music")
	{
		musicGroup.POST("", createMusicHandler(deps.Companion))
		musicGroup.GET("", listMusicHandler(deps.Companion))
		musicGroup.GET("/:id", getMusicHandler(deps.Companion))
		musicGroup.PATCH("/:id", updateMusicHandler(deps.Companion))
		musicGroup.DELETE("/:id", deleteMusicHandler(deps.Companion))
	}

	calendarGroup := authed.Group("/calendar")
	{
		calendarGroup.POST("", createEventHandler(deps.Companion))
		calendarGroup.GET("", listEventsHandler(deps.Companion))
		calendarGroup.GET("/search", searchEventsHandler(deps.Companion))
		calendarGroup.GET("/:id", getEventHandler(deps.Companion))
		calendarGroup.PATCH("/:id", updateEventHandler(deps.Companion))
		calendarGroup.DELETE("/:id", deleteEventHandler(deps.Companion))
	}

	return router
}
