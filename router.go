package main

import (
	"minisheet/contracts"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/cell/:cell_id/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.POST("/cell/:cell_id", controller.SetCellAction)
	apiRouterGroup.GET("/cell/:cell_id", controller.GetCellAction)
	apiRouterGroup.DELETE("/cell/:cell_id", controller.ClearCellAction)

	apiRouterGroup.GET("/grid", controller.GetGridAction)
	apiRouterGroup.GET("/stream", controller.StreamAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
