package router

import (
	"net/http"

	"influencerMDP/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupInfluencerRoutes(api *echo.Group, handler *rest.InfluencerHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	influencers := api.Group("/influencers")

	influencers.GET("", handler.GetAllInfluencers)
	influencers.POST("", handler.CreateInfluencer, authRequired, adminOnly)
}

func SetupSelectionRoutes(api *echo.Group, handler *rest.SelectionHandler) {
	selections := api.Group("/selections")

	selections.POST("", handler.Plan)
	selections.POST("/compare", handler.Compare)
	selections.GET("", handler.ListRuns)
	selections.GET("/:id", handler.GetRun)
}

func SetupMDPAdminRoutes(api *echo.Group, handler *rest.MDPAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/mdp", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
}
