package controllers

import (
	"context"
	"net/http"

	"github.com/propwise/manager-api/internal/app"
	"github.com/propwise/manager-api/internal/dtos"
	"github.com/propwise/manager-api/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{
		app: app,
	}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("Database unreachable")
		utils.RespondFail(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
