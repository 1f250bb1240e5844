package app

import (
	"net/http"

	"github.com/cinebook/booking-api/api"
)

func (app *Application) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "UP"

	if app.db != nil {
		if err := app.db.Ping(r.Context()); err != nil {
			app.contextGetLogger(r).Error("database ping failed", "error", err)
			status = "DEGRADED"
		}
	}

	systemInfo := api.SystemInfo{
		Version:     version,
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// OpenapiDocument serves the embedded API description.
func (app *Application) OpenapiDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, doc, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
