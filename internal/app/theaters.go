package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
)

func (app *Application) TheaterGetAll(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Theater, len(theaters))
	for i := range theaters {
		resp[i] = toApiTheater(&theaters[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) TheaterGetById(w http.ResponseWriter, r *http.Request, id string) {
	theater, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTheater(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) TheaterCreate(w http.ResponseWriter, r *http.Request) {
	var input api.TheaterCreateJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	theater := domain.Theater{
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.theaterRepo.Create(r.Context(), &theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiTheater(&theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) TheaterUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var input api.TheaterUpdateJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	theater := domain.Theater{
		ID:       id,
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.theaterRepo.Update(r.Context(), &theater)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiTheater(&theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) TheaterDelete(w http.ResponseWriter, r *http.Request, id string) {
	err := app.theaterRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("theater deleted", "theater_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func toApiTheater(theater *domain.Theater) api.Theater {
	if theater == nil {
		return api.Theater{}
	}

	resp := api.Theater{
		Id:        theater.ID,
		Name:      theater.Name,
		Location:  theater.Location,
		CreatedAt: theater.CreatedAt,
	}

	if theater.Screens != nil {
		screens := make([]api.Screen, len(theater.Screens))
		for i := range theater.Screens {
			screens[i] = toApiScreen(&theater.Screens[i])
		}

		resp.Screens = &screens
	}

	return resp
}
