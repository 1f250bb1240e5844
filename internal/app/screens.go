package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
)

func (app *Application) ScreenGetById(w http.ResponseWriter, r *http.Request, id string) {
	screen, err := app.screenRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiScreen(screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ScreenGetByTheaterId(w http.ResponseWriter, r *http.Request, id string) {
	screens, err := app.screenRepo.GetByTheaterId(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Screen, len(screens))
	for i := range screens {
		resp[i] = toApiScreen(&screens[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ScreenCreate creates the screen and its rows x columns seat grid.
func (app *Application) ScreenCreate(w http.ResponseWriter, r *http.Request) {
	var input api.CreateScreenRequest

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

	screen := domain.Screen{
		TheaterID: input.TheaterId,
		Name:      input.Name,
		Rows:      input.Rows,
		Columns:   input.Columns,
	}

	err = app.screenRepo.CreateWithSeats(r.Context(), &screen)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("screen created", "screen_id", screen.ID, "seats", len(screen.Seats))

	err = app.writeJSON(w, http.StatusCreated, toApiScreen(&screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ScreenUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var input api.UpdateScreenRequest

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

	screen := domain.Screen{
		ID:   id,
		Name: input.Name,
	}

	err = app.screenRepo.Update(r.Context(), &screen)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiScreen(&screen), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ScreenDelete(w http.ResponseWriter, r *http.Request, id string) {
	err := app.screenRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiScreen(screen *domain.Screen) api.Screen {
	if screen == nil {
		return api.Screen{}
	}

	resp := api.Screen{
		Id:        screen.ID,
		TheaterId: screen.TheaterID,
		Name:      screen.Name,
		Rows:      screen.Rows,
		Columns:   screen.Columns,
		CreatedAt: screen.CreatedAt,
	}

	if screen.Theater != nil {
		theater := toApiTheater(screen.Theater)
		resp.Theater = &theater
	}

	if screen.Seats != nil {
		seats := toApiSeats(screen.Seats)
		resp.Seats = &seats
	}

	return resp
}
