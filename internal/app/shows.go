package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
)

// ShowGetAll lists upcoming shows with their movie, theater and screen.
func (app *Application) ShowGetAll(w http.ResponseWriter, r *http.Request) {
	shows, err := app.showRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeShows(w, r, shows)
}

func (app *Application) ShowGetFiltered(w http.ResponseWriter, r *http.Request, params api.ShowGetFilteredParams) {
	var filters domain.ShowFilters

	if params.MovieId != nil {
		filters.MovieID = *params.MovieId
	}
	if params.TheaterId != nil {
		filters.TheaterID = *params.TheaterId
	}
	filters.Date = fromApiDate(params.Date)

	shows, err := app.showRepo.GetFiltered(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeShows(w, r, shows)
}

func (app *Application) ShowGetAllForAdmin(w http.ResponseWriter, r *http.Request) {
	shows, err := app.showRepo.GetAllForAdmin(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeShows(w, r, shows)
}

func (app *Application) ShowGetById(w http.ResponseWriter, r *http.Request, id string) {
	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShow(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ShowCreate(w http.ResponseWriter, r *http.Request) {
	var input api.ShowCreateJSONRequestBody

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

	show := toDomainShow(input)

	err = app.showRepo.CreateChecked(r.Context(), &show)
	if err != nil {
		app.showWriteErrorResponse(w, r, &show, err)
		return
	}

	app.contextGetLogger(r).Info("show created", "show_id", show.ID, "screen_id", show.ScreenID)

	err = app.writeJSON(w, http.StatusCreated, toApiShow(&show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ShowUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var input api.ShowUpdateJSONRequestBody

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

	show := toDomainShow(input)
	show.ID = id

	err = app.showRepo.UpdateChecked(r.Context(), &show)
	if err != nil {
		app.showWriteErrorResponse(w, r, &show, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShow(&show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ShowDelete(w http.ResponseWriter, r *http.Request, id string) {
	err := app.showRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("show deleted", "show_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) showWriteErrorResponse(w http.ResponseWriter, r *http.Request, show *domain.Show, err error) {
	switch {
	case errors.Is(err, domain.ErrShowConflict):
		app.metrics.recordShowConflict(r.Context(), show.ScreenID)
		app.conflictResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeShows(w http.ResponseWriter, r *http.Request, shows []domain.Show) {
	resp := make([]api.Show, len(shows))
	for i := range shows {
		resp[i] = toApiShow(&shows[i])
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainShow(input api.ShowRequest) domain.Show {
	return domain.Show{
		MovieID:   input.MovieId,
		TheaterID: input.TheaterId,
		ScreenID:  input.ScreenId,
		StartTime: input.StartTime.UTC(),
		Price:     input.Price,
	}
}

func toApiShow(show *domain.Show) api.Show {
	if show == nil {
		return api.Show{}
	}

	bookingCount := show.BookingCount

	resp := api.Show{
		Id:           show.ID,
		MovieId:      show.MovieID,
		TheaterId:    show.TheaterID,
		ScreenId:     show.ScreenID,
		StartTime:    show.StartTime,
		Price:        show.Price,
		CreatedAt:    show.CreatedAt,
		BookingCount: &bookingCount,
	}

	if show.Movie != nil {
		movie := toApiMovie(show.Movie)
		resp.Movie = &movie
	}

	if show.Theater != nil {
		theater := toApiTheater(show.Theater)
		resp.Theater = &theater
	}

	if show.Screen != nil {
		screen := toApiScreen(show.Screen)
		resp.Screen = &screen
	}

	return resp
}
