package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
)

func (app *Application) MovieGetAll(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Movie, len(movies))
	for i := range movies {
		resp[i] = toApiMovie(&movies[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) MovieGetById(w http.ResponseWriter, r *http.Request, id string) {
	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) MovieCreate(w http.ResponseWriter, r *http.Request) {
	var input api.MovieCreateJSONRequestBody

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

	movie := toDomainMovie(input)

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("movie created", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) MovieUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var input api.MovieUpdateJSONRequestBody

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

	movie := toDomainMovie(input)
	movie.ID = id

	err = app.movieRepo.Update(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) MovieDelete(w http.ResponseWriter, r *http.Request, id string) {
	err := app.movieRepo.Delete(r.Context(), id)
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

func toDomainMovie(input api.MovieRequest) domain.Movie {
	return domain.Movie{
		Title:       input.Title,
		Duration:    input.Duration,
		Description: input.Description,
		PosterUrl:   input.PosterUrl,
		ReleaseDate: fromApiDate(input.ReleaseDate),
	}
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:          movie.ID,
		Title:       movie.Title,
		Duration:    movie.Duration,
		Description: movie.Description,
		PosterUrl:   movie.PosterUrl,
		ReleaseDate: toApiDate(movie.ReleaseDate),
		CreatedAt:   movie.CreatedAt,
	}
}
