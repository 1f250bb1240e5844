package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) UserMe(w http.ResponseWriter, r *http.Request) {
	session := contextGetSession(r)

	user, err := app.userRepo.GetById(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.contextGetLogger(r).Error("user id in session but not found in DB")
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiUser(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UserGetById(w http.ResponseWriter, r *http.Request, id string) {
	if !canAccessUser(contextGetSession(r), id) {
		app.forbiddenResponse(w, r)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiUser(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UserGetAll(w http.ResponseWriter, r *http.Request) {
	users, err := app.userRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.User, len(users))
	for i := range users {
		resp[i] = toApiUser(&users[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UserCreate(w http.ResponseWriter, r *http.Request) {
	var input api.CreateUserRequest

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

	user := domain.User{
		Name:  input.Name,
		Email: strings.ToLower(string(input.Email)),
		Role:  domain.RoleUser,
	}

	if input.Role != nil {
		user.Role = domain.Role(*input.Role)
	}

	if input.Password != nil {
		err = user.Password.Set(*input.Password)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("user created", "created_user_id", user.ID, "role", user.Role)

	err = app.writeJSON(w, http.StatusCreated, toApiUser(&user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiUser(user *domain.User) api.User {
	if user == nil {
		return api.User{}
	}

	return api.User{
		Id:        user.ID,
		Name:      user.Name,
		Email:     types.Email(user.Email),
		Role:      api.Role(user.Role),
		Image:     user.Image,
		CreatedAt: user.CreatedAt,
	}
}
