package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinebook/booking-api/api"
	appvalidator "github.com/cinebook/booking-api/internal/validator"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status and error code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, code api.ErrorCode, message string) {
	resp := api.ErrorResponse{
		Code:      code,
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// serverErrorResponse keeps the underlying message in the envelope so that
// clients can report it back.
func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, api.INTERNALSERVERERROR, err.Error())
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, api.NOTFOUND, message)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("The %s method is not supported for this resource", r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, api.METHODNOTALLOWED, message)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, api.BADREQUEST, err.Error())
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, api.CONFLICT, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	message := "You must be authenticated to access this resource"
	app.errorResponse(w, r, http.StatusUnauthorized, api.UNAUTHORIZED, message)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, api.UNAUTHORIZED, "Invalid email or password")
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, api.FORBIDDEN, "You don't have permission to access this resource")
}

func (app *Application) paymentDeclinedResponse(w http.ResponseWriter, r *http.Request) {
	message := "The payment was declined, no booking has been made"
	app.errorResponse(w, r, http.StatusPaymentRequired, api.PAYMENTREQUIRED, message)
}

func (app *Application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "Rate limit exceeded, please retry later"
	app.errorResponse(w, r, http.StatusTooManyRequests, api.TOOMANYREQUESTS, message)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	details := make([]api.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	app.validationErrorResponse(w, r, details)
}

// fieldValidationResponse reports a rule that struct tags cannot express.
func (app *Application) fieldValidationResponse(w http.ResponseWriter, r *http.Request, field, issue string) {
	app.validationErrorResponse(w, r, []api.ValidationError{{Field: field, Issue: issue}})
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, details []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Code:             api.UNPROCESSABLECONTENT,
		Message:          "One or more fields failed validation",
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: details,
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
