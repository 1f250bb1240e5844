package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
)

// PaymentCreate records a payment as reported by the client. Charging a card
// only happens through Checkout.
func (app *Application) PaymentCreate(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePaymentRequest

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

	if !canAccessUser(contextGetSession(r), input.UserId) {
		app.forbiddenResponse(w, r)
		return
	}

	payment := domain.Payment{
		UserID:        input.UserId,
		Amount:        input.Amount,
		Status:        domain.PaymentStatus(input.Status),
		PaymentMethod: input.PaymentMethod,
	}

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiPayment(&payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PaymentGetById(w http.ResponseWriter, r *http.Request, id string) {
	payment, err := app.paymentRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if !canAccessUser(contextGetSession(r), payment.UserID) {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiPayment(payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PaymentGetByUserId(w http.ResponseWriter, r *http.Request, id string) {
	if !canAccessUser(contextGetSession(r), id) {
		app.forbiddenResponse(w, r)
		return
	}

	payments, err := app.paymentRepo.GetByUserId(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Payment, len(payments))
	for i := range payments {
		resp[i] = toApiPayment(&payments[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PaymentUpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	var input api.UpdatePaymentStatusRequest

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

	payment, err := app.paymentRepo.UpdateStatus(r.Context(), id, domain.PaymentStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("payment status updated", "payment_id", id, "status", payment.Status)

	err = app.writeJSON(w, http.StatusOK, toApiPayment(payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiPayment(payment *domain.Payment) api.Payment {
	if payment == nil {
		return api.Payment{}
	}

	return api.Payment{
		Id:            payment.ID,
		UserId:        payment.UserID,
		Amount:        payment.Amount,
		Status:        api.PaymentStatus(payment.Status),
		PaymentMethod: payment.PaymentMethod,
		ProviderRef:   payment.ProviderRef,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}
