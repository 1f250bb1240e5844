package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
)

const (
	bookingConfirmationTemplate = "booking_confirmation.tmpl"
	refundTimeout               = 10 * time.Second
)

// BookingCreate stores the booking exactly as submitted. It is one step of the
// three-call flow (payment.create, booking.create, seat.updateBookingStatus)
// and does not check seat availability; Checkout does.
func (app *Application) BookingCreate(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	booking := domain.Booking{
		UserID:    input.UserId,
		ShowID:    input.ShowId,
		SeatID:    input.SeatId,
		PaymentID: input.PaymentId,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiBooking(&booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// BookingCheckout books a seat for the caller in one transaction: the seat lock, the
// charge, the payment, the booking and the seat flag either all happen or
// none do.
func (app *Application) BookingCheckout(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	session := contextGetSession(r)

	var input api.CheckoutRequest

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

	show, err := app.showRepo.GetById(r.Context(), input.ShowId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seat, err := app.seatRepo.GetById(r.Context(), input.SeatId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if seat.ScreenID != show.ScreenID {
		app.badRequestResponse(w, r, domain.ErrSeatNotOnScreen)
		return
	}

	holder, err := app.seatHoldOwner(r.Context(), show.ID, seat.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if holder != "" && holder != session.UserID {
		logger.Info("checkout rejected, seat held by another user", "show_id", show.ID, "seat_id", seat.ID)
		app.metrics.recordCheckout(r.Context(), checkoutSeatHeld)
		app.conflictResponse(w, r, domain.ErrSeatHeldByOther)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.unauthorizedAccessResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	checkout := domain.Checkout{
		UserID:        user.ID,
		ShowID:        show.ID,
		SeatID:        seat.ID,
		Amount:        show.Price,
		PaymentMethod: input.PaymentMethod,
	}

	var charged *domain.ChargeResult
	charge := func(ctx context.Context) (*domain.ChargeResult, error) {
		result, err := app.paymentProvider.Charge(ctx, domain.ChargeRequest{
			UserID:        user.ID,
			Email:         user.Email,
			Amount:        show.Price,
			Currency:      app.config.Stripe.Currency,
			PaymentMethod: input.PaymentMethod,
			Description:   showDescription(show),
		})
		charged = result

		return result, err
	}

	booking, err := app.bookingRepo.Checkout(r.Context(), checkout, charge)
	if err != nil {
		app.reverseCharge(r, charged)

		switch {
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			app.metrics.recordCheckout(r.Context(), checkoutSeatReserved)
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrPaymentDeclined):
			logger.Warn("payment declined", "show_id", show.ID, "seat_id", seat.ID)
			app.metrics.recordCheckout(r.Context(), checkoutDeclined)
			app.paymentDeclinedResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.metrics.recordCheckout(r.Context(), checkoutFailed)
			app.notFoundResponse(w, r)
		default:
			app.metrics.recordCheckout(r.Context(), checkoutFailed)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if holder != "" {
		if err := app.releaseSeatHold(r.Context(), show.ID, seat.ID, session.UserID); err != nil {
			logger.Error("failed to release seat hold", "error", err, "show_id", show.ID, "seat_id", seat.ID)
		}
	}

	app.metrics.recordCheckout(r.Context(), checkoutBooked)

	seat.IsBooked = true
	booking.Show = show
	booking.Seat = seat
	booking.User = user

	logger.Info("booking confirmed", "booking_id", booking.ID, "payment_id", booking.PaymentID)

	app.notifyBookingConfirmed(r, booking)

	err = app.writeJSON(w, http.StatusCreated, toApiBooking(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// reverseCharge refunds or cancels a charge whose booking was rolled back.
// The reversal outlives a cancelled request.
func (app *Application) reverseCharge(r *http.Request, charged *domain.ChargeResult) {
	if charged == nil || charged.Status == domain.PaymentStatusFailed {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), refundTimeout)
	defer cancel()

	err := app.paymentProvider.Refund(ctx, charged)
	if err != nil {
		app.contextGetLogger(r).Error("failed to reverse charge of a rolled back checkout",
			"error", err, "payment_ref", charged.Reference, "payment_status", charged.Status)
		return
	}

	app.contextGetLogger(r).Info("charge reversed", "payment_ref", charged.Reference, "payment_status", charged.Status)
}

// notifyBookingConfirmed publishes the booking.confirmed event and mails the
// confirmation once the response is on its way. Failures are only logged.
func (app *Application) notifyBookingConfirmed(r *http.Request, booking *domain.Booking) {
	logger := app.contextGetLogger(r)
	event := toBookingConfirmedEvent(booking)

	app.background(context.WithoutCancel(r.Context()), func(ctx context.Context) {
		err := app.publisher.PublishBookingConfirmed(ctx, event)
		if err != nil {
			logger.Error("failed to publish booking confirmed event", "error", err, "booking_id", event.BookingID)
		}

		data := map[string]any{
			"userName":    booking.User.Name,
			"movieTitle":  event.MovieTitle,
			"theaterName": event.TheaterName,
			"screenName":  event.ScreenName,
			"startsAt":    event.StartsAt.Format(time.RFC1123),
			"seatLabel":   event.SeatLabel,
			"amount":      event.Amount,
			"bookingID":   event.BookingID,
		}

		err = app.mailer.Send(booking.User.Email, bookingConfirmationTemplate, data)
		if err != nil {
			logger.Error("failed to send booking confirmation email", "error", err, "booking_id", event.BookingID)
		} else {
			logger.Info("booking confirmation email sent", "booking_id", event.BookingID)
		}
	})
}

func (app *Application) BookingGetById(w http.ResponseWriter, r *http.Request, id string) {
	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// hide other users' bookings instead of confirming they exist
	if !canAccessUser(contextGetSession(r), booking.UserID) {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiBooking(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) BookingGetByUserId(w http.ResponseWriter, r *http.Request, id string) {
	if !canAccessUser(contextGetSession(r), id) {
		app.forbiddenResponse(w, r)
		return
	}

	bookings, err := app.bookingRepo.GetByUserId(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookings(w, r, bookings)
}

func (app *Application) BookingGetAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookings(w, r, bookings)
}

func (app *Application) writeBookings(w http.ResponseWriter, r *http.Request, bookings []domain.Booking) {
	resp := make([]api.Booking, len(bookings))
	for i := range bookings {
		resp[i] = toApiBooking(&bookings[i])
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func showDescription(show *domain.Show) string {
	if show.Movie == nil {
		return "Cinema ticket"
	}

	return show.Movie.Title + " at " + show.StartTime.UTC().Format(time.RFC3339)
}

func toBookingConfirmedEvent(booking *domain.Booking) domain.BookingConfirmedEvent {
	event := domain.BookingConfirmedEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ShowID:      booking.ShowID,
		SeatID:      booking.SeatID,
		PaymentID:   booking.PaymentID,
		ConfirmedAt: booking.BookingTime,
	}

	if booking.Seat != nil {
		event.SeatLabel = fmt.Sprintf("%s%d", booking.Seat.Row, booking.Seat.Number)
	}

	if booking.Payment != nil {
		event.Amount = booking.Payment.Amount.StringFixed(2)
	}

	if show := booking.Show; show != nil {
		event.StartsAt = show.StartTime
		if show.Movie != nil {
			event.MovieTitle = show.Movie.Title
		}
		if show.Theater != nil {
			event.TheaterName = show.Theater.Name
		}
		if show.Screen != nil {
			event.ScreenName = show.Screen.Name
		}
	}

	return event
}

func toApiBooking(booking *domain.Booking) api.Booking {
	if booking == nil {
		return api.Booking{}
	}

	resp := api.Booking{
		Id:          booking.ID,
		UserId:      booking.UserID,
		ShowId:      booking.ShowID,
		SeatId:      booking.SeatID,
		PaymentId:   booking.PaymentID,
		BookingTime: booking.BookingTime,
	}

	if booking.User != nil {
		user := toApiUser(booking.User)
		resp.User = &user
	}

	if booking.Show != nil {
		show := toApiShow(booking.Show)
		resp.Show = &show
	}

	if booking.Seat != nil {
		seat := toApiSeat(booking.Seat)
		resp.Seat = &seat
	}

	if booking.Payment != nil {
		payment := toApiPayment(booking.Payment)
		resp.Payment = &payment
	}

	return resp
}
