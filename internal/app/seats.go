package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cinebook/booking-api/api"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/validator"
	"github.com/redis/go-redis/v9"
)

func (app *Application) SeatGetById(w http.ResponseWriter, r *http.Request, id string) {
	seat, err := app.seatRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeat(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SeatGetByScreenId(w http.ResponseWriter, r *http.Request, id string) {
	seats, err := app.seatRepo.GetByScreenId(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeats(seats), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SeatGetByShowId lists the seats of the show's screen, flagged as booked
// when a booking exists for that seat in this show.
func (app *Application) SeatGetByShowId(w http.ResponseWriter, r *http.Request, id string) {
	seats, err := app.seatRepo.GetByShowId(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeats(seats), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SeatCreate(w http.ResponseWriter, r *http.Request) {
	var input api.CreateSeatRequest

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

	columnsPerRow := domain.DefaultColumnsPerRow
	if input.ColumnsPerRow != nil {
		columnsPerRow = *input.ColumnsPerRow
	}

	if maxNumber := domain.MaxSeatNumber(columnsPerRow); input.Number > maxNumber {
		app.fieldValidationResponse(w, r, "Number", fmt.Sprintf(validator.ErrMaxValue, strconv.Itoa(maxNumber)))
		return
	}

	seat := domain.Seat{
		ScreenID: input.ScreenId,
		Number:   input.Number,
		Row:      domain.SeatRowLabel(input.Number, columnsPerRow),
	}

	err = app.seatRepo.Create(r.Context(), &seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiSeat(&seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SeatUpdateBookingStatus(w http.ResponseWriter, r *http.Request, id string) {
	var input api.UpdateSeatBookingStatusRequest

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

	seat, err := app.seatRepo.UpdateBookingStatus(r.Context(), id, *input.IsBooked)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeat(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SeatHold reserves the seat for the caller for domain.SeatHoldTTL so that
// nobody else can check it out in the meantime.
func (app *Application) SeatHold(w http.ResponseWriter, r *http.Request, showId string, seatId string) {
	logger := app.contextGetLogger(r)
	session := contextGetSession(r)

	show, err := app.showRepo.GetById(r.Context(), showId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seat, err := app.seatRepo.GetById(r.Context(), seatId)
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

	err = app.holdSeat(r.Context(), showId, seatId, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatHeldByOther):
			logger.Info("seat already held", "show_id", showId, "seat_id", seatId)
			app.metrics.recordHoldRejected(r.Context(), showId)
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.SeatHoldResponse{
		ShowId:    showId,
		SeatId:    seatId,
		ExpiresAt: time.Now().Add(domain.SeatHoldTTL),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// holdSeatScript takes a free hold, refreshes the caller's own hold and
// refuses a hold owned by someone else. It returns 1 when ARGV[1] holds the
// seat afterwards.
var holdSeatScript = redis.NewScript(`
    local current = redis.call("GET", KEYS[1])
    if not current then
        redis.call("SET", KEYS[1], ARGV[1], "EX", ARGV[2])
        return 1
    end
    if current == ARGV[1] then
        redis.call("EXPIRE", KEYS[1], ARGV[2])
        return 1
    end
    return 0
`)

// releaseSeatHoldScript deletes the hold only while ARGV[1] still owns it.
var releaseSeatHoldScript = redis.NewScript(`
    if redis.call("GET", KEYS[1]) == ARGV[1] then
        return redis.call("DEL", KEYS[1])
    end
    return 0
`)

func (app *Application) holdSeat(ctx context.Context, showID, seatID, owner string) error {
	held, err := holdSeatScript.Run(ctx, app.redis, []string{seatHoldKey(showID, seatID)},
		owner, int(domain.SeatHoldTTL.Seconds())).Int()
	if err != nil {
		return fmt.Errorf("failed to acquire seat hold: %w", err)
	}

	if held == 0 {
		return domain.ErrSeatHeldByOther
	}

	return nil
}

// seatHoldOwner returns "" when nobody holds the seat.
func (app *Application) seatHoldOwner(ctx context.Context, showID, seatID string) (string, error) {
	owner, err := app.redis.Get(ctx, seatHoldKey(showID, seatID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}

		return "", fmt.Errorf("failed to read seat hold: %w", err)
	}

	return owner, nil
}

func (app *Application) releaseSeatHold(ctx context.Context, showID, seatID, owner string) error {
	return releaseSeatHoldScript.Run(ctx, app.redis, []string{seatHoldKey(showID, seatID)}, owner).Err()
}

func toApiSeat(seat *domain.Seat) api.Seat {
	if seat == nil {
		return api.Seat{}
	}

	return api.Seat{
		Id:       seat.ID,
		ScreenId: seat.ScreenID,
		Row:      seat.Row,
		Number:   seat.Number,
		IsBooked: seat.IsBooked,
	}
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	resp := make([]api.Seat, len(seats))
	for i := range seats {
		resp[i] = toApiSeat(&seats[i])
	}

	return resp
}
