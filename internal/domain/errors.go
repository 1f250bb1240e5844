package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDuplicateEmail      = errors.New("a user with this email address already exists")
	ErrShowConflict        = errors.New("another show on this screen starts within 2 hours of the requested start time")
	ErrSeatAlreadyReserved = errors.New("the selected seat is already booked for this show")
	ErrSeatHeldByOther     = errors.New("the selected seat is currently held by another user")
	ErrSeatNotOnScreen     = errors.New("the selected seat does not belong to the show's screen")
	ErrPaymentDeclined     = errors.New("the payment was declined")
)
