package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrSeatAlreadyBooked  = errors.New("seat is already booked")
	ErrTheaterFullyBooked = errors.New("theater is fully booked")
	ErrNoSeatsSelected    = errors.New("no seats selected")
)
