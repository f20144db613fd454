package app

import (
	"errors"
	"net/http"

	"github.com/movietix/movietix/api"
	"github.com/movietix/movietix/internal/domain"
)

func (app *Application) GetSeatMapByTheater(w http.ResponseWriter, r *http.Request) {
	theaterID, err := readIDParam(r, "theaterId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), theaterID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats, err := app.seatRepo.GetSeatsByTheater(r.Context(), theaterID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatMapResponse{
		TheaterId:   theater.ID,
		TheaterName: theater.Name,
		FullyBooked: theater.IsFullyBooked,
		Seats:       toApiSeats(seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	apiSeats := make([]api.Seat, len(seats))

	for i, seat := range seats {
		apiSeats[i] = api.Seat{
			Id:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Booked:     seat.IsBooked,
		}
	}

	return apiSeats
}
