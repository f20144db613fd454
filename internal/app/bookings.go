package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/movietix/movietix/api"
	"github.com/movietix/movietix/internal/booking"
	"github.com/movietix/movietix/internal/domain"
)

// CreateBookingHandler claims the requested seats for the authenticated
// user. Partial success is a 200: each seat carries its own outcome and
// seats that were claimed stay claimed even when others in the batch
// conflicted. Only request-level failures (unknown theater, fully booked
// theater, empty selection) reject the call as a whole.
func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	theaterID, err := readIDParam(r, "theaterId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.CreateBookingRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	result, err := app.engine.ClaimSeats(r.Context(), theaterID, userId, input.SeatIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrTheaterFullyBooked):
			logger.Warn("booking attempt for fully booked theater", "theater_id", theaterID)
			app.conflictResponse(w, r, "Theater is fully booked")
		case errors.Is(err, domain.ErrNoSeatsSelected):
			app.badRequestResponse(w, r, fmt.Errorf("no seat selected"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info(
		"seat claim processed",
		"theater_id", theaterID,
		"requested", len(result.Seats),
		"fully_booked", result.FullyBooked,
	)

	resp := toBookingClaimResponse(result)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingClaimResponse(result *booking.ClaimResult) api.BookingClaimResponse {
	outcomes := make([]api.SeatOutcome, len(result.Seats))

	for i, seatResult := range result.Seats {
		outcomes[i] = api.SeatOutcome{
			SeatId:     seatResult.SeatID,
			SeatNumber: seatResult.SeatNumber,
			Status:     string(seatResult.Status),
		}
	}

	return api.BookingClaimResponse{
		TheaterId:   result.TheaterID,
		FullyBooked: result.FullyBooked,
		Seats:       outcomes,
	}
}

type listBookingsParams struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=50"`
}

func (app *Application) GetBookingsOfUserHandler(w http.ResponseWriter, r *http.Request) {
	params := listBookingsParams{
		Page:     readQueryInt(r, "page", DefaultPage),
		PageSize: readQueryInt(r, "pageSize", DefaultPageSize),
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	pagination := domain.Pagination{
		Page:     params.Page,
		PageSize: params.PageSize,
	}

	bookings, metadata, err := app.bookingRepo.GetSummariesByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: toBookingSummaries(bookings),
		Metadata: *toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingSummaries(bookings []domain.BookingSummary) []api.BookingSummary {
	summaries := make([]api.BookingSummary, len(bookings))

	for i, b := range bookings {
		summaries[i] = api.BookingSummary{
			Id:          b.BookingID,
			Reference:   b.Reference,
			MovieName:   b.MovieName,
			TheaterName: b.TheaterName,
			StartTime:   b.StartTime,
			SeatNumber:  b.SeatNumber,
			BookedAt:    b.BookedAt,
		}
	}

	return summaries
}
