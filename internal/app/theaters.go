package app

import (
	"errors"
	"net/http"

	"github.com/movietix/movietix/api"
	"github.com/movietix/movietix/internal/domain"
)

func (app *Application) GetTheatersByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := readIDParam(r, "movieId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	theaters, err := app.theaterRepo.GetByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheaterListResponse{
		Movie:    toMovieSummary(movie),
		Theaters: toTheaterSummaries(theaters),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheaterSummaries(theaters []domain.Theater) []api.TheaterSummary {
	summaries := make([]api.TheaterSummary, len(theaters))

	for i, theater := range theaters {
		summaries[i] = api.TheaterSummary{
			Id:          theater.ID,
			Name:        theater.Name,
			StartTime:   theater.StartTime,
			FullyBooked: theater.IsFullyBooked,
		}
	}

	return summaries
}
