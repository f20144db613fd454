package app

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/movietix/movietix/api"
	"github.com/movietix/movietix/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 6
)

type listMoviesParams struct {
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=50"`
	Term     string `validate:"max=100"`
}

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params := listMoviesParams{
		Page:     readQueryInt(r, "page", DefaultPage),
		PageSize: readQueryInt(r, "pageSize", DefaultPageSize),
		Term:     r.URL.Query().Get("term"),
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     params.Page,
		PageSize: params.PageSize,
		Term:     params.Term,
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie)
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:          movie.ID,
		Name:        movie.Name,
		Rating:      toRating(movie.Rating),
		Cast:        movie.CastMembers,
		Description: movie.Description,
		PosterUrl:   movie.PosterUrl,
		TrailerUrl:  movie.TrailerUrl,
	}
}

// toRating renders the stored NUMERIC(3,1) rating with its single decimal
// place intact, e.g. 7 becomes "7.0".
func toRating(rating pgtype.Numeric) decimal.Decimal {
	if !rating.Valid || rating.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(rating.Int, rating.Exp)
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
