package domain

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Movie struct {
	ID          int
	Name        string
	Rating      pgtype.Numeric
	CastMembers string
	Description string
	PosterUrl   string
	TrailerUrl  string
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters Pagination) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}
