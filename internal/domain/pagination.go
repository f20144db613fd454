package domain

type Pagination struct {
	Page     int
	PageSize int
	Term     string
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
