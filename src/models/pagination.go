package models

import "math"

// MaxPageLimit จำนวนรายการสูงสุดต่อหน้าในหน้า admin
const MaxPageLimit = 200

// PageQuery ใช้เก็บค่าการแบ่งหน้าจาก query string (?page=&limit=)
type PageQuery struct {
	Page  int `json:"page" query:"page" example:"1"`
	Limit int `json:"limit" query:"limit" example:"20"`
}

// Paged reports whether the caller asked for a page at all.
func (q PageQuery) Paged() bool {
	return q.Page > 0 || q.Limit > 0
}

func (q PageQuery) normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
	return q
}

// PaginatedResponse โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int         `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// Paginate slices an already sorted list. Without paging parameters the
// whole list comes back as a single page.
func Paginate[T any](items []T, q PageQuery) PaginatedResponse {
	total := len(items)
	if !q.Paged() {
		return PaginatedResponse{Data: items, Total: total, Page: 1, Limit: total, TotalPages: 1}
	}

	q = q.normalize()
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	totalPages := int(math.Ceil(float64(total) / float64(q.Limit)))

	return PaginatedResponse{
		Data:        items[start:end],
		Total:       total,
		Page:        q.Page,
		Limit:       q.Limit,
		TotalPages:  totalPages,
		HasNext:     q.Page < totalPages,
		HasPrevious: q.Page > 1,
	}
}
