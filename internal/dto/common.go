package dto

type PaginatedResponse[T any] struct {
	Data        []T   `json:"data"`
	Count       int64 `json:"count"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	HasNextPage bool  `json:"hasNextPage"`
}

func NewPaginatedResponse[T any](data []T, count int64, page, size int) *PaginatedResponse[T] {
	totalPages := int((count + int64(size) - 1) / int64(size))
	if data == nil {
		data = []T{}
	}

	return &PaginatedResponse[T]{
		Data:        data,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}
}

type RecaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}
