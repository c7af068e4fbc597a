package client

import "context"

type Client interface {
	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	FetchPage(ctx context.Context, page int) (*PageData, error)
}

// PageData mirrors the /api/data response.
type PageData struct {
	Total      int   `json:"total"`
	Difficulty int   `json:"difficulty"`
	Psych      int   `json:"psych"`
	Data       []Row `json:"data"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
}
