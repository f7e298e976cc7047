package domain

import "time"

// Client is a registered download client. ID doubles as the registry key: it
// is the trimmed name supplied at registration and never changes afterwards,
// even when Name is edited.
type Client struct {
	ID           string
	Name         string
	DownloadLink string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
