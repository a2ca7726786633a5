package api

const (
	// MaxTitleLen is the client-side upper bound on a note title
	MaxTitleLen = 500
	// MaxContentLen is the client-side upper bound on a note body
	MaxContentLen = 5000
)

// CreateNoteRequest is the body of POST /api/notes/create
type CreateNoteRequest struct {
	Title   string  `json:"title" validate:"max=500"`
	Content string  `json:"content" validate:"max=5000"`
	BgColor *string `json:"bg_color,omitempty" validate:"omitempty,hexcolor"` // optional background, e.g. #AFDBF5
}

// Note is a note as returned by the server.
// Timestamps are kept as the strings the server sends.
type Note struct {
	ID        string `json:"_id" validate:"required"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	BgColor   string `json:"bg_color,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	CreatedAt string `json:"createdAt" validate:"required"`
	UpdatedAt string `json:"updatedAt" validate:"required"`
}
