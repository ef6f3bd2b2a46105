package models

// NoteDTO is an internal support note attached to a user.
type NoteDTO struct {
	ID        string           `json:"id"`
	Content   *string          `json:"content"`
	AuthorID  *string          `json:"authorId"`
	Author    *AdminSummaryDTO `json:"author"`
	CreatedAt *string          `json:"createdAt"`
	UpdatedAt *string          `json:"updatedAt"`
}

// AdminSummaryDTO is the reduced admin shape embedded in notes.
type AdminSummaryDTO struct {
	ID        string  `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// NoteCreate is the POST /users/{id}/notes payload.
type NoteCreate struct {
	Content string `json:"content" validate:"required,max=2000"`
}
