package viewmodels

import "streetadmin/models"

type Note struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	AuthorName string `json:"authorName"`
	CreatedAt  string `json:"createdAt"`
	Edited     bool   `json:"edited"`
}

func ToNote(dto models.NoteDTO) Note {
	author := Unknown
	if a := dto.Author; a != nil {
		author = summaryName(a.FirstName, a.LastName, a.Email)
	}

	created, updated := text(dto.CreatedAt), text(dto.UpdatedAt)

	return Note{
		ID:         dto.ID,
		Content:    textOr(dto.Content, Placeholder),
		AuthorName: author,
		CreatedAt:  FormatDateTime(dto.CreatedAt),
		Edited:     updated != "" && updated != created,
	}
}
