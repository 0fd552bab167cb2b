package domain

import "time"

type DraftID string

// Draft keeps the text of a post whose submission failed so it can be retried.
type Draft struct {
	ID        DraftID
	Text      string
	ParentID  *PostID
	EditOf    *PostID
	LastError string
	CreatedAt time.Time
}
