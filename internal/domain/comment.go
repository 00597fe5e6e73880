package domain

import "time"

type Comment struct {
	Id        CommentId
	Text      string
	IsVisible bool
	AuthorId  UserId
	Author    *Author
	PostId    PostId
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CommentCreationData struct {
	Text     string
	AuthorId UserId
	PostId   PostId
}

type CommentUpdate struct {
	Text *string
}
