package domain

import "time"

// Author is the subset of user fields nested in post and comment payloads.
type Author struct {
	Id   UserId `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	Id          PostId
	Title       string
	Content     string
	IsPublished bool
	AuthorId    UserId
	Author      *Author
	Categories  []Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Title       string
	Content     string
	AuthorId    UserId
	CategoryIds []CategoryId
}

// PostUpdate carries partial-update fields; nil means "leave unchanged".
// A non-nil empty CategoryIds slice clears the post's tags.
type PostUpdate struct {
	Title       *string
	Content     *string
	CategoryIds *[]CategoryId
}
