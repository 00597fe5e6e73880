package domain

type (
	Email  = string
	UserId = int64

	PostId     = int64
	CommentId  = int64
	CategoryId = int64
)
