package domain

type (
	Username   = string
	UserId     = int64
	TopicId    = int64
	PostId     = int64
	TrustLevel = int
)
