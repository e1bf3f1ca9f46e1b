package models

type Comment struct {
	BaseModel

	UserID uint `json:"user_id" gorm:"index"`
	PostID uint `json:"post_id" gorm:"index"`

	Body string `json:"comment"`

	// ReplyToCommentID is never validated against an existing
	// comment, threading is best-effort.
	ReplyToCommentID *uint `json:"reply_to_comment_id"`

	IsEdited bool `json:"is_edited"`
}
