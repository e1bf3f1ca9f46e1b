package models

import (
	"gorm.io/datatypes"
)

const (
	PostKindGeneral = "general"
	PostKindText    = "text"
	PostKindImage   = "image"
	PostKindVideo   = "video"
)

type Post struct {
	BaseModel

	CreatorID uint   `json:"creator_id" gorm:"index"`
	Kind      string `json:"kind"`

	Content string                      `json:"content"`
	Images  datatypes.JSONSlice[string] `json:"images"`
	Videos  datatypes.JSONSlice[string] `json:"videos"`
	Caption string                      `json:"caption"`

	Language string `json:"language"`

	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Resources datatypes.JSONSlice[string] `json:"resources"`

	LikerIDs datatypes.JSONSlice[uint] `json:"liker_ids"`

	// CommentIDs is appended to by comment creation and retracted
	// from by comment deletion, both inside the comment's own
	// transaction.
	CommentIDs datatypes.JSONSlice[uint] `json:"comment_ids"`
}
