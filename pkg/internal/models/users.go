package models

import (
	"gorm.io/datatypes"
)

type UserOriginKind = string

const (
	UserOriginKindRobot         = UserOriginKind("robot")
	UserOriginKindHuman         = UserOriginKind("human")
	UserOriginKindHumanProbably = UserOriginKind("human_probably")
)

const (
	UserDefaultRole = "member"
	UserDefaultBio  = "I'm interested about everything."
)

// User is the account record. The id list columns keep insertion
// order and never contain duplicates; FollowingIDs and FollowerIDs
// stay mutual across any pair of users.
type User struct {
	BaseModel

	Username string `json:"username"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`

	// PasswordDigest is only rendered on the local registration path,
	// every read path blanks it before responding.
	PasswordDigest string `json:"password_digest,omitempty"`

	// OriginKind is absent for locally registered accounts only when
	// the caller omitted it; federated accounts get human_probably.
	OriginKind UserOriginKind `json:"origin_kind"`

	Communities datatypes.JSONSlice[string] `json:"communities"`

	LikedPostIDs datatypes.JSONSlice[uint] `json:"liked_post_ids"`
	FollowingIDs datatypes.JSONSlice[uint] `json:"following_ids"`
	FollowerIDs  datatypes.JSONSlice[uint] `json:"follower_ids"`
}
