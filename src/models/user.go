package models

import "time"

// User ผู้ใช้ที่ล็อกอินผ่าน social login (id มี prefix ของ provider เช่น kakao_12345)
type User struct {
	ID           string     `bson:"_id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	ProfileImage string     `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	IsAdmin      bool       `bson:"isAdmin" json:"isAdmin"`
	Provider     string     `bson:"provider" json:"provider"`
	KakaoID      string     `bson:"kakaoId,omitempty" json:"kakaoId,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	PromotedAt   *time.Time `bson:"promotedAt,omitempty" json:"promotedAt,omitempty"`
	PromotedBy   string     `bson:"promotedBy,omitempty" json:"promotedBy,omitempty"`
}

// UserStats summary shown on the admin user list.
type UserStats struct {
	Total   int `json:"total"`
	Admins  int `json:"admins"`
	Regular int `json:"regular"`
}
