package models

import "time"

const ActionPromoteUser = "PROMOTE_USER"

// AdminLog audit entry written by admin-only operations.
type AdminLog struct {
	ID           string          `bson:"_id" json:"id"`
	Action       string          `bson:"action" json:"action"`
	AdminID      string          `bson:"adminId" json:"adminId"`
	TargetUserID string          `bson:"targetUserId" json:"targetUserId"`
	Timestamp    time.Time       `bson:"timestamp" json:"timestamp"`
	Details      AdminLogDetails `bson:"details" json:"details"`
}

type AdminLogDetails struct {
	TargetUserName string `bson:"targetUserName" json:"targetUserName"`
	AdminUserName  string `bson:"adminUserName" json:"adminUserName"`
}
