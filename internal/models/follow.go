package models

import "time"

// Follow is a directed edge in the follow graph: the follower subscribes to the
// followee's posts. The relation is asymmetric; the reverse edge is a separate row.
// The composite primary key (FollowerID, FolloweeID) makes the edge unique.
type Follow struct {
	FollowerID uint `gorm:"primaryKey"`
	FolloweeID uint `gorm:"primaryKey"`
	CreatedAt  time.Time

	Follower User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Followee User `gorm:"foreignKey:FolloweeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
