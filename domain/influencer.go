package domain

import "time"

// CREATE TABLE public.influencers (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     username        TEXT,
//     followers       BIGINT NOT NULL DEFAULT 0,
//     likes           NUMERIC NOT NULL DEFAULT 0,
//     comments        NUMERIC NOT NULL DEFAULT 0,
//     saves           NUMERIC NOT NULL DEFAULT 0,
//     base_cost       NUMERIC NOT NULL,
//     engagement_rate NUMERIC,
//     group_tag       TEXT NOT NULL,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Influencer struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"column:username;type:text" json:"username"`
	Followers      int64     `gorm:"column:followers;not null;default:0" json:"followers" validate:"gte=0"`
	Likes          float64   `gorm:"column:likes;type:numeric;not null;default:0" json:"likes" validate:"gte=0"`
	Comments       float64   `gorm:"column:comments;type:numeric;not null;default:0" json:"comments" validate:"gte=0"`
	Saves          float64   `gorm:"column:saves;type:numeric;not null;default:0" json:"saves" validate:"gte=0"`
	BaseCost       float64   `gorm:"column:base_cost;type:numeric;not null" json:"base_cost" validate:"gt=0"`
	EngagementRate *float64  `gorm:"column:engagement_rate;type:numeric" json:"engagement_rate,omitempty" validate:"omitempty,gte=0"`
	Group          string    `gorm:"column:group_tag;type:text;not null" json:"group" validate:"required"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Influencer) TableName() string {
	return "influencers"
}

// Engagement is the raw interaction count used for scoring:
// likes + 2*comments + 3*saves.
func (i Influencer) Engagement() float64 {
	return i.Likes + 2*i.Comments + 3*i.Saves
}
