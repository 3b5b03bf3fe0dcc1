package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User 用户
// email 是导入时判重用的自然键；各类 count 为冗余计数，不与实际关系对账
type User struct {
	ID                  uint64                      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID              string                      `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:uk_user_id" json:"user_id"`
	Username            string                      `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_username" json:"username"`
	Email               string                      `gorm:"column:email;type:varchar(254);not null;index:idx_email" json:"email"`
	Password            string                      `gorm:"column:password;type:varchar(128);not null;default:''" json:"-"`
	FirstName           string                      `gorm:"column:first_name;type:varchar(150);not null;default:''" json:"first_name"`
	LastName            string                      `gorm:"column:last_name;type:varchar(150);not null;default:''" json:"last_name"`
	Bio                 *string                     `gorm:"column:bio;type:text" json:"bio"`
	Location            string                      `gorm:"column:location;type:varchar(100);not null;default:''" json:"location"`
	FollowersCount      int                         `gorm:"column:followers_count;not null;default:0" json:"followers_count"`
	FollowingCount      int                         `gorm:"column:following_count;not null;default:0" json:"following_count"`
	BoardsCount         int                         `gorm:"column:boards_count;not null;default:0" json:"boards_count"`
	PinsCount           int                         `gorm:"column:pins_count;not null;default:0" json:"pins_count"`
	AccountType         string                      `gorm:"column:account_type;type:varchar(20);not null;default:'personal'" json:"account_type"`
	IsVerified          bool                        `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	IsActive            bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
	PreferredCategories datatypes.JSONSlice[string] `gorm:"column:preferred_categories" json:"preferred_categories"`
	CreatedAt           time.Time                   `gorm:"column:created_at" json:"created_at"`
	LastActive          time.Time                   `gorm:"column:last_active;autoUpdateTime" json:"last_active"`

	Boards             []Board             `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Pins               []Pin               `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Interactions       []UserInteraction   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Searches           []SearchQuery       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	RecommendationLogs []RecommendationLog `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Profile            *UserProfile        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate 库内身份由存储侧分配，不复用生成器的 user_id
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	if u.PreferredCategories == nil {
		u.PreferredCategories = datatypes.JSONSlice[string]{}
	}
	return nil
}
