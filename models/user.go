package models

import "time"

// DefaultAvatar is used whenever a profile has no avatar of its own.
const DefaultAvatar = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// rank orders roles as a strict escalating capability set.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleModerator:
		return 2
	case RoleStudent:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants every capability of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// Profile is the application-facing facet of an authenticated identity.
// A profile row must exist whenever an identity exists; sign-up creates
// both in one step.
type Profile struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"passwordHash,omitempty"`
	Role         Role       `gorm:"type:varchar(16);default:STUDENT" json:"role"`
	Avatar       string     `json:"avatar"`
	Phone        string     `json:"phone,omitempty"`
	Company      string     `json:"company,omitempty"`
	DisplayName  string     `json:"displayName,omitempty"`
	SocialHandle string     `json:"socialHandle,omitempty"`
	Status       UserStatus `gorm:"type:varchar(16);default:active" json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }

// PublicProfile is the wire shape of a profile. The password hash stays in
// the cache and the database only.
type PublicProfile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	Avatar       string     `json:"avatar"`
	Phone        string     `json:"phone,omitempty"`
	Company      string     `json:"company,omitempty"`
	DisplayName  string     `json:"displayName,omitempty"`
	SocialHandle string     `json:"socialHandle,omitempty"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (p Profile) Public() PublicProfile {
	return PublicProfile{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Role:         p.Role,
		Avatar:       p.Avatar,
		Phone:        p.Phone,
		Company:      p.Company,
		DisplayName:  p.DisplayName,
		SocialHandle: p.SocialHandle,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}
}
