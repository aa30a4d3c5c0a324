package entity

import (
	"time"
)

// IdentityUser is the record owned by the external identity service. The
// service issues the id and is the sole owner of the email address.
type IdentityUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is the profile-store side of a user. ID matches the identity
// record; everything else is mutable through update_user.
type UserProfile struct {
	ID        string    `json:"id" bson:"_id"`
	Username  string    `json:"username,omitempty" bson:"username,omitempty"`
	FullName  string    `json:"full_name,omitempty" bson:"fullName,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty" bson:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}

// UserRecord is the merged view returned to callers: identity fields plus
// whatever profile data exists. Profile absence is not an error.
type UserRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// MergeProfile overlays profile fields onto the identity record.
func (u *UserRecord) MergeProfile(p *UserProfile) {
	if p == nil {
		return
	}
	u.Username = p.Username
	u.FullName = p.FullName
	u.AvatarURL = p.AvatarURL
	if !p.UpdatedAt.IsZero() {
		u.UpdatedAt = p.UpdatedAt
	}
}

// CreateUserResult is the payload for a successful create_user call.
// Warning is set when the profile write failed after the identity record
// was created; the operation is still a success.
type CreateUserResult struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Warning string `json:"warning,omitempty"`
}

// DeleteUserResult is the payload for a successful delete_user call.
type DeleteUserResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

// UpdateUserResult is the payload for a successful update_user call.
type UpdateUserResult struct {
	Success bool         `json:"success"`
	User    *UserProfile `json:"user"`
}
