package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// User Model (GORM)
// ═══════════════════════════════════════════════════════════

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"not null"`
	GoogleID  *string   `json:"google_id,omitempty" gorm:"uniqueIndex"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Roles     RoleList  `json:"roles" gorm:"type:jsonb;not null;default:'[]'"`
	Status    string    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// GoogleUserInfo is the userinfo payload Google returns after OAuth.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
}

// UserResponse is the public projection returned after login.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Roles     RoleList  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
	}
}

// ═══════════════════════════════════════════════════════════
// Role Normalization
// ═══════════════════════════════════════════════════════════
// Upstream payloads encode roles either as bare strings ("admin") or as
// objects ({"name": "admin"}). Both shapes are decoded ONCE here; nothing
// downstream re-sniffs the wire format.

type Role struct {
	Name string `json:"name"`
}

type RoleList []Role

// UnmarshalJSON accepts ["admin"] as well as [{"name":"admin"}], including
// a mix of both within one array.
func (rl *RoleList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	roles := make(RoleList, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			roles = append(roles, Role{Name: name})
			continue
		}

		var role Role
		if err := json.Unmarshal(item, &role); err != nil {
			return errors.New("role entry is neither a string nor an object")
		}
		roles = append(roles, role)
	}

	*rl = roles
	return nil
}

func (rl *RoleList) Scan(value interface{}) error {
	if value == nil {
		*rl = make(RoleList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan RoleList")
	}
	return json.Unmarshal(bytes, rl)
}

func (rl RoleList) Value() (driver.Value, error) {
	if rl == nil {
		return json.Marshal([]Role{})
	}
	return json.Marshal(rl)
}
