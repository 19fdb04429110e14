// README: User profile record keyed by the Firebase UID.
package user

import (
	"time"

	"bettercommute/internal/types"
)

type Profile struct {
	UID       types.ID  `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
