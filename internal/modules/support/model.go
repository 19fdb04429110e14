// README: Issue report record.
package support

import (
	"time"

	"bettercommute/internal/types"
)

// Issue is a user-filed problem report. ImagePath points at the uploaded
// attachment in the storage bucket, empty when none was attached. Category is
// filled by the optional triage classifier.
type Issue struct {
	ID          types.ID  `json:"id"`
	UserID      types.ID  `json:"user_id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
