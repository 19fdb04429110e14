// README: Support service: FAQ listing and issue reporting with optional image and triage.
package support

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bettercommute/internal/infra"
	"bettercommute/internal/types"
)

var ErrBadRequest = errors.New("invalid issue report")

// maxImageBytes bounds decoded attachments; phone screenshots fit well under this.
const maxImageBytes = 5 << 20

// Classifier tags an issue description with a category. ai.GeminiClassifier
// satisfies it; a nil classifier skips triage.
type Classifier interface {
	ClassifyIssue(ctx context.Context, description string) (string, error)
}

// IssueStore persists issue reports. *Store satisfies it.
type IssueStore interface {
	Create(ctx context.Context, issue *Issue) (types.ID, error)
}

type Service struct {
	store      IssueStore
	uploader   infra.Uploader
	classifier Classifier
	log        *zap.Logger
	now        func() time.Time
}

// NewService wires the support service. uploader and classifier may be nil;
// reports are then stored without an attachment path or category.
func NewService(store IssueStore, uploader infra.Uploader, classifier Classifier, log *zap.Logger) *Service {
	return &Service{store: store, uploader: uploader, classifier: classifier, log: log, now: time.Now}
}

// FAQs returns the static help content.
func (s *Service) FAQs() []FAQ {
	return FAQs()
}

type ReportCommand struct {
	UserID      types.ID
	Description string
	// ImageBase64 is an optional standard-base64 JPEG/PNG payload.
	ImageBase64 string
}

// ReportIssue stores a problem report. The image upload and the triage
// classification are both best-effort: their failure never loses the report.
func (s *Service) ReportIssue(ctx context.Context, cmd ReportCommand) (types.ID, error) {
	if cmd.UserID == "" || cmd.Description == "" {
		return "", ErrBadRequest
	}

	issue := &Issue{
		UserID:      cmd.UserID,
		Description: cmd.Description,
		CreatedAt:   s.now().UTC(),
	}

	if cmd.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(cmd.ImageBase64)
		if err != nil {
			return "", fmt.Errorf("%w: image is not valid base64", ErrBadRequest)
		}
		if len(data) > maxImageBytes {
			return "", fmt.Errorf("%w: image too large", ErrBadRequest)
		}
		if s.uploader != nil {
			name := fmt.Sprintf("issues/%s", uuid.NewString())
			path, err := s.uploader.Upload(ctx, name, "image/jpeg", data)
			if err != nil {
				s.log.Warn("issue image upload failed", zap.Error(err))
			} else {
				issue.ImagePath = path
			}
		}
	}

	if s.classifier != nil {
		category, err := s.classifier.ClassifyIssue(ctx, cmd.Description)
		if err != nil {
			s.log.Warn("issue triage failed", zap.Error(err))
		} else {
			issue.Category = category
		}
	}

	return s.store.Create(ctx, issue)
}
