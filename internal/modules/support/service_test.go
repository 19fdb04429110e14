// README: Support service tests (validation, best-effort upload and triage).
package support

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"bettercommute/internal/types"
)

type memIssueStore struct {
	issues []*Issue
	err    error
}

func (m *memIssueStore) Create(_ context.Context, issue *Issue) (types.ID, error) {
	if m.err != nil {
		return "", m.err
	}
	issue.ID = "issue-1"
	m.issues = append(m.issues, issue)
	return issue.ID, nil
}

type stubUploader struct {
	uploaded map[string][]byte
	err      error
}

func (s *stubUploader) Upload(_ context.Context, name, _ string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.uploaded == nil {
		s.uploaded = map[string][]byte{}
	}
	s.uploaded[name] = data
	return name, nil
}

type stubClassifier struct {
	category string
	err      error
}

func (s *stubClassifier) ClassifyIssue(_ context.Context, _ string) (string, error) {
	return s.category, s.err
}

func TestReportIssue_StoresWithImageAndCategory(t *testing.T) {
	store := &memIssueStore{}
	uploader := &stubUploader{}
	svc := NewService(store, uploader, &stubClassifier{category: "billing"}, zap.NewNop())

	image := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	id, err := svc.ReportIssue(context.Background(), ReportCommand{
		UserID:      "u1",
		Description: "I was charged twice",
		ImageBase64: image,
	})
	if err != nil {
		t.Fatalf("ReportIssue: %v", err)
	}
	if id == "" {
		t.Fatal("expected an issue ID")
	}

	issue := store.issues[0]
	if issue.Category != "billing" {
		t.Errorf("category = %s, want billing", issue.Category)
	}
	if !strings.HasPrefix(issue.ImagePath, "issues/") {
		t.Errorf("image path = %s, want issues/ prefix", issue.ImagePath)
	}
	if len(uploader.uploaded) != 1 {
		t.Fatalf("uploaded %d objects, want 1", len(uploader.uploaded))
	}
}

func TestReportIssue_MissingDescription(t *testing.T) {
	svc := NewService(&memIssueStore{}, nil, nil, zap.NewNop())
	_, err := svc.ReportIssue(context.Background(), ReportCommand{UserID: "u1"})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
}

func TestReportIssue_BadBase64(t *testing.T) {
	svc := NewService(&memIssueStore{}, &stubUploader{}, nil, zap.NewNop())
	_, err := svc.ReportIssue(context.Background(), ReportCommand{
		UserID:      "u1",
		Description: "broken image",
		ImageBase64: "not base64 !!!",
	})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
}

func TestReportIssue_UploadFailureKeepsReport(t *testing.T) {
	store := &memIssueStore{}
	svc := NewService(store, &stubUploader{err: errors.New("bucket gone")}, nil, zap.NewNop())

	image := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	if _, err := svc.ReportIssue(context.Background(), ReportCommand{
		UserID:      "u1",
		Description: "app crashed",
		ImageBase64: image,
	}); err != nil {
		t.Fatalf("ReportIssue should survive upload failure, got %v", err)
	}
	if store.issues[0].ImagePath != "" {
		t.Error("image path must stay empty when the upload fails")
	}
}

func TestReportIssue_TriageFailureKeepsReport(t *testing.T) {
	store := &memIssueStore{}
	svc := NewService(store, nil, &stubClassifier{err: errors.New("model unavailable")}, zap.NewNop())

	if _, err := svc.ReportIssue(context.Background(), ReportCommand{
		UserID:      "u1",
		Description: "driver took a wrong turn",
	}); err != nil {
		t.Fatalf("ReportIssue should survive triage failure, got %v", err)
	}
	if store.issues[0].Category != "" {
		t.Error("category must stay empty when triage fails")
	}
}

func TestFAQs_NonEmptyAndPaired(t *testing.T) {
	svc := NewService(&memIssueStore{}, nil, nil, zap.NewNop())
	faqs := svc.FAQs()
	if len(faqs) == 0 {
		t.Fatal("expected static FAQ content")
	}
	for i, f := range faqs {
		if f.Question == "" || f.Answer == "" {
			t.Errorf("faq %d has empty question or answer", i)
		}
	}
}
