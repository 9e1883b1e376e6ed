package visionboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/visionlane/vision-board/internal/application"
	"github.com/visionlane/vision-board/internal/application/analysis"
	"github.com/visionlane/vision-board/internal/application/traversal"
	"github.com/visionlane/vision-board/internal/domain/faults"
	"github.com/visionlane/vision-board/internal/domain/mail"
	"github.com/visionlane/vision-board/internal/domain/sessions"
	"github.com/visionlane/vision-board/internal/infra/ai/prompt"
	"github.com/visionlane/vision-board/internal/pdf"
)

// ArchiveStore is the optional object-store collaborator used to keep a
// copy of every generated report.
type ArchiveStore interface {
	UploadReport(ctx context.Context, key string, data []byte) (string, error)
}

// Service implements use-cases untuk vision board sessions.
// Service is designed to be used concurrently and is thread-safe.
type Service struct {
	Repo     sessions.Repository
	Analysis *analysis.Service
	Mailer   mail.Sender
	Archive  ArchiveStore // nil when archival is disabled
	Faults   faults.Repository
	Clock    application.Clock
}

type CompleteResult struct {
	SessionID     string `json:"session_id"`
	ShortAnalysis string `json:"short_analysis"`
}

type ReportResult struct {
	SessionID string `json:"session_id"`
	ReportURL string `json:"report_url,omitempty"`
	PDF       []byte `json:"-"`
}

// Complete persists a finished questionnaire and produces the short
// analysis. The caller supplies the session id (the live traversal id,
// so the stored row keeps the id the client already holds; a zero id
// gets a fresh one). The row is created first so answers survive an
// analysis outage; in that case the returned result still carries the
// session ID alongside the error, and calling Complete again with the
// same id retries the analysis (Create is an upsert on the id).
func (s *Service) Complete(ctx context.Context, id sessions.SessionID, answers *traversal.AnswerMap) (CompleteResult, error) {
	now := s.Clock.Now()
	if id == "" {
		id = sessions.SessionID(uuid.New().String())
	}

	sess := &sessions.Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, p := range answers.Pairs() {
		sess.Answers = append(sess.Answers, sessions.Answer{
			Question: p.Prompt,
			Answer:   p.Answer,
			Position: i,
		})
	}

	if err := s.Repo.Create(ctx, sess); err != nil {
		return CompleteResult{}, fmt.Errorf("create session: %w", err)
	}

	formatted := formatSessionAnswers(sess)
	short, err := s.Analysis.Short(ctx, string(id), formatted)
	if err != nil {
		return CompleteResult{SessionID: string(id)}, err
	}

	if err := s.Repo.UpdateShortAnalysis(ctx, id, short); err != nil {
		// The analysis was produced; losing the row update should not
		// hide it from the user.
		log.Printf("visionboard: failed to store short analysis session=%s err=%v", id, err)
		s.recordFault(string(id), "persistence", "short-analysis", err)
	}

	return CompleteResult{SessionID: string(id), ShortAnalysis: short}, nil
}

// Report generates the comprehensive analysis for a stored session,
// renders it as a PDF and emails it to the given address. Archival to
// the object store is best-effort.
func (s *Service) Report(ctx context.Context, id sessions.SessionID, email string) (ReportResult, error) {
	sess, err := s.Repo.Get(ctx, id)
	if err != nil {
		return ReportResult{}, err
	}

	formatted := formatSessionAnswers(sess)
	comprehensive, err := s.Analysis.Comprehensive(ctx, string(id), formatted)
	if err != nil {
		return ReportResult{SessionID: string(id)}, err
	}

	doc := pdf.Render(comprehensive, pdf.DefaultLayout())

	reportURL := ""
	if s.Archive != nil {
		key := fmt.Sprintf("reports/%s/%s.pdf", s.Clock.Now().Format("2006-01-02"), id)
		url, uerr := s.Archive.UploadReport(ctx, key, doc)
		if uerr != nil {
			log.Printf("visionboard: report archival failed session=%s err=%v", id, uerr)
			s.recordFault(string(id), "storage", "archive", uerr)
		} else {
			reportURL = url
		}
	}

	if err := s.Repo.SaveReport(ctx, id, email, comprehensive, reportURL); err != nil {
		return ReportResult{SessionID: string(id)}, fmt.Errorf("save report: %w", err)
	}

	msg := mail.Message{
		To:             email,
		Subject:        "Your Vision Board Analysis",
		HTMLBody:       reportEmailBody,
		AttachmentName: "vision-board-analysis.pdf",
		Attachment:     doc,
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.recordFault(string(id), "email", "send", err)
		return ReportResult{SessionID: string(id), ReportURL: reportURL}, fmt.Errorf("send report email: %w", err)
	}

	return ReportResult{SessionID: string(id), ReportURL: reportURL, PDF: doc}, nil
}

// Get ambil 1 session by id
func (s *Service) Get(ctx context.Context, id sessions.SessionID) (*sessions.Session, error) {
	return s.Repo.Get(ctx, id)
}

// Latest ambil N session terakhir
func (s *Service) Latest(ctx context.Context, limit int) ([]*sessions.Session, error) {
	return s.Repo.Latest(ctx, limit)
}

func (s *Service) Paginate(ctx context.Context, page, pageSize int) (sessions.PaginatedResult, error) {
	return s.Repo.Paginate(ctx, page, pageSize)
}

func (s *Service) ListFaults(ctx context.Context, sessionID string, limit int) ([]*faults.Fault, error) {
	return s.Faults.ListBySession(ctx, sessionID, limit)
}

func (s *Service) recordFault(sessionID, service, stage string, cause error) {
	if s.Faults == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := &faults.Fault{
		SessionID: sessionID,
		Service:   service,
		Stage:     stage,
		Message:   cause.Error(),
	}
	if err := s.Faults.Save(ctx, f); err != nil {
		log.Printf("visionboard: failed to record fault session=%s service=%s err=%v", sessionID, service, err)
	}
}

func formatSessionAnswers(sess *sessions.Session) string {
	pairs := make([][2]string, 0, len(sess.Answers))
	for _, a := range sess.Answers {
		pairs = append(pairs, [2]string{a.Question, a.Answer})
	}
	return prompt.FormatAnswers(pairs)
}

const reportEmailBody = `<p>Hi,</p>
<p>Thanks for completing your vision board questionnaire. Your personalized
comprehensive analysis is attached as a PDF.</p>
<p>Warm regards,<br>The Vision Board Team</p>`
