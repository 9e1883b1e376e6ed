package analysis

import (
	"context"
	"log"
	"time"

	"github.com/visionlane/vision-board/internal/domain/ai"
	"github.com/visionlane/vision-board/internal/domain/faults"
)

// Service wraps the AI collaborator and records its failures. Analysis
// errors are surfaced to the caller unchanged; the fault row is a side
// channel for operators.
type Service struct {
	client ai.Client
	faults faults.Repository
}

func NewService(client ai.Client, faultRepo faults.Repository) *Service {
	return &Service{client: client, faults: faultRepo}
}

func (s *Service) Short(ctx context.Context, sessionID, formattedAnswers string) (string, error) {
	out, err := s.client.ShortAnalysis(ctx, formattedAnswers)
	if err != nil {
		s.recordFault(sessionID, "short", err)
		return "", err
	}
	return out, nil
}

func (s *Service) Comprehensive(ctx context.Context, sessionID, formattedAnswers string) (string, error) {
	out, err := s.client.ComprehensiveAnalysis(ctx, formattedAnswers)
	if err != nil {
		s.recordFault(sessionID, "comprehensive", err)
		return "", err
	}
	return out, nil
}

func (s *Service) recordFault(sessionID, stage string, cause error) {
	if s.faults == nil {
		return
	}
	// Detached context: the request may already be cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := &faults.Fault{
		SessionID: sessionID,
		Service:   "analysis",
		Stage:     stage,
		Message:   cause.Error(),
	}
	if err := s.faults.Save(ctx, f); err != nil {
		log.Printf("analysis: failed to record fault session=%s stage=%s err=%v", sessionID, stage, err)
	}
}
