package sessions

import (
	"time"
)

// ID tipe untuk Session
type SessionID string

// Answer is one stored question/answer pair. Position preserves the
// insertion order of the traversal's answer map.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
}

// Aggregate Root: Session
type Session struct {
	ID                    SessionID `json:"id"`
	ShortAnalysis         string    `json:"short_analysis,omitempty"`
	ComprehensiveAnalysis string    `json:"comprehensive_analysis,omitempty"`
	Email                 string    `json:"email,omitempty"`
	ReportURL             string    `json:"report_url,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	Answers               []Answer  `json:"answers,omitempty"`
}
