package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appvb "github.com/visionlane/vision-board/internal/application/visionboard"
	"github.com/visionlane/vision-board/internal/application/traversal"
	domai "github.com/visionlane/vision-board/internal/domain/ai"
	"github.com/visionlane/vision-board/internal/domain/questions"
	"github.com/visionlane/vision-board/internal/domain/sessions"
	"github.com/visionlane/vision-board/internal/middleware"
)

// errBadRequest marks handler errors that should map to 400.
var errBadRequest = errors.New("bad request")

type Router struct {
	svc      *appvb.Service
	registry *Registry
	admin    func(http.Handler) http.Handler
}

func NewRouter(svc *appvb.Service, registry *Registry, adminAuth func(http.Handler) http.Handler) http.Handler {
	r := &Router{svc: svc, registry: registry, admin: adminAuth}
	mux := chi.NewRouter()

	mux.Get("/", r.handleLanding)
	mux.Get("/questionnaire", r.handleQuestionnaire)

	mux.Route("/v1/sessions", func(rt chi.Router) {
		rt.Post("/", r.wrap(r.handleCreateSession))
		rt.Get("/{id}", r.wrap(r.handleGetSession))
		rt.Post("/{id}/answers", r.wrap(r.handleAnswer))
		rt.Post("/{id}/back", r.wrap(r.handleBack))
		rt.Post("/{id}/report", r.wrap(r.handleReport))
	})

	mux.Route("/v1/admin", func(rt chi.Router) {
		rt.Use(r.admin)
		rt.Get("/sessions", r.wrap(r.handleAdminSessions))
		rt.Get("/sessions/{id}", r.wrap(r.handleAdminSession))
		rt.Get("/sessions/{id}/faults", r.wrap(r.handleAdminFaults))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if traversal.IsValidation(err) || errors.Is(err, errBadRequest) || errors.Is(err, traversal.ErrComplete) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if errors.Is(err, ErrUnknownSession) || errors.Is(err, sql.ErrNoRows) || errors.Is(err, traversal.ErrQuestionNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domai.ErrQuotaExceeded) {
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// questionView is the question shape handed to the frontend, with the
// previously stored answer decoded back into widget state.
type questionView struct {
	ID        string             `json:"id"`
	Category  string             `json:"category,omitempty"`
	Prompt    string             `json:"prompt"`
	Kind      string             `json:"kind"`
	Options   []questions.Option `json:"options,omitempty"`
	Value     string             `json:"value,omitempty"`
	Selected  []string           `json:"selected,omitempty"`
	OtherText string             `json:"other_text,omitempty"`
}

func buildView(s *liveSession, q *questions.Question) *questionView {
	if q == nil {
		return nil
	}
	v := &questionView{
		ID:       string(q.ID),
		Category: q.Category,
		Prompt:   q.Prompt,
		Kind:     string(q.Kind),
		Options:  q.Options,
	}
	stored, ok := s.state.PreviousAnswer(q)
	if !ok {
		return v
	}
	switch q.Kind {
	case questions.KindSingleChoice:
		v.Value, v.OtherText = traversal.DecodeSingleChoice(stored)
	case questions.KindMultiChoice:
		v.Selected, v.OtherText = traversal.DecodeMultiChoice(q, stored)
	default:
		v.Value = stored
	}
	return v
}

type sessionView struct {
	SessionID string        `json:"session_id"`
	Question  *questionView `json:"question,omitempty"`
	Progress  float64       `json:"progress"`
	Completed bool          `json:"completed"`
}

// POST /v1/sessions
func (r *Router) handleCreateSession(w http.ResponseWriter, req *http.Request) error {
	id, s := r.registry.Create()
	middleware.IncrementSessionsStarted()

	s.mu.Lock()
	view := sessionView{
		SessionID: id,
		Question:  buildView(s, s.state.Current()),
		Progress:  s.state.Progress(),
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(view)
}

// GET /v1/sessions/{id}
func (r *Router) handleGetSession(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	s, err := r.registry.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	view := sessionView{
		SessionID: id,
		Question:  buildView(s, s.state.Current()),
		Progress:  s.state.Progress(),
		Completed: s.state.Completed(),
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(view)
}

type answerRequest struct {
	Answer     string   `json:"answer"`
	Selections []string `json:"selections"`
	OtherText  string   `json:"other_text"`
}

type completionView struct {
	SessionID     string  `json:"session_id"`
	Completed     bool    `json:"completed"`
	Progress      float64 `json:"progress"`
	ShortAnalysis string  `json:"short_analysis,omitempty"`
}

// POST /v1/sessions/{id}/answers
func (r *Router) handleAnswer(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	s, err := r.registry.Get(id)
	if err != nil {
		return err
	}

	var body answerRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.state.Current()
	if q == nil {
		return traversal.ErrComplete
	}

	raw := body.Answer
	switch q.Kind {
	case questions.KindSingleChoice:
		if raw, err = traversal.EncodeSingleChoice(q, body.Answer, body.OtherText); err != nil {
			return err
		}
	case questions.KindMultiChoice:
		if raw, err = traversal.EncodeMultiChoice(q, body.Selections, body.OtherText); err != nil {
			return err
		}
	}

	if err := s.state.Answer(raw); err != nil {
		return err
	}

	if !s.state.AtEnd() {
		view := sessionView{
			SessionID: id,
			Question:  buildView(s, s.state.Current()),
			Progress:  s.state.Progress(),
		}
		w.Header().Set("Content-Type", "application/json")
		return json.NewEncoder(w).Encode(view)
	}

	// Final answer accepted: persist the session and run the short
	// analysis while the client waits. The completion is committed only
	// after the hand-off succeeds, so a collaborator failure leaves the
	// final question current and the same POST can be retried.
	result, err := r.svc.Complete(req.Context(), sessions.SessionID(id), s.state.Answers())
	if err != nil {
		return err
	}
	s.state.Finish()
	middleware.IncrementSessionsCompleted()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(completionView{
		SessionID:     result.SessionID,
		Completed:     true,
		Progress:      s.state.Progress(),
		ShortAnalysis: result.ShortAnalysis,
	})
}

// POST /v1/sessions/{id}/back
func (r *Router) handleBack(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	s, err := r.registry.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	q, _ := s.state.Back()
	view := sessionView{
		SessionID: id,
		Question:  buildView(s, q),
		Progress:  s.state.Progress(),
		Completed: s.state.Completed(),
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(view)
}

// POST /v1/sessions/{id}/report
// Body: {"email": "<address>"}
// Responds with the generated PDF; the same document is emailed and archived.
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateSessionID(id); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := middleware.ValidateEmail(body.Email); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	result, err := r.svc.Report(req.Context(), sessions.SessionID(id), body.Email)
	if err != nil {
		return err
	}
	middleware.IncrementReportsGenerated()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="vision-board-analysis.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	_, err = w.Write(result.PDF)
	return err
}

// GET /v1/admin/sessions?page=&page_size=&limit=
func (r *Router) handleAdminSessions(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json")

	if req.URL.Query().Get("page") != "" {
		page, _ := strconv.Atoi(req.URL.Query().Get("page"))
		size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))
		list, err := r.svc.Paginate(req.Context(), middleware.ValidatePage(page), middleware.ValidateLimit(size))
		if err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(list)
	}

	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.svc.Latest(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/admin/sessions/{id}
func (r *Router) handleAdminSession(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")

	sess, err := r.svc.Get(req.Context(), sessions.SessionID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(sess)
}

// GET /v1/admin/sessions/{id}/faults?limit=
func (r *Router) handleAdminFaults(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	list, err := r.svc.ListFaults(req.Context(), id, middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}
