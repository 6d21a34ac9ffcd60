package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vitaclub/wellness-engine/internal/domain"
	"github.com/vitaclub/wellness-engine/internal/engine"
)

type Server struct {
	Engine      *engine.Engine
	Assessments AssessmentsRepo
	Logger      *zap.Logger
}

func NewServer(eng *engine.Engine, repo AssessmentsRepo, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Engine: eng, Assessments: repo, Logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/plan", s.handlePlan).Methods(http.MethodPost)
	r.HandleFunc("/menu", s.handleMenuList).Methods(http.MethodGet)
	r.HandleFunc("/menu/{id}", s.handleMenuGet).Methods(http.MethodGet)
	r.HandleFunc("/assessments", s.handleAssessmentCreate).Methods(http.MethodPost)
	r.HandleFunc("/assessments", s.handleAssessmentList).Methods(http.MethodGet)
	r.HandleFunc("/assessments/{id}", s.handleAssessmentGet).Methods(http.MethodGet)
	r.HandleFunc("/assessments/{id}", s.handleAssessmentDelete).Methods(http.MethodDelete)
	r.Use(s.loggingMiddleware)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type PlanResponse struct {
	Plan      domain.GeneratedPlan `json:"plan"`
	Dashboard domain.LiveDashboard `json:"dashboard"`
}

// handlePlan runs the full pipeline for a submitted assessment. The status
// and energy fields depend on the current hour; an `hour` query parameter
// overrides the wall clock for deterministic clients.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var data domain.AssessmentData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	hour := currentHour(r)
	plan, dashboard := s.Engine.GenerateDashboard(data, hour)
	writeJSON(w, http.StatusOK, PlanResponse{Plan: plan, Dashboard: dashboard})
}

type MenuListResponse struct {
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Total  int               `json:"total"`
	Items  []domain.MenuItem `json:"items"`
}

func (s *Server) handleMenuList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)

	items := s.Engine.Catalog()
	total := len(items)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, MenuListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items[offset:end],
	})
}

func (s *Server) handleMenuGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, item := range s.Engine.Catalog() {
		if item.ID == id {
			writeJSON(w, http.StatusOK, item)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
}

// handleAssessmentCreate stores a questionnaire submission with its derived
// classification and lead score attached.
func (s *Server) handleAssessmentCreate(w http.ResponseWriter, r *http.Request) {
	var data domain.AssessmentData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	data = engine.ApplyDefaults(data)
	bmi := engine.ComputeBMI(data.Weight, data.Height)
	rec := domain.AssessmentRecord{
		Assessment: data,
		Somatotype: engine.ClassifySomatotype(data.Gender, data.WristSize, bmi.Value),
		Chronotype: engine.ClassifyChronotype(data.WakeTime),
		BMIValue:   bmi.Value,
		BMIStatus:  bmi.Status,
		LeadScore:  engine.ComputeLeadScore(data, bmi.Status),
	}

	stored, err := s.Assessments.Create(rec)
	if err != nil {
		s.Logger.Error("create assessment", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_failure"})
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

type AssessmentsListResponse struct {
	Limit  int                       `json:"limit"`
	Offset int                       `json:"offset"`
	Total  int                       `json:"total"`
	Items  []domain.AssessmentRecord `json:"items"`
}

func (s *Server) handleAssessmentList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	q := r.URL.Query()

	minScore := 0
	if v := q.Get("min_score"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			minScore = parsed
		}
	}

	items, total, err := s.Assessments.List(ListParams{
		Limit:        limit,
		Offset:       offset,
		Goal:         q.Get("goal"),
		MinLeadScore: minScore,
		Sort:         q.Get("sort"),
	})
	if err != nil {
		s.Logger.Error("list assessments", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_failure"})
		return
	}

	writeJSON(w, http.StatusOK, AssessmentsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleAssessmentGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, found, err := s.Assessments.Get(id)
	if err != nil {
		s.Logger.Error("get assessment", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_failure"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleAssessmentDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := s.Assessments.Delete(id)
	if err != nil {
		s.Logger.Error("delete assessment", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_failure"})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func currentHour(r *http.Request) int {
	if v := r.URL.Query().Get("hour"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 23 {
			return parsed
		}
	}
	return time.Now().Hour()
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
