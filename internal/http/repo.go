package httpapi

import (
	"github.com/vitaclub/wellness-engine/internal/domain"
	"github.com/vitaclub/wellness-engine/internal/storage"
)

type ListParams struct {
	Limit        int
	Offset       int
	Goal         string
	MinLeadScore int
	Sort         string
}

// AssessmentsRepo is the persistence boundary the handlers talk to. The
// engine itself never touches storage.
type AssessmentsRepo interface {
	Create(rec domain.AssessmentRecord) (domain.AssessmentRecord, error)
	Get(id string) (domain.AssessmentRecord, bool, error)
	Delete(id string) (bool, error)
	List(p ListParams) ([]domain.AssessmentRecord, int, error)
}

type SQLiteAssessmentsRepo struct {
	Store *storage.SQLiteStore
}

func (r *SQLiteAssessmentsRepo) Create(rec domain.AssessmentRecord) (domain.AssessmentRecord, error) {
	return r.Store.CreateAssessment(rec)
}

func (r *SQLiteAssessmentsRepo) Get(id string) (domain.AssessmentRecord, bool, error) {
	return r.Store.GetAssessment(id)
}

func (r *SQLiteAssessmentsRepo) Delete(id string) (bool, error) {
	return r.Store.DeleteAssessment(id)
}

func (r *SQLiteAssessmentsRepo) List(p ListParams) ([]domain.AssessmentRecord, int, error) {
	return r.Store.ListAssessmentsFiltered(p.Limit, p.Offset, p.Goal, p.MinLeadScore, p.Sort)
}
