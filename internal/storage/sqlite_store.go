package storage

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vitaclub/wellness-engine/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS assessments (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  full_name TEXT NOT NULL DEFAULT '',
  gender TEXT NOT NULL,
  age INTEGER NOT NULL,
  height REAL NOT NULL,
  weight REAL NOT NULL,
  wrist_size REAL NOT NULL,
  wake_time TEXT NOT NULL,
  stress_level TEXT NOT NULL,
  main_goal TEXT NOT NULL,
  neighborhood TEXT NOT NULL DEFAULT '',
  bmi_value REAL NOT NULL,
  bmi_status TEXT NOT NULL,
  somatotype TEXT NOT NULL,
  chronotype TEXT NOT NULL,
  lead_score INTEGER NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_assessments_lead_score ON assessments(lead_score);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_assessments_goal ON assessments(main_goal);`); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) CountAssessments() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM assessments`).Scan(&n)
	return n, err
}

// CreateAssessment inserts a record, assigning id and created_at when empty.
func (s *SQLiteStore) CreateAssessment(rec domain.AssessmentRecord) (domain.AssessmentRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := s.db.Exec(`
INSERT INTO assessments
(id, created_at, full_name, gender, age, height, weight, wrist_size, wake_time,
 stress_level, main_goal, neighborhood, bmi_value, bmi_status, somatotype, chronotype, lead_score)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		rec.ID, rec.CreatedAt, rec.Assessment.FullName, string(rec.Assessment.Gender),
		rec.Assessment.Age, rec.Assessment.Height, rec.Assessment.Weight,
		rec.Assessment.WristSize, rec.Assessment.WakeTime,
		string(rec.Assessment.StressLevel), string(rec.Assessment.MainGoal),
		rec.Assessment.Neighborhood, rec.BMIValue, string(rec.BMIStatus),
		string(rec.Somatotype), string(rec.Chronotype), rec.LeadScore,
	)
	return rec, err
}

const assessmentColumns = `id, created_at, full_name, gender, age, height, weight, wrist_size, wake_time,
 stress_level, main_goal, neighborhood, bmi_value, bmi_status, somatotype, chronotype, lead_score`

func scanAssessment(row interface{ Scan(...any) error }) (domain.AssessmentRecord, error) {
	var rec domain.AssessmentRecord
	var gender, stress, goal, bmiStatus, somatotype, chronotype string

	err := row.Scan(
		&rec.ID, &rec.CreatedAt, &rec.Assessment.FullName, &gender,
		&rec.Assessment.Age, &rec.Assessment.Height, &rec.Assessment.Weight,
		&rec.Assessment.WristSize, &rec.Assessment.WakeTime,
		&stress, &goal, &rec.Assessment.Neighborhood,
		&rec.BMIValue, &bmiStatus, &somatotype, &chronotype, &rec.LeadScore,
	)
	if err != nil {
		return domain.AssessmentRecord{}, err
	}

	rec.Assessment.Gender = domain.Gender(gender)
	rec.Assessment.StressLevel = domain.StressLevel(stress)
	rec.Assessment.MainGoal = domain.Goal(goal)
	rec.BMIStatus = domain.BMIStatus(bmiStatus)
	rec.Somatotype = domain.Somatotype(somatotype)
	rec.Chronotype = domain.Chronotype(chronotype)
	return rec, nil
}

func (s *SQLiteStore) GetAssessment(id string) (domain.AssessmentRecord, bool, error) {
	rec, err := scanAssessment(s.db.QueryRow(
		`SELECT `+assessmentColumns+` FROM assessments WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return domain.AssessmentRecord{}, false, nil
	}
	if err != nil {
		return domain.AssessmentRecord{}, false, err
	}
	return rec, true, nil
}

func (s *SQLiteStore) DeleteAssessment(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

// ListAssessmentsFiltered returns records matching the optional goal and
// minimum lead-score filters plus the total count, for sales follow-up
// views.
func (s *SQLiteStore) ListAssessmentsFiltered(
	limit, offset int,
	goal string,
	minLeadScore int,
	sortBy string,
) ([]domain.AssessmentRecord, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if strings.TrimSpace(goal) != "" {
		where = append(where, "main_goal = ?")
		args = append(args, goal)
	}
	if minLeadScore > 0 {
		where = append(where, "lead_score >= ?")
		args = append(args, minLeadScore)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	orderSQL := "ORDER BY created_at DESC"
	switch sortBy {
	case "score_asc":
		orderSQL = "ORDER BY lead_score ASC"
	case "score_desc":
		orderSQL = "ORDER BY lead_score DESC"
	}

	countSQL := "SELECT COUNT(*) FROM assessments " + whereSQL
	var total int
	if err := s.db.QueryRow(countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rowsSQL := `SELECT ` + assessmentColumns + ` FROM assessments ` +
		whereSQL + "\n" + orderSQL + "\nLIMIT ? OFFSET ?"
	rowsArgs := append(append([]any{}, args...), limit, offset)

	rows, err := s.db.Query(rowsSQL, rowsArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.AssessmentRecord
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return out, total, nil
}
