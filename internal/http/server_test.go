package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vitaclub/wellness-engine/internal/catalog"
	"github.com/vitaclub/wellness-engine/internal/domain"
	"github.com/vitaclub/wellness-engine/internal/engine"
	"github.com/vitaclub/wellness-engine/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	eng := engine.New(catalog.Default, engine.DefaultWeights())
	srv := NewServer(eng, &SQLiteAssessmentsRepo{Store: store}, nil)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestPOSTPlan(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	body := domain.AssessmentData{
		Gender:      domain.GenderMale,
		Age:         28,
		Height:      180,
		Weight:      95,
		WristSize:   21,
		WakeTime:    "06:00",
		StressLevel: domain.StressHigh,
		MainGoal:    domain.GoalWeightLoss,
	}
	b, _ := json.Marshal(body)

	resp, err := http.Post(ts.URL+"/plan?hour=10", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST /plan: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /plan status=%d", resp.StatusCode)
	}

	var got PlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Plan.Somatotype != domain.Endomorph {
		t.Fatalf("somatotype=%s want=endomorph", got.Plan.Somatotype)
	}
	if got.Plan.Chronotype != domain.Lion {
		t.Fatalf("chronotype=%s want=lion", got.Plan.Chronotype)
	}
	if got.Plan.BMIStatus != domain.BMIOverweight {
		t.Fatalf("bmi status=%s want=Overweight", got.Plan.BMIStatus)
	}
	if len(got.Dashboard.Timeline) != 7 {
		t.Fatalf("timeline length=%d want=7", len(got.Dashboard.Timeline))
	}
}

func TestPOSTPlanInvalidJSON(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/plan", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("POST /plan: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", resp.StatusCode)
	}
}

func TestGETMenu(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/menu?limit=5&offset=0")
	if err != nil {
		t.Fatalf("GET /menu: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /menu status=%d", resp.StatusCode)
	}

	var got MenuListResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != len(catalog.Default) {
		t.Fatalf("total=%d want=%d", got.Total, len(catalog.Default))
	}
	if len(got.Items) != 5 {
		t.Fatalf("items=%d want=5", len(got.Items))
	}

	itemResp, err := http.Get(ts.URL + "/menu/" + got.Items[0].ID)
	if err != nil {
		t.Fatalf("GET /menu/{id}: %v", err)
	}
	defer itemResp.Body.Close()
	if itemResp.StatusCode != http.StatusOK {
		t.Fatalf("GET /menu/{id} status=%d", itemResp.StatusCode)
	}
}

func TestAssessments_FiltersAndSort(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	post := func(a domain.AssessmentData) domain.AssessmentRecord {
		b, _ := json.Marshal(a)
		resp, err := http.Post(ts.URL+"/assessments", "application/json", bytes.NewReader(b))
		if err != nil {
			t.Fatalf("POST /assessments: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("POST /assessments status=%d", resp.StatusCode)
		}
		var rec domain.AssessmentRecord
		if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return rec
	}

	// Normal-weight detox lead: base score 50.
	post(domain.AssessmentData{Gender: domain.GenderFemale, Age: 25, Height: 170, Weight: 62, WristSize: 16, WakeTime: "07:30", MainGoal: domain.GoalHealthDetox})
	// Obese weight-loss lead in a prime district: clamps at 100.
	hot := post(domain.AssessmentData{Gender: domain.GenderMale, Age: 45, Height: 175, Weight: 110, WristSize: 20, WakeTime: "07:00", MainGoal: domain.GoalWeightLoss, Neighborhood: "Vakil Abad"})
	// Overweight weight-loss lead: 75.
	post(domain.AssessmentData{Gender: domain.GenderMale, Age: 28, Height: 180, Weight: 95, WristSize: 21, WakeTime: "06:00", MainGoal: domain.GoalWeightLoss})

	if hot.LeadScore != 100 {
		t.Fatalf("hot lead score=%d want=100", hot.LeadScore)
	}

	resp, err := http.Get(ts.URL + "/assessments?goal=weight_loss&min_score=80&sort=score_desc&limit=20&offset=0")
	if err != nil {
		t.Fatalf("GET /assessments: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /assessments status=%d", resp.StatusCode)
	}

	var got AssessmentsListResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 1 {
		t.Fatalf("total=%d want=1", got.Total)
	}
	if len(got.Items) != 1 || got.Items[0].ID != hot.ID {
		t.Fatalf("filtered list should contain only the clamped lead")
	}

	// Lookup and delete round trip.
	getResp, err := http.Get(ts.URL + "/assessments/" + hot.ID)
	if err != nil {
		t.Fatalf("GET /assessments/{id}: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("GET /assessments/{id} status=%d", getResp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/assessments/"+hot.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /assessments/{id}: %v", err)
	}
	defer delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Fatalf("DELETE status=%d", delResp.StatusCode)
	}

	missing, err := http.Get(ts.URL + "/assessments/" + hot.ID)
	if err != nil {
		t.Fatalf("GET after delete: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("status after delete=%d want=404", missing.StatusCode)
	}
}
