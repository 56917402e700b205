package analytics

import (
	"context"
	"math"
	"testing"
)

type fakeStore struct {
	stats       StatsData
	departments []DepartmentCount
	gotLimit    int
}

func (f *fakeStore) StatsData(ctx context.Context) (*StatsData, error) {
	d := f.stats
	return &d, nil
}

func (f *fakeStore) GenderDistribution(ctx context.Context) ([]GenderCount, error) {
	return nil, nil
}

func (f *fakeStore) DepartmentEmployeeCounts(ctx context.Context) ([]DepartmentCount, error) {
	return f.departments, nil
}

func (f *fakeStore) RecentAppraisals(ctx context.Context, limit int) ([]RecentAppraisal, error) {
	f.gotLimit = limit
	return nil, nil
}

func TestStatsAverageScore(t *testing.T) {
	// scores [80, 90, 100] average to exactly 90.
	store := &fakeStore{stats: StatsData{ScoreSum: 270, ScoreCount: 3}}
	svc := NewService(store)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if math.Abs(stats.AverageAppraisalScore-90) > 1e-6 {
		t.Fatalf("expected average 90, got %v", stats.AverageAppraisalScore)
	}
}

func TestStatsAverageScoreZeroAppraisals(t *testing.T) {
	store := &fakeStore{stats: StatsData{TotalEmployees: 5}}
	svc := NewService(store)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.AverageAppraisalScore != 0 {
		t.Fatalf("expected 0 with no appraisals, got %v", stats.AverageAppraisalScore)
	}
	if math.IsNaN(stats.AverageAppraisalScore) {
		t.Fatal("average must never be NaN")
	}
}

func TestDepartmentCountsKeepEmptyDepartments(t *testing.T) {
	store := &fakeStore{departments: []DepartmentCount{
		{DepartmentName: "Computer Science", EmployeeCount: 12},
		{DepartmentName: "Philosophy", EmployeeCount: 0},
	}}
	svc := NewService(store)

	counts, err := svc.DepartmentEmployeeCounts(context.Background())
	if err != nil {
		t.Fatalf("department counts failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected both departments listed, got %d", len(counts))
	}
	if counts[1].DepartmentName != "Philosophy" || counts[1].EmployeeCount != 0 {
		t.Fatalf("zero-job department must appear with count 0, got %+v", counts[1])
	}
}

func TestRecentAppraisalsDefaultLimit(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.RecentAppraisals(context.Background(), 0); err != nil {
		t.Fatalf("recent appraisals failed: %v", err)
	}
	if store.gotLimit != 10 {
		t.Fatalf("expected default limit 10, got %d", store.gotLimit)
	}

	if _, err := svc.RecentAppraisals(context.Background(), 25); err != nil {
		t.Fatalf("recent appraisals failed: %v", err)
	}
	if store.gotLimit != 25 {
		t.Fatalf("expected explicit limit 25, got %d", store.gotLimit)
	}
}
