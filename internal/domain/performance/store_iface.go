package performance

import (
	"context"
	"time"
)

type StoreAPI interface {
	ListCycles(ctx context.Context) ([]Cycle, error)
	CreateCycle(ctx context.Context, in CycleInput) (int64, error)

	ListAppraisals(ctx context.Context) ([]AppraisalRow, error)
	GetAppraisal(ctx context.Context, id int64) (*Appraisal, error)
	AppraisalExists(ctx context.Context, assignmentID, cycleID int64) (bool, error)
	AssignmentExists(ctx context.Context, assignmentID int64) (bool, error)
	CycleExists(ctx context.Context, cycleID int64) (bool, error)
	CreateAppraisal(ctx context.Context, in AppraisalInput, date time.Time) (int64, error)

	GetKPI(ctx context.Context, kpiID int64) (*KPIRef, error)
	UpsertKPIScore(ctx context.Context, score KPIScore) (int64, error)
	ListKPIScores(ctx context.Context, cycleID int64, employeeID *int64) ([]KPIScoreRow, error)

	ListAppeals(ctx context.Context) ([]AppealRow, error)
	GetAppeal(ctx context.Context, id int64) (*Appeal, error)
	// HasResolvedAppeal reports whether any appeal on the appraisal has
	// reached the Resolved state.
	HasResolvedAppeal(ctx context.Context, appraisalID int64) (bool, error)
	CreateAppeal(ctx context.Context, appraisalID int64, reason *string, date time.Time) (int64, error)
	UpdateAppealStatus(ctx context.Context, id int64, status string, resolution *string) error
	// ResolveWithCorrection resolves the appeal and writes the corrected
	// overall score onto the appraisal in one transaction.
	ResolveWithCorrection(ctx context.Context, appealID int64, resolution string, appraisalID int64, correctedScore float64) error
}
