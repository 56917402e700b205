package performance

import (
	"context"
	"strings"
	"time"

	"workforce/internal/apperr"
)

// ResolutionPolicy selects what an accepted appeal does to the contested
// appraisal's score.
type ResolutionPolicy string

const (
	// ResolutionPolicyCorrect writes the corrected overall score onto the
	// appraisal in the same transaction that resolves the appeal.
	ResolutionPolicyCorrect ResolutionPolicy = "correct"
	// ResolutionPolicyManual resolves the appeal without touching scores;
	// remediation happens through an explicit follow-up appraisal.
	ResolutionPolicyManual ResolutionPolicy = "manual"
)

type Service struct {
	store  StoreAPI
	score  ScoreFunc
	policy ResolutionPolicy
	now    func() time.Time
}

type Option func(*Service)

// WithScoreFunc replaces the default linear-capped scoring function.
func WithScoreFunc(fn ScoreFunc) Option {
	return func(s *Service) { s.score = fn }
}

func WithResolutionPolicy(policy ResolutionPolicy) Option {
	return func(s *Service) { s.policy = policy }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store StoreAPI, opts ...Option) *Service {
	s := &Service{
		store:  store,
		score:  LinearCapped,
		policy: ResolutionPolicyCorrect,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListCycles(ctx context.Context) ([]Cycle, error) {
	return s.store.ListCycles(ctx)
}

func (s *Service) CreateCycle(ctx context.Context, in CycleInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, apperr.BadRequest("cycle name is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return 0, apperr.BadRequest("cycle start and end dates are required")
	}
	if in.EndDate.Before(in.StartDate) {
		return 0, apperr.BadRequest("cycle end date cannot precede start date")
	}
	return s.store.CreateCycle(ctx, in)
}

func (s *Service) ListAppraisals(ctx context.Context) ([]AppraisalRow, error) {
	return s.store.ListAppraisals(ctx)
}

// CreateAppraisal records exactly one appraisal per (assignment, cycle),
// dated now. The uniqueness rule is enforced here, ahead of the store.
func (s *Service) CreateAppraisal(ctx context.Context, in AppraisalInput) (int64, error) {
	if in.OverallScore < 0 || in.OverallScore > 100 {
		return 0, apperr.BadRequest("overall score must be between 0 and 100")
	}
	assignmentOK, err := s.store.AssignmentExists(ctx, in.AssignmentID)
	if err != nil {
		return 0, err
	}
	if !assignmentOK {
		return 0, apperr.NotFound("assignment not found")
	}
	cycleOK, err := s.store.CycleExists(ctx, in.CycleID)
	if err != nil {
		return 0, err
	}
	if !cycleOK {
		return 0, apperr.NotFound("performance cycle not found")
	}
	exists, err := s.store.AppraisalExists(ctx, in.AssignmentID, in.CycleID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperr.Conflict("appraisal already exists for this assignment and cycle")
	}
	return s.store.CreateAppraisal(ctx, in, s.now())
}

// ScoreKPI derives employee_score and weighted_score for one observation
// and upserts it. Re-submitting the same actual value yields identical
// stored scores.
func (s *Service) ScoreKPI(ctx context.Context, in KPIScoreInput) (*KPIScore, error) {
	if in.ActualValue < 0 {
		return nil, apperr.BadRequest("actual value cannot be negative")
	}
	assignmentOK, err := s.store.AssignmentExists(ctx, in.AssignmentID)
	if err != nil {
		return nil, err
	}
	if !assignmentOK {
		return nil, apperr.NotFound("assignment not found")
	}
	kpi, err := s.store.GetKPI(ctx, in.KPIID)
	if err != nil {
		return nil, err
	}
	cycleOK, err := s.store.CycleExists(ctx, in.CycleID)
	if err != nil {
		return nil, err
	}
	if !cycleOK {
		return nil, apperr.NotFound("performance cycle not found")
	}

	target := kpi.TargetValue
	if in.TargetValue > 0 {
		target = in.TargetValue
	}
	employeeScore := s.score(target, in.ActualValue)
	if employeeScore < 0 || employeeScore > 100 {
		return nil, apperr.BadRequest("scoring function produced a score outside 0-100")
	}

	score := KPIScore{
		AssignmentID:  in.AssignmentID,
		KPIID:         in.KPIID,
		CycleID:       in.CycleID,
		TargetValue:   target,
		ActualValue:   in.ActualValue,
		EmployeeScore: employeeScore,
		WeightedScore: Weighted(employeeScore, kpi.Weight),
		ReviewDate:    s.now(),
	}
	id, err := s.store.UpsertKPIScore(ctx, score)
	if err != nil {
		return nil, err
	}
	score.ID = id
	return &score, nil
}

func (s *Service) KPIScoresForCycle(ctx context.Context, cycleID int64, employeeID *int64) ([]KPIScoreRow, error) {
	ok, err := s.store.CycleExists(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("performance cycle not found")
	}
	return s.store.ListKPIScores(ctx, cycleID, employeeID)
}

func (s *Service) ListAppeals(ctx context.Context) ([]AppealRow, error) {
	return s.store.ListAppeals(ctx)
}

// SubmitAppeal opens an appeal against an appraisal. A resolved appeal
// settles the appraisal for good: its score can no longer change, so a
// further appeal would be pointless and is refused.
func (s *Service) SubmitAppeal(ctx context.Context, appraisalID int64, reason *string) (int64, error) {
	if _, err := s.store.GetAppraisal(ctx, appraisalID); err != nil {
		return 0, err
	}
	settled, err := s.store.HasResolvedAppeal(ctx, appraisalID)
	if err != nil {
		return 0, err
	}
	if settled {
		return 0, apperr.Conflict("appraisal already has a resolved appeal; record a new appraisal instead")
	}
	return s.store.CreateAppeal(ctx, appraisalID, reason, s.now())
}

// AppealDecision moves an appeal through its state machine. A corrected
// score is required when accepting under the correct policy and forbidden
// otherwise.
type AppealDecision struct {
	Status         string   `json:"status"`
	Resolution     *string  `json:"resolution"`
	CorrectedScore *float64 `json:"correctedScore"`
}

func (s *Service) DecideAppeal(ctx context.Context, appealID int64, decision AppealDecision) error {
	if !validAppealStatus(decision.Status) {
		return apperr.Newf(apperr.KindBadRequest, "unknown appeal status %q", decision.Status)
	}
	appeal, err := s.store.GetAppeal(ctx, appealID)
	if err != nil {
		return err
	}
	if !canTransition(appeal.Status, decision.Status) {
		return apperr.Newf(apperr.KindConflict, "appeal cannot move from %q to %q", appeal.Status, decision.Status)
	}

	if decision.Status != AppealResolved {
		if decision.Resolution != nil || decision.CorrectedScore != nil {
			return apperr.BadRequest("resolution details are only valid when resolving")
		}
		return s.store.UpdateAppealStatus(ctx, appealID, decision.Status, nil)
	}

	if decision.Resolution == nil || !validResolution(*decision.Resolution) {
		return apperr.Newf(apperr.KindBadRequest, "resolution must be %q or %q", ResolutionAccepted, ResolutionRejected)
	}
	accepted := *decision.Resolution == ResolutionAccepted

	if !accepted || s.policy == ResolutionPolicyManual {
		if decision.CorrectedScore != nil {
			return apperr.BadRequest("corrected score is not accepted under the current policy")
		}
		return s.store.UpdateAppealStatus(ctx, appealID, AppealResolved, decision.Resolution)
	}

	if decision.CorrectedScore == nil {
		return apperr.BadRequest("corrected score is required when accepting an appeal")
	}
	if *decision.CorrectedScore < 0 || *decision.CorrectedScore > 100 {
		return apperr.BadRequest("corrected score must be between 0 and 100")
	}
	// The current appeal is not resolved yet, so a hit here means another
	// appeal already settled the score.
	settled, err := s.store.HasResolvedAppeal(ctx, appeal.AppraisalID)
	if err != nil {
		return err
	}
	if settled {
		return apperr.Conflict("appraisal score is settled by a previously resolved appeal")
	}
	return s.store.ResolveWithCorrection(ctx, appealID, *decision.Resolution, appeal.AppraisalID, *decision.CorrectedScore)
}
