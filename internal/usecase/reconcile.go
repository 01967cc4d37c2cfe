package usecase

import (
	"context"

	"go.uber.org/zap"

	"fee-console/internal/domain"
)

// EffectiveResult is the displayed outcome of a semester after accounting for
// back subjects cleared since the result was declared. BackCleared marks a
// pass earned through clearance rather than at declaration, so the two can be
// rendered differently.
type EffectiveResult struct {
	Status      domain.ResultStatus
	BackCleared bool
}

func (e EffectiveResult) Label() string {
	if e.BackCleared {
		return "Pass (back cleared)"
	}
	return string(e.Status)
}

// ClearanceKey identifies one back subject across both read-models.
type ClearanceKey struct {
	Semester int
	Code     string
}

// ClearanceIndex is the flattened payment-status projection, keyed by
// (semester, subject code).
type ClearanceIndex map[ClearanceKey]domain.BackSubjectClearance

// BuildClearanceIndex flattens the projection's per-semester clearance
// entries into a lookup. A nil projection yields an empty index, which makes
// every downstream lookup fall back to the embedded copies.
func BuildClearanceIndex(status *domain.PaymentStatus) ClearanceIndex {
	idx := make(ClearanceIndex)
	if status == nil {
		return idx
	}
	for _, sem := range status.SemesterWiseStatus {
		for _, bs := range sem.BackSubjects {
			semester := bs.Semester
			if semester == 0 {
				semester = sem.Semester
			}
			idx[ClearanceKey{Semester: semester, Code: bs.SubjectCode}] = bs
		}
	}
	return idx
}

// Reconciler combines the results read-model with the payment-status
// projection into one consistent per-student view. The combination is
// recomputed on every call and never written back anywhere.
type Reconciler struct {
	results ResultReader
	status  PaymentStatusReader
	log     *zap.Logger
}

func NewReconciler(results ResultReader, status PaymentStatusReader, log *zap.Logger) *Reconciler {
	return &Reconciler{results: results, status: status, log: log}
}

// EffectiveStatus derives the displayed outcome for one semester result.
//
// A raw Pass is final. A raw Fail with no back subjects has no retake path
// and stays Fail. Otherwise each back subject's clearance truth value comes
// from the projection entry at (semester, code) when one exists, else from
// the copy embedded in the result; only if every back subject is cleared does
// the semester flip to Pass, annotated as back-cleared.
//
// The projection may be fresher than the result record, which is exactly why
// it wins. When the two copies disagree this logs the pair instead of hiding
// the inconsistency.
func (r *Reconciler) EffectiveStatus(res domain.SemesterResult, idx ClearanceIndex) EffectiveResult {
	if res.RawStatus == domain.ResultPass {
		return EffectiveResult{Status: domain.ResultPass}
	}
	if len(res.BackSubjects) == 0 {
		return EffectiveResult{Status: domain.ResultFail}
	}
	for _, bs := range res.BackSubjects {
		cleared := bs.IsCleared
		semester := bs.Semester
		if semester == 0 {
			semester = res.Semester
		}
		if entry, ok := idx[ClearanceKey{Semester: semester, Code: bs.Code}]; ok {
			if entry.IsCleared != bs.IsCleared {
				r.log.Warn("clearance flags disagree between result and payment status",
					zap.String("studentId", res.StudentID),
					zap.Int("semester", semester),
					zap.String("subjectCode", bs.Code),
					zap.Bool("resultCopy", bs.IsCleared),
					zap.Bool("projectionCopy", entry.IsCleared),
				)
			}
			cleared = entry.IsCleared
		}
		if !cleared {
			return EffectiveResult{Status: domain.ResultFail}
		}
	}
	return EffectiveResult{Status: domain.ResultPass, BackCleared: true}
}

// MergeLatestBackSubjects overlays freshly fetched back-subject state onto
// previously loaded results. Per same-semester record only the volatile
// fields (IsCleared, FeePaid, Status, ClearedDate, Marks, ExamDate) are
// refreshed, per matching subject code; every other field and every subject
// without a fresh match keeps its existing value. The merge never deletes
// information, so the volatile part of a large record can be refreshed in
// place without re-fetching the rest.
func MergeLatestBackSubjects(existing, latest []domain.SemesterResult) []domain.SemesterResult {
	latestBySem := make(map[int][]domain.BackSubject, len(latest))
	for _, res := range latest {
		latestBySem[res.Semester] = res.BackSubjects
	}

	merged := make([]domain.SemesterResult, len(existing))
	for i, res := range existing {
		fresh, ok := latestBySem[res.Semester]
		if !ok || len(res.BackSubjects) == 0 {
			merged[i] = res
			continue
		}
		freshByCode := make(map[string]domain.BackSubject, len(fresh))
		for _, bs := range fresh {
			freshByCode[bs.Code] = bs
		}

		subjects := make([]domain.BackSubject, len(res.BackSubjects))
		for j, bs := range res.BackSubjects {
			if nb, ok := freshByCode[bs.Code]; ok {
				bs.IsCleared = nb.IsCleared
				bs.FeePaid = nb.FeePaid
				if nb.Status != "" {
					bs.Status = nb.Status
				}
				if nb.ClearedDate != nil {
					bs.ClearedDate = nb.ClearedDate
				}
				if nb.Marks != nil {
					bs.Marks = nb.Marks
				}
				if nb.ExamDate != nil {
					bs.ExamDate = nb.ExamDate
				}
			}
			subjects[j] = bs
		}
		res.BackSubjects = subjects
		merged[i] = res
	}
	return merged
}

// EffectiveSemesterResult pairs a declared result with its derived outcome.
type EffectiveSemesterResult struct {
	domain.SemesterResult
	Effective EffectiveResult
}

// StudentView is the composite per-student view the console renders: every
// declared result with its effective status, plus the fee projection.
type StudentView struct {
	Status  *domain.PaymentStatus
	Results []EffectiveSemesterResult
}

// StudentView fetches both read-models and reconciles them. A failed or empty
// projection fetch degrades to the embedded clearance copies rather than
// failing the view; only a failed results fetch is surfaced, since there is
// nothing to render without it.
func (r *Reconciler) StudentView(ctx context.Context, studentID string) (*StudentView, error) {
	results, err := r.results.ResultsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	status, err := r.status.PaymentStatus(ctx, studentID)
	if err != nil {
		r.log.Warn("payment status unavailable, falling back to embedded clearance flags",
			zap.String("studentId", studentID), zap.Error(err))
		status = nil
	}

	idx := BuildClearanceIndex(status)
	view := &StudentView{Status: status, Results: make([]EffectiveSemesterResult, 0, len(results))}
	for _, res := range results {
		view.Results = append(view.Results, EffectiveSemesterResult{
			SemesterResult: res,
			Effective:      r.EffectiveStatus(res, idx),
		})
	}
	return view, nil
}
