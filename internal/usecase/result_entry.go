package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"fee-console/internal/domain"
)

// Representative marks auto-filled when an operator picks an outcome in the
// bulk form. Conveniences only; the operator can still type real marks.
const (
	AutoPassMarks = 40
	AutoFailMarks = 20
)

// ResultEntry drives both back-subject result-update flows: the one-subject
// update and the batched bulk update.
type ResultEntry struct {
	reconciler *Reconciler
	status     PaymentStatusReader
	writer     ResultWriter
	log        *zap.Logger
}

func NewResultEntry(reconciler *Reconciler, status PaymentStatusReader, writer ResultWriter, log *zap.Logger) *ResultEntry {
	return &ResultEntry{reconciler: reconciler, status: status, writer: writer, log: log}
}

// UpdateSingle records one back subject's exam outcome, then re-fetches and
// returns the student's composite view so the caller can replace its state
// wholesale instead of trusting local bookkeeping.
func (s *ResultEntry) UpdateSingle(ctx context.Context, studentID string, req domain.UpdateResultRequest) (*StudentView, error) {
	if studentID == "" {
		return nil, domain.NewValidationError(errors.New("no student selected"),
			domain.FieldError{Field: "studentId", Error: "required"})
	}
	if err := domain.Validate(req); err != nil {
		return nil, err
	}

	if err := s.writer.UpdateBackSubjectResult(ctx, studentID, req); err != nil {
		return nil, err
	}
	s.log.Info("back-subject result updated",
		zap.String("studentId", studentID),
		zap.Int("semester", req.Semester),
		zap.String("subjectCode", req.SubjectCode),
		zap.Bool("isCleared", req.IsCleared),
	)

	view, err := s.reconciler.StudentView(ctx, studentID)
	if err != nil {
		// The write went through; the caller keeps stale state and can
		// refresh manually.
		s.log.Warn("refresh after result update failed", zap.String("studentId", studentID), zap.Error(err))
		return nil, errors.Wrap(err, "result saved but refresh failed")
	}
	return view, nil
}

// BulkRow is one pending back subject in the bulk entry form, with the
// operator's chosen outcome. An empty Outcome means the row is skipped.
type BulkRow struct {
	Subject domain.BackSubject
	Outcome domain.ResultStatus
	Marks   float64
}

// BulkForm collects outcomes for every pending back subject of one student
// and submits the chosen ones as a single batched request.
type BulkForm struct {
	entry     *ResultEntry
	studentID string
	rows      []BulkRow
}

// LoadPending starts a bulk form from the student's pending back subjects.
func (s *ResultEntry) LoadPending(ctx context.Context, studentID string) (*BulkForm, error) {
	if studentID == "" {
		return nil, domain.NewValidationError(errors.New("no student selected"),
			domain.FieldError{Field: "studentId", Error: "required"})
	}
	pending, err := s.status.PendingBackSubjects(ctx, studentID)
	if err != nil {
		return nil, errors.Wrapf(err, "load pending back subjects for %s", studentID)
	}

	form := &BulkForm{entry: s, studentID: studentID, rows: make([]BulkRow, len(pending))}
	for i, bs := range pending {
		form.rows[i] = BulkRow{Subject: bs}
	}
	return form, nil
}

func (f *BulkForm) Rows() []BulkRow { return f.rows }

func (f *BulkForm) findRow(semester int, subjectCode string) (*BulkRow, error) {
	for i := range f.rows {
		if f.rows[i].Subject.Semester == semester && f.rows[i].Subject.Code == subjectCode {
			return &f.rows[i], nil
		}
	}
	return nil, errors.Errorf("no pending back subject %s in semester %d", subjectCode, semester)
}

// MarkPass selects the Pass outcome and auto-fills a representative passing
// mark unless the operator already entered one.
func (f *BulkForm) MarkPass(semester int, subjectCode string) error {
	row, err := f.findRow(semester, subjectCode)
	if err != nil {
		return err
	}
	row.Outcome = domain.ResultPass
	if row.Marks == 0 {
		row.Marks = AutoPassMarks
	}
	return nil
}

// MarkFail selects the Fail outcome and auto-fills a representative failing
// mark unless the operator already entered one.
func (f *BulkForm) MarkFail(semester int, subjectCode string) error {
	row, err := f.findRow(semester, subjectCode)
	if err != nil {
		return err
	}
	row.Outcome = domain.ResultFail
	if row.Marks == 0 {
		row.Marks = AutoFailMarks
	}
	return nil
}

// SetMarks overrides a row's marks; the auto-filled value is only a default.
func (f *BulkForm) SetMarks(semester int, subjectCode string, marks float64) error {
	row, err := f.findRow(semester, subjectCode)
	if err != nil {
		return err
	}
	row.Marks = marks
	return nil
}

// Submit batches every row with a chosen outcome into one request and returns
// the server's cleared/failed tally. Rows without an outcome are left alone.
// Validation failures never reach the network.
func (f *BulkForm) Submit(ctx context.Context, examDate time.Time, remarks string) (*domain.BulkUpdateOutcome, error) {
	if examDate.IsZero() {
		return nil, domain.NewValidationError(errors.New("exam date is required"),
			domain.FieldError{Field: "examDate", Error: "required"})
	}

	results := make([]domain.BulkResultEntry, 0, len(f.rows))
	for _, row := range f.rows {
		if row.Outcome == "" {
			continue
		}
		results = append(results, domain.BulkResultEntry{
			Semester:    row.Subject.Semester,
			SubjectCode: row.Subject.Code,
			Marks:       row.Marks,
			IsCleared:   row.Outcome == domain.ResultPass,
		})
	}
	if len(results) == 0 {
		return nil, domain.NewValidationError(errors.New("no subject has a selected result"),
			domain.FieldError{Field: "results", Error: "min"})
	}

	outcome, err := f.entry.writer.BulkUpdateBackSubjects(ctx, f.studentID, domain.BulkUpdateRequest{
		ExamDate: examDate,
		Results:  results,
		Remarks:  remarks,
	})
	if err != nil {
		return nil, err
	}
	f.entry.log.Info("bulk result update settled",
		zap.String("studentId", f.studentID),
		zap.Int("cleared", outcome.Cleared),
		zap.Int("failed", outcome.Failed),
	)
	return outcome, nil
}
