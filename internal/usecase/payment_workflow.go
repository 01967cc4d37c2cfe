package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"fee-console/internal/domain"
)

// Phase is the state of one back-fee payment workflow instance.
type Phase string

const (
	PhaseIdle             Phase = "Idle"
	PhaseStudentSelected  Phase = "StudentSelected"
	PhaseSubjectsSelected Phase = "SubjectsSelected"
	PhaseSubmitting       Phase = "Submitting"
	PhaseSettled          Phase = "Settled"
)

// ErrAllPaymentsFailed is returned by Submit only when every selected
// subject's payment failed. Partial failure is reported per item, not as an
// overall error.
var ErrAllPaymentsFailed = errors.New("all payment requests failed")

// PaymentItemOutcome is one subject's result in the itemized report.
type PaymentItemOutcome struct {
	Semester    int
	SubjectCode string
	SubjectName string
	Amount      float64
	ReceiptNo   string
	Err         error
}

func (o PaymentItemOutcome) Succeeded() bool { return o.Err == nil }

// PaymentReport is the itemized success/failure summary of one submission.
type PaymentReport struct {
	Items     []PaymentItemOutcome
	Succeeded int
	Failed    int
}

// BackFeeWorkflow drives the multi-subject back-fee payment flow:
// select a student, toggle subjects on and off, submit one payment request
// per selected subject, and report each item's outcome. One value per screen
// instance; it is not safe for concurrent use and does not need to be.
type BackFeeWorkflow struct {
	status   PaymentStatusReader
	payments PaymentSubmitter
	log      *zap.Logger

	phase     Phase
	studentID string
	pending   []domain.PendingPayment
	selected  map[string]domain.PendingPayment
}

func NewBackFeeWorkflow(status PaymentStatusReader, payments PaymentSubmitter, log *zap.Logger) *BackFeeWorkflow {
	return &BackFeeWorkflow{
		status:   status,
		payments: payments,
		log:      log,
		phase:    PhaseIdle,
		selected: make(map[string]domain.PendingPayment),
	}
}

func (w *BackFeeWorkflow) Phase() Phase { return w.phase }

func (w *BackFeeWorkflow) StudentID() string { return w.studentID }

// Pending lists the student's outstanding back-subject obligations, as
// pre-filled by the server projection.
func (w *BackFeeWorkflow) Pending() []domain.PendingPayment { return w.pending }

func selectionKey(semester int, code string) string {
	return fmt.Sprintf("%d_%s", semester, code)
}

// SelectStudent fetches the student's pending-payment projection and keeps
// only the back-subject obligations. Re-selecting clears any prior selection.
func (w *BackFeeWorkflow) SelectStudent(ctx context.Context, studentID string) error {
	if studentID == "" {
		return domain.NewValidationError(errors.New("no student selected"),
			domain.FieldError{Field: "studentId", Error: "required"})
	}

	ps, err := w.status.PaymentStatus(ctx, studentID)
	if err != nil {
		return errors.Wrapf(err, "load pending payments for %s", studentID)
	}

	w.studentID = studentID
	w.pending = w.pending[:0]
	for _, pp := range ps.PendingPayments {
		if pp.Type == domain.PendingBackSubjectFee {
			w.pending = append(w.pending, pp)
		}
	}
	w.selected = make(map[string]domain.PendingPayment)
	w.phase = PhaseStudentSelected
	return nil
}

// Toggle flips one subject's selection. Toggling the same (semester, code)
// twice restores the original state. Unknown subjects are rejected so the
// derived total can never drift from the server's per-subject fees.
func (w *BackFeeWorkflow) Toggle(semester int, subjectCode string) error {
	if w.phase == PhaseIdle || w.phase == PhaseSubmitting {
		return errors.Errorf("cannot toggle subjects in phase %s", w.phase)
	}

	key := selectionKey(semester, subjectCode)
	if _, ok := w.selected[key]; ok {
		delete(w.selected, key)
	} else {
		item, ok := w.pendingItem(semester, subjectCode)
		if !ok {
			return errors.Errorf("no pending back subject %s in semester %d", subjectCode, semester)
		}
		w.selected[key] = item
	}

	if len(w.selected) > 0 {
		w.phase = PhaseSubjectsSelected
	} else {
		w.phase = PhaseStudentSelected
	}
	return nil
}

func (w *BackFeeWorkflow) pendingItem(semester int, subjectCode string) (domain.PendingPayment, bool) {
	for _, pp := range w.pending {
		if pp.Semester == semester && pp.SubjectCode == subjectCode {
			return pp, true
		}
	}
	return domain.PendingPayment{}, false
}

// Selected returns the current selection in a stable order.
func (w *BackFeeWorkflow) Selected() []domain.PendingPayment {
	items := make([]domain.PendingPayment, 0, len(w.selected))
	for _, pp := range w.selected {
		items = append(items, pp)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Semester != items[j].Semester {
			return items[i].Semester < items[j].Semester
		}
		return items[i].SubjectCode < items[j].SubjectCode
	})
	return items
}

// Total is the derived amount: the sum of the selected subjects' fixed fees.
// It is recomputed from the selection on every call and cannot be set
// independently, so amount and selection can never disagree.
func (w *BackFeeWorkflow) Total() float64 {
	var total float64
	for _, pp := range w.selected {
		total += pp.Amount
	}
	return total
}

// Submit issues one payment request per selected subject. Each request fails
// independently; a failed item never aborts its siblings. On return the
// subject selection is reset but the student stays selected, matching the
// screen's partial-reset behavior. The error is non-nil only when every item
// failed.
func (w *BackFeeWorkflow) Submit(ctx context.Context, paymentMethod, remarks string) (*PaymentReport, error) {
	if w.studentID == "" {
		return nil, domain.NewValidationError(errors.New("no student selected"),
			domain.FieldError{Field: "studentId", Error: "required"})
	}
	if len(w.selected) == 0 {
		return nil, domain.NewValidationError(errors.New("no subjects selected"),
			domain.FieldError{Field: "subjects", Error: "min"})
	}
	if paymentMethod == "" {
		return nil, domain.NewValidationError(errors.New("payment method is required"),
			domain.FieldError{Field: "paymentMethod", Error: "required"})
	}

	w.phase = PhaseSubmitting
	items := w.Selected()
	report := &PaymentReport{Items: make([]PaymentItemOutcome, 0, len(items))}

	for _, item := range items {
		outcome := PaymentItemOutcome{
			Semester:    item.Semester,
			SubjectCode: item.SubjectCode,
			SubjectName: item.SubjectName,
			Amount:      item.Amount,
		}

		payment, err := w.payments.PayBackSubjectFee(ctx, w.studentID, domain.PayBackSubjectFeeRequest{
			Semester:      item.Semester,
			SubjectCode:   item.SubjectCode,
			PaymentAmount: item.Amount,
			PaymentMethod: paymentMethod,
			Remarks:       remarks,
		})
		if err != nil {
			w.log.Warn("back-subject payment failed",
				zap.String("studentId", w.studentID),
				zap.Int("semester", item.Semester),
				zap.String("subjectCode", item.SubjectCode),
				zap.Error(err),
			)
			outcome.Err = err
			report.Failed++
		} else {
			outcome.ReceiptNo = payment.ReceiptNo
			report.Succeeded++
		}
		report.Items = append(report.Items, outcome)
	}

	// Keep the student, drop the selection.
	w.selected = make(map[string]domain.PendingPayment)
	w.phase = PhaseSettled

	if report.Succeeded == 0 {
		return report, ErrAllPaymentsFailed
	}
	return report, nil
}
