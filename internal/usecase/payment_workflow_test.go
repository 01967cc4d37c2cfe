package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fee-console/internal/domain"
	"fee-console/internal/usecase"
	mock_usecase "fee-console/internal/usecase/mocks"
)

func pendingProjection() *domain.PaymentStatus {
	return &domain.PaymentStatus{
		PendingPayments: []domain.PendingPayment{
			{Description: "Back subject fee - A203", Amount: 500, Semester: 3, Priority: domain.PriorityHigh, Type: domain.PendingBackSubjectFee, SubjectCode: "A203", SubjectName: "Data Structures"},
			{Description: "Back subject fee - A204", Amount: 500, Semester: 3, Priority: domain.PriorityHigh, Type: domain.PendingBackSubjectFee, SubjectCode: "A204", SubjectName: "Operating Systems"},
			{Description: "Back subject fee - A310", Amount: 750, Semester: 4, Priority: domain.PriorityMedium, Type: domain.PendingBackSubjectFee, SubjectCode: "A310", SubjectName: "DBMS"},
			{Description: "Semester 5 course fee", Amount: 15000, Semester: 5, Priority: domain.PriorityHigh, Type: domain.PendingCourseFee},
		},
	}
}

func selectedWorkflow(t *testing.T, ctrl *gomock.Controller, payments usecase.PaymentSubmitter) *usecase.BackFeeWorkflow {
	t.Helper()
	status := mock_usecase.NewMockPaymentStatusReader(ctrl)
	status.EXPECT().PaymentStatus(gomock.Any(), "STU001").Return(pendingProjection(), nil)

	w := usecase.NewBackFeeWorkflow(status, payments, zap.NewNop())
	require.NoError(t, w.SelectStudent(context.Background(), "STU001"))
	return w
}

func TestBackFeeWorkflow_SelectStudent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := selectedWorkflow(t, ctrl, nil)

	assert.Equal(t, usecase.PhaseStudentSelected, w.Phase())
	assert.Equal(t, "STU001", w.StudentID())
	// course-fee obligations are filtered out of the back-fee flow
	require.Len(t, w.Pending(), 3)
	for _, pp := range w.Pending() {
		assert.Equal(t, domain.PendingBackSubjectFee, pp.Type)
	}
	assert.Zero(t, w.Total())
}

func TestBackFeeWorkflow_ToggleIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := selectedWorkflow(t, ctrl, nil)

	require.NoError(t, w.Toggle(3, "A203"))
	assert.Equal(t, usecase.PhaseSubjectsSelected, w.Phase())
	assert.Equal(t, 500.0, w.Total())

	require.NoError(t, w.Toggle(3, "A204"))
	assert.Equal(t, 1000.0, w.Total())

	// same key toggled again deselects
	require.NoError(t, w.Toggle(3, "A204"))
	assert.Equal(t, 500.0, w.Total())
	require.NoError(t, w.Toggle(3, "A203"))

	assert.Empty(t, w.Selected())
	assert.Zero(t, w.Total())
	assert.Equal(t, usecase.PhaseStudentSelected, w.Phase())
}

func TestBackFeeWorkflow_ToggleRejectsUnknownSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := selectedWorkflow(t, ctrl, nil)

	assert.Error(t, w.Toggle(3, "NOPE"))
	assert.Zero(t, w.Total())
}

func TestBackFeeWorkflow_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("partial failure is reported per item and does not abort siblings", func(t *testing.T) {
		payments := mock_usecase.NewMockPaymentSubmitter(ctrl)
		w := selectedWorkflow(t, ctrl, payments)

		require.NoError(t, w.Toggle(3, "A203"))
		require.NoError(t, w.Toggle(3, "A204"))
		require.NoError(t, w.Toggle(4, "A310"))

		payments.EXPECT().
			PayBackSubjectFee(gomock.Any(), "STU001", matchSubject(3, "A203")).
			Return(&domain.Payment{ReceiptNo: "RCP-1"}, nil)
		payments.EXPECT().
			PayBackSubjectFee(gomock.Any(), "STU001", matchSubject(3, "A204")).
			Return(nil, errors.New("payment gateway timeout"))
		payments.EXPECT().
			PayBackSubjectFee(gomock.Any(), "STU001", matchSubject(4, "A310")).
			Return(&domain.Payment{ReceiptNo: "RCP-2"}, nil)

		report, err := w.Submit(context.Background(), "Cash", "")
		require.NoError(t, err)
		require.Len(t, report.Items, 3)
		assert.Equal(t, 2, report.Succeeded)
		assert.Equal(t, 1, report.Failed)

		var failed []string
		for _, item := range report.Items {
			if !item.Succeeded() {
				failed = append(failed, item.SubjectCode)
			}
		}
		assert.Equal(t, []string{"A204"}, failed)

		// selection resets, student selection survives
		assert.Equal(t, usecase.PhaseSettled, w.Phase())
		assert.Equal(t, "STU001", w.StudentID())
		assert.Empty(t, w.Selected())
		assert.Zero(t, w.Total())
	})

	t.Run("total failure returns the sentinel with the report", func(t *testing.T) {
		payments := mock_usecase.NewMockPaymentSubmitter(ctrl)
		w := selectedWorkflow(t, ctrl, payments)

		require.NoError(t, w.Toggle(3, "A203"))
		payments.EXPECT().
			PayBackSubjectFee(gomock.Any(), "STU001", gomock.Any()).
			Return(nil, errors.New("down"))

		report, err := w.Submit(context.Background(), "Cash", "")
		assert.ErrorIs(t, err, usecase.ErrAllPaymentsFailed)
		require.NotNil(t, report)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("empty selection is a validation failure, nothing submitted", func(t *testing.T) {
		w := selectedWorkflow(t, ctrl, mock_usecase.NewMockPaymentSubmitter(ctrl))

		report, err := w.Submit(context.Background(), "Cash", "")
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Nil(t, report)
	})

	t.Run("missing payment method is a validation failure", func(t *testing.T) {
		w := selectedWorkflow(t, ctrl, mock_usecase.NewMockPaymentSubmitter(ctrl))
		require.NoError(t, w.Toggle(3, "A203"))

		_, err := w.Submit(context.Background(), "", "")
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

// matchSubject matches a PayBackSubjectFeeRequest by (semester, subjectCode).
type subjectMatcher struct {
	semester int
	code     string
}

func matchSubject(semester int, code string) gomock.Matcher {
	return subjectMatcher{semester: semester, code: code}
}

func (m subjectMatcher) Matches(x interface{}) bool {
	req, ok := x.(domain.PayBackSubjectFeeRequest)
	return ok && req.Semester == m.semester && req.SubjectCode == m.code
}

func (m subjectMatcher) String() string {
	return "payment request for the selected subject"
}
