package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fee-console/internal/domain"
	"fee-console/internal/usecase"
	mock_usecase "fee-console/internal/usecase/mocks"
)

func floatPtr(f float64) *float64 { return &f }

func clearanceIndex(entries ...domain.BackSubjectClearance) usecase.ClearanceIndex {
	return usecase.BuildClearanceIndex(&domain.PaymentStatus{
		SemesterWiseStatus: []domain.SemesterStatus{{Semester: 3, BackSubjects: entries}},
	})
}

func TestReconciler_EffectiveStatus(t *testing.T) {
	rec := usecase.NewReconciler(nil, nil, zap.NewNop())

	tests := []struct {
		name   string
		result domain.SemesterResult
		idx    usecase.ClearanceIndex
		want   usecase.EffectiveResult
	}{
		{
			name: "raw pass is final regardless of back subjects",
			result: domain.SemesterResult{
				Semester:  3,
				RawStatus: domain.ResultPass,
				BackSubjects: []domain.BackSubject{
					{Code: "A203", Semester: 3, IsCleared: false},
				},
			},
			idx:  clearanceIndex(),
			want: usecase.EffectiveResult{Status: domain.ResultPass},
		},
		{
			name: "fail with no back subjects has no retake path",
			result: domain.SemesterResult{
				Semester:  3,
				RawStatus: domain.ResultFail,
			},
			idx:  clearanceIndex(),
			want: usecase.EffectiveResult{Status: domain.ResultFail},
		},
		{
			name: "all subjects cleared in projection flips to back-cleared pass",
			result: domain.SemesterResult{
				Semester:  3,
				RawStatus: domain.ResultFail,
				BackSubjects: []domain.BackSubject{
					{Code: "A203", Semester: 3, IsCleared: false},
					{Code: "A204", Semester: 3, IsCleared: false},
				},
			},
			idx: clearanceIndex(
				domain.BackSubjectClearance{Semester: 3, SubjectCode: "A203", IsCleared: true},
				domain.BackSubjectClearance{Semester: 3, SubjectCode: "A204", IsCleared: true},
			),
			want: usecase.EffectiveResult{Status: domain.ResultPass, BackCleared: true},
		},
		{
			name: "one uncleared subject keeps the fail",
			result: domain.SemesterResult{
				Semester:  3,
				RawStatus: domain.ResultFail,
				BackSubjects: []domain.BackSubject{
					{Code: "A203", Semester: 3, IsCleared: false},
					{Code: "A204", Semester: 3, IsCleared: false},
				},
			},
			idx: clearanceIndex(
				domain.BackSubjectClearance{Semester: 3, SubjectCode: "A203", IsCleared: true},
				domain.BackSubjectClearance{Semester: 3, SubjectCode: "A204", IsCleared: false},
			),
			want: usecase.EffectiveResult{Status: domain.ResultFail},
		},
		{
			name: "embedded copy is the fallback when projection has no entry",
			result: domain.SemesterResult{
				Semester:  3,
				RawStatus: domain.ResultFail,
				BackSubjects: []domain.BackSubject{
					{Code: "A203", Semester: 3, IsCleared: true},
				},
			},
			idx:  clearanceIndex(),
			want: usecase.EffectiveResult{Status: domain.ResultPass, BackCleared: true},
		},
		{
			name: "projection is authoritative even when the embedded copy says cleared",
			result: domain.SemesterResult{
				Semester:  3,
				RawStatus: domain.ResultFail,
				BackSubjects: []domain.BackSubject{
					{Code: "A203", Semester: 3, IsCleared: true},
				},
			},
			idx: clearanceIndex(
				domain.BackSubjectClearance{Semester: 3, SubjectCode: "A203", IsCleared: false},
			),
			want: usecase.EffectiveResult{Status: domain.ResultFail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rec.EffectiveStatus(tt.result, tt.idx))
		})
	}
}

func TestMergeLatestBackSubjects(t *testing.T) {
	cleared := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	existing := []domain.SemesterResult{
		{
			Semester:  1,
			RawStatus: domain.ResultFail,
			Remarks:   "x",
			BackSubjects: []domain.BackSubject{
				{Code: "A1", Semester: 1, IsCleared: false, Marks: floatPtr(20)},
			},
		},
		{
			Semester:  2,
			RawStatus: domain.ResultPass,
			Subjects:  []domain.SubjectResult{{Name: "Maths", Marks: 71, Passed: true}},
		},
	}

	latest := []domain.SemesterResult{
		{
			Semester: 1,
			BackSubjects: []domain.BackSubject{
				{Code: "A1", Semester: 1, IsCleared: true, FeePaid: true, Marks: floatPtr(45), ClearedDate: &cleared},
				{Code: "ZZ", Semester: 1, IsCleared: true}, // no existing counterpart, ignored
			},
		},
	}

	merged := usecase.MergeLatestBackSubjects(existing, latest)
	require.Len(t, merged, 2)

	// volatile fields refreshed
	got := merged[0].BackSubjects[0]
	assert.True(t, got.IsCleared)
	assert.True(t, got.FeePaid)
	assert.Equal(t, 45.0, *got.Marks)
	assert.Equal(t, cleared, *got.ClearedDate)

	// non-overlapping fields survive untouched
	assert.Equal(t, "x", merged[0].Remarks)
	assert.Equal(t, domain.ResultFail, merged[0].RawStatus)
	require.Len(t, merged[0].BackSubjects, 1)

	// semesters without a fresh record are passed through as-is
	assert.Equal(t, existing[1], merged[1])

	// the input is never mutated
	assert.False(t, existing[0].BackSubjects[0].IsCleared)
	assert.Equal(t, 20.0, *existing[0].BackSubjects[0].Marks)
}

func TestMergeLatestBackSubjects_SubjectOnlyInOldRecordKeepsValues(t *testing.T) {
	existing := []domain.SemesterResult{
		{
			Semester: 1,
			BackSubjects: []domain.BackSubject{
				{Code: "A1", Semester: 1, IsCleared: false, Marks: floatPtr(20)},
				{Code: "A2", Semester: 1, IsCleared: true, Marks: floatPtr(55)},
			},
		},
	}
	latest := []domain.SemesterResult{
		{
			Semester: 1,
			BackSubjects: []domain.BackSubject{
				{Code: "A1", Semester: 1, IsCleared: true, Marks: floatPtr(41)},
			},
		},
	}

	merged := usecase.MergeLatestBackSubjects(existing, latest)
	require.Len(t, merged[0].BackSubjects, 2)
	assert.True(t, merged[0].BackSubjects[0].IsCleared)
	// A2 had no fresh match; everything kept
	assert.True(t, merged[0].BackSubjects[1].IsCleared)
	assert.Equal(t, 55.0, *merged[0].BackSubjects[1].Marks)
}

func TestReconciler_StudentView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failedResult := domain.SemesterResult{
		StudentID: "STU001",
		Semester:  3,
		RawStatus: domain.ResultFail,
		BackSubjects: []domain.BackSubject{
			{Code: "A203", Semester: 3, IsCleared: false},
		},
	}

	t.Run("projection clearance flips the view", func(t *testing.T) {
		results := mock_usecase.NewMockResultReader(ctrl)
		status := mock_usecase.NewMockPaymentStatusReader(ctrl)

		results.EXPECT().ResultsByStudent(gomock.Any(), "STU001").
			Return([]domain.SemesterResult{failedResult}, nil)
		status.EXPECT().PaymentStatus(gomock.Any(), "STU001").
			Return(&domain.PaymentStatus{
				SemesterWiseStatus: []domain.SemesterStatus{{
					Semester: 3,
					Status:   "Cleared",
					BackSubjects: []domain.BackSubjectClearance{
						{Semester: 3, SubjectCode: "A203", IsCleared: true},
					},
				}},
			}, nil)

		view, err := usecase.NewReconciler(results, status, zap.NewNop()).StudentView(context.Background(), "STU001")
		require.NoError(t, err)
		require.Len(t, view.Results, 1)
		assert.Equal(t, usecase.EffectiveResult{Status: domain.ResultPass, BackCleared: true}, view.Results[0].Effective)
		assert.NotNil(t, view.Status)
	})

	t.Run("projection failure degrades to embedded copies", func(t *testing.T) {
		results := mock_usecase.NewMockResultReader(ctrl)
		status := mock_usecase.NewMockPaymentStatusReader(ctrl)

		results.EXPECT().ResultsByStudent(gomock.Any(), "STU001").
			Return([]domain.SemesterResult{failedResult}, nil)
		status.EXPECT().PaymentStatus(gomock.Any(), "STU001").
			Return(nil, errors.New("payment status not available"))

		view, err := usecase.NewReconciler(results, status, zap.NewNop()).StudentView(context.Background(), "STU001")
		require.NoError(t, err)
		assert.Nil(t, view.Status)
		require.Len(t, view.Results, 1)
		assert.Equal(t, usecase.EffectiveResult{Status: domain.ResultFail}, view.Results[0].Effective)
	})

	t.Run("results failure is surfaced", func(t *testing.T) {
		results := mock_usecase.NewMockResultReader(ctrl)
		status := mock_usecase.NewMockPaymentStatusReader(ctrl)

		results.EXPECT().ResultsByStudent(gomock.Any(), "STU001").
			Return(nil, errors.New("boom"))

		view, err := usecase.NewReconciler(results, status, zap.NewNop()).StudentView(context.Background(), "STU001")
		assert.Error(t, err)
		assert.Nil(t, view)
	})
}

func TestEffectiveResult_Label(t *testing.T) {
	assert.Equal(t, "Pass", usecase.EffectiveResult{Status: domain.ResultPass}.Label())
	assert.Equal(t, "Fail", usecase.EffectiveResult{Status: domain.ResultFail}.Label())
	assert.Equal(t, "Pass (back cleared)", usecase.EffectiveResult{Status: domain.ResultPass, BackCleared: true}.Label())
}
