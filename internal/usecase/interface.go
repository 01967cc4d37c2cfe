package usecase

import (
	"context"

	"fee-console/internal/domain"
)

// The usecases depend on these narrow interfaces, not on the HTTP gateway
// directly. Each interface covers one upstream read-model or write surface.
//
//go:generate mockgen -destination=mocks/mock_api.go -source=interface.go
type StudentDirectory interface {
	Students(ctx context.Context) ([]domain.Student, error)
	Student(ctx context.Context, id string) (*domain.Student, error)
	StudentsWithBackSubjects(ctx context.Context) ([]domain.Student, error)
}

// ResultReader serves the results read-model: declared semester outcomes with
// their embedded back-subject copies.
type ResultReader interface {
	ResultsByStudent(ctx context.Context, studentID string) ([]domain.SemesterResult, error)
}

// PaymentStatusReader serves the payment-status projection, the authoritative
// clearance source, refreshed independently of the results read-model.
type PaymentStatusReader interface {
	PaymentStatus(ctx context.Context, studentID string) (*domain.PaymentStatus, error)
	PendingBackSubjects(ctx context.Context, studentID string) ([]domain.BackSubject, error)
}

// PaymentSubmitter records fee payments.
type PaymentSubmitter interface {
	PayBackSubjectFee(ctx context.Context, studentID string, req domain.PayBackSubjectFeeRequest) (*domain.Payment, error)
}

// ResultWriter records back-subject exam outcomes.
type ResultWriter interface {
	UpdateBackSubjectResult(ctx context.Context, studentID string, req domain.UpdateResultRequest) error
	BulkUpdateBackSubjects(ctx context.Context, studentID string, req domain.BulkUpdateRequest) (*domain.BulkUpdateOutcome, error)
}
