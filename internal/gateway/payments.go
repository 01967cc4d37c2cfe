package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"fee-console/internal/domain"
)

func errMissingField(name string) error {
	return errors.Errorf("response missing %q", name)
}

type paymentStatusEnvelope struct {
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus"`
}

type pendingBackSubjectsEnvelope struct {
	PendingBackSubjects []domain.BackSubject `json:"pendingBackSubjects"`
}

type paymentEnvelope struct {
	Payment *domain.Payment `json:"payment"`
}

type reportEnvelope struct {
	Report []domain.BackSubjectReportEntry `json:"report"`
}

// PaymentStatus fetches the server-computed fee/clearance projection for one
// student. The projection is the authoritative clearance source during
// reconciliation.
func (c *Client) PaymentStatus(ctx context.Context, studentID string) (*domain.PaymentStatus, error) {
	var env paymentStatusEnvelope
	path := "/students/" + url.PathEscape(studentID) + "/payment-status"
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.PaymentStatus == nil {
		return nil, &DecodeError{Endpoint: "/students/:id/payment-status", Err: errMissingField("paymentStatus")}
	}
	return env.PaymentStatus, nil
}

// PendingBackSubjects lists the student's uncleared back subjects.
func (c *Client) PendingBackSubjects(ctx context.Context, studentID string) ([]domain.BackSubject, error) {
	var env pendingBackSubjectsEnvelope
	path := "/students/" + url.PathEscape(studentID) + "/back-subjects/pending"
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.PendingBackSubjects, nil
}

// PayBackSubjectFee records one back-subject fee payment. The multi-subject
// workflow issues one of these per selected subject.
func (c *Client) PayBackSubjectFee(ctx context.Context, studentID string, req domain.PayBackSubjectFeeRequest) (*domain.Payment, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	var env paymentEnvelope
	path := "/students/" + url.PathEscape(studentID) + "/back-subjects/pay-fee"
	if err := c.do(ctx, http.MethodPost, path, req, &env); err != nil {
		return nil, err
	}
	if env.Payment == nil {
		return nil, &DecodeError{Endpoint: "/students/:id/back-subjects/pay-fee", Err: errMissingField("payment")}
	}
	return env.Payment, nil
}

// PaySemesterFee records a regular semester fee payment.
func (c *Client) PaySemesterFee(ctx context.Context, studentID string, req domain.PaySemesterFeeRequest) (*domain.Payment, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	var env paymentEnvelope
	path := "/students/" + url.PathEscape(studentID) + "/pay-semester-fee"
	if err := c.do(ctx, http.MethodPost, path, req, &env); err != nil {
		return nil, err
	}
	if env.Payment == nil {
		return nil, &DecodeError{Endpoint: "/students/:id/pay-semester-fee", Err: errMissingField("payment")}
	}
	return env.Payment, nil
}

// RecordPayment records a payment through the generic fees endpoint (late
// fees, miscellaneous charges).
func (c *Client) RecordPayment(ctx context.Context, req domain.RecordPaymentRequest) (*domain.Payment, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	var env paymentEnvelope
	if err := c.do(ctx, http.MethodPost, "/fees/payment", req, &env); err != nil {
		return nil, err
	}
	if env.Payment == nil {
		return nil, &DecodeError{Endpoint: "/fees/payment", Err: errMissingField("payment")}
	}
	return env.Payment, nil
}

// BackSubjectsReport fetches the cross-student back-subjects report.
func (c *Client) BackSubjectsReport(ctx context.Context) ([]domain.BackSubjectReportEntry, error) {
	var env reportEnvelope
	if err := c.do(ctx, http.MethodGet, "/reports/back-subjects", nil, &env); err != nil {
		return nil, err
	}
	return env.Report, nil
}
