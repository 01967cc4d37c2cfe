package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"fee-console/internal/domain"
)

type resultsEnvelope struct {
	Results []domain.SemesterResult `json:"results"`
}

type bulkUpdateEnvelope struct {
	Cleared int `json:"clearedCount"`
	Failed  int `json:"failedCount"`
}

// ResultsByStudent fetches every declared semester result for one student.
func (c *Client) ResultsByStudent(ctx context.Context, studentID string) ([]domain.SemesterResult, error) {
	var env resultsEnvelope
	path := "/results?studentId=" + url.QueryEscape(studentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Results, nil
}

// UpdateBackSubjectResult records one back subject's exam outcome.
func (c *Client) UpdateBackSubjectResult(ctx context.Context, studentID string, req domain.UpdateResultRequest) error {
	if err := domain.Validate(req); err != nil {
		return err
	}
	path := "/students/" + url.PathEscape(studentID) + "/back-subjects/update-result"
	return c.do(ctx, http.MethodPut, path, req, nil)
}

// BulkUpdateBackSubjects records outcomes for several back subjects in one
// batched request and returns the server's cleared/failed tally.
func (c *Client) BulkUpdateBackSubjects(ctx context.Context, studentID string, req domain.BulkUpdateRequest) (*domain.BulkUpdateOutcome, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}
	var env bulkUpdateEnvelope
	path := "/students/" + url.PathEscape(studentID) + "/back-subjects/bulk-update"
	if err := c.do(ctx, http.MethodPut, path, req, &env); err != nil {
		return nil, err
	}
	return &domain.BulkUpdateOutcome{Cleared: env.Cleared, Failed: env.Failed}, nil
}

// MarkResultDelivered flags a semester result's marksheet as handed over.
// Delivery is independent of the academic outcome.
func (c *Client) MarkResultDelivered(ctx context.Context, resultID string, semester int) error {
	path := "/results/" + url.PathEscape(resultID) + "/" + strconv.Itoa(semester) + "/mark-delivered"
	return c.do(ctx, http.MethodPut, path, nil, nil)
}
