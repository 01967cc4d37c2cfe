package gateway

import (
	"context"
	"net/http"
	"net/url"

	"fee-console/internal/domain"
)

type studentsEnvelope struct {
	Students []domain.Student `json:"students"`
}

type studentEnvelope struct {
	Student *domain.Student `json:"student"`
}

type coursesEnvelope struct {
	Courses []domain.Course `json:"courses"`
}

// Students lists every enrolled student.
func (c *Client) Students(ctx context.Context) ([]domain.Student, error) {
	var env studentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/students", nil, &env); err != nil {
		return nil, err
	}
	return env.Students, nil
}

// Student fetches one student by id.
func (c *Client) Student(ctx context.Context, id string) (*domain.Student, error) {
	var env studentEnvelope
	if err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	if env.Student == nil {
		return nil, &DecodeError{Endpoint: "/students/:id", Err: errMissingField("student")}
	}
	return env.Student, nil
}

// StudentsWithBackSubjects lists students that have at least one pending back
// subject; it feeds the bulk result-entry picker.
func (c *Client) StudentsWithBackSubjects(ctx context.Context) ([]domain.Student, error) {
	var env studentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/students/with-back-subjects", nil, &env); err != nil {
		return nil, err
	}
	return env.Students, nil
}

// CreateStudent registers a new student record.
func (c *Client) CreateStudent(ctx context.Context, s domain.Student) (*domain.Student, error) {
	var env studentEnvelope
	if err := c.do(ctx, http.MethodPost, "/students", s, &env); err != nil {
		return nil, err
	}
	if env.Student == nil {
		return nil, &DecodeError{Endpoint: "/students", Err: errMissingField("student")}
	}
	return env.Student, nil
}

// UpdateStudent replaces a student record.
func (c *Client) UpdateStudent(ctx context.Context, id string, s domain.Student) error {
	return c.do(ctx, http.MethodPut, "/students/"+url.PathEscape(id), s, nil)
}

// DeleteStudent removes a student record. There is no client-side invariant
// around deletion; it is a direct API call.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/students/"+url.PathEscape(id), nil, nil)
}

// Courses lists the course catalogue.
func (c *Client) Courses(ctx context.Context) ([]domain.Course, error) {
	var env coursesEnvelope
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &env); err != nil {
		return nil, err
	}
	return env.Courses, nil
}
