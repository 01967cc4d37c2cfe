package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fee-console/internal/domain"
	"fee-console/internal/gateway"
)

func TestClient_CreateStudent(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/students", r.URL.Path)

		var got domain.Student
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ravi Kumar", got.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"student":{"studentId":"STU042","name":"Ravi Kumar","course":"BCA","currentSemester":1,"totalSemesters":6,"status":"Active"}}`))
	}))

	created, err := c.CreateStudent(context.Background(), domain.Student{Name: "Ravi Kumar", Course: "BCA"})
	require.NoError(t, err)
	assert.Equal(t, "STU042", created.ID)
	assert.Equal(t, domain.StudentActive, created.Status)
}

func TestClient_CreateStudent_MissingEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := c.CreateStudent(context.Background(), domain.Student{Name: "Ravi Kumar"})
	var dErr *gateway.DecodeError
	assert.ErrorAs(t, err, &dErr)
}

func TestClient_UpdateStudent(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/students/STU042", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	err := c.UpdateStudent(context.Background(), "STU042", domain.Student{ID: "STU042", Name: "Ravi Kumar"})
	assert.NoError(t, err)
}

func TestClient_DeleteStudent(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/students/STU042", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	assert.NoError(t, c.DeleteStudent(context.Background(), "STU042"))
}

func TestClient_Courses(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"courses":[{"code":"BCA","name":"Bachelor of Computer Applications","totalSemesters":6,"totalFee":90000}]}`))
	}))

	courses, err := c.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "BCA", courses[0].Code)
	assert.Equal(t, 6, courses[0].TotalSemesters)
}
