package presenter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"fee-console/internal/presenter"
	"fee-console/internal/usecase"
)

func TestRenderer_Badge(t *testing.T) {
	r := presenter.NewRenderer(&bytes.Buffer{})
	r.NoColor = true

	assert.Equal(t, "+ Paid", r.Badge("Paid"))
	assert.Equal(t, "! Overdue", r.Badge("Overdue"))
	// unknown codes still render via the pending fallback
	assert.Equal(t, "? Pending", r.Badge("Foo"))
}

func TestRenderer_PaymentReport(t *testing.T) {
	var buf bytes.Buffer
	r := presenter.NewRenderer(&buf)
	r.NoColor = true

	r.PaymentReport(&usecase.PaymentReport{
		Items: []usecase.PaymentItemOutcome{
			{Semester: 3, SubjectCode: "A203", SubjectName: "Data Structures", Amount: 500, ReceiptNo: "RCP-1"},
			{Semester: 3, SubjectCode: "A204", SubjectName: "Operating Systems", Amount: 500, Err: assert.AnError},
		},
		Succeeded: 1,
		Failed:    1,
	})

	out := buf.String()
	assert.Contains(t, out, "RCP-1")
	assert.Contains(t, out, "failed:")
	assert.Contains(t, out, "1 succeeded, 1 failed")
}
