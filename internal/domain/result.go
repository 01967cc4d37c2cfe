package domain

import "time"

// ResultStatus is the declared outcome of a semester result.
type ResultStatus string

const (
	ResultPass ResultStatus = "Pass"
	ResultFail ResultStatus = "Fail"
)

// SubjectResult is one subject's outcome inside a declared semester result.
type SubjectResult struct {
	Name   string  `json:"name"`
	Marks  float64 `json:"marks"`
	Passed bool    `json:"passed"`
}

// BackSubject is a failed subject the student must re-take. The same shape is
// embedded in SemesterResult and served standalone by the pending endpoint.
// The clearance flags here are the copy carried by the results read-model; the
// payment-status projection carries its own copy, which takes precedence when
// both are present (see usecase reconciliation).
type BackSubject struct {
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Semester    int        `json:"semester"`
	IsCleared   bool       `json:"isCleared"`
	FeePaid     bool       `json:"feePaid"`
	FeeAmount   float64    `json:"feeAmount"`
	Status      string     `json:"status,omitempty"`
	ClearedDate *time.Time `json:"clearedDate,omitempty"`
	Marks       *float64   `json:"marks,omitempty"`
	ExamDate    *time.Time `json:"examDate,omitempty"`
}

// SemesterResult is one declared semester outcome for a student. RawStatus is
// fixed at declaration time: it is Pass only if every subject passed then, and
// it is never rewritten in storage when back subjects clear later. The
// displayed status is recomputed client-side on every read.
type SemesterResult struct {
	StudentID    string          `json:"studentId"`
	Semester     int             `json:"semester"`
	Subjects     []SubjectResult `json:"subjects"`
	BackSubjects []BackSubject   `json:"backSubjects"`
	RawStatus    ResultStatus    `json:"status"`
	IsDelivered  bool            `json:"isDelivered"`
	Remarks      string          `json:"remarks,omitempty"`
	DeclaredAt   time.Time       `json:"declaredAt"`
}

// BackSubjectReportEntry is one row of the cross-student back-subjects report.
type BackSubjectReportEntry struct {
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Course      string  `json:"course"`
	Semester    int     `json:"semester"`
	SubjectCode string  `json:"subjectCode"`
	SubjectName string  `json:"subjectName"`
	FeeAmount   float64 `json:"feeAmount"`
	FeePaid     bool    `json:"feePaid"`
	IsCleared   bool    `json:"isCleared"`
}
