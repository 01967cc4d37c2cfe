package domain

import "time"

// FeeType classifies a recorded payment.
type FeeType string

const (
	FeeTypeCourse      FeeType = "Course_Fee"
	FeeTypeBackSubject FeeType = "Back_Subject"
	FeeTypeLate        FeeType = "Late_Fee"
	FeeTypeOther       FeeType = "Other"
)

// PendingPaymentType classifies a server-derived outstanding obligation.
type PendingPaymentType string

const (
	PendingCourseFee      PendingPaymentType = "Course_Fee"
	PendingBackSubjectFee PendingPaymentType = "Back_Subject_Fee"
)

// Priority orders pending payments for display.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Payment is a recorded fee payment. Immutable once created; the client only
// ever submits new ones.
type Payment struct {
	StudentID          string    `json:"studentId"`
	FeeType            FeeType   `json:"feeType"`
	Semester           int       `json:"semester"`
	SubjectCode        string    `json:"subjectCode,omitempty"`
	Amount             float64   `json:"amount"`
	PaymentMode        string    `json:"paymentMode"`
	TransactionDetails string    `json:"transactionDetails,omitempty"`
	Discount           float64   `json:"discount,omitempty"`
	Remarks            string    `json:"remarks,omitempty"`
	PaymentDate        time.Time `json:"paymentDate"`
	ReceiptNo          string    `json:"receiptNo"`
}

// PendingPayment is one outstanding obligation, computed server-side and
// consumed as-is; the client never derives these, only renders them and uses
// them to pre-fill payment forms.
type PendingPayment struct {
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	Semester    int                `json:"semester"`
	Priority    Priority           `json:"priority"`
	Type        PendingPaymentType `json:"type"`
	SubjectCode string             `json:"subjectCode,omitempty"`
	SubjectName string             `json:"subjectName,omitempty"`
}

// StudentInfo is the slim student header carried by the payment-status
// projection.
type StudentInfo struct {
	ID              string `json:"studentId"`
	Name            string `json:"name"`
	Course          string `json:"course"`
	CurrentSemester int    `json:"currentSemester"`
}

// BackSubjectClearance is the payment-status projection's copy of one back
// subject's clearance state, keyed by (semester, subject code).
type BackSubjectClearance struct {
	Semester    int        `json:"semester"`
	SubjectCode string     `json:"subjectCode"`
	SubjectName string     `json:"subjectName"`
	IsCleared   bool       `json:"isCleared"`
	FeePaid     bool       `json:"feePaid"`
	Status      string     `json:"status,omitempty"`
	ClearedDate *time.Time `json:"clearedDate,omitempty"`
	Marks       *float64   `json:"marks,omitempty"`
	ExamDate    *time.Time `json:"examDate,omitempty"`
}

// SemesterStatus is the projection's per-semester fee state.
type SemesterStatus struct {
	Semester     int                    `json:"semester"`
	Status       string                 `json:"status"`
	TotalFee     float64                `json:"totalFee"`
	Paid         float64                `json:"paid"`
	Pending      float64                `json:"pending"`
	BackSubjects []BackSubjectClearance `json:"backSubjects,omitempty"`
}

// PaymentStatus is the server-computed read-only summary of a student's fee
// obligations and back-subject clearance. It is refreshed independently of the
// results read-model and may be ahead of it.
type PaymentStatus struct {
	StudentInfo        StudentInfo      `json:"studentInfo"`
	FeeStructure       FeeStructure     `json:"feeStructure"`
	PendingPayments    []PendingPayment `json:"pendingPayments"`
	TotalPendingAmount float64          `json:"totalPendingAmount"`
	SemesterWiseStatus []SemesterStatus `json:"semesterWiseStatus"`
}
