package domain

import "time"

// PayBackSubjectFeeRequest is the body of the per-subject back-fee payment
// call. One request is issued per selected subject.
type PayBackSubjectFeeRequest struct {
	Semester      int     `json:"semester" validate:"required,min=1"`
	SubjectCode   string  `json:"subjectCode" validate:"required"`
	PaymentAmount float64 `json:"paymentAmount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	Remarks       string  `json:"remarks"`
}

// UpdateResultRequest is the body of the single back-subject result update.
type UpdateResultRequest struct {
	Semester    int       `json:"semester" validate:"required,min=1"`
	SubjectCode string    `json:"subjectCode" validate:"required"`
	Marks       float64   `json:"marks" validate:"min=0"`
	IsCleared   bool      `json:"isCleared"`
	ExamDate    time.Time `json:"examDate" validate:"required"`
	Remarks     string    `json:"remarks"`
}

// BulkResultEntry is one row of a bulk back-subject result update.
type BulkResultEntry struct {
	Semester    int     `json:"semester" validate:"required,min=1"`
	SubjectCode string  `json:"subjectCode" validate:"required"`
	Marks       float64 `json:"marks" validate:"min=0"`
	IsCleared   bool    `json:"isCleared"`
}

// BulkUpdateRequest is the body of the batched result update. Only subjects
// with a chosen outcome are included.
type BulkUpdateRequest struct {
	ExamDate time.Time         `json:"examDate" validate:"required"`
	Results  []BulkResultEntry `json:"results" validate:"required,min=1,dive"`
	Remarks  string            `json:"remarks"`
}

// BulkUpdateOutcome is the server's summary of a bulk update.
type BulkUpdateOutcome struct {
	Cleared int `json:"clearedCount"`
	Failed  int `json:"failedCount"`
}

// PaySemesterFeeRequest is the body of the regular semester fee payment.
type PaySemesterFeeRequest struct {
	Semester      int     `json:"semester" validate:"required,min=1"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	Discount      float64 `json:"discount" validate:"min=0"`
	Remarks       string  `json:"remarks"`
}

// RecordPaymentRequest is the body of the generic fee payment endpoint.
type RecordPaymentRequest struct {
	StudentID          string  `json:"studentId" validate:"required"`
	FeeType            FeeType `json:"feeType" validate:"required"`
	Semester           int     `json:"semester" validate:"min=0"`
	SubjectCode        string  `json:"subjectCode"`
	Amount             float64 `json:"amount" validate:"required,gt=0"`
	PaymentMode        string  `json:"paymentMode" validate:"required"`
	TransactionDetails string  `json:"transactionDetails"`
	Discount           float64 `json:"discount" validate:"min=0"`
	Remarks            string  `json:"remarks"`
}
