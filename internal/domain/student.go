package domain

import "time"

// StudentStatus is the enrollment lifecycle state of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "Active"
	StudentInactive  StudentStatus = "Inactive"
	StudentCompleted StudentStatus = "Completed"
	StudentDropped   StudentStatus = "Dropped"
	StudentSuspended StudentStatus = "Suspended"
)

// SemesterFee is one row of an optional per-semester fee breakdown.
type SemesterFee struct {
	Semester int     `json:"semester"`
	Amount   float64 `json:"amount"`
	Paid     float64 `json:"paid"`
}

// FeeStructure summarizes a student's course fee and how much of it is settled.
type FeeStructure struct {
	TotalCourseFee  float64       `json:"totalCourseFee"`
	TotalPaid       float64       `json:"totalPaid"`
	RemainingAmount float64       `json:"remainingAmount"`
	SemesterFees    []SemesterFee `json:"semesterFees,omitempty"`
}

// Student is the enrolled-student record as served by the students endpoints.
// It is created by the enrollment workflow and mutated server-side by payment
// and result-entry actions; this client never derives or writes its fields.
type Student struct {
	ID              string        `json:"studentId"`
	Name            string        `json:"name"`
	Course          string        `json:"course"`
	CurrentSemester int           `json:"currentSemester"`
	TotalSemesters  int           `json:"totalSemesters"`
	JoiningDate     time.Time     `json:"joiningDate"`
	FeeStructure    FeeStructure  `json:"feeStructure"`
	Status          StudentStatus `json:"status"`
}

// Course is a catalogue entry from the courses endpoint.
type Course struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	TotalSemesters int     `json:"totalSemesters"`
	TotalFee       float64 `json:"totalFee"`
}
