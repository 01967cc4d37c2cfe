// Package presenter renders fetched and reconciled data as terminal tables.
// Pure output; nothing here mutates state or talks to the network.
package presenter

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fee-console/internal/domain"
	"fee-console/internal/usecase"
)

var ansiColors = map[string]string{
	"green":  "\033[32m",
	"red":    "\033[31m",
	"yellow": "\033[33m",
	"cyan":   "\033[36m",
	"gray":   "\033[90m",
}

const ansiReset = "\033[0m"

type Renderer struct {
	w io.Writer
	// NoColor suppresses ANSI escapes for dumb terminals and piped output.
	NoColor bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Badge renders a status code through its classification.
func (r *Renderer) Badge(code string) string {
	b := domain.Classify(code)
	text := b.Icon + " " + b.Label
	if r.NoColor {
		return text
	}
	color, ok := ansiColors[b.Color]
	if !ok {
		return text
	}
	return color + text + ansiReset
}

func (r *Renderer) tab() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func (r *Renderer) Students(students []domain.Student) {
	tw := r.tab()
	fmt.Fprintln(tw, "ID\tNAME\tCOURSE\tSEM\tJOINED\tPAID\tREMAINING\tSTATUS")
	for _, s := range students {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%s\t%.2f\t%.2f\t%s\n",
			s.ID, s.Name, s.Course, s.CurrentSemester, s.TotalSemesters,
			fmtDate(s.JoiningDate), s.FeeStructure.TotalPaid,
			s.FeeStructure.RemainingAmount, r.Badge(string(s.Status)))
	}
	tw.Flush()
}

func (r *Renderer) Courses(courses []domain.Course) {
	tw := r.tab()
	fmt.Fprintln(tw, "CODE\tNAME\tSEMESTERS\tTOTAL FEE")
	for _, c := range courses {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", c.Code, c.Name, c.TotalSemesters, c.TotalFee)
	}
	tw.Flush()
}

func (r *Renderer) PaymentStatus(ps *domain.PaymentStatus) {
	fmt.Fprintf(r.w, "%s (%s) — %s, semester %d\n",
		ps.StudentInfo.Name, ps.StudentInfo.ID, ps.StudentInfo.Course, ps.StudentInfo.CurrentSemester)
	fmt.Fprintf(r.w, "Course fee %.2f, paid %.2f, remaining %.2f, pending now %.2f\n\n",
		ps.FeeStructure.TotalCourseFee, ps.FeeStructure.TotalPaid,
		ps.FeeStructure.RemainingAmount, ps.TotalPendingAmount)

	if len(ps.SemesterWiseStatus) > 0 {
		tw := r.tab()
		fmt.Fprintln(tw, "SEM\tSTATUS\tFEE\tPAID\tPENDING\tBACK SUBJECTS")
		for _, sem := range ps.SemesterWiseStatus {
			fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\t%d\n",
				sem.Semester, r.Badge(sem.Status), sem.TotalFee, sem.Paid, sem.Pending, len(sem.BackSubjects))
		}
		tw.Flush()
		fmt.Fprintln(r.w)
	}

	if len(ps.PendingPayments) > 0 {
		tw := r.tab()
		fmt.Fprintln(tw, "PENDING PAYMENT\tSEM\tAMOUNT\tPRIORITY")
		for _, pp := range ps.PendingPayments {
			fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\n", pp.Description, pp.Semester, pp.Amount, pp.Priority)
		}
		tw.Flush()
	}
}

func (r *Renderer) StudentView(view *usecase.StudentView) {
	tw := r.tab()
	fmt.Fprintln(tw, "SEM\tDECLARED\tEFFECTIVE\tBACK SUBJECTS\tDELIVERED")
	for _, res := range view.Results {
		effective := r.Badge(string(res.Effective.Status))
		if res.Effective.BackCleared {
			effective = r.Badge("Pass") + " (back cleared)"
		}
		delivered := "no"
		if res.IsDelivered {
			delivered = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			res.Semester, r.Badge(string(res.RawStatus)), effective,
			r.backSubjectSummary(res.BackSubjects), delivered)
	}
	tw.Flush()
}

func (r *Renderer) backSubjectSummary(subjects []domain.BackSubject) string {
	if len(subjects) == 0 {
		return "-"
	}
	cleared := 0
	for _, bs := range subjects {
		if bs.IsCleared {
			cleared++
		}
	}
	return fmt.Sprintf("%d/%d cleared", cleared, len(subjects))
}

func (r *Renderer) PendingBackSubjects(subjects []domain.BackSubject) {
	tw := r.tab()
	fmt.Fprintln(tw, "SEM\tCODE\tNAME\tFEE\tFEE PAID\tSTATUS")
	for _, bs := range subjects {
		feePaid := "no"
		if bs.FeePaid {
			feePaid = "yes"
		}
		status := bs.Status
		if status == "" {
			status = "Pending"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\t%s\n",
			bs.Semester, bs.Code, bs.Name, bs.FeeAmount, feePaid, r.Badge(status))
	}
	tw.Flush()
}

// PaymentReport prints the itemized outcome of a multi-subject submission,
// one line per subject, then the tally.
func (r *Renderer) PaymentReport(report *usecase.PaymentReport) {
	tw := r.tab()
	fmt.Fprintln(tw, "SEM\tSUBJECT\tAMOUNT\tOUTCOME")
	for _, item := range report.Items {
		outcome := "paid, receipt " + item.ReceiptNo
		if !item.Succeeded() {
			outcome = "failed: " + item.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%s %s\t%.2f\t%s\n",
			item.Semester, item.SubjectCode, item.SubjectName, item.Amount, outcome)
	}
	tw.Flush()
	fmt.Fprintf(r.w, "\n%d succeeded, %d failed\n", report.Succeeded, report.Failed)
}

func (r *Renderer) BulkOutcome(out *domain.BulkUpdateOutcome) {
	fmt.Fprintf(r.w, "%d subject(s) cleared, %d failed again\n", out.Cleared, out.Failed)
}

func (r *Renderer) BackSubjectsReport(entries []domain.BackSubjectReportEntry) {
	tw := r.tab()
	fmt.Fprintln(tw, "STUDENT\tNAME\tCOURSE\tSEM\tSUBJECT\tFEE\tFEE PAID\tCLEARED")
	for _, e := range entries {
		feePaid, cleared := "no", "no"
		if e.FeePaid {
			feePaid = "yes"
		}
		if e.IsCleared {
			cleared = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s %s\t%.2f\t%s\t%s\n",
			e.StudentID, e.StudentName, e.Course, e.Semester,
			e.SubjectCode, e.SubjectName, e.FeeAmount, feePaid, cleared)
	}
	tw.Flush()
}

func (r *Renderer) Receipt(p *domain.Payment) {
	fmt.Fprintf(r.w, "payment recorded: %s %.2f for %s (receipt %s)\n",
		p.FeeType, p.Amount, p.StudentID, p.ReceiptNo)
}
