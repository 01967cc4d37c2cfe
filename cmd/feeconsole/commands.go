package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"fee-console/internal/config"
	"fee-console/internal/domain"
	"fee-console/internal/gateway"
	"fee-console/internal/presenter"
	"fee-console/internal/usecase"
)

type app struct {
	cfg    *config.Config
	log    *zap.Logger
	client *gateway.Client
	tokens gateway.TokenSource
	out    *presenter.Renderer
}

// subjectRef is one "semester:subjectCode" pair from the command line.
type subjectRef struct {
	semester int
	code     string
}

func parseSubjectRefs(s string) ([]subjectRef, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	refs := make([]subjectRef, 0, len(parts))
	for _, part := range parts {
		sem, code, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, errors.Errorf("invalid subject ref %q, expected semester:subjectCode", part)
		}
		n, err := strconv.Atoi(sem)
		if err != nil {
			return nil, errors.Errorf("invalid semester in %q", part)
		}
		refs = append(refs, subjectRef{semester: n, code: code})
	}
	return refs, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func (a *app) runStudents(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("students", flag.ExitOnError)
	backOnly := fs.Bool("back", false, "only students with pending back subjects")
	_ = fs.Parse(args)

	var (
		students []domain.Student
		err      error
	)
	if *backOnly {
		students, err = a.client.StudentsWithBackSubjects(ctx)
	} else {
		students, err = a.client.Students(ctx)
	}
	if err != nil {
		return err
	}
	a.out.Students(students)
	return nil
}

func (a *app) runStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	watch := fs.Bool("watch", false, "auto-refresh on the configured interval")
	_ = fs.Parse(args)
	if *student == "" {
		return errors.New("-student is required")
	}

	fetch := usecase.NewFetcher(func(ctx context.Context) (*domain.PaymentStatus, error) {
		return a.client.PaymentStatus(ctx, *student)
	})
	if err := fetch.Load(ctx); err != nil {
		return err
	}
	a.out.PaymentStatus(fetch.Data())

	if !*watch {
		return nil
	}

	poller := usecase.StartPoller(ctx, a.cfg.PollInterval, func(ctx context.Context) {
		if err := fetch.Load(ctx); err != nil {
			a.log.Warn("payment status refresh failed", zap.String("studentId", *student), zap.Error(err))
			return
		}
		fmt.Printf("\n-- refreshed %s --\n", fetch.FetchedAt().Format(time.TimeOnly))
		a.out.PaymentStatus(fetch.Data())
	})
	defer poller.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func (a *app) runResults(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("results", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	_ = fs.Parse(args)
	if *student == "" {
		return errors.New("-student is required")
	}

	rec := usecase.NewReconciler(a.client, a.client, a.log)
	view, err := rec.StudentView(ctx, *student)
	if err != nil {
		return err
	}
	a.out.StudentView(view)
	return nil
}

func (a *app) runPending(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pending", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	_ = fs.Parse(args)
	if *student == "" {
		return errors.New("-student is required")
	}

	pending, err := a.client.PendingBackSubjects(ctx, *student)
	if err != nil {
		return err
	}
	a.out.PendingBackSubjects(pending)
	return nil
}

func (a *app) runPayback(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payback", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	subjects := fs.String("subjects", "", "comma-separated semester:subjectCode pairs (required)")
	method := fs.String("method", "Cash", "payment method")
	remarks := fs.String("remarks", "", "payment remarks")
	_ = fs.Parse(args)

	refs, err := parseSubjectRefs(*subjects)
	if err != nil {
		return err
	}

	w := usecase.NewBackFeeWorkflow(a.client, a.client, a.log)
	if err := w.SelectStudent(ctx, *student); err != nil {
		return err
	}
	for _, ref := range refs {
		if err := w.Toggle(ref.semester, ref.code); err != nil {
			return err
		}
	}

	fmt.Printf("paying %d subject(s), total %.2f\n\n", len(w.Selected()), w.Total())
	report, err := w.Submit(ctx, *method, *remarks)
	if report != nil {
		a.out.PaymentReport(report)
	}
	return err
}

func (a *app) runResultUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("result", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	semester := fs.Int("semester", 0, "semester number (required)")
	subject := fs.String("subject", "", "subject code (required)")
	marks := fs.Float64("marks", 0, "marks obtained")
	cleared := fs.Bool("cleared", false, "subject cleared")
	examDateStr := fs.String("examdate", "", "exam date, YYYY-MM-DD (required)")
	remarks := fs.String("remarks", "", "remarks")
	_ = fs.Parse(args)

	examDate, err := parseDate(*examDateStr)
	if err != nil {
		return err
	}

	rec := usecase.NewReconciler(a.client, a.client, a.log)
	entry := usecase.NewResultEntry(rec, a.client, a.client, a.log)

	view, err := entry.UpdateSingle(ctx, *student, domain.UpdateResultRequest{
		Semester:    *semester,
		SubjectCode: *subject,
		Marks:       *marks,
		IsCleared:   *cleared,
		ExamDate:    examDate,
		Remarks:     *remarks,
	})
	if err != nil {
		return err
	}
	fmt.Println("result saved; refreshed view:")
	a.out.StudentView(view)
	return nil
}

func (a *app) runBulkResult(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bulkresult", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	examDateStr := fs.String("examdate", "", "exam date, YYYY-MM-DD (required)")
	pass := fs.String("pass", "", "semester:subjectCode pairs that passed")
	fail := fs.String("fail", "", "semester:subjectCode pairs that failed")
	remarks := fs.String("remarks", "", "remarks")
	_ = fs.Parse(args)

	examDate, err := parseDate(*examDateStr)
	if err != nil {
		return err
	}
	passRefs, err := parseSubjectRefs(*pass)
	if err != nil {
		return err
	}
	failRefs, err := parseSubjectRefs(*fail)
	if err != nil {
		return err
	}

	rec := usecase.NewReconciler(a.client, a.client, a.log)
	entry := usecase.NewResultEntry(rec, a.client, a.client, a.log)
	form, err := entry.LoadPending(ctx, *student)
	if err != nil {
		return err
	}
	for _, ref := range passRefs {
		if err := form.MarkPass(ref.semester, ref.code); err != nil {
			return err
		}
	}
	for _, ref := range failRefs {
		if err := form.MarkFail(ref.semester, ref.code); err != nil {
			return err
		}
	}

	outcome, err := form.Submit(ctx, examDate, *remarks)
	if err != nil {
		return err
	}
	a.out.BulkOutcome(outcome)
	return nil
}

func (a *app) runDeliver(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("deliver", flag.ExitOnError)
	result := fs.String("result", "", "result id (required)")
	semester := fs.Int("semester", 0, "semester number (required)")
	_ = fs.Parse(args)
	if *result == "" || *semester == 0 {
		return errors.New("-result and -semester are required")
	}

	if err := a.client.MarkResultDelivered(ctx, *result, *semester); err != nil {
		return err
	}
	fmt.Println("marked delivered")
	return nil
}

func (a *app) runPaySemester(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("paysem", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	semester := fs.Int("semester", 0, "semester number (required)")
	amount := fs.Float64("amount", 0, "amount (required)")
	method := fs.String("method", "Cash", "payment method")
	discount := fs.Float64("discount", 0, "discount")
	remarks := fs.String("remarks", "", "remarks")
	_ = fs.Parse(args)
	if *student == "" {
		return errors.New("-student is required")
	}

	p, err := a.client.PaySemesterFee(ctx, *student, domain.PaySemesterFeeRequest{
		Semester:      *semester,
		Amount:        *amount,
		PaymentMethod: *method,
		Discount:      *discount,
		Remarks:       *remarks,
	})
	if err != nil {
		return err
	}
	a.out.Receipt(p)
	return nil
}

func (a *app) runPay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	feeType := fs.String("type", string(domain.FeeTypeOther), "fee type")
	semester := fs.Int("semester", 0, "semester number")
	subject := fs.String("subject", "", "subject code")
	amount := fs.Float64("amount", 0, "amount (required)")
	mode := fs.String("mode", "Cash", "payment mode")
	txn := fs.String("txn", "", "transaction details")
	discount := fs.Float64("discount", 0, "discount")
	remarks := fs.String("remarks", "", "remarks")
	_ = fs.Parse(args)

	p, err := a.client.RecordPayment(ctx, domain.RecordPaymentRequest{
		StudentID:          *student,
		FeeType:            domain.FeeType(*feeType),
		Semester:           *semester,
		SubjectCode:        *subject,
		Amount:             *amount,
		PaymentMode:        *mode,
		TransactionDetails: *txn,
		Discount:           *discount,
		Remarks:            *remarks,
	})
	if err != nil {
		return err
	}
	a.out.Receipt(p)
	return nil
}

func (a *app) runRemoveStudent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rmstudent", flag.ExitOnError)
	student := fs.String("student", "", "student id (required)")
	yes := fs.Bool("yes", false, "confirm deletion")
	_ = fs.Parse(args)
	if *student == "" {
		return errors.New("-student is required")
	}
	if !*yes {
		return errors.New("deletion is permanent; re-run with -yes to confirm")
	}

	if err := a.client.DeleteStudent(ctx, *student); err != nil {
		return err
	}
	fmt.Printf("student %s deleted\n", *student)
	return nil
}

func (a *app) runReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	_ = fs.Parse(args)

	entries, err := a.client.BackSubjectsReport(ctx)
	if err != nil {
		return err
	}
	a.out.BackSubjectsReport(entries)
	return nil
}

func (a *app) runCourses(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("courses", flag.ExitOnError)
	_ = fs.Parse(args)

	courses, err := a.client.Courses(ctx)
	if err != nil {
		return err
	}
	a.out.Courses(courses)
	return nil
}

func (a *app) runWhoami(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	_ = fs.Parse(args)

	token, err := a.tokens.Token()
	if err != nil {
		return err
	}
	exp, err := gateway.TokenExpiry(token)
	if err != nil {
		fmt.Println("token: opaque (not a JWT); the server will judge validity")
		return nil
	}
	if exp.IsZero() {
		fmt.Println("token: JWT without expiry claim")
		return nil
	}
	if gateway.TokenExpired(token, time.Now()) {
		fmt.Printf("token: EXPIRED at %s\n", exp.Format(time.RFC3339))
	} else {
		fmt.Printf("token: valid until %s\n", exp.Format(time.RFC3339))
	}
	return nil
}
