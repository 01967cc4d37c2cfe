package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"fee-console/internal/config"
	"fee-console/internal/domain"
	"fee-console/internal/gateway"
	"fee-console/internal/presenter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.Debug)
	defer func() { _ = logger.Sync() }()

	// --- Wiring ---
	// Manual dependency injection: the gateway client satisfies every
	// usecase interface, the renderer owns stdout.
	tokens := gateway.NewFileTokenSource(cfg.TokenFile, config.TokenEnvVar)
	client, err := gateway.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, tokens, logger)
	if err != nil {
		log.Fatalf("init api client: %v", err)
	}

	a := &app{
		cfg:    cfg,
		log:    logger,
		client: client,
		tokens: tokens,
		out:    presenter.NewRenderer(os.Stdout),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := os.Args[1]
	args := os.Args[2:]

	var runErr error
	switch cmd {
	case "students":
		runErr = a.runStudents(ctx, args)
	case "status":
		runErr = a.runStatus(ctx, args)
	case "results":
		runErr = a.runResults(ctx, args)
	case "pending":
		runErr = a.runPending(ctx, args)
	case "payback":
		runErr = a.runPayback(ctx, args)
	case "result":
		runErr = a.runResultUpdate(ctx, args)
	case "bulkresult":
		runErr = a.runBulkResult(ctx, args)
	case "deliver":
		runErr = a.runDeliver(ctx, args)
	case "paysem":
		runErr = a.runPaySemester(ctx, args)
	case "pay":
		runErr = a.runPay(ctx, args)
	case "rmstudent":
		runErr = a.runRemoveStudent(ctx, args)
	case "report":
		runErr = a.runReport(ctx, args)
	case "courses":
		runErr = a.runCourses(ctx, args)
	case "whoami":
		runErr = a.runWhoami(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(1)
	}

	if runErr != nil {
		exitWithError(cmd, runErr)
	}
}

func exitWithError(cmd string, err error) {
	switch {
	case errors.Is(err, gateway.ErrSessionExpired):
		fmt.Fprintln(os.Stderr, "session expired: obtain a fresh token and try again")
	default:
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, vErr)
			for _, f := range vErr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", f.Field, f.Error)
			}
			break
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
		if gateway.IsRetryable(err) {
			fmt.Fprintln(os.Stderr, "the request did not reach the server; it is safe to retry")
		}
	}
	os.Exit(1)
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		return l
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	l, err := zcfg.Build()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	return l
}

func usage() {
	fmt.Fprint(os.Stderr, `feeconsole — student fee & academic records console

Usage: feeconsole <command> [flags]

Commands:
  students    list students (-back: only those with pending back subjects)
  status      show a student's payment status (-watch: auto-refresh)
  results     show a student's semester results with effective status
  pending     list a student's pending back subjects
  payback     pay back-subject fees for one or more subjects
  result      record a single back-subject exam result
  bulkresult  record several back-subject results in one batch
  deliver     mark a semester result's marksheet as delivered
  paysem      pay a semester course fee
  pay         record a generic fee payment
  rmstudent   delete a student record
  report      back-subjects report across students
  courses     list the course catalogue
  whoami      show auth token diagnostics

Run "feeconsole <command> -h" for command flags.
`)
}
