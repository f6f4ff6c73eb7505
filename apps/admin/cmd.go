package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/report"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type services struct {
	student    *student.Service
	subject    *subject.Service
	enrollment *enrollment.Service
	exam       *exam.Service
	question   *question.Service
	answer     *answer.Service
	grade      *grade.Service
	report     *report.Service
}

type commandLine struct {
	db       *sql.DB // nil with the in-memory backend
	validate *validator.Validate
	svc      services
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]       - run a goose command: up, up-by-one, up-to V, down, down-to V, redo, reset, status, version, create NAME [sql|go], fix")
	fmt.Fprintln(cli.out, "  resetpassword -email EMAIL   - reset a student's password")
	fmt.Fprintln(cli.out, "  seed                         - insert the demo data")
	fmt.Fprintln(cli.out, "  report REPORT [FLAGS]        - print a report: average, subjects, history, top, exam, audit")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordCmd.SetOutput(cli.out)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The student's email. The password will be prompted next.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, string(pwd))

	case "seed":
		return cli.seed()

	case "report":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.report(args[2], args[3:])

	default:
		cli.printUsage()
		return errHelp
	}
}

// intFlag parses a required positive id flag.
func intFlag(fs *flag.FlagSet, name string, val string) (int, error) {
	id, err := strconv.Atoi(val)
	if err != nil || id < 1 {
		fs.Usage()
		return 0, fmt.Errorf("-%s must be a positive integer (got %q)", name, val)
	}
	return id, nil
}
