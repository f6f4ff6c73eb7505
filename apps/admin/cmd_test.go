package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/report"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
	"github.com/aulahub/academia/core/testutil"
	inmemdb "github.com/aulahub/academia/storage/database/inmem"
)

var stdtRepo student.Repository

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	db := inmemdb.Open()
	stdtRepo = inmemdb.NewStudentRepository(db)

	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)

	out := new(bytes.Buffer)
	return &commandLine{
		validate: validate,
		out:      out,
		svc: services{
			student:    student.NewService(stdtRepo),
			subject:    subject.NewService(inmemdb.NewSubjectRepository(db)),
			enrollment: enrollment.NewService(inmemdb.NewEnrollmentRepository(db)),
			exam:       exam.NewService(inmemdb.NewExamRepository(db)),
			question:   question.NewService(inmemdb.NewQuestionRepository(db)),
			answer:     answer.NewService(inmemdb.NewAnswerRepository(db)),
			grade:      grade.NewService(inmemdb.NewGradeRepository(db)),
			report:     report.NewService(inmemdb.NewReportRepository(db)),
		},
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
	extra      interface{}
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, errors.Cause(err))
			case tt.wantErrStr != "":
				if assert.Error(t, err) {
					assert.Equal(t, tt.wantErrStr, err.Error())
				}
			default:
				assert.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func Test_commandLine_usage(t *testing.T) {
	cli, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: []string{"resetpassword -email EMAIL"}},
		{name: "report: no report", args: []string{"report"}, wantErr: errHelp},
		{name: "report: unknown report", args: []string{"report", "lol"}, wantErr: errHelp},
	})
}

func Test_commandLine_migrate(t *testing.T) {
	cli, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "in-memory storage", args: []string{"migrate", "up"}, wantErr: errNoDatabase},
	})

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	cli.db = db

	gooseRunFunc = func(command string, db *sql.DB, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		if dir != "migrations" {
			return fmt.Errorf("unexpected migrations dir %q", dir)
		}
		return nil
	}

	runCLITests(t, cli, out, []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "add_courses", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	})
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli, out := setup(t)

	stdt := testutil.CreateStudent(t, stdtRepo, "Ana", "ana@test.edu", "secret1", 21, 28)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "unknown flag", args: []string{"resetpassword", "-username", "ana"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"resetpassword", "-email", stdt.Email}, wantErr: errHelp},
		{name: "student not found", args: []string{"resetpassword", "-email", "lol@test.edu"}, extra: extra{pwd: "secret2"}, wantErr: student.ErrNotFound},
		{name: "weak password", args: []string{"resetpassword", "-email", stdt.Email}, extra: extra{pwd: "secret"}},
		{name: "reset", args: []string{"resetpassword", "-email", stdt.Email}, extra: extra{pwd: "secret2"}},
		{name: "reset, email not normalized", args: []string{"resetpassword", "-email", " ANA@test.edu"}, extra: extra{pwd: "secret3"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			if tt.name == "weak password" {
				var vErrs validator.ValidationErrors
				assert.True(t, errors.As(err, &vErrs), "want validation errors, got %v", err)
				return
			}
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, errors.Cause(err))
				return
			}
			require.NoError(t, err)

			refreshed, err := stdtRepo.GetStudentByID(context.Background(), stdt.ID)
			require.NoError(t, err)
			assert.NoError(t, refreshed.CheckPassword(tt.extra.(extra).pwd))
		})
	}
}

func Test_commandLine_seedAndReport(t *testing.T) {
	cli, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "report before seed", args: []string{"report", "average", "-student", "1"}, wantErr: report.ErrNoGrades},
		{name: "seed", args: []string{"seed"}, wantOut: []string{"seeded 2 students, 2 subjects, 2 exams, 3 grades, 2 questions"}},
		{name: "seed twice", args: []string{"seed"}, wantErr: student.ErrEmailExists},
		{name: "average: missing student", args: []string{"report", "average"}, wantErrStr: `-student must be a positive integer (got "")`},
		{name: "average: bad student", args: []string{"report", "average", "-student", "lol"}, wantErrStr: `-student must be a positive integer (got "lol")`},
		{name: "average", args: []string{"report", "average", "-student", "1"}, wantOut: []string{"Ana López", "8.75"}},
		{name: "subjects", args: []string{"report", "subjects"}, wantOut: []string{"SUBJECT", "Mathematics", "Programming", "Luis Pérez", "7.50"}},
		{name: "history", args: []string{"report", "history", "-student", "1"}, wantOut: []string{"2025-06-05", "2025-06-01", "9.00", "8.50"}},
		{name: "top", args: []string{"report", "top", "-n", "1"}, wantOut: []string{"Ana López"}},
		{name: "exam", args: []string{"report", "exam", "-exam", "2"}, wantOut: []string{"8.25", "7.50", "9.00", "1.06"}},
		{name: "exam without grades", args: []string{"report", "exam", "-exam", "42"}, wantOut: []string{"0 ", "-"}},
		{name: "audit", args: []string{"report", "audit"}, wantOut: []string{"OPERATION", "INSERT"}},
		{name: "audit of one grade", args: []string{"report", "audit", "-grade", "3"}, wantOut: []string{"7.50"}},
	})

	// history lists the most recent exam first
	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "report", "history", "-student", "1"}))
	assert.Less(t, strings.Index(out.String(), "2025-06-05"), strings.Index(out.String(), "2025-06-01"))

	// top leaves Luis out with -n 1
	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "report", "top", "-n", "1"}))
	assert.NotContains(t, out.String(), "Luis")
}
