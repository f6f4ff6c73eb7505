package di

import (
	"fmt"
	"io"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/aulahub/academia/apps/api/echo"
	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/report"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
	logsvc "github.com/aulahub/academia/services/logger"
	"github.com/aulahub/academia/storage/database"
	inmemdb "github.com/aulahub/academia/storage/database/inmem"
	"github.com/aulahub/academia/storage/database/sqlxrepos"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

// DBParam carries the storage handle to close on shutdown.
type DBParam struct {
	dig.In
	DB io.Closer `name:"db"`
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newSQLDB(conf *core.Config, loggerParam DBLoggerParam) (*sqlx.DB, error) {
	setUp := func() (*sqlx.DB, error) {
		if err := database.CreateIfNotExist(conf); err != nil {
			return nil, err
		}

		db, err := database.Open(conf)
		if err != nil {
			return nil, err
		}

		if err = database.Migrate(db.DB); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	db, err := setUp()
	if err != nil {
		loggerParam.Logger.Error(fmt.Sprintf("setting up database: %v", err), err)
		return nil, err
	}
	return db, nil
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	return validate
}

type dbCloser struct {
	dig.Out
	DB io.Closer `name:"db"`
}

func provideSQLStorage(c *dig.Container) {
	must(c.Provide(newSQLDB))
	must(c.Provide(func(db *sqlx.DB) dbCloser { return dbCloser{DB: db} }))
	must(c.Provide(sqlxrepos.NewStudentRepository, dig.As(new(student.Repository))))
	must(c.Provide(sqlxrepos.NewSubjectRepository, dig.As(new(subject.Repository))))
	must(c.Provide(sqlxrepos.NewEnrollmentRepository, dig.As(new(enrollment.Repository))))
	must(c.Provide(sqlxrepos.NewExamRepository, dig.As(new(exam.Repository))))
	must(c.Provide(sqlxrepos.NewQuestionRepository, dig.As(new(question.Repository))))
	must(c.Provide(sqlxrepos.NewAnswerRepository, dig.As(new(answer.Repository))))
	must(c.Provide(sqlxrepos.NewGradeRepository, dig.As(new(grade.Repository))))
	must(c.Provide(sqlxrepos.NewReportRepository, dig.As(new(report.Repository))))
}

func provideInMemStorage(c *dig.Container) {
	must(c.Provide(inmemdb.Open))
	must(c.Provide(func(db *inmemdb.DB) dbCloser { return dbCloser{DB: db} }))
	must(c.Provide(inmemdb.NewStudentRepository, dig.As(new(student.Repository))))
	must(c.Provide(inmemdb.NewSubjectRepository, dig.As(new(subject.Repository))))
	must(c.Provide(inmemdb.NewEnrollmentRepository, dig.As(new(enrollment.Repository))))
	must(c.Provide(inmemdb.NewExamRepository, dig.As(new(exam.Repository))))
	must(c.Provide(inmemdb.NewQuestionRepository, dig.As(new(question.Repository))))
	must(c.Provide(inmemdb.NewAnswerRepository, dig.As(new(answer.Repository))))
	must(c.Provide(inmemdb.NewGradeRepository, dig.As(new(grade.Repository))))
	must(c.Provide(inmemdb.NewReportRepository, dig.As(new(report.Repository))))
}

// New returns a new dependency injection dig.Container.
// Repositories are backed by PostgreSQL, or by the in-memory store when conf.Database.InMemory is set.
func New(conf *core.Config) *dig.Container {
	c := dig.New()

	must(c.Provide(func() *core.Config { return conf }))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))

	if conf.Database.InMemory {
		provideInMemStorage(c)
	} else {
		provideSQLStorage(c)
	}

	must(c.Provide(student.NewService))
	must(c.Provide(subject.NewService))
	must(c.Provide(enrollment.NewService))
	must(c.Provide(exam.NewService))
	must(c.Provide(question.NewService))
	must(c.Provide(answer.NewService))
	must(c.Provide(grade.NewService))
	must(c.Provide(report.NewService))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
