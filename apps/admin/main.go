package main

import (
	"io"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/report"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
	"github.com/aulahub/academia/storage/database"
	inmemdb "github.com/aulahub/academia/storage/database/inmem"
	"github.com/aulahub/academia/storage/database/sqlxrepos"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)

	cli := commandLine{validate: validate, out: os.Stdout}

	var closer io.Closer
	if conf.Database.InMemory {
		db := inmemdb.Open()
		closer = db
		cli.svc = services{
			student:    student.NewService(inmemdb.NewStudentRepository(db)),
			subject:    subject.NewService(inmemdb.NewSubjectRepository(db)),
			enrollment: enrollment.NewService(inmemdb.NewEnrollmentRepository(db)),
			exam:       exam.NewService(inmemdb.NewExamRepository(db)),
			question:   question.NewService(inmemdb.NewQuestionRepository(db)),
			answer:     answer.NewService(inmemdb.NewAnswerRepository(db)),
			grade:      grade.NewService(inmemdb.NewGradeRepository(db)),
			report:     report.NewService(inmemdb.NewReportRepository(db)),
		}
	} else {
		errAndDie(database.CreateIfNotExist(conf))
		db, err := database.Open(conf)
		errAndDie(err)
		closer = db
		cli.db = db.DB
		cli.svc = services{
			student:    student.NewService(sqlxrepos.NewStudentRepository(db)),
			subject:    subject.NewService(sqlxrepos.NewSubjectRepository(db)),
			enrollment: enrollment.NewService(sqlxrepos.NewEnrollmentRepository(db)),
			exam:       exam.NewService(sqlxrepos.NewExamRepository(db)),
			question:   question.NewService(sqlxrepos.NewQuestionRepository(db)),
			answer:     answer.NewService(sqlxrepos.NewAnswerRepository(db)),
			grade:      grade.NewService(sqlxrepos.NewGradeRepository(db)),
			report:     report.NewService(sqlxrepos.NewReportRepository(db)),
		}
	}

	err := cli.run(os.Args)
	_ = closer.Close()
	if err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
