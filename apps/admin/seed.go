package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
)

type seedQuestion struct {
	text    string
	exam    int // index in seedData.exams
	answers []answer.NewAnswer
}

type seedGrade struct {
	student, exam int // indexes in seedData.students and seedData.exams
	score         float64
}

// seedData is the demo data set. References are slice indexes, resolved to ids while seeding.
var seedData = struct {
	students    []student.NewStudent
	subjects    []subject.NewSubject
	enrollments [][2]int // student, subject
	exams       []exam.NewExam
	examSubject []int
	grades      []seedGrade
	questions   []seedQuestion
}{
	students: []student.NewStudent{
		{Name: "Ana López", Age: 21, Email: "ana@example.com", Password: "pass123", Credits: 28},
		{Name: "Luis Pérez", Age: 22, Email: "luis@example.com", Password: "secure456", Credits: 30},
	},
	subjects: []subject.NewSubject{
		{Name: "Mathematics", Credits: 6},
		{Name: "Programming", Credits: 8},
	},
	enrollments: [][2]int{{0, 0}, {0, 1}, {1, 1}},
	exams: []exam.NewExam{
		{Title: "Midterm 1", ScheduledAt: core.NewDate(2025, 6, 1)},
		{Title: "Midterm 1", ScheduledAt: core.NewDate(2025, 6, 5)},
	},
	examSubject: []int{0, 1},
	grades: []seedGrade{
		{student: 0, exam: 0, score: 8.5},
		{student: 0, exam: 1, score: 9},
		{student: 1, exam: 1, score: 7.5},
	},
	questions: []seedQuestion{
		{
			text: "What is the result of 2+2?",
			exam: 0,
			answers: []answer.NewAnswer{
				{Text: "4", IsCorrect: true},
				{Text: "5"},
			},
		},
		{
			text: "What is a variable in programming?",
			exam: 1,
			answers: []answer.NewAnswer{
				{Text: "A place to store data", IsCorrect: true},
				{Text: "A kind of function"},
			},
		},
	},
}

// seed inserts the demo data through the services, so every validation and integrity rule applies.
func (cli *commandLine) seed() error {
	ctx := context.Background()
	data := seedData

	stdtIDs := make([]int, 0, len(data.students))
	for _, ns := range data.students {
		if err := ns.Validate(cli.validate); err != nil {
			return errors.Wrapf(err, "validating student %q", ns.Email)
		}
		stdt, err := cli.svc.student.Create(ctx, ns)
		if err != nil {
			return errors.Wrapf(err, "creating student %q", ns.Email)
		}
		stdtIDs = append(stdtIDs, stdt.ID)
	}

	subjIDs := make([]int, 0, len(data.subjects))
	for _, ns := range data.subjects {
		subj, err := cli.svc.subject.Create(ctx, ns)
		if err != nil {
			return errors.Wrapf(err, "creating subject %q", ns.Name)
		}
		subjIDs = append(subjIDs, subj.ID)
	}

	for _, ref := range data.enrollments {
		ne := enrollment.NewEnrollment{StudentID: stdtIDs[ref[0]], SubjectID: subjIDs[ref[1]]}
		if _, err := cli.svc.enrollment.Create(ctx, ne); err != nil {
			return errors.Wrap(err, "creating enrollment")
		}
	}

	examIDs := make([]int, 0, len(data.exams))
	for i, ne := range data.exams {
		ne.SubjectID = subjIDs[data.examSubject[i]]
		ex, err := cli.svc.exam.Create(ctx, ne)
		if err != nil {
			return errors.Wrapf(err, "creating exam %q", ne.Title)
		}
		examIDs = append(examIDs, ex.ID)
	}

	for _, sg := range data.grades {
		ng := grade.NewGrade{StudentID: stdtIDs[sg.student], ExamID: examIDs[sg.exam], Score: sg.score}
		if _, err := cli.svc.grade.Create(ctx, ng); err != nil {
			return errors.Wrap(err, "creating grade")
		}
	}

	for _, sq := range data.questions {
		q, err := cli.svc.question.Create(ctx, question.NewQuestion{Text: sq.text, ExamID: examIDs[sq.exam]})
		if err != nil {
			return errors.Wrap(err, "creating question")
		}
		for _, na := range sq.answers {
			na.QuestionID = q.ID
			if _, err := cli.svc.answer.Create(ctx, na); err != nil {
				return errors.Wrap(err, "creating answer")
			}
		}
	}

	fmt.Fprintf(cli.out, "seeded %d students, %d subjects, %d exams, %d grades, %d questions\n",
		len(stdtIDs), len(subjIDs), len(examIDs), len(data.grades), len(data.questions))
	return nil
}
