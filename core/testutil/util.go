// Package testutil creates fixtures through the repositories, bypassing the services.
package testutil

import (
	"context"
	"testing"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
)

func CreateStudent(t *testing.T, repo student.Repository, name, email, pwd string, age, credits int) student.Student {
	stdt := student.Student{
		Name:    name,
		Age:     age,
		Email:   email,
		Credits: credits,
	}
	if err := stdt.SetPassword(pwd); err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	id, err := repo.CreateStudent(context.Background(), stdt)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	stdt.ID = id
	return stdt
}

func CreateSubject(t *testing.T, repo subject.Repository, name string, credits int) subject.Subject {
	subj := subject.Subject{Name: name, Credits: credits}
	id, err := repo.CreateSubject(context.Background(), subj)
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	subj.ID = id
	return subj
}

func CreateEnrollment(t *testing.T, repo enrollment.Repository, studentID, subjectID int) enrollment.Enrollment {
	enr := enrollment.Enrollment{StudentID: studentID, SubjectID: subjectID}
	id, err := repo.CreateEnrollment(context.Background(), enr)
	if err != nil {
		t.Fatalf("CreateEnrollment() failed: %v", err)
	}
	enr.ID = id
	return enr
}

func CreateExam(t *testing.T, repo exam.Repository, title string, subjectID int, scheduledAt core.Date) exam.Exam {
	ex := exam.Exam{Title: title, SubjectID: subjectID, ScheduledAt: scheduledAt}
	id, err := repo.CreateExam(context.Background(), ex)
	if err != nil {
		t.Fatalf("CreateExam() failed: %v", err)
	}
	ex.ID = id
	return ex
}

func CreateQuestion(t *testing.T, repo question.Repository, text string, examID int) question.Question {
	q := question.Question{Text: text, ExamID: examID}
	id, err := repo.CreateQuestion(context.Background(), q)
	if err != nil {
		t.Fatalf("CreateQuestion() failed: %v", err)
	}
	q.ID = id
	return q
}

func CreateAnswer(t *testing.T, repo answer.Repository, text string, isCorrect bool, questionID int) answer.Answer {
	a := answer.Answer{Text: text, IsCorrect: isCorrect, QuestionID: questionID}
	id, err := repo.CreateAnswer(context.Background(), a)
	if err != nil {
		t.Fatalf("CreateAnswer() failed: %v", err)
	}
	a.ID = id
	return a
}

func CreateGrade(t *testing.T, repo grade.Repository, studentID, examID int, score float64) grade.Grade {
	g := grade.Grade{StudentID: studentID, ExamID: examID, Score: score}
	id, err := repo.CreateGrade(context.Background(), g)
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	g.ID = id
	return g
}
