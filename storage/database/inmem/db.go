// Package inmemdb is a process-local storage backend.
// It enforces the same integrity rules as the PostgreSQL schema (foreign keys, cascades,
// the unique grade per student and exam, the student delete guard and the grade audit trail),
// each write running under a single lock.
package inmemdb

import (
	"fmt"
	"sync"
	"time"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/report"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
)

var NowFunc = time.Now // mockable

const errStudentHasGrades = "cannot delete the student because they have recorded grades"

type DB struct {
	mutex sync.RWMutex

	students    map[int]*student.Student
	subjects    map[int]*subject.Subject
	enrollments map[int]*enrollment.Enrollment
	exams       map[int]*exam.Exam
	questions   map[int]*question.Question
	answers     map[int]*answer.Answer
	grades      map[int]*grade.Grade
	gradeAudit  []report.GradeAudit

	seqs map[string]int
}

func Open() *DB {
	db := &DB{}
	db.reset()
	return db
}

// Reset empties every table and restarts the id sequences.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.reset()
}

func (db *DB) reset() {
	db.students = make(map[int]*student.Student)
	db.subjects = make(map[int]*subject.Subject)
	db.enrollments = make(map[int]*enrollment.Enrollment)
	db.exams = make(map[int]*exam.Exam)
	db.questions = make(map[int]*question.Question)
	db.answers = make(map[int]*answer.Answer)
	db.grades = make(map[int]*grade.Grade)
	db.gradeAudit = nil
	db.seqs = make(map[string]int)
}

func (db *DB) Close() error { return nil }

// nextID must be called with the write lock held.
func (db *DB) nextID(table string) int {
	db.seqs[table]++
	return db.seqs[table]
}

func fkViolation(table, column string) error {
	return core.NewIntegrityError(fmt.Sprintf(
		"insert or update on table %q violates foreign key constraint \"%s_%s_fkey\"", table, table, column,
	))
}

func checkViolation(table, column string) error {
	return core.NewIntegrityError(fmt.Sprintf(
		"new row for relation %q violates check constraint \"%s_%s_check\"", table, table, column,
	))
}

// audit appends a grade_audit row. Must be called with the write lock held.
func (db *DB) audit(g grade.Grade, op string) {
	db.gradeAudit = append(db.gradeAudit, report.GradeAudit{
		ID:         db.nextID("grade_audit"),
		GradeID:    g.ID,
		StudentID:  g.StudentID,
		ExamID:     g.ExamID,
		Score:      g.Score,
		Operation:  op,
		OperatedAt: NowFunc().UTC(),
	})
}

// Cascading deletes. All must be called with the write lock held.

func (db *DB) deleteGrade(id int) {
	if g, ok := db.grades[id]; ok {
		delete(db.grades, id)
		db.audit(*g, report.OpDelete)
	}
}

func (db *DB) deleteQuestion(id int) {
	for aid, a := range db.answers {
		if a.QuestionID == id {
			delete(db.answers, aid)
		}
	}
	delete(db.questions, id)
}

func (db *DB) deleteExam(id int) {
	for qid, q := range db.questions {
		if q.ExamID == id {
			db.deleteQuestion(qid)
		}
	}
	for _, gid := range sortedKeys(db.grades) {
		if db.grades[gid].ExamID == id {
			db.deleteGrade(gid)
		}
	}
	delete(db.exams, id)
}

func (db *DB) deleteSubject(id int) {
	for eid, enr := range db.enrollments {
		if enr.SubjectID == id {
			delete(db.enrollments, eid)
		}
	}
	for _, eid := range sortedKeys(db.exams) {
		if db.exams[eid].SubjectID == id {
			db.deleteExam(eid)
		}
	}
	delete(db.subjects, id)
}

func (db *DB) studentHasGrades(id int) bool {
	for _, g := range db.grades {
		if g.StudentID == id {
			return true
		}
	}
	return false
}
