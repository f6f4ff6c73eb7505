package inmemdb

import (
	"context"
	"math"
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/report"
)

type reportRepository struct {
	db *DB
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *DB) *reportRepository {
	return &reportRepository{db: db}
}

// averages must be called with the read lock held.
func (repo *reportRepository) averages() []report.StudentAverage {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, g := range repo.db.grades {
		sums[g.StudentID] += g.Score
		counts[g.StudentID]++
	}

	avgs := make([]report.StudentAverage, 0, len(sums))
	for id, sum := range sums {
		var name string
		if s, ok := repo.db.students[id]; ok {
			name = s.Name
		}
		avgs = append(avgs, report.StudentAverage{
			StudentID: id,
			Name:      name,
			Average:   grade.RoundScore(sum / float64(counts[id])),
		})
	}
	sort.Slice(avgs, func(i, j int) bool { return avgs[i].StudentID < avgs[j].StudentID })
	return avgs
}

func (repo *reportRepository) StudentAverage(_ context.Context, studentID int) (report.StudentAverage, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, avg := range repo.averages() {
		if avg.StudentID == studentID {
			return avg, nil
		}
	}
	return report.StudentAverage{}, report.ErrNoGrades
}

func (repo *reportRepository) GradesBySubject(_ context.Context) ([]report.SubjectGrade, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	type line struct {
		report.SubjectGrade
		examID int
	}
	lines := make([]line, 0, len(repo.db.grades))
	for _, g := range repo.db.grades {
		ex := repo.db.exams[g.ExamID]
		lines = append(lines, line{
			SubjectGrade: report.SubjectGrade{
				Subject: repo.db.subjects[ex.SubjectID].Name,
				Student: repo.db.students[g.StudentID].Name,
				Exam:    ex.Title,
				Score:   g.Score,
			},
			examID: ex.ID,
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		if a.Student != b.Student {
			return a.Student < b.Student
		}
		return a.examID < b.examID
	})

	out := make([]report.SubjectGrade, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.SubjectGrade)
	}
	return out, nil
}

func (repo *reportRepository) StudentExamHistory(_ context.Context, studentID int) ([]report.ExamRecord, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	stdt, ok := repo.db.students[studentID]
	if !ok {
		return []report.ExamRecord{}, nil
	}
	type record struct {
		report.ExamRecord
		examID int
	}
	records := make([]record, 0)
	for _, g := range repo.db.grades {
		if g.StudentID != studentID {
			continue
		}
		ex := repo.db.exams[g.ExamID]
		records = append(records, record{
			ExamRecord: report.ExamRecord{
				Student:     stdt.Name,
				Subject:     repo.db.subjects[ex.SubjectID].Name,
				Exam:        ex.Title,
				ScheduledAt: ex.ScheduledAt,
				Score:       g.Score,
			},
			examID: ex.ID,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.ScheduledAt.Equal(b.ScheduledAt.Time) {
			return a.ScheduledAt.After(b.ScheduledAt.Time)
		}
		return a.examID > b.examID
	})

	out := make([]report.ExamRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r.ExamRecord)
	}
	return out, nil
}

func (repo *reportRepository) TopStudents(_ context.Context, n int) ([]report.StudentAverage, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	avgs := repo.averages()
	sort.SliceStable(avgs, func(i, j int) bool { return avgs[i].Average > avgs[j].Average })
	if n < len(avgs) {
		avgs = avgs[:n]
	}
	return avgs, nil
}

func (repo *reportRepository) ExamStatistics(_ context.Context, examID int) (report.ExamStats, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	scores := make([]float64, 0)
	for _, g := range repo.db.grades {
		if g.ExamID == examID {
			scores = append(scores, g.Score)
		}
	}
	stats := report.ExamStats{Total: len(scores)}
	if len(scores) == 0 {
		return stats, nil
	}

	sum, lo, hi := 0.0, scores[0], scores[0]
	for _, s := range scores {
		sum += s
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	mean := sum / float64(len(scores))
	stats.Average = null.Float64From(grade.RoundScore(mean))
	stats.Min = null.Float64From(lo)
	stats.Max = null.Float64From(hi)

	// sample standard deviation, undefined for a single grade
	if len(scores) > 1 {
		var sq float64
		for _, s := range scores {
			sq += (s - mean) * (s - mean)
		}
		stats.StdDev = null.Float64From(grade.RoundScore(math.Sqrt(sq / float64(len(scores)-1))))
	}
	return stats, nil
}

func (repo *reportRepository) GradeAudits(_ context.Context, gradeID int) ([]report.GradeAudit, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	audits := make([]report.GradeAudit, 0, len(repo.db.gradeAudit))
	for _, a := range repo.db.gradeAudit {
		if gradeID == 0 || a.GradeID == gradeID {
			audits = append(audits, a)
		}
	}
	return audits, nil
}
