package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aulahub/academia/core/report"
)

// reportRepository reads from the report functions installed by the migrations.
type reportRepository struct {
	db *sqlx.DB
}

var _ report.Repository = (*reportRepository)(nil)

func NewReportRepository(db *sqlx.DB) *reportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) StudentAverage(ctx context.Context, studentID int) (report.StudentAverage, error) {
	var avg report.StudentAverage
	q := "SELECT student_id, name, average FROM student_average($1)"
	if err := repo.db.GetContext(ctx, &avg, q, studentID); err != nil {
		return report.StudentAverage{}, trapErr(err, "getting student average", report.ErrNoGrades, nil)
	}
	return avg, nil
}

func (repo *reportRepository) GradesBySubject(ctx context.Context) ([]report.SubjectGrade, error) {
	lines := make([]report.SubjectGrade, 0)
	q := "SELECT subject, student, exam, score FROM grades_report_by_subject()"
	if err := repo.db.SelectContext(ctx, &lines, q); err != nil {
		return nil, trapErr(err, "reporting grades by subject", nil, nil)
	}
	return lines, nil
}

func (repo *reportRepository) StudentExamHistory(ctx context.Context, studentID int) ([]report.ExamRecord, error) {
	records := make([]report.ExamRecord, 0)
	q := "SELECT student, subject, exam, scheduled_at, score FROM student_exam_history($1)"
	if err := repo.db.SelectContext(ctx, &records, q, studentID); err != nil {
		return nil, trapErr(err, "getting student exam history", nil, nil)
	}
	return records, nil
}

func (repo *reportRepository) TopStudents(ctx context.Context, n int) ([]report.StudentAverage, error) {
	averages := make([]report.StudentAverage, 0, n)
	q := "SELECT student_id, name, average FROM top_students_by_average($1)"
	if err := repo.db.SelectContext(ctx, &averages, q, n); err != nil {
		return nil, trapErr(err, "getting top students", nil, nil)
	}
	return averages, nil
}

func (repo *reportRepository) ExamStatistics(ctx context.Context, examID int) (report.ExamStats, error) {
	var stats report.ExamStats
	q := "SELECT total, average, min, max, stddev FROM exam_statistics($1)"
	if err := repo.db.GetContext(ctx, &stats, q, examID); err != nil {
		return report.ExamStats{}, trapErr(err, "getting exam statistics", nil, nil)
	}
	return stats, nil
}

func (repo *reportRepository) GradeAudits(ctx context.Context, gradeID int) ([]report.GradeAudit, error) {
	audits := make([]report.GradeAudit, 0)
	q := `SELECT id, grade_id, student_id, exam_id, score, operation, operated_at
		FROM grade_audit WHERE $1 = 0 OR grade_id = $1 ORDER BY id`
	if err := repo.db.SelectContext(ctx, &audits, q, gradeID); err != nil {
		return nil, trapErr(err, "listing grade audits", nil, nil)
	}
	return audits, nil
}
