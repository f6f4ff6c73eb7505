package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/testutil"
)

// createVia posts body to path and returns the new resource id.
func createVia(t *testing.T, path string, body string) int {
	t.Helper()
	rec := serve(httpTest{method: http.MethodPost, path: path, body: []byte(body)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, path+"/"+strconv.Itoa(created.ID), rec.Header().Get("Location"))
	return created.ID
}

func TestAPI_endToEnd(t *testing.T) {
	db.Reset()

	exam.NowFunc = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	defer func() { exam.NowFunc = time.Now }()

	subjID := createVia(t, "/api/subjects", `{"name":"Mathematics","credits":6}`)
	stdtID := createVia(t, "/api/students",
		`{"name":"Ana","age":21,"email":"ana@test.edu","password":"secret1","credits":28}`)
	createVia(t, "/api/enrollments", `{"student_id":`+strconv.Itoa(stdtID)+`,"subject_id":`+strconv.Itoa(subjID)+`}`)
	examID := createVia(t, "/api/exams", `{"title":"Midterm 1","subject_id":`+strconv.Itoa(subjID)+`}`)

	gradeBody := `{"student_id":` + strconv.Itoa(stdtID) + `,"exam_id":` + strconv.Itoa(examID) + `,"score":8.5}`
	gradeID := createVia(t, "/api/grades", gradeBody)

	tests := []httpTest{
		{
			name:     "exam scheduled today by default",
			method:   http.MethodGet,
			path:     "/api/exams/" + strconv.Itoa(examID),
			wantCode: http.StatusOK,
			wantData: marshalObj(t, exam.ExamDTO{ID: examID, Title: "Midterm 1", SubjectID: subjID, ScheduledAt: core.NewDate(2024, 3, 1)}),
		},
		{
			name:     "get grade",
			method:   http.MethodGet,
			path:     "/api/grades/" + strconv.Itoa(gradeID),
			wantCode: http.StatusOK,
			wantData: marshalObj(t, grade.GradeDTO{ID: gradeID, StudentID: stdtID, ExamID: examID, Score: 8.5}),
		},
		{
			name:     "duplicate grade",
			method:   http.MethodPost,
			path:     "/api/grades",
			body:     []byte(gradeBody),
			wantCode: http.StatusConflict,
			wantData: []byte(`{"error":"the student already has a grade recorded for this exam"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(tt))
		})
	}

	grades, err := grdRepo.QueryGrades(context.Background(), core.DefaultOrdering)
	require.NoError(t, err)
	assert.Len(t, grades, 1)
}

func Test_gradeApi_create(t *testing.T) {
	db.Reset()

	subj := testutil.CreateSubject(t, subjRepo, "Mathematics", 6)
	ex := testutil.CreateExam(t, examRepo, "Midterm 1", subj.ID, core.NewDate(2024, 3, 1))
	stdt := testutil.CreateStudent(t, stdtRepo, "Ana", "ana@test.edu", "secret1", 21, 28)

	body := func(stdtID, examID int, score string) []byte {
		return []byte(`{"student_id":` + strconv.Itoa(stdtID) + `,"exam_id":` + strconv.Itoa(examID) + `,"score":` + score + `}`)
	}

	tests := []httpTest{
		{
			name:     "missing refs",
			body:     []byte(`{"score":5}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"student_id":"this field is required","exam_id":"this field is required"}`),
		},
		{
			name:     "refs out of range",
			body:     []byte(`{"student_id":3000000000,"exam_id":-1,"score":5}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"student_id":"this field must be a valid id","exam_id":"this field must be a valid id"}`),
		},
		{
			name:     "score too high",
			body:     body(stdt.ID, ex.ID, "10.5"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"score":"score must be 10 or less"}`),
		},
		{
			name:     "negative score",
			body:     body(stdt.ID, ex.ID, "-1"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"score":"score must be 0 or greater"}`),
		},
		{
			name:     "unknown student",
			body:     body(42, ex.ID, "5"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"insert or update on table \"grades\" violates foreign key constraint \"grades_student_id_fkey\""}`),
		},
		{
			name:     "unknown exam",
			body:     body(stdt.ID, 42, "5"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"insert or update on table \"grades\" violates foreign key constraint \"grades_exam_id_fkey\""}`),
		},
		{
			name:     "rounded to 2 decimals",
			body:     body(stdt.ID, ex.ID, "7.456"),
			wantCode: http.StatusCreated,
			wantData: marshalObj(t, grade.GradeDTO{ID: 1, StudentID: stdt.ID, ExamID: ex.ID, Score: 7.46}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/api/grades"

		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(tt))
		})
	}
}

func Test_gradeApi_updateAndDestroy(t *testing.T) {
	db.Reset()

	subj := testutil.CreateSubject(t, subjRepo, "Mathematics", 6)
	ex1 := testutil.CreateExam(t, examRepo, "Midterm 1", subj.ID, core.NewDate(2024, 3, 1))
	ex2 := testutil.CreateExam(t, examRepo, "Midterm 2", subj.ID, core.NewDate(2024, 5, 1))
	stdt := testutil.CreateStudent(t, stdtRepo, "Ana", "ana@test.edu", "secret1", 21, 28)
	g1 := testutil.CreateGrade(t, grdRepo, stdt.ID, ex1.ID, 8.5)
	g2 := testutil.CreateGrade(t, grdRepo, stdt.ID, ex2.ID, 6)

	body := func(g grade.Grade) []byte {
		return marshalObj(t, grade.UpdateGrade{ID: g.ID, StudentID: g.StudentID, ExamID: g.ExamID, Score: g.Score})
	}
	moved := g2
	moved.ExamID = ex1.ID
	rescored := g1
	rescored.Score = 9.25

	tests := []httpTest{
		{
			name:     "id mismatch",
			method:   http.MethodPut,
			path:     "/api/grades/" + strconv.Itoa(g1.ID),
			body:     body(g2),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"the id in the path does not match the id in the body"}`),
		},
		{
			name:     "update into a duplicate",
			method:   http.MethodPut,
			path:     "/api/grades/" + strconv.Itoa(g2.ID),
			body:     body(moved),
			wantCode: http.StatusConflict,
			wantData: []byte(`{"error":"the student already has a grade recorded for this exam"}`),
		},
		{
			name:     "update",
			method:   http.MethodPut,
			path:     "/api/grades/" + strconv.Itoa(g1.ID),
			body:     body(rescored),
			wantCode: http.StatusNoContent,
		},
		{
			name:     "delete",
			method:   http.MethodDelete,
			path:     "/api/grades/" + strconv.Itoa(g2.ID),
			wantCode: http.StatusNoContent,
		},
		{
			name:     "delete again",
			method:   http.MethodDelete,
			path:     "/api/grades/" + strconv.Itoa(g2.ID),
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error":"grade not found"}`),
		},
		{
			name:     "list",
			method:   http.MethodGet,
			path:     "/api/grades",
			wantCode: http.StatusOK,
			wantData: marshalList(t, grade.ToDTO(rescored)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt)
			if tt.wantData == nil {
				checkCode(t, tt, rec)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}
