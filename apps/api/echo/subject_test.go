package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/subject"
	"github.com/aulahub/academia/core/testutil"
)

func Test_subjectApi(t *testing.T) {
	db.Reset()

	math := testutil.CreateSubject(t, subjRepo, "Mathematics", 6)
	hist := testutil.CreateSubject(t, subjRepo, "History", 4)
	ex := testutil.CreateExam(t, examRepo, "Midterm 1", math.ID, core.NewDate(2024, 3, 1))
	stdt := testutil.CreateStudent(t, stdtRepo, "Ana", "ana@test.edu", "secret1", 21, 28)
	testutil.CreateEnrollment(t, enrlRepo, stdt.ID, math.ID)
	testutil.CreateGrade(t, grdRepo, stdt.ID, ex.ID, 8.5)

	renamed := subject.SubjectDTO{ID: hist.ID, Name: "World History", Credits: 5}

	tests := []httpTest{
		{
			name:     "list ordered by name",
			method:   http.MethodGet,
			path:     "/api/subjects?ordering=name",
			wantCode: http.StatusOK,
			wantData: marshalList(t, subject.ToDTO(hist), subject.ToDTO(math)),
		},
		{
			name:     "create: blank name",
			method:   http.MethodPost,
			path:     "/api/subjects",
			body:     []byte(`{"name":"   ","credits":3}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name":"this field is required"}`),
		},
		{
			name:     "create: negative credits",
			method:   http.MethodPost,
			path:     "/api/subjects",
			body:     []byte(`{"name":"Physics","credits":-3}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"credits":"credits must be 0 or greater"}`),
		},
		{
			name:     "update",
			method:   http.MethodPut,
			path:     "/api/subjects/2",
			body:     marshalObj(t, renamed),
			wantCode: http.StatusNoContent,
		},
		{
			name:     "get updated",
			method:   http.MethodGet,
			path:     "/api/subjects/2",
			wantCode: http.StatusOK,
			wantData: marshalObj(t, renamed),
		},
		{
			name:     "update: not found",
			method:   http.MethodPut,
			path:     "/api/subjects/42",
			body:     []byte(`{"id":42,"name":"Physics","credits":3}`),
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error":"subject not found"}`),
		},
		{
			name:     "delete cascades",
			method:   http.MethodDelete,
			path:     "/api/subjects/1",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "delete: not found",
			method:   http.MethodDelete,
			path:     "/api/subjects/1",
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error":"subject not found"}`),
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

	ctx := context.Background()
	exams, _ := examRepo.QueryExams(ctx, core.DefaultOrdering)
	enrollments, _ := enrlRepo.QueryEnrollments(ctx, core.DefaultOrdering)
	grades, _ := grdRepo.QueryGrades(ctx, core.DefaultOrdering)
	assert.Empty(t, exams)
	assert.Empty(t, enrollments)
	assert.Empty(t, grades)
}
