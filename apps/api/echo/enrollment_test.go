package echoapi

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/testutil"
)

func Test_enrollmentApi(t *testing.T) {
	db.Reset()

	subj := testutil.CreateSubject(t, subjRepo, "Mathematics", 6)
	ana := testutil.CreateStudent(t, stdtRepo, "Ana", "ana@test.edu", "secret1", 21, 28)
	bob := testutil.CreateStudent(t, stdtRepo, "Bob", "bob@test.edu", "secret1", 19, 40)
	enr := testutil.CreateEnrollment(t, enrlRepo, ana.ID, subj.ID)

	body := func(stdtID, subjID int) []byte {
		return []byte(`{"student_id":` + strconv.Itoa(stdtID) + `,"subject_id":` + strconv.Itoa(subjID) + `}`)
	}

	tests := []httpTest{
		{
			name:     "list",
			method:   http.MethodGet,
			path:     "/api/enrollments",
			wantCode: http.StatusOK,
			wantData: marshalList(t, enrollment.ToDTO(enr)),
		},
		{
			name:     "create: unknown subject",
			method:   http.MethodPost,
			path:     "/api/enrollments",
			body:     body(bob.ID, 42),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"insert or update on table \"enrollments\" violates foreign key constraint \"enrollments_subject_id_fkey\""}`),
		},
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/api/enrollments",
			body:     body(bob.ID, subj.ID),
			wantCode: http.StatusCreated,
			wantData: marshalObj(t, enrollment.EnrollmentDTO{ID: 2, StudentID: bob.ID, SubjectID: subj.ID}),
		},
		{
			name:     "update: unknown student",
			method:   http.MethodPut,
			path:     "/api/enrollments/1",
			body:     []byte(`{"id":1,"student_id":42,"subject_id":` + strconv.Itoa(subj.ID) + `}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"insert or update on table \"enrollments\" violates foreign key constraint \"enrollments_student_id_fkey\""}`),
		},
		{
			name:     "get",
			method:   http.MethodGet,
			path:     "/api/enrollments/2",
			wantCode: http.StatusOK,
			wantData: marshalObj(t, enrollment.EnrollmentDTO{ID: 2, StudentID: bob.ID, SubjectID: subj.ID}),
		},
		{
			name:     "delete",
			method:   http.MethodDelete,
			path:     "/api/enrollments/2",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "get deleted",
			method:   http.MethodGet,
			path:     "/api/enrollments/2",
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error":"enrollment not found"}`),
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
