package student_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/student"
	inmemdb "github.com/aulahub/academia/storage/database/inmem"
)

func newService() (*student.Service, student.Repository) {
	repo := inmemdb.NewStudentRepository(inmemdb.Open())
	return student.NewService(repo), repo
}

func TestService_CreateAndAuthenticate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	stdt, err := svc.Create(ctx, student.NewStudent{Name: "Ana", Age: 21, Email: "ana@test.edu", Password: "pass123", Credits: 28})
	require.NoError(t, err)
	assert.Equal(t, 1, stdt.ID)

	_, err = svc.Create(ctx, student.NewStudent{Name: "Ana 2", Email: "ana@test.edu", Password: "pass123"})
	assert.Equal(t, student.ErrEmailExists, err)

	tests := []struct {
		name    string
		email   string
		pwd     string
		wantErr error
	}{
		{name: "ok", email: "ana@test.edu", pwd: "pass123"},
		{name: "email case and spaces", email: " ANA@test.edu ", pwd: "pass123"},
		{name: "wrong password", email: "ana@test.edu", pwd: "pass124", wantErr: student.ErrInvalidCredentials},
		{name: "unknown email", email: "bob@test.edu", pwd: "pass123", wantErr: student.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Authenticate(ctx, tt.email, tt.pwd)
			assert.Equal(t, tt.wantErr, err)
			if tt.wantErr == nil {
				assert.Equal(t, stdt.ID, got.ID)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	stdt, err := svc.Create(ctx, student.NewStudent{Name: "Ana", Age: 21, Email: "ana@test.edu", Password: "pass123", Credits: 28})
	require.NoError(t, err)

	update := student.UpdateStudent{ID: stdt.ID, Name: "Ana M", Age: 22, Email: "ana@test.edu", Credits: 30}
	require.NoError(t, svc.Update(ctx, update))
	got, err := repo.GetStudentByID(ctx, stdt.ID)
	require.NoError(t, err)
	assert.Equal(t, stdt.PasswordHash, got.PasswordHash, "no password keeps the stored hash")
	assert.Equal(t, "Ana M", got.Name)

	update.Password = null.StringFrom("newpass1")
	require.NoError(t, svc.Update(ctx, update))
	got, err = repo.GetStudentByID(ctx, stdt.ID)
	require.NoError(t, err)
	assert.NoError(t, got.CheckPassword("newpass1"))

	update.ID = 42
	assert.Equal(t, student.ErrNotFound, svc.Update(ctx, update))
	assert.Equal(t, student.ErrNotFound, svc.Delete(ctx, 42))
}

func TestService_Query(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	for _, ns := range []student.NewStudent{
		{Name: "Cid", Email: "cid@test.edu", Password: "pass123", Credits: 10},
		{Name: "Ana", Email: "ana@test.edu", Password: "pass123", Credits: 30},
	} {
		_, err := svc.Create(ctx, ns)
		require.NoError(t, err)
	}

	students, err := svc.Query(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cid", "Ana"}, []string{students[0].Name, students[1].Name})

	students, err = svc.Query(ctx, []core.DBOrdering{{Field: "name", Ascending: true}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Cid"}, []string{students[0].Name, students[1].Name})

	_, err = svc.Query(ctx, []core.DBOrdering{{Field: "password_hash"}})
	assert.Error(t, err)
}

func TestService_ResetPassword(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	stdt, err := svc.Create(ctx, student.NewStudent{Name: "Ana", Email: "ana@test.edu", Password: "pass123"})
	require.NoError(t, err)

	assert.Equal(t, student.ErrNotFound, svc.ResetPassword(ctx, "bob@test.edu", "newpass1"))
	require.NoError(t, svc.ResetPassword(ctx, "Ana@Test.edu", "newpass1"))

	got, err := repo.GetStudentByID(ctx, stdt.ID)
	require.NoError(t, err)
	assert.NoError(t, got.CheckPassword("newpass1"))
}
