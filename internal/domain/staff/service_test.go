package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
)

// fakeRepo 内存仓储,按邮箱索引
type fakeRepo struct {
	byEmail map[string]*Staff
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*Staff), nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, st *Staff) error {
	if _, exists := r.byEmail[st.Email]; exists {
		return apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已存在")
	}
	st.ID = r.nextID
	r.nextID++
	r.byEmail[st.Email] = st
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Staff, error) {
	for _, st := range r.byEmail {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, ErrStaffNotFound
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*Staff, error) {
	st, ok := r.byEmail[email]
	if !ok {
		return nil, ErrStaffNotFound
	}
	return st, nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	st, err := svc.Register(ctx, "Staff@Library.ORG", "passw0rd123", "Jean Doe")
	require.NoError(t, err)
	assert.Equal(t, "staff@library.org", st.Email, "邮箱应归一化为小写")
	assert.NotEqual(t, "passw0rd123", st.Password, "密码必须加密存储")
	assert.NotZero(t, st.ID)

	// 登录：邮箱大小写不敏感
	got, err := svc.Login(ctx, "STAFF@library.org", "passw0rd123")
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)

	// 密码错误
	_, err = svc.Login(ctx, "staff@library.org", "wrongpass1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	// 账号不存在
	_, err = svc.Login(ctx, "nobody@library.org", "passw0rd123")
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	weak := []string{
		"short1",               // 太短
		"thispasswordistoolong99", // 太长
		"onlyletters",          // 无数字
		"1234567890",           // 无字母
	}

	for _, password := range weak {
		_, err := svc.Register(ctx, "staff@library.org", password, "Jean Doe")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "password=%q", password)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	for _, email := range []string{"", "not-an-email", "missing@domain", "@library.org"} {
		_, err := svc.Register(ctx, email, "passw0rd123", "Jean Doe")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email=%q", email)
	}
}

func TestRegisterInvalidName(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "staff@library.org", "passw0rd123", "J")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "staff@library.org", "passw0rd123", "Jean Doe")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "staff@library.org", "passw0rd456", "Other Staff")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeEmailDuplicate, apperrors.GetAppError(err).Code)
}
