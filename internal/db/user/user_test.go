package user

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = c.Email("test@test.test")
	PHONE         = c.Phone("0812345678")
	PASSWORD_HASH = user.PasswordHash("test-password-hash")
	RESET_TOKEN   = user.PasswordResetToken("test-reset-token")
)

var NOW time.Time = time.Date(2023, 2, 2, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUserInput() user.CreateUserInput {
	return user.CreateUserInput{
		FirstName:    "Somchai",
		LastName:     "Jaidee",
		Email:        EMAIL,
		Phone:        PHONE,
		PasswordHash: PASSWORD_HASH,
		Country:      "TH",
		ReceiveNews:  true,
		CreatedAt:    NOW,
	}
}

func (suite *testSuite) TestCreateSuccess() {
	u, err := suite.repo.Create(context.Background(), suite.createUserInput())

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal("Somchai", u.FirstName)
	assert.Equal("Jaidee", u.LastName)
	assert.Equal(EMAIL, u.Email)
	assert.Equal(PHONE, u.Phone)
	assert.Equal(PASSWORD_HASH, u.PasswordHash)
	assert.Equal("TH", u.Country)
	assert.True(u.ReceiveNews)
	assert.True(NOW.Equal(u.CreatedAt))
	assert.False(u.ResetToken.IsPresent)
	assert.False(u.ResetTokenExpiresAt.IsPresent)
}

func (suite *testSuite) TestCreateEmailAlreadyExists() {
	ctx := context.Background()
	_, err := suite.repo.Create(ctx, suite.createUserInput())
	suite.Require().Nil(err)

	input := suite.createUserInput()
	input.Phone = c.Phone("0999999999")
	_, err = suite.repo.Create(ctx, input)

	suite.Require().True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestCreatePhoneAlreadyExists() {
	ctx := context.Background()
	_, err := suite.repo.Create(ctx, suite.createUserInput())
	suite.Require().Nil(err)

	input := suite.createUserInput()
	input.Email = c.Email("other@test.test")
	_, err = suite.repo.Create(ctx, input)

	suite.Require().True(errors.Is(err, user.ErrPhoneAlreadyExists))
}

func (suite *testSuite) TestGetByEmailOrPhone() {
	ctx := context.Background()
	created, err := suite.repo.Create(ctx, suite.createUserInput())
	suite.Require().Nil(err)

	assert := suite.Require()

	byEmail, err := suite.repo.GetByEmailOrPhone(ctx, string(EMAIL))
	assert.Nil(err)
	assert.Equal(created.ID, byEmail.ID)

	// Email lookup is case-insensitive.
	byUpperEmail, err := suite.repo.GetByEmailOrPhone(ctx, "Test@Test.TEST")
	assert.Nil(err)
	assert.Equal(created.ID, byUpperEmail.ID)

	byPhone, err := suite.repo.GetByEmailOrPhone(ctx, string(PHONE))
	assert.Nil(err)
	assert.Equal(created.ID, byPhone.ID)

	_, err = suite.repo.GetByEmailOrPhone(ctx, "unknown")
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestSetAndGetByResetToken() {
	ctx := context.Background()
	created, err := suite.repo.Create(ctx, suite.createUserInput())
	suite.Require().Nil(err)

	expiresAt := NOW.Add(time.Hour)
	err = suite.repo.SetPasswordResetToken(ctx, created.ID, RESET_TOKEN, expiresAt)
	suite.Require().Nil(err)

	assert := suite.Require()

	u, err := suite.repo.GetByResetToken(ctx, EMAIL, RESET_TOKEN, NOW)
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.True(u.ResetToken.IsPresent)
	assert.Equal(RESET_TOKEN, u.ResetToken.Value)

	// Expired (boundary inclusive): not found.
	_, err = suite.repo.GetByResetToken(ctx, EMAIL, RESET_TOKEN, expiresAt)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))

	// Wrong token: not found.
	_, err = suite.repo.GetByResetToken(ctx, EMAIL, user.PasswordResetToken("other"), NOW)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))

	// Wrong email: not found.
	_, err = suite.repo.GetByResetToken(ctx, c.Email("other@test.test"), RESET_TOKEN, NOW)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestSetPasswordClearsResetToken() {
	ctx := context.Background()
	created, err := suite.repo.Create(ctx, suite.createUserInput())
	suite.Require().Nil(err)

	err = suite.repo.SetPasswordResetToken(ctx, created.ID, RESET_TOKEN, NOW.Add(time.Hour))
	suite.Require().Nil(err)

	newHash := user.PasswordHash("new-password-hash")
	err = suite.repo.SetPassword(ctx, created.ID, newHash)
	suite.Require().Nil(err)

	assert := suite.Require()

	u, err := suite.repo.GetByEmail(ctx, EMAIL)
	assert.Nil(err)
	assert.Equal(newHash, u.PasswordHash)
	assert.False(u.ResetToken.IsPresent)
	assert.False(u.ResetTokenExpiresAt.IsPresent)

	_, err = suite.repo.GetByResetToken(ctx, EMAIL, RESET_TOKEN, NOW)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestSetPasswordUnknownUser() {
	err := suite.repo.SetPassword(context.Background(), user.ID(424242), PASSWORD_HASH)
	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}
