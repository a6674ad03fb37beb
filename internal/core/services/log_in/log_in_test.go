package login

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = c.Email("test@test.test")
	PHONE        = c.Phone("0812345678")
	RAW_PASSWORD = user.RawPassword("test-password")
)

var NOW time.Time = time.Date(2023, 2, 2, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
	)

	passwordHash, err := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	suite.Require().Nil(err)
	_, err = suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		FirstName:    "Somchai",
		LastName:     "Jaidee",
		Email:        EMAIL,
		Phone:        PHONE,
		PasswordHash: passwordHash,
		Country:      "TH",
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
}

func TestLogInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccessByEmail() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{Identifier: string(EMAIL), Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal("Somchai", result.User.FirstName)
}

func (suite *testSuite) TestSuccessByPhone() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{Identifier: string(PHONE), Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(EMAIL, result.User.Email)
}

func (suite *testSuite) TestWrongPassword() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{Identifier: string(EMAIL), Password: user.RawPassword("wrong-password")},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrInvalidCredentials))
}

func (suite *testSuite) TestUnknownIdentifier() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{Identifier: "nobody@test.test", Password: RAW_PASSWORD},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrInvalidCredentials))
}

// An unknown identifier and a wrong password must produce the exact same
// outcome.
func (suite *testSuite) TestUnknownIdentifierAndWrongPasswordAreIndistinguishable() {
	ctx := context.Background()
	_, errUnknown := suite.Service.Run(ctx, Input{Identifier: "nobody@test.test", Password: RAW_PASSWORD})
	_, errWrongPassword := suite.Service.Run(
		ctx,
		Input{Identifier: string(EMAIL), Password: user.RawPassword("wrong-password")},
	)

	assert := suite.Require()
	assert.Equal(errUnknown, errWrongPassword)
}
