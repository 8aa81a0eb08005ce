//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"car-rental/internal/handler/api"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/cookie"
	"car-rental/internal/usecase/commands"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/httptest"
	"car-rental/tests/common/testutil"
	commandsmock "car-rental/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	handler := api.NewAuthHandler(s.mockCommands, config.NewTestConfig())
	s.router.POST("/auth/login", handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Username: "alice", Password: "pw"}
	user := builder.NewUserBuilder().BuildView()

	s.Run("success: returns token and sets cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{AccessToken: "jwt-token", ExpiresIn: 48 * time.Hour, User: user}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("jwt-token", body.AccessToken)
		s.Equal("Bearer", body.TokenType)
		s.Equal(int64(48*60*60), body.ExpiresIn)
		s.Equal("alice", body.User.Username)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("jwt-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 on missing fields without calling the usecase", func() {
		for _, field := range []string{"user_name", "password"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid username or password")
		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 500 hides internal failures", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Login failed")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}
