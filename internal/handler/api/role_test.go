//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"car-rental/internal/domain/role"
	"car-rental/internal/handler/api"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/tests/common/httptest"
	commandsmock "car-rental/tests/mock/commands"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoleCommands
	mockQueries  *queriesmock.MockRoleQueries
}

func (s *RoleHandlerTestSuite) SetupTest() {
	s.router = newRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoleQueries(s.mockCtrl)
	h := api.NewRoleHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/create/role", h.Create)
	s.router.GET("/get/roles", h.List)
	s.router.PUT("/update/role", h.Update)
	s.router.DELETE("/delete/role", h.Delete)
}

func (s *RoleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoleHandlerTestSuite))
}

func (s *RoleHandlerTestSuite) TestCreate() {
	reqBody := reqdto.CreateRoleRequest{RoleName: "admin"}

	s.Run("success: 201 with envelope", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), adminCaller, reqBody).
			Return(&role.Role{ID: 1, Name: "admin"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/create/role", reqBody, adminToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		env := decodeEnvelope[resdto.RoleResponse](s.T(), rec)
		s.Equal(resdto.RoleResponse{ID: 1, Name: "admin"}, env.Data)
		s.Equal("Role created", env.Message)
	})

	s.Run("error: 403 for non-admin caller", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), customerCaller, reqBody).
			Return(nil, usecase.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/create/role", reqBody, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "admin privileges required")
	})

	s.Run("error: 409 on duplicate name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRoleExists).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/create/role", reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "role name already exists")
	})

	s.Run("error: 400 on missing role_name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/create/role", map[string]any{}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 without caller", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/create/role", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *RoleHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().List(gomock.Any(), adminCaller).
		Return([]queries.RoleView{{ID: 1, Name: "admin"}, {ID: 2, Name: "customer"}}, nil).Times(1)

	rec := performQuery(s.router, http.MethodGet, "/get/roles", adminToken)

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	env := decodeEnvelope[[]resdto.RoleResponse](s.T(), rec)
	s.Len(env.Data, 2)
	s.Equal("customer", env.Data[1].Name)
}

func (s *RoleHandlerTestSuite) TestUpdate() {
	s.Run("success: binds query parameters", func() {
		want := reqdto.UpdateRoleRequest{RoleID: 3, RoleName: "manager"}
		s.mockCommands.EXPECT().Update(gomock.Any(), adminCaller, want).
			Return(&role.Role{ID: 3, Name: "manager"}, nil).Times(1)
		rec := performQuery(s.router, http.MethodPut, "/update/role?role_id=3&role_name=manager", adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown role", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRoleNotFound).Times(1)
		rec := performQuery(s.router, http.MethodPut, "/update/role?role_id=99&role_name=x", adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "role not found")
	})

	s.Run("error: 400 for non-positive id", func() {
		rec := performQuery(s.router, http.MethodPut, "/update/role?role_id=0&role_name=x", adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoleHandlerTestSuite) TestDelete() {
	s.Run("error: 409 while users reference the role", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), adminCaller, reqdto.DeleteRoleRequest{RoleID: 1}).
			Return(commands.ErrRoleInUse).Times(1)
		rec := performQuery(s.router, http.MethodDelete, "/delete/role?role_id=1", adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "role is still assigned to users")
	})

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), adminCaller, reqdto.DeleteRoleRequest{RoleID: 2}).
			Return(nil).Times(1)
		rec := performQuery(s.router, http.MethodDelete, "/delete/role?role_id=2", adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("Role deleted", decodeEnvelope[any](s.T(), rec).Message)
	})
}
