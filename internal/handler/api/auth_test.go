//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fleetrent/internal/handler/api"
	reqdto "fleetrent/internal/handler/dto/request"
	resdto "fleetrent/internal/handler/dto/response"
	"fleetrent/internal/usecase/commands"
	"fleetrent/tests/common/builder"
	"fleetrent/tests/common/httptest"
	commandsmock "fleetrent/tests/mock/commands"
	queriesmock "fleetrent/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockPersonQueries
	handler      *api.AuthHandler
	actorID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPersonQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("person_id", s.actorID)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("valid credentials", func() {
		personID := uuid.New()
		s.mockCommands.EXPECT().Login(gomock.Any(), "ada@example.com", "correct-horse").
			Return(&commands.LoginResult{PersonID: personID, Role: "customer", Token: "signed-token"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			reqdto.LoginRequest{Email: "ada@example.com", Password: "correct-horse"}, "")

		var resp struct {
			AccessToken string `json:"access_token"`
			PersonID    string `json:"person_id"`
			Role        string `json:"role"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("signed-token", resp.AccessToken)
		s.Equal(personID.String(), resp.PersonID)
		s.Equal("customer", resp.Role)
	})

	s.Run("bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "ada@example.com", "wrong").
			Return(nil, commands.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			reqdto.LoginRequest{Email: "ada@example.com", Password: "wrong"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("missing email", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]any{"password": "correct-horse"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns profile of the token holder", func() {
		view := builder.NewPersonBuilder().
			With(func(b *builder.PersonBuilder) { b.ID = s.actorID }).
			BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "test-token")

		var resp resdto.PersonResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(s.actorID, resp.ID)
		s.Equal(view.Email, resp.Email)
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})
}
