//go:build unit || integration

package authtest

import (
	"net/http"
	"testing"

	"fleetrent/internal/handler/dto/request"
	"fleetrent/internal/handler/dto/response"
	"fleetrent/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// RegisterPerson creates a person through the public registration endpoint so
// the stored password hash is the real one.
func RegisterPerson(t *testing.T, router *gin.Engine, name, email, password, role string) uuid.UUID {
	t.Helper()

	req := request.RegisterPersonRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	switch role {
	case "customer":
		req.LicenseNumber = "DL-0001"
	case "employee":
		req.BadgeNumber = "EMP-0001"
	}

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/persons", req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.PersonResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID, "Person ID should not be empty")

	return created.ID
}

func LoginPerson(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	err := httptest.DecodeResponseBody(t, w.Body, &body)
	require.NoError(t, err)
	require.NotEmpty(t, body.AccessToken, "Access token should not be empty")

	return body.AccessToken
}

func RegisterAndLogin(t *testing.T, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()

	id := RegisterPerson(t, router, "Test Person", email, DefaultPassword, role)
	token := LoginPerson(t, router, email, DefaultPassword)
	return id, token
}
