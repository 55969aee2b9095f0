package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamtrack-backend/internal/auth"
	"teamtrack-backend/internal/authz"
	"teamtrack-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router  *gin.Engine
	session authz.Session
}

// SetupHTTPTest initializes Gin for testing. Requests carry the session set
// with AsUser, or none.
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	suite := &HTTPTestSuite{Router: gin.New()}

	suite.Router.Use(func(c *gin.Context) {
		if !suite.session.IsZero() {
			auth.SetSession(c, suite.session)
		}
		c.Next()
	})
	return suite
}

// AsUser makes following requests run as a user with id and role
func (suite *HTTPTestSuite) AsUser(id string, role models.Role) *HTTPTestSuite {
	suite.session = authz.Session{UserID: id, Name: id, Role: role}
	return suite
}

// Anonymous drops the session for following requests
func (suite *HTTPTestSuite) Anonymous() *HTTPTestSuite {
	suite.session = authz.Session{}
	return suite
}

// Session returns the session following requests carry
func (suite *HTTPTestSuite) Session() authz.Session {
	return suite.session
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if raw, ok := body.(string); ok {
		reqBody = bytes.NewBufferString(raw)
	} else if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}
