package session_test

import (
	"testing"

	"reviewdesk/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SessionTestSuite struct {
	suite.Suite
	store *session.MemoryStore
	sess  *session.Session
}

func (suite *SessionTestSuite) SetupTest() {
	suite.store = session.NewMemoryStore()
	suite.sess = session.New(suite.store)
}

func (suite *SessionTestSuite) TestUnauthenticatedByDefault() {
	assert.False(suite.T(), suite.sess.IsAuthenticated())
	assert.Equal(suite.T(), session.RoleNone, suite.sess.CurrentRole())
}

func (suite *SessionTestSuite) TestLoginPersistsCredential() {
	token := mintToken(suite.T(), "EXPERT")

	suite.sess.Login(token)

	assert.True(suite.T(), suite.sess.IsAuthenticated())
	assert.Equal(suite.T(), session.RoleExpert, suite.sess.CurrentRole())

	got, ok := suite.sess.Token()
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), token, got)
}

func (suite *SessionTestSuite) TestLogoutClearsCredential() {
	suite.sess.Login(mintToken(suite.T(), "ADMIN"))

	suite.sess.Logout()

	assert.False(suite.T(), suite.sess.IsAuthenticated())
	assert.Equal(suite.T(), session.RoleNone, suite.sess.CurrentRole())
}

func (suite *SessionTestSuite) TestMalformedCredentialKeptButRoleless() {
	// A credential that fails to decode degrades to no role but stays
	// in storage; it still counts as authenticated by presence.
	suite.sess.Login("not.a.token")

	assert.True(suite.T(), suite.sess.IsAuthenticated())
	assert.Equal(suite.T(), session.RoleNone, suite.sess.CurrentRole())

	got, ok := suite.store.Token()
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "not.a.token", got)
}

func (suite *SessionTestSuite) TestHasPermission() {
	testCases := []struct {
		name     string
		token    string
		required session.Role
		expected bool
	}{
		{name: "no credential", token: "", required: session.RoleExpert, expected: false},
		{name: "admin passes admin gate", token: mintToken(suite.T(), "ADMIN"), required: session.RoleAdmin, expected: true},
		{name: "admin passes expert gate", token: mintToken(suite.T(), "ADMIN"), required: session.RoleExpert, expected: true},
		{name: "admin passes author gate", token: mintToken(suite.T(), "ADMIN"), required: session.RoleAuthor, expected: true},
		{name: "expert passes expert gate", token: mintToken(suite.T(), "EXPERT"), required: session.RoleExpert, expected: true},
		{name: "expert fails admin gate", token: mintToken(suite.T(), "EXPERT"), required: session.RoleAdmin, expected: false},
		{name: "expert fails author gate", token: mintToken(suite.T(), "EXPERT"), required: session.RoleAuthor, expected: false},
		{name: "undecodable credential fails every gate", token: "garbage", required: session.RoleExpert, expected: false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			store := session.NewMemoryStore()
			store.SetToken(tc.token)
			sess := session.New(store)

			assert.Equal(suite.T(), tc.expected, sess.HasPermission(tc.required))
		})
	}
}

func (suite *SessionTestSuite) TestLandingPath() {
	suite.sess.Login(mintToken(suite.T(), "ADMIN"))
	assert.Equal(suite.T(), session.DashboardPath, suite.sess.LandingPath())

	suite.sess.Login(mintToken(suite.T(), "EXPERT"))
	assert.Equal(suite.T(), session.PapersPath, suite.sess.LandingPath())

	suite.sess.Login(mintToken(suite.T(), "AUTHOR"))
	assert.Equal(suite.T(), session.PapersPath, suite.sess.LandingPath())

	suite.sess.Logout()
	assert.Equal(suite.T(), session.PapersPath, suite.sess.LandingPath())
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
