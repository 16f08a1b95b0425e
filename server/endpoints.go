package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guicampos/tale/internal/version"
	"github.com/guicampos/tale/server/dao"
	"github.com/guicampos/tale/server/serr"
)

// POST /login: create a new login with token
func (ts TaleServer) doEndpoint_Login_POST(req *http.Request) endpointResult {
	loginData := LoginRequest{}
	err := parseJSON(req, &loginData)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	if loginData.Username == "" {
		return jsonBadRequest("username: property is empty or missing from request", "empty username")
	}
	if loginData.Password == "" {
		return jsonBadRequest("password: property is empty or missing from request", "empty password")
	}

	user, err := ts.Login(req.Context(), loginData.Username, loginData.Password)
	if err != nil {
		if errors.Is(err, serr.ErrBadCredentials) {
			return jsonUnauthorized(err.Error())
		}
		return jsonInternalServerError(err.Error())
	}

	// password is valid, generate token for user and return it
	tok, err := ts.generateJWT(user)
	if err != nil {
		return jsonInternalServerError("could not generate JWT: " + err.Error())
	}

	resp := LoginResponse{
		Token:  tok,
		UserID: user.ID.String(),
	}
	return jsonCreated(resp, "user '"+user.Username+"' successfully logged in")
}

// POST /tokens: create a new token for self (auth required)
func (ts TaleServer) doEndpoint_Token_POST(req *http.Request) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	tok, err := ts.generateJWT(user)
	if err != nil {
		return jsonInternalServerError("could not generate JWT: " + err.Error())
	}

	resp := LoginResponse{
		Token:  tok,
		UserID: user.ID.String(),
	}
	return jsonCreated(resp, "user '"+user.Username+"' successfully created new token")
}

// DELETE /login/{id}: remove a login for some user (log out). Logging out
// anybody but self requires the Admin role.
func (ts TaleServer) doEndpoint_LoginID_DELETE(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	if id != user.ID && user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) logout of user %s: forbidden", user.Username, user.Role, id)
	}

	loggedOutUser, err := ts.Logout(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not log out user: " + err.Error())
	}

	otherStr := "self"
	if id != user.ID {
		otherStr = "user '" + loggedOutUser.Username + "'"
	}

	return jsonNoContent("user '%s' successfully logged out %s", user.Username, otherStr)
}

// POST /users: create a new user (admin auth required)
func (ts TaleServer) doEndpoint_Users_POST(req *http.Request) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	if user.Role != dao.Admin {
		return jsonForbidden()
	}

	var createUser UserModel
	err = parseJSON(req, &createUser)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	if createUser.Username == "" {
		return jsonBadRequest("username: property is empty or missing from request", "empty username")
	}
	if createUser.Password == "" {
		return jsonBadRequest("password: property is empty or missing from request", "empty password")
	}

	role := dao.Unverified
	if createUser.Role != "" {
		role, err = dao.ParseRole(createUser.Role)
		if err != nil {
			return jsonBadRequest("role: "+err.Error(), "role: %s", err.Error())
		}
	}

	newUser, err := ts.CreateUser(req.Context(), createUser.Username, createUser.Password, role)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			return jsonConflict("User with that username already exists", "user '%s' already exists", createUser.Username)
		} else if errors.Is(err, serr.ErrBadArgument) {
			return jsonBadRequest(err.Error(), err.Error())
		}
		return jsonInternalServerError(err.Error())
	}

	resp := userModelOf(newUser)
	return jsonCreated(resp, "user '%s' (%s) created", resp.Username, resp.ID)
}

// GET /users: get all users (admin auth required)
func (ts TaleServer) doEndpoint_Users_GET(req *http.Request) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	if user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) list users: forbidden", user.Username, user.Role)
	}

	users, err := ts.GetAllUsers(req.Context())
	if err != nil {
		return jsonInternalServerError(err.Error())
	}

	resp := make([]UserModel, len(users))
	for i := range users {
		resp[i] = userModelOf(users[i])
	}

	return jsonOK(resp, "user '%s' got all users", user.Username)
}

// GET /users/{id}: get a user. Any authed user may get themselves; getting
// others requires the Admin role.
func (ts TaleServer) doEndpoint_UsersID_GET(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	if id != user.ID && user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) get user %s: forbidden", user.Username, user.Role, id)
	}

	gotUser, err := ts.GetUser(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		} else if errors.Is(err, serr.ErrBadArgument) {
			return jsonBadRequest(err.Error(), err.Error())
		}
		return jsonInternalServerError(err.Error())
	}

	return jsonOK(userModelOf(gotUser), "user '%s' got user '%s'", user.Username, gotUser.Username)
}

// PATCH /users/{id}: update a user's username, role, or password. Only the
// admin may change roles or other users.
func (ts TaleServer) doEndpoint_UsersID_PATCH(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	if id != user.ID && user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) update user %s: forbidden", user.Username, user.Role, id)
	}

	var update UserModel
	err = parseJSON(req, &update)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	existing, err := ts.GetUser(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError(err.Error())
	}

	newUsername := existing.Username
	if update.Username != "" {
		newUsername = update.Username
	}
	newRole := existing.Role
	if update.Role != "" {
		if user.Role != dao.Admin {
			return jsonForbidden("user '%s' (role %s) change role: forbidden", user.Username, user.Role)
		}
		newRole, err = dao.ParseRole(update.Role)
		if err != nil {
			return jsonBadRequest("role: "+err.Error(), "role: %s", err.Error())
		}
	}

	updated, err := ts.UpdateUser(req.Context(), id.String(), newUsername, newRole)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			return jsonConflict("User with that username already exists", "user '%s' already exists", newUsername)
		} else if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		} else if errors.Is(err, serr.ErrBadArgument) {
			return jsonBadRequest(err.Error(), err.Error())
		}
		return jsonInternalServerError(err.Error())
	}

	if update.Password != "" {
		updated, err = ts.UpdatePassword(req.Context(), id.String(), update.Password)
		if err != nil {
			if errors.Is(err, serr.ErrBadArgument) {
				return jsonBadRequest(err.Error(), err.Error())
			}
			return jsonInternalServerError(err.Error())
		}
	}

	return jsonOK(userModelOf(updated), "user '%s' updated user '%s'", user.Username, updated.Username)
}

// DELETE /users/{id}: delete a user. Requires admin auth for any but own ID.
func (ts TaleServer) doEndpoint_UsersID_DELETE(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	if id != user.ID && user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) delete user %s: forbidden", user.Username, user.Role, id)
	}

	deletedUser, err := ts.DeleteUser(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		} else if errors.Is(err, serr.ErrBadArgument) {
			return jsonBadRequest(err.Error(), err.Error())
		}
		return jsonInternalServerError("could not delete user: " + err.Error())
	}

	otherStr := "self"
	if id != user.ID {
		otherStr = "user '" + deletedUser.Username + "'"
	}

	return jsonNoContent("user '%s' successfully deleted %s", user.Username, otherStr)
}

// POST /sessions: start a new game session for self (auth required)
func (ts TaleServer) doEndpoint_Sessions_POST(req *http.Request) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	sesh, output, err := ts.StartSession(req.Context(), user)
	if err != nil {
		return jsonInternalServerError("could not start session: " + err.Error())
	}

	resp := sessionModelOf(sesh)
	resp.Output = output
	return jsonCreated(resp, "user '%s' started session %s", user.Username, sesh.ID)
}

// GET /sessions/{id}: get a game session. Sessions are visible to their
// owner and the admin.
func (ts TaleServer) doEndpoint_SessionsID_GET(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	sesh, err := ts.GetSession(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError(err.Error())
	}

	if sesh.UserID != user.ID && user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) get session %s: forbidden", user.Username, user.Role, id)
	}

	return jsonOK(sessionModelOf(sesh), "user '%s' got session %s", user.Username, id)
}

// DELETE /sessions/{id}: end a game session. Only the owner or the admin
// may end it.
func (ts TaleServer) doEndpoint_SessionsID_DELETE(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	sesh, err := ts.GetSession(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError(err.Error())
	}

	if sesh.UserID != user.ID && user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) end session %s: forbidden", user.Username, user.Role, id)
	}

	if _, err := ts.EndSession(req.Context(), id); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError(err.Error())
	}

	return jsonNoContent("user '%s' ended session %s", user.Username, id)
}

// POST /sessions/{id}/commands: run a command in a game session. Only the
// session's owner may send commands to it.
func (ts TaleServer) doEndpoint_SessionsIDCommands_POST(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	sesh, err := ts.GetSession(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError(err.Error())
	}

	if sesh.UserID != user.ID {
		return jsonForbidden("user '%s' command in session %s: forbidden", user.Username, id)
	}

	var comData CommandRequest
	err = parseJSON(req, &comData)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	if strings.TrimSpace(comData.Input) == "" {
		return jsonBadRequest("input: property is empty or missing from request", "empty input")
	}

	output, err := ts.ExecuteCommand(req.Context(), id, comData.Input)
	if err != nil {
		return jsonInternalServerError("could not execute command: " + err.Error())
	}

	resp := CommandResponse{
		Input:  comData.Input,
		Output: output,
	}
	return jsonOK(resp, "user '%s' ran command in session %s", user.Username, id)
}

// GET /sessions/{id}/commands: get a session's command history, oldest
// first. Visible to the session's owner and the admin.
func (ts TaleServer) doEndpoint_SessionsIDCommands_GET(req *http.Request, id uuid.UUID) endpointResult {
	user, err := ts.requireJWT(req.Context(), req)
	if err != nil {
		return jsonUnauthorized(err.Error())
	}

	sesh, err := ts.GetSession(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError(err.Error())
	}

	if sesh.UserID != user.ID && user.Role != dao.Admin {
		return jsonForbidden("user '%s' (role %s) get history of session %s: forbidden", user.Username, user.Role, id)
	}

	coms, err := ts.CommandHistory(req.Context(), id)
	if err != nil {
		return jsonInternalServerError(err.Error())
	}

	resp := make([]CommandModel, len(coms))
	for i := range coms {
		resp[i] = CommandModel{
			ID:        coms[i].ID.String(),
			SessionID: coms[i].SessionID.String(),
			Input:     coms[i].Input,
			Created:   coms[i].Created.Format(time.RFC3339),
		}
	}

	return jsonOK(resp, "user '%s' got history of session %s", user.Username, id)
}

// GET /info: version info on the game and server (no auth required)
func (ts TaleServer) doEndpoint_Info_GET(req *http.Request) endpointResult {
	resp := InfoModel{
		Version:       version.Current,
		ServerVersion: version.ServerCurrent,
	}
	return jsonOK(resp, "info returned")
}

func userModelOf(u dao.User) UserModel {
	return UserModel{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role.String(),
	}
}

func sessionModelOf(s dao.Session) SessionModel {
	return SessionModel{
		ID:        s.ID.String(),
		UserID:    s.UserID.String(),
		Location:  s.State.Location,
		Inventory: s.State.Inventory,
		Created:   s.Created.Format(time.RFC3339),
	}
}

// v must be a pointer to a type.
func parseJSON(req *http.Request, v interface{}) error {
	contentType := req.Header.Get("Content-Type")

	if strings.ToLower(contentType) != "application/json" {
		return fmt.Errorf("request content-type is not application/json")
	}

	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}

	err = json.Unmarshal(bodyData, v)
	if err != nil {
		return fmt.Errorf("malformed JSON in request")
	}

	return nil
}
