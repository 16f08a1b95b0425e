package server

// LoginRequest is the JSON body of a login creation request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned for a successful login or token
// refresh.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// UserModel is the JSON representation of a user. Password is only read from
// requests; it is never populated in responses.
type UserModel struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// SessionModel is the JSON representation of a game session.
type SessionModel struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Location  string   `json:"location"`
	Inventory []string `json:"inventory,omitempty"`
	Created   string   `json:"created"`

	// Output is the game text produced by whatever caused this session to be
	// returned. It is only set on session creation.
	Output []string `json:"output,omitempty"`
}

// CommandRequest is the JSON body of a command execution request.
type CommandRequest struct {
	Input string `json:"input"`
}

// CommandResponse is the JSON body returned after executing a command.
type CommandResponse struct {
	Input  string   `json:"input"`
	Output []string `json:"output"`
}

// CommandModel is the JSON representation of one entry of a session's
// command history.
type CommandModel struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Input     string `json:"input"`
	Created   string `json:"created"`
}

// InfoModel is the JSON representation of server version information.
type InfoModel struct {
	Version       string `json:"version"`
	ServerVersion string `json:"server_version"`
}
