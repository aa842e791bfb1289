package adminposts

// loginRequest carries the credentials submitted to the login check.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the success payload for the login check. It is a UI
// convenience flag only; no session or token is issued, and every
// subsequent admin request must carry full Basic credentials.
type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
