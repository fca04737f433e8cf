package client

import "context"

// AuthService logs users in against the backend.
type AuthService struct {
	c *Client
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and identity.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Login exchanges credentials for a token and installs it on the client.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := s.c.do(ctx, "POST", "/api/login", LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return LoginResponse{}, err
	}
	s.c.SetToken(resp.Token)
	return resp, nil
}
