package dto

type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func ToUserResponse(user interface {
	GetUserID() string
	GetUsername() string
	GetEmail() string
}) UserResponse {
	return UserResponse{
		UserID:   user.GetUserID(),
		Username: user.GetUsername(),
		Email:    user.GetEmail(),
	}
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	User     UserResponse `json:"user"`
	Message  string       `json:"message"`
	Redirect string       `json:"redirect"`
}
