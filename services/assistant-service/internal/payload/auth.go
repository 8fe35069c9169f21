package payload

type SignupRequest struct {
	Name              string `json:"name"              validate:"required,notblank,max=100"`
	Email             string `json:"email"             validate:"required,email,max=254"`
	Password          string `json:"password"          validate:"required,min=8,max=128"`
	CollegeCourseName string `json:"collegeCourseName" validate:"required,notblank,max=200"`
	University        string `json:"university"        validate:"required,notblank,max=200"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
