package payload

type ProfileResponse struct {
	Name              string `json:"name"`
	CollegeCourseName string `json:"collegeCourseName"`
	University        string `json:"university"`
	ResponseFormat    string `json:"responseFormat"`
}

type UpdateProfileRequest struct {
	Name              string `json:"name"              validate:"required,notblank,max=100"`
	CollegeCourseName string `json:"collegeCourseName" validate:"required,notblank,max=200"`
	University        string `json:"university"        validate:"required,notblank,max=200"`
	ResponseFormat    string `json:"responseFormat"    validate:"max=500"`
}

type UpdateProfileResponse struct {
	Message string           `json:"message"`
	User    *ProfileResponse `json:"user,omitempty"`
}
