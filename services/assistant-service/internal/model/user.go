package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered student: credentials plus the profile that shapes prompts.
type User struct {
	ID                bson.ObjectID `bson:"_id,omitempty"`
	Name              string        `bson:"name"`
	Email             string        `bson:"email"`
	PasswordHash      string        `bson:"password_hash"`
	CollegeCourseName string        `bson:"college_course_name"`
	University        string        `bson:"university"`
	ResponseFormat    string        `bson:"response_format"`
	CreatedAt         time.Time     `bson:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at"`
}

// Profile is the mutable, user-visible part of a User.
type Profile struct {
	Name              string
	CollegeCourseName string
	University        string
	ResponseFormat    string
}

// Profile returns the user's current profile fields.
func (u *User) Profile() Profile {
	return Profile{
		Name:              u.Name,
		CollegeCourseName: u.CollegeCourseName,
		University:        u.University,
		ResponseFormat:    u.ResponseFormat,
	}
}
