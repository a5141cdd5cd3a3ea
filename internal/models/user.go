package models

// User is the portfolio owner's profile. The collection holds at most one
// document; Create rejects a second profile.
type User struct {
	ID                int      `bson:"id" json:"id"`
	FullName          string   `bson:"fullName" json:"fullName"`
	Image             string   `bson:"image" json:"image"` // public media URL, "" when none
	Title             string   `bson:"title" json:"title"`
	Tagline           string   `bson:"tagline" json:"tagline"`
	Introduction      string   `bson:"introduction" json:"introduction"`
	KeySkills         []string `bson:"keySkills" json:"keySkills"`
	Status            string   `bson:"status" json:"status"`
	CV                string   `bson:"cv" json:"cv"` // public media URL, "" when none
	YearsOfExperience int      `bson:"yearsOfExperience" json:"yearsOfExperience"`
}

const DefaultUserStatus = "Open to Work"

// UserStatuses is the fixed set of availability statuses the dashboard offers.
var UserStatuses = []string{
	"Seeking New Career Opportunities",
	"Open to Work",
	"Freelancing",
	"Employed",
	"Available for Collaboration",
	"Working on Personal Projects",
	"Interning",
	"Exploring New Technologies",
	"Unavailable",
	"Remote Only",
	"Contract-Based Work Only",
}

func ValidUserStatus(s string) bool {
	for _, v := range UserStatuses {
		if v == s {
			return true
		}
	}
	return false
}
