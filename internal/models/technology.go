package models

type Technology struct {
	ID       int    `bson:"id" json:"id"`
	Category string `bson:"category" json:"category"`
	Name     string `bson:"name" json:"name"` // unique per collection
	Icon     string `bson:"icon" json:"icon"` // public media URL
}

// TechnologyCategories is the fixed category set; anything else is a 400.
var TechnologyCategories = []string{
	"Frontend",
	"Backend",
	"Mobile Development",
	"AI & Machine Learning",
	"Data Science",
	"DevOps",
	"Database",
	"IoT",
	"UI/UX Design",
	"Scientific Computing",
	"Programming Languages",
}

func ValidTechnologyCategory(c string) bool {
	for _, v := range TechnologyCategories {
		if v == c {
			return true
		}
	}
	return false
}
