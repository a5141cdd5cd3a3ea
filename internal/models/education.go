package models

type Education struct {
	ID          int        `bson:"id" json:"id"`
	Degree      string     `bson:"degree" json:"degree"`
	Institution string     `bson:"institution" json:"institution"`
	Location    string     `bson:"location" json:"location"`
	Period      string     `bson:"period" json:"period"`
	Description string     `bson:"description" json:"description"`
	Courses     StringList `bson:"courses" json:"courses"`
	Options     string     `bson:"options" json:"options"`
}
