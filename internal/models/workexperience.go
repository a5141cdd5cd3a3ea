package models

type WorkExperience struct {
	ID               int      `bson:"id" json:"id"`
	Title            string   `bson:"title" json:"title"`
	Company          string   `bson:"company" json:"company"`
	CompanyLogo      string   `bson:"companyLogo" json:"companyLogo"` // public media URL
	Location         string   `bson:"location" json:"location"`
	Period           string   `bson:"period" json:"period"`
	Description      string   `bson:"description" json:"description"`
	Responsibilities []string `bson:"responsibilities" json:"responsibilities"`
	Technologies     []string `bson:"technologies" json:"technologies"`
}
