package models

type Testimonial struct {
	ID             int    `bson:"id" json:"id"`
	Quote          string `bson:"quote" json:"quote"`
	AuthorName     string `bson:"authorName" json:"authorName"`
	AuthorPosition string `bson:"authorPosition" json:"authorPosition"`
	AuthorImage    string `bson:"authorImage" json:"authorImage"` // public media URL
}
