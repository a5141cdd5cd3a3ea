package models

type Project struct {
	ID          int      `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Domain      string   `bson:"domain" json:"domain"`
	Thumbnail   string   `bson:"thumbnail" json:"thumbnail"` // public media URL
	Images      []string `bson:"images" json:"images"`
	IconLists   []string `bson:"iconLists" json:"iconLists"`
	LiveURL     string   `bson:"liveUrl" json:"liveUrl"`
	GithubURL   string   `bson:"githubUrl" json:"githubUrl"`
}
