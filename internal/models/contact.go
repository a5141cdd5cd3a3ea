package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact is a singleton: the collection holds at most one document and the
// API addresses it without an id.
type Contact struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	SocialLinks SocialLinks        `bson:"socialLinks" json:"socialLinks"`
}

type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Github    string `bson:"github,omitempty" json:"github,omitempty"`
}
