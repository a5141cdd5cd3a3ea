package models

import "time"

type Certification struct {
	ID             int       `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Provider       string    `bson:"provider" json:"provider"`
	Date           time.Time `bson:"date" json:"date"`
	CertificateURL string    `bson:"certificateUrl" json:"certificateUrl"`
	Details        string    `bson:"details,omitempty" json:"details,omitempty"`
}
