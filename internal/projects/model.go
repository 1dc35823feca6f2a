package projects

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a single portfolio item. Persisted once at create time, never
// mutated or deleted by this service.
type Project struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	CoverImageURL  string             `bson:"coverImageUrl,omitempty" json:"coverImageUrl,omitempty"`
	CoverImagePath string             `bson:"coverImagePath,omitempty" json:"coverImagePath,omitempty"`
	LiveLink       string             `bson:"liveLink,omitempty" json:"liveLink,omitempty"`
	Description    string             `bson:"description" json:"description"`
	TechStack      []string           `bson:"techStack" json:"techStack"`
	Price          string             `bson:"price,omitempty" json:"price,omitempty"`
	Details        string             `bson:"details" json:"details"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
