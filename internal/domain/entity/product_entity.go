package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. Attributes is an open-ended bag of
// merchant-defined key/value pairs with no schema of its own.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	PictureURL  string             `json:"pictureUrl,omitempty" bson:"picture_url,omitempty"`
	UnitPrice   float64            `json:"unitPrice" bson:"unit_price"`
	Quantity    float64            `json:"quantity" bson:"quantity"`
	MeasureType string             `json:"measureType" bson:"measure_type"`
	Attributes  map[string]any     `json:"attributes" bson:"attributes"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

// ProductPatch is a field-level partial update for a Product document.
type ProductPatch struct {
	Name        *string        `bson:"name,omitempty"`
	Description *string        `bson:"description,omitempty"`
	PictureURL  *string        `bson:"picture_url,omitempty"`
	UnitPrice   *float64       `bson:"unit_price,omitempty"`
	Quantity    *float64       `bson:"quantity,omitempty"`
	MeasureType *string        `bson:"measure_type,omitempty"`
	Attributes  map[string]any `bson:"attributes,omitempty"`
}
