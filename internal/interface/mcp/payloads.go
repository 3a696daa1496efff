package mcpserver

import (
	"time"

	"markethub/internal/domain/entity"
)

// UserPayload is the tool-facing user shape. The password hash has no
// field here, so no tool result can carry it.
type UserPayload struct {
	ID         string `json:"id" jsonschema:"user identifier"`
	Email      string `json:"email" jsonschema:"user email address"`
	Name       string `json:"name" jsonschema:"user full name"`
	PictureURL string `json:"pictureUrl,omitempty" jsonschema:"profile picture URL"`
	CreatedAt  string `json:"createdAt" jsonschema:"creation timestamp (RFC 3339)"`
	UpdatedAt  string `json:"updatedAt" jsonschema:"last update timestamp (RFC 3339)"`
}

// ProductPayload is the tool-facing product shape.
type ProductPayload struct {
	ID          string         `json:"id" jsonschema:"product identifier"`
	Name        string         `json:"name" jsonschema:"product name"`
	Description string         `json:"description" jsonschema:"product description"`
	PictureURL  string         `json:"pictureUrl,omitempty" jsonschema:"product image URL"`
	UnitPrice   float64        `json:"unitPrice" jsonschema:"unit price"`
	Quantity    float64        `json:"quantity" jsonschema:"available quantity"`
	MeasureType string         `json:"measureType" jsonschema:"unit of measurement"`
	Attributes  map[string]any `json:"attributes,omitempty" jsonschema:"additional key-value attributes"`
	CreatedAt   string         `json:"createdAt" jsonschema:"creation timestamp (RFC 3339)"`
	UpdatedAt   string         `json:"updatedAt" jsonschema:"last update timestamp (RFC 3339)"`
}

func userPayload(u *entity.User) UserPayload {
	return UserPayload{
		ID:         u.ID.Hex(),
		Email:      u.Email,
		Name:       u.Name,
		PictureURL: u.PictureURL,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func productPayload(p *entity.Product) ProductPayload {
	return ProductPayload{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		PictureURL:  p.PictureURL,
		UnitPrice:   p.UnitPrice,
		Quantity:    p.Quantity,
		MeasureType: p.MeasureType,
		Attributes:  p.Attributes,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339Nano),
	}
}
