package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"markethub/config"
	"markethub/internal/application"
	"markethub/internal/infrastructure/mongodb"
	"markethub/pkg/apperr"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	userSvc := application.NewUserService(mongodb.NewUserRepository(db), nil)
	productSvc := application.NewProductService(mongodb.NewProductRepository(db), nil)

	u, err := userSvc.CreateUser(ctx, application.CreateUserInput{
		Email:    "demo@markethub.local",
		Password: "password123",
		Name:     "Demo User",
	})
	switch {
	case apperr.IsConflict(err):
		fmt.Println("demo user already seeded")
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded user: id=%s email=%s\n", u.ID.Hex(), u.Email)
	}

	products := []application.CreateProductInput{
		{
			Name:        "Arabica Coffee Beans",
			Description: "Single-origin arabica beans, medium roast",
			UnitPrice:   14.5,
			Quantity:    120,
			MeasureType: "kg",
			Attributes:  map[string]any{"origin": "Colombia", "roast": "medium"},
		},
		{
			Name:        "Olive Oil",
			Description: "Extra virgin olive oil, cold pressed",
			UnitPrice:   9.9,
			Quantity:    80,
			MeasureType: "liters",
			Attributes:  map[string]any{"acidity": 0.3},
		},
		{
			Name:        "Ceramic Mug",
			Description: "Stoneware mug, 350ml",
			UnitPrice:   6,
			Quantity:    300,
			MeasureType: "units",
			Attributes:  map[string]any{"color": "white", "dishwasherSafe": true},
		},
	}
	for _, in := range products {
		p, err := productSvc.CreateProduct(ctx, in)
		if err != nil {
			log.Fatalf("failed to seed product %q: %v", in.Name, err)
		}
		fmt.Printf("seeded product: id=%s name=%s\n", p.ID.Hex(), p.Name)
	}
}
