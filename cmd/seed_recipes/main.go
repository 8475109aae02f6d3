package main

import (
	"context"
	"log"
	"time"

	"github.com/cooknext/backend/config"
	"github.com/cooknext/backend/internal/database"
	"github.com/cooknext/backend/internal/service"
	"github.com/cooknext/backend/internal/types"
)

type seedRecipe struct {
	name         string
	ingredients  []string
	instructions []string
	rating       int
	daysAgo      int // -1 means never eaten
}

var seedRecipes = []seedRecipe{
	{
		name:         "Spaghetti Carbonara",
		ingredients:  []string{"spaghetti", "guanciale", "eggs", "pecorino", "black pepper"},
		instructions: []string{"Boil pasta", "Render guanciale", "Toss with egg and cheese off heat"},
		rating:       5,
		daysAgo:      3,
	},
	{
		name:         "Chana Masala",
		ingredients:  []string{"chickpeas", "onion", "tomato", "garam masala", "ginger"},
		instructions: []string{"Sauté aromatics", "Add spices and tomato", "Simmer chickpeas"},
		rating:       4,
		daysAgo:      12,
	},
	{
		name:         "Miso Salmon",
		ingredients:  []string{"salmon fillets", "white miso", "mirin", "soy sauce"},
		instructions: []string{"Marinate salmon", "Broil until caramelized"},
		rating:       4,
		daysAgo:      1,
	},
	{
		name:         "Mushroom Risotto",
		ingredients:  []string{"arborio rice", "mushrooms", "white wine", "parmesan", "stock"},
		instructions: []string{"Toast rice", "Add stock gradually", "Finish with butter and cheese"},
		rating:       3,
		daysAgo:      30,
	},
	{
		name:         "Green Curry",
		ingredients:  []string{"green curry paste", "coconut milk", "chicken thighs", "thai basil"},
		instructions: []string{"Fry paste in coconut cream", "Add chicken and simmer"},
		rating:       5,
		daysAgo:      -1,
	},
	{
		name:         "Shakshuka",
		ingredients:  []string{"eggs", "tomatoes", "bell pepper", "cumin", "paprika"},
		instructions: []string{"Build the sauce", "Poach eggs in it"},
		rating:       0,
		daysAgo:      -1,
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Recipe store unavailable: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	svc := service.NewRecipeService(db)

	for _, seed := range seedRecipes {
		recipe, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{
			Name:         seed.name,
			Ingredients:  seed.ingredients,
			Instructions: seed.instructions,
			Rating:       seed.rating,
		})
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", seed.name, err)
		}

		if seed.daysAgo >= 0 {
			eaten := time.Now().AddDate(0, 0, -seed.daysAgo)
			if _, err := svc.SetLastEaten(ctx, recipe.ID, &eaten); err != nil {
				log.Fatalf("Failed to set last-eaten for %q: %v", seed.name, err)
			}
		}
		log.Printf("Seeded recipe %q (%s)", recipe.Name, recipe.ID)
	}

	log.Printf("Seeded %d recipes", len(seedRecipes))
}
