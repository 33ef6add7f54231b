package seed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"catering-api/models"
	"catering-api/store"
)

// Demo populates a fresh store with two demo accounts and a small menu so
// the API is browsable immediately. A store that already has users is left
// alone.
func Demo(ctx context.Context, st *store.Store, log *slog.Logger) error {
	users := store.NewCollection[*models.User](st, store.KeyUsers)
	existing, err := users.Get(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash demo password: %w", err)
	}

	admin := &models.User{
		Email:    "admin@demo.com",
		Password: string(hash),
		Name:     "Admin User",
		Role:     models.RoleAdmin,
	}
	adminID, err := users.Add(ctx, admin)
	if err != nil {
		return err
	}

	customer := &models.User{
		Email:    "user@demo.com",
		Password: string(hash),
		Name:     "Demo Customer",
		Role:     models.RoleUser,
	}
	if _, err := users.Add(ctx, customer); err != nil {
		return err
	}

	products := store.NewCollection[*models.Product](st, store.KeyProducts)
	menu := demoProducts(adminID)
	for _, p := range menu {
		if _, err := products.Add(ctx, p); err != nil {
			return err
		}
	}

	log.Info("demo data seeded", "users", 2, "products", len(menu))
	return nil
}

func demoProducts(adminID string) []*models.Product {
	return []*models.Product{
		{
			Name:        "Butter Chicken Combo",
			Description: "Tender chicken in rich, creamy tomato-based sauce served with basmati rice and naan bread. A complete meal perfect for any occasion.",
			Price:       299,
			Category:    "Main Course",
			Image:       "/placeholder.svg",
			AdminID:     adminID,
			Available:   true,
			Servings:    4,
			CookingTime: "45 minutes",
			Ingredients: []string{"Chicken", "Tomatoes", "Cream", "Spices", "Basmati Rice", "Naan"},
		},
		{
			Name:        "Vegetarian Thali",
			Description: "A complete vegetarian meal with dal, vegetables, rice, roti, pickle, and sweet dish. Traditional home-style cooking.",
			Price:       199,
			Category:    "Vegetarian",
			Image:       "/placeholder.svg",
			AdminID:     adminID,
			Available:   true,
			Servings:    2,
			CookingTime: "30 minutes",
			Ingredients: []string{"Dal", "Mixed Vegetables", "Rice", "Roti", "Pickle", "Sweet"},
		},
		{
			Name:        "Hyderabadi Biryani",
			Description: "Authentic Hyderabadi-style biryani with aromatic basmati rice, tender mutton, and traditional spices. Served with raita and shorba.",
			Price:       449,
			Category:    "Rice Dishes",
			Image:       "/placeholder.svg",
			AdminID:     adminID,
			Available:   true,
			Servings:    6,
			CookingTime: "90 minutes",
			Ingredients: []string{"Basmati Rice", "Mutton", "Saffron", "Yogurt", "Spices", "Fried Onions"},
		},
		{
			Name:        "Paneer Tikka Platter",
			Description: "Grilled cottage cheese marinated in yogurt and spices, served with mint chutney and onion rings.",
			Price:       249,
			Category:    "Appetizers",
			Image:       "/placeholder.svg",
			AdminID:     adminID,
			Available:   true,
			Servings:    3,
			CookingTime: "25 minutes",
			Ingredients: []string{"Paneer", "Yogurt", "Spices", "Mint Chutney", "Onions"},
		},
	}
}
