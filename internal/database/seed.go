package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"maitred/internal/models"
)

// Seed ensures a populated database exists. Each table is only seeded
// when it is empty, so restarts do not duplicate data.
func Seed(db *gorm.DB) error {
	var count int64

	db.Model(&models.Employee{}).Count(&count)
	if count == 0 {
		if err := seedEmployees(db); err != nil {
			return err
		}
	}

	db.Model(&models.InventoryItem{}).Count(&count)
	if count == 0 {
		if err := seedInventory(db); err != nil {
			return err
		}
	}

	db.Model(&models.Recipe{}).Count(&count)
	if count == 0 {
		if err := seedRecipes(db); err != nil {
			return err
		}
	}

	db.Model(&models.MenuEntry{}).Count(&count)
	if count == 0 {
		if err := seedMenu(db); err != nil {
			return err
		}
	}

	return nil
}

func seedEmployees(db *gorm.DB) error {
	hired := func(monthsAgo int) time.Time {
		return time.Now().AddDate(0, -monthsAgo, 0)
	}

	employees := []models.Employee{
		{FirstName: "Marco", LastName: "Rossi", Position: "head chef", Department: "kitchen", Shift: "evening", TenureMonths: 48, Salary: 68000, PerformanceRating: 4.8, Status: "active"},
		{FirstName: "Elena", LastName: "Bianchi", Position: "sous chef", Department: "kitchen", Shift: "evening", TenureMonths: 30, Salary: 52000, PerformanceRating: 4.5, Status: "active"},
		{FirstName: "Tom", LastName: "Okafor", Position: "line cook", Department: "kitchen", Shift: "afternoon", TenureMonths: 14, Salary: 38000, PerformanceRating: 3.9, Status: "active"},
		{FirstName: "Priya", LastName: "Shah", Position: "pastry chef", Department: "kitchen", Shift: "morning", TenureMonths: 22, Salary: 44000, PerformanceRating: 4.2, Status: "active"},
		{FirstName: "Daniel", LastName: "Kim", Position: "prep cook", Department: "kitchen", Shift: "morning", TenureMonths: 6, Salary: 32000, PerformanceRating: 3.4, Status: "active"},
		{FirstName: "Sofia", LastName: "Alvarez", Position: "server", Department: "service", Shift: "evening", TenureMonths: 18, Salary: 30000, PerformanceRating: 4.6, Status: "active"},
		{FirstName: "James", LastName: "Carter", Position: "server", Department: "service", Shift: "afternoon", TenureMonths: 9, Salary: 29000, PerformanceRating: 3.7, Status: "active"},
		{FirstName: "Amelie", LastName: "Durand", Position: "host", Department: "service", Shift: "evening", TenureMonths: 12, Salary: 28000, PerformanceRating: 4.1, Status: "on_leave"},
		{FirstName: "Lucas", LastName: "Meyer", Position: "bartender", Department: "bar", Shift: "night", TenureMonths: 26, Salary: 34000, PerformanceRating: 4.3, Status: "active"},
		{FirstName: "Nina", LastName: "Petrova", Position: "general manager", Department: "management", Shift: "afternoon", TenureMonths: 60, Salary: 75000, PerformanceRating: 4.7, Status: "active"},
		{FirstName: "Omar", LastName: "Haddad", Position: "dishwasher", Department: "cleaning", Shift: "night", TenureMonths: 4, Salary: 26000, PerformanceRating: 2.8, Status: "active"},
	}

	for i := range employees {
		employees[i].EmployeeID = uuid.NewString()
		employees[i].Email = employees[i].FirstName + "." + employees[i].LastName + "@maitred.example"
		employees[i].Phone = "555-0100"
		employees[i].HireDate = hired(employees[i].TenureMonths)
		if err := db.Create(&employees[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d employees", len(employees))
	return nil
}

func seedInventory(db *gorm.DB) error {
	soon := time.Now().AddDate(0, 0, 3)
	nextMonth := time.Now().AddDate(0, 1, 0)

	items := []models.InventoryItem{
		{Name: "Chicken Breast", Category: "meat", Stock: 12, Unit: "kg", ReorderThreshold: 10, MaxStock: 40, CostPerUnit: 7.50, Supplier: "Valley Farms", Location: "refrigerator", ExpiryDate: &soon},
		{Name: "Beef Tenderloin", Category: "meat", Stock: 4, Unit: "kg", ReorderThreshold: 8, MaxStock: 25, CostPerUnit: 24.00, Supplier: "Valley Farms", Location: "refrigerator", ExpiryDate: &soon},
		{Name: "Guanciale", Category: "meat", Stock: 2.5, Unit: "kg", ReorderThreshold: 2, MaxStock: 8, CostPerUnit: 18.00, Supplier: "Salumeria Prima", Location: "refrigerator", ExpiryDate: &nextMonth},
		{Name: "Salmon Fillet", Category: "seafood", Stock: 5, Unit: "kg", ReorderThreshold: 6, MaxStock: 20, CostPerUnit: 19.50, Supplier: "Harbor Seafood", Location: "freezer", ExpiryDate: &nextMonth},
		{Name: "Shrimp", Category: "seafood", Stock: 9, Unit: "kg", ReorderThreshold: 5, MaxStock: 15, CostPerUnit: 16.00, Supplier: "Harbor Seafood", Location: "freezer", ExpiryDate: &nextMonth},
		{Name: "Tomatoes", Category: "produce", Stock: 18, Unit: "kg", ReorderThreshold: 12, MaxStock: 30, CostPerUnit: 2.80, Supplier: "Green Basket", Location: "walk_in", ExpiryDate: &soon},
		{Name: "Lettuce", Category: "produce", Stock: 3, Unit: "kg", ReorderThreshold: 6, MaxStock: 12, CostPerUnit: 2.10, Supplier: "Green Basket", Location: "walk_in", ExpiryDate: &soon},
		{Name: "Garlic", Category: "produce", Stock: 4, Unit: "kg", ReorderThreshold: 2, MaxStock: 8, CostPerUnit: 5.00, Supplier: "Green Basket", Location: "dry_storage"},
		{Name: "Basil", Category: "produce", Stock: 0.8, Unit: "kg", ReorderThreshold: 1, MaxStock: 3, CostPerUnit: 12.00, Supplier: "Green Basket", Location: "refrigerator", ExpiryDate: &soon},
		{Name: "Parmesan", Category: "dairy", Stock: 6, Unit: "kg", ReorderThreshold: 4, MaxStock: 15, CostPerUnit: 21.00, Supplier: "Caseificio Nord", Location: "refrigerator", ExpiryDate: &nextMonth},
		{Name: "Pecorino Romano", Category: "dairy", Stock: 3, Unit: "kg", ReorderThreshold: 2, MaxStock: 10, CostPerUnit: 23.00, Supplier: "Caseificio Nord", Location: "refrigerator", ExpiryDate: &nextMonth},
		{Name: "Eggs", Category: "dairy", Stock: 140, Unit: "pc", ReorderThreshold: 120, MaxStock: 400, CostPerUnit: 0.35, Supplier: "Valley Farms", Location: "refrigerator", ExpiryDate: &nextMonth},
		{Name: "Heavy Cream", Category: "dairy", Stock: 8, Unit: "l", ReorderThreshold: 10, MaxStock: 25, CostPerUnit: 4.20, Supplier: "Caseificio Nord", Location: "refrigerator", ExpiryDate: &soon},
		{Name: "Spaghetti", Category: "dry_goods", Stock: 25, Unit: "kg", ReorderThreshold: 15, MaxStock: 60, CostPerUnit: 1.90, Supplier: "Molino Azzurro", Location: "dry_storage"},
		{Name: "Arborio Rice", Category: "dry_goods", Stock: 10, Unit: "kg", ReorderThreshold: 8, MaxStock: 30, CostPerUnit: 3.40, Supplier: "Molino Azzurro", Location: "dry_storage"},
		{Name: "Flour", Category: "dry_goods", Stock: 40, Unit: "kg", ReorderThreshold: 20, MaxStock: 100, CostPerUnit: 1.10, Supplier: "Molino Azzurro", Location: "dry_storage"},
		{Name: "Olive Oil", Category: "condiments", Stock: 14, Unit: "l", ReorderThreshold: 8, MaxStock: 30, CostPerUnit: 9.00, Supplier: "Oleificio Sole", Location: "dry_storage"},
		{Name: "Black Pepper", Category: "spices", Stock: 1.2, Unit: "kg", ReorderThreshold: 0.5, MaxStock: 3, CostPerUnit: 28.00, Supplier: "Spice Route", Location: "spice_rack"},
		{Name: "Saffron", Category: "spices", Stock: 0.02, Unit: "kg", ReorderThreshold: 0.05, MaxStock: 0.2, CostPerUnit: 3200.00, Supplier: "Spice Route", Location: "spice_rack"},
		{Name: "Espresso Beans", Category: "beverages", Stock: 7, Unit: "kg", ReorderThreshold: 5, MaxStock: 20, CostPerUnit: 17.00, Supplier: "Torrefazione Alba", Location: "dry_storage"},
	}

	for i := range items {
		items[i].ItemID = uuid.NewString()
		items[i].LastRestocked = time.Now().AddDate(0, 0, -7)
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d inventory items", len(items))
	return nil
}

func seedRecipes(db *gorm.DB) error {
	recipes := []struct {
		recipe      models.Recipe
		ingredients []models.RecipeIngredient
		nutrition   models.Nutrition
	}{
		{
			recipe: models.Recipe{
				DishName: "Spaghetti Carbonara", Category: "main", Cuisine: "italian",
				Difficulty: 3, PrepMinutes: 15, CookMinutes: 20, Servings: 2,
				Instructions: models.StringSlice{
					"Bring a large pot of salted water to a boil and cook the spaghetti until al dente.",
					"Render the guanciale in a cold pan over medium heat until crisp.",
					"Whisk eggs with grated pecorino and black pepper.",
					"Toss the drained pasta with the guanciale off the heat, then fold in the egg mixture.",
					"Loosen with pasta water and serve immediately with more pecorino.",
				},
				DietaryTags:    models.StringSlice{},
				Allergens:      models.StringSlice{"eggs", "wheat", "milk"},
				CostPerServing: 3.80,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Spaghetti", Quantity: 200, Unit: "g"},
				{Name: "Guanciale", Quantity: 100, Unit: "g"},
				{Name: "Eggs", Quantity: 3, Unit: "pc"},
				{Name: "Pecorino Romano", Quantity: 50, Unit: "g"},
				{Name: "Black Pepper", Quantity: 2, Unit: "g", Notes: "freshly cracked"},
			},
			nutrition: models.Nutrition{Calories: 780, ProteinGrams: 32, FatGrams: 38, CarbGrams: 74, SodiumMilligr: 1150},
		},
		{
			recipe: models.Recipe{
				DishName: "Margherita Pizza", Category: "main", Cuisine: "italian",
				Difficulty: 2, PrepMinutes: 90, CookMinutes: 10, Servings: 1,
				Instructions: models.StringSlice{
					"Proof the dough at room temperature until doubled.",
					"Stretch into a 30cm round and top with crushed tomatoes.",
					"Bake at maximum oven heat, add mozzarella halfway through.",
					"Finish with fresh basil and a drizzle of olive oil.",
				},
				DietaryTags:    models.StringSlice{"vegetarian"},
				Allergens:      models.StringSlice{"wheat", "milk"},
				CostPerServing: 2.40,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Flour", Quantity: 250, Unit: "g"},
				{Name: "Tomatoes", Quantity: 120, Unit: "g", Notes: "crushed"},
				{Name: "Mozzarella", Quantity: 100, Unit: "g"},
				{Name: "Basil", Quantity: 5, Unit: "g"},
				{Name: "Olive Oil", Quantity: 10, Unit: "ml"},
			},
			nutrition: models.Nutrition{Calories: 860, ProteinGrams: 34, FatGrams: 28, CarbGrams: 118, SodiumMilligr: 1320},
		},
		{
			recipe: models.Recipe{
				DishName: "Grilled Salmon", Category: "main", Cuisine: "mediterranean",
				Difficulty: 2, PrepMinutes: 10, CookMinutes: 12, Servings: 1,
				Instructions: models.StringSlice{
					"Pat the fillet dry and season with salt, pepper and olive oil.",
					"Grill skin side down over high heat for 8 minutes.",
					"Flip for 3-4 minutes until just cooked through.",
					"Rest briefly and serve with lemon.",
				},
				DietaryTags:    models.StringSlice{"gluten_free"},
				Allergens:      models.StringSlice{"fish"},
				CostPerServing: 6.90,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Salmon Fillet", Quantity: 220, Unit: "g"},
				{Name: "Olive Oil", Quantity: 10, Unit: "ml"},
				{Name: "Black Pepper", Quantity: 1, Unit: "g"},
			},
			nutrition: models.Nutrition{Calories: 520, ProteinGrams: 45, FatGrams: 36, CarbGrams: 1, SodiumMilligr: 420},
		},
		{
			recipe: models.Recipe{
				DishName: "Saffron Risotto", Category: "main", Cuisine: "italian",
				Difficulty: 4, PrepMinutes: 10, CookMinutes: 25, Servings: 2,
				Instructions: models.StringSlice{
					"Toast the rice in olive oil until translucent at the edges.",
					"Add hot stock one ladle at a time, stirring constantly.",
					"Bloom the saffron in stock and add halfway through.",
					"Finish off the heat with butter and parmesan.",
				},
				DietaryTags:    models.StringSlice{"vegetarian", "gluten_free"},
				Allergens:      models.StringSlice{"milk"},
				CostPerServing: 4.60,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Arborio Rice", Quantity: 180, Unit: "g"},
				{Name: "Saffron", Quantity: 0.2, Unit: "g"},
				{Name: "Parmesan", Quantity: 40, Unit: "g"},
				{Name: "Olive Oil", Quantity: 15, Unit: "ml"},
			},
			nutrition: models.Nutrition{Calories: 610, ProteinGrams: 16, FatGrams: 18, CarbGrams: 92, SodiumMilligr: 880},
		},
		{
			recipe: models.Recipe{
				DishName: "Garden Salad", Category: "appetizer", Cuisine: "international",
				Difficulty: 1, PrepMinutes: 10, CookMinutes: 0, Servings: 1,
				Instructions: models.StringSlice{
					"Wash and tear the lettuce into bite-size pieces.",
					"Quarter the tomatoes and toss with the leaves.",
					"Dress with olive oil, salt and pepper just before serving.",
				},
				DietaryTags:    models.StringSlice{"vegetarian", "vegan", "gluten_free"},
				Allergens:      models.StringSlice{},
				CostPerServing: 1.20,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Lettuce", Quantity: 120, Unit: "g"},
				{Name: "Tomatoes", Quantity: 80, Unit: "g"},
				{Name: "Olive Oil", Quantity: 10, Unit: "ml"},
			},
			nutrition: models.Nutrition{Calories: 140, ProteinGrams: 2, FatGrams: 11, CarbGrams: 9, SodiumMilligr: 180},
		},
		{
			recipe: models.Recipe{
				DishName: "Shrimp Scampi", Category: "main", Cuisine: "italian",
				Difficulty: 3, PrepMinutes: 15, CookMinutes: 10, Servings: 2,
				Instructions: models.StringSlice{
					"Saute garlic in olive oil until fragrant.",
					"Add the shrimp and cook until just pink.",
					"Deglaze with white wine and reduce.",
					"Toss with cooked spaghetti and chopped parsley.",
				},
				DietaryTags:    models.StringSlice{},
				Allergens:      models.StringSlice{"shellfish", "wheat"},
				CostPerServing: 5.40,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Shrimp", Quantity: 250, Unit: "g"},
				{Name: "Spaghetti", Quantity: 180, Unit: "g"},
				{Name: "Garlic", Quantity: 10, Unit: "g"},
				{Name: "Olive Oil", Quantity: 20, Unit: "ml"},
			},
			nutrition: models.Nutrition{Calories: 640, ProteinGrams: 38, FatGrams: 20, CarbGrams: 72, SodiumMilligr: 960},
		},
		{
			recipe: models.Recipe{
				DishName: "Tiramisu", Category: "dessert", Cuisine: "italian",
				Difficulty: 3, PrepMinutes: 30, CookMinutes: 0, Servings: 6,
				Instructions: models.StringSlice{
					"Whip egg yolks with sugar until pale, fold in mascarpone.",
					"Dip ladyfingers briefly in cold espresso.",
					"Layer cream and soaked biscuits, finishing with cream.",
					"Chill at least four hours and dust with cocoa.",
				},
				DietaryTags:    models.StringSlice{"vegetarian"},
				Allergens:      models.StringSlice{"eggs", "milk", "wheat"},
				CostPerServing: 2.10,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Eggs", Quantity: 4, Unit: "pc"},
				{Name: "Mascarpone", Quantity: 500, Unit: "g"},
				{Name: "Espresso Beans", Quantity: 40, Unit: "g", Notes: "brewed"},
				{Name: "Ladyfingers", Quantity: 200, Unit: "g"},
			},
			nutrition: models.Nutrition{Calories: 430, ProteinGrams: 8, FatGrams: 28, CarbGrams: 36, SodiumMilligr: 95},
		},
		{
			recipe: models.Recipe{
				DishName: "Vegan Buddha Bowl", Category: "main", Cuisine: "international",
				Difficulty: 2, PrepMinutes: 20, CookMinutes: 15, Servings: 1,
				Instructions: models.StringSlice{
					"Cook the rice and let it cool slightly.",
					"Roast the vegetables with olive oil.",
					"Assemble over rice and finish with tahini dressing.",
				},
				DietaryTags:    models.StringSlice{"vegetarian", "vegan", "gluten_free"},
				Allergens:      models.StringSlice{"sesame"},
				CostPerServing: 2.90,
			},
			ingredients: []models.RecipeIngredient{
				{Name: "Arborio Rice", Quantity: 120, Unit: "g"},
				{Name: "Tomatoes", Quantity: 60, Unit: "g"},
				{Name: "Lettuce", Quantity: 40, Unit: "g"},
				{Name: "Olive Oil", Quantity: 15, Unit: "ml"},
			},
			nutrition: models.Nutrition{Calories: 560, ProteinGrams: 12, FatGrams: 19, CarbGrams: 86, SodiumMilligr: 340},
		},
	}

	for i := range recipes {
		r := &recipes[i].recipe
		r.RecipeID = uuid.NewString()
		if err := r.SetIngredients(recipes[i].ingredients); err != nil {
			return err
		}
		if err := r.SetNutrition(recipes[i].nutrition); err != nil {
			return err
		}
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d recipes", len(recipes))
	return nil
}

func seedMenu(db *gorm.DB) error {
	today := time.Now().Format("2006-01-02")

	// Menu entries reference seeded recipes by dish name
	var recipes []models.Recipe
	if err := db.Find(&recipes).Error; err != nil {
		return err
	}
	recipeID := make(map[string]string, len(recipes))
	for _, r := range recipes {
		recipeID[r.DishName] = r.RecipeID
	}

	entries := []models.MenuEntry{
		{DishName: "Garden Salad", Description: "Crisp lettuce and ripe tomatoes with house vinaigrette", Category: "appetizer", Price: 8.50, Status: "available", PrepMinutes: 10, Calories: 140, Vegetarian: true, Vegan: true, GlutenFree: true},
		{DishName: "Spaghetti Carbonara", Description: "Classic Roman pasta with guanciale, egg and pecorino", Category: "main", Price: 18.00, Status: "available", PrepMinutes: 20, Calories: 780, Allergens: models.StringSlice{"eggs", "wheat", "milk"}, ChefSpecial: true},
		{DishName: "Margherita Pizza", Description: "Wood-fired pizza with tomato, mozzarella and basil", Category: "main", Price: 15.00, Status: "available", PrepMinutes: 15, Calories: 860, Vegetarian: true, Allergens: models.StringSlice{"wheat", "milk"}},
		{DishName: "Grilled Salmon", Description: "Atlantic salmon grilled with lemon and olive oil", Category: "main", Price: 24.50, Status: "limited", PrepMinutes: 15, Calories: 520, GlutenFree: true, Allergens: models.StringSlice{"fish"}},
		{DishName: "Saffron Risotto", Description: "Creamy arborio risotto with saffron and parmesan", Category: "main", Price: 19.00, Status: "available", PrepMinutes: 30, Calories: 610, Vegetarian: true, GlutenFree: true, Allergens: models.StringSlice{"milk"}},
		{DishName: "Shrimp Scampi", Description: "Garlic shrimp over spaghetti with white wine", Category: "main", Price: 21.00, Status: "sold_out", PrepMinutes: 20, SpicyLevel: 1, Calories: 640, Allergens: models.StringSlice{"shellfish", "wheat"}},
		{DishName: "Vegan Buddha Bowl", Description: "Roasted vegetables and rice with tahini dressing", Category: "main", Price: 14.00, Status: "available", PrepMinutes: 20, Calories: 560, Vegetarian: true, Vegan: true, GlutenFree: true, Allergens: models.StringSlice{"sesame"}},
		{DishName: "Tiramisu", Description: "Espresso-soaked ladyfingers with mascarpone cream", Category: "dessert", Price: 9.00, Status: "available", PrepMinutes: 5, Calories: 430, Vegetarian: true, Allergens: models.StringSlice{"eggs", "milk", "wheat"}},
		{DishName: "Espresso", Description: "Double shot of our house roast", Category: "beverage", Price: 3.50, Status: "available", PrepMinutes: 3, Calories: 5, Vegetarian: true, Vegan: true, GlutenFree: true},
	}

	for i := range entries {
		entries[i].EntryID = uuid.NewString()
		entries[i].Day = today
		entries[i].Location = "main"
		entries[i].RecipeID = recipeID[entries[i].DishName]
		if err := db.Create(&entries[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d menu entries for %s", len(entries), today)
	return nil
}
