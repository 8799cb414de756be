package main

import (
	"log"
	"os"

	"bookverse-be/internal/model"
	"bookverse-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding BookVerse catalog\n")

	seedAdmin(db)
	categories := seedCategories(db)
	seedBooks(db, categories)
	seedPlans(db)

	color.Cyan("\nSeeding completed!")
}

func seedAdmin(db *gorm.DB) {
	color.Yellow("\n[1] Admin user")

	var existing model.User
	if err := db.Where("email = ?", "admin@bookverse.local").First(&existing).Error; err == nil {
		color.Green("Admin already exists, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Id:           uuid.New(),
		Email:        "admin@bookverse.local",
		PasswordHash: &hashStr,
		FullName:     "BookVerse Admin",
		Role:         "admin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("Failed to create admin: %v", err)
		return
	}
	color.Green("Created admin@bookverse.local (password: admin12345)")
}

func seedCategories(db *gorm.DB) map[string]uuid.UUID {
	color.Yellow("\n[2] Categories")

	names := []struct {
		Name string
		Slug string
	}{
		{"Fiction", "fiction"},
		{"Non-Fiction", "non-fiction"},
		{"Technology", "technology"},
		{"Self Improvement", "self-improvement"},
	}

	ids := make(map[string]uuid.UUID, len(names))
	for _, c := range names {
		var existing model.Category
		if err := db.Where("slug = ?", c.Slug).First(&existing).Error; err == nil {
			ids[c.Slug] = existing.Id
			color.Green("Category '%s' already exists, skipping", c.Slug)
			continue
		}

		cat := model.Category{Id: uuid.New(), Name: c.Name, Slug: c.Slug}
		if err := db.Create(&cat).Error; err != nil {
			color.Red("Failed to create category '%s': %v", c.Slug, err)
			continue
		}
		ids[c.Slug] = cat.Id
		color.Green("Created category: %s", c.Name)
	}
	return ids
}

func seedBooks(db *gorm.DB, categories map[string]uuid.UUID) {
	color.Yellow("\n[3] Books & chapters")

	fiction, ok := categories["fiction"]
	if !ok {
		color.Red("Fiction category missing, skipping books")
		return
	}

	var existing model.Book
	if err := db.Where("slug = ?", "the-silent-harbor").First(&existing).Error; err == nil {
		color.Green("Sample book already exists, skipping")
		return
	}

	book := model.Book{
		Id:                 uuid.New(),
		CategoryId:         fiction,
		Title:              "The Silent Harbor",
		Slug:               "the-silent-harbor",
		AuthorName:         "A. Pramudya",
		Synopsis:           "A slow-burn mystery set in a fading port town.",
		Price:              95000,
		DiscountPercentage: 10,
		Status:             "published",
	}
	if err := db.Create(&book).Error; err != nil {
		color.Red("Failed to create book: %v", err)
		return
	}

	chapters := []model.Chapter{
		{Id: uuid.New(), BookId: book.Id, Number: 1, Title: "Arrival", Content: "The ferry came in late...", IsFree: true},
		{Id: uuid.New(), BookId: book.Id, Number: 2, Title: "The Warehouse", Content: "Nobody had opened it in years...", Price: 15000},
		{Id: uuid.New(), BookId: book.Id, Number: 3, Title: "Low Tide", Content: "The water pulled back further than it should...", Price: 15000},
	}
	for _, ch := range chapters {
		if err := db.Create(&ch).Error; err != nil {
			color.Red("Failed to create chapter %d: %v", ch.Number, err)
		}
	}
	color.Green("Created 'The Silent Harbor' with %d chapters", len(chapters))
}

func seedPlans(db *gorm.DB) {
	color.Yellow("\n[4] Author plans")

	plans := []model.AuthorPlan{
		{Id: uuid.New(), Name: "Starter", Slug: "starter", Description: "Publish your first manuscript", Price: 150000, DurationDays: 30, MaxSubmissions: 1, IsActive: true, SortOrder: 1},
		{Id: uuid.New(), Name: "Pro", Slug: "pro", Description: "For prolific authors", Price: 500000, DurationDays: 90, MaxSubmissions: 5, IsActive: true, SortOrder: 2},
		{Id: uuid.New(), Name: "Lifetime", Slug: "lifetime", Description: "Unlimited duration, generous submission cap", Price: 2500000, DurationDays: 0, MaxSubmissions: 50, IsActive: true, SortOrder: 3},
	}

	for _, p := range plans {
		var existing model.AuthorPlan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			color.Green("Plan '%s' already exists, skipping", p.Slug)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			color.Red("Failed to create plan '%s': %v", p.Slug, err)
			continue
		}
		color.Green("Created plan: %s", p.Name)
	}
}
