package main

import (
	"fmt"

	"photobazaar/internal/model"
	"photobazaar/pkg/config"
	"photobazaar/pkg/database"
	"photobazaar/pkg/logger"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email     string
		firstName string
		lastName  string
		role      string
	}{
		{"anna@test.com", "Anna", "Lens", "photographer"},
		{"marco@test.com", "Marco", "Frame", "photographer"},
		{"lucy@test.com", "Lucy", "Buyer", "user"},
		{"admin@test.com", "Ada", "Admin", "admin"},
	}

	userIDs := make(map[string]string, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:      userData.email,
			Password:   string(hashedPassword),
			FirstName:  userData.firstName,
			LastName:   userData.lastName,
			Role:       userData.role,
			IsVerified: true,
			IsActive:   true,
		}

		var existing model.UserModel
		result := db.Where("email = ?", user.Email).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Email)
			userIDs[user.Email] = existing.ID
			continue
		}

		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}
		userIDs[user.Email] = user.ID
		log.Info("Created user %s", user.Email)
	}

	categories := []struct {
		name string
		slug string
	}{
		{"Nature", "nature"},
		{"Architecture", "architecture"},
		{"Portrait", "portrait"},
		{"Street", "street"},
	}

	categoryIDs := make(map[string]string, len(categories))

	for _, categoryData := range categories {
		category := &model.CategoryModel{
			Name:     categoryData.name,
			Slug:     categoryData.slug,
			IsActive: true,
		}

		var existing model.CategoryModel
		result := db.Where("slug = ?", category.Slug).First(&existing)
		if result.Error == nil {
			log.Info("Category %s already exists, skipping", category.Slug)
			categoryIDs[category.Slug] = existing.ID
			continue
		}

		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", category.Name, err)
		}
		categoryIDs[category.Slug] = category.ID
		log.Info("Created category %s", category.Name)
	}

	photos := []struct {
		photographer string
		category     string
		title        string
		price        float64
		tags         []string
		exclusive    bool
	}{
		{"anna@test.com", "nature", "Misty Forest at Dawn", 14.99, []string{"forest", "fog", "morning"}, false},
		{"anna@test.com", "nature", "Alpine Lake Reflection", 24.50, []string{"mountains", "lake"}, false},
		{"anna@test.com", "portrait", "Golden Hour Portrait", 39.00, []string{"portrait", "sunset"}, true},
		{"marco@test.com", "architecture", "Brutalist Facade", 19.99, []string{"concrete", "geometry"}, false},
		{"marco@test.com", "street", "Rainy Crossing", 9.99, []string{"rain", "city", "night"}, false},
	}

	for _, photoData := range photos {
		categoryID := categoryIDs[photoData.category]
		photo := &model.PhotoModel{
			PhotographerID: userIDs[photoData.photographer],
			CategoryID:     &categoryID,
			Title:          photoData.title,
			Price:          photoData.price,
			ImageURL:       fmt.Sprintf("https://example.com/photos/%s.jpg", categoryID),
			StorageKey:     fmt.Sprintf("photos/seed/%s", photoData.title),
			Tags:           pq.StringArray(photoData.tags),
			Format:         "jpeg",
			IsActive:       true,
			IsExclusive:    photoData.exclusive,
		}

		var existing model.PhotoModel
		result := db.Where("title = ? AND photographer_id = ?", photo.Title, photo.PhotographerID).First(&existing)
		if result.Error == nil {
			log.Info("Photo %q already exists, skipping", photo.Title)
			continue
		}

		if err := db.Create(photo).Error; err != nil {
			return fmt.Errorf("failed to create photo %q: %w", photo.Title, err)
		}
		log.Info("Created photo %q", photo.Title)
	}

	return nil
}
