package db

import (
	"log"
	"os"

	"factboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=factboard port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := DB.AutoMigrate(&models.Fact{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedFacts()
}

// seedFacts loads a small starter set on first boot so the list view is
// never empty. Counters start at zero like any other created fact.
func seedFacts() {
	var count int64
	DB.Model(&models.Fact{}).Count(&count)
	if count > 0 {
		log.Println("Facts already seeded, skipping")
		return
	}

	facts := []models.Fact{
		{
			Text:     "React is being developed by Meta (formerly Facebook)",
			Source:   "https://opensource.fb.com/",
			Category: "technology",
		},
		{
			Text:     "Millennial dads spend 3 times as much time with their kids than their fathers spent with them",
			Source:   "https://www.mother.ly/parenting/millennial-dads-spend-more-time-with-their-kids/",
			Category: "society",
		},
		{
			Text:     "Lisbon is the capital of Portugal",
			Source:   "https://en.wikipedia.org/wiki/Lisbon",
			Category: "society",
		},
	}

	for _, fact := range facts {
		if err := DB.Create(&fact).Error; err != nil {
			log.Printf("Failed to seed fact %q: %v", fact.Text, err)
		}
	}
	log.Println("Initial facts created successfully")
}
