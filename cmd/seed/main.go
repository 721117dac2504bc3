// Command main runs the database seeder for ConnectGrower.
package main

import (
	"flag"
	"log"

	"connectgrower/internal/config"
	"connectgrower/internal/database"
	"connectgrower/internal/seed"
	"connectgrower/internal/translation"
)

func main() {
	defaults := seed.DefaultOptions()

	numUsers := flag.Int("users", defaults.NumUsers, "Number of growers to create")
	numPosts := flag.Int("posts", defaults.NumPosts, "Number of posts to create")
	numMessages := flag.Int("messages", defaults.NumMessages, "Number of chat messages to create")
	photos := flag.Int("photos", defaults.PhotoPercent, "Percentage of posts with a photo")
	days := flag.Int("days", defaults.MaxDays, "Spread content over this many days")
	randSeed := flag.Int64("seed", 0, "Random seed (0 picks one)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	translate := flag.Bool("translate", false, "Translate chat messages through the configured endpoint")
	dryRun := flag.Bool("dry-run", false, "Build data without writing it")
	fast := flag.Bool("fast", false, "Store plain passwords (development only)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d growers, %d posts, %d messages, clean=%v\n", *numUsers, *numPosts, *numMessages, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *fast && cfg.IsProduction() {
		log.Fatal("❌ -fast is not allowed against production")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		NumUsers:     *numUsers,
		NumPosts:     *numPosts,
		NumMessages:  *numMessages,
		PhotoPercent: *photos,
		MaxDays:      *days,
		BatchSize:    defaults.BatchSize,
		RandSeed:     *randSeed,
		SkipBcrypt:   *fast,
		DryRun:       *dryRun,
	})

	if *translate {
		httpClient := translation.NewHTTPClient(cfg.TranslationTimeout())
		s.WithTranslator(translation.NewAutoTranslator(
			translation.NewGoogleClient(cfg.ForumTranslateURL, httpClient),
			translation.NewMyMemoryClient(cfg.ChatTranslateURL, httpClient),
			cfg.TranslationTimeout(),
		))
	}

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if err := seed.Welcome(db); err != nil {
		log.Fatalf("❌ Welcome content seeding failed: %v", err)
	}

	if err := s.Run(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo growers.")
	log.Printf("📧 All demo growers have the password: %s", seed.DefaultPassword)
}
