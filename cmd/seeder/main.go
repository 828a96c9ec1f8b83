package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/Sayed24/Employee-Management-System/internal/config"
	"github.com/Sayed24/Employee-Management-System/internal/database"
	"github.com/Sayed24/Employee-Management-System/internal/logger"
	"github.com/Sayed24/Employee-Management-System/internal/repository"
)

func main() {
	// Define flags
	action := flag.String("action", "seed", "Action to perform: seed, clear")
	preset := flag.String("preset", "medium", "Data preset: small, medium, large")
	count := flag.Int("count", 0, "Number of employees (overrides preset)")

	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 Roster Data Seeder")
	fmt.Println(strings.Repeat("=", 50))

	if err := config.LoadEnvConfig(); err != nil {
		log.Fatal(err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)

	store, err := database.NewLocalStore(ctx, config.DefaultEnvConfig.STORE_PATH)
	if err != nil {
		logger.ErrorLog(ctx, "Failed to open local store: %v", err)
		log.Fatal(err)
	}
	defer store.Close()

	repo := repository.NewRosterRepository(store, config.DefaultEnvConfig.STORE_KEY)
	seeder := database.NewDataSeeder(repo)

	// Execute action
	switch *action {
	case "seed":
		performSeed(ctx, seeder, preset, count)

	case "clear":
		performClear(ctx, seeder)

	default:
		fmt.Printf("❌ Unknown action: %s\n", *action)
		flag.PrintDefaults()
	}

	fmt.Println("\n✅ Done!")
}

func performSeed(ctx context.Context, seeder *database.DataSeeder, preset *string, count *int) {
	numEmployees := *count
	if numEmployees > 0 {
		fmt.Printf("📊 Using custom configuration: %d employees\n", numEmployees)
	} else {
		numEmployees = database.GetPresetConfig(database.SeedPreset(*preset))
		fmt.Printf("📊 Using preset: %s (%d employees)\n", *preset, numEmployees)
	}

	if err := seeder.SeedData(ctx, numEmployees); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}

func performClear(ctx context.Context, seeder *database.DataSeeder) {
	fmt.Println("⚠️  This will delete the whole stored roster!")
	fmt.Print("Continue? (yes/no): ")

	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		if err := seeder.ClearData(ctx); err != nil {
			log.Fatalf("❌ Clear failed: %v", err)
		}
	} else {
		fmt.Println("Cancelled.")
	}
}
