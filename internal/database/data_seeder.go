package database

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Sayed24/Employee-Management-System/internal/domain"
)

// DataSeeder fills the local store with generated sample employees for demos
// and manual testing. The two-record startup seed lives in the domain package;
// this produces larger rosters.
type DataSeeder struct {
	repo domain.RosterRepository
}

func NewDataSeeder(repo domain.RosterRepository) *DataSeeder {
	return &DataSeeder{repo: repo}
}

var (
	firstNames  = []string{"Amina", "Carlos", "Dana", "Elif", "Farid", "Grace", "Hiro", "Ingrid", "Jonas", "Katya", "Luis", "Mei", "Noor", "Omar", "Priya", "Quinn", "Rosa", "Sven", "Tariq", "Yuki"}
	lastNames   = []string{"Torres", "Nguyen", "Okafor", "Silva", "Kowalski", "Haddad", "Ivanova", "Larsen", "Moreau", "Novak", "Ortega", "Petrov", "Rahman", "Sato", "Tanaka", "Varga", "Weber", "Yilmaz"}
	departments = []string{"Engineering", "Sales", "Marketing", "HR", "Finance", "Support", "Operations"}
	positions   = []string{"Developer", "Manager", "Analyst", "Designer", "Coordinator", "Specialist", "Lead"}
)

// SeedData generates numEmployees random records and writes them as the whole
// collection, replacing whatever is stored.
func (ds *DataSeeder) SeedData(ctx context.Context, numEmployees int) error {
	start := time.Now()
	fmt.Println("🚀 Seeding roster...")

	records := make([]domain.Employee, numEmployees)
	for i := 0; i < numEmployees; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		dept := departments[rand.Intn(len(departments))]

		records[i] = domain.Employee{
			ID:         strconv.FormatInt(time.Now().UnixNano(), 36) + strconv.Itoa(i),
			FullName:   first + " " + last,
			Email:      fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Phone:      fmt.Sprintf("+1 555 %03d %04d", rand.Intn(1000), rand.Intn(10000)),
			Department: dept,
			Position:   positions[rand.Intn(len(positions))],
			Notes:      "Generated sample record",
		}
	}

	if err := ds.repo.Save(ctx, records); err != nil {
		return fmt.Errorf("failed to save seeded roster: %w", err)
	}

	fmt.Printf("✅ Created %d employees across %d departments\n", len(records), len(departments))
	fmt.Printf("🎉 Done in %v\n", time.Since(start))
	return nil
}

// ClearData wipes the stored roster.
func (ds *DataSeeder) ClearData(ctx context.Context) error {
	fmt.Println("🗑️  Clearing roster...")
	if err := ds.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}
	fmt.Println("✅ Cleared stored roster")
	return nil
}

// Presets
type SeedPreset string

const (
	PresetSmall  SeedPreset = "small"
	PresetMedium SeedPreset = "medium"
	PresetLarge  SeedPreset = "large"
)

// GetPresetConfig returns the employee count for a preset.
func GetPresetConfig(preset SeedPreset) int {
	switch preset {
	case PresetSmall:
		return 10
	case PresetMedium:
		return 50
	case PresetLarge:
		return 200
	default:
		return 50
	}
}
