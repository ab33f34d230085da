// Command importcsv bootstraps the deals table from the CSV asset. It
// parses the export, and when the database holds fewer deals than the file,
// clears the table and reseeds it wholesale. Run it once against a fresh
// database, or again after the asset changes.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"dealtrack/internal/adapter/repository/mysql"
	"dealtrack/internal/config"
	"dealtrack/internal/csvimport"
	"dealtrack/internal/infrastructure/db"
)

func main() {
	cfg := config.Load()

	text, err := os.ReadFile(cfg.CSVAssetPath)
	if err != nil {
		log.Fatalf("read CSV asset %s: %v", cfg.CSVAssetPath, err)
	}

	deals := csvimport.ParseDeals(string(text), time.Now())
	log.Printf("parsed %d deals from %s", len(deals), cfg.CSVAssetPath)
	if len(deals) == 0 {
		log.Println("nothing to import")
		return
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	repo := mysql.NewDealRepository(gdb)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	existing, err := repo.Count(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("found %d existing deals in database", existing)

	if existing >= int64(len(deals)) {
		log.Println("database already holds this import or more, skipping")
		return
	}

	// Row ids from the parser are positional; persisted rows get real ids.
	for i := range deals {
		deals[i].ID = uuid.NewString()
	}

	if err := repo.ReplaceAll(ctx, deals); err != nil {
		log.Fatal(err)
	}
	log.Printf("imported %d deals", len(deals))
}
