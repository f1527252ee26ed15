// One-shot walkthrough of the database layer: probe the connection, ensure
// the table, insert a row, print the matching rows, then drop the table.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/northflank-guides/go-with-postgres/internal/config"
	"github.com/northflank-guides/go-with-postgres/internal/db"
	"github.com/northflank-guides/go-with-postgres/internal/model"
)

func main() {
	ctx := context.Background()

	db, err := db.Connect(ctx, config.Load().DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	connected, err := db.Probe(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(connected)

	if err := db.EnsureTable(ctx); err != nil {
		log.Fatal(err)
	}

	// Read your name from the command line
	yourName := "john"
	if len(os.Args) > 1 {
		yourName = os.Args[1]
	}

	if err := db.Insert(ctx, yourName); err != nil {
		log.Fatal(err)
	}

	records, err := db.ReadByName(ctx, yourName)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range records {
		name := "<nil>"
		if r.Name != nil {
			name = *r.Name
		}
		fmt.Printf("(%d, %s, %s)\n", r.ID, name, model.FormatTimestamp(r.Date))
	}

	if err := db.DropTable(ctx); err != nil {
		log.Fatal(err)
	}
}
