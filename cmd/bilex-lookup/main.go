package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognilex/bilex/pkg/bilex/store/sqlite"
)

func main() {
	dbPath := flag.String("db", "", "SQLite index path (required)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if flag.NArg() == 0 {
		log.Fatal("usage: bilex-lookup --db index.db <headword>...")
	}

	ctx := context.Background()

	idx, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer idx.Close()

	for _, key := range flag.Args() {
		rec, ok, err := idx.Get(ctx, key)
		if err != nil {
			log.Fatal("Lookup failed:", err)
		}
		if !ok {
			fmt.Printf("%s: not found\n", key)
			continue
		}
		fmt.Println(rec.Key)
		for _, tr := range rec.Translations {
			if tr.Class != "" {
				fmt.Printf("  %s [%s]\n", tr.Text, tr.Class)
			} else {
				fmt.Printf("  %s\n", tr.Text)
			}
		}
	}
}
