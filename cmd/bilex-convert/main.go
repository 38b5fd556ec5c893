package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cognilex/bilex/internal/dictcc"
	"github.com/cognilex/bilex/pkg/bilex"
	"github.com/cognilex/bilex/pkg/bilex/config"
	"github.com/cognilex/bilex/pkg/bilex/store"
	"github.com/cognilex/bilex/pkg/bilex/store/memstore"
	"github.com/cognilex/bilex/pkg/bilex/store/sqlite"
	"github.com/cognilex/bilex/pkg/bilex/writer"
	"github.com/cognilex/bilex/pkg/bilex/writer/jsonl"
	"github.com/cognilex/bilex/pkg/bilex/writer/stardict"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "dict.cc export file (required)")
		fromLang   = flag.String("from", "", "source language code (required)")
		outDir     = flag.String("out", "", "output directory (default dictcc_<from>-<to>)")
		format     = flag.String("format", "stardict", "output format: stardict or jsonl")
		abbrevPath = flag.String("abbrev", "", "abbreviation tables YAML (default built-in)")
		dbPath     = flag.String("db", "", "SQLite index path (default in-memory)")
		workers    = flag.Int("workers", 0, "phrase workers (default NumCPU)")
		strict     = flag.Bool("strict", false, "abort on unparsable phrases instead of skipping")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("--input required")
	}
	if *fromLang == "" {
		log.Fatal("--from required")
	}

	ctx := context.Background()

	loader := config.Loader{AbbrevPath: *abbrevPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	reader, err := dictcc.Open(*inputPath, *fromLang)
	if err != nil {
		log.Fatal("Failed to open input:", err)
	}
	defer reader.Close()

	var idx store.Store
	if *dbPath != "" {
		db, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		runID, err := db.BeginRun(ctx, reader.SourceLang(), reader.TargetLang())
		if err != nil {
			log.Fatal("Failed to record run:", err)
		}
		log.Printf("Run %s recorded in %s", runID, *dbPath)
		idx = db
	} else {
		idx = memstore.New()
	}
	defer idx.Close()

	conv := bilex.New(bilex.Options{
		Store:   idx,
		Tables:  components.Tables,
		Workers: *workers,
	})

	baseName := fmt.Sprintf("dictcc_%s-%s", reader.SourceLang(), reader.TargetLang())
	dir := *outDir
	if dir == "" {
		dir = baseName
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal("Failed to create output dir:", err)
	}

	var out writer.Writer
	switch *format {
	case "stardict":
		out, err = stardict.New(dir, baseName, stardict.Info{
			Bookname: fmt.Sprintf("dict.cc %s-%s", strings.ToUpper(reader.SourceLang()), strings.ToUpper(reader.TargetLang())),
			Date:     time.Now(),
		})
	case "jsonl":
		out, err = jsonl.Create(filepath.Join(dir, baseName+".jsonl"))
	default:
		log.Fatalf("Unknown format %q", *format)
	}
	if err != nil {
		log.Fatal("Failed to create writer:", err)
	}

	log.Printf("Converting %s (%s -> %s)", *inputPath, reader.SourceLang(), reader.TargetLang())

	read := 0
	next := func() (bilex.Record, bool, error) {
		rec, ok, err := reader.Next()
		if !ok || err != nil {
			return bilex.Record{}, false, err
		}
		read++
		if read%10000 == 0 {
			log.Printf("Parsed %d lines", read)
		}
		return bilex.Record{
			SourcePhrase: rec.SourcePhrase,
			TargetPhrase: rec.TargetPhrase,
			Class:        rec.Class,
		}, true, nil
	}

	skipped := 0
	onError := func(rec bilex.Record, err error) error {
		if *strict {
			return err
		}
		skipped++
		log.Printf("Skipping phrase %q: %v", rec.SourcePhrase, err)
		return nil
	}

	if err := conv.IngestAll(ctx, reader.SourceLang(), next, onError); err != nil {
		log.Fatal("Conversion failed:", err)
	}
	log.Printf("Parsed %d lines (%d skipped)", read, skipped)

	entries, err := conv.Aggregate(ctx, out)
	if err != nil {
		log.Fatal("Aggregation failed:", err)
	}
	if err := out.Close(); err != nil {
		log.Fatal("Failed to write output:", err)
	}

	log.Printf("Wrote %d entries to %s", entries, dir)
}
