package main

import (
	"context"
	"flag"
	"log"

	"paddy-kbs-be/internal/bootstrap"
	"paddy-kbs-be/internal/config"
	"paddy-kbs-be/internal/seed"
)

func main() {
	cfg := config.Load()

	file := flag.String("file", cfg.FactStore.SeedFile, "seed file to load")
	replace := flag.Bool("replace", false, "retract the whole background scope before loading")
	flag.Parse()

	if cfg.FactStore.Driver == config.StoreDriverMemory {
		log.Fatal("Error: the memory fact store seeds itself on start; set FACT_STORE_DRIVER to postgres or sparql")
	}

	f, err := seed.LoadFile(*file)
	if err != nil {
		log.Fatal("Error: ", err)
	}

	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatal("Error: ", err)
	}
	defer container.Close()

	if err := container.Store.Ping(context.Background()); err != nil {
		log.Fatal("Error: fact store unreachable: ", err)
	}

	n, err := seed.Apply(context.Background(), container.Store, f, *replace)
	if err != nil {
		log.Fatal("Error: ", err)
	}

	log.Printf("Seeded %d facts from %s (replace=%v)", n, *file, *replace)
}
