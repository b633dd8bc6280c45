package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tileprops/config"
	"github.com/milk9111/tileprops/levels"
	"github.com/milk9111/tileprops/store"
	"github.com/milk9111/tileprops/tiles"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "config file")
	levelName := flag.String("level", "demo.json", "embedded level to play")
	strict := flag.Bool("strict", false, "surface warnings for failed property lookups")
	flag.Parse()

	cfg, err := config.Load(*configPath, false)
	if err != nil {
		log.Fatal(err)
	}
	if *strict {
		cfg.Strict = true
	}

	reg := tiles.NewRegistry()
	lvl, err := levels.LoadLevelFromFS(*levelName, reg)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	src, closeFn, err := cfg.OpenSource(ctx, reg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	props := store.New(src, store.Options{
		Tag:    cfg.Tag,
		Logger: log.New(os.Stderr, "", log.LstdFlags),
		OnLoaded: func() {
			log.Printf("tpdemo: property lists loaded")
		},
	})
	// The game starts immediately and waits on the store's ready channel.
	props.Load(ctx)

	ebiten.SetWindowSize(lvl.Width*lvl.TileW*2, lvl.Height*lvl.TileH*2)
	ebiten.SetWindowTitle("tileprops demo")

	if err := ebiten.RunGame(NewGame(props, lvl, cfg.Strict)); err != nil {
		log.Fatal(err)
	}
}
