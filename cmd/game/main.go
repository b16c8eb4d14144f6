// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-colony-defense/internal/config"
	"go-colony-defense/internal/defs"
	"go-colony-defense/internal/layout"
	"go-colony-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed; 0 picks one from the clock")
	antsPath := flag.String("ants", "", "path to an ant definitions JSON file (built-in catalog if empty)")
	hivePath := flag.String("hive", "", "path to a hive plan JSON file (standard waves if empty)")
	flag.Parse()

	if *antsPath != "" {
		if err := defs.LoadAntDefinitions(*antsPath); err != nil {
			log.Fatal(err)
		}
	} else {
		defs.LoadStandardAnts()
	}

	opts := layout.StandardOptions()
	if *hivePath != "" {
		plan, err := defs.LoadHivePlan(*hivePath)
		if err != nil {
			log.Fatal(err)
		}
		opts.Hive = plan
	}

	stateMachine := state.NewStateMachine()
	stateMachine.SetState(state.NewMenuState(stateMachine, opts, *seed))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ants vs Some Bees")
	if err := ebiten.RunGame(&AppGame{stateMachine: stateMachine}); err != nil {
		log.Fatal(err)
	}
}
