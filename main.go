package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ballinabox/game"
)

func main() {
	settings, incomplete, err := game.ReadSettingsFile(game.SettingsFileName)
	if err != nil {
		settings = game.DefaultSettings()
		incomplete = true
	}
	if incomplete {
		if werr := game.WriteSettingsFile(game.SettingsFileName, settings); werr != nil {
			log.Printf("could not write settings file: %v", werr)
		}
	}

	g := game.NewGame(settings, game.SettingsFileName)

	ebiten.SetWindowSize(int(settings.BoxWidth), int(settings.BoxHeight))
	ebiten.SetWindowTitle("Ball in a Box")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	if settings.MaxFPS > 0 {
		ebiten.SetTPS(settings.MaxFPS)
	}
	ebiten.SetVsyncEnabled(settings.Vsync)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
