// Command nescore is the ebiten-based host shell: it loads a cartridge,
// drives the console one instruction at a time, and presents its output
// through a window and an audio stream.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"nescore/internal/cartridge"
	"nescore/internal/console"
)

const (
	baseWidth  = 256
	baseHeight = 240
)

// gameShell implements ebiten.Game, pumping the console forward by whole
// frames and presenting its output.
type gameShell struct {
	console *console.Console
	video   *videoOutput
	audio   *audioOutput
	scale   int
}

func (g *gameShell) Update() error {
	pollInput(g.console)
	g.console.RunFrame()
	g.audio.PushFrame(g.console.AudioBuffer())
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.video.Blit(g.console.FrameBuffer())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.video.Image(), op)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth * g.scale, baseHeight * g.scale
}

func main() {
	romFile := flag.String("rom", "", "path to an iNES (.nes) ROM file")
	scale := flag.Int("scale", 3, "integer window scale factor")
	flag.Parse()

	if *romFile == "" {
		fmt.Fprintln(os.Stderr, "usage: nescore -rom <file.nes> [-scale N]")
		os.Exit(1)
	}

	cart, err := cartridge.Load(*romFile)
	if err != nil {
		log.Fatalf("nescore: failed to load %s: %v", *romFile, err)
	}

	shell := &gameShell{
		console: console.New(cart),
		video:   newVideoOutput(),
		audio:   newAudioOutput(),
		scale:   *scale,
	}

	ebiten.SetWindowSize(baseWidth*(*scale), baseHeight*(*scale))
	ebiten.SetWindowTitle("nescore")
	if err := ebiten.RunGame(shell); err != nil {
		log.Fatalf("nescore: %v", err)
	}
}
