// snapshot runs an 8080 diagnostic ROM to completion (or to its step limit)
// and renders a PNG of the final machine state: registers, flags, and the
// BDOS console transcript. It exists to give the image-rendering libraries
// this module depends on somewhere to run without inventing an interactive
// display this headless core has no business having.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hatonacat/i8080go/bus"
	"github.com/hatonacat/i8080go/cpu"
	"github.com/hatonacat/i8080go/memory"
)

var (
	origin   = flag.Int("origin", 0x0100, "address the ROM image is loaded at and execution begins from")
	ramSize  = flag.Int("ram_size", 16384, "RAM size in bytes")
	maxSteps = flag.Int("max_steps", 50_000_000, "abort after this many instructions")
	out      = flag.String("out", "snapshot.png", "PNG file to write")
)

const (
	lineHeight = 16
	marginX    = 8
	marginY    = 16
	imgWidth   = 520
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [flags] <rom-file>", os.Args[0])
	}

	rom, err := os.ReadFile(flag.Args()[0])
	if err != nil {
		log.Fatalf("can't read %s: %v", flag.Args()[0], err)
	}
	ram, err := memory.NewRAM(*ramSize)
	if err != nil {
		log.Fatalf("can't initialize RAM: %v", err)
	}
	ram.PowerOn()
	if err := memory.LoadROM(ram, rom, uint16(*origin)); err != nil {
		log.Fatalf("can't load %s: %v", flag.Args()[0], err)
	}

	b := bus.New(ram)
	chip, err := cpu.Init(&cpu.ChipDef{Bus: b, SelfTest: true})
	if err != nil {
		log.Fatalf("can't initialize CPU: %v", err)
	}

	var stepErr error
	for i := 0; i < *maxSteps; i++ {
		if stepErr = chip.Step(); stepErr != nil {
			break
		}
	}

	lines := []string{
		"i8080go snapshot",
		"",
		"status: " + statusLine(stepErr),
		fmt.Sprintf("instructions: %d  cycles: %d", chip.Ops(), chip.Cycles()),
		"",
		fmt.Sprintf("PC=%04X SP=%04X", chip.PC, chip.SP),
		fmt.Sprintf("A=%02X B=%02X C=%02X D=%02X", chip.A(), chip.B(), chip.C(), chip.D()),
		fmt.Sprintf("E=%02X H=%02X L=%02X F=%02X", chip.E(), chip.H(), chip.L(), chip.F),
		"",
		"console output:",
	}
	for _, l := range strings.Split(b.BDOS.Output(), "\n") {
		lines = append(lines, "  "+l)
	}

	img := render(lines)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("can't create %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("can't encode PNG: %v", err)
	}
}

func statusLine(err error) string {
	if err == nil {
		return "still running (max_steps reached)"
	}
	return err.Error()
}

func render(lines []string) image.Image {
	height := marginY*2 + lineHeight*len(lines)
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(marginX, marginY+i*lineHeight)
		drawer.DrawString(line)
	}
	return img
}
