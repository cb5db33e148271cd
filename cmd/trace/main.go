// Command trace runs a level headless and prints the ball's path, for checking
// ledge layouts and restitution values without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cannonball/physics"
	"github.com/milk9111/cannonball/prefabs"
)

type sample struct {
	frame    int
	position cp.Vector
	velocity cp.Vector
	contacts int
}

func main() {
	levelName := flag.String("level", prefabs.DefaultLevel, "level name in prefabs/ (basename, .yaml optional) or a path")
	vx := flag.Float64("vx", 0, "initial ball velocity x")
	vy := flag.Float64("vy", 0, "initial ball velocity y")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	tps := flag.Int("tps", 60, "frames per second")
	every := flag.Int("every", 10, "print every n-th frame and every frame with a contact")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %d", *tps)
	}

	spec, err := prefabs.LoadLevelSpec(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	lvl, err := spec.Build()
	if err != nil {
		log.Fatal(err)
	}
	lvl.Ball.Velocity = cp.Vector{X: *vx, Y: *vy}

	samples := trace(lvl, *frames, 1/float64(*tps), *every)
	for _, s := range samples {
		fmt.Fprintf(os.Stdout, "%5d  pos=(%8.3f, %8.3f)  vel=(%8.3f, %8.3f)  contacts=%d\n",
			s.frame, s.position.X, s.position.Y, s.velocity.X, s.velocity.Y, s.contacts)
	}
}

// trace steps the level and keeps frame 0, every n-th frame and every frame
// that touched a ledge.
func trace(lvl *physics.Level, frames int, dt float64, every int) []sample {
	if every <= 0 {
		every = 1
	}
	out := []sample{{position: lvl.Ball.Position, velocity: lvl.Ball.Velocity}}
	for f := 1; f <= frames; f++ {
		n := lvl.Update(dt)
		if n > 0 || f%every == 0 {
			out = append(out, sample{frame: f, position: lvl.Ball.Position, velocity: lvl.Ball.Velocity, contacts: n})
		}
	}
	return out
}
