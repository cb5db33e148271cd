package prefabs

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const roomScriptTimeout = time.Second

// RunRoomScript runs a tengo room script. The script sees the room size as
// `width` and `height` and adds ledges with ledge(ax, ay, bx, by, k, thickness).
func RunRoomScript(name string, room RoomSpec) ([]LedgeSpec, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), roomScriptTimeout)
	defer cancel()
	ledges, err := runRoomSource(ctx, src, room)
	if err != nil {
		return nil, fmt.Errorf("prefabs: run script %s: %w", name, err)
	}
	return ledges, nil
}

func runRoomSource(ctx context.Context, src []byte, room RoomSpec) ([]LedgeSpec, error) {
	var ledges []LedgeSpec

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("width", room.Width); err != nil {
		return nil, err
	}
	if err := script.Add("height", room.Height); err != nil {
		return nil, err
	}
	err := script.Add("ledge", &tengo.UserFunction{Name: "ledge", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 6 {
			return nil, tengo.ErrWrongNumArguments
		}
		var v [6]float64
		for i, arg := range args {
			f, ok := tengo.ToFloat64(arg)
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{
					Name:     fmt.Sprintf("arg %d", i),
					Expected: "float(compatible)",
					Found:    arg.TypeName(),
				}
			}
			v[i] = f
		}
		ledges = append(ledges, LedgeSpec{
			A:         Vec2Spec{X: v[0], Y: v[1]},
			B:         Vec2Spec{X: v[2], Y: v[3]},
			K:         v[4],
			Thickness: v[5],
		})
		return tengo.UndefinedValue, nil
	}})
	if err != nil {
		return nil, err
	}

	if _, err := script.RunContext(ctx); err != nil {
		return nil, err
	}
	return ledges, nil
}
