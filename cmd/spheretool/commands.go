package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Faultbox/supersphere/internal/animation"
	"github.com/Faultbox/supersphere/internal/config"
	"github.com/Faultbox/supersphere/internal/engine/frameclock"
	"github.com/Faultbox/supersphere/internal/engine/shaders"
	"github.com/Faultbox/supersphere/internal/geometry"
	"github.com/Faultbox/supersphere/internal/material"
	"github.com/Faultbox/supersphere/internal/store"
	"github.com/Faultbox/supersphere/pkg/math"
	"github.com/Faultbox/supersphere/pkg/noise"
)

func cmdPresets(args []string, out io.Writer) error {
	presets := store.Builtin()
	if len(args) > 0 {
		extra, err := store.LoadPresets(args[0])
		if err != nil {
			return err
		}
		presets = presets.With(extra)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERTICES\tSPEED\tCOLOR\tFREQUENCY\tAMPLITUDE\tROTATION")
	for _, name := range presets.Names() {
		p := presets[name]
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\t%.3f\t%.3f\t%.2f\n",
			name, p.Vertices, p.Speed, p.Color.Hex(), p.NoiseFrequency, p.NoiseAmplitude, p.RotationSpeed)
	}
	return tw.Flush()
}

func cmdMesh(args []string, out io.Writer) error {
	if len(args) < 2 {
		return usage("mesh <base> <detail>")
	}

	base, ok := geometry.ParseBase(args[0])
	if !ok {
		return fmt.Errorf("unknown base %q", args[0])
	}
	detail := store.ParseInt(args[1])

	m := geometry.Build(base, detail)
	fmt.Fprintf(out, "Base:      %s (%d faces)\n", base, base.FaceCount())
	fmt.Fprintf(out, "Detail:    %d\n", m.Detail)
	fmt.Fprintf(out, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(out, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(out, "Buffer:    %s\n", formatSize(len(m.Interleaved())*4))
	return nil
}

func cmdNoise(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("noise", flag.ContinueOnError)
	freq := flags.Float64("freq", material.DefaultNoiseFrequency, "Noise frequency")
	amp := flags.Float64("amp", material.DefaultNoiseAmplitude, "Noise amplitude")
	t := flags.Float64("time", 0, "Elapsed animation time")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() < 3 {
		return usage("noise [options] <x> <y> <z>")
	}

	p := math.Vec3{
		X: float32(store.ParseNumber(flags.Arg(0))),
		Y: float32(store.ParseNumber(flags.Arg(1))),
		Z: float32(store.ParseNumber(flags.Arg(2))),
	}
	// Vertices sit on the unit sphere with the normal equal to the position.
	n := p.Normalize()

	sample := noise.SamplePoint(n, float32(*freq), float32(*t))
	value := noise.At(sample)
	moved := noise.Displace(n, n, float32(*freq), float32(*amp), float32(*t))

	fmt.Fprintf(out, "Point:     %s\n", formatVec(n))
	fmt.Fprintf(out, "Sample:    %s\n", formatVec(sample))
	fmt.Fprintf(out, "Noise:     %.6f\n", value)
	fmt.Fprintf(out, "Displaced: %s (radius %.6f)\n", formatVec(moved), moved.Length())
	return nil
}

// setFlags collects repeated -set key=value arguments.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

// parseSets turns key=value pairs into a partial. Numbers are coerced the
// same way text inputs are: anything unparsable becomes 0.
func parseSets(sets []string) (store.Partial, error) {
	var p store.Partial
	for _, kv := range sets {
		key, value, _ := strings.Cut(kv, "=")
		if err := p.Set(key, value); err != nil {
			return p, err
		}
	}
	return p, nil
}

func cmdSimulate(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("simulate", flag.ContinueOnError)
	preset := flags.String("preset", "", "Initial preset")
	presetsFile := flags.String("presets", "", "Extra presets file (YAML or TOML)")
	frames := flags.Int("frames", 60, "Number of frames to run")
	fps := flags.Float64("fps", 60, "Simulated frame rate")
	seed := flags.Float64("seed", 0, "Noise seed")
	var sets setFlags
	flags.Var(&sets, "set", "Override a parameter (key=value, repeatable)")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %v", *fps)
	}

	presets := store.Builtin()
	if *presetsFile != "" {
		extra, err := store.LoadPresets(*presetsFile)
		if err != nil {
			return err
		}
		presets = presets.With(extra)
	}

	registry := shaders.Builtin()
	s := store.New(presets,
		store.WithInitialPreset(*preset),
		store.WithTextureCheck(registry.Has, registry.DefaultName()),
	)
	partial, err := parseSets(sets)
	if err != nil {
		return err
	}
	s.Merge(partial)

	mat := material.New(registry)
	loop := animation.New(animation.Options{
		Store:    s,
		Material: mat,
		Seed:     float32(*seed),
	})

	clock := frameclock.New()
	if err := loop.Start(clock); err != nil {
		return err
	}
	dt := 1 / *fps
	for range *frames {
		clock.Step(dt)
	}
	loop.Stop()

	cfg := s.Get()
	state := loop.State()
	fmt.Fprintf(out, "Config:    vertices=%d speed=%.2f color=%s frequency=%.3f amplitude=%.3f rotation=%.2f\n",
		cfg.Vertices, cfg.Speed, cfg.Color.Hex(), cfg.NoiseFrequency, cfg.NoiseAmplitude, cfg.RotationSpeed)
	fmt.Fprintf(out, "Frames:    %d\n", state.Frames)
	fmt.Fprintf(out, "Elapsed:   %.4f\n", state.Elapsed)
	fmt.Fprintf(out, "Rotation:  x=%.4f y=%.4f\n", state.Rotation.X, state.Rotation.Y)
	fmt.Fprintf(out, "Triangles: %d\n", geometry.TriangleCount(geometry.Icosahedron, cfg.Vertices))
	fmt.Fprintf(out, "Program:   %s (%s)\n", mat.Program().Name, mat.Program().Space)
	mat.Each(func(name string, v shaders.Value) {
		fmt.Fprintf(out, "  %-18s %s\n", name, v)
	})
	return nil
}

func cmdInit(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	force := flags.Bool("force", false, "Overwrite an existing file")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}

	path := config.DefaultPath()
	if flags.NArg() > 0 {
		path = flags.Arg(0)
	}

	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := config.Default().SaveTo(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func formatSize(size int) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := int64(size) / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
