// Command meshstat is the "enclosing application" spec.md §6 describes as
// out of scope for the core: it reads an OBJ mesh, prints its topology
// statistics, optionally runs either -iters explicit smoothing passes or one
// implicit smoothing solve with a chosen weighting and λ, and writes the
// result back out.
// It contains no mesh algorithms of its own — everything here is a thin
// driver over mesh, smooth, and meshio.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hanfengsunshine/halfedge/matrix/ops"
	"github.com/hanfengsunshine/halfedge/mesh"
	"github.com/hanfengsunshine/halfedge/meshio"
	"github.com/hanfengsunshine/halfedge/smooth"
)

func main() {
	var (
		in        = flag.String("in", "", "input OBJ file (required)")
		out       = flag.String("out", "", "output OBJ file (optional; written only if set)")
		smoothing = flag.String("smooth", "none", "smoothing mode: none|explicit|implicit")
		weighting = flag.String("weighting", "uniform", "weighting scheme: uniform|cotangent")
		lambda    = flag.Float64("lambda", 1.0, "smoothing step size λ")
		iters     = flag.Int("iters", 1, "number of smoothing passes (explicit) or BiCGSTAB iteration cap (implicit)")
		tol       = flag.Float64("tol", 1e-7, "implicit solver squared-residual tolerance")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "meshstat: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out, *smoothing, *weighting, *lambda, *iters, *tol); err != nil {
		log.Fatalf("meshstat: %v", err)
	}
}

func run(in, out, smoothingMode, weightingMode string, lambda float64, iters int, tol float64) error {
	positions, faces, err := meshio.Load(in)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	m, err := mesh.NewFromArrays(positions, faces)
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}

	weighting, err := parseWeighting(weightingMode)
	if err != nil {
		return err
	}

	switch smoothingMode {
	case "none":
		// nothing to do
	case "explicit":
		for i := 0; i < iters; i++ {
			if err := explicitPass(m, weighting, lambda); err != nil {
				return fmt.Errorf("explicit smoothing pass %d: %w", i, err)
			}
		}
	case "implicit":
		opts := ops.BiCGSTABOptions{MaxIterations: iters, Tolerance: tol}
		if opts.MaxIterations <= 0 {
			opts = smooth.DefaultOptions()
		}
		if _, err := implicitPass(m, weighting, lambda, opts); err != nil {
			return fmt.Errorf("implicit smoothing: %w", err)
		}
	default:
		return fmt.Errorf("unknown -smooth mode %q (want none|explicit|implicit)", smoothingMode)
	}

	stats := m.ComputeStats()
	fmt.Printf("V=%d E=%d F=%d B=%d C=%d G=%d\n", stats.V, stats.E, stats.F, stats.B, stats.C, stats.G)

	if out != "" {
		m.ComputeVertexNormals()
		outPositions, outFaces := renderArrays(m)
		if err := meshio.Save(out, outPositions, outFaces); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

func parseWeighting(s string) (smooth.Weighting, error) {
	switch s {
	case "uniform":
		return smooth.Uniform, nil
	case "cotangent":
		return smooth.Cotangent, nil
	default:
		return 0, fmt.Errorf("unknown -weighting %q (want uniform|cotangent)", s)
	}
}

func explicitPass(m *mesh.Mesh, w smooth.Weighting, lambda float64) error {
	if w == smooth.Cotangent {
		return smooth.ExplicitCotangent(m, lambda)
	}
	return smooth.ExplicitUniform(m, lambda)
}

func implicitPass(m *mesh.Mesh, w smooth.Weighting, lambda float64, opts ops.BiCGSTABOptions) (smooth.Convergence, error) {
	if w == smooth.Cotangent {
		return smooth.ImplicitCotangent(m, lambda, opts)
	}
	return smooth.ImplicitUniform(m, lambda, opts)
}

// renderArrays flattens the mesh's positions and triangle corners back
// into the dense tables meshio.Save expects.
func renderArrays(m *mesh.Mesh) (positions [][3]float64, faces [][3]int) {
	pos, _, _, indices := m.RenderBuffers()
	positions = make([][3]float64, len(pos))
	for i, p := range pos {
		positions[i] = [3]float64{p.X, p.Y, p.Z}
	}
	faces = make([][3]int, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		faces = append(faces, [3]int{indices[i], indices[i+1], indices[i+2]})
	}
	return positions, faces
}
