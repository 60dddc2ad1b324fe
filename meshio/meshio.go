// Package meshio adapts the external mesh-file loader boundary spec.md §1
// and §6 assume but leave out of scope: a minimal Wavefront-OBJ reader and
// writer that yields (or consumes) exactly the two dense tables §4.3
// expects — an N×3 vertex-position table and an M×3 triangle-index table.
//
// Only "v x y z" and "f i j k" lines are interpreted. Other directives
// (materials, texture coordinates, normals, groups) are skipped, a face
// corner written "i/vt/vn" keeps only its position index i, and faces with
// more than three corners are rejected with ErrUnsupportedFace. OBJ indices are 1-based in the file format and 0-based in the
// tables this package returns.
package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors, namespaced "meshio: ..." per the teacher corpus's
// per-package sentinel-error convention.
var (
	// ErrMalformedLine indicates a "v" or "f" line did not have the
	// expected field count or a field failed to parse as a number.
	ErrMalformedLine = errors.New("meshio: malformed line")

	// ErrUnsupportedFace indicates an "f" line with a polygon that is not
	// a triangle (this package's Non-goal: no remeshing of n-gons).
	// Texture/normal sub-indices ("f 1/2/3 ...") do not trigger it.
	ErrUnsupportedFace = errors.New("meshio: face is not a bare triangle")

	// ErrNoVertices indicates the file had no "v" lines at all.
	ErrNoVertices = errors.New("meshio: file has no vertices")
)

// Load reads an OBJ file from path and returns its vertex-position table
// and triangle-index table (§4.3's Constructor input shape).
func Load(path string) (positions [][3]float64, faces [][3]int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses OBJ text from r. Line numbers in returned errors are
// 1-based, matching the file's own convention.
func Decode(r io.Reader) (positions [][3]float64, faces [][3]int, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, perr := parseVertex(fields[1:])
			if perr != nil {
				return nil, nil, lineErrorf(lineNo, perr)
			}
			positions = append(positions, p)
		case "f":
			tri, ferr := parseFace(fields[1:], len(positions))
			if ferr != nil {
				return nil, nil, lineErrorf(lineNo, ferr)
			}
			faces = append(faces, tri)
		default:
			// Unrecognized directive (vt, vn, usemtl, o, g, s, ...):
			// silently skipped, matching the Non-goal of not preserving
			// texture coordinates or materials.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("meshio: scan: %w", err)
	}
	if len(positions) == 0 {
		return nil, nil, ErrNoVertices
	}
	return positions, faces, nil
}

func lineErrorf(lineNo int, err error) error {
	return fmt.Errorf("meshio: line %d: %w", lineNo, err)
}

func parseVertex(fields []string) ([3]float64, error) {
	var p [3]float64
	if len(fields) < 3 {
		return p, ErrMalformedLine
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return p, ErrMalformedLine
		}
		p[i] = v
	}
	return p, nil
}

func parseFace(fields []string, vertexCount int) ([3]int, error) {
	var tri [3]int
	if len(fields) != 3 {
		return tri, ErrUnsupportedFace
	}
	for i, field := range fields {
		token := field
		if strings.Contains(token, "/") {
			token = token[:strings.IndexByte(token, '/')]
		}
		idx, err := strconv.Atoi(token)
		if err != nil {
			return tri, ErrMalformedLine
		}
		// OBJ indices are 1-based; negative indices count back from the
		// end of the vertex list seen so far, also per the OBJ spec.
		switch {
		case idx > 0:
			tri[i] = idx - 1
		case idx < 0:
			tri[i] = vertexCount + idx
		default:
			return tri, ErrMalformedLine
		}
	}
	return tri, nil
}

// Save writes positions and faces to path as an OBJ file (1-based
// indices, "v"/"f" lines only).
func Save(path string, positions [][3]float64, faces [][3]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: create %s: %w", path, err)
	}
	defer f.Close()
	if err := Encode(f, positions, faces); err != nil {
		return err
	}
	return nil
}

// Encode writes positions and faces as OBJ text to w.
func Encode(w io.Writer, positions [][3]float64, faces [][3]int) error {
	bw := bufio.NewWriter(w)
	for _, p := range positions {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("meshio: write vertex: %w", err)
		}
	}
	for _, tri := range faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1); err != nil {
			return fmt.Errorf("meshio: write face: %w", err)
		}
	}
	return bw.Flush()
}
