package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nilsaker/geolab/internal/errs"
	"github.com/nilsaker/geolab/pkg/vec3"
)

// LoadOBJ reads a Wavefront OBJ file and builds a Mesh from its `v`
// and `f` directives. Blank lines, `#` comments, and every directive
// other than `v`/`f` are ignored. Polygons with more than three
// vertices are fan-triangulated. Face tokens may carry `/vt`/`/vn`
// suffixes; only the vertex index (the first field) is used.
func LoadOBJ(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open OBJ file: %w", errs.ErrIO, err)
	}
	defer file.Close()

	var vertices []vec3.Vec3
	var faces []Face

	scanner := bufio.NewScanner(file)
	// OBJ files for large meshes can have long lines; grow past the
	// scanner's default 64KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if ok {
				vertices = append(vertices, v)
			}

		case "f":
			tris, ok := parseFace(fields[1:], len(vertices))
			if ok {
				faces = append(faces, tris...)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read OBJ file: %w", errs.ErrIO, err)
	}

	return New(vertices, faces), nil
}

func parseVertex(fields []string) (vec3.Vec3, bool) {
	if len(fields) < 3 {
		return vec3.Vec3{}, false
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	z, errZ := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil || errZ != nil {
		return vec3.Vec3{}, false
	}
	return vec3.New(x, y, z), true
}

// parseFace resolves a face's tokens to zero-based vertex indices and
// fan-triangulates polygons with more than three vertices. vertexCount
// is the number of `v` lines seen so far, used to resolve negative
// (relative) indices; a face referencing a vertex that has not yet
// been declared is invalid and dropped, per spec.
func parseFace(tokens []string, vertexCount int) ([]Face, bool) {
	if len(tokens) < 3 {
		return nil, false
	}

	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		idx, ok := resolveFaceIndex(tok, vertexCount)
		if !ok || idx < 0 || idx >= vertexCount {
			return nil, false
		}
		indices = append(indices, idx)
	}

	faces := make([]Face, 0, len(indices)-2)
	for i := 1; i+1 < len(indices); i++ {
		faces = append(faces, Face{indices[0], indices[i], indices[i+1]})
	}
	return faces, true
}

// resolveFaceIndex parses one `head`, `head/...` face token into a
// zero-based vertex index. A zero or non-numeric head invalidates the
// token.
func resolveFaceIndex(token string, vertexCount int) (int, bool) {
	head := token
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		head = token[:slash]
	}
	n, err := strconv.Atoi(head)
	if err != nil || n == 0 {
		return 0, false
	}
	if n > 0 {
		return n - 1, true
	}
	return vertexCount + n, true
}
