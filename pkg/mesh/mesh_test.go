package mesh

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/nilsaker/geolab/pkg/vec3"
)

func tetrahedron() *Mesh {
	verts := []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(0, 1, 0),
		vec3.New(0, 0, 1),
	}
	faces := []Face{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	return New(verts, faces)
}

func TestMeshCounts(t *testing.T) {
	m := tetrahedron()
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount failed: expected 4, got %d", m.VertexCount())
	}
	if m.FaceCount() != 4 {
		t.Errorf("FaceCount failed: expected 4, got %d", m.FaceCount())
	}
	if m.EdgeCount() != 12 {
		t.Errorf("EdgeCount failed: expected 12, got %d", m.EdgeCount())
	}
}

func TestMeshNeighbors(t *testing.T) {
	m := tetrahedron()
	nbrs := m.Neighbors(0)
	if len(nbrs) != 4 {
		t.Errorf("Neighbors(0) failed: expected 4 parallel entries, got %d", len(nbrs))
	}
	for _, e := range nbrs {
		if math.Abs(e.Weight-m.Vertex(0).Distance(m.Vertex(e.Neighbor))) > 1e-10 {
			t.Errorf("Neighbor weight mismatch for %d", e.Neighbor)
		}
	}
}

func TestMeshBoundingBox(t *testing.T) {
	m := tetrahedron()
	bbox := m.BoundingBox()
	if bbox.Min != vec3.New(0, 0, 0) {
		t.Errorf("BoundingBox.Min failed: got %v", bbox.Min)
	}
	if bbox.Max != vec3.New(1, 1, 1) {
		t.Errorf("BoundingBox.Max failed: got %v", bbox.Max)
	}
}

func writeTempOBJ(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp OBJ: %v", err)
	}
	return path
}

func TestLoadOBJBasic(t *testing.T) {
	path := writeTempOBJ(t, `
# a comment
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1

f 1 2 3
f 1 2 4
`)
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if m.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 2 {
		t.Errorf("expected 2 faces, got %d", m.FaceCount())
	}
	if m.Faces[0] != (Face{0, 1, 2}) {
		t.Errorf("expected first face {0,1,2}, got %v", m.Faces[0])
	}
}

func TestLoadOBJFanTriangulation(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if m.FaceCount() != 2 {
		t.Fatalf("expected fan triangulation to produce 2 faces, got %d", m.FaceCount())
	}
	if m.Faces[0] != (Face{0, 1, 2}) || m.Faces[1] != (Face{0, 2, 3}) {
		t.Errorf("unexpected fan triangulation result: %v", m.Faces)
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if m.Faces[0] != (Face{0, 1, 2}) {
		t.Errorf("negative index resolution failed: got %v", m.Faces[0])
	}
}

func TestLoadOBJFaceWithTextureAndNormal(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1/1/1 2/2/1 3/3/1
`)
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if m.FaceCount() != 1 {
		t.Errorf("expected 1 face, got %d", m.FaceCount())
	}
}

func TestLoadOBJInvalidFaceDropped(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
f 1 2 5
`)
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if m.FaceCount() != 0 {
		t.Errorf("expected invalid face to be dropped, got %d faces", m.FaceCount())
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOBJEmptyFile(t *testing.T) {
	path := writeTempOBJ(t, "")
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if !m.Empty() {
		t.Error("expected empty mesh for empty file")
	}
}
