package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrNonTriangularFace is returned for OBJ faces with more or fewer than three vertices
var ErrNonTriangularFace = errors.New("only triangular faces supported")

// MeshData contains the raw geometry loaded from a mesh file
type MeshData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices into Vertices (3 per triangle)
}

// TriangleCount returns the number of triangles in the mesh
func (m *MeshData) TriangleCount() int {
	return len(m.Faces) / 3
}

// LoadOBJ loads the vertex positions and triangular faces of a Wavefront OBJ file.
// Normals, texture coordinates, groups and materials are ignored.
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// ParseOBJ reads OBJ data from r
func ParseOBJ(r io.Reader) (*MeshData, error) {
	mesh := &MeshData{
		Vertices: make([]core.Vec3, 0),
		Faces:    make([]int, 0),
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			vertex, err := parseOBJVertex(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			mesh.Vertices = append(mesh.Vertices, vertex)
		case "f":
			if len(parts) != 4 {
				return nil, fmt.Errorf("line %d: face with %d vertices: %w", lineNumber, len(parts)-1, ErrNonTriangularFace)
			}
			for _, ref := range parts[1:] {
				index, err := parseOBJIndex(ref, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNumber, err)
				}
				mesh.Faces = append(mesh.Faces, index)
			}
		default:
			// vn, vt, o, g, s, usemtl, mtllib
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	return mesh, nil
}

// parseOBJVertex parses the coordinates of a "v" line. An optional w is ignored.
func parseOBJVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex coordinate %q: %w", fields[i], err)
		}
		coords[i] = value
	}

	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseOBJIndex converts a face reference such as "7", "7/2" or "7//3" into a
// 0-based vertex index. Negative indices count back from the last vertex read.
func parseOBJIndex(ref string, vertexCount int) (int, error) {
	position, _, _ := strings.Cut(ref, "/")
	index, err := strconv.Atoi(position)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q: %w", ref, err)
	}

	switch {
	case index > 0:
		index--
	case index < 0:
		index += vertexCount
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}

	if index < 0 || index >= vertexCount {
		return 0, fmt.Errorf("face index %s out of range for %d vertices", position, vertexCount)
	}
	return index, nil
}
