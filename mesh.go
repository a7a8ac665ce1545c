package splines

type Tri [3]int

// Mesh is an indexed triangle mesh over surface samples.
type Mesh struct {
	Faces  []Tri
	Points []Vector3
	UVs    []UV
}

func newMesh() *Mesh {
	return &Mesh{
		Faces:  make([]Tri, 0),
		Points: make([]Vector3, 0),
		UVs:    make([]UV, 0),
	}
}

// Mesh triangulates the sample grid. Two consecutive rows are joined only
// when they hold the same number of samples, so gaps left by degenerate
// samples stay open.
func (this SampledSurface) Mesh() *Mesh {
	mesh := newMesh()
	offsets := make([]int, len(this))

	for r, row := range this {
		offsets[r] = len(mesh.Points)
		for _, sp := range row {
			mesh.Points = append(mesh.Points, sp.Point)
			mesh.UVs = append(mesh.UVs, sp.UV)
		}
	}

	for r := 0; r+1 < len(this); r++ {
		if len(this[r]) != len(this[r+1]) {
			continue
		}

		for j := 0; j+1 < len(this[r]); j++ {
			ai := offsets[r] + j
			bi := offsets[r+1] + j
			ci := bi + 1
			di := ai + 1
			abc := Tri{ai, bi, ci}
			acd := Tri{ai, ci, di}

			mesh.Faces = append(mesh.Faces, abc, acd)
		}
	}

	return mesh
}

// Points returns all samples row by row.
func (this SampledSurface) Points() []Vector3 {
	var pts []Vector3
	for _, row := range this {
		for _, sp := range row {
			pts = append(pts, sp.Point)
		}
	}

	return pts
}
