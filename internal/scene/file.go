// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scene is the in-memory scene the engine's plans execute against.
package scene

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/madjust-tui/internal/model"
)

// =============================================================================
// TOML SCHEMA
// =============================================================================

type fileScene struct {
	Mode       string       `toml:"mode"`
	SelectMode string       `toml:"select_mode"`
	Active     string       `toml:"active"`
	Objects    []fileObject `toml:"objects"`
}

type fileObject struct {
	Name         string     `toml:"name"`
	Location     []float64  `toml:"location,omitempty"`
	Rotation     []float64  `toml:"rotation,omitempty"`
	Scale        []float64  `toml:"scale,omitempty"`
	ParentOffset []float64  `toml:"parent_offset,omitempty"`
	HideViewport bool       `toml:"hide_viewport,omitempty"`
	HideRender   bool       `toml:"hide_render,omitempty"`
	Selected     bool       `toml:"selected,omitempty"`
	Mesh         *fileMesh  `toml:"mesh,omitempty"`
	Curve        *fileCurve `toml:"curve,omitempty"`
}

type fileMesh struct {
	Verts         [][]float64 `toml:"verts"`
	Edges         [][]int     `toml:"edges,omitempty"`
	Faces         [][]int     `toml:"faces,omitempty"`
	SelectedVerts []int       `toml:"selected_verts,omitempty"`
	SelectedEdges []int       `toml:"selected_edges,omitempty"`
	SelectedFaces []int       `toml:"selected_faces,omitempty"`
}

type fileCurve struct {
	Points []filePoint `toml:"points"`
}

type filePoint struct {
	Co       []float64 `toml:"co"`
	Weight   float64   `toml:"weight,omitempty"`
	Radius   float64   `toml:"radius,omitempty"`
	Tilt     float64   `toml:"tilt,omitempty"`
	Selected bool      `toml:"selected,omitempty"`
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads a TOML scene file. Objects get fresh IDs; the active object
// is referenced by name in the file.
func Load(path string) (*Scene, error) {
	var fs fileScene
	if _, err := toml.DecodeFile(path, &fs); err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return fromFile(fs)
}

func fromFile(fs fileScene) (*Scene, error) {
	sc := New()

	switch fs.Mode {
	case "", "object":
		sc.Mode = model.ModeObject
	case "edit_mesh":
		sc.Mode = model.ModeEditMesh
	case "edit_curve":
		sc.Mode = model.ModeEditCurve
	default:
		return nil, fmt.Errorf("load scene: unknown mode %q", fs.Mode)
	}

	switch fs.SelectMode {
	case "", "verts":
		sc.SelectMode = model.SelectVerts
	case "edges":
		sc.SelectMode = model.SelectEdges
	case "faces":
		sc.SelectMode = model.SelectFaces
	default:
		return nil, fmt.Errorf("load scene: unknown select_mode %q", fs.SelectMode)
	}

	for _, fo := range fs.Objects {
		obj := NewObject(fo.Name)
		var err error
		if obj.Location, err = vec3(fo.Location, model.Vec3{}); err != nil {
			return nil, fmt.Errorf("object %q location: %w", fo.Name, err)
		}
		if obj.RotationDeg, err = vec3(fo.Rotation, model.Vec3{}); err != nil {
			return nil, fmt.Errorf("object %q rotation: %w", fo.Name, err)
		}
		if obj.Scale, err = vec3(fo.Scale, model.Vec3{X: 1, Y: 1, Z: 1}); err != nil {
			return nil, fmt.Errorf("object %q scale: %w", fo.Name, err)
		}
		if obj.ParentOffset, err = vec3(fo.ParentOffset, model.Vec3{}); err != nil {
			return nil, fmt.Errorf("object %q parent_offset: %w", fo.Name, err)
		}
		obj.HideViewport = fo.HideViewport
		obj.HideRender = fo.HideRender
		obj.Selected = fo.Selected

		if fo.Mesh != nil {
			mesh := &Mesh{
				SelectedVerts: fo.Mesh.SelectedVerts,
				SelectedEdges: fo.Mesh.SelectedEdges,
				SelectedFaces: fo.Mesh.SelectedFaces,
			}
			for i, v := range fo.Mesh.Verts {
				co, err := vec3(v, model.Vec3{})
				if err != nil {
					return nil, fmt.Errorf("object %q vert %d: %w", fo.Name, i, err)
				}
				mesh.Verts = append(mesh.Verts, co)
			}
			for i, e := range fo.Mesh.Edges {
				if len(e) != 2 {
					return nil, fmt.Errorf("object %q edge %d: want 2 indices, got %d", fo.Name, i, len(e))
				}
				mesh.Edges = append(mesh.Edges, [2]int{e[0], e[1]})
			}
			mesh.Faces = fo.Mesh.Faces
			obj.Mesh = mesh
		}

		if fo.Curve != nil {
			curve := &Curve{}
			for i, fp := range fo.Curve.Points {
				co, err := vec3(fp.Co, model.Vec3{})
				if err != nil {
					return nil, fmt.Errorf("object %q point %d: %w", fo.Name, i, err)
				}
				curve.Points = append(curve.Points, CurvePoint{
					Co:       co,
					Weight:   fp.Weight,
					Radius:   fp.Radius,
					Tilt:     fp.Tilt,
					Selected: fp.Selected,
				})
			}
			obj.Curve = curve
		}

		sc.Objects = append(sc.Objects, obj)
	}

	if fs.Active != "" {
		obj := sc.FindName(fs.Active)
		if obj == nil {
			return nil, fmt.Errorf("load scene: active object %q not found", fs.Active)
		}
		sc.Active = obj.ID
	} else if len(sc.Objects) > 0 {
		sc.Active = sc.Objects[0].ID
	}
	return sc, nil
}

// vec3 converts an optional 3-element TOML array.
func vec3(v []float64, def model.Vec3) (model.Vec3, error) {
	if len(v) == 0 {
		return def, nil
	}
	if len(v) != 3 {
		return model.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return model.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the scene back out as TOML.
func Save(path string, sc *Scene) error {
	fs := toFile(sc)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(fs); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}

func toFile(sc *Scene) fileScene {
	fs := fileScene{}

	switch sc.Mode {
	case model.ModeEditMesh:
		fs.Mode = "edit_mesh"
	case model.ModeEditCurve:
		fs.Mode = "edit_curve"
	default:
		fs.Mode = "object"
	}
	switch sc.SelectMode {
	case model.SelectEdges:
		fs.SelectMode = "edges"
	case model.SelectFaces:
		fs.SelectMode = "faces"
	default:
		fs.SelectMode = "verts"
	}
	if obj := sc.ActiveObject(); obj != nil {
		fs.Active = obj.Name
	}

	for _, o := range sc.Objects {
		fo := fileObject{
			Name:         o.Name,
			Location:     flat(o.Location),
			Rotation:     flat(o.RotationDeg),
			Scale:        flat(o.Scale),
			ParentOffset: flat(o.ParentOffset),
			HideViewport: o.HideViewport,
			HideRender:   o.HideRender,
			Selected:     o.Selected,
		}
		if o.Mesh != nil {
			fm := &fileMesh{
				SelectedVerts: o.Mesh.SelectedVerts,
				SelectedEdges: o.Mesh.SelectedEdges,
				SelectedFaces: o.Mesh.SelectedFaces,
				Faces:         o.Mesh.Faces,
			}
			for _, v := range o.Mesh.Verts {
				fm.Verts = append(fm.Verts, flat(v))
			}
			for _, e := range o.Mesh.Edges {
				fm.Edges = append(fm.Edges, []int{e[0], e[1]})
			}
			fo.Mesh = fm
		}
		if o.Curve != nil {
			fc := &fileCurve{}
			for _, p := range o.Curve.Points {
				fc.Points = append(fc.Points, filePoint{
					Co:       flat(p.Co),
					Weight:   p.Weight,
					Radius:   p.Radius,
					Tilt:     p.Tilt,
					Selected: p.Selected,
				})
			}
			fo.Curve = fc
		}
		fs.Objects = append(fs.Objects, fo)
	}
	return fs
}

func flat(v model.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
