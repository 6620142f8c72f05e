// Package landmarks читает и пишет наборы точек в JSON.
//
// Формат файла:
//
//	{"faces": [[[x0, y0], [x1, y1], ..., [x67, y67]], ...]}
package landmarks

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"fwhr-bot/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type document struct {
	Faces [][][]float64 `json:"faces"`
}

// Decode читает все лица из JSON-документа
func Decode(r io.Reader) ([]entity.LandmarkSet, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode landmarks: %w", err)
	}

	sets := make([]entity.LandmarkSet, 0, len(doc.Faces))
	for i, face := range doc.Faces {
		points := make([]entity.Point, len(face))
		for j, xy := range face {
			// точка это ровно пара [x, y]
			if len(xy) != 2 {
				return nil, fmt.Errorf("face %d point %d: %w", i, j, entity.ErrInvalidArgument)
			}
			points[j] = entity.Point{X: xy[0], Y: xy[1]}
		}
		set, err := entity.NewLandmarkSet(points)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		sets = append(sets, set)
	}

	return sets, nil
}

// Encode записывает лица в том же формате, что читает Decode
func Encode(w io.Writer, sets []entity.LandmarkSet) error {
	doc := document{Faces: make([][][]float64, len(sets))}
	for i, set := range sets {
		face := make([][]float64, len(set))
		for j, p := range set {
			face[j] = []float64{p.X, p.Y}
		}
		doc.Faces[i] = face
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode landmarks: %w", err)
	}
	return nil
}
