// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fsc/curve"
	"github.com/katalvlaran/fsc/geom"
)

var errColumns = errors.New("want columns x,y,z,t or x,y,t")

// ReadPoints parses CSV samples. Rows are x,y,z,t or x,y,t (z = 0). A
// first row that does not parse as numbers is taken as a header. Blank
// lines and lines starting with '#' are skipped.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var pts []geom.Point
	for rec := 1; ; rec++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		p, err := parseRecord(fields)
		if err != nil {
			if rec == 1 && !errors.Is(err, errColumns) {
				continue
			}
			return nil, fmt.Errorf("csv record %d: %w", rec, err)
		}
		pts = append(pts, p)
	}

	return pts, nil
}

func parseRecord(rec []string) (geom.Point, error) {
	if len(rec) != 3 && len(rec) != 4 {
		return geom.Point{}, fmt.Errorf("%d fields: %w", len(rec), errColumns)
	}
	v := make([]float64, len(rec))
	var err error
	for i, s := range rec {
		if v[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return geom.Point{}, err
		}
	}
	if len(v) == 3 {
		return geom.Point{X: v[0], Y: v[1], Time: v[2]}, nil
	}

	return geom.Point{X: v[0], Y: v[1], Z: v[2], Time: v[3]}, nil
}

// Document is the JSON form of a finished curve.
type Document struct {
	Degree        int            `json:"degree"`
	Range         [2]float64     `json:"range"`
	Knots         []float64      `json:"knots"`
	ControlPoints []ControlPoint `json:"controlPoints"`
}

// ControlPoint carries position, Greville time and fuzziness. Corner is
// the conic weight of the control polygon at this vertex (interior
// vertices only); values near the limit mean the polygon is straight.
type ControlPoint struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Z         float64  `json:"z"`
	Time      float64  `json:"t"`
	Fuzziness float64  `json:"fuzziness"`
	Corner    *float64 `json:"corner,omitempty"`
}

// NewDocument converts c for encoding.
func NewDocument(c *curve.BSpline) Document {
	cps := c.ControlPoints()
	doc := Document{
		Degree:        c.Degree(),
		Range:         [2]float64{c.Range().Start, c.Range().End},
		Knots:         c.Knots(),
		ControlPoints: make([]ControlPoint, len(cps)),
	}
	for i, p := range cps {
		cp := ControlPoint{X: p.X, Y: p.Y, Z: p.Z, Time: p.Time, Fuzziness: p.Fuzziness}
		if i > 0 && i < len(cps)-1 {
			w := geom.ArcWeight(cps[i-1], p, cps[i+1])
			cp.Corner = &w
		}
		doc.ControlPoints[i] = cp
	}

	return doc
}

// WriteDocument encodes doc as indented JSON.
func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
