package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportData is the JSON shape of an exported run.
type ExportData struct {
	Run    Run       `json:"run"`
	Bodies []BodyRow `json:"bodies"`
}

// ExportJSON writes a stored run with its snapshot as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	run, err := s.LoadRun(runID)
	if err != nil {
		return err
	}
	bodies, err := s.LoadBodies(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *run, Bodies: bodies})
}

// ExportCSV writes a stored run's body snapshot as CSV.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	bodies, err := s.LoadBodies(runID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "kind", "mass", "pos_x", "pos_y", "vel_x", "vel_y", "size"}); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, b := range bodies {
		row := []string{b.Name, b.Kind, f(b.Mass), f(b.PosX), f(b.PosY), f(b.VelX), f(b.VelY), f(b.Size)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
