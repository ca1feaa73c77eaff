package app

import (
	"encoding/json"
	"fmt"

	"github.com/vk/pixelgridgo/internal/registry"
	"github.com/vk/pixelgridgo/internal/schema"
)

// describeDoc is the JSON shape of the describe output.
type describeDoc struct {
	Effects []effectDoc `json:"effects"`
}

type effectDoc struct {
	Type        string     `json:"type"`
	DisplayName string     `json:"display_name"`
	Description string     `json:"description,omitempty"`
	Version     string     `json:"version"`
	Params      []paramDoc `json:"params"`
}

type paramDoc struct {
	ID    schema.ID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Kind  string    `json:"kind"`

	// Numeric kinds only.
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Default   *float64 `json:"default,omitempty"`
	SliderMin *float64 `json:"slider_min,omitempty"`
	SliderMax *float64 `json:"slider_max,omitempty"`
	Precision *int     `json:"precision,omitempty"`
}

// writeJSON renders the selected descriptions as an indented JSON document.
func (a *App) writeJSON(descs []registry.Description) error {
	doc := describeDoc{Effects: make([]effectDoc, 0, len(descs))}
	for _, d := range descs {
		ed := effectDoc{
			Type:        d.Info.Type,
			DisplayName: d.Info.DisplayName,
			Description: d.Info.Description,
			Version:     d.Info.Version,
		}
		for _, e := range d.Params.Entries() {
			pd := paramDoc{
				ID:    e.ID,
				Name:  e.Name,
				Label: e.Label,
				Kind:  e.Kind.String(),
			}
			if e.Numeric() {
				min, max, def := e.Min, e.Max, e.Default
				sMin, sMax, prec := e.SliderMin, e.SliderMax, e.Precision
				pd.Min, pd.Max, pd.Default = &min, &max, &def
				pd.SliderMin, pd.SliderMax, pd.Precision = &sMin, &sMax, &prec
			}
			ed.Params = append(ed.Params, pd)
		}
		doc.Effects = append(doc.Effects, ed)
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// writeText renders the selected descriptions in a human-readable form.
func (a *App) writeText(descs []registry.Description) error {
	for _, d := range descs {
		if _, err := fmt.Fprintf(a.outW, "%s (%s) v%s\n", d.Info.DisplayName, d.Info.Type, d.Info.Version); err != nil {
			return err
		}
		if d.Info.Description != "" {
			fmt.Fprintf(a.outW, "  %s\n", d.Info.Description)
		}
		for _, e := range d.Params.Entries() {
			if e.Numeric() {
				fmt.Fprintf(a.outW, "  [%d] %s (%s, %s) default %.*f, range %g..%g, slider %g..%g\n",
					e.ID, e.Name, e.Label, e.Kind, e.Precision, e.Default, e.Min, e.Max, e.SliderMin, e.SliderMax)
			} else {
				fmt.Fprintf(a.outW, "  [%d] %s (%s, %s)\n", e.ID, e.Name, e.Label, e.Kind)
			}
		}
		fmt.Fprintln(a.outW)
	}
	return nil
}
