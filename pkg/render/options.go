package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the rendering configuration record. Every renderer receives
// the full set and applies what it understands.
type Options struct {
	RenderLines bool    `json:"render_lines" yaml:"render_lines"`
	LineColour  string  `json:"line_colour" yaml:"line_colour"`
	LineStyle   string  `json:"line_style" yaml:"line_style"`
	LineWidth   float64 `json:"line_width" yaml:"line_width"`

	RenderMarkers    bool    `json:"render_markers" yaml:"render_markers"`
	MarkerStyle      string  `json:"marker_style" yaml:"marker_style"`
	MarkerSize       int     `json:"marker_size" yaml:"marker_size"`
	MarkerFaceColour string  `json:"marker_face_colour" yaml:"marker_face_colour"`
	MarkerEdgeColour string  `json:"marker_edge_colour" yaml:"marker_edge_colour"`
	MarkerEdgeWidth  float64 `json:"marker_edge_width" yaml:"marker_edge_width"`

	RenderAxes  bool        `json:"render_axes" yaml:"render_axes"`
	AxesXLimits *[2]float64 `json:"axes_x_limits,omitempty" yaml:"axes_x_limits,omitempty"`
	AxesYLimits *[2]float64 `json:"axes_y_limits,omitempty" yaml:"axes_y_limits,omitempty"`

	FigureSize *[2]float64 `json:"figure_size,omitempty" yaml:"figure_size,omitempty"`
	Label      string      `json:"label,omitempty" yaml:"label,omitempty"`
}

// Defaults returns the standard rendering options: red lines, black circular
// markers, axes on.
func Defaults() Options {
	return Options{
		RenderLines: true,
		LineColour:  "r",
		LineStyle:   "-",
		LineWidth:   1.0,

		RenderMarkers:    true,
		MarkerStyle:      "o",
		MarkerSize:       20,
		MarkerFaceColour: "k",
		MarkerEdgeColour: "k",
		MarkerEdgeWidth:  1.0,

		RenderAxes: true,
	}
}

// LoadOptions reads a YAML options file layered over Defaults.
func LoadOptions(path string) (Options, error) {
	o := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("render: reading options: %w", err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("render: decoding options: %w", err)
	}
	return o, nil
}
