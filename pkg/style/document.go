// Package style loads cut linear layout descriptions from YAML or TOML
// files and converts them into layout configuration.
package style

// Document is the on-disk description of a layout.
//
// Dimensions (depth, length) accept a number of pixels or a percentage
// string such as "25%" measured against the available extent. Colors
// accept #RRGGBB, #AARRGGBB or a CSS color name.
type Document struct {
	Version        string     `yaml:"version" toml:"version"`
	Name           string     `yaml:"name" toml:"name"`
	Width          float64    `yaml:"width" toml:"width"`
	Height         float64    `yaml:"height" toml:"height"`
	Orientation    string     `yaml:"orientation" toml:"orientation"`
	Direction      string     `yaml:"direction" toml:"direction"`
	Alignment      string     `yaml:"alignment" toml:"alignment"`
	CrossAlignment string     `yaml:"cross_alignment" toml:"cross_alignment"`
	Padding        Insets     `yaml:"padding" toml:"padding"`
	Background     string     `yaml:"background" toml:"background"`
	Corners        CornersDoc `yaml:"corners" toml:"corners"`
	ChildCuts      ChildCuts  `yaml:"child_cuts" toml:"child_cuts"`
	Shadow         ShadowDoc  `yaml:"shadow" toml:"shadow"`
	Divider        DividerDoc `yaml:"divider" toml:"divider"`
	Children       []ChildDoc `yaml:"children" toml:"children"`
}

// Insets are per-side distances. A side left out takes All.
type Insets struct {
	All    float64  `yaml:"all" toml:"all"`
	Left   *float64 `yaml:"left" toml:"left"`
	Top    *float64 `yaml:"top" toml:"top"`
	Right  *float64 `yaml:"right" toml:"right"`
	Bottom *float64 `yaml:"bottom" toml:"bottom"`
}

// CutDoc describes one cut. Fields left out keep the value from the layer
// below.
type CutDoc struct {
	Type     string   `yaml:"type" toml:"type"`
	Depth    any      `yaml:"depth" toml:"depth"`
	Length   any      `yaml:"length" toml:"length"`
	Radius   *float64 `yaml:"radius" toml:"radius"`
	Rotation *float64 `yaml:"rotation" toml:"rotation"`
}

// CornersDoc configures the container corners.
type CornersDoc struct {
	Flags []string          `yaml:"flags" toml:"flags"`
	Cut   CutDoc            `yaml:"cut" toml:"cut"`
	Each  map[string]CutDoc `yaml:"each" toml:"each"`
}

// ChildCuts configures the cuts between children.
type ChildCuts struct {
	Flags              []string `yaml:"flags" toml:"flags"`
	Cut                CutDoc   `yaml:"cut" toml:"cut"`
	MirrorEndFromStart bool     `yaml:"mirror_end_from_start" toml:"mirror_end_from_start"`
}

// ShadowDoc configures the shadow.
type ShadowDoc struct {
	Color                string  `yaml:"color" toml:"color"`
	Radius               float64 `yaml:"radius" toml:"radius"`
	OffsetX              float64 `yaml:"offset_x" toml:"offset_x"`
	OffsetY              float64 `yaml:"offset_y" toml:"offset_y"`
	AutoPadding          bool    `yaml:"auto_padding" toml:"auto_padding"`
	AllowOverUserPadding bool    `yaml:"allow_over_user_padding" toml:"allow_over_user_padding"`
}

// DividerDoc configures the dividers.
type DividerDoc struct {
	Color        string   `yaml:"color" toml:"color"`
	Thickness    float64  `yaml:"thickness" toml:"thickness"`
	Cap          string   `yaml:"cap" toml:"cap"`
	DashWidth    float64  `yaml:"dash_width" toml:"dash_width"`
	DashGap      float64  `yaml:"dash_gap" toml:"dash_gap"`
	Gravity      string   `yaml:"gravity" toml:"gravity"`
	PaddingStart float64  `yaml:"padding_start" toml:"padding_start"`
	PaddingEnd   float64  `yaml:"padding_end" toml:"padding_end"`
	Show         []string `yaml:"show" toml:"show"`
}

// SideDoc adjusts the cuts on one side of a child.
type SideDoc struct {
	Cut          CutDoc  `yaml:"cut" toml:"cut"`
	DepthOffset  float64 `yaml:"depth_offset" toml:"depth_offset"`
	LengthOffset float64 `yaml:"length_offset" toml:"length_offset"`
	Rotation     float64 `yaml:"rotation" toml:"rotation"`
}

// ChildDoc describes one child.
type ChildDoc struct {
	Width                 float64           `yaml:"width" toml:"width"`
	Height                float64           `yaml:"height" toml:"height"`
	Weight                int               `yaml:"weight" toml:"weight"`
	Margin                Insets            `yaml:"margin" toml:"margin"`
	Corners               map[string]CutDoc `yaml:"corners" toml:"corners"`
	Start                 SideDoc           `yaml:"start" toml:"start"`
	End                   SideDoc           `yaml:"end" toml:"end"`
	OverrideParentContact bool              `yaml:"override_parent_contact" toml:"override_parent_contact"`
	OverrideParentType    bool              `yaml:"override_parent_type" toml:"override_parent_type"`
	MirrorEndFromStart    bool              `yaml:"mirror_end_from_start" toml:"mirror_end_from_start"`
}
