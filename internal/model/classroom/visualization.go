package classroom

// Visualization is the animation document rendered next to an answer.
type Visualization struct {
	ID       string  `json:"id"`
	Duration int     `json:"duration"`
	FPS      int     `json:"fps"`
	Layers   []Layer `json:"layers"`
}

// Layer is one visual element (circle, rectangle, text, arrow ...).
// Props stay loosely typed because each layer type uses different keys.
type Layer struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Label      string           `json:"label,omitempty"`
	Props      map[string]any   `json:"props"`
	Animations []LayerAnimation `json:"animations"`
}

// LayerAnimation animates one prop of a layer between two values.
type LayerAnimation struct {
	Property string `json:"property"`
	From     any    `json:"from"`
	To       any    `json:"to"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Easing   string `json:"easing,omitempty"`
	Type     string `json:"type,omitempty"`
}
