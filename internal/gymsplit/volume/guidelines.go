package volume

type Guideline struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Guidelines is the reference text shown next to a report. It is informational only;
// classification uses the thresholds in ClassifyVolume and ClassifyFrequency.
type Guidelines struct {
	Volume    []Guideline `json:"volume"`
	Frequency []Guideline `json:"frequency"`
}

var DefaultGuidelines = Guidelines{
	Volume: []Guideline{
		{Label: "Minimum", Text: "4-8 sets per week per muscle group"},
		{Label: "Adequate", Text: "8+ sets per week per muscle group"},
	},
	Frequency: []Guideline{
		{Label: "Minimum", Text: "Train each muscle group 2x per week"},
		{Label: "Optimal", Text: "Aim to train each muscle group 3x per week"},
	},
}
