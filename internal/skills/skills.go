// Package skills builds the radar chart shown in the skills section. The
// chart itself is drawn by Chart.js in the browser; this package only
// produces its configuration.
package skills

// Levels are the comfort levels, in percent, in label order.
var Levels = []int{90, 85, 80, 75, 70, 65}

var labels = map[string][]string{
	"en": {"XAI", "LLM orchestration", "MLOps", "Data storytelling", "Backend", "Frontend"},
	"ja": {"XAI", "LLMオーケストレーション", "MLOps", "データストーリーテリング", "バックエンド", "フロントエンド"},
}

var datasetLabels = map[string]string{
	"en": "Comfort level (%)",
	"ja": "習熟度 (%)",
}

const (
	accent     = "#6cc3ff"
	labelColor = "#d0e6ff"
	gridColor  = "rgba(255,255,255,0.15)"
	fontFamily = `"Roboto", "Noto Sans JP", sans-serif`
)

type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label                string `json:"label"`
	Data                 []int  `json:"data"`
	BorderWidth          int    `json:"borderWidth"`
	BorderColor          string `json:"borderColor"`
	BackgroundColor      string `json:"backgroundColor"`
	PointBackgroundColor string `json:"pointBackgroundColor"`
	PointBorderColor     string `json:"pointBorderColor"`
}

type Options struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Scales              Scales  `json:"scales"`
	Plugins             Plugins `json:"plugins"`
}

type Scales struct {
	R RadialScale `json:"r"`
}

type RadialScale struct {
	SuggestedMin int         `json:"suggestedMin"`
	SuggestedMax int         `json:"suggestedMax"`
	Ticks        Ticks       `json:"ticks"`
	AngleLines   Colored     `json:"angleLines"`
	Grid         Colored     `json:"grid"`
	PointLabels  PointLabels `json:"pointLabels"`
}

type Ticks struct {
	Display bool `json:"display"`
}

type Colored struct {
	Color string `json:"color"`
}

type Font struct {
	Size   int    `json:"size"`
	Family string `json:"family"`
}

type PointLabels struct {
	Color string `json:"color"`
	Font  Font   `json:"font"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Labels Colored `json:"labels"`
}

// Lang normalizes a requested language to one the chart has labels for.
// Anything other than "en" gets Japanese, the site's default.
func Lang(lang string) string {
	if lang == "en" {
		return "en"
	}
	return "ja"
}

// Chart returns the radar chart configuration for lang.
func Chart(lang string) Config {
	lang = Lang(lang)

	data := make([]int, len(Levels))
	copy(data, Levels)

	return Config{
		Type: "radar",
		Data: Data{
			Labels: append([]string(nil), labels[lang]...),
			Datasets: []Dataset{{
				Label:                datasetLabels[lang],
				Data:                 data,
				BorderWidth:          2,
				BorderColor:          "rgba(108, 195, 255, 0.8)",
				BackgroundColor:      "rgba(108, 195, 255, 0.2)",
				PointBackgroundColor: accent,
				PointBorderColor:     "#ffffff",
			}},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: false,
			Scales: Scales{R: RadialScale{
				SuggestedMin: 40,
				SuggestedMax: 100,
				AngleLines:   Colored{Color: gridColor},
				Grid:         Colored{Color: gridColor},
				PointLabels: PointLabels{
					Color: labelColor,
					Font:  Font{Size: 14, Family: fontFamily},
				},
			}},
			Plugins: Plugins{Legend: Legend{Labels: Colored{Color: labelColor}}},
		},
	}
}
