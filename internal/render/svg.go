package render

import (
	"io"
	"text/template"

	"github.com/akyairhashvil/donut/internal/geometry"
)

var svgTemplate = template.Must(template.New("donut").Funcs(template.FuncMap{
	"num": geometry.Num,
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" id="timer" width="{{num .L.Side}}" height="{{num .L.Side}}" style="background-color: {{.Background}};">
  <rect width="100%" height="100%" fill="{{.Background}}"/>
  <svg id="donut" width="100%" height="100%" viewBox="{{.L.ViewBox}}" preserveAspectRatio="xMinYMin meet">
    <g transform="{{.L.GroupTransform}}">
      <path id="countdown-path" fill="{{.Foreground}}" d="{{.L.Arc}}"/>
    </g>
    <text id="countdown-text" x="{{num .L.Countdown.X}}" y="{{num .L.Countdown.Y}}" text-anchor="middle" fill="{{.Foreground}}" style="font-size: {{.L.FontSizePx}};">{{html .L.Text}}</text>
    <svg id="play-pause" x="{{num .L.Play.X}}" y="{{num .L.Play.Y}}" viewBox="0 0 100 100" width="{{.L.FontSizePx}}" height="{{.L.FontSizePx}}" fill="{{.Foreground}}">
      <rect class="opacity-0" width="100%" height="100%" fill-opacity="0"/>
      <g id="play-button"{{if .Running}} visibility="hidden"{{end}}>
        <polygon points="22,12 84,50 22,88"/>
      </g>
      <g id="pause-button"{{if not .Running}} visibility="hidden"{{end}}>
        <rect x="22" y="12" width="20" height="76"/>
        <rect x="58" y="12" width="20" height="76"/>
      </g>
    </svg>
    <svg id="reset" x="{{num .L.Reset.X}}" y="{{num .L.Reset.Y}}" viewBox="0 0 100 100" width="{{.L.FontSizePx}}" height="{{.L.FontSizePx}}" fill="{{.Foreground}}">
      <rect class="opacity-0" width="100%" height="100%" fill-opacity="0"/>
      <g><polygon points="50,4 66,18 50,32"/></g>
      <g><path d="M50,18A32,32,0,1,0,82,50L72,50A22,22,0,1,1,50,28Z"/></g>
      <g><path d="M47,44L53,44L53,56L47,56Z"/><path d="M44,47L56,47L56,53L44,53Z"/></g>
      <g><polygon points="78,40 86,50 78,60"/></g>
    </svg>
  </svg>
</svg>
`))

type svgData struct {
	L          geometry.Layout
	Foreground string
	Background string
	Running    bool
}

// SVG writes f as a standalone SVG document.
func SVG(w io.Writer, f Frame) error {
	return svgTemplate.Execute(w, svgData{
		L:          f.Layout,
		Foreground: f.Foreground,
		Background: f.Background,
		Running:    f.Running,
	})
}
