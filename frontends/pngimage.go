package frontends

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

type pngimageConfig struct {
	unit     iface.UnitSystem
	fontPath string
	outPath  string
}

const (
	pngColWidth = 320
	pngRowHight = 150
)

func truncateString(str string, num int) string {
	r := []rune(str)
	if len(r) > num {
		if num > 1 {
			num -= 1
		}
		return string(r[0:num]) + "…"
	}
	return str
}

func (c *pngimageConfig) formatPeriod(dc *gg.Context, s *forecast.Store, i int, baseX float64, baseY float64) {
	lineHeight := float64(20)
	firstLine := float64(-15)

	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(weatherFont)
	// Meteocons glyphs are plain letters and digits of the weather font
	dc.DrawString(s.Icon(i), baseX, baseY)

	dc.SetFontFace(textFont)
	dc.DrawString(truncateString(s.Title(i), 22), baseX+50, baseY+firstLine)

	dc.SetFontFace(smallTextFont)
	if t := periodTemp(s, i); t != "" {
		dc.DrawString(fmt.Sprintf("%s %s", t, c.unit.Temp()), baseX+50, baseY+firstLine+lineHeight*1)
	}
	if p := s.PoP(i); p != "" {
		dc.DrawString(fmt.Sprintf("%s%%", p), baseX+50, baseY+firstLine+lineHeight*2)
	}
	for j, line := range wrap(s.Text(i), 30, 3) {
		dc.DrawString(line, baseX+50, baseY+firstLine+lineHeight*float64(3+j))
	}
}

func (c *pngimageConfig) printDay(dc *gg.Context, s *forecast.Store, n int, baseX float64, baseY float64) {
	dc.SetLineWidth(2)
	dc.DrawLine(baseX, baseY+10, baseX+float64(2*pngColWidth), baseY+10)
	dc.Stroke()

	label := "?"
	if d, ok := dayDate(s, n); ok {
		label = d.Format("Mon 02 Jan")
	}
	dc.SetFontFace(textFont)
	dc.DrawString(label, baseX, baseY)

	for j, i := range []int{2 * n, 2*n + 1} {
		c.formatPeriod(dc, s, i, baseX+float64(pngColWidth*j), baseY+50)
	}
}

func loadFontFace(path string, points float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size: points,
	})
	return face, nil
}

func loadGoFontFace(size float64) (font.Face, error) {
	font, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(font, &truetype.Options{Size: size})
	return face, nil
}

var (
	weatherFont   font.Face
	textFont      font.Face
	smallTextFont font.Face
)

func (c *pngimageConfig) Setup() {
	flag.StringVar(&c.fontPath, "pngimage-font", "meteocons-webfont.ttf", "pngimage frontend: the `PATH` to the Meteocons weather font")
	flag.StringVar(&c.outPath, "pngimage-out", "out.png", "pngimage frontend: the `PATH` of the image to write")
}

func (c *pngimageConfig) Render(s *forecast.Store, unit iface.UnitSystem, numdays int) {
	c.unit = unit
	days := numDays(numdays)

	if c.fontPath == "" {
		log.Fatalf("No font specified. Please download the Meteocons ttf font and link to it in the configuration file.")
	}

	dc := gg.NewContext(2*pngColWidth+200, pngRowHight*days+100)
	dc.SetRGBA(1, 1, 1, 0.5)
	dc.Clear()

	var err error
	weatherFont, err = loadFontFace(c.fontPath, 32)
	if err != nil {
		log.Fatalf("Invalid font specified (%v). Please download the Meteocons ttf font and link to it in the configuration file.", err)
	}
	textFont, _ = loadGoFontFace(20)
	smallTextFont, _ = loadGoFontFace(14)

	dc.SetHexColor("#000000")
	dc.SetFontFace(textFont)
	dc.DrawString(fmt.Sprintf("Weather for %s", s.Location), 100, 30)

	for n := 0; n < days; n++ {
		c.printDay(dc, s, n, 100, 90+float64(n*pngRowHight))
	}
	if err := dc.SavePNG(c.outPath); err != nil {
		log.Fatalf("Unable to write %s: %v", c.outPath, err)
	}
}

func init() {
	iface.AllFrontends["pngimage"] = &pngimageConfig{}
}
