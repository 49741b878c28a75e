package frontends

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-runewidth"
	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
)

type mdConfig struct {
	fullText bool
	unit     iface.UnitSystem
}

func mdPad(s string, mustLen int) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	if delta := mustLen - runewidth.StringWidth(s); delta > 0 {
		return s + strings.Repeat(" ", delta)
	}
	return s
}

func (c *mdConfig) formatTemp(temp string) string {
	if temp == "" {
		return mdPad("", 8)
	}
	return mdPad(fmt.Sprintf("%s %s", temp, c.unit.Temp()), 8)
}

func (c *mdConfig) formatText(text string) string {
	if c.fullText {
		return text
	}
	return runewidth.Truncate(text, 40, "…")
}

func (c *mdConfig) printDay(s *forecast.Store, n int) (ret []string) {
	date := "?"
	if d, ok := dayDate(s, n); ok {
		date = d.Format("Mon Jan 02")
	}

	for _, i := range []int{2 * n, 2*n + 1} {
		pop := ""
		if p := s.PoP(i); p != "" {
			pop = p + "%"
		}
		ret = append(ret, fmt.Sprintf("| %s | %s | %s | %s | %s | %s |",
			mdPad(date, 10),
			mdPad(s.Title(i), 20),
			conditionEmoji(s.Periods[i].Icon),
			c.formatTemp(periodTemp(s, i)),
			mdPad(pop, 4),
			mdPad(c.formatText(s.Text(i)), 40)))
		date = ""
	}
	return
}

func (c *mdConfig) Setup() {
	flag.BoolVar(&c.fullText, "md-full-text", false, "md-frontend: do not truncate forecast texts")
}

func (c *mdConfig) Render(s *forecast.Store, unit iface.UnitSystem, numdays int) {
	c.unit = unit
	stdout := colorable.NewNonColorable(os.Stdout)

	fmt.Fprintf(stdout, "## Weather for %s\n\n", s.Location)
	fmt.Fprintln(stdout, "| Date       | Period               |    | Temp     | PoP  | Forecast                                 |")
	fmt.Fprintln(stdout, "| ---------- | -------------------- | -- | -------- | ---- | ---------------------------------------- |")
	for n := 0; n < numDays(numdays); n++ {
		for _, val := range c.printDay(s, n) {
			fmt.Fprintln(stdout, val)
		}
	}
}

func init() {
	iface.AllFrontends["markdown"] = &mdConfig{}
}
