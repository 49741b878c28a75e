package frontends

import (
	"fmt"
	"strings"
	"time"

	colorable "github.com/mattn/go-colorable"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
)

type emojiConfig struct {
	unit iface.UnitSystem
}

func (c *emojiConfig) formatTemp(temp string) string {
	color := func(t float32) int {
		colmap := []struct {
			maxtemp float32
			color   int
		}{
			{-15, 21}, {-12, 27}, {-9, 33}, {-6, 39}, {-3, 45},
			{0, 51}, {2, 50}, {4, 49}, {6, 48}, {8, 47},
			{10, 46}, {13, 82}, {16, 118}, {19, 154}, {22, 190},
			{25, 226}, {28, 220}, {31, 214}, {34, 208}, {37, 202},
		}

		col := 196
		for _, candidate := range colmap {
			if t < candidate.maxtemp {
				col = candidate.color
				break
			}
		}
		return col
	}

	t, ok := parseTemp(temp)
	if !ok {
		return pad(fmt.Sprintf("? %s", c.unit.Temp()), 8)
	}
	return pad(fmt.Sprintf("\033[38;5;%03dm%s\033[0m %s", color(c.unit.TempC(t)), temp, c.unit.Temp()), 8)
}

func (c *emojiConfig) formatPeriod(cur []string, s *forecast.Store, i int) (ret []string) {
	icon := conditionEmoji(s.Periods[i].Icon)
	if runewidth.StringWidth(icon) == 1 {
		icon += " "
	}

	title := runewidth.Truncate(runewidth.FillRight(s.Title(i), 20), 20, "…")
	pop := "    "
	if p := s.PoP(i); p != "" {
		pop = runewidth.FillLeft(p+"%", 4)
	}

	ret = append(ret, fmt.Sprintf("%v %v", cur[0], title))
	ret = append(ret, fmt.Sprintf("%v %v %v %v    ", cur[1], icon, c.formatTemp(periodTemp(s, i)), pop))
	return
}

func (c *emojiConfig) printDay(s *forecast.Store, n int) (ret []string) {
	ret = make([]string, 2)
	for i := range ret {
		ret[i] = "│"
	}

	for _, i := range []int{2 * n, 2*n + 1} {
		ret = c.formatPeriod(ret, s, i)
		for j := range ret {
			ret[j] = ret[j] + " │"
		}
	}

	dateFmt := "┤   ?    ├"
	if d, ok := dayDate(s, n); ok {
		dateFmt = "┤ " + d.Format("Mon 02") + " ├"
	}
	ret = append([]string{
		strings.Repeat(" ", 18) + "┌────────┐",
		"┌" + strings.Repeat("─", 17) + dateFmt + strings.Repeat("─", 18) + "┐"},
		ret...)
	return append(ret,
		"└"+strings.Repeat("─", 45)+"┘",
		" ")
}

func (c *emojiConfig) Setup() {
}

func (c *emojiConfig) Render(s *forecast.Store, unit iface.UnitSystem, numdays int) {
	c.unit = unit

	fmt.Printf("Weather for %s\n\n", s.Location)
	stdout := colorable.NewColorableStdout()

	for n := 0; n < numDays(numdays); n++ {
		for _, val := range c.printDay(s, n) {
			fmt.Fprintln(stdout, val)
		}
	}
	if age := s.Age(time.Now()); age >= time.Minute {
		fmt.Fprintf(stdout, "🕑 fetched %s ago\n", age.Truncate(time.Minute))
	}
}

func init() {
	iface.AllFrontends["emoji"] = &emojiConfig{}
}
