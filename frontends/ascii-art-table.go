package frontends

import (
	"flag"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-runewidth"
	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
)

type aatConfig struct {
	monochrome bool
	unit       iface.UnitSystem
}

const (
	aatInfoWidth = 29
	// " " icon " " info " "
	aatColWidth = 1 + 13 + 1 + aatInfoWidth + 1
)

var (
	ansiEsc = regexp.MustCompile("\033.*?m")

	aatIcons = map[string][]string{
		"chanceflurries": iconLightSnowShowers,
		"chancerain":     iconLightShowers,
		"chancesleet":    iconLightSleetShowers,
		"chancesnow":     iconLightSnowShowers,
		"chancetstorms":  iconThunderyShowers,
		"clear":          iconSunny,
		"cloudy":         iconCloudy,
		"flurries":       iconLightSnow,
		"fog":            iconFog,
		"hazy":           iconFog,
		"mostlycloudy":   iconVeryCloudy,
		"mostlysunny":    iconPartlyCloudy,
		"partlycloudy":   iconPartlyCloudy,
		"partlysunny":    iconPartlyCloudy,
		"sleet":          iconLightSleet,
		"rain":           iconLightRain,
		"snow":           iconHeavySnow,
		"sunny":          iconSunny,
		"tstorms":        iconThunderyHeavyRain,
	}

	iconUnknown = []string{
		"    .-.      ",
		"     __)     ",
		"    (        ",
		"     `-’     ",
		"      •      "}
	iconSunny = []string{
		"\033[38;5;226m    \\   /    \033[0m",
		"\033[38;5;226m     .-.     \033[0m",
		"\033[38;5;226m  ― (   ) ―  \033[0m",
		"\033[38;5;226m     `-’     \033[0m",
		"\033[38;5;226m    /   \\    \033[0m"}
	iconPartlyCloudy = []string{
		"\033[38;5;226m   \\  /\033[0m      ",
		"\033[38;5;226m _ /\"\"\033[38;5;250m.-.    \033[0m",
		"\033[38;5;226m   \\_\033[38;5;250m(   ).  \033[0m",
		"\033[38;5;226m   /\033[38;5;250m(___(__) \033[0m",
		"             "}
	iconCloudy = []string{
		"             ",
		"\033[38;5;250m     .--.    \033[0m",
		"\033[38;5;250m  .-(    ).  \033[0m",
		"\033[38;5;250m (___.__)__) \033[0m",
		"             "}
	iconVeryCloudy = []string{
		"             ",
		"\033[38;5;240;1m     .--.    \033[0m",
		"\033[38;5;240;1m  .-(    ).  \033[0m",
		"\033[38;5;240;1m (___.__)__) \033[0m",
		"             "}
	iconLightShowers = []string{
		"\033[38;5;226m _`/\"\"\033[38;5;250m.-.    \033[0m",
		"\033[38;5;226m  ,\\_\033[38;5;250m(   ).  \033[0m",
		"\033[38;5;226m   /\033[38;5;250m(___(__) \033[0m",
		"\033[38;5;111m     ‘ ‘ ‘ ‘ \033[0m",
		"\033[38;5;111m    ‘ ‘ ‘ ‘  \033[0m"}
	iconLightSnowShowers = []string{
		"\033[38;5;226m _`/\"\"\033[38;5;250m.-.    \033[0m",
		"\033[38;5;226m  ,\\_\033[38;5;250m(   ).  \033[0m",
		"\033[38;5;226m   /\033[38;5;250m(___(__) \033[0m",
		"\033[38;5;255m     *  *  * \033[0m",
		"\033[38;5;255m    *  *  *  \033[0m"}
	iconLightSleetShowers = []string{
		"\033[38;5;226m _`/\"\"\033[38;5;250m.-.    \033[0m",
		"\033[38;5;226m  ,\\_\033[38;5;250m(   ).  \033[0m",
		"\033[38;5;226m   /\033[38;5;250m(___(__) \033[0m",
		"\033[38;5;111m     ‘ \033[38;5;255m*\033[38;5;111m ‘ \033[38;5;255m* \033[0m",
		"\033[38;5;255m    *\033[38;5;111m ‘ \033[38;5;255m*\033[38;5;111m ‘  \033[0m"}
	iconThunderyShowers = []string{
		"\033[38;5;226m _`/\"\"\033[38;5;250m.-.    \033[0m",
		"\033[38;5;226m  ,\\_\033[38;5;250m(   ).  \033[0m",
		"\033[38;5;226m   /\033[38;5;250m(___(__) \033[0m",
		"\033[38;5;228;5m    ⚡\033[38;5;111;25m‘ ‘\033[38;5;228;5m⚡\033[38;5;111;25m‘ ‘ \033[0m",
		"\033[38;5;111m    ‘ ‘ ‘ ‘  \033[0m"}
	iconThunderyHeavyRain = []string{
		"\033[38;5;240;1m     .-.     \033[0m",
		"\033[38;5;240;1m    (   ).   \033[0m",
		"\033[38;5;240;1m   (___(__)  \033[0m",
		"\033[38;5;21;1m  ‚‘\033[38;5;228;5m⚡\033[38;5;21;25m‘‚\033[38;5;228;5m⚡\033[38;5;21;25m‚‘   \033[0m",
		"\033[38;5;21;1m  ‚’‚’\033[38;5;228;5m⚡\033[38;5;21;25m’‚’   \033[0m"}
	iconLightRain = []string{
		"\033[38;5;250m     .-.     \033[0m",
		"\033[38;5;250m    (   ).   \033[0m",
		"\033[38;5;250m   (___(__)  \033[0m",
		"\033[38;5;111m    ‘ ‘ ‘ ‘  \033[0m",
		"\033[38;5;111m   ‘ ‘ ‘ ‘   \033[0m"}
	iconLightSnow = []string{
		"\033[38;5;250m     .-.     \033[0m",
		"\033[38;5;250m    (   ).   \033[0m",
		"\033[38;5;250m   (___(__)  \033[0m",
		"\033[38;5;255m    *  *  *  \033[0m",
		"\033[38;5;255m   *  *  *   \033[0m"}
	iconHeavySnow = []string{
		"\033[38;5;240;1m     .-.     \033[0m",
		"\033[38;5;240;1m    (   ).   \033[0m",
		"\033[38;5;240;1m   (___(__)  \033[0m",
		"\033[38;5;255;1m   * * * *   \033[0m",
		"\033[38;5;255;1m  * * * *    \033[0m"}
	iconLightSleet = []string{
		"\033[38;5;250m     .-.     \033[0m",
		"\033[38;5;250m    (   ).   \033[0m",
		"\033[38;5;250m   (___(__)  \033[0m",
		"\033[38;5;111m    ‘ \033[38;5;255m*\033[38;5;111m ‘ \033[38;5;255m*  \033[0m",
		"\033[38;5;255m   *\033[38;5;111m ‘ \033[38;5;255m*\033[38;5;111m ‘   \033[0m"}
	iconFog = []string{
		"             ",
		"\033[38;5;251m _ - _ - _ - \033[0m",
		"\033[38;5;251m  _ - _ - _  \033[0m",
		"\033[38;5;251m _ - _ - _ - \033[0m",
		"             "}
)

func pad(s string, mustLen int) (ret string) {
	ret = s
	realLen := runewidth.StringWidth(ansiEsc.ReplaceAllLiteralString(s, ""))
	delta := mustLen - realLen
	if delta > 0 {
		ret += "\033[0m" + strings.Repeat(" ", delta)
	} else if delta < 0 {
		toks := ansiEsc.Split(s, 2)
		tokLen := runewidth.StringWidth(toks[0])
		esc := ansiEsc.FindString(s)
		if tokLen > mustLen {
			ret = runewidth.Truncate(toks[0], mustLen, "") + "\033[0m"
		} else {
			ret = fmt.Sprintf("%s%s%s", toks[0], esc, pad(toks[1], mustLen-tokLen))
		}
	}
	return
}

func (c *aatConfig) formatTemp(temp string) string {
	color := func(temp int) int {
		var col = 21
		switch temp {
		case -15, -14, -13:
			col = 27
		case -12, -11, -10:
			col = 33
		case -9, -8, -7:
			col = 39
		case -6, -5, -4:
			col = 45
		case -3, -2, -1:
			col = 51
		case 0, 1:
			col = 50
		case 2, 3:
			col = 49
		case 4, 5:
			col = 48
		case 6, 7:
			col = 47
		case 8, 9:
			col = 46
		case 10, 11, 12:
			col = 82
		case 13, 14, 15:
			col = 118
		case 16, 17, 18:
			col = 154
		case 19, 20, 21:
			col = 190
		case 22, 23, 24:
			col = 226
		case 25, 26, 27:
			col = 220
		case 28, 29, 30:
			col = 214
		case 31, 32, 33:
			col = 208
		case 34, 35, 36:
			col = 202
		default:
			if temp > 0 {
				col = 196
			}
		}
		return col
	}

	if temp == "" {
		return pad("? "+c.unit.Temp(), aatInfoWidth)
	}
	t, ok := parseTemp(temp)
	if !ok || c.monochrome {
		return pad(fmt.Sprintf("%s %s", temp, c.unit.Temp()), aatInfoWidth)
	}
	col := color(int(c.unit.TempC(t)))
	return pad(fmt.Sprintf("\033[38;5;%03dm%s\033[0m %s", col, temp, c.unit.Temp()), aatInfoWidth)
}

func (c *aatConfig) formatPoP(pop string) string {
	if pop == "" {
		return pad("", aatInfoWidth)
	}
	return pad(fmt.Sprintf("☂ %s%%", pop), aatInfoWidth)
}

func (c *aatConfig) formatPeriod(cur []string, s *forecast.Store, i int) (ret []string) {
	icon, ok := aatIcons[strings.TrimPrefix(s.Periods[i].Icon, "nt_")]
	if !ok {
		icon = iconUnknown
	}
	if c.monochrome {
		mono := make([]string, len(icon))
		for j := range icon {
			mono[j] = ansiEsc.ReplaceAllLiteralString(icon[j], "")
		}
		icon = mono
	}

	text := wrap(s.Text(i), aatInfoWidth, 3)
	info := []string{
		c.formatTemp(periodTemp(s, i)),
		c.formatPoP(s.PoP(i)),
		pad(text[0], aatInfoWidth),
		pad(text[1], aatInfoWidth),
		pad(text[2], aatInfoWidth),
	}
	for j := range info {
		ret = append(ret, fmt.Sprintf("%v %v %v ", cur[j], icon[j], info[j]))
	}
	return
}

func (c *aatConfig) printDay(s *forecast.Store, n int) (ret []string) {
	ret = make([]string, 5)
	for i := range ret {
		ret[i] = "│"
	}
	titles := "│"
	for _, i := range []int{2 * n, 2*n + 1} {
		ret = c.formatPeriod(ret, s, i)
		for j := range ret {
			ret[j] = ret[j] + "│"
		}
		titles += " " + pad(s.Title(i), aatColWidth-2) + " │"
	}

	dateFmt := "───────────"
	if d, ok := dayDate(s, n); ok {
		dateFmt = d.Format("Mon 02. Jan")
	}
	line := strings.Repeat("─", aatColWidth)
	ret = append([]string{
		"┌" + strings.Repeat("─", (2*aatColWidth+1-15)/2) + "┤ " + dateFmt + " ├" + strings.Repeat("─", (2*aatColWidth+1-15)-(2*aatColWidth+1-15)/2) + "┐",
		titles,
		"├" + line + "┼" + line + "┤"},
		ret...)
	return append(ret,
		"└"+line+"┴"+line+"┘")
}

func (c *aatConfig) Setup() {
	flag.BoolVar(&c.monochrome, "aat-monochrome", false, "aat-frontend: Monochrome output")
}

func (c *aatConfig) Render(s *forecast.Store, unit iface.UnitSystem, numdays int) {
	c.unit = unit
	stdout := colorable.NewColorableStdout()
	if c.monochrome {
		stdout = colorable.NewNonColorable(stdout)
	}

	fmt.Fprintf(stdout, "Weather for %s\n", s.Location)
	if s.Epoch != 0 {
		fmt.Fprintf(stdout, "Issued %s", time.Unix(s.Epoch, 0).Format("Mon 02. Jan 15:04"))
		if age := s.Age(time.Now()); age >= time.Minute {
			fmt.Fprintf(stdout, " (fetched %s ago)", age.Truncate(time.Minute))
		}
		fmt.Fprintln(stdout)
	}
	fmt.Fprintln(stdout)

	for n := 0; n < numDays(numdays); n++ {
		for _, val := range c.printDay(s, n) {
			fmt.Fprintln(stdout, val)
		}
	}
}

func init() {
	iface.AllFrontends["ascii-art-table"] = &aatConfig{}
}
