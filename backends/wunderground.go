package backends

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"mime"
	"net"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/schachmat/wuforecast/forecast"
	"github.com/schachmat/wuforecast/iface"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

type wundergroundConfig struct {
	apiKey      string
	lang        string
	host        string
	port        int
	debug       bool
	strictUnits bool
	transition  int

	// the first response byte is awaited for at most retries polls of
	// pollInterval each
	retries      int
	pollInterval time.Duration

	callsPerMinute int
	limiter        *rate.Limiter
}

const (
	wundergroundHost = "api.wunderground.com"
	wundergroundPath = "/api/%s/forecast10day/lang:%s/q/%s.json"
)

var cityQuery = regexp.MustCompile(`^([^/:]+)/([^/]+)$`)

func (c *wundergroundConfig) Setup() {
	flag.StringVar(&c.apiKey, "wu-api-key", os.Getenv("WUNDERGROUND_API_KEY"), "wunderground backend: the api `KEY` to use")
	flag.StringVar(&c.lang, "wu-lang", "EN", "wunderground backend: the `LANGUAGE` code of the forecast texts")
	flag.StringVar(&c.host, "wu-host", wundergroundHost, "wunderground backend: the api `HOST` to connect to")
	flag.IntVar(&c.port, "wu-port", 80, "wunderground backend: the api `PORT` to connect to")
	flag.BoolVar(&c.debug, "wu-debug", false, "wunderground backend: print the request and every decoded event")
	flag.BoolVar(&c.strictUnits, "wu-strict-units", false, "wunderground backend: ignore celsius temperatures when using imperial units")
	flag.IntVar(&c.transition, "wu-transition-period", forecast.DefaultTransitionPeriod, "wunderground backend: last textual `PERIOD` of the response")
	flag.IntVar(&c.retries, "wu-retries", 10, "wunderground backend: `NUMBER` of one second polls for the first response byte")
	flag.IntVar(&c.callsPerMinute, "wu-calls-per-minute", 10, "wunderground backend: api call quota, 0 disables the limit")
	c.pollInterval = time.Second
}

// path builds the request path for a location given as COUNTRY/CITY, pws:ID
// or zmw:CODE.
func (c *wundergroundConfig) path(location string) (string, error) {
	var q string
	switch {
	case strings.HasPrefix(location, "pws:") && len(location) > len("pws:"):
		q = location
	case strings.HasPrefix(location, "zmw:") && len(location) > len("zmw:"):
		q = location
	default:
		m := cityQuery.FindStringSubmatch(location)
		if m == nil {
			return "", fmt.Errorf("unrecognized location %q, want COUNTRY/CITY, pws:ID or zmw:CODE", location)
		}
		q = m[1] + "/" + strings.ReplaceAll(m[2], " ", "_")
	}
	return fmt.Sprintf(wundergroundPath, c.apiKey, c.lang, q), nil
}

// awaitData polls for the first response byte until it arrives, the context
// ends or c.retries polls passed without data.
func (c *wundergroundConfig) awaitData(ctx context.Context, conn net.Conn, br *bufio.Reader) error {
	for attempt := 0; ; attempt++ {
		if err := conn.SetReadDeadline(time.Now().Add(c.pollInterval)); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := br.Peek(1)
		if err == nil {
			break
		}
		var ne net.Error
		if !errors.As(err, &ne) || !ne.Timeout() {
			return fmt.Errorf("unable to read response: %w", err)
		}
		if attempt >= c.retries {
			return iface.ErrNoData
		}
	}

	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return err
	}
	return ctx.Err()
}

// utf8Body transcodes the body if the response announces a charset other
// than UTF-8. Without a charset the body is taken as UTF-8.
func utf8Body(res *http.Response) io.Reader {
	_, params, err := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if err != nil {
		return res.Body
	}
	label := params["charset"]
	if label == "" || strings.EqualFold(label, "utf-8") {
		return res.Body
	}
	r, err := charset.NewReaderLabel(label, res.Body)
	if err != nil {
		log.Printf("wunderground: unsupported charset %q, decoding raw bytes", label)
		return res.Body
	}
	return r
}

func (c *wundergroundConfig) fetch(ctx context.Context, path string, metric bool) (*forecast.Store, error) {
	addr := net.JoinHostPort(c.host, strconv.Itoa(c.port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connection to %s failed: %w", addr, err)
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	defer stop()

	if c.debug {
		log.Printf("Requesting URL: %s", path)
	}
	req := "GET " + path + " HTTP/1.1\r\n" +
		"Host: " + wundergroundHost + "\r\n" +
		"Connection: close\r\n\r\n"
	if _, err := io.WriteString(conn, req); err != nil {
		return nil, fmt.Errorf("unable to send request: %w", err)
	}

	br := bufio.NewReader(conn)
	if err := c.awaitData(ctx, conn, br); err != nil {
		return nil, err
	}

	res, err := http.ReadResponse(br, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to read response header: %w", err)
	}
	defer res.Body.Close()
	if c.debug {
		log.Printf("Response status: %s", res.Status)
	}

	dec := forecast.NewDecoder(metric, decoderOptions(c.strictUnits, c.transition)...)
	var h forecast.Handler = dec
	if c.debug {
		h = forecast.HandlerFunc(func(ev forecast.Event) {
			log.Println(ev)
			dec.Handle(ev)
		})
	}

	err = forecast.NewStream(forecast.SkipPrefix(utf8Body(res))).Run(h)
	if err != nil {
		return dec.Store(), fmt.Errorf("response body broke off: %w", err)
	}
	return dec.Store(), nil
}

func (c *wundergroundConfig) Fetch(ctx context.Context, location string, unit iface.UnitSystem) (*forecast.Store, error) {
	if len(c.apiKey) == 0 {
		return nil, errors.New("no wunderground API key specified, use -wu-api-key or WUNDERGROUND_API_KEY")
	}
	path, err := c.path(location)
	if err != nil {
		return nil, err
	}

	if c.limiter == nil {
		limit := rate.Inf
		if c.callsPerMinute > 0 {
			limit = rate.Every(time.Minute / time.Duration(c.callsPerMinute))
		}
		c.limiter = rate.NewLimiter(limit, 1)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("api call quota wait canceled: %w", err)
	}

	s, err := c.fetch(ctx, path, unit.Metric())
	if c.debug && errors.Is(err, iface.ErrNoData) {
		log.Printf("No data received after %d polls", c.retries)
	}
	if s != nil {
		s.Location = location
	}
	return s, err
}

func init() {
	iface.AllBackends["wunderground"] = &wundergroundConfig{}
}
