package forecast

import (
	"bufio"
	"io"
)

type prefixSkipper struct {
	br    *bufio.Reader
	found bool
}

// SkipPrefix returns a reader that drops everything before the first '{' or
// '[' of r.
func SkipPrefix(r io.Reader) io.Reader {
	return &prefixSkipper{br: bufio.NewReader(r)}
}

func (p *prefixSkipper) Read(b []byte) (int, error) {
	for !p.found {
		c, err := p.br.ReadByte()
		if err != nil {
			return 0, err
		}
		if c == '{' || c == '[' {
			p.found = true
			if err := p.br.UnreadByte(); err != nil {
				return 0, err
			}
		}
	}
	return p.br.Read(b)
}
