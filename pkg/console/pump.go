package console

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"
)

// linePump owns a reader so a cancelled read never leaves a line half consumed.
// Lines are handed over through an unbuffered channel; it is closed on EOF.
type linePump struct {
	reader *bufio.Reader
	ch     chan inputResult
	once   sync.Once
}

type inputResult struct {
	text string
	err  error
}

func newLinePump(r io.Reader) *linePump {
	return &linePump{reader: bufio.NewReader(r)}
}

func (p *linePump) start() {
	p.once.Do(func() {
		p.ch = make(chan inputResult)
		go p.run()
	})
}

func (p *linePump) run() {
	for {
		text, err := p.reader.ReadString('\n')

		if text != "" {
			p.ch <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(p.ch)
				return
			}
			p.ch <- inputResult{err: err}
			// Backoff so a persistently failing reader does not spin.
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// next waits for a line or for ctx. io.EOF is returned once the reader is drained.
func (p *linePump) next(ctx context.Context) (string, error) {
	p.start()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.ch:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
