package network

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Report line grammar:
//
//	Valve <label> has flow rate=<n>; tunnels lead to valves <a>, <b>, ...
//	Valve <label> has flow rate=<n>; tunnel leads to valve <a>
const (
	prefixValve = "Valve "
	markRate    = " has flow rate="
	markTunnels = "; tunnels lead to valves "
	markTunnel  = "; tunnel leads to valve "
	neighborSep = ", "
)

// Parse reads a valve report and builds its Network. Blank lines are
// skipped; any other malformed line yields ErrSyntax with its line number.
func Parse(r io.Reader) (*Network, error) {
	b := NewBuilder()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := parseLine(b, text); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("network: read report: %w", err)
	}
	return b.Build()
}

// ParseString is Parse over an in-memory report.
func ParseString(s string) (*Network, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(b *Builder, text string) error {
	rest, ok := strings.CutPrefix(text, prefixValve)
	if !ok {
		return fmt.Errorf("%w: missing %q in %q", ErrSyntax, prefixValve, text)
	}
	label, rest, ok := strings.Cut(rest, markRate)
	if !ok || label == "" {
		return fmt.Errorf("%w: missing label or %q in %q", ErrSyntax, markRate, text)
	}
	num, rest, ok := strings.Cut(rest, ";")
	if !ok {
		return fmt.Errorf("%w: missing tunnel list in %q", ErrSyntax, text)
	}
	rate, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: rate %q: %v", ErrSyntax, num, err)
	}
	rest = ";" + rest

	var targets []string
	switch {
	case strings.HasPrefix(rest, markTunnels):
		targets = strings.Split(strings.TrimPrefix(rest, markTunnels), neighborSep)
	case strings.HasPrefix(rest, markTunnel):
		targets = []string{strings.TrimPrefix(rest, markTunnel)}
	default:
		return fmt.Errorf("%w: bad tunnel list in %q", ErrSyntax, text)
	}

	if err := b.AddVertex(label, rate); err != nil {
		return err
	}
	for _, t := range targets {
		t = strings.TrimSpace(t)
		if t == "" {
			return fmt.Errorf("%w: empty tunnel target in %q", ErrSyntax, text)
		}
		if err := b.AddEdge(label, t); err != nil {
			return err
		}
	}
	return nil
}
