package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects how a plan is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Write renders p to w in the given format.
func (p *Plan) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText:
		return p.WriteText(w)
	case FormatJSON:
		return p.WriteJSON(w)
	default:
		return fmt.Errorf("unsupported plan format %q", format)
	}
}

// WriteJSON writes p as indented JSON.
func (p *Plan) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteText writes a human-readable listing. Order plans are numbered;
// external components are marked.
func (p *Plan) WriteText(w io.Writer) error {
	var b strings.Builder

	target := "all components"
	if p.Target != "" {
		target = fmt.Sprintf("%q", p.Target)
	}
	switch p.Mode {
	case ModeRoots:
		fmt.Fprintf(&b, "Roots of %s:\n", target)
	default:
		fmt.Fprintf(&b, "Build order for %s:\n", target)
	}

	for i, e := range p.Entries() {
		if p.Mode == ModeRoots {
			b.WriteString("  - ")
		} else {
			fmt.Fprintf(&b, "  %d. ", i+1)
		}
		b.WriteString(e.Name)
		if e.External {
			b.WriteString(" [external]")
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "fingerprint: %s\n", p.Fingerprint)

	_, err := io.WriteString(w, b.String())
	return err
}
