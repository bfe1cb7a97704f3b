package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/elementnamer/internal/segment"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title capitalizes a lowercased name or symbol ("ge" -> "Ge").
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// Spelling joins the symbols of a decomposition, e.g. "Ge-N-I-U-S".
func Spelling(d segment.Decomposition) string {
	parts := make([]string, len(d.Symbols))
	for i, s := range d.Symbols {
		parts[i] = Title(s)
	}
	return strings.Join(parts, "-")
}

func formatMass(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// Text writes one line per decomposition, or a failure line when there is
// none.
func Text(w io.Writer, res segment.Result) error {
	if !res.Found() {
		_, err := fmt.Fprintf(w, "no decomposition for %q\n", res.Word)
		return err
	}
	for _, d := range res.Decompositions {
		parts := make([]string, len(d.Elements))
		for i, el := range d.Elements {
			parts[i] = fmt.Sprintf("%s (%s)", Title(el.Name), formatMass(el.Mass))
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", Spelling(d), strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders a report with one table per decomposition.
func Markdown(res segment.Result) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", res.Word)

	if !res.Found() {
		fmt.Fprintf(&buf, "No decomposition for %q.\n", res.Word)
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "%d decomposition(s).\n", len(res.Decompositions))
	for i, d := range res.Decompositions {
		var total float64
		fmt.Fprintf(&buf, "\n## %d. %s\n\n", i+1, Spelling(d))
		buf.WriteString("| # | Symbol | Element | Mass |\n")
		buf.WriteString("|---|---|---|---|\n")
		for _, el := range d.Elements {
			fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", el.AtomicNumber, Title(el.Symbol), Title(el.Name), formatMass(el.Mass))
			total += el.Mass
		}
		fmt.Fprintf(&buf, "\nTotal mass: %s\n", strconv.FormatFloat(total, 'f', 3, 64))
	}
	return buf.Bytes()
}

// HTML converts the Markdown report to HTML. Raw HTML in the input word is
// omitted by goldmark's default renderer.
func HTML(res segment.Result) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert(Markdown(res), &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
