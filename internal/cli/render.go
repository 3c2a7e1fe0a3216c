package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/config"
	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/quantity"
)

// DimensionExponent is one required base dimension and the exponent it
// carries in a quantity.
type DimensionExponent struct {
	Dimension model.BaseDimension `json:"dimension" yaml:"dimension"`
	Exponent  float64             `json:"exponent" yaml:"exponent"`
}

// UnitRow is one registry entry as listed by the units command.
type UnitRow struct {
	Symbol    string              `json:"symbol" yaml:"symbol"`
	Name      string              `json:"name" yaml:"name"`
	Dimension model.BaseDimension `json:"dimension" yaml:"dimension"`
	Factor    float64             `json:"factor" yaml:"factor"`
	Source    string              `json:"source,omitempty" yaml:"source,omitempty"`
}

type conversionsView struct {
	Value  string                  `json:"value" yaml:"value"`
	Groups []model.ConversionGroup `json:"groups" yaml:"groups"`
}

type resultView struct {
	Result   model.DimensionalResult `json:"result" yaml:"result"`
	Expr     string                  `json:"expression" yaml:"expression"`
	Required []model.BaseDimension   `json:"required" yaml:"required"`
}

// Renderer writes engine output as a styled table, JSON or YAML.
type Renderer struct {
	w       io.Writer
	format  string
	numbers quantity.Formatter
}

// NewRenderer creates a renderer for one of the config output formats.
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	switch format {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", common.ErrInvalidConfig, format)
	}
	return &Renderer{
		w:       w,
		format:  format,
		numbers: quantity.Formatter{Precision: quantity.DefaultPrecision},
	}, nil
}

// WithPrecision sets the significant digits of numbers in table output.
func (r *Renderer) WithPrecision(digits int) *Renderer {
	r.numbers.Precision = digits
	return r
}

// Structured reports whether output is machine readable.
func (r *Renderer) Structured() bool {
	return r.format != config.OutputTable
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case config.OutputJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Conversions renders the conversion groups of an evaluated quantity.
func (r *Renderer) Conversions(value string, groups []model.ConversionGroup) error {
	if r.Structured() {
		return r.encode(conversionsView{Value: value, Groups: groups})
	}

	var b strings.Builder
	b.WriteString(FormatTitle(value) + "\n")
	if len(groups) == 0 {
		b.WriteString(SubtleStyle.Render("no conversions") + "\n")
	}

	for _, g := range groups {
		b.WriteString("\n" + BoldStyle.Render(fmt.Sprintf("%s (%s^%s)", g.Dimension, g.Unit, model.FormatExponent(g.Exponent))) + "\n")
		writeOptions(&b, g.Options, "  ")
		for _, d := range g.Derived {
			b.WriteString("\n" + renderDerived(d))
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Derived renders one derived-unit set; nil means none was found.
func (r *Renderer) Derived(d *model.DerivedUnit) error {
	if r.Structured() {
		return r.encode(d)
	}
	if d == nil {
		_, err := fmt.Fprintln(r.w, FormatInfo("no derived units"))
		return err
	}
	_, err := io.WriteString(r.w, renderDerived(*d))
	return err
}

func renderDerived(d model.DerivedUnit) string {
	var b strings.Builder
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Derived: %s = %s", d.Name, d.Definition)) + "\n")
	writeOptions(&b, d.Conversions, "  ")
	return b.String()
}

func writeOptions(b *strings.Builder, options []model.ConversionOption, indent string) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	for _, o := range options {
		fmt.Fprintf(tw, "%s%s\t%s\n", indent, o.Unit, o.Value)
	}
	_ = tw.Flush()
}

// Result renders a recomposition result.
func (r *Renderer) Result(expr string, required []model.BaseDimension, res model.DimensionalResult) error {
	if r.Structured() {
		return r.encode(resultView{Expr: expr, Required: required, Result: res})
	}

	var line string
	switch {
	case res.Error != nil:
		line = FormatError(*res.Error)
	case res.Value != nil:
		units := ""
		if res.Units != nil {
			units = *res.Units
		}
		line = FormatSuccess(fmt.Sprintf("%s = %s %s", expr, r.numbers.Number(*res.Value), units))
	default:
		line = FormatWarning("no units selected")
	}

	_, err := fmt.Fprintln(r.w, line)
	return err
}

// Dimensions renders the base dimensions a quantity decomposes into.
func (r *Renderer) Dimensions(dims []DimensionExponent) error {
	if r.Structured() {
		return r.encode(dims)
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DIMENSION\tEXPONENT")
	for _, d := range dims {
		fmt.Fprintf(tw, "%s\t%s\n", d.Dimension, model.FormatExponent(d.Exponent))
	}
	return tw.Flush()
}

// Units renders a unit listing.
func (r *Renderer) Units(rows []UnitRow) error {
	if r.Structured() {
		return r.encode(rows)
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tDIMENSION\tFACTOR\tSOURCE")
	for _, u := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.Symbol, u.Name, u.Dimension, r.numbers.Number(u.Factor), u.Source)
	}
	return tw.Flush()
}

// Recomputation renders everything recomputed for one expression.
func (r *Renderer) Recomputation(expr string, rec model.Recomputation) error {
	if r.Structured() {
		return r.encode(rec)
	}
	if rec.Err != nil {
		_, err := fmt.Fprintln(r.w, FormatError(rec.Value))
		return err
	}
	if err := r.Conversions(rec.Value, rec.Groups); err != nil {
		return err
	}
	if rec.InBase != nil {
		if _, err := fmt.Fprintln(r.w, SubtleStyle.Render("SI: "+*rec.InBase)); err != nil {
			return err
		}
	}
	if rec.Result.Empty() {
		return nil
	}
	return r.Result(expr, rec.Required, rec.Result)
}
