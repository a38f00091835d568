// Package report renders result values as plain text through pongo2
// templates.
package report

import (
	"fmt"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorimetry/cct"
	"github.com/mmuldo/colorimetry/gamut"
	"github.com/mmuldo/colorimetry/palette"
	"github.com/mmuldo/colorimetry/rendering"
)

type row struct {
	Name  string
	Value float64
}

func execute(tpl *pongo2.Template, ctx pongo2.Context) (string, error) {
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}
	return out, nil
}

// CCT renders a CCT/Duv estimate.
func CCT(r cct.Result) (string, error) {
	return execute(cctTpl, pongo2.Context{
		"cct":      r.CCT,
		"duv":      r.Duv,
		"category": cct.Interpret(r.CCT).String(),
	})
}

// DeltaE renders one color difference.
func DeltaE(method string, value float64) (string, error) {
	return execute(deltaETpl, pongo2.Context{"method": method, "value": value})
}

// Gamut renders gamut areas and coverage against the standards.
func Gamut(area, areaUV float64, coverages []gamut.CoverageResult) (string, error) {
	return execute(gamutTpl, pongo2.Context{
		"area":      area,
		"areaUV":    areaUV,
		"coverages": coverages,
	})
}

// CRI renders a color rendering index result.
func CRI(r *rendering.CRIResult) (string, error) {
	rows := make([]row, len(r.Ri))
	for i, v := range r.Ri {
		_, name, _ := rendering.TestColorSample(i + 1)
		rows[i] = row{Name: name, Value: v}
	}
	return execute(criTpl, pongo2.Context{
		"cct":       r.CCT,
		"duv":       r.Duv,
		"reference": r.Reference.String(),
		"ra":        r.Ra,
		"dc":        r.DC,
		"valid":     r.WithinTolerance,
		"rows":      rows,
	})
}

// TLCI renders a TLCI result.
func TLCI(r *rendering.TLCIResult) (string, error) {
	rows := make([]row, len(r.Qi))
	for i, v := range r.Qi {
		rows[i] = row{Name: rendering.PatchName(i + 1), Value: v}
	}
	return execute(tlciTpl, pongo2.Context{
		"cct":         r.CCT,
		"duv":         r.Duv,
		"reference":   r.Reference.String(),
		"qa":          r.Qa,
		"approximate": r.Approximate,
		"rows":        rows,
	})
}

// TM30 renders a TM-30 result with its hue bins.
func TM30(r *rendering.TM30Result) (string, error) {
	return execute(tm30Tpl, pongo2.Context{
		"cct":         r.CCT,
		"duv":         r.Duv,
		"reference":   r.Reference.String(),
		"rf":          r.Rf,
		"rg":          r.Rg,
		"approximate": r.Approximate,
		"bins":        r.Bins[:],
	})
}

// Evaluation renders every metric of an evaluation, one section each.
func Evaluation(e *rendering.Evaluation) (string, error) {
	sections := []func() (string, error){
		func() (string, error) { return CRI(e.CRI) },
		func() (string, error) { return TLCI(e.TLCI) },
		func() (string, error) { return TM30(e.TM30) },
	}
	var out string
	for i, f := range sections {
		s, err := f()
		if err != nil {
			return "", err
		}
		if i > 0 {
			out += "\n"
		}
		out += s
	}
	return out, nil
}

// Palette renders swatches, their closest pair and how many groups they
// form at threshold.
func Palette(sw []palette.Swatch, threshold float64) (string, error) {
	ctx := pongo2.Context{
		"swatches":  sw,
		"groups":    len(palette.Group(sw, threshold)),
		"threshold": threshold,
		"distinct":  palette.Distinct(sw, threshold),
	}
	if p, err := palette.Closest(sw); err == nil {
		ctx["closest"] = true
		ctx["closest_i"] = sw[p.I].Hex
		ctx["closest_j"] = sw[p.J].Hex
		ctx["closest_de"] = p.DeltaE
	}
	return execute(paletteTpl, ctx)
}
