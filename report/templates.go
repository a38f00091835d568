package report

import "github.com/flosch/pongo2"

var cctTpl = pongo2.Must(pongo2.FromString(`CCT       {{ cct|floatformat:0 }} K ({{ category }})
Duv       {{ duv|floatformat:4 }}
`))

var deltaETpl = pongo2.Must(pongo2.FromString(`{{ method }}  ΔE = {{ value|floatformat:4 }}
`))

var gamutTpl = pongo2.Must(pongo2.FromString(`area xy   {{ area|floatformat:5 }}
area u'v' {{ areaUV|floatformat:5 }}
{% for c in coverages %}{{ c.Standard }}: {{ c.Percent|floatformat:1 }}%
{% endfor %}`))

var criTpl = pongo2.Must(pongo2.FromString(`CCT       {{ cct|floatformat:0 }} K, Duv {{ duv|floatformat:4 }}
reference {{ reference }}
Ra        {{ ra|floatformat:1 }}
DC        {{ dc|floatformat:4 }}{% if not valid %} (exceeds tolerance, Ra not meaningful){% endif %}
{% for r in rows %}R{{ forloop.Counter }}  {{ r.Value|floatformat:1 }}  {{ r.Name }}
{% endfor %}`))

var tlciTpl = pongo2.Must(pongo2.FromString(`CCT       {{ cct|floatformat:0 }} K, Duv {{ duv|floatformat:4 }}
reference {{ reference }}
Qa        {{ qa|floatformat:1 }}{% if approximate %} (approximate){% endif %}
{% for r in rows %}Q{{ forloop.Counter }}  {{ r.Value|floatformat:1 }}  {{ r.Name }}
{% endfor %}`))

var tm30Tpl = pongo2.Must(pongo2.FromString(`CCT       {{ cct|floatformat:0 }} K, Duv {{ duv|floatformat:4 }}
reference {{ reference }}
Rf        {{ rf|floatformat:1 }}{% if approximate %} (approximate){% endif %}
Rg        {{ rg|floatformat:1 }}
bin  n  Rf      hue shift  chroma
{% for b in bins %}{{ b.Index }}  {{ b.Samples }}  {{ b.Fidelity|floatformat:1 }}  {{ b.HueShift|floatformat:1 }}  {{ b.ChromaRatio|floatformat:3 }}
{% endfor %}`))

var paletteTpl = pongo2.Must(pongo2.FromString(`{% for s in swatches %}{{ s.Hex }}  L*={{ s.Lab.L|floatformat:1 }} a*={{ s.Lab.A|floatformat:1 }} b*={{ s.Lab.B|floatformat:1 }}
{% endfor %}{% if closest %}closest   {{ closest_i }} / {{ closest_j }}  ΔE00 = {{ closest_de|floatformat:2 }}
{% endif %}groups    {{ groups }} at threshold {{ threshold|floatformat:1 }}
distinct  {{ distinct|yesno:"yes,no" }}
`))
