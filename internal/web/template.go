package web

import (
	"html/template"
	"strconv"

	"github.com/five82/fitjourney/internal/journal"
)

var templateFuncs = template.FuncMap{
	"day": journal.FormatDate,
	"n": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

const dashboardHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Fitness Journey</title>
<link rel="manifest" href="/manifest.webmanifest">
<style>
body{font-family:system-ui,sans-serif;background:#131a24;color:#cdcecf;margin:0 auto;max-width:40rem;padding:1rem}
h1,h2{color:#719cd6}
section{background:#192330;border-radius:.5rem;padding:.75rem 1rem;margin:.75rem 0}
.muted{color:#738091}
svg{color:#81b29a}
ul{padding-left:1.2rem}
</style>
</head>
<body>
<h1>Fitness Journey</h1>
<p class="muted">Today: {{.TodayLabel}}</p>

<section id="weight">
<h2>Weight</h2>
{{if .Summary.HasWeight}}
<p>Starting {{n .Summary.StartingWeight}} lb, current {{n .Summary.CurrentWeight}} lb</p>
{{else}}
<p class="muted">No weights logged yet.</p>
{{end}}
{{if .Trend}}
<svg width="280" height="60" viewBox="0 0 280 60"><polyline fill="none" stroke="currentColor" stroke-width="2" points="{{.Trend}}"/></svg>
{{end}}
</section>

<section id="pushups">
<h2>Pushups</h2>
<p>Today: {{.Summary.TodaysPushupTotal}}</p>
{{if .Summary.HasPushups}}<p>Best day: {{.Summary.BestPushupDay.Count}} on {{day .Summary.BestPushupDay.Date}}</p>{{end}}
</section>

<section id="meals">
<h2>Today's meals</h2>
{{if .Summary.TodaysMeals}}
<ul>
{{range .Summary.TodaysMeals}}<li>{{.Name}}: {{n .Calories}} kcal, P {{n .Protein}} / C {{n .Carbs}} / F {{n .Fats}}</li>
{{end}}</ul>
{{else}}
<p class="muted">Nothing logged today.</p>
{{end}}
<p>Total: {{n .Summary.TodaysMealTotals.Calories}} kcal, P {{n .Summary.TodaysMealTotals.Protein}} / C {{n .Summary.TodaysMealTotals.Carbs}} / F {{n .Summary.TodaysMealTotals.Fats}}</p>
</section>

<section id="history">
<h2>History</h2>
<h3>Rides</h3>
<ul>{{range .Rides}}<li>{{day .Date}}: {{.Title}} ({{n .Minutes}} min, {{n .Output}} kJ)</li>{{else}}<li class="muted">None</li>{{end}}</ul>
<h3>Pushups</h3>
<ul>{{range .Pushups}}<li>{{day .Date}}: {{.Count}}</li>{{else}}<li class="muted">None</li>{{end}}</ul>
<h3>Weights</h3>
<ul>{{range .Weights}}<li>{{day .Date}}: {{n .Weight}} lb</li>{{else}}<li class="muted">None</li>{{end}}</ul>
</section>
</body>
</html>
`
