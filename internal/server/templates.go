package server

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
a{color:#58a6ff;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#161b22;border-bottom:1px solid #30363d;padding:8px 16px;display:flex;gap:16px;align-items:center;flex-wrap:wrap}
nav .brand{color:#f0f6fc;font-weight:700;font-size:15px;margin-right:8px}
nav a{color:#8b949e;padding:4px 8px;border-radius:4px}
nav a:hover{color:#c9d1d9;background:#21262d;text-decoration:none}
main{padding:16px;max-width:1200px;margin:0 auto}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;min-width:120px}
.card .val{font-size:22px;font-weight:700;color:#f0f6fc}
.card .lbl{font-size:11px;color:#8b949e;margin-top:2px}
table{width:100%;border-collapse:collapse;font-size:12px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #30363d;color:#8b949e;font-weight:600;font-size:11px;text-transform:uppercase;letter-spacing:.05em}
th a{color:#8b949e}
th a:hover{color:#c9d1d9;text-decoration:none}
td{padding:5px 10px;border-bottom:1px solid #21262d;vertical-align:top}
tr:hover td{background:#161b22}
.dim{color:#8b949e}
.ok{color:#56d364}
.section{background:#161b22;border:1px solid #30363d;border-radius:6px;margin-bottom:16px;overflow:hidden}
.section-hdr{padding:8px 12px;border-bottom:1px solid #30363d;font-size:11px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.05em;background:#0d1117}
.section-body{padding:12px}
.empty{padding:16px;color:#8b949e;font-size:12px}
.filters{display:flex;gap:12px;flex-wrap:wrap;align-items:flex-start;margin-bottom:16px;background:#161b22;padding:10px 12px;border-radius:6px;border:1px solid #30363d}
.filters .group{display:flex;flex-direction:column;gap:2px}
.filters label{font-size:11px;color:#8b949e}
.filters select,.filters input{background:#0d1117;border:1px solid #30363d;color:#c9d1d9;border-radius:4px;padding:3px 6px;font-size:12px;font-family:inherit}
.filters select[multiple]{min-width:90px;min-height:72px}
.filters button{background:#1f6feb;border:none;color:#fff;padding:5px 14px;border-radius:4px;cursor:pointer;font-size:12px;align-self:flex-end}
.badge{display:inline-block;padding:1px 6px;border-radius:10px;font-size:10px;font-weight:600;color:#0d1117}
.est{color:#8b949e;font-style:italic}
.waffle{display:grid;grid-auto-flow:column;grid-auto-columns:12px;gap:2px}
.waffle div{width:12px;height:12px;border-radius:2px}
.legend{display:flex;gap:16px;margin-top:8px;font-size:11px;color:#8b949e}
.legend .swatch{display:inline-block;width:10px;height:10px;border-radius:2px;margin-right:4px;vertical-align:middle}
.tl-row{display:flex;align-items:center;gap:8px;padding:3px 0;border-bottom:1px solid #0d1117;font-size:11px}
.tl-label{min-width:130px;flex-shrink:0;overflow:hidden;text-overflow:ellipsis;white-space:nowrap}
.tl-bar-area{flex:1;position:relative;height:16px}
.tl-bar{position:absolute;height:14px;border-radius:3px;top:1px;min-width:4px}
.tl-bar.est{opacity:.55}
.tl-scale{display:flex;justify-content:space-between;font-size:10px;color:#8b949e;padding:4px 0 0 138px}
.toolbar{display:flex;gap:12px;align-items:center;margin-bottom:8px}
</style>
</head>
<body>
<nav>
  <span class="brand">{{.Title}}</span>
  <a href="/">Dashboard</a>
  <a href="/api/bills">API</a>
</nav>
<main>
{{template "content" .}}
</main>
</body>
</html>
{{end}}
`

const tmplDashboard = `
{{define "content"}}
<h1>{{.Title}} <span class="dim" style="font-size:12px;font-weight:400">data loaded {{.LoadedAt}}</span></h1>

<form class="filters" method="GET" action="/">
  <input type="hidden" name="apply" value="1">
  <div class="group">
    <label for="year">Year</label>
    <select id="year" name="year" multiple>
      {{range .YearOptions}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Value}}</option>
      {{end}}
    </select>
  </div>
  <div class="group">
    <label for="state">State</label>
    <select id="state" name="state" multiple>
      {{range .StateOptions}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Value}}</option>
      {{end}}
    </select>
  </div>
  <div class="group">
    <label for="completion">Completion</label>
    <select id="completion" name="completion" multiple>
      {{range .CompletionOptions}}<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Value}}</option>
      {{end}}
    </select>
  </div>
  <div class="group">
    <label for="q">Search</label>
    <input id="q" name="q" type="text" value="{{.Query}}" placeholder="title, bill number...">
  </div>
  <button type="submit">Apply</button>
</form>

<div class="cards">
  <div class="card"><div class="val">{{.Summary.Total}}</div><div class="lbl">Bills</div></div>
  <div class="card"><div class="val ok">{{.Summary.Completed}}</div><div class="lbl">Completed</div></div>
  <div class="card"><div class="val">{{.Summary.NotCompleted}}</div><div class="lbl">Not Completed</div></div>
  <div class="card"><div class="val" style="color:{{.Waffle.DemColor}}">{{.Summary.DemSponsors}}</div><div class="lbl">Democrat sponsors</div></div>
  <div class="card"><div class="val" style="color:{{.Waffle.RepColor}}">{{.Summary.RepSponsors}}</div><div class="lbl">Republican sponsors</div></div>
</div>

<div class="section">
  <div class="section-hdr">Sponsors by Party</div>
  {{if .Waffle.Empty}}
  <div class="empty">No sponsor counts available for the current filters.</div>
  {{else}}
  <div class="section-body">
    <div class="waffle" style="grid-template-rows:repeat({{.Waffle.Rows}},12px)">
      {{range .Waffle.Cells}}<div style="background:{{.Color}}" title="{{.Title}}"></div>{{end}}
    </div>
    <div class="legend">
      <span><span class="swatch" style="background:{{.Waffle.DemColor}}"></span>{{.Waffle.DemLegend}}</span>
      <span><span class="swatch" style="background:{{.Waffle.RepColor}}"></span>{{.Waffle.RepLegend}}</span>
      <span><a href="{{.ChartHref}}">PNG</a></span>
    </div>
  </div>
  {{end}}
</div>

<div class="section">
  <div class="section-hdr">Bill Timelines</div>
  {{if .Timeline.Empty}}
  <div class="empty">No bills match the current filters.</div>
  {{else}}
  <div class="section-body">
    {{range .Timeline.Rows}}
    <div class="tl-row">
      <div class="tl-label" title="{{.Label}}">{{.Label}}</div>
      <div class="tl-bar-area">
        <div class="tl-bar{{if .Estimated}} est{{end}}" style="left:{{printf "%.4f" .LeftPct}}%;width:{{printf "%.4f" .WidthPct}}%;background:{{.Color}}" title="{{.Start}} to {{.End}}{{if .Estimated}} (estimated){{end}}"></div>
      </div>
    </div>
    {{end}}
    <div class="tl-scale"><span>{{.Timeline.WinStart}}</span><span>{{.Timeline.WinEnd}}</span></div>
    <div class="legend">
      <span><span class="swatch" style="background:#2ca02c"></span>Completed</span>
      <span><span class="swatch" style="background:#d62728"></span>Not Completed</span>
      <span class="est">faded = estimated dates</span>
    </div>
  </div>
  {{end}}
</div>

<h2>Bill Explorer</h2>
<div class="toolbar">
  <span class="dim">{{len .Table}} bills</span>
  <a href="{{.ExportHref}}">Download CSV</a>
</div>
<div class="section">
{{if .Table}}
<table>
<tr>
  {{range .Columns}}<th><a href="{{.Href}}">{{.Label}}{{if .Active}} {{.Arrow}}{{end}}</a></th>
  {{end}}
</tr>
{{range .Table}}
<tr>
  <td>{{.State}}</td>
  <td>{{.BillNumber}}</td>
  <td style="max-width:320px">{{.Title}}</td>
  <td>{{.DemSponsors}}</td>
  <td>{{.RepSponsors}}</td>
  <td>{{if .StartEstimated}}<span class="est" title="estimated">{{.Start}}</span>{{else}}{{.Start}}{{end}}</td>
  <td>{{if .EndEstimated}}<span class="est" title="estimated">{{.End}}</span>{{else}}{{.End}}{{end}}</td>
  <td class="dim">{{if .LastActionDate}}{{.LastActionDate}}{{else}}&mdash;{{end}}</td>
  <td>{{if .Completed}}<span class="badge" style="background:#2ca02c">{{.CompletionLabel}}</span>{{else}}<span class="badge" style="background:#d62728">{{.CompletionLabel}}</span>{{end}}</td>
  <td style="max-width:280px" class="dim">{{.LastAction}}</td>
</tr>
{{end}}
</table>
{{else}}
<div class="empty">No bills match the current filters.</div>
{{end}}
</div>
{{end}}
`
