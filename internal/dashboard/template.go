package dashboard

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Stock Advisor Dashboard</title>
<style>
  body { font-family: sans-serif; margin: 2rem; background: #fafafa; }
  h1 { border-bottom: 1px solid #ddd; padding-bottom: .5rem; }
  .latest { background: #fff; border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
  .sell { color: #ff4b4b; font-weight: bold; }
  .hold { color: #1f77b4; font-weight: bold; }
  table { border-collapse: collapse; width: 100%; background: #fff; }
  th, td { border: 1px solid #ddd; padding: .4rem .6rem; text-align: left; font-size: .9rem; }
  th { background: #f0f0f0; }
  .counts span { margin-right: 1.2rem; }
</style>
</head>
<body>
<h1>📈 AI Stock Sell Advice Dashboard</h1>

<form method="get" action="/">
  <label>Stock:
    <select name="stock" onchange="this.form.submit()">
      <option value="">All</option>
      {{range .Stocks}}<option value="{{.}}" {{if eq . $.Selected}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
</form>

{{if .Summary.Latest}}
<div class="latest">
  <h2>Latest advice{{if .Selected}}: {{.Selected}}{{end}}</h2>
  <p>Decision:
    <span class="{{if eq .Summary.Latest.Decision "SELL NOW"}}sell{{else}}hold{{end}}">{{.Summary.Latest.Decision}}</span>
    | Confidence: {{.Summary.Latest.Confidence}}
    | Price: {{printf "%.2f" .Summary.Latest.CurrentPrice}}
    | At: {{.Summary.Latest.Timestamp}}</p>
  <p><b>Analysis:</b> {{.Summary.Latest.AnalysisSummary}}</p>
  <p><b>Action plan:</b> {{.Summary.Latest.ActionPlan}}</p>
</div>

<h2>Decision distribution</h2>
<p class="counts">
  {{range $d, $n := .Summary.DecisionCounts}}<span>{{$d}}: {{$n}}</span>{{end}}
  <span>Total: {{.Summary.Total}}</span>
</p>

<h2>History</h2>
<table>
  <tr><th>Timestamp</th><th>Stock</th><th>Decision</th><th>Confidence</th><th>Price</th><th>Action plan</th></tr>
  {{range .Summary.History}}
  <tr>
    <td>{{.Timestamp}}</td>
    <td>{{.StockName}}</td>
    <td class="{{if eq .Decision "SELL NOW"}}sell{{else}}hold{{end}}">{{.Decision}}</td>
    <td>{{.Confidence}}</td>
    <td>{{printf "%.2f" .CurrentPrice}}</td>
    <td>{{.ActionPlan}}</td>
  </tr>
  {{end}}
</table>
{{else}}
<p>No advice data yet. Run the advisor process first.</p>
{{end}}
</body>
</html>
`
