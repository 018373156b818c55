package htmlui

const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} - {{.AppTitle}}</title>
<style>
body{margin:0;font-family:"Helvetica Neue",Arial,"PingFang SC","Microsoft YaHei",sans-serif;background:#f5f6fa;color:#2f3542}
.layout{display:flex;min-height:100vh}
.sidebar{width:200px;background:#2f3542;color:#f1f2f6;padding:16px 0}
.sidebar h1{font-size:18px;padding:0 20px 16px;margin:0;border-bottom:1px solid #57606f}
.sidebar a{display:block;padding:12px 20px;color:#ced6e0;text-decoration:none}
.sidebar a.active,.sidebar a:hover{background:#57606f;color:#fff}
.main{flex:1;padding:24px}
.notice{padding:10px 16px;border-radius:4px;margin-bottom:12px}
.notice.success{background:#dff5e1;color:#218c4a}
.notice.error{background:#fdecea;color:#c0392b}
.cards{display:flex;gap:16px;flex-wrap:wrap;margin-bottom:20px}
.card{background:#fff;border-radius:6px;padding:16px 20px;min-width:160px;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.card .label{font-size:13px;color:#747d8c}
.card .value{font-size:24px;font-weight:600;margin-top:4px}
.card .bar{height:6px;background:#eee;border-radius:3px;margin-top:8px}
.card .bar span{display:block;height:6px;background:#3867d6;border-radius:3px}
.toolbar{display:flex;justify-content:space-between;align-items:center;margin-bottom:16px}
.toolbar form{display:flex;gap:8px}
input,select,textarea{padding:8px 10px;border:1px solid #dfe4ea;border-radius:4px;font-size:14px}
.btn{display:inline-block;padding:8px 16px;border:none;border-radius:4px;background:#3867d6;color:#fff;cursor:pointer;text-decoration:none;font-size:14px}
.btn.secondary{background:#a4b0be}
.btn.danger{background:#e55039}
.btn.small{padding:4px 10px;font-size:13px}
table{width:100%;border-collapse:collapse;background:#fff;border-radius:6px;overflow:hidden;box-shadow:0 1px 3px rgba(0,0,0,.08)}
th,td{padding:12px 14px;text-align:left;border-bottom:1px solid #f1f2f6;font-size:14px}
th{background:#f8f9fb;color:#747d8c;font-weight:500}
.badge{display:inline-block;padding:2px 10px;border-radius:10px;font-size:12px}
.badge.active,.badge.free{background:#dff5e1;color:#218c4a}
.badge.inactive,.badge.maintenance{background:#f1f2f6;color:#747d8c}
.badge.reserved{background:#fff4d6;color:#b8860b}
.badge.occupied{background:#fdecea;color:#c0392b}
.empty{padding:32px;text-align:center;color:#747d8c;background:#fff}
.tabs{display:flex;gap:4px;margin-bottom:16px}
.tabs a{padding:8px 18px;border-radius:4px 4px 0 0;background:#e4e7ee;color:#57606f;text-decoration:none}
.tabs a.active{background:#fff;color:#2f3542;font-weight:600}
.overlay{position:fixed;inset:0;background:rgba(0,0,0,.4);display:flex;align-items:center;justify-content:center}
.modal{background:#fff;border-radius:6px;padding:24px;width:420px;max-height:90vh;overflow:auto}
.modal h2{margin:0 0 16px;font-size:18px}
.modal .field{margin-bottom:12px}
.modal label{display:block;font-size:13px;color:#57606f;margin-bottom:4px}
.modal input,.modal select,.modal textarea{width:100%;box-sizing:border-box}
.modal .footer{display:flex;justify-content:flex-end;gap:8px;margin-top:16px}
.field-error{color:#c0392b;font-size:12px;margin-top:2px}
.inline{display:inline}
.actions form{display:inline-block;margin:0}
.section{margin-bottom:28px}
.section h2{font-size:16px;margin:0 0 12px}
.login-box{max-width:360px;margin:12vh auto;background:#fff;border-radius:6px;padding:32px;box-shadow:0 2px 8px rgba(0,0,0,.1)}
.login-box h1{font-size:20px;margin:0 0 20px;text-align:center}
.login-box .field{margin-bottom:14px}
.login-box input{width:100%;box-sizing:border-box}
</style>
</head>
<body>{{end}}

{{define "nav"}}<div class="sidebar">
<h1>{{.AppTitle}}</h1>
{{range .Nav}}<a href="{{.URL}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}
</div>{{end}}

{{define "notices"}}{{range .Notices}}<div class="notice {{.Level}}">{{.Message}}</div>{{end}}{{end}}

{{define "cards"}}{{if .}}<div class="cards">
{{range .}}<div class="card">
<div class="label">{{.Label}}</div>
<div class="value">{{.Value}}</div>
{{if gt .Bar 0.0}}<div class="bar"><span style="width: {{printf "%.0f" .Bar}}%"></span></div>{{end}}
</div>{{end}}
</div>{{end}}{{end}}

{{define "tabs"}}{{if .}}<div class="tabs">
{{range .}}<a href="{{.URL}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}
</div>{{end}}{{end}}

{{define "action"}}{{if eq .Method "GET"}}<a class="btn small {{.Class}}" href="{{.URL}}">{{.Label}}</a>{{else}}<form class="inline" method="post" action="{{.URL}}"><button class="btn small {{.Class}}" type="submit">{{.Label}}</button></form>{{end}}{{end}}

{{define "table"}}{{if .Rows}}<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}<th>操作</th></tr></thead>
<tbody>
{{range .Rows}}<tr>
{{range .Cells}}<td>{{if .Badge}}<span class="badge {{.Badge}}">{{.Text}}</span>{{else if .Strong}}<strong>{{.Text}}</strong>{{else}}{{.Text}}{{end}}</td>{{end}}
<td class="actions">{{range .Actions}}{{template "action" .}} {{end}}</td>
</tr>{{end}}
</tbody>
</table>{{else}}<div class="empty">{{.Empty}}</div>{{end}}{{end}}

{{define "form_modal"}}<div class="overlay">
<div class="modal">
<h2>{{.Title}}</h2>
<form method="post" action="{{.Action}}">
{{$errs := .Errors}}{{range .Fields}}<div class="field">
<label>{{.Label}}{{if .Required}} *{{end}}</label>
{{if eq .Type "select"}}<select name="{{.Name}}"{{if .Readonly}} disabled{{end}}>
{{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
</select>{{else if eq .Type "textarea"}}<textarea name="{{.Name}}" placeholder="{{.Placeholder}}"{{if .Readonly}} readonly{{end}}>{{.Value}}</textarea>{{else}}<input type="{{.Type}}" name="{{.Name}}" value="{{.Value}}" placeholder="{{.Placeholder}}"{{if .Required}} required{{end}}{{if .Readonly}} readonly{{end}}{{if .Min}} min="{{.Min}}"{{end}}{{if .Step}} step="{{.Step}}"{{end}}>{{end}}
{{with index $errs .Name}}<div class="field-error">{{.}}</div>{{end}}
</div>{{end}}
<div class="footer">
<a class="btn secondary" href="{{.CloseURL}}">取消</a>
<button class="btn" type="submit">保存</button>
</div>
</form>
</div>
</div>{{end}}

{{define "confirm_modal"}}<div class="overlay">
<div class="modal">
<h2>删除确认</h2>
<p>{{.Message}}</p>
<div class="footer">
<a class="btn secondary" href="{{.CancelURL}}">取消</a>
<form class="inline" method="post" action="{{.Action}}"><button class="btn danger" type="submit">确定删除</button></form>
</div>
</div>
</div>{{end}}

{{define "list"}}{{template "head" .}}
<div class="layout">
{{template "nav" .}}
<div class="main">
{{template "notices" .}}
{{template "tabs" .Tabs}}
{{template "cards" .Cards}}
<div class="toolbar">
{{if .Search}}<form method="get" action="{{.Search.Action}}">
<input type="text" name="{{.Search.Name}}" value="{{.Search.Keyword}}" placeholder="{{.Search.Placeholder}}">
<button class="btn" type="submit">搜索</button>
</form>{{else}}<span></span>{{end}}
<div>
{{range .Actions}}{{template "action" .}} {{end}}
{{if .CreateURL}}<a class="btn" href="{{.CreateURL}}">{{.CreateLabel}}</a>{{end}}
</div>
</div>
{{template "table" .Table}}
{{if .Form}}{{template "form_modal" .Form}}{{end}}
{{if .Confirm}}{{template "confirm_modal" .Confirm}}{{end}}
</div>
</div>
</body>
</html>{{end}}

{{define "report"}}{{template "head" .}}
<div class="layout">
{{template "nav" .}}
<div class="main">
{{template "notices" .}}
{{template "tabs" .Tabs}}
{{if .Range}}<div class="toolbar">
<form method="get" action="{{.Range.Action}}">
<input type="date" name="start_date" value="{{.Range.Start}}">
<input type="date" name="end_date" value="{{.Range.End}}">
<button class="btn" type="submit">查询</button>
</form>
<div>{{range .Exports}}{{template "action" .}} {{end}}</div>
</div>{{else if .Exports}}<div class="toolbar"><span></span><div>{{range .Exports}}{{template "action" .}} {{end}}</div></div>{{end}}
{{range .Sections}}<div class="section">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{template "cards" .Cards}}
{{if .Table}}{{template "table" .Table}}{{end}}
</div>{{end}}
</div>
</div>
</body>
</html>{{end}}

{{define "dashboard"}}{{template "head" .}}
<div class="layout">
{{template "nav" .}}
<div class="main">
{{template "notices" .}}
{{template "cards" .Cards}}
<div class="cards">
{{range .Links}}<a class="btn" href="{{.URL}}">{{.Label}}</a>{{end}}
</div>
</div>
</div>
</body>
</html>{{end}}

{{define "login"}}{{template "head" .}}
<div class="login-box">
<h1>{{.AppTitle}}</h1>
{{template "notices" .}}
<form method="post" action="/login">
<div class="field"><label>用户名</label><input type="text" name="username" value="{{.Username}}" required></div>
<div class="field"><label>密码</label><input type="password" name="password" required></div>
<button class="btn" type="submit" style="width:100%">登录</button>
</form>
</div>
</body>
</html>{{end}}

{{define "password"}}{{template "head" .}}
<div class="layout">
{{template "nav" .}}
<div class="main">
{{template "notices" .}}
<div class="modal" style="margin:0">
<h2>修改密码</h2>
<form method="post" action="/change-password">
<div class="field"><label>原密码 *</label><input type="password" name="old_password" required>
{{with index .Errors "old_password"}}<div class="field-error">{{.}}</div>{{end}}</div>
<div class="field"><label>新密码 *</label><input type="password" name="new_password" required>
{{with index .Errors "new_password"}}<div class="field-error">{{.}}</div>{{end}}</div>
<div class="field"><label>确认新密码 *</label><input type="password" name="confirm_password" required>
{{with index .Errors "confirm_password"}}<div class="field-error">{{.}}</div>{{end}}</div>
<div class="footer"><button class="btn" type="submit">保存</button></div>
</form>
</div>
</div>
</div>
</body>
</html>{{end}}
`
