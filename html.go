package main

const studioHTML = `<!doctype html>
<html lang="{{.Lang}}" class="{{if .DarkMode}}dark{{else}}light{{end}}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>PoseArchitect.AI</title>
  <style>
    :root { --bg:#f8fafc; --panel:#ffffff; --text:#1e293b; --muted:#64748b; --line:#e2e8f0; --accent:#6366f1; }
    html.dark { --bg:#0f172a; --panel:#1e293b; --text:#f1f5f9; --muted:#94a3b8; --line:#334155; }
    body { margin:0; min-height:100vh; display:flex; align-items:center; justify-content:center; font-family:"Inter","Segoe UI",sans-serif; background:var(--bg); color:var(--text); }
    .card { background:var(--panel); border:1px solid var(--line); border-radius:16px; padding:32px 40px; max-width:480px; width:100%; text-align:center; }
    h1 { margin:0 0 12px; font-size:28px; }
    p { color:var(--muted); }
    .role { font-weight:700; color:var(--accent); }
    button { margin-top:16px; border:0; border-radius:10px; padding:12px 18px; font-weight:600; background:var(--accent); color:#fff; cursor:pointer; }
  </style>
</head>
<body>
  <div class="card">
    <h1>PoseArchitect<span>.AI</span></h1>
    <p id="signed-in" data-role="{{.Role}}">{{t .P "studio.signedin" .Role}}</p>
    <form method="post" action="/logout">
      <button type="submit">{{t .P "studio.signout"}}</button>
    </form>
  </div>
</body>
</html>
`
