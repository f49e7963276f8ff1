package notify

const emailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.CompanyName}} – Announcements</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #463737 0%, #37393b 100%);
      color: #ffffff;
    }

    .company {
      font-size: 24px;
      font-weight: 700;
      letter-spacing: 0.05em;
      margin-bottom: 4px;
    }

    .subtitle {
      font-size: 15px;
      opacity: 0.9;
    }

    .record {
      padding: 16px 24px;
      border-top: 1px solid #e5e7eb;
    }

    .record-meta {
      font-size: 12px;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.05em;
      margin-bottom: 4px;
    }

    .record-title {
      font-size: 15px;
      font-weight: 600;
      margin-bottom: 8px;
    }

    .record-title a {
      color: #111827;
      text-decoration: none;
    }

    .key-lines {
      margin: 0;
      padding-left: 18px;
      font-size: 13px;
      color: #374151;
    }

    .section-label {
      font-size: 11px;
      font-weight: 600;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.05em;
      margin: 10px 0 4px;
    }

    .footer {
      padding: 14px 24px;
      border-top: 1px solid #e5e7eb;
      font-size: 12px;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="company">{{.CompanyName}}</div>
      <div class="subtitle">{{len .Results}} announcement record(s)</div>
    </div>

    {{range .Results}}
    <div class="record">
      <div class="record-meta">{{.Record.Date}} · {{.Record.Source}}</div>
      <div class="record-title"><a href="{{.Record.Link}}">{{.Record.Title}}</a></div>

      {{if .Record.KeyLines}}
      <div class="section-label">Key Lines</div>
      <ul class="key-lines">
        {{range .Record.KeyLines}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}

      {{if .Analysis}}
        {{if .Analysis.Summary}}
        <div class="section-label">AI Summary</div>
        <ul class="key-lines">
          {{range .Analysis.Summary}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
        {{if .Analysis.GovernanceEvents}}
        <div class="section-label">Governance Events</div>
        <ul class="key-lines">
          {{range .Analysis.GovernanceEvents}}<li><strong>{{.Category}}:</strong> {{.Details}}</li>{{end}}
        </ul>
        {{end}}
      {{end}}
    </div>
    {{end}}

    <div class="footer">
      Full report written to {{.OutputFile}}
    </div>
  </div>
</body>
</html>`
