package handler

import "html/template"

// returnPage is served at the gateway redirect target. It renders the
// verifying state and follows the reconciliation over server-sent events.
var returnPage = template.Must(template.New("payment_return").Parse(`<!doctype html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>{{.View.Title}}</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 36rem; margin: 4rem auto; }
  .tone-neutral   { border-left: 4px solid #9ca3af; }
  .tone-success   { border-left: 4px solid #16a34a; }
  .tone-failure   { border-left: 4px solid #dc2626; }
  .tone-ambiguous { border-left: 4px solid #d97706; }
  #status { padding: 1rem 1.5rem; }
  #actions a { margin-right: 1rem; }
</style>
</head>
<body>
<div id="status" class="tone-{{.View.Tone}}" data-state="{{.View.State}}">
  <h1 id="title">{{.View.Title}}</h1>
  <p id="message">{{.View.Message}}</p>
  <p id="order">{{if .View.OrderCode}}Order {{.View.OrderCode}}{{end}}</p>
  <div id="actions"></div>
</div>
<script>
(function () {
  var terminal = { success: true, failed: true, timed_out: true, error: true };
  var source = new EventSource({{.StreamURL}});
  source.addEventListener("status", function (e) {
    var v = JSON.parse(e.data);
    var box = document.getElementById("status");
    box.className = "tone-" + v.tone;
    box.dataset.state = v.state;
    document.title = v.title;
    document.getElementById("title").textContent = v.title;
    document.getElementById("message").textContent = v.message;
    document.getElementById("order").textContent = v.orderCode ? "Order " + v.orderCode : "";
    var actions = document.getElementById("actions");
    actions.textContent = "";
    (v.actions || []).forEach(function (a) {
      var link = document.createElement("a");
      link.href = a.href;
      link.textContent = a.label;
      actions.appendChild(link);
    });
    if (terminal[v.state]) { source.close(); }
  });
  window.addEventListener("pagehide", function () { source.close(); });
})();
</script>
</body>
</html>`))
