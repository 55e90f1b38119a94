package api

import "net/http"

func (s *Server) handleWidgetPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(widgetPageHTML))
}

const widgetPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Code Generator</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #0a0a0a;
    color: #e0e0e0;
    display: flex;
    justify-content: center;
    align-items: center;
    min-height: 100vh;
    padding: 24px;
  }
  .card {
    background: #1a1a1a;
    border: 1px solid #333;
    border-radius: 16px;
    padding: 40px;
    max-width: 820px;
    width: 100%;
    display: flex;
    gap: 40px;
    flex-wrap: wrap;
  }
  .preview { flex: 0 0 auto; text-align: center; }
  #preview-box {
    width: 420px; height: 420px;
    display: flex;
    align-items: center;
    justify-content: center;
    background: #fff;
    background-image: linear-gradient(45deg, #eee 25%, transparent 25%, transparent 75%, #eee 75%),
                      linear-gradient(45deg, #eee 25%, transparent 25%, transparent 75%, #eee 75%);
    background-size: 20px 20px;
    background-position: 0 0, 10px 10px;
    border-radius: 12px;
  }
  .controls { flex: 1 1 280px; min-width: 280px; }
  h1 { font-size: 20px; font-weight: 600; margin-bottom: 24px; }
  label { display: block; font-size: 13px; color: #888; margin: 14px 0 4px; }
  input[type=text] {
    width: 100%;
    background: #0f0f0f;
    border: 1px solid #333;
    border-radius: 8px;
    color: #e0e0e0;
    padding: 8px 10px;
    font-size: 14px;
  }
  input[type=range] { width: 100%; }
  input[type=color] { width: 48px; height: 32px; border: none; background: none; }
  select {
    background: #0f0f0f;
    border: 1px solid #333;
    border-radius: 8px;
    color: #e0e0e0;
    padding: 6px 8px;
  }
  .row { display: flex; align-items: center; gap: 12px; }
  .buttons { margin-top: 24px; display: flex; flex-wrap: wrap; gap: 8px; }
  button {
    background: #2a2a2a;
    border: 1px solid #444;
    border-radius: 8px;
    color: #e0e0e0;
    padding: 8px 14px;
    font-size: 13px;
    cursor: pointer;
  }
  button:hover { background: #333; }
  button.primary { background: #166534; border-color: #15803d; }
  button.primary:hover { background: #15803d; }
</style>
</head>
<body>
<div class="card">
  <div class="preview">
    <div id="preview-box"><img id="preview" alt="QR code preview"></div>
  </div>
  <div class="controls">
    <h1>QR Code Generator</h1>

    <label for="text">Text or URL</label>
    <input type="text" id="text">

    <label for="size">Size: <span id="size-value"></span>px</label>
    <input type="range" id="size" min="100" max="400" step="10">

    <div class="row">
      <div>
        <label for="foreground">Foreground</label>
        <input type="color" id="foreground">
      </div>
      <div>
        <label for="background">Background</label>
        <input type="color" id="background">
      </div>
      <div>
        <label for="show-background">Visible</label>
        <input type="checkbox" id="show-background">
      </div>
    </div>

    <label for="level">Error correction</label>
    <select id="level">
      <option value="low">Low</option>
      <option value="medium">Medium</option>
      <option value="quartile">Quartile</option>
      <option value="high">High</option>
    </select>

    <label for="logo">Logo</label>
    <div class="row">
      <input type="file" id="logo" accept="image/*">
      <button id="remove-logo">Remove</button>
    </div>

    <div class="buttons">
      <button class="primary" id="download">Download PNG</button>
      <button id="share">Share on WhatsApp</button>
      <button id="copy">Copy Link</button>
      <button id="copy-ig">Copy for Instagram</button>
      <button id="reset">Reset</button>
    </div>
  </div>
</div>
<script>
(function() {
  var preview = document.getElementById('preview');
  var fields = {
    text: document.getElementById('text'),
    size: document.getElementById('size'),
    foreground: document.getElementById('foreground'),
    background: document.getElementById('background'),
    showBackground: document.getElementById('show-background'),
    level: document.getElementById('level')
  };
  var sizeValue = document.getElementById('size-value');

  function refresh(state) {
    fields.text.value = state.text;
    fields.size.value = state.size;
    fields.foreground.value = state.foreground;
    fields.background.value = state.background;
    fields.showBackground.checked = state.show_background;
    fields.level.value = state.level;
    sizeValue.textContent = state.size;
    preview.setAttribute('src', '/preview.png?rev=' + state.revision);
    preview.style.width = state.size + 'px';
    preview.style.height = state.size + 'px';
  }

  function update(patch) {
    fetch('/api/state', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(patch)
    })
      .then(function(r) { return r.json(); })
      .then(refresh);
  }

  fields.text.addEventListener('input', function() { update({ text: fields.text.value }); });
  fields.size.addEventListener('input', function() { update({ size: parseInt(fields.size.value, 10) }); });
  fields.foreground.addEventListener('input', function() { update({ foreground: fields.foreground.value }); });
  fields.background.addEventListener('input', function() { update({ background: fields.background.value }); });
  fields.showBackground.addEventListener('change', function() { update({ show_background: fields.showBackground.checked }); });
  fields.level.addEventListener('change', function() { update({ level: fields.level.value }); });

  document.getElementById('logo').addEventListener('change', function(e) {
    if (!e.target.files.length) return; // no file chosen
    var form = new FormData();
    form.append('file', e.target.files[0]);
    fetch('/api/logo', { method: 'POST', body: form })
      .then(function() { return fetch('/api/state'); })
      .then(function(r) { return r.json(); })
      .then(refresh);
  });

  document.getElementById('remove-logo').addEventListener('click', function() {
    document.getElementById('logo').value = '';
    fetch('/api/logo', { method: 'DELETE' })
      .then(function(r) { return r.json(); })
      .then(refresh);
  });

  document.getElementById('download').addEventListener('click', function() {
    window.location.href = '/export';
  });

  document.getElementById('share').addEventListener('click', function() {
    window.open('/share', '_blank');
  });

  function copyButton(id, doneLabel, failMessage) {
    var btn = document.getElementById(id);
    var label = btn.textContent;
    btn.addEventListener('click', function() {
      navigator.clipboard.writeText(fields.text.value)
        .then(function() {
          btn.textContent = doneLabel;
          setTimeout(function() { btn.textContent = label; }, 1500);
        })
        .catch(function() { alert(failMessage); });
    });
  }
  copyButton('copy', 'Copied!', 'Failed to copy the link to the clipboard.');
  copyButton('copy-ig', 'Copied for Instagram!', 'Could not copy for Instagram — copy the text manually.');

  document.getElementById('reset').addEventListener('click', function() {
    document.getElementById('logo').value = '';
    fetch('/api/reset', { method: 'POST' })
      .then(function(r) { return r.json(); })
      .then(refresh);
  });

  fetch('/api/state')
    .then(function(r) { return r.json(); })
    .then(refresh);
})();
</script>
</body>
</html>`
