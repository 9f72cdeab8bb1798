package site

// pageTemplate renders the question browser page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header class="top-bar">
    <h1 class="project-title">{{.Title}}</h1>
    <input type="search" id="search-input" placeholder="Search questions..." autocomplete="off">
    <form class="filters" method="post" action="filter">
      {{range .Buttons}}{{.}}{{end}}
    </form>
  </header>
  <main class="content">
    <p class="count">{{len .Cards}} questions{{if ne .Filter "all"}} tagged <strong>{{.FilterName}}</strong>{{end}}</p>
    {{range .Cards}}
    <details class="question" id="{{.Anchor}}">
      <summary>
        <span class="question__text">{{.Question}}</span>
        {{range .Tags}}<span class="tag is-{{.ID}}">{{.Name}}</span>{{end}}
      </summary>
      <div class="question__answer">{{.Body}}</div>
    </details>
    {{end}}
  </main>
  <script src="script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the question browser.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d0d7de;
  --accent: #0969da;
  --card: #f6f8fa;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; background: var(--bg); color: var(--fg); }
.top-bar { position: sticky; top: 0; background: var(--bg); border-bottom: 1px solid var(--border); padding: 1rem 2rem; }
.project-title { margin: 0 0 .75rem; font-size: 1.5rem; }
.filters { display: flex; flex-wrap: wrap; gap: .5rem; }
.btn { display: inline-flex; align-items: center; gap: .35rem; padding: .4rem .75rem; border: 1px solid var(--border); border-radius: 6px; background: var(--card); color: var(--fg); cursor: pointer; position: relative; }
.btn:hover { border-color: var(--accent); }
.btn.is-active { background: var(--accent); border-color: var(--accent); color: #fff; }
.btn.is-all { font-weight: 600; }
.btn__icon { width: 16px; height: 16px; }
.btn[data-tooltip]:hover::after { content: attr(data-tooltip); position: absolute; top: 110%; left: 0; white-space: nowrap; padding: .25rem .5rem; border-radius: 4px; background: var(--fg); color: var(--bg); font-size: .75rem; }
.content { max-width: 860px; margin: 0 auto; padding: 1.5rem 2rem; }
.count { color: var(--muted); }
.question { border: 1px solid var(--border); border-radius: 6px; margin-bottom: .75rem; background: var(--card); }
.question summary { padding: .75rem 1rem; cursor: pointer; display: flex; flex-wrap: wrap; align-items: center; gap: .5rem; }
.question__text { font-weight: 600; flex: 1; }
.question__answer { padding: 0 1rem 1rem; background: var(--bg); border-top: 1px solid var(--border); }
.tag { font-size: .75rem; padding: .1rem .45rem; border-radius: 999px; border: 1px solid var(--border); color: var(--muted); }
#search-input { width: 100%; max-width: 420px; margin-bottom: .75rem; padding: .4rem .6rem; border: 1px solid var(--border); border-radius: 6px; }
.question.is-hidden { display: none; }
pre { padding: .75rem; border-radius: 6px; overflow-x: auto; }
`

// jsContent filters the visible question cards against questions.json as the
// user types in the search box.
const jsContent = `(function () {
  var input = document.getElementById("search-input");
  if (!input) return;
  var index = [];
  fetch("questions.json")
    .then(function (r) { return r.json(); })
    .then(function (entries) { index = entries || []; })
    .catch(function () { index = []; });

  input.addEventListener("input", function () {
    var q = input.value.trim().toLowerCase();
    var visible = {};
    index.forEach(function (e) {
      var text = (e.question + " " + e.summary + " " + (e.tags || []).join(" ")).toLowerCase();
      if (!q || text.indexOf(q) !== -1) visible[e.anchor] = true;
    });
    document.querySelectorAll("details.question").forEach(function (el) {
      el.classList.toggle("is-hidden", !!q && !visible[el.id]);
    });
  });
})();
`
