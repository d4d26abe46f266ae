package view

const layoutTmpl = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · Recipe Catalog</title>
<style>
body{font-family:system-ui,sans-serif;margin:0 auto;max-width:960px;padding:1rem;color:#222}
header{display:flex;justify-content:space-between;align-items:center}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:1rem}
.recipe-card{border:1px solid #ddd;border-radius:8px;padding:1rem}
.tag{display:inline-block;background:#eee;border-radius:4px;padding:0 .4rem;font-size:.85rem}
.notice{background:#fff3cd;border:1px solid #e0c060;padding:.5rem 1rem;border-radius:6px}
.error{color:#a00;font-weight:600}
.empty{color:#666;font-style:italic}
label{display:block;margin-top:.75rem}
input,select,textarea{width:100%;box-sizing:border-box}
</style>
</head>
<body>
<header><h1><a href="/">Recipe Catalog</a></h1><a href="/recipes/new">Add recipe</a></header>
{{if .Degraded}}<p class="notice" role="status">Storage is unavailable. Changes are kept until this program stops.</p>{{end}}
<main>{{template "content" .}}</main>
</body>
</html>{{end}}`

const listTmpl = `{{define "content"}}
<form method="get" action="/" class="filters">
<input type="search" id="search" name="q" value="{{.Filter.Search}}" placeholder="Search by title">
<select id="filter" name="difficulty">
<option value="All"{{if not .Filter.HasDifficulty}} selected{{end}}>All difficulties</option>
{{range .Difficulties}}<option value="{{.}}"{{if eq (print .) $.Filter.Difficulty}} selected{{end}}>{{.}}</option>
{{end}}</select>
<select name="category">
<option value="">All categories</option>
{{range .Categories}}<option value="{{.}}"{{if eq . $.Filter.Category}} selected{{end}}>{{.}}</option>
{{end}}</select>
<button type="submit">Filter</button>
</form>
<section id="recipe-list">
{{if not .Recipes}}<p class="empty">No recipes found.</p>
{{else if .Groups}}{{range .Groups}}<section class="category" data-category="{{.Name}}">
<h2>{{.Name}}</h2>
<div class="grid">{{range .Recipes}}{{template "card" .}}{{end}}</div>
</section>
{{end}}{{else}}<div class="grid">{{range .Recipes}}{{template "card" .}}{{end}}</div>
{{end}}</section>
{{end}}
{{define "card"}}<article class="recipe-card">
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
<p><span class="tag">{{.Difficulty}}</span> <span class="tag">{{minutes .PrepTime}}</span></p>
<a href="/recipes/{{.ID}}">View</a>
</article>
{{end}}`

const detailTmpl = `{{define "content"}}{{with .Recipe}}
<article class="recipe-detail">
<h2 id="title">{{.Title}}</h2>
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" style="max-width:100%">{{end}}
<p id="description">{{.Description}}</p>
<p><span class="tag" id="difficulty">{{.Difficulty}}</span> <span class="tag" id="category">{{.Category}}</span> <span class="tag" id="prep-time">{{minutes .PrepTime}}</span></p>
<h3>Ingredients</h3>
<ul id="ingredients">{{range .Ingredients}}<li>{{.}}</li>{{end}}</ul>
<h3>Steps</h3>
<ol id="steps">{{range .Steps}}<li>{{.}}</li>{{end}}</ol>
<p class="meta">Added {{date .CreatedAt}}{{if .UpdatedAt}} · Updated {{date .UpdatedAt}}{{end}}</p>
<p><a href="/recipes/{{.ID}}/edit">Edit</a> · <a href="/recipes/{{.ID}}/delete">Delete</a> · <a href="/">Back</a></p>
</article>
{{end}}{{end}}`

const formTmpl = `{{define "content"}}
<h2>{{.Title}}</h2>
{{if .Message}}<p class="error" role="alert" data-field="{{.Field}}">{{.Message}}</p>{{end}}
<form method="post" action="{{.Action}}">
<label>Title <input name="title" value="{{.Input.Title}}" required minlength="2"></label>
<label>Description <textarea name="description" rows="2">{{.Input.Description}}</textarea></label>
<label>Image URL <input name="image" value="{{.Input.Image}}"></label>
<label>Ingredients, one per line <textarea name="ingredients" rows="6">{{.Input.Ingredients}}</textarea></label>
<label>Steps, one per line <textarea name="steps" rows="6">{{.Input.Steps}}</textarea></label>
<label>Prep time (minutes) <input name="prep_time" value="{{.Input.PrepTime}}" inputmode="decimal"></label>
<label>Difficulty <select name="difficulty">
{{range .Difficulties}}<option value="{{.}}"{{if eq (print .) $.Input.Difficulty}} selected{{end}}>{{.}}</option>
{{end}}</select></label>
<label>Category <input name="category" value="{{.Input.Category}}" placeholder="{{.DefaultCategory}}"></label>
<p><button type="submit">Save</button> <a href="{{.Cancel}}">Cancel</a></p>
</form>
{{end}}`

const confirmTmpl = `{{define "content"}}{{with .Recipe}}
<h2>Delete {{.Title}}?</h2>
<p>This cannot be undone.</p>
<form method="post" action="/recipes/{{.ID}}/delete">
<button type="submit">Delete</button> <a href="/recipes/{{.ID}}">Cancel</a>
</form>
{{end}}{{end}}`

const errorTmpl = `{{define "content"}}
<h2>{{.Title}}</h2>
<p>{{.Message}}</p>
<p><a href="/">Back to recipes</a></p>
{{end}}`
