// SPDX-License-Identifier: MIT

package httpapi

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/tylermorales/ilga-graph/internal/advocacy"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/graph"
)

// No templating library appears anywhere in the retrieved example pack
// (grep across every go.mod turns up nothing but this spec's own), so
// the advocacy UI renders with the standard library's html/template —
// the same reasoning the ZIP crosswalk's encoding/csv reader applies.
var advocacyFormTpl = template.Must(template.New("form").Parse(`<!doctype html>
<html><head><title>Find your legislators</title></head>
<body>
<h1>Find your Illinois legislators</h1>
<form method="post" action="/advocacy/search">
  <label>ZIP code <input type="text" name="zip" required pattern="[0-9]{5}"></label>
  <label>Issue
    <select name="policy_category">
      <option value="">Any</option>
      {{range .Categories}}<option value="{{.}}">{{.}}</option>{{end}}
    </select>
  </label>
  <button type="submit">Search</button>
</form>
</body></html>`))

var advocacyResultTpl = template.Must(template.New("result").Parse(`<!doctype html>
<html><head><title>Your legislators</title></head>
<body>
<h1>Your legislators</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{else}}
{{range .Cards}}
<div class="card">
  <h2>{{.Kind}}: {{.Member.Name}}</h2>
  <p>{{.Why}}</p>
  <p><em>{{.ScriptHint}}</em></p>
</div>
{{else}}<p>No matches found.</p>{{end}}
{{end}}
<p><a href="/advocacy">Search again</a></p>
</body></html>`))

type advocacyFormData struct {
	Categories []string
}

type advocacyResultData struct {
	Cards []advocacy.Card
	Error string
}

// htmlPageRenderer is the reference advocacy.PageRenderer: plain
// html/template pages, no JS framework, matching the advocacy UI's
// "server-rendered, same process" contract (spec §6).
type htmlPageRenderer struct{}

func (htmlPageRenderer) RenderForm(categories []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := advocacyFormTpl.Execute(&buf, advocacyFormData{Categories: categories}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (htmlPageRenderer) RenderResult(cards []advocacy.Card, resultErr error) ([]byte, error) {
	data := advocacyResultData{Cards: cards}
	if resultErr != nil {
		data.Error = resultErr.Error()
	}
	var buf bytes.Buffer
	if err := advocacyResultTpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ advocacy.PageRenderer = htmlPageRenderer{}

var defaultRenderer advocacy.PageRenderer = htmlPageRenderer{}

func (s *Server) handleAdvocacyForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	body, err := defaultRenderer.RenderForm(advocacy.PolicyCategories())
	if err != nil {
		slog.ErrorContext(r.Context(), "advocacy form render failed", "error", err)
		return
	}
	_, _ = w.Write(body)
}

func (s *Server) handleAdvocacySearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	zip := r.FormValue("zip")
	category := r.FormValue("policy_category")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap := s.snapshot
	if snap == nil || snap.Graph == nil || s.crosswalk == nil {
		body, _ := defaultRenderer.RenderResult(nil, errLoading)
		_, _ = w.Write(body)
		return
	}

	senatorsByDistrict, repsByDistrict := districtIncumbents(snap.Graph)
	committeesByCode := snap.Graph.CommitteesByCode

	cards, err := advocacy.Cards(zip, category, s.crosswalk, senatorsByDistrict, repsByDistrict, committeesByCode, snap.Moneyball, snap.Scorecards)
	body, renderErr := defaultRenderer.RenderResult(cards, err)
	if renderErr != nil {
		slog.ErrorContext(r.Context(), "advocacy result render failed", "error", renderErr)
		return
	}
	_, _ = w.Write(body)
}

var errLoading = errors.New("data is still loading, try again shortly")

// districtIncumbents builds the chamber-keyed-by-district maps
// advocacy.Cards needs, fresh off the current graph snapshot.
func districtIncumbents(g *graph.Graph) (senators, reps map[int]*model.Member) {
	senators = make(map[int]*model.Member)
	reps = make(map[int]*model.Member)
	for _, m := range g.Members {
		switch m.Chamber {
		case model.ChamberSenate:
			senators[m.District] = m
		case model.ChamberHouse:
			reps[m.District] = m
		}
	}
	return senators, reps
}
