package server

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/matzehuels/initstate/pkg/io"
	"github.com/matzehuels/initstate/pkg/pipeline"
	"github.com/matzehuels/initstate/pkg/render"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>initstate preview</title>
<style>
  body { font-family: sans-serif; margin: 2em; }
  .error { background: #fdecea; border: 1px solid #f5c2c0; padding: 1em; white-space: pre-wrap; }
  .warnings li { color: #8a6d3b; }
  nav a { margin-right: 1em; }
</style>
</head>
<body>
<h1>Initial state</h1>
<nav>
  <a href="/tiles.svg">tiles.svg</a>
  <a href="/network.svg">network.svg</a>
  <a href="/network.html">network.html</a>
  <a href="/panels.json">panels.json</a>
  <a href="/grid.json">grid.json</a>
  <a href="/graph.json">graph.json</a>
</nav>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{with .Result}}
<p>{{.Stats.Panels}} panels in {{.Stats.Rows}} rows, {{.Stats.Links}} selection links. Loaded {{$.Loaded}}.</p>
{{with .Warnings}}<ul class="warnings">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
<h2>Tiles</h2>
<img src="/tiles.svg?rev={{$.Revision}}" alt="tile layout">
<h2>Links</h2>
<img src="/network.svg?rev={{$.Revision}}" alt="selection links">
{{else}}
<p>Nothing loaded yet.</p>
{{end}}
</body>
</html>
`))

type indexData struct {
	Result   *pipeline.Result
	Error    string
	Loaded   string
	Revision string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.snapshot()
	data := indexData{Result: st.result, Revision: st.revision}
	if st.err != nil {
		data.Error = st.err.Error()
	}
	if st.result != nil {
		data.Loaded = st.loaded.Format(time.TimeOnly)
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		s.logger.Error("render index", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

type healthResponse struct {
	Status   string `json:"status"`
	Panels   int    `json:"panels"`
	Warnings int    `json:"warnings"`
	Loaded   string `json:"loaded,omitempty"`
	Revision string `json:"revision,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.snapshot()
	resp := healthResponse{Status: "ok"}
	code := http.StatusOK
	if st.result != nil {
		resp.Panels = st.result.Stats.Panels
		resp.Warnings = len(st.result.Warnings())
		resp.Loaded = st.loaded.Format(time.RFC3339)
		resp.Revision = st.revision
	}
	if st.err != nil {
		resp.Status = "error"
		resp.Error = st.err.Error()
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

// current returns the latest state, or writes 503 and returns false when
// nothing has loaded yet.
func (s *Server) current(w http.ResponseWriter) (state, bool) {
	st := s.snapshot()
	if st.result == nil {
		msg := "nothing loaded"
		if st.err != nil {
			msg = st.err.Error()
		}
		http.Error(w, msg, http.StatusServiceUnavailable)
		return st, false
	}
	return st, true
}

func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	st, ok := s.current(w)
	if !ok {
		return
	}
	res := st.result
	writeArtifact(w, r, st.revision, render.FormatStatic.MediaType(), res.Tiles)
}

func (s *Server) handleNetworkSVG(w http.ResponseWriter, r *http.Request) {
	st, ok := s.current(w)
	if !ok {
		return
	}
	res := st.result
	writeArtifact(w, r, st.revision, res.Network.MediaType, res.Network.Data)
}

func (s *Server) handleNetworkHTML(w http.ResponseWriter, r *http.Request) {
	st, ok := s.current(w)
	if !ok {
		return
	}
	res := st.result
	opts := s.opts
	opts.Format = render.FormatInteractive
	out, err := s.runner.RenderNetwork(r.Context(), res.Graph, opts)
	if err != nil {
		s.logger.Error("render network", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeArtifact(w, r, st.revision, out.MediaType, out.Data)
}

func (s *Server) handlePanels(w http.ResponseWriter, r *http.Request) {
	st, ok := s.current(w)
	if !ok {
		return
	}
	res := st.result
	var buf bytes.Buffer
	if err := io.WriteJSON(res.Sequence, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeArtifact(w, r, st.revision, "application/json", buf.Bytes())
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	st, ok := s.current(w)
	if !ok {
		return
	}
	res := st.result
	var buf bytes.Buffer
	if err := io.WriteGridJSON(res.Grid, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeArtifact(w, r, st.revision, "application/json", buf.Bytes())
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	st, ok := s.current(w)
	if !ok {
		return
	}
	res := st.result
	var buf bytes.Buffer
	if err := io.WriteGraphJSON(res.Graph, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeArtifact(w, r, st.revision, "application/json", buf.Bytes())
}

// writeArtifact writes data tagged with the revision it was built from.
// Browsers revalidate on every request and get 304 until the next reload.
func writeArtifact(w http.ResponseWriter, r *http.Request, revision, contentType string, data []byte) {
	etag := `"` + revision + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
