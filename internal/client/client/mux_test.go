package client

import (
	"net/http"
	"strings"
)

// methodMux accepts Go 1.22-style "METHOD /path" patterns on toolchains whose
// http.ServeMux does not support method matching. A request whose path matches
// but whose method does not gets 405, as with the Go 1.22+ ServeMux.
type methodMux struct {
	*http.ServeMux
}

func newMux() *methodMux {
	return &methodMux{ServeMux: http.NewServeMux()}
}

func (m *methodMux) HandleFunc(pattern string, h func(http.ResponseWriter, *http.Request)) {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		m.ServeMux.HandleFunc(pattern, h)
		return
	}
	m.ServeMux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}
