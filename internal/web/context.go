package web

import "net/http"

type RequestContext struct {
	IsHTMX bool // HX-Request header present
}

func parseRequestContext(r *http.Request) RequestContext {
	return RequestContext{
		IsHTMX: r.Header.Get("HX-Request") == "true",
	}
}

// redirectHome sends plain form posts back to the board. It reports whether
// the caller is done; HTMX requests fall through to fragment rendering.
func (ctx RequestContext) redirectHome(w http.ResponseWriter, r *http.Request) bool {
	if ctx.IsHTMX {
		return false
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return true
}
