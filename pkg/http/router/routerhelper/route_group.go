package routerhelper

import (
	"github.com/julienschmidt/httprouter"
)

// RouteGroup. registers httprouter handlers under a shared path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{
		router: router,
		prefix: prefix,
	}
}

func (rg *RouteGroup) GET(path string, handle httprouter.Handle) {
	rg.router.GET(rg.prefix+path, handle)
}

func (rg *RouteGroup) POST(path string, handle httprouter.Handle) {
	rg.router.POST(rg.prefix+path, handle)
}

func (rg *RouteGroup) DELETE(path string, handle httprouter.Handle) {
	rg.router.DELETE(rg.prefix+path, handle)
}
