package router

import "github.com/gin-gonic/gin"

// Registry collects modules and mounts them on the engine root.
type Registry struct {
	Engine      *gin.Engine
	Root        *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
	fallback    []gin.HandlerFunc
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Root: engine.Group("/")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// NoRoute sets the handlers for paths no module registered.
func (r *Registry) NoRoute(h ...gin.HandlerFunc) {
	r.fallback = h
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.Root.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.Root)
	}
	if len(r.fallback) > 0 {
		r.Engine.NoRoute(append(r.middlewares, r.fallback...)...)
	}
}
