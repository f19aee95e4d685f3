package router

// Router maps a Prediction to exactly one action text. It keeps no state between calls.
type Router struct {
	routes Routes
}

// New creates a Router with the default dispatch table.
func New() *Router {
	return NewWithRoutes(DefaultRoutes())
}

// NewWithRoutes creates a Router over a custom table. The table is copied.
func NewWithRoutes(routes Routes) *Router {
	cp := make(Routes, len(routes))
	for k, v := range routes {
		cp[k] = v
	}
	return &Router{routes: cp}
}
