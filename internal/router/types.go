package router

import "pedidos-rapidisimos/internal/assistant"

// Route describes how one intent becomes an action text.
type Route struct {
	Category string // entity category to look up
	Fallback string // used when no entity of Category exists
	Template string // fmt template with a single %s
}

// Routes is the intent dispatch table.
type Routes map[assistant.Intent]Route

// DefaultRoutes returns the dispatch table for the food ordering project.
func DefaultRoutes() Routes {
	return Routes{
		assistant.IntentOrdenarComida:   {Category: CategoryProducto, Fallback: FallbackProducto, Template: TemplateOrdenarComida},
		assistant.IntentEstadoPedido:    {Category: CategoryNumeroPedido, Fallback: FallbackNumeroPedido, Template: TemplateEstadoPedido},
		assistant.IntentCancelarPedido:  {Category: CategoryNumeroPedido, Fallback: FallbackNumeroPedido, Template: TemplateCancelarPedido},
		assistant.IntentVerMenu:         {Category: CategoryCategoria, Fallback: FallbackCategoria, Template: TemplateVerMenu},
		assistant.IntentHorarioAtencion: {Category: CategoryDia, Fallback: FallbackDia, Template: TemplateHorarioAtencion},
	}
}
