package router

// Entity categories as tagged by the CLU project. Accents are part of the tag.
const (
	CategoryProducto     = "producto"
	CategoryNumeroPedido = "número_pedido"
	CategoryCategoria    = "categoría"
	CategoryDia          = "día"
)

// Fallback values used when the category is not among the entities.
const (
	FallbackProducto     = "algo"
	FallbackNumeroPedido = "desconocido"
	FallbackCategoria    = "todo"
	FallbackDia          = "general"
)

// Action templates; %s receives the selected entity text.
const (
	TemplateOrdenarComida   = "Order confirmed: %s."
	TemplateEstadoPedido    = "Looking up status of order %s..."
	TemplateCancelarPedido  = "Attempting to cancel order %s..."
	TemplateVerMenu         = "Showing menu for %s..."
	TemplateHorarioAtencion = "Hours for %s are 9:00–22:00."
)

// NotUnderstoodMessage is returned for any intent without a route.
const NotUnderstoodMessage = "Sorry, request not understood. Try again."
