package http

const (
	PageTitle  = "Pedidos Rapidisimos"
	QueryLabel = "Enter your query:"

	pageTemplateName = "index.html"
)
