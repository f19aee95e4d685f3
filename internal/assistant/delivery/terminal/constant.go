package terminal

const (
	Prompt       = "Enter your query: "
	Banner       = "Pedidos Rapidisimos. Type \"quit\" to exit."
	GoodbyeLine  = "Bye!"
	wordWrap     = 80
	colorConfig  = "#f0a030"
	colorService = "#e05040"
	colorFormat  = "#9050d0"
)
