package assistant

// Intent is the closed set of intents the assistant acts on.
type Intent string

const (
	IntentOrdenarComida   Intent = "OrdenarComida"
	IntentEstadoPedido    Intent = "EstadoPedido"
	IntentCancelarPedido  Intent = "CancelarPedido"
	IntentVerMenu         Intent = "VerMenu"
	IntentHorarioAtencion Intent = "HorarioAtencion"
	IntentUnknown         Intent = "Unknown"
)

// Entity is a span extracted by the NLU service.
type Entity struct {
	Category        string
	Text            string
	ConfidenceScore float64
}

// Prediction is the NLU result for one query.
// Entities is never nil once returned by an Analyzer.
type Prediction struct {
	TopIntent string
	Entities  []Entity
}

// Reply is the display-ready rendering of one pipeline pass.
type Reply struct {
	IntentLine    string
	EntitiesBlock string
	ActionLine    string
}

// --- UseCase Inputs ---

type AskInput struct {
	Query string
}

// --- UseCase Outputs ---

// AskOutput is the result of one pipeline pass.
// When Skipped is true the pipeline was not invoked and every other field is zero.
type AskOutput struct {
	Skipped    bool
	Prediction Prediction
	Intent     Intent
	Action     string
	Reply      Reply
}
