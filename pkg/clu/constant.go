package clu

import "time"

const (
	// DefaultAPIVersion is the Conversation Analysis REST API version.
	DefaultAPIVersion = "2023-04-01"

	// DefaultProjectName is the CLU project the deployment belongs to.
	DefaultProjectName = "PedidosRapidisimos"

	// DefaultDeploymentName is the deployment slot queried.
	DefaultDeploymentName = "prueba2"

	// DefaultLanguage is the language of every conversation item.
	DefaultLanguage = "es"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Single-turn request constants.
const (
	taskKind      = "Conversation"
	participantID = "1"
	itemID        = "1"
	modalityText  = "text"

	analyzePath = "/language/:analyze-conversations"
)

// Headers
const (
	headerSubscriptionKey = "Ocp-Apim-Subscription-Key"
	headerClientRequestID = "X-Ms-Client-Request-Id"
	headerContentType     = "Content-Type"
	contentTypeJSON       = "application/json"
)
