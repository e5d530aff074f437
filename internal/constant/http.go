package constant

const (
	RequestIDHeader = "X-Webby-Request-ID"

	ContextKeyRequestID  = "requestId"
	ContextKeyTranslator = "T"
)

// EventPropertiesChanged is dispatched on the client after a property was created,
// so that every list bound to it refreshes itself.
const EventPropertiesChanged = "properties-changed"

// MethodOverrideField is the form field a plain HTML form uses to tunnel PUT and DELETE through POST.
const MethodOverrideField = "_method"
