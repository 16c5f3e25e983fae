package constant

import "time"

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Greeting inserted as the first assistant message of every new session.
	AssistantGreeting = "Hello! I'm your AI Legal Assistant. I can help you with legal questions, document analysis, and provide guidance on various legal matters. How can I assist you today?"

	// Hard ceiling on a single generation call. Late results are discarded.
	AssistantGenerateTimeout = 30 * time.Second
	AssistantAnalyzeTimeout  = 60 * time.Second

	// How much prior conversation is replayed to the provider.
	AssistantHistoryLimit = 20

	DefaultSessionTitle = "New Consultation"
)
