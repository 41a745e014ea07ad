package openai

// Defaults for the chat completions client.
const (
	DefaultAPIURL = "https://api.openai.com/v1"
	DefaultModel  = "gpt-4o-mini"

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"

	ToolTypeFunction = "function"
)
