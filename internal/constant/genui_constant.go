package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	DefaultSessionName = "Untitled Session"

	// GenerationAckMessage is appended as the assistant transcript entry after a
	// successful generation. The artifact itself lives on the session, not in chat.
	GenerationAckMessage = "Component generated successfully."
)

// ComponentPromptTemplateV1 wraps the raw user prompt with the generation
// constraints. The %s placeholder receives the user prompt verbatim.
const ComponentPromptTemplateV1 = `You are a React expert. Given the input prompt below, please generate a React component using plain JavaScript (no TypeScript types or interfaces).
Provide the component code as JSX suitable for direct in-browser rendering.

Important requirements:
1. Use function declaration syntax (not arrow functions)
2. Give the component a clear name based on its purpose
3. Don't include any imports or exports
4. Make sure the component can accept children

Prompt: %s

Respond ONLY with JSON in this exact format:
{
  "jsx": "...",
  "css": "..."
}`
