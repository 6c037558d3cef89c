package sanitizer

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"genui-be/internal/apperror"
	"genui-be/internal/entity"
)

// Models frequently wrap the JSON payload in markdown code fences even when
// told not to. Strip every known fence marker before parsing.
var fencePattern = regexp.MustCompile("```json|```js|```jsx|```ts|```tsx|```css|```")

// Clean removes markdown code fences and surrounding whitespace from a raw
// model response.
func Clean(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))
}

// Parse cleans a raw model response and decodes it into an artifact.
// Anything that is not a JSON object with string jsx/css fields yields a
// malformed-response error, never a partial artifact.
func Parse(raw string) (*entity.Artifact, error) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return nil, apperror.MalformedResponse("empty model response", nil)
	}
	// "null", arrays and bare strings decode into a zero artifact without
	// error, which would silently wipe the stored component. Only an object
	// is acceptable.
	if cleaned[0] != '{' {
		return nil, apperror.MalformedResponse("model response is not a JSON object", nil)
	}

	var artifact entity.Artifact
	decoder := json.NewDecoder(strings.NewReader(cleaned))
	if err := decoder.Decode(&artifact); err != nil {
		return nil, apperror.MalformedResponse("invalid model response format", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, apperror.MalformedResponse("trailing content after model response", nil)
	}

	return &artifact, nil
}
