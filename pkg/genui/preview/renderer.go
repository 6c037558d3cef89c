package preview

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"genui-be/internal/entity"
)

const fallbackComponentName = "GeneratedComponent"

var (
	funcDeclPattern  = regexp.MustCompile(`function\s+([A-Z][A-Za-z0-9]*)\s*\(`)
	arrowDeclPattern = regexp.MustCompile(`const\s+([A-Z][A-Za-z0-9]*)\s*=\s*(\([^)]*\)|[a-zA-Z0-9]+)?\s*=>`)
)

// ExtractComponentName finds the top-level component declared in the JSX.
// Both function declarations and arrow assignments count; anything else
// falls back to a generic name so the wrapper still compiles.
func ExtractComponentName(jsx string) string {
	if m := funcDeclPattern.FindStringSubmatch(jsx); m != nil {
		return m[1]
	}
	if m := arrowDeclPattern.FindStringSubmatch(jsx); m != nil {
		return m[1]
	}
	return fallbackComponentName
}

// DefaultChildren picks placeholder children so components that expect
// content render something meaningful in the preview.
func DefaultChildren(componentName string) string {
	lower := strings.ToLower(componentName)
	if strings.Contains(lower, "button") {
		return "Click Me"
	}
	if strings.Contains(lower, "card") {
		return "<div style={{ padding: '20px' }}>Card Content</div>"
	}
	return "Preview Content"
}

// escapeScript keeps generated code from terminating the enclosing tag.
func escapeScript(s string) string {
	return strings.ReplaceAll(s, "</script", `<\/script`)
}

func escapeStyle(s string) string {
	return strings.ReplaceAll(s, "</style", `<\/style`)
}

// BuildDocument renders a complete standalone HTML document for an artifact.
// The JSX is compiled in the browser with Babel standalone against the React
// UMD bundles, and runtime failures are rendered inline instead of leaving a
// blank frame. Every call rebuilds the whole document from the artifact, so
// the preview never carries state over from a previous generation.
func BuildDocument(artifact *entity.Artifact) string {
	if artifact == nil || strings.TrimSpace(artifact.Jsx) == "" {
		return emptyDocument
	}

	componentName := ExtractComponentName(artifact.Jsx)
	children := DefaultChildren(componentName)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Component Preview</title>\n")
	b.WriteString("<script crossorigin src=\"https://unpkg.com/react@18/umd/react.production.min.js\"></script>\n")
	b.WriteString("<script crossorigin src=\"https://unpkg.com/react-dom@18/umd/react-dom.production.min.js\"></script>\n")
	b.WriteString("<script src=\"https://unpkg.com/@babel/standalone/babel.min.js\"></script>\n")
	b.WriteString("<style>\nbody { margin: 0; padding: 16px; font-family: sans-serif; }\n")
	b.WriteString(".preview-error { background: #fef2f2; color: #991b1b; padding: 12px; border-radius: 6px; font-size: 14px; white-space: pre-wrap; }\n")
	b.WriteString(escapeStyle(artifact.Css))
	b.WriteString("\n</style>\n</head>\n<body>\n<div id=\"root\"></div>\n")
	b.WriteString("<script>\n")
	b.WriteString("window.addEventListener('error', function (e) {\n")
	b.WriteString("  var root = document.getElementById('root');\n")
	b.WriteString("  root.innerHTML = '<div class=\"preview-error\"></div>';\n")
	b.WriteString("  root.firstChild.textContent = e.message || 'Failed to render component';\n")
	b.WriteString("});\n")
	b.WriteString("</script>\n")
	b.WriteString("<script type=\"text/babel\">\n")
	b.WriteString(escapeScript(artifact.Jsx))
	b.WriteString("\n\nfunction PreviewWrapper() {\n  return (\n    <")
	b.WriteString(componentName)
	b.WriteString(">\n      ")
	b.WriteString(children)
	b.WriteString("\n    </")
	b.WriteString(componentName)
	b.WriteString(">\n  );\n}\n\n")
	b.WriteString("ReactDOM.createRoot(document.getElementById('root')).render(<PreviewWrapper />);\n")
	b.WriteString("</script>\n</body>\n</html>\n")
	return b.String()
}

const emptyDocument = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Component Preview</title>
<style>body { margin: 0; display: flex; align-items: center; justify-content: center; height: 100vh; font-family: sans-serif; color: #6b7280; }</style>
</head>
<body>
<p>No component code to preview</p>
</body>
</html>
`

// ExportBundle concatenates the artifact into a single downloadable file
// with a generation banner.
func ExportBundle(artifact *entity.Artifact, generatedAt time.Time) (filename, content string) {
	filename = fmt.Sprintf("component-%s.txt", generatedAt.Format("2006-01-02"))
	content = fmt.Sprintf("// Component.jsx\n%s\n\n/* styles.css */\n%s\n\n/* Generated by GenUI - %s */",
		artifact.Jsx, artifact.Css, generatedAt.Format("1/2/2006, 3:04:05 PM"))
	return filename, content
}
