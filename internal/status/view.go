package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	methodStyle = lipgloss.NewStyle().
			Bold(true).
			Width(8).
			Foreground(lipgloss.Color("13"))
)

const maxExampleLen = 50

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n\n")

	b.WriteString(renderConfig(data))
	b.WriteString("\n\n")

	b.WriteString(renderOperations(data))

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📄 Spec: ") + valueStyle.Render(data.SpecPath) + "\n")
	title := data.Title
	if data.APIVersion != "" {
		title += " " + data.APIVersion
	}
	b.WriteString(titleStyle.Render("🏷  API: ") + valueStyle.Render(title) + subtleStyle.Render(" (OpenAPI "+data.OpenAPIVersion+")") + "\n")
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	return b.String()
}

func renderConfig(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Configuration:") + "\n")

	if data.PathPrefix != "" {
		b.WriteString("   " + keyStyle.Render("Path prefix: ") + valueStyle.Render(data.PathPrefix) + "\n")
	}

	if len(data.ConfigFiles) == 0 {
		b.WriteString("   " + subtleStyle.Render("No configuration files found"))
		return b.String()
	}
	for i, path := range data.ConfigFiles {
		b.WriteString(fmt.Sprintf("   %d. %s\n", i+1, valueStyle.Render(path)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderOperations(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("🔗 Operations (%d):", len(data.Operations))) + "\n")

	if len(data.Operations) == 0 {
		b.WriteString("   " + subtleStyle.Render("No operations declared"))
		return b.String()
	}

	for _, op := range data.Operations {
		b.WriteString(renderOperation(op))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderOperation(op Operation) string {
	var b strings.Builder

	b.WriteString("   " + methodStyle.Render(op.Method) + valueStyle.Render(op.Path))
	if op.ID != "" {
		b.WriteString(subtleStyle.Render(" (" + op.ID + ")"))
	}
	b.WriteString("\n")

	if op.Error != "" {
		b.WriteString("      " + errorStyle.Render("✗ "+op.Error) + "\n")
	}

	for _, p := range op.Parameters {
		example := subtleStyle.Render("no example")
		if p.HasExample {
			example = valueStyle.Render(truncateString(p.Example, maxExampleLen))
		}
		marker := successStyle.Render("✓")
		if !p.Completable {
			marker = subtleStyle.Render("-")
		}
		b.WriteString(fmt.Sprintf("      %s %s %s %s\n",
			marker,
			keyStyle.Render(p.Name),
			subtleStyle.Render("["+p.In+"]"),
			example))
	}

	switch {
	case op.Body.Example != "":
		b.WriteString("      " + keyStyle.Render("Body: ") + valueStyle.Render(truncateString(op.Body.Example, maxExampleLen)) + "\n")
	case op.Body.JSON:
		b.WriteString("      " + keyStyle.Render("Body: ") + subtleStyle.Render("application/json, no example") + "\n")
	case op.Body.Declared:
		b.WriteString("      " + keyStyle.Render("Body: ") + subtleStyle.Render("not application/json") + "\n")
	}

	if len(op.Responses) > 0 {
		codes := make([]string, 0, len(op.Responses))
		for _, r := range op.Responses {
			codes = append(codes, r.Code)
		}
		b.WriteString("      " + keyStyle.Render("Responses: ") + valueStyle.Render(strings.Join(codes, ", ")) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func truncateString(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
