// Package shell generates the line-editor widgets that bind ding to a key.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	// ShellBash represents bash shell
	ShellBash = "bash"
	// ShellZsh represents zsh shell
	ShellZsh = "zsh"
	// ShellFish represents fish shell
	ShellFish = "fish"
	// ShellAuto asks DetectShell to look at $SHELL
	ShellAuto = "auto"

	// DefaultKey is the default key binding in caret notation
	DefaultKey = "^X^D"
)

// SupportedShells lists the shells a widget can be generated for
var SupportedShells = []string{ShellBash, ShellZsh, ShellFish}

// DetectShell determines the shell type based on the flag or environment.
func DetectShell(shellFlag string) string {
	if shellFlag != "" && shellFlag != ShellAuto {
		return shellFlag
	}

	shell := filepath.Base(os.Getenv("SHELL"))
	switch {
	case strings.Contains(shell, ShellZsh):
		return ShellZsh
	case strings.Contains(shell, ShellFish):
		return ShellFish
	default:
		return ShellBash
	}
}

// WidgetOptions are the values baked into a generated widget
type WidgetOptions struct {
	Shell string
	// Key is the binding in caret notation, e.g. ^X^D
	Key string
	// Binary is the ding executable to call
	Binary     string
	Spec       string
	PathPrefix string
	Version    string
}

type widgetData struct {
	WidgetOptions
	ZshKey  string
	BashKey string
	FishKey string
}

// GenerateWidget renders the widget code for opts.Shell
func GenerateWidget(opts WidgetOptions) (string, error) {
	var body string
	switch opts.Shell {
	case ShellBash:
		body = bashWidgetTemplate
	case ShellZsh:
		body = zshWidgetTemplate
	case ShellFish:
		body = fishWidgetTemplate
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: %s)", opts.Shell, strings.Join(SupportedShells, ", "))
	}

	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.Binary == "" {
		opts.Binary = "ding"
	}

	keys, err := parseKey(opts.Key)
	if err != nil {
		return "", err
	}

	funcs := sprig.TxtFuncMap()
	funcs["shquote"] = shellQuote

	tmpl, err := template.New(opts.Shell).Funcs(funcs).Parse(commandTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse command template: %w", err)
	}
	if tmpl, err = tmpl.Parse(body); err != nil {
		return "", fmt.Errorf("failed to parse %s widget template: %w", opts.Shell, err)
	}

	data := widgetData{
		WidgetOptions: opts,
		ZshKey:        keys.render("^", strings.ToUpper),
		BashKey:       keys.render(`\C-`, strings.ToLower),
		FishKey:       keys.render(`\c`, strings.ToLower),
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render %s widget: %w", opts.Shell, err)
	}
	return b.String(), nil
}

// shellQuote wraps s in single quotes for POSIX shells and fish
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./:=@%+,", r):
		return false
	}
	return true
}

type keyStroke struct {
	ctrl bool
	char string
}

type keySequence []keyStroke

// parseKey reads caret notation: ^X is Ctrl+X, anything else is literal
func parseKey(seq string) (keySequence, error) {
	var keys keySequence
	for i := 0; i < len(seq); i++ {
		if seq[i] != '^' {
			keys = append(keys, keyStroke{char: string(seq[i])})
			continue
		}
		if i+1 >= len(seq) {
			return nil, fmt.Errorf("invalid key binding %q: trailing ^", seq)
		}
		i++
		keys = append(keys, keyStroke{ctrl: true, char: string(seq[i])})
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty key binding")
	}
	return keys, nil
}

func (k keySequence) render(ctrlPrefix string, ctrlCase func(string) string) string {
	var b strings.Builder
	for _, stroke := range k {
		if stroke.ctrl {
			b.WriteString(ctrlPrefix)
			b.WriteString(ctrlCase(stroke.char))
			continue
		}
		b.WriteString(stroke.char)
	}
	return b.String()
}
