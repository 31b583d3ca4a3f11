package shell

import _ "embed"

// Embedded line-editor widget templates
// These templates are compiled into the binary at build time

//go:embed templates/widget/command.tmpl
var commandTemplate string

//go:embed templates/widget/bash.tmpl
var bashWidgetTemplate string

//go:embed templates/widget/zsh.tmpl
var zshWidgetTemplate string

//go:embed templates/widget/fish.tmpl
var fishWidgetTemplate string
