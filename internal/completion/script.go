package completion

import (
	"fmt"
	"strings"
)

// Bash renders a bash completion script from the flag and command metadata.
func Bash() string {
	var words []string
	for _, cmd := range GetCommands() {
		words = append(words, cmd.Name)
	}
	for _, flag := range GetFlags() {
		words = append(words, "--"+flag.Name)
	}

	var b strings.Builder
	b.WriteString("_podbridge() {\n")
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
	b.WriteString("}\n")
	b.WriteString("complete -F _podbridge podbridge\n")
	return b.String()
}

// Zsh renders a zsh completion script from the flag and command metadata.
func Zsh() string {
	var b strings.Builder
	b.WriteString("#compdef podbridge\n\n")
	b.WriteString("_podbridge() {\n")
	b.WriteString("    local -a commands flags\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range GetCommands() {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, cmd.Description)
	}
	b.WriteString("    )\n")
	b.WriteString("    flags=(\n")
	for _, flag := range GetFlags() {
		if flag.HasValue {
			fmt.Fprintf(&b, "        '--%s=[%s]:%s:_files'\n", flag.Name, flag.Description, strings.ToLower(flag.ValueHint))
		} else {
			fmt.Fprintf(&b, "        '--%s[%s]'\n", flag.Name, flag.Description)
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _arguments $flags '1:command:{_describe command commands}'\n")
	b.WriteString("}\n\n")
	b.WriteString("_podbridge \"$@\"\n")
	return b.String()
}
