package runner

import "strings"

// command is one parsed line of the annotation prompt.
type command struct {
	name string // "" for a bare label value
	arg  string
	raw  string
}

const (
	cmdNext   = "n"
	cmdPrev   = "p"
	cmdJump   = "j"
	cmdClear  = "c"
	cmdSave   = "s"
	cmdFinish = "f"
	cmdQuit   = "q"
	cmdHelp   = "h"
)

// parseCommand splits ":name arg" lines. Anything not starting with ':' is a
// label value; "::x" escapes a label that starts with a colon.
func parseCommand(line string) command {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "::") {
		return command{raw: trimmed[1:]}
	}
	if !strings.HasPrefix(trimmed, ":") {
		return command{raw: trimmed}
	}
	name, arg, _ := strings.Cut(trimmed[1:], " ")
	return command{
		name: strings.ToLower(name),
		arg:  strings.TrimSpace(arg),
		raw:  trimmed,
	}
}
