package setup

import (
	"fmt"
	"os"
	"strings"
)

const (
	bindingsBegin = "# >>> tabhop keybindings >>>"
	bindingsEnd   = "# <<< tabhop keybindings <<<"
)

// tmuxBindings is the marker-delimited block appended to tmux.conf. The
// markers let a later install replace the block instead of duplicating it.
var tmuxBindings = strings.Join([]string{
	bindingsBegin,
	`bind-key -n M-Left  run-shell "tabhop left"`,
	`bind-key -n M-Right run-shell "tabhop right"`,
	`bind-key -n M-Up    run-shell "tabhop up"`,
	`bind-key -n M-Down  run-shell "tabhop down"`,
	`bind-key -n M-p     run-shell "tabhop prev"`,
	`bind-key -n M-n     run-shell "tabhop next"`,
	bindingsEnd,
}, "\n")

// InstallTmuxBindings writes the tabhop binding block into the tmux config at
// path. Re-running replaces an existing block in place, so upgrades pick up
// new bindings without stacking duplicates.
func InstallTmuxBindings(path string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated := upsertBindings(string(existing))
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func upsertBindings(conf string) string {
	begin := strings.Index(conf, bindingsBegin)
	end := strings.Index(conf, bindingsEnd)

	if begin >= 0 && end > begin {
		return conf[:begin] + tmuxBindings + conf[end+len(bindingsEnd):]
	}

	if conf == "" {
		return tmuxBindings + "\n"
	}
	if !strings.HasSuffix(conf, "\n") {
		conf += "\n"
	}
	return conf + "\n" + tmuxBindings + "\n"
}
