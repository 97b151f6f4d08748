//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package cli

import "os"

// isTerminal assumes a terminal where termios is unavailable; liner then
// decides for itself whether it can edit lines.
func isTerminal(*os.File) bool {
	return true
}
