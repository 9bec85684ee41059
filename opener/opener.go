package opener

import (
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Browser opens external links in a new browsing context.
type Browser struct {
	Command    string // Command to open a URL on shell
	Foreground bool   // Hand the terminal to the command until it exits
}

// Msg for when the browser has been launched (or has exited, in the
// foreground case).
type OpenedMsg struct {
	URL string
	Err error
}

// DefaultCommand is the platform's "open this URL" command.
func DefaultCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	default:
		return "xdg-open"
	}
}

func (b Browser) command(url string) *exec.Cmd {
	fields := strings.Fields(b.Command)
	if len(fields) == 0 {
		fields = strings.Fields(DefaultCommand())
	}
	args := append(fields[1:], url)
	return exec.Command(fields[0], args...)
}

// Open launches the browser on url.
func (b Browser) Open(url string) tea.Cmd {
	c := b.command(url)
	if b.Foreground {
		return tea.ExecProcess(c, func(err error) tea.Msg {
			return OpenedMsg{URL: url, Err: err}
		})
	}
	return func() tea.Msg {
		if err := c.Start(); err != nil {
			return OpenedMsg{URL: url, Err: err}
		}
		// reap the child so it doesn't linger as a zombie
		go c.Wait()
		return OpenedMsg{URL: url}
	}
}
