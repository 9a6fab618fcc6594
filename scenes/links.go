package scenes

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/automoto/retrofolio/content"
	"github.com/automoto/retrofolio/engine"
	"github.com/charmbracelet/log"
)

// LinksFrom builds the victory screen targets from contact details. A bare email address
// becomes a mailto link.
func LinksFrom(c content.Contact) engine.Links {
	links := engine.Links{
		Resume:  c.ResumeURL,
		Profile: c.LinkedIn,
	}
	if c.Email != "" {
		links.Contact = c.Email
		if !strings.HasPrefix(c.Email, "mailto:") {
			links.Contact = "mailto:" + c.Email
		}
	}
	return links
}

// BrowserLinker hands links to the platform's URL opener.
type BrowserLinker struct{}

func (BrowserLinker) Open(url string) error {
	log.Info("opening link", "url", url)
	cmd := openCommand(url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not open %s: %w", url, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

func openCommand(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	return exec.Command("xdg-open", url)
}
