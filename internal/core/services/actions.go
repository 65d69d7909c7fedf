package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on search results.
type ResultActionService struct {
	extractor driven.MarkupTextExtractor
	goos      string

	// pipe runs a command to completion with stdin; start launches one
	// without waiting. Both are swapped out in tests.
	pipe  func(stdin, name string, args ...string) error
	start func(name string, args ...string) error
}

// NewResultActionService creates a new result action service.
// The extractor turns snippet markup into clipboard text.
func NewResultActionService(extractor driven.MarkupTextExtractor) *ResultActionService {
	return &ResultActionService{
		extractor: extractor,
		goos:      runtime.GOOS,
		pipe:      pipeCommand,
		start:     startCommand,
	}
}

// CopyToClipboard copies the visible text of fragment to the system clipboard.
func (s *ResultActionService) CopyToClipboard(_ context.Context, fragment string) error {
	text := fragment
	if s.extractor != nil {
		if t, err := s.extractor.Text(fragment); err == nil {
			text = t
		}
	}

	switch s.goos {
	case osDarwin:
		return s.pipe(text, "pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			return s.pipe(text, "xclip", "-selection", "clipboard")
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return s.pipe(text, "xsel", "--clipboard", "--input")
		}
		return fmt.Errorf("no clipboard utility found (install xclip or xsel)")
	case osWindows:
		return s.pipe(text, "cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", s.goos)
	}
}

// OpenDocument opens the document's PDF, web page or cover image.
func (s *ResultActionService) OpenDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}

	target := doc.OpenableURL()
	if target == "" {
		return fmt.Errorf("document %q has no link to open", doc.DisplayTitle())
	}

	switch s.goos {
	case osDarwin:
		return s.start("open", target)
	case osLinux:
		return s.start("xdg-open", target)
	case osWindows:
		return s.start("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("unsupported platform: %s", s.goos)
	}
}

func pipeCommand(stdin, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
