package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// ShowInPager displays content in ov and blocks until the user leaves it.
// The caller must own the terminal.
func ShowInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to start pager: %w", err)
	}

	// Leave nothing behind on the screen after exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// PagerOps runs the pager on behalf of a running Bubble Tea program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	show    func(string) error
}

// NewPagerOps creates pager operations backed by ov
func NewPagerOps() *PagerOps {
	return &PagerOps{show: ShowInPager}
}

// SetProgram sets the program whose terminal is borrowed
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show releases the terminal, pages content and restores the terminal
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to leave the alternate screen before taking it back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return p.show(content)
}
