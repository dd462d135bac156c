// Package router keeps the stack of screens behind the TUI and translates
// navigation messages into stack operations.
package router

import (
	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen Screen
}

// PopScreenMsg closes the current screen. Closing the last one quits.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen, e.g. when a
// practice session ends and its summary takes over.
type ReplaceScreenMsg struct {
	Screen Screen
}

// Router is a stack of screens; only the top one receives input.
type Router struct {
	stack []Screen
}

// New returns a Router showing initial.
func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen. With one screen left it returns tea.Quit
// instead, so the session summary can always be dismissed.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return tea.Quit
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace puts s in place of the top screen and returns its Init command.
func (r *Router) Replace(s Screen) tea.Cmd {
	if top := len(r.stack) - 1; top >= 0 {
		r.stack[top] = s
		return s.Init()
	}
	return r.Push(s)
}

// Active is the screen on top, or nil for an empty router.
func (r *Router) Active() Screen {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return nil
}

// Depth reports how many screens are open.
func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages itself and hands everything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case PushScreenMsg:
		return r.Push(m.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(m.Screen)
	}

	top := len(r.stack) - 1
	if top < 0 {
		return nil
	}
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

// View draws the active screen into width x height cells.
func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
