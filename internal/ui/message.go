package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the console.
type MsgKind int

// Msg represents all possible messages in the console (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgTick MsgKind = iota
	MsgServerStopped
)

// tickMsg is the constructor for [MsgTick]
func tickMsg(t time.Time) Msg {
	return Msg{kind: MsgTick, data: t}
}

// serverStoppedMsg is the constructor for [MsgServerStopped]
func serverStoppedMsg(err error) Msg {
	return Msg{kind: MsgServerStopped, data: err}
}
