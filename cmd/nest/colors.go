package main

import (
	"github.com/signadot/go-nested/event"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Kinds   map[event.Kind]func(string, ...any) string
	Path    func(string, ...any) string
	Value   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Kinds: map[event.Kind]func(string, ...any) string{
			event.Change:  color.RGB(128, 216, 236).SprintfFunc(),
			event.Add:     color.GreenString,
			event.Remove:  color.RedString,
			event.Sync:    color.BlueString,
			event.Destroy: color.RGB(255, 0, 196).SprintfFunc(),
			event.Error:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		},
		Path:  color.RGB(196, 96, 16).SprintfFunc(),
		Value: color.RGB(74, 92, 138).SprintfFunc(),
	}
}

func (c *Colors) kind(k event.Kind) func(string, ...any) string {
	if f, ok := c.Kinds[k]; ok {
		return f
	}
	return c.Default
}

func colorDefault(f string, args ...any) string {
	return color.New(color.Reset).Sprintf(f, args...)
}
