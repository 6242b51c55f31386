package event

import (
	"fmt"
	"strings"
)

type Action int

const (
	ActionUnknown Action = iota
	ActionRotate
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRestart
)

var actionNames = map[Action]string{
	ActionUnknown:   "unknown",
	ActionRotate:    "rotate",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionSoftDrop:  "softdrop",
	ActionHardDrop:  "harddrop",
	ActionRestart:   "restart",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Action(%d)", int(a))
}

func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if a != ActionUnknown && name == s {
			return a, nil
		}
	}

	return ActionUnknown, fmt.Errorf("unknown action %q", s)
}
