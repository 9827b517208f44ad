package protocol

import (
	"encoding/json"
	"fmt"
)

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	NewJoiner
	Start
	Error
	// player intents
	Play
	Draw
	ChooseSuit
	Pass
	// game updates
	Turn
	SelectSuit
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:       "Null",
	NewJoiner:  "NewJoiner",
	Start:      "Start",
	Error:      "Error",
	Play:       "Play",
	Draw:       "Draw",
	ChooseSuit: "ChooseSuit",
	Pass:       "Pass",
	Turn:       "Turn",
	SelectSuit: "SelectSuit",
	GameOver:   "GameOver",
}

var NameToCmd = map[string]Cmd{}

func init() {
	for cmd, name := range CmdNames {
		NameToCmd[name] = cmd
	}
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalJSON sends commands by name, which is what the browser client reads
func (c Cmd) MarshalJSON() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts a command either by name or by number
func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		cmd, ok := NameToCmd[name]
		if !ok {
			return fmt.Errorf("unknown command %q", name)
		}
		*c = cmd
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("could not read command: %w", err)
	}
	if _, ok := CmdNames[Cmd(n)]; !ok {
		return fmt.Errorf("unknown command %d", n)
	}
	*c = Cmd(n)
	return nil
}
