package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oomph-ac/museum/oerror"
)

// Kind is the kind of a console command.
type Kind uint8

const (
	// KindNone is an empty line or a comment.
	KindNone Kind = iota
	KindDown
	KindUp
	KindMove
	KindCapture
	KindWait
	KindPose
	KindLook
	KindTeleport
	KindDoors
	KindHelp
	KindQuit
)

// Command is a parsed console line.
type Command struct {
	Kind Kind
	// Key is set for KindDown and KindUp.
	Key string
	// X, Y and Z hold the pointer delta of KindMove and the position of KindTeleport.
	X, Y, Z float32
	// On is set for KindCapture.
	On bool
	// Frames is set for KindWait.
	Frames int
}

// Help lists every command understood by Parse.
const Help = `commands:
  down <key>         press a key, such as w, shift or space
  up <key>           release a key
  tap <key>          press and release a key
  move <dx> <dy>     move the pointer
  capture on|off     capture or release the pointer
  wait <frames>      wait for frames to pass
  teleport <x> <y> <z>
  pose               print the pose and floor
  look               print what the viewer is looking at
  doors              print the state of every door
  help
  quit`

// Parse parses a single console line. Lines starting with # are comments.
func Parse(line string) ([]Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return []Command{{Kind: KindNone}}, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "down", "up", "tap":
		if len(args) != 1 {
			return nil, usage(name, "<key>")
		}
		key := args[0]
		if key == "space" {
			key = " "
		}
		switch name {
		case "down":
			return []Command{{Kind: KindDown, Key: key}}, nil
		case "up":
			return []Command{{Kind: KindUp, Key: key}}, nil
		}
		return []Command{{Kind: KindDown, Key: key}, {Kind: KindWait, Frames: 1}, {Kind: KindUp, Key: key}}, nil
	case "move":
		v, err := floats(name, args, 2, "<dx> <dy>")
		if err != nil {
			return nil, err
		}
		return []Command{{Kind: KindMove, X: v[0], Y: v[1]}}, nil
	case "teleport", "tp":
		v, err := floats(name, args, 3, "<x> <y> <z>")
		if err != nil {
			return nil, err
		}
		return []Command{{Kind: KindTeleport, X: v[0], Y: v[1], Z: v[2]}}, nil
	case "capture":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return nil, usage(name, "on|off")
		}
		return []Command{{Kind: KindCapture, On: args[0] == "on"}}, nil
	case "wait":
		if len(args) > 1 {
			return nil, usage(name, "[frames]")
		}
		frames := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return nil, usage(name, "[frames]")
			}
			frames = n
		}
		return []Command{{Kind: KindWait, Frames: frames}}, nil
	case "pose":
		return []Command{{Kind: KindPose}}, nil
	case "look":
		return []Command{{Kind: KindLook}}, nil
	case "doors":
		return []Command{{Kind: KindDoors}}, nil
	case "help", "?":
		return []Command{{Kind: KindHelp}}, nil
	case "quit", "exit":
		return []Command{{Kind: KindQuit}}, nil
	}
	return nil, oerror.New("unknown command %q (try help)", name)
}

func floats(name string, args []string, n int, params string) ([]float32, error) {
	if len(args) != n {
		return nil, usage(name, params)
	}
	v := make([]float32, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func usage(name, params string) error {
	return oerror.New("usage: %s %s", name, params)
}
