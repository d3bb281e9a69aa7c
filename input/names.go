package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var mouseButtonNames = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "Left",
	ebiten.MouseButtonMiddle: "Middle",
	ebiten.MouseButtonRight:  "Right",
	ebiten.MouseButton3:      "Back",
	ebiten.MouseButton4:      "Forward",
}

var gamepadButtonNames = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:      "RightBottom",
	ebiten.StandardGamepadButtonRightRight:       "RightRight",
	ebiten.StandardGamepadButtonRightLeft:        "RightLeft",
	ebiten.StandardGamepadButtonRightTop:         "RightTop",
	ebiten.StandardGamepadButtonFrontTopLeft:     "FrontTopLeft",
	ebiten.StandardGamepadButtonFrontTopRight:    "FrontTopRight",
	ebiten.StandardGamepadButtonFrontBottomLeft:  "FrontBottomLeft",
	ebiten.StandardGamepadButtonFrontBottomRight: "FrontBottomRight",
	ebiten.StandardGamepadButtonCenterLeft:       "CenterLeft",
	ebiten.StandardGamepadButtonCenterRight:      "CenterRight",
	ebiten.StandardGamepadButtonLeftStick:        "LeftStick",
	ebiten.StandardGamepadButtonRightStick:       "RightStick",
	ebiten.StandardGamepadButtonLeftTop:          "LeftTop",
	ebiten.StandardGamepadButtonLeftBottom:       "LeftBottom",
	ebiten.StandardGamepadButtonLeftLeft:         "LeftLeft",
	ebiten.StandardGamepadButtonLeftRight:        "LeftRight",
	ebiten.StandardGamepadButtonCenterCenter:     "CenterCenter",
}

var gamepadAxisNames = map[ebiten.StandardGamepadAxis]string{
	ebiten.StandardGamepadAxisLeftStickHorizontal:  "LeftStickHorizontal",
	ebiten.StandardGamepadAxisLeftStickVertical:    "LeftStickVertical",
	ebiten.StandardGamepadAxisRightStickHorizontal: "RightStickHorizontal",
	ebiten.StandardGamepadAxisRightStickVertical:   "RightStickVertical",
}

func MouseButtonName(b ebiten.MouseButton) string {
	if name, ok := mouseButtonNames[b]; ok {
		return name
	}
	return strconv.Itoa(int(b))
}

func GamepadButtonName(b ebiten.StandardGamepadButton) string {
	if name, ok := gamepadButtonNames[b]; ok {
		return name
	}
	return strconv.Itoa(int(b))
}

func GamepadAxisName(a ebiten.StandardGamepadAxis) string {
	if name, ok := gamepadAxisNames[a]; ok {
		return name
	}
	return strconv.Itoa(int(a))
}

// ParseMouseButton accepts the names produced by MouseButtonName, case-insensitively.
func ParseMouseButton(s string) (ebiten.MouseButton, error) {
	for b, name := range mouseButtonNames {
		if strings.EqualFold(name, s) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: mouse button %q", ErrUnknownName, s)
}

func ParseGamepadButton(s string) (ebiten.StandardGamepadButton, error) {
	for b, name := range gamepadButtonNames {
		if strings.EqualFold(name, s) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: gamepad button %q", ErrUnknownName, s)
}

func ParseGamepadAxis(s string) (ebiten.StandardGamepadAxis, error) {
	for a, name := range gamepadAxisNames {
		if strings.EqualFold(name, s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: gamepad axis %q", ErrUnknownName, s)
}

// ParseControl parses the form produced by Control.String: "key:W",
// "mouse:Left", "pad:RightBottom" or "pad1:RightBottom".
func ParseControl(s string) (Control, error) {
	prefix, name, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || name == "" {
		return Control{}, fmt.Errorf("%w: control %q (want <device>:<name>)", ErrUnknownName, s)
	}
	prefix = strings.ToLower(prefix)

	switch {
	case prefix == "key":
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return Control{}, fmt.Errorf("%w: key %q", ErrUnknownName, name)
		}
		return Key(k), nil
	case prefix == "mouse":
		b, err := ParseMouseButton(name)
		if err != nil {
			return Control{}, err
		}
		return MouseButton(b), nil
	case strings.HasPrefix(prefix, "pad"):
		gamepad := 0
		if idx := strings.TrimPrefix(prefix, "pad"); idx != "" {
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 {
				return Control{}, fmt.Errorf("%w: gamepad index %q", ErrUnknownName, idx)
			}
			gamepad = n
		}
		b, err := ParseGamepadButton(name)
		if err != nil {
			return Control{}, err
		}
		return GamepadButton(b, ebiten.GamepadID(gamepad)), nil
	default:
		return Control{}, fmt.Errorf("%w: device %q", ErrUnknownName, prefix)
	}
}
