package domain

import "strings"

// Key - логическая клавиша управления персонажем
type Key uint8

const (
	KeyUnknown Key = iota
	KeyForward
	KeyBackward
	KeyTurnLeft
	KeyTurnRight
	// KeyEscape не управляется реестром: только одноразовое нажатие (сброс цели)
	KeyEscape
)

// ControlKeys - клавиши движения в фиксированном порядке опроса реестром
var ControlKeys = [...]Key{KeyForward, KeyBackward, KeyTurnLeft, KeyTurnRight}

// Маппинг Domain -> имя клавиши клиента
var keyToName = map[Key]string{
	KeyForward:   "numpad8",
	KeyBackward:  "numpad2",
	KeyTurnLeft:  "left",
	KeyTurnRight: "right",
	KeyEscape:    "escape",
}

var nameToKey = map[string]Key{
	"numpad8": KeyForward,
	"numpad2": KeyBackward,
	"left":    KeyTurnLeft,
	"right":   KeyTurnRight,
	"escape":  KeyEscape,
}

// ParseKey конвертирует имя клавиши клиента в Key
func ParseKey(s string) Key {
	if k, ok := nameToKey[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return KeyUnknown
}

// String возвращает имя клавиши в том виде, в котором его ждет клиент (/sendkey <name>)
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}
