// This file is part of Padmux.
//
// Padmux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padmux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padmux.  If not, see <https://www.gnu.org/licenses/>.

package prefs

// DefaultConfigFile is the name of the configuration file used when no other
// file is specified. See the paths package for where the file is placed.
const DefaultConfigFile = "padmux.cfg"

// Config is the configuration of the input system. It owns every option in
// the configuration file.
//
// A Config should be created and loaded once at startup. Backends are given a
// copy of the values with the Values() function and never see the Config
// itself.
type Config struct {
	Fullscreen *Bool

	// button bindings. these are masks over the host button word (see the
	// bindings package)
	KeyA      *UInt
	KeyB      *UInt
	KeyStart  *UInt
	KeyL      *UInt
	KeyR      *UInt
	KeyZ      *UInt
	KeyCUp    *UInt
	KeyCDown  *UInt
	KeyCLeft  *UInt
	KeyCRight *UInt

	// stick bindings. these are keyboard scancodes
	KeyStickUp    *UInt
	KeyStickDown  *UInt
	KeyStickLeft  *UInt
	KeyStickRight *UInt

	// analog stick magnitude (out of 128) below which the stick is centred
	Deadzone *UInt

	// fraction of analog trigger travel at which the trigger counts as
	// pressed
	TriggerThreshold *Float

	reg *Registry
}

// NewConfig is the preferred method of initialisation for the Config type.
// All options are set to their default values.
func NewConfig() *Config {
	cfg := &Config{
		Fullscreen:       NewBool(false),
		KeyA:             NewUInt(0x004000),
		KeyB:             NewUInt(0x008000),
		KeyStart:         NewUInt(0x000008),
		KeyL:             NewUInt(0x001000),
		KeyR:             NewUInt(0x000200),
		KeyZ:             NewUInt(0x000100 | 0x002000),
		KeyCUp:           NewUInt(0x000010),
		KeyCDown:         NewUInt(0x000040),
		KeyCLeft:         NewUInt(0x000080),
		KeyCRight:        NewUInt(0x000020),
		KeyStickUp:       NewUInt(0x11),
		KeyStickDown:     NewUInt(0x1f),
		KeyStickLeft:     NewUInt(0x1e),
		KeyStickRight:    NewUInt(0x20),
		Deadzone:         NewUInt(0x20),
		TriggerThreshold: NewFloat(30.0 * 256.0 / 32768.0),
	}

	// the order of the table is the order in which options are written to
	// the configuration file. new options should be added to the end
	cfg.reg = NewRegistry(
		Option{Name: "fullscreen", Value: cfg.Fullscreen},
		Option{Name: "key_a", Value: cfg.KeyA},
		Option{Name: "key_b", Value: cfg.KeyB},
		Option{Name: "key_start", Value: cfg.KeyStart},
		Option{Name: "key_l", Value: cfg.KeyL},
		Option{Name: "key_r", Value: cfg.KeyR},
		Option{Name: "key_z", Value: cfg.KeyZ},
		Option{Name: "key_cup", Value: cfg.KeyCUp},
		Option{Name: "key_cdown", Value: cfg.KeyCDown},
		Option{Name: "key_cleft", Value: cfg.KeyCLeft},
		Option{Name: "key_cright", Value: cfg.KeyCRight},
		Option{Name: "key_stickup", Value: cfg.KeyStickUp},
		Option{Name: "key_stickdown", Value: cfg.KeyStickDown},
		Option{Name: "key_stickleft", Value: cfg.KeyStickLeft},
		Option{Name: "key_stickright", Value: cfg.KeyStickRight},
		Option{Name: "deadzone", Value: cfg.Deadzone},
		Option{Name: "trigger_threshold", Value: cfg.TriggerThreshold},
	)

	return cfg
}

// Registry returns the option table for the configuration.
func (cfg *Config) Registry() *Registry {
	return cfg.reg
}

// Load is a convenience function for Registry().Load().
func (cfg *Config) Load(path string) {
	cfg.reg.Load(path)
}

// Save is a convenience function for Registry().Save().
func (cfg *Config) Save(path string) {
	cfg.reg.Save(path)
}

// Values is a copy of the configuration values at the moment Values() was
// called. Changes to the Config are not reflected in an existing Values
// instance.
type Values struct {
	Fullscreen bool

	KeyA      uint32
	KeyB      uint32
	KeyStart  uint32
	KeyL      uint32
	KeyR      uint32
	KeyZ      uint32
	KeyCUp    uint32
	KeyCDown  uint32
	KeyCLeft  uint32
	KeyCRight uint32

	KeyStickUp    uint32
	KeyStickDown  uint32
	KeyStickLeft  uint32
	KeyStickRight uint32

	Deadzone         uint32
	TriggerThreshold float32
}

// Values returns a copy of the current configuration values.
func (cfg *Config) Values() Values {
	return Values{
		Fullscreen:       cfg.Fullscreen.Get(),
		KeyA:             cfg.KeyA.Get(),
		KeyB:             cfg.KeyB.Get(),
		KeyStart:         cfg.KeyStart.Get(),
		KeyL:             cfg.KeyL.Get(),
		KeyR:             cfg.KeyR.Get(),
		KeyZ:             cfg.KeyZ.Get(),
		KeyCUp:           cfg.KeyCUp.Get(),
		KeyCDown:         cfg.KeyCDown.Get(),
		KeyCLeft:         cfg.KeyCLeft.Get(),
		KeyCRight:        cfg.KeyCRight.Get(),
		KeyStickUp:       cfg.KeyStickUp.Get(),
		KeyStickDown:     cfg.KeyStickDown.Get(),
		KeyStickLeft:     cfg.KeyStickLeft.Get(),
		KeyStickRight:    cfg.KeyStickRight.Get(),
		Deadzone:         cfg.Deadzone.Get(),
		TriggerThreshold: cfg.TriggerThreshold.Get(),
	}
}

// DefaultValues returns the default configuration values.
func DefaultValues() Values {
	return NewConfig().Values()
}
