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

package sdlpad

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padmux/bindings"
	"github.com/jetsetilly/padmux/logger"
	"github.com/jetsetilly/padmux/pad"
)

// the value an analog axis must exceed for the right stick to press a C
// button. half of full travel
const cThreshold = 0x4000

// analog stick values are scaled down by this amount to fit the pad range
const stickScale = 0x100

// maximum value of an analog trigger
const triggerMax = 32767

var buttonMap = []struct {
	button sdl.GameControllerButton
	host   bindings.HostButtons
}{
	{sdl.CONTROLLER_BUTTON_A, bindings.HostCross},
	{sdl.CONTROLLER_BUTTON_B, bindings.HostCircle},
	{sdl.CONTROLLER_BUTTON_X, bindings.HostSquare},
	{sdl.CONTROLLER_BUTTON_Y, bindings.HostTriangle},
	{sdl.CONTROLLER_BUTTON_BACK, bindings.HostSelect},
	{sdl.CONTROLLER_BUTTON_START, bindings.HostStart},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, bindings.HostLTrigger},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, bindings.HostRTrigger},
	{sdl.CONTROLLER_BUTTON_DPAD_UP, bindings.HostUp},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, bindings.HostDown},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, bindings.HostLeft},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, bindings.HostRight},
}

// axes is the state of the analog inputs of the controller
type axes struct {
	leftX, leftY   int16
	rightX, rightY int16
	triggerL       int16
	triggerR       int16
}

// Gamepad implements the controller.Backend interface for an SDL game
// controller.
type Gamepad struct {
	bindings bindings.Map

	initialised bool
	ctrl        *sdl.GameController

	// the detached message is logged only once per detachment
	detached logger.Once
}

// NewGamepad is the preferred method of initialisation for the Gamepad type.
func NewGamepad(m bindings.Map) *Gamepad {
	return &Gamepad{
		bindings: m,
	}
}

func (gp *Gamepad) String() string {
	return "sdl gamepad"
}

// Init implements the controller.Backend interface. The first attached game
// controller is opened. It is not an error for there to be no controller.
func (gp *Gamepad) Init() {
	if !gp.initialised {
		err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER)
		if err != nil {
			logger.Warnf(logger.Allow, "sdlpad", "cannot initialise game controllers: %v", err)
			return
		}
		gp.initialised = true
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		ctrl := sdl.GameControllerOpen(i)
		if ctrl != nil && ctrl.Attached() {
			logger.Logf(logger.Allow, "sdlpad", "game controller: %s", ctrl.Name())
			gp.ctrl = ctrl
			return
		}
	}

	logger.Log(logger.Allow, "sdlpad", "no game controller found")
}

// Read implements the controller.Backend interface.
func (gp *Gamepad) Read(frame *pad.Frame) {
	if gp.ctrl == nil {
		return
	}

	sdl.GameControllerUpdate()

	if !gp.ctrl.Attached() {
		logger.Warn(&gp.detached, "sdlpad", "game controller detached")
		return
	}
	gp.detached.Reset()

	var host bindings.HostButtons
	for _, b := range buttonMap {
		if gp.ctrl.Button(b.button) != 0 {
			host |= b.host
		}
	}

	a := axes{
		leftX:    gp.ctrl.Axis(sdl.CONTROLLER_AXIS_LEFTX),
		leftY:    gp.ctrl.Axis(sdl.CONTROLLER_AXIS_LEFTY),
		rightX:   gp.ctrl.Axis(sdl.CONTROLLER_AXIS_RIGHTX),
		rightY:   gp.ctrl.Axis(sdl.CONTROLLER_AXIS_RIGHTY),
		triggerL: gp.ctrl.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT),
		triggerR: gp.ctrl.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT),
	}

	contribute(frame, gp.bindings, host, a)
}

// Close the game controller and the SDL subsystem.
func (gp *Gamepad) Close() error {
	if gp.ctrl != nil {
		gp.ctrl.Close()
		gp.ctrl = nil
	}
	if gp.initialised {
		sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
		gp.initialised = false
	}
	return nil
}

// contribute the host buttons and analog state to the frame.
func contribute(frame *pad.Frame, m bindings.Map, host bindings.HostButtons, a axes) {
	if m.TriggerPressed(float32(a.triggerL) / triggerMax) {
		host |= bindings.HostLTrigger
	}
	if m.TriggerPressed(float32(a.triggerR) / triggerMax) {
		host |= bindings.HostRTrigger
	}

	buttons := m.Buttons(host)

	// the right stick is the C buttons
	if a.rightX < -cThreshold {
		buttons |= pad.CLeft
	} else if a.rightX > cThreshold {
		buttons |= pad.CRight
	}
	if a.rightY < -cThreshold {
		buttons |= pad.CUp
	} else if a.rightY > cThreshold {
		buttons |= pad.CDown
	}

	frame.Press(buttons)

	// positive values on the SDL y axis are down
	x, y, ok := m.Stick(int(a.leftX)/stickScale, -int(a.leftY)/stickScale)
	if ok {
		frame.SetStick(x, y)
	}
}
