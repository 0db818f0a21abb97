//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	displayWidth   = 128
	displayHeight  = 64
	displayAddress = 0x3C
)

type boardHAL struct {
	logger  *uartLogger
	led     *pinLED
	display Display
	buttons *pinButtons
	stick   *adcStick
	clock   Clock
}

// New brings up the board: UART0 log, LED, SSD1306 on I2C1, joystick ADC and
// the A/B buttons.
//
// On error the returned HAL still carries whatever came up (at least the
// logger and LED) so the caller can report the failure.
func New() (HAL, error) {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	clock := newWallClock()
	h := &boardHAL{
		logger:  &uartLogger{uart: uart},
		led:     &pinLED{pin: machine.LED},
		display: boardDisplay{},
		clock:   clock,
	}

	i2c := machine.I2C1
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP14,
		SCL:       machine.GP15,
	}); err != nil {
		return h, fmt.Errorf("i2c1: %w", err)
	}

	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Width:    displayWidth,
		Height:   displayHeight,
		Address:  displayAddress,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	fb := NewMonoFramebuffer(displayWidth, displayHeight, func(buf []byte) error {
		if err := dev.SetBuffer(buf); err != nil {
			return err
		}
		return dev.Display()
	})
	h.display = boardDisplay{fb: fb}

	machine.InitADC()
	adc := machine.ADC{Pin: machine.GP27}
	adc.Configure(machine.ADCConfig{})
	h.stick = &adcStick{adc: adc}

	buttons := &pinButtons{clock: clock}
	buttons.pins[ButtonA] = machine.GP5
	buttons.pins[ButtonB] = machine.GP6
	if err := buttons.configure(); err != nil {
		return h, fmt.Errorf("buttons: %w", err)
	}
	h.buttons = buttons

	return h, nil
}

func (h *boardHAL) Logger() Logger   { return h.logger }
func (h *boardHAL) LED() LED         { return h.led }
func (h *boardHAL) Display() Display { return h.display }
func (h *boardHAL) Buttons() Buttons { return h.buttons }
func (h *boardHAL) Joystick() Analog { return h.stick }
func (h *boardHAL) Clock() Clock     { return h.clock }

// Entropy reads the RP2040 ring oscillator. The wall clock is a poor
// fallback: it only counts from boot.
func (h *boardHAL) Entropy() uint32 {
	if v, err := machine.GetRNG(); err == nil {
		return v
	}
	return uint32(h.clock.NowMicros())
}

type boardDisplay struct {
	fb *MonoFramebuffer
}

// Framebuffer returns nil until the display is up.
func (d boardDisplay) Framebuffer() Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}
