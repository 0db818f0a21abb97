//go:build tinygo && baremetal

package hal

import "machine"

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// pinButtons forwards active-low pin interrupts to the edge handler.
//
// The handler must be set before the first edge arrives; earlier edges are dropped.
type pinButtons struct {
	pins    [buttonCount]machine.Pin
	clock   Clock
	handler EdgeHandler
}

func (b *pinButtons) SetEdgeHandler(h EdgeHandler) { b.handler = h }

func (b *pinButtons) configure() error {
	for id := ButtonA; id <= ButtonB; id++ {
		id := id
		pin := b.pins[id]
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		err := pin.SetInterrupt(machine.PinFalling|machine.PinRising, func(p machine.Pin) {
			h := b.handler
			if h == nil {
				return
			}
			e := EdgeRise
			if !p.Get() {
				e = EdgeFall
			}
			h(id, e, b.clock.NowMicros())
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type adcStick struct {
	adc machine.ADC
}

// ReadRaw scales the 16-bit TinyGo sample down to the 12-bit converter range.
func (s *adcStick) ReadRaw() uint16 { return s.adc.Get() >> 4 }
