//go:build stm32 && nucleof446re

// Demo firmware for the NUCLEO-F446RE: echoes USART1 with receive-to-idle, logs
// the user button through the EXTI watcher, counts presses into flash, reads an
// AHT20 on I2C1 and keeps the independent watchdog fed. Interrupt handlers only
// push trace records; everything printed comes from the main loop.
package main

import (
	"context"
	"time"

	"tinygo.org/x/drivers/aht20"

	"escw-stm32/errcode"
	"escw-stm32/internal/board"
	"escw-stm32/peripheral/flash"
	"escw-stm32/peripheral/gpio"
	"escw-stm32/peripheral/i2c"
	"escw-stm32/peripheral/spi"
	"escw-stm32/peripheral/uart"
	"escw-stm32/peripheral/wdg"
	"escw-stm32/trace"
	"escw-stm32/x/conv"
)

const (
	// Sector 7 is the last 128 KiB sector of the F446RE.
	counterSector = 7
	counterAddr   = 0x0806_0000

	sensorEvery = 2 * time.Second
	kickEvery   = 250 * time.Millisecond
)

var (
	led    = gpio.IO{Port: gpio.PortA, Pin: gpio.P5}
	button = gpio.IO{Port: gpio.PortC, Pin: gpio.P13}
)

func main() {
	println("[demo] boot board=" + board.Name())
	time.Sleep(500 * time.Millisecond)

	ctx := context.Background()
	ring := trace.NewRing(64)

	dog, err := wdg.Independent()
	if err != nil {
		println("[demo] no watchdog:", err.Error())
	}

	echo, rxDone := startEcho(ring)
	watcher := startButton(ctx, ring)
	sensor := startSensor(ring)
	spiSelfTest(ring)

	fl := flash.New()
	presses := uint32(0)
	lastDrops := uint32(0)

	kick := time.NewTicker(kickEvery)
	sample := time.NewTicker(sensorEvery)
	line := make([]byte, 0, 48)

	for {
		select {
		case n := <-rxDone:
			if echo != nil {
				echoBack(echo, n)
			}
		case ev := <-watcher.Events():
			if ev.Edge != gpio.EdgeRising {
				continue
			}
			led.Toggle()
			presses++
			println("[demo] button " + ev.IO.String() + " presses=" + string(conv.AppendUint(nil, uint64(presses))))
			storeCount(fl, presses)
		case <-sample.C:
			if sensor != nil {
				readSensor(sensor)
			}
		case <-kick.C:
			if err := dog.Refresh(); err != nil && errcode.Of(err) != errcode.Param {
				println("[demo] watchdog refresh:", err.Error())
			}
		case <-ring.Readable():
		}
		ring.Drain(func(r trace.Record) {
			line = trace.AppendLine(line[:0], r)
			println(string(line))
		})
		if d := ring.Dropped(); d != lastDrops {
			lastDrops = d
			println("[demo] trace drops=" + string(conv.AppendUint(nil, uint64(d))))
		}
	}
}

var echoBuf [64]byte

// startEcho arms a receive-to-idle on USART1. The handler pushes every event to
// the ring and passes completed sizes to the main loop.
func startEcho(ring *trace.Ring) (*uart.UART, <-chan uint16) {
	done := make(chan uint16, 4)
	u, err := uart.New(uart.UART1)
	if err != nil {
		println("[demo] uart1:", err.Error())
		return nil, done
	}
	_ = u.SetHandler(func(ev uart.Event, _ uint32) {
		ring.Push(trace.UART(uart.UART1, ev))
		if ev.Kind == uart.RxCompleted {
			select {
			case done <- ev.Size:
			default:
			}
		}
	})
	if err := u.ReceiveIT(echoBuf[:]); err != nil {
		println("[demo] uart1 receive:", err.Error())
	}
	return u, done
}

func echoBack(u *uart.UART, n uint16) {
	if n > 0 {
		if err := u.Transmit(echoBuf[:n]); err != nil {
			println("[demo] echo:", err.Error())
		}
	}
	if err := u.ReceiveIT(echoBuf[:]); err != nil {
		println("[demo] uart1 receive:", err.Error())
	}
}

func startButton(ctx context.Context, ring *trace.Ring) *gpio.Watcher {
	w := gpio.NewWatcher(8, 8)
	w.Tap(func(p gpio.Pin) { ring.Push(trace.EXTI(p)) })
	w.Start(ctx)
	// B1 is active low.
	if _, err := w.Watch(button, gpio.EdgeRising, 30*time.Millisecond, true); err != nil {
		println("[demo] button:", err.Error())
	}
	return w
}

func storeCount(fl *flash.Flash, n uint32) {
	if err := fl.Erase(flash.Bank1, counterSector, 1); err != nil {
		println("[flash] erase:", err.Error())
		return
	}
	b := [4]byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	if err := fl.Program(counterAddr, b[:]); err != nil {
		println("[flash] program:", err.Error())
		return
	}
	println("[flash] stored count at 0x" + string(conv.AppendHex32(nil, counterAddr)))
}

func startSensor(ring *trace.Ring) *aht20.Device {
	m, err := i2c.NewMaster(i2c.I2C1)
	if err != nil {
		println("[demo] i2c1:", err.Error())
		return nil
	}
	_ = m.SetHandler(func(ev i2c.Event, _ uint32) { ring.Push(trace.I2C(i2c.I2C1, ev)) })
	if err := m.DeviceReady(aht20.Address); err != nil {
		println("[demo] aht20 not found:", err.Error())
		return nil
	}
	d := aht20.New(m)
	d.Configure()
	return &d
}

func readSensor(d *aht20.Device) {
	if err := d.Read(); err != nil {
		println("[demo] aht20 read:", err.Error())
		return
	}
	b := append([]byte("[demo] aht20 dC="), conv.AppendInt(nil, int64(d.DeciCelsius()))...)
	b = append(b, " dRH="...)
	b = conv.AppendInt(b, int64(d.DeciRelHumidity()))
	println(string(b))
}

// spiSelfTest expects MOSI jumpered to MISO on SPI1.
func spiSelfTest(ring *trace.Ring) {
	s, err := spi.New(spi.SPI1)
	if err != nil {
		println("[demo] spi1:", err.Error())
		return
	}
	_ = s.SetHandler(func(ev spi.Event, _ uint32) { ring.Push(trace.SPI(spi.SPI1, ev)) })
	got, err := s.Transfer(0xA5)
	switch {
	case err != nil:
		println("[demo] spi1 loopback:", err.Error())
	case got != 0xA5:
		println("[demo] spi1 loopback mismatch 0x" + string(conv.AppendHex32(nil, uint32(got))))
	default:
		println("[demo] spi1 loopback ok")
	}
}
