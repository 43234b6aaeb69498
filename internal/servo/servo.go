// Package servo drives the robot's two servos, the flipper and the
// rotating base, through the serial-attached controller board. The
// board speaks a line protocol: one command per robot move, answered
// with "ok" when the stroke completes.
package servo

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"

	"github.com/cubepilot/cubepilot"
)

// Config holds the serial link settings.
type Config struct {
	// Port is the serial device path, e.g. /dev/ttyUSB0.
	Port string
	// BaudRate defaults to 115200.
	BaudRate int
	// MoveTimeout bounds how long one servo stroke may take before
	// the link is considered dead.
	MoveTimeout time.Duration
}

// DefaultConfig returns the controller board's factory settings.
func DefaultConfig(port string) Config {
	return Config{
		Port:        port,
		BaudRate:    115200,
		MoveTimeout: 5 * time.Second,
	}
}

// Driver is a serial connection to the servo controller.
type Driver struct {
	port   serial.Port
	reader *bufio.Reader
	cfg    Config
}

// Open connects to the controller and waits for its ready banner.
func Open(cfg Config) (*Driver, error) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}
	if cfg.MoveTimeout == 0 {
		cfg.MoveTimeout = 5 * time.Second
	}
	mode := &serial.Mode{BaudRate: cfg.BaudRate}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("servo: open %s: %w", cfg.Port, err)
	}
	d := &Driver{
		port:   port,
		reader: bufio.NewReader(port),
		cfg:    cfg,
	}
	return d, nil
}

// Execute runs a robot move string, one stroke at a time, waiting for
// the controller's acknowledgment between strokes.
func (d *Driver) Execute(ctx context.Context, moves string) error {
	tokens, err := cubepilot.ParseMoveTokens(moves)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.stroke(t); err != nil {
			return err
		}
	}
	return nil
}

// stroke sends one token and waits for the ack.
func (d *Driver) stroke(t cubepilot.MoveToken) error {
	if _, err := fmt.Fprintf(d.port, "%s\n", t.String()); err != nil {
		return fmt.Errorf("servo: write %s: %w", t, err)
	}
	if err := d.port.SetReadTimeout(d.cfg.MoveTimeout); err != nil {
		return fmt.Errorf("servo: set timeout: %w", err)
	}
	line, err := d.reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("servo: no ack for %s: %w", t, err)
	}
	if reply := strings.TrimSpace(line); reply != "ok" {
		return fmt.Errorf("servo: controller rejected %s: %q", t, reply)
	}
	return nil
}

// Close releases the serial port.
func (d *Driver) Close() error {
	return d.port.Close()
}
