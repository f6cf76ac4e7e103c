// Package bench reads raw ADC codes streamed by a development board over a
// serial port, one decimal code per line, and serves them as a sensor.
package bench

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/itohio/tinytemp/pkg/sensor"
	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the baud rate of the bench sketch.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size of the readings channel.
	DefaultBufferSize = 100
)

// ErrAlreadyConnected is returned by Connect on an open sensor.
var ErrAlreadyConnected = errors.New("already connected")

// Port describes an available serial port.
type Port struct {
	Name        string
	Description string
}

// Serial is a sensor.Sensor fed by a serial port.
type Serial struct {
	port     string
	baudRate int

	conn      io.ReadCloser
	readings  chan sensor.RawSample
	mu        sync.RWMutex
	cancel    context.CancelFunc
	connected bool
}

var _ sensor.Sensor = (*Serial)(nil)

// New creates a Serial sensor for the given port.
func New(port string, baudRate int, bufSize int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	return &Serial{
		port:     port,
		baudRate: baudRate,
		readings: make(chan sensor.RawSample, bufSize),
	}
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(names))
	for _, name := range names {
		result = append(result, Port{
			Name:        name,
			Description: name,
		})
	}

	return result, nil
}

// Connect opens the serial port and starts reading codes.
func (s *Serial) Connect() error {
	port, err := serial.Open(s.port, &serial.Mode{
		BaudRate: s.baudRate,
	})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", s.port, err)
	}

	if err := s.attach(port); err != nil {
		if cerr := port.Close(); cerr != nil {
			log.Printf("Error closing serial port: %v", cerr)
		}
		return err
	}
	return nil
}

// attach starts reading from an already opened stream.
func (s *Serial) attach(conn io.ReadCloser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return ErrAlreadyConnected
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.conn = conn
	s.cancel = cancel
	s.connected = true

	go s.readLines(ctx, conn)

	return nil
}

// Close stops reading and closes the port. A ReadRaw blocked on a closed
// sensor stays blocked; the watchdog is what ends such a cycle.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return nil
	}

	s.cancel()

	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
		s.conn = nil
	}

	s.connected = false

	return nil
}

// IsConnected returns whether the port is open.
func (s *Serial) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// ReadRaw blocks until the next code arrives.
func (s *Serial) ReadRaw() sensor.RawSample {
	return <-s.readings
}

// ReadRawContext is ReadRaw with cancellation.
func (s *Serial) ReadRawContext(ctx context.Context) (sensor.RawSample, error) {
	select {
	case v := <-s.readings:
		return v, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// readLines parses lines into readings until the stream ends or the
// sensor is closed.
func (s *Serial) readLines(ctx context.Context, r io.Reader) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Panic in readLines: %v", rec)
		}
	}()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := parseLine(line)
		if err != nil {
			log.Printf("Failed to parse line '%s': %v", line, err)
			continue
		}

		select {
		case s.readings <- v:
		case <-ctx.Done():
			return
		default:
			log.Printf("Readings channel full, dropping sample")
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.Printf("Error reading from serial port: %v", err)
	}
}

// parseLine parses one decimal ADC code.
func parseLine(line string) (sensor.RawSample, error) {
	v, err := strconv.ParseUint(line, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid reading: %w", err)
	}
	if v > sensor.MaxRaw {
		return 0, fmt.Errorf("reading out of range: %d (max %d)", v, sensor.MaxRaw)
	}
	return sensor.RawSample(v), nil
}
