package link

import (
	"errors"
	"io"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/tarm/serial"
)

// OpenSerial opens the configured serial port. Reads return after at most
// config.ReadTimeout, with zero bytes if nothing arrived.
func OpenSerial(config configuration.SerialConfig) (io.ReadWriteCloser, error) {
	c := &serial.Config{
		Name:        config.Port,
		Baud:        config.Baud,
		ReadTimeout: config.ReadTimeout,
	}
	port, err := serial.OpenPort(c)
	if err != nil {
		return nil, err
	}
	return port, nil
}

// ReadCommand performs a single bounded read into buf. A read that times out
// is reported as zero bytes without an error.
func ReadCommand(r io.Reader, buf []byte) (int, error) {
	n, err := r.Read(buf)
	if errors.Is(err, io.EOF) {
		return n, nil
	}
	return n, err
}
