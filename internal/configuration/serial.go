package configuration

import "time"

type SerialConfig struct {
	// Port is the device path of the serial link, e.g. /dev/ttyUSB0
	Port string `json:"port" yaml:"port"`
	Baud int    `json:"baud" yaml:"baud"`
	// ReadTimeout is the upper wait bound of a single poll
	ReadTimeout time.Duration `json:"readTimeout" yaml:"readTimeout"`
	// BufferSize caps the number of bytes treated as one command
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`
}
