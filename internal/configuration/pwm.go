package configuration

type PwmConfig struct {
	Channel int `json:"channel" yaml:"channel"`

	File *FilePwmConfig `json:"file,omitempty" yaml:"file,omitempty"`
	Cmd  *CmdPwmConfig  `json:"cmd,omitempty" yaml:"cmd,omitempty"`
	Rpio *RpioPwmConfig `json:"rpio,omitempty" yaml:"rpio,omitempty"`
}

type FilePwmConfig struct {
	Path string `json:"path" yaml:"path"`
	// Atomic replaces the file on every commit instead of writing in place
	Atomic bool `json:"atomic" yaml:"atomic"`
}

type CmdPwmConfig struct {
	// Exec is executed on every commit, with the duty appended to Args
	Exec string   `json:"exec" yaml:"exec"`
	Args []string `json:"args" yaml:"args"`
}

type RpioPwmConfig struct {
	// Pin is the BCM number of a hardware PWM capable pin (12, 13, 18 or 19)
	Pin int `json:"pin" yaml:"pin"`
	// Frequency of the PWM signal in Hz
	Frequency int `json:"frequency" yaml:"frequency"`
}
