package configuration

import "gopkg.in/yaml.v3"

// ToYaml renders the effective configuration, including all defaults
func ToYaml(config Configuration) (string, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
