package config

// Lambdazipfile represents the structure of the lambdazip.yaml settings file.
// Every field is optional; omitted fields keep their defaults.
type Lambdazipfile struct {
	Python         PythonDTO `yaml:"python"`
	Node           NodeDTO   `yaml:"node"`
	Placeholder    string    `yaml:"placeholder"`
	CommandTimeout string    `yaml:"command_timeout"`
	StrictInstall  *bool     `yaml:"strict_install"`
	Compression    string    `yaml:"compression"`
}

// PythonDTO configures the Python toolchain.
type PythonDTO struct {
	Installer   string `yaml:"installer"`
	Interpreter string `yaml:"interpreter"`
}

// NodeDTO configures the Node toolchain.
type NodeDTO struct {
	Installer string `yaml:"installer"`
}
