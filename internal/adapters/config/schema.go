package config

// Assemblefile represents the structure of the assemble.yaml configuration file.
// Every key is optional except version; absent keys keep their defaults.
type Assemblefile struct {
	Version    string        `yaml:"version"`
	Root       string        `yaml:"root"`
	Entry      string        `yaml:"entry"`
	Template   string        `yaml:"template"`
	OutputDir  string        `yaml:"outputDir"`
	PublicPath string        `yaml:"publicPath"`
	DevServer  *DevServerDTO `yaml:"devServer"`
}

// DevServerDTO represents the devServer section. Pointers distinguish
// "unset" from an explicit false.
type DevServerDTO struct {
	Enabled            *bool  `yaml:"enabled"`
	ContentBase        string `yaml:"contentBase"`
	Compress           *bool  `yaml:"compress"`
	HistoryAPIFallback *bool  `yaml:"historyApiFallback"`
	Open               *bool  `yaml:"open"`
	Overlay            *bool  `yaml:"overlay"`
}

// SupportedVersion is the only accepted value of the version key.
const SupportedVersion = "1"
