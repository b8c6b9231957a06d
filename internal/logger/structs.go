package logger

// Console configures output to stdout and stderr.
type Console struct {
	Enabled bool `mapstructure:"enabled"`
	// UseConsoleWriter renders human readable lines instead of JSON.
	UseConsoleWriter bool `mapstructure:"useConsoleWriter"`
	// Stdout sends trace, debug and info to stdout. Off for the CLI, whose
	// stdout carries identifiers.
	Stdout bool `mapstructure:"stdout"`
}

// LogFile configures rolling log files, one per level group.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`

	ErrorLog        string `mapstructure:"error"`
	ErrorMaxSize    int    `mapstructure:"errorMaxSize"`
	ErrorMaxBackups int    `mapstructure:"errorMaxBackups"`
	ErrorMaxAge     int    `mapstructure:"errorMaxAge"`

	InfoLog        string `mapstructure:"info"`
	InfoMaxSize    int    `mapstructure:"infoMaxSize"`
	InfoMaxBackups int    `mapstructure:"infoMaxBackups"`
	InfoMaxAge     int    `mapstructure:"infoMaxAge"`

	WarnLog        string `mapstructure:"warn"`
	WarnMaxSize    int    `mapstructure:"warnMaxSize"`
	WarnMaxBackups int    `mapstructure:"warnMaxBackups"`
	WarnMaxAge     int    `mapstructure:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `mapstructure:"logLevel"` // trace, debug, info, warn, error.
	ReportCaller bool   `mapstructure:"reportCaller"`
	AppName      string `mapstructure:"appName"`

	Console Console `mapstructure:"console"`
	File    LogFile `mapstructure:"file"`
}
