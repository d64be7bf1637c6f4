package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Schedule    ScheduleConfig `mapstructure:"schedule"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// ScheduleConfig describes the default weekly schedule settings source.
// Weekday values are slot lists ("9:00-12:00,13:00-17:00"); an entry that
// is present but empty defines a closed-but-known day, a missing entry
// leaves the weekday unconfigured.
type ScheduleConfig struct {
	// CalendarName is the name the default calendar is stored under
	CalendarName string `mapstructure:"calendarName"`
	// SlotSeparator delimits slot tokens in a weekday value
	SlotSeparator string `mapstructure:"slotSeparator"`
	// TimeSeparator delimits the start and end of one slot token
	TimeSeparator string `mapstructure:"timeSeparator"`
	// TimePattern is the clock-token layout; empty means H:mm
	TimePattern string `mapstructure:"timePattern"`
	// DatePattern is the holiday date layout; empty means 2/1/2006
	DatePattern string `mapstructure:"datePattern"`
	// Weekdays maps lowercase weekday names to slot lists
	Weekdays map[string]string `mapstructure:"weekdays"`
	// Holidays is a slot-separator-delimited list of dates
	Holidays string `mapstructure:"holidays"`
}
