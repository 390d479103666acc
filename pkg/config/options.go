package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseDriver selects the store that receives seeded data.
// Valid values: "postgres", "sqlite".
func OptDatabaseDriver(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Database.Driver", s) {
			c.Database.Driver = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseSQLitePath sets the snapshot file of the sqlite driver.
func OptDatabaseSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database SQLite Path", s) {
			c.Database.SQLitePath = s
		}
	}
}

// OptImportParent sets the location of dataset files: a directory or
// an s3://bucket/prefix URL.
func OptImportParent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Import Parent", s) {
			c.Import.Parent = s
		}
	}
}

// OptImportS3Region sets the AWS region of the dataset bucket.
func OptImportS3Region(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Import S3 Region", s) {
			c.Import.S3Region = s
		}
	}
}

// OptImportS3Endpoint overrides the S3 endpoint.
func OptImportS3Endpoint(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Import.S3Endpoint = s
	}
}

// OptImportS3PathStyle toggles path-style bucket addressing.
func OptImportS3PathStyle(b bool) Option {
	return func(c *Config) {
		c.Import.S3PathStyle = b
	}
}

// OptImportS3Credentials sets static S3 credentials. Both values must be
// given, otherwise the option is ignored.
func OptImportS3Credentials(key, secret string) Option {
	key = strings.TrimSpace(key)
	secret = strings.TrimSpace(secret)
	return func(c *Config) {
		if isValidString("Import S3 Access Key", key) &&
			isValidString("Import S3 Secret Key", secret) {
			c.Import.S3AccessKey = key
			c.Import.S3SecretKey = secret
		}
	}
}

// OptImportMetricsFile sets the file that receives run metrics.
// An empty string disables metrics output.
func OptImportMetricsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Import.MetricsFile = s
	}
}

// OptImportWithProgress toggles progress bars.
func OptImportWithProgress(b bool) Option {
	return func(c *Config) {
		c.Import.WithProgress = b
	}
}

// OptImportForce makes seeding ignore the empty-store guard.
// Runtime-only field - not in ToOptions().
func OptImportForce(b bool) Option {
	return func(c *Config) {
		c.Import.Force = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets how many relation indices load concurrently.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
