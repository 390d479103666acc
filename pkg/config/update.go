package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Import.Force).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	db := c.Database
	if s = db.Driver; s != "" {
		res = append(res, OptDatabaseDriver(s))
	}
	if s = db.Host; s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	if i = db.Port; i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	if s = db.User; s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	if s = db.Password; s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	if s = db.Database; s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	if s = db.SSLMode; s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	if s = db.SQLitePath; s != "" {
		res = append(res, OptDatabaseSQLitePath(s))
	}

	imp := c.Import
	if s = imp.Parent; s != "" {
		res = append(res, OptImportParent(s))
	}
	if s = imp.S3Region; s != "" {
		res = append(res, OptImportS3Region(s))
	}
	if s = imp.S3Endpoint; s != "" {
		res = append(res, OptImportS3Endpoint(s))
	}
	if imp.S3AccessKey != "" && imp.S3SecretKey != "" {
		res = append(res,
			OptImportS3Credentials(imp.S3AccessKey, imp.S3SecretKey))
	}
	if s = imp.MetricsFile; s != "" {
		res = append(res, OptImportMetricsFile(s))
	}
	res = append(res,
		OptImportS3PathStyle(imp.S3PathStyle),
		OptImportWithProgress(imp.WithProgress),
	)

	if s = c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s = c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s = c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}

	if i = c.JobsNumber; i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.Driver": {"postgres": s, "sqlite": s},
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	lines := make([]string, 0, len(vals))
	for _, v := range vals {
		lines = append(lines, fmt.Sprintf("  * %s", v))
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
