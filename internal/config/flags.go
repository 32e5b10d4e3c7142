package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig             = "config"
	FlagHashKey            = "hash-key"
	FlagLogLevel           = "log-level"
	FlagBackupEnabled      = "backup-enabled"
	FlagRetentionCount     = "retention-count"
	FlagAutoPrefix         = "auto-prefix"
	FlagManualPrefix       = "manual-prefix"
	FlagEncryptionRequired = "encrypt"
	FlagInterval           = "interval"
	FlagOperationTimeout   = "operation-timeout"
	FlagStore              = "store"
	FlagStoreAddress       = "store-address"
	FlagContainer          = "container"
	FlagToken              = "token"
	FlagGCSBucket          = "gcs-bucket"
	FlagGCSCredentials     = "gcs-credentials"
	FlagProbeURL           = "probe-url"
	FlagRequestTimeout     = "request-timeout"
	FlagRetryCount         = "retry-count"
	FlagJournalDSN         = "journal"
	FlagSnapshotPath       = "snapshot"
	FlagMetricsAddress     = "metrics-address"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags declares every configuration flag on fs. Defaults are left
// zero so that unset flags never shadow env or JSON values; the real
// defaults are applied last by the builder.
//
// Flags:
//
//	-c/--config          json file path with configs
//	--hash-key           HMAC key for the HashSHA256 header
//	--log-level          zerolog level
//	--backup-enabled     automatic backups on/off
//	--retention-count    automatic backups to keep
//	--auto-prefix        automatic backup object prefix
//	--manual-prefix      manual backup object prefix
//	--encrypt            require encrypted envelopes
//	--interval           automatic backup period (e.g. "1h")
//	--operation-timeout  per remote call timeout during automatic runs
//	--store              object store kind: http, gcs, memory
//	--store-address      HTTP object store base URL
//	--container          HTTP object store container
//	--token              bearer token for the object store
//	--gcs-bucket         GCS bucket
//	--gcs-credentials    GCS service account JSON file
//	--probe-url          connectivity probe URL
//	--request-timeout    single HTTP request timeout
//	--retry-count        HTTP retries
//	--journal            SQLite DSN of the backup journal
//	--snapshot           application snapshot file
//	--metrics-address    host:port for the prometheus endpoint
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagHashKey, "", "HMAC key for the object store integrity header")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.Bool(FlagBackupEnabled, false, "Enable automatic backups")
	fs.Int(FlagRetentionCount, 0, "Number of automatic backups to keep")
	fs.String(FlagAutoPrefix, "", "Object prefix for automatic backups")
	fs.String(FlagManualPrefix, "", "Object prefix for manual backups")
	fs.Bool(FlagEncryptionRequired, false, "Require encrypted backups")
	fs.Duration(FlagInterval, 0, "Automatic backup interval (e.g. 1h, 30m)")
	fs.Duration(FlagOperationTimeout, 0, "Timeout of each remote call during automatic backups")
	fs.String(FlagStore, "", "Object store kind: http, gcs or memory")
	fs.String(FlagStoreAddress, "", "HTTP object store base URL")
	fs.String(FlagContainer, "", "HTTP object store container")
	fs.String(FlagToken, "", "Bearer token for the object store")
	fs.String(FlagGCSBucket, "", "Google Cloud Storage bucket")
	fs.String(FlagGCSCredentials, "", "Google Cloud service account JSON file")
	fs.String(FlagProbeURL, "", "URL probed to decide whether the device is online")
	fs.Duration(FlagRequestTimeout, 0, "HTTP request timeout (e.g. 15s)")
	fs.Int(FlagRetryCount, 0, "HTTP request retries")
	fs.String(FlagJournalDSN, "", "SQLite DSN of the backup journal")
	fs.String(FlagSnapshotPath, "", "Application snapshot file")
	fs.Var(&NetAddress{}, FlagMetricsAddress, "Prometheus endpoint address host:port")
}

// configFromFlags converts the flags the user actually set into a partial
// [StructuredConfig].
func configFromFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var errs []error

	str := func(name string, dst *string) {
		if fs.Changed(name) {
			v, err := fs.GetString(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if fs.Changed(name) {
			v, err := fs.GetInt(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if fs.Changed(name) {
			v, err := fs.GetDuration(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	boolean := func(name string, dst **bool) {
		if fs.Changed(name) {
			v, err := fs.GetBool(name)
			errs = append(errs, err)
			*dst = &v
		}
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagHashKey, &cfg.App.HashKey)
	str(FlagLogLevel, &cfg.App.LogLevel)
	boolean(FlagBackupEnabled, &cfg.Backup.Enabled)
	num(FlagRetentionCount, &cfg.Backup.RetentionCount)
	str(FlagAutoPrefix, &cfg.Backup.AutoPrefix)
	str(FlagManualPrefix, &cfg.Backup.ManualPrefix)
	boolean(FlagEncryptionRequired, &cfg.Backup.EncryptionRequired)
	dur(FlagInterval, &cfg.Backup.Interval)
	dur(FlagOperationTimeout, &cfg.Backup.OperationTimeout)
	str(FlagStore, &cfg.Adapter.Kind)
	str(FlagStoreAddress, &cfg.Adapter.HTTPAddress)
	str(FlagContainer, &cfg.Adapter.Container)
	str(FlagToken, &cfg.Adapter.Token)
	str(FlagGCSBucket, &cfg.Adapter.GCSBucket)
	str(FlagGCSCredentials, &cfg.Adapter.GCSCredentialsFile)
	str(FlagProbeURL, &cfg.Adapter.ProbeURL)
	dur(FlagRequestTimeout, &cfg.Adapter.RequestTimeout)
	num(FlagRetryCount, &cfg.Adapter.RetryCount)
	str(FlagJournalDSN, &cfg.Storage.JournalDSN)
	str(FlagSnapshotPath, &cfg.Storage.SnapshotPath)

	if f := fs.Lookup(FlagMetricsAddress); f != nil && f.Changed {
		cfg.Metrics.Address = f.Value.String()
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Otherwise the host must be "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
