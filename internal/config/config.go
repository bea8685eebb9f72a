package config

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bashhack/gitpast/internal/constants"
	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
	"github.com/bashhack/gitpast/internal/schedule"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultMaxCommits is the default upper bound of commits on an active day.
	// Values outside [1, 20] are clamped when the schedule is generated.
	DefaultMaxCommits = 10

	// DefaultFrequency is the default percent chance that an eligible day has commits.
	DefaultFrequency = 80

	// DefaultDaysFrom is the default start of the window, in days before today.
	DefaultDaysFrom = 365

	// DefaultDaysTo is the default end of the window, in days before today.
	DefaultDaysTo = 0

	// EnvPrefix prefixes every environment variable gitpast reads,
	// e.g. GITPAST_MAX_COMMITS for --max_commits.
	EnvPrefix = "GITPAST"

	// ConfigName is the base name searched for when --config is not given.
	ConfigName = "gitpast"
)

// Flag names.
const (
	FlagNoWeekends = "no_weekends"
	FlagMaxCommits = "max_commits"
	FlagFrequency  = "frequency"
	FlagRepository = "repository"
	FlagUserName   = "user_name"
	FlagUserEmail  = "user_email"
	FlagDaysFrom   = "days_from"
	FlagDaysTo     = "days_to"
	FlagConfig     = "config"
	FlagDebug      = "debug"
	FlagLogFile    = "log_file"
	FlagQuiet      = "quiet"
)

// EnvFiles are loaded from the working directory, in order, before the
// environment is read. Variables that are already set are never overridden.
var EnvFiles = []string{".env.local", ".env"}

// Config holds all gitpast settings.
// Values come from command-line flags, GITPAST_* environment variables,
// an optional config file and the defaults, in that order of precedence.
type Config struct {
	// Schedule

	// NoWeekends excludes Saturdays and Sundays from the schedule.
	NoWeekends bool

	// MaxCommits is the upper bound of commits on an active day.
	MaxCommits int

	// Frequency is the percent chance (0-100) that an eligible day has commits.
	Frequency int

	// DaysFrom is the start of the window, in days before today.
	DaysFrom int

	// DaysTo is the end of the window, in days before today.
	DaysTo int

	// Repository

	// Repository is the remote URL to push to. Empty means local only.
	Repository string

	// UserName and UserEmail override the commit identity for the new repository only.
	UserName  string
	UserEmail string

	// Directory is the name of the directory the repository is created in.
	// Derived by Finalize from Repository or the current time when empty.
	Directory string

	// Root is the absolute path of Directory, set by Finalize.
	Root string

	// Output

	// Verbose controls progress output. --quiet turns it off.
	Verbose bool

	// Debug enables the debug log file.
	Debug bool

	// LogFile is where debug logs are written.
	// If empty, a default location under $XDG_DATA_HOME is used.
	LogFile string

	// ConfigFile is an explicit config file (yaml, toml or json).
	ConfigFile string

	// Build metadata

	// VersionInfo contains version, commit, and build date information.
	VersionInfo VersionInfo

	quiet bool
}

// VersionInfo contains build-time version metadata.
type VersionInfo struct {
	// Version is the semantic version number (e.g., "v1.2.3").
	Version string

	// Commit is the Git commit hash from which the binary was built.
	Commit string

	// Date is the build timestamp in human-readable format.
	Date string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		MaxCommits: DefaultMaxCommits,
		Frequency:  DefaultFrequency,
		DaysFrom:   DefaultDaysFrom,
		DaysTo:     DefaultDaysTo,
		Verbose:    true,

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// SetupFlags registers gitpast's flags on fs, bound to c.
func (c *Config) SetupFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.NoWeekends, FlagNoWeekends, c.NoWeekends, "Do not commit on Saturdays and Sundays")
	fs.IntVar(&c.MaxCommits, FlagMaxCommits, c.MaxCommits, "Maximum commits on an active day (clamped to 1-20)")
	fs.IntVar(&c.Frequency, FlagFrequency, c.Frequency, "Percent chance that a day has commits (0-100)")
	fs.StringVar(&c.Repository, FlagRepository, c.Repository, "Remote URL to push the generated history to")
	fs.StringVar(&c.UserName, FlagUserName, c.UserName, "Override user.name for the generated repository")
	fs.StringVar(&c.UserEmail, FlagUserEmail, c.UserEmail, "Override user.email for the generated repository")
	fs.IntVar(&c.DaysFrom, FlagDaysFrom, c.DaysFrom, "Start of the window, in days before today")
	fs.IntVar(&c.DaysTo, FlagDaysTo, c.DaysTo, "End of the window, in days before today")

	fs.StringVar(&c.ConfigFile, FlagConfig, c.ConfigFile, "Config file (default: ./gitpast.yaml or ~/.config/gitpast/gitpast.yaml)")
	fs.BoolVar(&c.Debug, FlagDebug, c.Debug, "Enable debug logging")
	fs.StringVar(&c.LogFile, FlagLogFile, c.LogFile, "Path to log file (default: ~/.local/share/gitpast/logs/gitpast.log)")
	fs.BoolVar(&c.quiet, FlagQuiet, !c.Verbose, "Hide progress messages")
}

// Load merges .env files, GITPAST_* environment variables and the config
// file into c. Flags explicitly set on fs win over every other source.
func (c *Config) Load(fs *pflag.FlagSet) error {
	loadEnvFiles("")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return gitpastErrors.NewConfigError("flags", nil, gitpastErrors.Wrap(err, "cannot bind flags"))
	}

	if file := v.GetString(FlagConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return gitpastErrors.NewConfigError(FlagConfig, v.GetString(FlagConfig),
				gitpastErrors.Wrap(gitpastErrors.ErrInvalidConfiguration, err.Error()))
		}
	}

	ints := []struct {
		key    string
		target *int
	}{
		{FlagMaxCommits, &c.MaxCommits},
		{FlagFrequency, &c.Frequency},
		{FlagDaysFrom, &c.DaysFrom},
		{FlagDaysTo, &c.DaysTo},
	}
	for _, setting := range ints {
		n, err := intSetting(v, setting.key)
		if err != nil {
			return err
		}
		*setting.target = n
	}

	c.NoWeekends = v.GetBool(FlagNoWeekends)
	c.Repository = v.GetString(FlagRepository)
	c.UserName = v.GetString(FlagUserName)
	c.UserEmail = v.GetString(FlagUserEmail)
	c.ConfigFile = v.ConfigFileUsed()
	c.Debug = v.GetBool(FlagDebug)
	c.LogFile = v.GetString(FlagLogFile)
	c.quiet = v.GetBool(FlagQuiet)
	c.Verbose = !c.quiet

	return nil
}

// intSetting reads key as an integer. viper's GetInt turns unparsable
// values into 0, so the raw value is converted here instead.
func intSetting(v *viper.Viper, key string) (int, error) {
	raw := v.Get(key)
	n, err := cast.ToIntE(raw)
	if err != nil {
		return 0, gitpastErrors.NewConfigError(key, raw,
			gitpastErrors.Wrapf(gitpastErrors.ErrInvalidConfiguration, "%s must be an integer", key))
	}
	return n, nil
}

// loadEnvFiles loads EnvFiles from dir, or the working directory when dir is empty.
func loadEnvFiles(dir string) {
	for _, name := range EnvFiles {
		file := filepath.Join(dir, name)
		if _, err := os.Stat(file); err != nil {
			continue
		}
		_ = godotenv.Load(file)
	}
}

// Policy returns the schedule parameters described by c.
func (c *Config) Policy() schedule.Policy {
	return schedule.Policy{
		DaysFrom:            c.DaysFrom,
		DaysTo:              c.DaysTo,
		ExcludeWeekends:     c.NoWeekends,
		ActivityProbability: c.Frequency,
		MaxEventsPerDay:     c.MaxCommits,
	}
}

// Finalize validates the configuration and derives the repository directory
// and log file. It has no side effects on the filesystem unless Debug is set,
// in which case the log directory is created.
func (c *Config) Finalize(now time.Time) error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}

	if c.Directory == "" {
		name, err := DirectoryName(c.Repository, now)
		if err != nil {
			return err
		}
		c.Directory = name
	}

	absRoot, err := filepath.Abs(c.Directory)
	if err != nil {
		return gitpastErrors.NewConfigError("directory", c.Directory, gitpastErrors.Wrap(err, "failed to resolve absolute path"))
	}
	c.Root = absRoot

	if c.LogFile == "" {
		c.LogFile = defaultLogFile()
	}

	if c.Debug {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o700); err != nil {
			return gitpastErrors.NewConfigError(FlagLogFile, c.LogFile, gitpastErrors.Wrap(err, "cannot create log directory"))
		}
	}

	return nil
}

// DirectoryName derives the repository directory from the remote URL, or
// from now when there is no remote. For a remote, the last path segment is
// used with its extension stripped, so https://example.com/user/myrepo.git
// becomes myrepo.
func DirectoryName(remote string, now time.Time) (string, error) {
	if remote == "" {
		return constants.DirectoryPrefix + now.Format(constants.DirectoryTimeLayout), nil
	}

	trimmed := strings.TrimRight(remote, "/")
	name := trimmed[strings.LastIndexAny(trimmed, "/:")+1:]
	name = strings.TrimSuffix(name, path.Ext(name))

	if name == "" || name == "." || name == ".." {
		return "", gitpastErrors.NewConfigError(FlagRepository, remote,
			gitpastErrors.Wrap(gitpastErrors.ErrInvalidConfiguration, "cannot derive a directory name from repository"))
	}
	return name, nil
}

// defaultLogFile follows the XDG Base Directory Specification.
func defaultLogFile() string {
	logDir := os.Getenv("XDG_DATA_HOME")
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			logDir = filepath.Join(homeDir, ".local", "share")
		} else {
			logDir = os.TempDir()
		}
	}
	return filepath.Join(logDir, "gitpast", "logs", "gitpast.log")
}
