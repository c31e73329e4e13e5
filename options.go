package metadata

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to the environment variables that configure the defaults used
// to stamp metadata, e.g. $METADATA_SOURCE and $METADATA_SPEC_VERSION.
const EnvPrefix = "metadata"

// Option allows users to specify variadic options to configure how metadata is stamped.
type Option func(c *Config) error

// WithSource sets the ce-source attribute stamped onto metadata that has no source.
func WithSource(source string) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

// WithType sets the ce-type attribute stamped onto metadata that has no type.
func WithType(eventType string) Option {
	return func(c *Config) error {
		c.Type = eventType
		return nil
	}
}

// WithContentType sets the ce-datacontenttype attribute stamped onto metadata that does
// not already describe its content type.
func WithContentType(contentType string) Option {
	return func(c *Config) error {
		c.ContentType = contentType
		return nil
	}
}

// WithClock replaces the function used to timestamp metadata; primarily for testing.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		if clock == nil {
			return ErrMissingClock
		}
		c.clock = clock
		return nil
	}
}

// WithConfig sets the configuration to the passed in value. Note that this will
// override everything in the processing chain including zero-valued items and values
// loaded from the environment; so use this as the first variadic option in NewConfig.
func WithConfig(conf Config) Option {
	return func(c *Config) error {
		*c = conf
		return nil
	}
}

// Config specifies the default CloudEvents attributes that are stamped onto metadata
// that is missing them. If users set the defaults in the environment they should not
// have to specify any options at all.
type Config struct {
	// The ce-source of events produced by this process; required.
	Source string `envconfig:"SOURCE"`

	// The ce-type stamped onto metadata, omitted if empty.
	Type string `envconfig:"TYPE"`

	// The ce-datacontenttype stamped onto metadata, omitted if empty.
	ContentType string `envconfig:"CONTENT_TYPE"`

	// The ce-specversion stamped onto metadata; by default the supported SpecVersion.
	SpecVersion string `envconfig:"SPEC_VERSION" default:"1.0"`

	clock func() time.Time
}

// NewConfig loads the configuration from the environment, applies the options, sets
// defaults and then validates the configuration; returning an error if it is
// incorrectly configured.
func NewConfig(opts ...Option) (conf Config, err error) {
	if err = envconfig.Process(EnvPrefix, &conf); err != nil {
		return Config{}, err
	}

	for _, opt := range opts {
		if err = opt(&conf); err != nil {
			return Config{}, err
		}
	}

	if err = conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate the configuration, setting defaults for any missing values that have one.
func (c *Config) Validate() error {
	c.setDefaults()
	if c.Source == "" {
		return ErrDefaultSource
	}

	if c.SpecVersion != SpecVersion {
		return ErrDefaultVersion
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.SpecVersion == "" {
		c.SpecVersion = SpecVersion
	}

	if c.clock == nil {
		c.clock = time.Now
	}
}

// Now returns the current time according to the configured clock in UTC.
func (c Config) Now() time.Time {
	if c.clock == nil {
		return time.Now().UTC()
	}
	return c.clock().UTC()
}
