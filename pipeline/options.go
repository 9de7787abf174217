// SPDX-FileCopyrightText: 2021 The utfstream Authors
//
// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/pkg/errors"

	"github.com/ssbc/utfstream"
	"github.com/ssbc/utfstream/transcode"
)

// Logger is the go-kit style logger used by the pipeline. It is silent unless set with WithLogger.
type Logger interface {
	Log(keyvals ...interface{}) error
}

type nopLogger struct{}

func (nopLogger) Log(...interface{}) error { return nil }

// Config holds the settings of a pipeline. Use the options to change it.
type Config struct {
	From      utfstream.Encoding
	FromOrder utfstream.Order
	// Auto sniffs the input encoding and order from its byte order mark.
	Auto bool
	// DetectBOM strips a leading mark from the input and lets a swapped one override FromOrder.
	DetectBOM bool

	To      utfstream.Encoding
	ToOrder utfstream.Order
	WithBOM bool

	Policy transcode.Policy
	Logger Logger
}

// DefaultConfig converts UTF-8 to UTF-8, strips an input BOM and fails on ill-formed input.
func DefaultConfig() Config {
	return Config{
		From:      utfstream.UTF8,
		DetectBOM: true,
		To:        utfstream.UTF8,
		Logger:    nopLogger{},
	}
}

// Option changes a Config.
type Option func(*Config) error

// MergeOptions returns an option that applies all opts in order and stops at the first error.
func MergeOptions(opts ...Option) Option {
	return func(c *Config) error {
		for _, o := range opts {
			if err := o(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// ErrorOption returns an option that fails with err.
func ErrorOption(err error) Option {
	return func(*Config) error {
		return err
	}
}

func validEncoding(enc utfstream.Encoding) error {
	if !enc.Valid() {
		return errors.Errorf("pipeline: invalid encoding %s", enc)
	}
	return nil
}

// From sets the input encoding.
func From(enc utfstream.Encoding) Option {
	return func(c *Config) error {
		if err := validEncoding(enc); err != nil {
			return err
		}
		c.From, c.Auto = enc, false
		return nil
	}
}

// FromAuto detects the input encoding from a leading byte order mark, falling back to UTF-8.
func FromAuto() Option {
	return func(c *Config) error {
		c.Auto = true
		return nil
	}
}

// FromOrder sets the byte order of the input.
func FromOrder(o utfstream.Order) Option {
	return func(c *Config) error {
		c.FromOrder = o
		return nil
	}
}

// DetectBOM toggles stripping of an input byte order mark.
func DetectBOM(detect bool) Option {
	return func(c *Config) error {
		c.DetectBOM = detect
		return nil
	}
}

// To sets the output encoding.
func To(enc utfstream.Encoding) Option {
	return func(c *Config) error {
		if err := validEncoding(enc); err != nil {
			return err
		}
		c.To = enc
		return nil
	}
}

// ToOrder sets the byte order of the output.
func ToOrder(o utfstream.Order) Option {
	return func(c *Config) error {
		c.ToOrder = o
		return nil
	}
}

// WithBOM toggles writing a byte order mark in front of the output.
func WithBOM(add bool) Option {
	return func(c *Config) error {
		c.WithBOM = add
		return nil
	}
}

// WithPolicy sets how ill-formed input is handled.
func WithPolicy(p transcode.Policy) Option {
	return func(c *Config) error {
		switch p {
		case transcode.Strict, transcode.Replace, transcode.Skip:
			c.Policy = p
			return nil
		}
		return errors.Errorf("pipeline: unknown policy %s", p)
	}
}

// WithLogger sets the logger. A nil logger discards everything.
func WithLogger(l Logger) Option {
	return func(c *Config) error {
		if l == nil {
			l = nopLogger{}
		}
		c.Logger = l
		return nil
	}
}
