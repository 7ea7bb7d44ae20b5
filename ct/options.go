// SPDX-License-Identifier: MIT

package ct

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Options configures a Factory.
//
// Logger           – receives Debug records for registrations and constructions.
//
//	Default is logrus.StandardLogger().
//
// Providers        – registered after the defaults, in order.
// DefaultProviders – register Affine, Exponential and Logarithmic. Default true.
type Options struct {
	Logger           logrus.FieldLogger
	Providers        []Provider
	DefaultProviders bool
}

// Option represents a functional option for configuring a Factory.
type Option func(*Options)

var (
	errNilLogger   = errors.New("ct: nil logger")
	errNilProvider = errors.New("ct: nil provider")
)

// WithLogger replaces the factory logger. A nil logger panics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			panic(errNilLogger.Error())
		}
		o.Logger = l
	}
}

// WithProvider registers an additional provider. A nil provider panics.
func WithProvider(p Provider) Option {
	return func(o *Options) {
		if p == nil {
			panic(errNilProvider.Error())
		}
		o.Providers = append(o.Providers, p)
	}
}

// WithoutDefaultProviders starts the registry empty.
func WithoutDefaultProviders() Option {
	return func(o *Options) {
		o.DefaultProviders = false
	}
}

// DefaultOptions returns the Factory defaults:
//   - Logger:           logrus.StandardLogger().
//   - Providers:        none beyond the defaults.
//   - DefaultProviders: true.
func DefaultOptions() Options {
	return Options{
		Logger:           logrus.StandardLogger(),
		DefaultProviders: true,
	}
}
