package application

import "fmt"

type Format string

const (
	FormatLong  Format = "long"
	FormatShort Format = "short"
)

const (
	DefaultMaxUsers       = 100
	DefaultMaxQueryLength = 31
)

func (f Format) Valid() bool {
	switch f {
	case FormatLong, FormatShort:
		return true
	default:
		return false
	}
}

type Options struct {
	Format         Format
	PersonalFiles  bool
	MatchNames     bool
	MaxUsers       int
	MaxQueryLength int
}

func DefaultOptions() Options {
	return Options{
		Format:         FormatLong,
		PersonalFiles:  true,
		MatchNames:     true,
		MaxUsers:       DefaultMaxUsers,
		MaxQueryLength: DefaultMaxQueryLength,
	}
}

func (o Options) Validate() error {
	if !o.Format.Valid() {
		return fmt.Errorf("unsupported format %q", o.Format)
	}
	if o.MaxUsers <= 0 {
		return fmt.Errorf("max users must be positive, got %d", o.MaxUsers)
	}
	if o.MaxQueryLength <= 0 {
		return fmt.Errorf("max query length must be positive, got %d", o.MaxQueryLength)
	}

	return nil
}

func (o Options) long() bool {
	return o.Format != FormatShort
}
