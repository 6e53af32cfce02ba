package layerlist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DecodeError reports an error that occurred whilst decoding a preset file.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("layerlist: %s - %s", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FileFormat is the encoding of a preset file.
type FileFormat uint

const (
	YAML FileFormat = iota + 1 // yaml
	TOML                       // toml
)

func (f FileFormat) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return "FileFormat(" + itoa(int(f)) + ")"
}

// FormatOf returns the format for the given file name based on its
// extension.
func FormatOf(name string) (FileFormat, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, true
	case ".toml":
		return TOML, true
	}
	return 0, false
}

// Option is a callback that is used to modify the behaviour of a Decoder.
type Option func(d *Decoder) *Decoder

// Envvars enables the expansion of environment variables in the document
// before it is decoded. Environment variables are specified like so
// ${VARIABLE}.
func Envvars(d *Decoder) *Decoder {
	d.envvars = true
	return d
}

// WithFormat sets the format of the document, overriding the format derived
// from the file name.
func WithFormat(f FileFormat) Option {
	return func(d *Decoder) *Decoder {
		d.format = f
		return d
	}
}

type Decoder struct {
	name string

	format  FileFormat
	envvars bool
}

// NewDecoder returns a new decoder configured with the given options. The
// name is used to pick the document format and in error messages.
func NewDecoder(name string, opts ...Option) *Decoder {
	d := &Decoder{
		name: name,
	}

	if f, ok := FormatOf(name); ok {
		d.format = f
	}

	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// DecodeFile decodes the file into the given interface.
func DecodeFile(v interface{}, name string, opts ...Option) error {
	d := NewDecoder(name, opts...)

	f, err := os.Open(name)

	if err != nil {
		return err
	}

	defer f.Close()

	return d.Decode(v, f)
}

func (d *Decoder) interpolate(b []byte) []byte {
	s := os.Expand(string(b), func(key string) string {
		return os.Getenv(key)
	})
	return []byte(s)
}

// Decode decodes the contents of the given reader into the given interface.
// Layer lists within the document are parsed via List's unmarshalers.
func (d *Decoder) Decode(v interface{}, r io.Reader) error {
	if v == nil {
		return errors.New("layerlist: cannot decode into nil")
	}

	b, err := io.ReadAll(r)

	if err != nil {
		return &DecodeError{Name: d.name, Err: err}
	}

	if d.envvars {
		b = d.interpolate(b)
	}

	switch d.format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)

		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return &DecodeError{Name: d.name, Err: err}
		}
	case TOML:
		if _, err := toml.NewDecoder(bytes.NewReader(b)).Decode(v); err != nil {
			return &DecodeError{Name: d.name, Err: err}
		}
	default:
		return &DecodeError{Name: d.name, Err: errors.New("unknown file format")}
	}
	return nil
}
