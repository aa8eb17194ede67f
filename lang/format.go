package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/aconst/named"
)

// FormatYAML writes the manifest as YAML. A positive indent selects block
// style with that indentation; otherwise flow style is used.
//
// Constants are written in each namespace's iteration order, followed by
// the auxiliary entries that hold scalar values.
func (m *Manifest) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, m.toMapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// FormatJSON writes the manifest as JSON, keeping declaration order. A
// positive indent pretty-prints with that many spaces.
//
// Floating-point values are always written with a fraction or an exponent
// so they parse back as floats. JSON cannot represent infinities, so a
// manifest holding one fails with [ErrInvalidValue].
func (m *Manifest) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	data, err := orderedJSON(m.toMapSlice()).MarshalJSON()
	if err != nil {
		return err
	}

	if indent > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
			return err
		}

		data = buf.Bytes()
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// toMapSlice returns the manifest in its wire layout.
func (m *Manifest) toMapSlice() yaml.MapSlice {
	namespaces := make(yaml.MapSlice, 0, len(m.namespaces))

	for _, ns := range m.namespaces {
		body := make(yaml.MapSlice, 0, ns.Len())

		for name, c := range ns.Items() {
			body = append(body, yaml.MapItem{Key: name, Value: c.Value()})
		}

		for _, name := range ns.AuxNames() {
			v, _ := ns.Aux(name)
			if n, err := Normalize(v); err == nil {
				body = append(body, yaml.MapItem{Key: name, Value: n})
			}
		}

		namespaces = append(namespaces, yaml.MapItem{Key: ns.Name(), Value: body})
	}

	out := make(yaml.MapSlice, 0, 2)
	if m.module != "" {
		out = append(out, yaml.MapItem{Key: "module", Value: m.module})
	}

	return append(out, yaml.MapItem{Key: "namespaces", Value: namespaces})
}

// orderedJSON encodes a MapSlice as a JSON object with its keys in order.
type orderedJSON yaml.MapSlice

func (o orderedJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, item := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(fmt.Sprint(item.Key))
		if err != nil {
			return nil, err
		}

		val, err := jsonValue(item.Value)
		if err != nil {
			return nil, named.WrapError(err).With(slog.String("key", fmt.Sprint(item.Key)))
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func jsonValue(v any) ([]byte, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		return orderedJSON(v).MarshalJSON()

	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, ErrInvalidValue.
				With(slog.Float64("value", v)).
				Wrap(errors.New("JSON cannot represent non-finite numbers"))
		}

		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}

		return []byte(s), nil

	default:
		return json.Marshal(v)
	}
}
