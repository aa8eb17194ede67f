package named

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Format(t *testing.T) {
	colors := newColors(t)

	green, err := colors.ByName("green")
	require.NoError(t, err)

	standalone := NewValue("green", 2)

	tests := []struct {
		format string
		value  Value[int]
		want   string
	}{
		{"%s", green, "green"},
		{"%v", green, "green"},
		{"%q", green, `"green"`},
		{"%8s", green, "   green"},
		{"%-8v|", green, "green   |"},
		{"%#v", green, "Colors.green"},
		{"%+v", green, "Colors.green"},
		{"%d", green, "2"},
		{"%03d", green, "002"},
		{"%x", green, "2"},
		{"%#v", standalone, "green"},
		{"%v", standalone, "green"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, tt.value))
		})
	}
}

func TestValue_DisplayForms(t *testing.T) {
	colors := newColors(t, WithModule("github.com/acme/figures"))

	green, err := colors.ByName("green")
	require.NoError(t, err)

	assert.Equal(t, "green", green.String())
	assert.Equal(t, "github.com/acme/figures.Colors.green", green.GoString())
	assert.Equal(t, "github.com/acme/figures.Colors.green", fmt.Sprintf("%#v", green))
	assert.Equal(t, "[red yellow green blue white]", fmt.Sprint(colors.ValueList()))
}

func TestValue_Standalone(t *testing.T) {
	pi := NewValue("pi", 3.14)

	assert.Equal(t, "pi", pi.Name())
	assert.Equal(t, 3.14, pi.Value())
	assert.Empty(t, pi.Qualifier())
	assert.Equal(t, "pi", pi.GoString())
	assert.False(t, pi.IsZero())
	assert.True(t, Value[float64]{}.IsZero())
}

func TestValue_Marshal(t *testing.T) {
	ns, err := New("MyConstants", []Pair[any]{
		{"pi", 3.5},
		{"answer", 42},
		{"BOILERPLATE", "no warranty"},
	})
	require.NoError(t, err)

	doc := make(map[string]Value[any])
	for name, c := range ns.Items() {
		doc[name] = c
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pi":3.5,"answer":42,"BOILERPLATE":"no warranty"}`, string(data))

	data, err = yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "answer: 42")
	assert.Contains(t, string(data), "BOILERPLATE: no warranty")
}

func TestValue_LogValue(t *testing.T) {
	colors := newColors(t)

	blue, err := colors.ByName("blue")
	require.NoError(t, err)

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("picked", slog.Any("color", blue))

	assert.True(t, strings.Contains(buf.String(), "color=Colors.blue"), buf.String())
}
