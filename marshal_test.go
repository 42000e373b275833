package telegraf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type diskUsage struct {
	Host    string    `telegraf:"host,tag"`
	Free    uint64    `telegraf:"free"`
	UsedPct float64   `telegraf:"used_pct"`
	Sampled time.Time `telegraf:",timestamp"`
}

func TestMarshalPoint(t *testing.T) {
	d := diskUsage{
		Host:    "web01",
		Free:    37283,
		UsedPct: 93.5,
		Sampled: time.Unix(10, 0),
	}

	p, err := MarshalPoint(d)
	require.NoError(t, err)

	want := NewPoint("diskUsage")
	want.AddTag("host", "web01")
	want.AddFieldValue("free", Uint(37283))
	want.AddFieldValue("used_pct", Float(93.5))
	want.SetTimestamp(10000000000)
	assert.True(t, p.Equal(*want), "got %q", p.String())
}

func TestMarshalPointPointerValue(t *testing.T) {
	d := &diskUsage{Host: "web01", Free: 1, Sampled: time.Unix(1, 0)}
	p, err := MarshalPoint(d)
	require.NoError(t, err)
	assert.Equal(t, "diskUsage", p.Measurement)
}

func TestMarshalPointDefaults(t *testing.T) {
	type NoTags struct {
		I int32
	}

	p, err := MarshalPoint(NoTags{I: 1})
	require.NoError(t, err)

	want := NewPoint("NoTags")
	want.AddFieldValue("I", Int(1))
	assert.True(t, p.Equal(*want), "got %q", p.String())
}

func TestMarshalPointMeasurementOverride(t *testing.T) {
	type NoTags struct {
		I int32
	}

	p, err := MarshalPoint(NoTags{I: 1}, WithMeasurement("custom"))
	require.NoError(t, err)
	assert.Equal(t, "custom", p.Measurement)
}

func TestMarshalPointSkipsAndUnexported(t *testing.T) {
	type mixed struct {
		Kept    int    `telegraf:"kept"`
		Skipped int    `telegraf:"-"`
		hidden  string
	}

	p, err := MarshalPoint(mixed{Kept: 1, Skipped: 2})
	require.NoError(t, err)

	want := NewPoint("mixed")
	want.AddFieldValue("kept", Int(1))
	assert.True(t, p.Equal(*want), "got %q", p.String())
}

func TestMarshalPointOmitsNilPointers(t *testing.T) {
	type optionals struct {
		I *int32  `telegraf:"i"`
		T *string `telegraf:"t,tag"`
	}

	i := int32(1)
	s := "t"
	p, err := MarshalPoint(optionals{I: &i, T: &s})
	require.NoError(t, err)

	want := NewPoint("optionals")
	want.AddTag("t", "t")
	want.AddFieldValue("i", Int(1))
	assert.True(t, p.Equal(*want), "got %q", p.String())

	p, err = MarshalPoint(optionals{I: &i})
	require.NoError(t, err)

	want = NewPoint("optionals")
	want.AddFieldValue("i", Int(1))
	assert.True(t, p.Equal(*want), "got %q", p.String())
}

func TestMarshalPointDefinedTypes(t *testing.T) {
	type reading struct {
		Temp celsius `telegraf:"temp"`
	}

	p, err := MarshalPoint(reading{Temp: 21.5})
	require.NoError(t, err)
	assert.Equal(t, "reading temp=21.5\n", p.String())
}

func TestMarshalPointNumericTag(t *testing.T) {
	type labeled struct {
		Shard int `telegraf:"shard,tag"`
		N     int `telegraf:"n"`
	}

	p, err := MarshalPoint(labeled{Shard: 3, N: 1})
	require.NoError(t, err)
	assert.Equal(t, "labeled,shard=3 n=1i\n", p.String())
}

func TestMarshalPointUintTimestamp(t *testing.T) {
	type stamped struct {
		TS uint64 `telegraf:",timestamp"`
		N  int    `telegraf:"n"`
	}

	p, err := MarshalPoint(stamped{TS: 100, N: 1})
	require.NoError(t, err)
	assert.Equal(t, "stamped n=1i 100\n", p.String())
}

func TestMarshalPointErrors(t *testing.T) {
	_, err := MarshalPoint(42)
	assert.Error(t, err)

	var nilPtr *diskUsage
	_, err = MarshalPoint(nilPtr)
	assert.Error(t, err)

	type badRole struct {
		N int `telegraf:"n,gauge"`
	}
	_, err = MarshalPoint(badRole{})
	assert.ErrorContains(t, err, `unknown role "gauge"`)

	type badField struct {
		M map[string]int `telegraf:"m"`
	}
	_, err = MarshalPoint(badField{})
	var ute *UnsupportedTypeError
	assert.ErrorAs(t, err, &ute)

	type badTS struct {
		TS string `telegraf:",timestamp"`
		N  int    `telegraf:"n"`
	}
	_, err = MarshalPoint(badTS{TS: "nope"})
	assert.ErrorContains(t, err, "unsupported timestamp type")

	type negTS struct {
		TS int64 `telegraf:",timestamp"`
		N  int   `telegraf:"n"`
	}
	_, err = MarshalPoint(negTS{TS: -1})
	assert.ErrorContains(t, err, "negative timestamp")
}
