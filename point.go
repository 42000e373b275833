package telegraf

import "time"

// Tag is a plain text key=value label. Names and values pass through
// verbatim apart from space escaping at render time; duplicates are kept.
type Tag struct {
	Name  string
	Value string
}

// Field is a named typed value.
type Field struct {
	Name  string
	Value FieldValue
}

// Point is a single metric observation: a measurement name, an optional tag
// set, a field set and an optional nanosecond timestamp. Points are plain
// values that can be built and combined freely; the at-least-one-field rule
// is enforced by the client at write time, not at construction.
type Point struct {
	Measurement string
	Tags        []Tag
	Fields      []Field

	timestamp    uint64
	hasTimestamp bool
}

// NewPoint starts a point for the given measurement.
func NewPoint(measurement string) *Point {
	return &Point{Measurement: measurement}
}

// AddTag appends a tag. Insertion order is kept.
func (p *Point) AddTag(name, value string) {
	p.Tags = append(p.Tags, Tag{Name: name, Value: value})
}

// AddField converts value and appends it as a field. Conversion happens
// eagerly, so a type without a field value variant is reported here.
func (p *Point) AddField(name string, value any) error {
	fv, err := NewFieldValue(value)
	if err != nil {
		return err
	}
	p.AddFieldValue(name, fv)
	return nil
}

// AddFieldValue appends an already-typed field.
func (p *Point) AddFieldValue(name string, value FieldValue) {
	p.Fields = append(p.Fields, Field{Name: name, Value: value})
}

// SetTimestamp sets the timestamp in nanoseconds since the Unix epoch. The
// value is carried opaquely; its meaning belongs to the daemon. Points
// without a timestamp are stamped by the daemon on arrival.
func (p *Point) SetTimestamp(nanos uint64) {
	p.timestamp = nanos
	p.hasTimestamp = true
}

// SetTime sets the timestamp from a wall-clock time.
func (p *Point) SetTime(t time.Time) {
	p.SetTimestamp(uint64(t.UnixNano()))
}

// Timestamp returns the timestamp and whether one was set.
func (p Point) Timestamp() (uint64, bool) {
	return p.timestamp, p.hasTimestamp
}

// ToPoint makes Point satisfy Metric, so points can be handed directly to
// anything that accepts metrics.
func (p Point) ToPoint() Point { return p }

// Equal reports whether two points carry the same data. Tag and field order
// is significant here even though rendering sorts pairs independently.
func (p Point) Equal(other Point) bool {
	if p.Measurement != other.Measurement ||
		p.hasTimestamp != other.hasTimestamp ||
		p.timestamp != other.timestamp ||
		len(p.Tags) != len(other.Tags) ||
		len(p.Fields) != len(other.Fields) {
		return false
	}
	for i, t := range p.Tags {
		if other.Tags[i] != t {
			return false
		}
	}
	for i, f := range p.Fields {
		if other.Fields[i] != f {
			return false
		}
	}
	return true
}

// String renders the point as its line-protocol form. Rendering is a pure
// function of the point's contents.
func (p Point) String() string {
	return p.renderLine()
}

func (p Point) renderLine() string {
	var tags string
	if len(p.Tags) > 0 {
		pairs := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			pairs[i] = escapeTag(t.Name) + "=" + escapeTag(t.Value)
		}
		tags = formatPairs(pairs)
	}

	pairs := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		pairs[i] = f.Name + "=" + f.Value.String()
	}
	fields := formatPairs(pairs)

	return assembleLine(p.Measurement, tags, fields, p.timestamp, p.hasTimestamp)
}
