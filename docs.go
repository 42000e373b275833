/*
Package telegraf provides a lightweight client for writing metrics to a
Telegraf socket listener using the Influx line protocol.

The package does no querying and has no other InfluxDB client features; it is
meant to stay small for services that only report metrics.

A connection is opened with a scheme-prefixed address matching the daemon's
input.socket_listener configuration: tcp://, udp://, unix:// or unixgram://.

	client, err := telegraf.NewClient("tcp://localhost:8094")

Points can be built by hand and written directly:

	p := telegraf.NewPoint("disk")
	p.AddTag("host", "web01")
	p.AddField("free", uint64(37283))
	client.WritePoint(*p)

or derived from an annotated struct:

	type DiskUsage struct {
		Host string `telegraf:"host,tag"`
		Free uint64 `telegraf:"free"`
	}

	p, err := telegraf.MarshalPoint(DiskUsage{Host: "web01", Free: 37283})

Tags are optional but every point needs at least one field; writing a point
without fields fails with ErrNoFields. Timestamps are optional nanosecond
Unix times and are set by the daemon when absent.

A Batcher wraps a client with batching by size and/or timeout for callers
that emit metrics at a high rate:

	batcher := telegraf.NewBatcher(ctx, client, telegraf.BatchConfig{BatchSize: 100})
	batcher.Send(p)
*/
package telegraf
