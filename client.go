package telegraf

import (
	"bytes"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*Client) error

// WithLogger sets the logger for connection and write diagnostics. The
// default logger discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.log = log
		return nil
	}
}

// WithDialTimeout bounds each dial attempt. Zero means no bound.
func WithDialTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("dial timeout cannot be negative")
		}
		c.dialTimeout = d
		return nil
	}
}

// WithBackoff sets the dial retry policy. The factory is invoked once per
// connection attempt sequence. The default makes a single attempt.
func WithBackoff(factory func() backoff.BackOff) Option {
	return func(c *Client) error {
		if factory == nil {
			return fmt.Errorf("backoff factory cannot be nil")
		}
		c.newBackoff = factory
		return nil
	}
}

// Client writes points to a metrics daemon over a socket. The transport is
// chosen once, from the address scheme: tcp://, udp://, unix:// or
// unixgram://.
//
// A Client owns exactly one connection and does not serialize concurrent
// writers. Callers sharing a Client across goroutines must coordinate
// writes, or hand the Client to a Batcher, which becomes its sole writer.
type Client struct {
	conn net.Conn
	log  *zap.Logger

	dialTimeout time.Duration
	newBackoff  func() backoff.BackOff
}

// NewClient connects to the daemon at the given connection string, retrying
// the dial under the configured backoff policy.
func NewClient(address string, opts ...Option) (*Client, error) {
	c := &Client{
		log:        zap.NewNop(),
		newBackoff: func() backoff.BackOff { return &backoff.StopBackOff{} },
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	network, target, err := resolveAddress(address)
	if err != nil {
		return nil, err
	}

	dial := func() error {
		conn, err := net.DialTimeout(network, target, c.dialTimeout)
		if err != nil {
			c.log.Debug("dial failed",
				zap.String("network", network),
				zap.String("target", target),
				zap.Error(err))
			return err
		}
		c.conn = conn
		return nil
	}
	if err := backoff.Retry(dial, c.newBackoff()); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
	}

	c.log.Debug("connected", zap.String("network", network), zap.String("target", target))
	return c, nil
}

// resolveAddress maps a connection string onto a dial network and target.
func resolveAddress(address string) (network, target string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", "", fmt.Errorf("invalid address %q: %w", address, err)
	}
	switch u.Scheme {
	case "tcp", "udp":
		if u.Host == "" {
			return "", "", fmt.Errorf("address %q has no host", address)
		}
		return u.Scheme, u.Host, nil
	case "unix", "unixgram":
		if u.Path == "" {
			return "", "", fmt.Errorf("address %q has no socket path", address)
		}
		return u.Scheme, u.Path, nil
	default:
		return "", "", fmt.Errorf("unsupported scheme %q in address %q", u.Scheme, address)
	}
}

// Write renders the metric and writes its line.
func (c *Client) Write(m Metric) error {
	return c.WritePoints([]Point{m.ToPoint()})
}

// WritePoint writes a single point.
func (c *Client) WritePoint(p Point) error {
	return c.WritePoints([]Point{p})
}

// WritePoints validates every point, encodes the whole batch into one buffer
// and performs a single write. Each line is self-terminated; the batch is
// their plain concatenation. A point without fields fails the whole batch
// with ErrNoFields before anything is written.
func (c *Client) WritePoints(points []Point) error {
	var buf bytes.Buffer
	for _, p := range points {
		if len(p.Fields) == 0 {
			return fmt.Errorf("cannot write measurement %q: %w", p.Measurement, ErrNoFields)
		}
		buf.WriteString(p.renderLine())
	}
	if buf.Len() == 0 {
		return nil
	}

	if _, err := c.conn.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write points: %w", err)
	}
	c.log.Debug("wrote points", zap.Int("count", len(points)), zap.Int("bytes", buf.Len()))
	return nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
