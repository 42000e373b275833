package telegraf_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	telegraf "github.com/lineprotocol/telegraf"
)

type exampleEndpoint struct {
	listener net.Listener
	done     chan struct{}
}

func newExampleEndpoint() *exampleEndpoint {
	listener, err := net.Listen("tcp", "127.0.0.1:")
	if err != nil {
		log.Fatal(err)
	}
	e := &exampleEndpoint{listener: listener, done: make(chan struct{})}
	go e.listen()
	return e
}

func (e *exampleEndpoint) addr() string {
	return e.listener.Addr().String()
}

func (e *exampleEndpoint) listen() {
	conn, err := e.listener.Accept()
	if err != nil {
		log.Fatal(err)
	}
	var buffer bytes.Buffer
	_, err = io.Copy(&buffer, conn)
	if err != nil {
		log.Fatal(err)
	}
	conn.Close()

	fmt.Print(buffer.String())
	close(e.done)
}

func Example_writingPoints() {
	endpoint := newExampleEndpoint()

	client, err := telegraf.NewClient("tcp://" + endpoint.addr())
	if err != nil {
		log.Fatal(err)
	}

	p := telegraf.NewPoint("metric_name")
	p.SetTime(time.Unix(3, 1))
	p.AddTag("tag", "t1")
	_ = p.AddField("intField", 1)
	_ = p.AddField("floatField", 3.14)

	_ = client.WritePoint(*p)
	_ = client.Close()

	<-endpoint.done

	// Output:
	// metric_name,tag=t1 floatField=3.14,intField=1i 3000000001
}

func ExampleMarshalPoint() {
	type CPU struct {
		Host  string  `telegraf:"host,tag"`
		Usage float64 `telegraf:"usage"`
	}

	p, err := telegraf.MarshalPoint(CPU{Host: "web01", Usage: 42.5})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(p.String())

	// Output:
	// CPU,host=web01 usage=42.5
}
