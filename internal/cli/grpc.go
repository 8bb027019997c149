package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/overlearn/overlearn/internal/api"
	"github.com/overlearn/overlearn/internal/config"
)

const callTimeout = 10 * time.Second

// daemonClient is a command service client bound to its connection.
type daemonClient struct {
	*api.Client
	conn *grpc.ClientConn
}

func (c *daemonClient) Close() error {
	return c.conn.Close()
}

// connectDaemon establishes a gRPC connection to the running daemon.
func connectDaemon() (*daemonClient, error) {
	info, err := config.LoadDaemonInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to load daemon info: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("daemon not running (start it with 'overlearn daemon start')")
	}

	addr := fmt.Sprintf("%s:%d", info.Host, info.Port)
	conn, err := grpc.NewClient(addr, api.DialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w", err)
	}

	return &daemonClient{Client: api.NewClient(conn), conn: conn}, nil
}

// withDaemon connects, runs fn with a bounded context and closes.
func withDaemon(fn func(ctx context.Context, c *daemonClient) error) error {
	c, err := connectDaemon()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	if err := fn(ctx, c); err != nil {
		return errors.New(api.ErrorMessage(err))
	}
	return nil
}
