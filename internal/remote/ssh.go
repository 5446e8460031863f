package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// transportExitCode mirrors the ssh client's exit status for connection and
// authentication failures.
const transportExitCode = 255

func (d *Dispatcher) runSSH(ctx context.Context, host, command string, out, errOut io.Writer) (int, error) {
	userName, hostName := splitUserHost(host)
	if userName == "" {
		userName = d.ssh.User
	}
	if userName == "" {
		current, err := user.Current()
		if err != nil {
			return transportExitCode, fmt.Errorf("resolve local user: %w", err)
		}
		userName = current.Username
	}

	clientConfig, cleanup, err := d.clientConfig(userName)
	if err != nil {
		return transportExitCode, err
	}
	defer cleanup()

	addr := net.JoinHostPort(hostName, strconv.Itoa(d.ssh.Port))
	conn, err := net.DialTimeout("tcp", addr, time.Duration(d.ssh.ConnectTimeout)*time.Second)
	if err != nil {
		return transportExitCode, fmt.Errorf("dial %s: %w", addr, err)
	}

	sshConn, channels, requests, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		_ = conn.Close()
		return transportExitCode, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}
	client := ssh.NewClient(sshConn, channels, requests)
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return transportExitCode, fmt.Errorf("new session: %w", err)
	}
	defer session.Close()

	session.Stdout = out
	session.Stderr = errOut

	// Close the connection if the context is cancelled so session.Run
	// returns instead of blocking on a dead remote.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = client.Close()
		case <-done:
		}
	}()

	if err := session.Run(command); err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitStatus(), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return transportExitCode, ctxErr
		}
		return transportExitCode, fmt.Errorf("run remote command: %w", err)
	}
	return 0, nil
}

func (d *Dispatcher) clientConfig(userName string) (*ssh.ClientConfig, func(), error) {
	methods, cleanup, err := d.authMethods()
	if err != nil {
		return nil, nil, err
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if !d.ssh.InsecureIgnoreHostKey {
		hostKeyCallback, err = knownhosts.New(d.ssh.KnownHostsFile)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("load known hosts %s: %w", d.ssh.KnownHostsFile, err)
		}
	}

	return &ssh.ClientConfig{
		User:            userName,
		Auth:            methods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         time.Duration(d.ssh.ConnectTimeout) * time.Second,
	}, cleanup, nil
}

// authMethods returns the auth methods plus a cleanup closing the agent
// connection; the connection must outlive the handshake, so callers run
// cleanup once the session completes.
func (d *Dispatcher) authMethods() ([]ssh.AuthMethod, func(), error) {
	cleanup := func() {}
	var methods []ssh.AuthMethod

	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		conn, err := net.Dial("unix", sock)
		if err == nil {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
			cleanup = func() { _ = conn.Close() }
		} else {
			d.logger.Debug("ssh agent unavailable", "socket", sock, "error", err)
		}
	}

	if d.ssh.IdentityFile != "" {
		key, err := os.ReadFile(d.ssh.IdentityFile)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("read identity file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("parse identity file %s: %w", d.ssh.IdentityFile, err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	if len(methods) == 0 {
		return nil, nil, errors.New("no SSH auth available: start an agent or set ssh.identity_file")
	}
	return methods, cleanup, nil
}

func splitUserHost(host string) (string, string) {
	if at := strings.LastIndex(host, "@"); at >= 0 {
		return host[:at], host[at+1:]
	}
	return "", host
}
