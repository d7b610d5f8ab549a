package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.bug.st/serial"
	"golang.org/x/term"

	"github.com/clktmr/gba/drivers/gbplayer/accessory"
)

// Bridge performs transfers with the console.
type Bridge interface {
	accessory.Exchanger
	io.Closer
}

// ErrConnectionClosed is returned when the bridge went away.
var ErrConnectionClosed = fmt.Errorf("bridge connection closed")

// SerialBridge talks to an adapter on a serial port. A read timeout means the
// console didn't reply.
type SerialBridge struct {
	port io.ReadWriteCloser
}

func (s *SerialBridge) Exchange(out uint32) (uint32, error) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], out)
	if _, err := s.port.Write(buf[:]); err != nil {
		return 0, err
	}
	if err := readWord(s.port, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (s *SerialBridge) Close() error {
	return s.port.Close()
}

// readWord fills buf from r, which returns no data and no error on timeout.
func readWord(r io.Reader, buf []byte) error {
	for n := 0; n < len(buf); {
		m, err := r.Read(buf[n:])
		if err == io.EOF {
			return ErrConnectionClosed
		} else if err != nil {
			return err
		}
		if m == 0 {
			return accessory.ErrNoReply
		}
		n += m
	}
	return nil
}

// WebSocketBridge sends each word as a binary message. The bridge answers
// every message with the console's reply or an empty message.
type WebSocketBridge struct {
	conn    *websocket.Conn
	timeout time.Duration
	closed  bool
}

func (w *WebSocketBridge) Exchange(out uint32) (uint32, error) {
	if w.closed {
		return 0, ErrConnectionClosed
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], out)
	if err := w.conn.WriteMessage(websocket.BinaryMessage, buf[:]); err != nil {
		w.closed = true
		return 0, err
	}

	w.conn.SetReadDeadline(time.Now().Add(w.timeout))
	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			// a timed out connection can't be read from anymore
			w.closed = true
			return 0, err
		}
		if messageType != websocket.BinaryMessage {
			continue
		}

		switch len(data) {
		case 0:
			return 0, accessory.ErrNoReply
		case 4:
			return binary.BigEndian.Uint32(data), nil
		}
		return 0, fmt.Errorf("bridge sent %d bytes", len(data))
	}
}

func (w *WebSocketBridge) Close() error {
	w.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return w.conn.Close()
}

// OpenSerialBridge opens a serial port
func OpenSerialBridge(portName string, baudRate int, timeout time.Duration) (Bridge, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(timeout); err != nil {
		port.Close()
		return nil, err
	}
	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, err
	}

	return &SerialBridge{port: port}, nil
}

// OpenWebSocketBridge opens a WebSocket connection with HTTP Basic auth
func OpenWebSocketBridge(wsURL, username, password string, skipSSLVerify bool, timeout time.Duration) (Bridge, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: skipSSLVerify,
		}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %w", err)
	}

	return &WebSocketBridge{conn: conn, timeout: timeout}, nil
}

// GetPassword retrieves password from environment or prompts user
func GetPassword() (string, error) {
	if pw := os.Getenv("GBPLINK_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// not a terminal
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}

// OpenBridge opens either a serial or WebSocket bridge based on flags
func OpenBridge() (Bridge, string, error) {
	if wsURL != "" {
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", err
			}
		}

		b, err := OpenWebSocketBridge(wsURL, wsUsername, password, wsNoSSLVerify, timeout)
		if err != nil {
			return nil, "", err
		}
		return b, fmt.Sprintf("WebSocket: %s", wsURL), nil
	}

	if portName != "" {
		b, err := OpenSerialBridge(portName, baudRate, timeout)
		if err != nil {
			return nil, "", err
		}
		return b, fmt.Sprintf("Serial: %s @ %d baud", portName, baudRate), nil
	}

	return nil, "", fmt.Errorf("either --port or --url must be specified")
}
