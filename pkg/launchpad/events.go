package launchpad

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	socketio "github.com/zhouhui8915/go-socket.io-client"
)

const defaultEventTimeout = 30 * time.Second

var launchEventNames = []string{"error", "launch-error", "launch-progress", "launch-complete"}

// eventSubscriber is the part of a socket.io client WaitForLaunch uses. A
// later On for the same event replaces the earlier handler.
type eventSubscriber interface {
	On(event string, handler any) error
}

type eventDialer func(url string, options *socketio.Options) (eventSubscriber, error)

func dialSocketIO(url string, options *socketio.Options) (eventSubscriber, error) {
	return socketio.NewClient(url, options)
}

// HasEvents reports whether an events endpoint is configured.
func (c *Client) HasEvents() bool {
	return c.eventsURL != ""
}

// WaitForLaunch listens on the launchpad's socket.io stream until the launch
// submitted in transactionID completes or fails. The wait ends with an error
// when no event arrives within the configured timeout.
//
// Handlers never block the socket read loop, and they are swapped for no-ops
// once the wait returns. The socket.io client has no Close, so the connection
// itself stays open until the server drops it.
func (c *Client) WaitForLaunch(ctx context.Context, transactionID string) (LaunchEvent, error) {
	if !c.HasEvents() {
		return LaunchEvent{}, fmt.Errorf("launchpad events URL is not configured")
	}

	options := &socketio.Options{
		Transport: "websocket",
		Query: map[string]string{
			"network": c.network,
		},
		Header: map[string][]string{},
	}
	if c.apiKey != "" {
		options.Query["apiKey"] = c.apiKey
		options.Header["x-api-key"] = []string{c.apiKey}
	}

	client, err := c.dialEvents(c.eventsURL, options)
	if err != nil {
		return LaunchEvent{}, fmt.Errorf("failed to connect to launchpad events: %w", err)
	}

	done := make(chan struct{})
	defer func() {
		close(done)
		for _, name := range launchEventNames {
			_ = client.On(name, func(any) {})
		}
	}()

	normalizedTransactionID := normalizeTransactionID(transactionID)
	eventChannel := make(chan launchMessage, 8)
	errorChannel := make(chan string, 2)

	deliverEvent := func(message launchMessage) {
		select {
		case eventChannel <- message:
		case <-done:
		default:
		}
	}
	deliverError := func(message string) {
		select {
		case errorChannel <- message:
		case <-done:
		default:
		}
	}

	_ = client.On("error", func(message any) {
		deliverError(fmt.Sprintf("%v", message))
	})
	_ = client.On("launch-error", func(payload map[string]any) {
		if !matchesLaunchEvent(normalizedTransactionID, payload) {
			return
		}
		message := parseString(payload["error"])
		if strings.TrimSpace(message) == "" {
			message = "launch failed"
		}
		deliverError(message)
	})
	_ = client.On("launch-progress", func(payload map[string]any) {
		deliverEvent(launchMessage{payload: payload})
	})
	_ = client.On("launch-complete", func(payload map[string]any) {
		deliverEvent(launchMessage{payload: payload, complete: true})
	})

	timer := time.NewTimer(c.eventTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return LaunchEvent{}, ctx.Err()
		case <-timer.C:
			return LaunchEvent{}, fmt.Errorf("timed out waiting for launch %s", transactionID)
		case message := <-errorChannel:
			return LaunchEvent{}, fmt.Errorf("launch %s: %s", transactionID, message)
		case message := <-eventChannel:
			timer.Reset(c.eventTimeout)
			if !matchesLaunchEvent(normalizedTransactionID, message.payload) {
				continue
			}
			event := parseLaunchEvent(message.payload)
			if message.complete {
				event.Completed = true
				if event.Status == "" {
					event.Status = "completed"
				}
			}
			if event.Completed {
				return event, nil
			}
		}
	}
}

type launchMessage struct {
	payload  map[string]any
	complete bool
}

func matchesLaunchEvent(normalizedTransactionID string, payload map[string]any) bool {
	if normalizedTransactionID == "" {
		return true
	}
	for _, key := range []string{"transactionId", "tx_id"} {
		value := normalizeTransactionID(parseString(payload[key]))
		if value != "" && value == normalizedTransactionID {
			return true
		}
	}
	return false
}

func parseLaunchEvent(payload map[string]any) LaunchEvent {
	status := strings.ToLower(parseString(payload["status"]))
	progress := parseFloat(payload["progress"])
	return LaunchEvent{
		TransactionID: firstNonEmpty(parseString(payload["transactionId"]), parseString(payload["tx_id"])),
		TokenID:       firstNonEmpty(parseString(payload["tokenId"]), parseString(payload["token_id"])),
		Status:        status,
		Progress:      progress,
		Completed:     status == "completed" || progress >= 100,
		Error:         parseString(payload["error"]),
	}
}

// normalizeTransactionID maps both 0.0.1@1700000000.1 and the mirror form
// 0.0.1-1700000000-1 to the latter.
func normalizeTransactionID(transactionID string) string {
	trimmed := strings.TrimSpace(transactionID)
	account, validStart, found := strings.Cut(trimmed, "@")
	if !found {
		return trimmed
	}
	return account + "-" + strings.ReplaceAll(validStart, ".", "-")
}

func parseString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	default:
		return ""
	}
}

func parseFloat(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case int:
		return float64(typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
