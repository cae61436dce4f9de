package notifier

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingBody фиксирует факт закрытия тела ответа
type trackingBody struct {
	closed bool
}

func (b *trackingBody) Read(p []byte) (int, error) { return 0, io.EOF }
func (b *trackingBody) Close() error               { b.closed = true; return nil }

// recordingTransport возвращает заранее заданные статусы и запоминает тела ответов
type recordingTransport struct {
	mu       sync.Mutex
	statuses []int
	bodies   []*trackingBody
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	body := &trackingBody{}
	status := t.statuses[len(t.bodies)]
	t.bodies = append(t.bodies, body)
	return &http.Response{
		StatusCode: status,
		Body:       body,
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newWorkerFixture(statuses []int) (*Worker, *recordingTransport) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        "http://webhook.local/events",
		WebhookMaxRetries: len(statuses),
		WebhookBaseDelay:  time.Millisecond,
	}

	transport := &recordingTransport{statuses: statuses}
	worker := NewWorker(nil, logger, cfg)
	worker.httpClient = &http.Client{Transport: transport}
	return worker, transport
}

func TestDeliverEvent_ClosesBodyOnEachRetry(t *testing.T) {
	// Тела ответов неудачных попыток должны закрываться внутри цикла,
	// а не копиться до выхода из deliverEvent
	worker, transport := newWorkerFixture([]int{500, 502, 200})

	event := Event{Name: EventZoneActivated, City: "Kyiv", Timestamp: time.Now().UTC()}
	worker.deliverEvent(context.Background(), event, `{"name":"zone_activated","city":"Kyiv"}`)

	require.Len(t, transport.bodies, 3)
	for i, body := range transport.bodies {
		assert.True(t, body.closed, "response body %d was not closed", i)
	}
}

func TestDeliverEvent_ClosesBodiesWhenAllRetriesFail(t *testing.T) {
	worker, transport := newWorkerFixture([]int{500, 500, 500})

	event := Event{Name: EventZoneUpdated, City: "Kyiv", Timestamp: time.Now().UTC()}
	worker.deliverEvent(context.Background(), event, `{"name":"zone_updated","city":"Kyiv"}`)

	require.Len(t, transport.bodies, 3)
	for i, body := range transport.bodies {
		assert.True(t, body.closed, "response body %d was not closed", i)
	}
}
