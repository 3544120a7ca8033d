package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vista-store/storefront/internal/core/ports"
)

type stubDispatcher struct {
	events []ports.OrderEventInput
}

func (d *stubDispatcher) Enqueue(event ports.OrderEventInput) {
	d.events = append(d.events, event)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.OrderEventInput) {
	d.events = append(d.events, events...)
}

func newEventHandler() (*OrderHandler, *stubDispatcher) {
	dispatcher := &stubDispatcher{}
	return NewOrderHandler(nil, nil, dispatcher), dispatcher
}

func TestOrderHandler_ReceiveEvent(t *testing.T) {
	e := newEcho()
	handler, dispatcher := newEventHandler()

	body := strings.NewReader(`{"order_id":"ord-1","status":"confirmed","timestamp":"2026-01-02T10:00:00Z","message":"Payment received"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/events", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ReceiveEvent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].OrderID != "ord-1" {
		t.Fatalf("expected event enqueued, got %v", dispatcher.events)
	}
}

func TestOrderHandler_ReceiveEventRejectsUnknownStatus(t *testing.T) {
	e := newEcho()
	handler, dispatcher := newEventHandler()

	body := strings.NewReader(`{"order_id":"ord-1","status":"teleported","timestamp":"2026-01-02T10:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/events", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveEvent(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if len(dispatcher.events) != 0 {
		t.Fatalf("invalid event must not be enqueued")
	}
}

func TestOrderHandler_ReceiveEventBatch(t *testing.T) {
	e := newEcho()
	handler, dispatcher := newEventHandler()

	body := strings.NewReader(`[
		{"order_id":"ord-1","status":"confirmed","timestamp":"2026-01-02T10:00:00Z"},
		{"order_id":"ord-2","status":"confirmed","timestamp":"2026-01-02T10:01:00Z"}
	]`)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/events/batch", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ReceiveEventBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.events) != 2 {
		t.Fatalf("expected 2 events enqueued, got %d", len(dispatcher.events))
	}
}

func TestOrderHandler_ReceiveEventBatchEmpty(t *testing.T) {
	e := newEcho()
	handler, _ := newEventHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/events/batch", strings.NewReader(`[]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveEventBatch(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %v", err)
	}
}

func TestOrderHandler_ReceiveEventBatchTooLarge(t *testing.T) {
	e := newEcho()
	handler, _ := newEventHandler()

	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i <= maxBatchSize; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"order_id":"ord-%d","status":"confirmed","timestamp":"2026-01-02T10:00:00Z"}`, i)
	}
	sb.WriteString("]")

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/events/batch", strings.NewReader(sb.String()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ReceiveEventBatch(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized batch, got %v", err)
	}
}
